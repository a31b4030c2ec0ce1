// This file is part of Plumbing.
//
// Plumbing is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Plumbing is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Plumbing.  If not, see <https://www.gnu.org/licenses/>.

// Package userinput turns batches of raw input notifications from a Source
// into semantic events.
//
// Each attached device has a DeviceState, which debounces button edges and
// converts axis and hat positions into virtual buttons before stimulating the
// device's plumbing.Network. Every network pushes to the same queue, which is
// read with the Poll() or PollDance() functions of the Controllers type.
//
// The Controllers type also observes the events produced by each device and
// learns the meaning of generic buttons. A generic button that is repeatedly
// pressed at the same time as a direction is rewired to be that direction. A
// generic button that is independent of every direction becomes a menu
// control. Rewired networks are handed to the Store so that they can be
// persisted.
//
// The Source interface is implemented by the packages in the rawinput
// directory. The raw events are defined in this package so that sources do
// not need to know anything about plumbing.
package userinput
