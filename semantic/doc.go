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

// Package semantic defines the named events that the plumbing network
// produces from raw input. An event is a Binding (who and what) together with
// a polarity: asserted when the bound control opens and de-asserted when it
// closes.
//
// A Binding is owned either by the menu (MenuPlayer) or by one of the player
// slots. Buttons that have not yet been classified are bound to one of the
// GenericButton kinds and additionally carry the index of the device they
// originate from. The device tag is not part of the symbolic name and is
// ignored when a binding is transposed between player slots.
//
// Symbolic names are used by the blueprint language:
//
//	UP             menu owned UP
//	P2_CONFIRM     CONFIRM owned by the second player slot
//	P1_BUTTON3     generic button 3 owned by the first player slot
//
// Names are case-insensitive when looked up with ParseName().
package semantic
