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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/plumbing/inputconfig"
	"github.com/jetsetilly/plumbing/logger"
	"github.com/jetsetilly/plumbing/modalflag"
	"github.com/jetsetilly/plumbing/paths"
	"github.com/jetsetilly/plumbing/plumbing"
	"github.com/jetsetilly/plumbing/prefs"
	"github.com/jetsetilly/plumbing/rawinput/sdlinput"
	"github.com/jetsetilly/plumbing/rawinput/termkeys"
	"github.com/jetsetilly/plumbing/semantic"
	"github.com/jetsetilly/plumbing/statsview"
	"github.com/jetsetilly/plumbing/userinput"
	"github.com/jetsetilly/plumbing/version"
)

// #mainthread
func init() {
	// SDL must be serviced from the main thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "CHECK", "GRAPH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "CHECK":
		err = check(md)

	case "GRAPH":
		err = graph(md)

	case "VERSION":
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	defInputs, err := paths.ResourcePath("inputs", "")
	if err != nil {
		return err
	}

	source := md.AddString("source", "SDL", "raw input source: SDL, TERM")
	inputs := md.AddString("inputs", defInputs, "directory of device networks")
	dance := md.AddBool("dance", false, "ignore generic buttons and never repeat")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	log := md.AddBool("log", false, "echo log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences for this session (key::value; ...)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if *stats {
		statsview.Launch(os.Stdout, "")
	}

	prefs.PushCommandLineStack(*prefsArg)
	uiPrefs, err := userinput.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "plumbing", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	reg := plumbing.NewRegistry()
	store, err := inputconfig.Load(*inputs, reg)
	if err != nil {
		return err
	}

	ctrl, err := userinput.NewControllers(reg, uiPrefs, store)
	if err != nil {
		return err
	}
	if *dance {
		ctrl.SetRepeat(false)
	}

	var src userinput.Source

	switch strings.ToUpper(*source) {
	case "SDL":
		s, err := sdlinput.NewSource()
		if err != nil {
			return err
		}
		defer s.Destroy()
		src = s

	case "TERM":
		s, err := termkeys.NewSource(os.Stdin)
		if err != nil {
			return err
		}
		defer s.CleanUp()
		src = s

	default:
		return fmt.Errorf("unknown source (%s)", *source)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	return serviceLoop(os.Stdout, ctrl, src, *dance, intChan)
}

// output of serviceLoop() is written with "\r\n" line endings because the
// terminal may be in raw mode.
func serviceLoop(output io.Writer, ctrl *userinput.Controllers, src userinput.Source, dance bool, intChan chan os.Signal) error {
	poll := ctrl.Poll
	if dance {
		poll = ctrl.PollDance
	}

	for {
		select {
		case <-intChan:
			return nil
		default:
		}

		quit := ctrl.HandleUserInput(src.Poll())

		for ev := poll(); !ev.IsNone(); ev = poll() {
			fmt.Fprintf(output, "%s\r\n", ev)
			if ev.Kind == semantic.Quit && ev.Asserted {
				return nil
			}
		}

		if quit {
			return nil
		}

		time.Sleep(10 * time.Millisecond)
	}
}

// load a blueprint or a persisted file. persisted files are recognised by
// their header.
func load(reg *plumbing.Registry, pth string) (string, *plumbing.Network, error) {
	data, err := os.ReadFile(pth)
	if err != nil {
		return "", nil, err
	}

	for _, l := range strings.Split(string(data), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		if strings.HasPrefix(l, "[") {
			name, ordinal, net, err := inputconfig.Parse(reg, pth, string(data))
			if err != nil {
				return "", nil, err
			}
			return inputconfig.Header(name, ordinal), net, nil
		}
		break
	}

	net, err := plumbing.Parse(reg, nil, string(data))
	if err != nil {
		return "", nil, err
	}
	return "", net, nil
}

func check(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("prints the canonical form of each blueprint or persisted file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("file required")
	}

	reg := plumbing.NewRegistry()
	for _, pth := range md.RemainingArgs() {
		header, net, err := load(reg, pth)
		if err != nil {
			return err
		}
		if header != "" {
			fmt.Fprintln(md.Output, header)
		}
		fmt.Fprint(md.Output, net.Serialize())
	}

	return nil
}

func graph(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("writes the node graph of a network as a graphviz dot file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var out string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("file required")
	case 1:
		base := strings.TrimSuffix(filepath.Base(md.GetArg(0)), filepath.Ext(md.GetArg(0)))
		out = paths.UniqueFilename("graph", base) + ".dot"
	case 2:
		out = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	_, net, err := load(plumbing.NewRegistry(), md.GetArg(0))
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, net)

	fmt.Fprintf(md.Output, "graph written to %s\n", out)

	return nil
}
