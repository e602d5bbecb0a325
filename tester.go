// This file is part of Gopherpad.
//
// Gopherpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpad.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherpad/logger"
	"github.com/jetsetilly/gopherpad/sdlpad"
	"github.com/jetsetilly/gopherpad/settings"
	"github.com/jetsetilly/gopherpad/userinput"
	"github.com/jetsetilly/gopherpad/version"
)

// inputMonitor passes events to the router and reports changes to the player
// slots.
type inputMonitor struct {
	rtr *userinput.Router
	out io.Writer

	// print the state of a slot whenever it changes
	showInputs bool

	// output is a terminal. state lines are overwritten by the next line
	live bool

	sources [userinput.NumPlayers]userinput.Source
	states  [userinput.NumPlayers]userinput.ButtonState
}

func newInputMonitor(rtr *userinput.Router, out io.Writer, showInputs bool, live bool) *inputMonitor {
	mon := &inputMonitor{
		rtr:        rtr,
		out:        out,
		showInputs: showInputs,
		live:       live,
	}
	for slot := range mon.sources {
		mon.sources[slot] = rtr.Source(slot)
		mon.line(fmt.Sprintf("p%d: %s", slot+1, mon.sources[slot]), true)
	}
	return mon
}

// handle the event. returns true if the event is a request to quit.
func (mon *inputMonitor) handle(ev userinput.Event) bool {
	if _, ok := ev.(userinput.EventQuit); ok {
		return true
	}

	err := mon.rtr.HandleUserInput(ev)
	if err != nil {
		logger.Log(logger.Allow, "gopherpad", err)
	}

	for slot := range mon.states {
		src := mon.rtr.Source(slot)
		if src != mon.sources[slot] {
			mon.sources[slot] = src
			mon.line(fmt.Sprintf("p%d: %s", slot+1, src), true)
		}

		st := mon.rtr.ReadState(slot)
		if st == mon.states[slot] {
			continue
		}

		if st.South && !mon.states[slot].South {
			err := mon.rtr.Rumble(slot, false, 0xff)
			if err != nil {
				logger.Log(logger.Allow, "gopherpad", err)
			}
		}

		mon.states[slot] = st
		if mon.showInputs {
			mon.line(fmt.Sprintf("p%d: %s", slot+1, st), false)
		}
	}

	return false
}

func (mon *inputMonitor) line(s string, permanent bool) {
	if !mon.live {
		fmt.Fprintln(mon.out, s)
		return
	}
	fmt.Fprintf(mon.out, "\r\033[K%s", s)
	if permanent {
		fmt.Fprintln(mon.out)
	}
}

// tester implements the Service interface for the TEST mode.
type tester struct {
	plt *sdlpad.Platform
	rtr *userinput.Router
	mon *inputMonitor

	// show the number of calls to Service() per second in the window title
	showFPS   bool
	fpsCount  int
	fpsWindow time.Time

	// written to once when the window is closed
	quit chan bool
}

func newTester(set *settings.Settings, out io.Writer, live bool) (*tester, error) {
	plt, err := sdlpad.NewPlatform()
	if err != nil {
		return nil, err
	}

	err = plt.OpenWindow(version.ApplicationName,
		set.Video.WindowWidth.Get().(int),
		set.Video.WindowHeight.Get().(int),
		set.Video.Fullscreen.Get().(bool))
	if err != nil {
		plt.Destroy()
		return nil, err
	}

	tst := &tester{
		plt:       plt,
		rtr:       userinput.NewRouter(set.Input, plt),
		showFPS:   set.Debug.ShowFPS.Get().(bool),
		fpsWindow: time.Now(),
		quit:      make(chan bool, 1),
	}
	tst.mon = newInputMonitor(tst.rtr, out, set.Debug.ShowInputs.Get().(bool), live)

	return tst, nil
}

// Service implements the Service interface.
func (tst *tester) Service() {
	if tst.showFPS {
		tst.fpsCount++
		if d := time.Since(tst.fpsWindow); d >= time.Second {
			tst.plt.SetTitle(fmt.Sprintf("%s (%.0f fps)", version.ApplicationName, float64(tst.fpsCount)/d.Seconds()))
			tst.fpsCount = 0
			tst.fpsWindow = time.Now()
		}
	}

	ev := sdlpad.Poll(10 * time.Millisecond)
	if ev == nil {
		return
	}

	if tst.mon.handle(ev) {
		select {
		case tst.quit <- true:
		default:
		}
	}
}

// Destroy implements the Service interface.
func (tst *tester) Destroy(output io.Writer) {
	tst.rtr.Close()
	tst.plt.Destroy()
	fmt.Fprintln(output)
}
