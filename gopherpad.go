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
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/gopherpad/curated"
	"github.com/jetsetilly/gopherpad/logger"
	"github.com/jetsetilly/gopherpad/modalflag"
	"github.com/jetsetilly/gopherpad/paths"
	"github.com/jetsetilly/gopherpad/prefs"
	"github.com/jetsetilly/gopherpad/settings"
	"github.com/jetsetilly/gopherpad/statsview"
	"github.com/jetsetilly/gopherpad/userinput"
	"github.com/jetsetilly/gopherpad/version"
	"golang.org/x/term"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// Service is implemented by anything that must be created, serviced and
// destroyed on the main thread. SDL requires that event handling happens on
// the thread that initialised it.
//
// There is no Create() function. Instead a function returning a new Service
// is sent to the main thread over the mainSync.creator channel.
type Service interface {
	// cleanup resources used by the service
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (Service, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan Service
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (Service, error)),
		creation:      make(chan Service),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	var svc Service
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if svc != nil {
				svc.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			if svc != nil {
				svc.Destroy(os.Stderr)
			}

			svc, err = creator()
			if err != nil {
				sync.creationError <- err

				// creator() may return a nil pointer of a concrete type,
				// which is not a nil interface
				svc = nil
			} else {
				sync.creation <- svc
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if svc != nil {
					svc.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if svc != nil {
				svc.Service()
			} else {
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate service creation and to quit.
func launch(sync *mainSync) {
	exitVal := run(sync, os.Args[1:], os.Stdout)
	if exitVal != 0 {
		sync.state <- stateRequest{req: reqQuit, args: exitVal}
		return
	}
	sync.state <- stateRequest{req: reqQuit}
}

// run the command line. returns the exit value for the program.
func run(sync *mainSync, args []string, out io.Writer) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	config := md.AddString("config", "", "settings file (default is config.ini in the user config directory)")
	overrides := md.AddString("prefs", "", "settings for this run only. eg. \"video.fullscreen::true; debug.show_inputs::yes\"")
	log := md.AddBool("log", false, "echo log to stdout")
	md.AddSubModes("SHOW", "DEFAULTS", "SET", "BIND", "EXPORT", "TEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(out, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(out)
	} else {
		logger.SetEcho(nil)
	}

	pth := *config
	if pth == "" && md.Mode() != "VERSION" {
		pth, err = paths.ResourcePath("", paths.DefaultConfigFile)
		if err != nil {
			fmt.Fprintf(out, "* error: %v\n", err)
			return 10
		}
	}

	switch md.Mode() {
	case "SHOW":
		err = show(md, out, pth, *overrides)

	case "DEFAULTS":
		err = defaults(md, out, pth)

	case "SET":
		err = setting(md, out, pth)

	case "BIND":
		err = bind(md, out, pth)

	case "EXPORT":
		err = export(md, out, pth, *overrides)

	case "TEST":
		err = inputTest(md, sync, out, pth, *overrides)

	case "VERSION":
		fmt.Fprintln(out, version.Banner())
	}

	if err != nil {
		fmt.Fprintf(out, "* error in %s mode: %s\n", md, err)

		// errors that did not come from the command line may be explained
		// by recent log entries
		if curated.IsAny(err) && !*log {
			logger.Tail(out, 5)
		}

		return 20
	}

	return 0
}

// loadSettings from the file, creating it if necessary. the overrides are
// applied to the settings but are not saved to the file.
//
// a file that exists but cannot be read is logged and the default settings
// are returned. the file is not changed.
func loadSettings(pth string, overrides string) (*settings.Settings, error) {
	set, err := settings.NewSettings(pth)
	if err != nil {
		return nil, err
	}

	if overrides != "" {
		prefs.PushCommandLineStack(overrides)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gopherpad", "unused settings: %s", unused)
			}
		}()
	}

	_, err = set.Load()
	if err != nil {
		logger.Logf(logger.Allow, "gopherpad", "using default settings: %v", err)
	}

	return set, nil
}

func show(md *modalflag.Modes, out io.Writer, pth string, overrides string) error {
	md.NewMode()
	md.AdditionalHelp("Prints every setting followed by the bindings of both players.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	set, err := loadSettings(pth, overrides)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n\n", set.Path())
	fmt.Fprint(out, set.String())
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%-15s %-20s %-20s %s\n", "action", "gamepad (p1)", "gamepad (p2)", "keyboard")
	for a := userinput.Action(0); a < userinput.NumActions; a++ {
		fmt.Fprintf(out, "%-15s %-20s %-20s %s\n", a,
			set.Input.Players[0].Gamepad(a),
			set.Input.Players[1].Gamepad(a),
			set.Input.Players[0].Keyboard(a))
	}

	return nil
}

func defaults(md *modalflag.Modes, out io.Writer, pth string) error {
	md.NewMode()
	md.AdditionalHelp("Writes the default value of every setting to the settings file. Sections\nand keys in the file that are not settings are left alone.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	set, err := settings.NewSettings(pth)
	if err != nil {
		return err
	}

	err = set.Save()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "default settings written to %s\n", set.Path())

	return nil
}

func setting(md *modalflag.Modes, out io.Writer, pth string) error {
	md.NewMode()
	md.AdditionalHelp("Arguments: section.key value\n\nUse BIND mode to change the gamepad and keyboard bindings.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires a key and a value", md)
	}

	set, err := loadSettings(pth, "")
	if err != nil {
		return err
	}

	err = set.Set(md.GetArg(0), md.GetArg(1))
	if err != nil {
		if curated.Is(err, prefs.UnknownKey) {
			section, _, _ := strings.Cut(md.GetArg(0), ".")
			if section == userinput.KeyboardSection || strings.HasPrefix(section, "gamepad_") {
				return fmt.Errorf("%s is a binding: use BIND mode", md.GetArg(0))
			}
		}
		return err
	}

	err = set.Save()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s set to %s\n", md.GetArg(0), md.GetArg(1))

	return nil
}

func bindHelp() string {
	var actions []string
	for a := userinput.Action(0); a < userinput.NumActions; a++ {
		actions = append(actions, a.String())
	}
	return fmt.Sprintf("Arguments: action control\n\nactions: %s\n\n"+
		"gamepad controls are buttons (eg. button_south, button_dpad_up) or axes (eg. axis_lefty)\n"+
		"keyboard controls are key names (eg. W, Return, Backspace)",
		strings.Join(actions, ", "))
}

func bind(md *modalflag.Modes, out io.Writer, pth string) error {
	md.NewMode()
	player := md.AddInt("player", 1, "player to bind")
	keyboard := md.AddBool("keyboard", false, "bind a keyboard key instead of a gamepad control")
	md.AdditionalHelp(bindHelp())

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires an action and a control", md)
	}

	if *player < 1 || *player > userinput.NumPlayers {
		return fmt.Errorf("player must be between 1 and %d", userinput.NumPlayers)
	}

	a, ok := userinput.ParseAction(md.GetArg(0))
	if !ok {
		return fmt.Errorf("unknown action (%s)", md.GetArg(0))
	}

	set, err := loadSettings(pth, "")
	if err != nil {
		return err
	}

	m := &set.Input.Players[*player-1]

	var ctrl string
	if *keyboard {
		// only the first player's keyboard bindings are saved
		if *player != 1 {
			return fmt.Errorf("keyboard bindings are shared by all players")
		}
		sc, ok := userinput.ParseScancode(md.GetArg(1))
		if !ok {
			return fmt.Errorf("unknown key (%s)", md.GetArg(1))
		}
		m.BindKeyboard(a, sc)
		ctrl = sc.String()
	} else {
		b, ok := userinput.ParseGamepadBinding(md.GetArg(1))
		if !ok {
			return fmt.Errorf("unknown gamepad control (%s)", md.GetArg(1))
		}
		m.BindGamepad(a, b)
		ctrl = b.String()
	}

	err = set.Save()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "p%d %s bound to %s\n", *player, a, ctrl)

	return nil
}

func export(md *modalflag.Modes, out io.Writer, pth string, overrides string) error {
	md.NewMode()
	format := md.AddString("format", "yaml", "output format: yaml, toml")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	set, err := loadSettings(pth, overrides)
	if err != nil {
		return err
	}

	switch strings.ToLower(*format) {
	case "yaml":
		return set.ExportYAML(out)
	case "toml":
		return set.ExportTOML(out)
	}

	return fmt.Errorf("unknown export format (%s)", *format)
}

func inputTest(md *modalflag.Modes, sync *mainSync, out io.Writer, pth string, overrides string) error {
	md.NewMode()
	duration := md.AddDuration("duration", 0, "end the test after duration. zero runs until the window is closed")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("Opens a window and reports the state of both players. The window must\nhave focus for keyboard input. Pressing south on a gamepad rumbles it.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	set, err := loadSettings(pth, overrides)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		stop := statsview.Launch(out)
		defer stop()
	}

	// overwrite the status line in place if output is a terminal
	var live bool
	if f, ok := out.(*os.File); ok {
		live = term.IsTerminal(int(f.Fd()))
	}

	sync.creator <- func() (Service, error) {
		return newTester(set, out, live)
	}

	var tst *tester
	select {
	case svc := <-sync.creation:
		tst = svc.(*tester)
	case err := <-sync.creationError:
		return err
	}

	var timeout <-chan time.Time
	if *duration > 0 {
		timeout = time.After(*duration)
	}

	select {
	case <-tst.quit:
	case <-timeout:
	}

	return nil
}
