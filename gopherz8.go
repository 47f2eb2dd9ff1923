// This file is part of GopherZ8.
//
// GopherZ8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherZ8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherZ8.  If not, see <https://www.gnu.org/licenses/>.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/debugger"
	"github.com/jetsetilly/gopherz8/debugger/govern"
	"github.com/jetsetilly/gopherz8/debugger/terminal"
	"github.com/jetsetilly/gopherz8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherz8/environment"
	"github.com/jetsetilly/gopherz8/hardware"
	"github.com/jetsetilly/gopherz8/hardware/memory"
	"github.com/jetsetilly/gopherz8/hardware/ports"
	"github.com/jetsetilly/gopherz8/hardware/ports/uart"
	"github.com/jetsetilly/gopherz8/logger"
	"github.com/jetsetilly/gopherz8/modalflag"
	"github.com/jetsetilly/gopherz8/performance"
	"github.com/jetsetilly/gopherz8/prefs"
	"github.com/jetsetilly/gopherz8/statsview"
	"github.com/jetsetilly/gopherz8/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx)
	stop()

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the
// value to use with os.Exit()
func launch(ctx context.Context) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "DEBUG":
		err = debug(ctx, md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.Mode(), err)
		return 20
	}

	return 0
}

// flags common to all modes
type machineFlags struct {
	origin    *uint64
	rom       *uint64
	prefs     *string
	speed     *int
	log       *bool
	statsview *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	f := machineFlags{
		origin: md.AddNumber("origin", 0x0000, 16, "address at which the program is loaded"),
		rom:    md.AddNumber("rom", 0x1000, 17, "number of read-only bytes from address zero"),
		prefs:  md.AddString("prefs", "", "preferences to apply (key::value; key::value)"),
		speed:  md.AddInt("speed", 0, "cycles per second. zero is unlimited"),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// create the environment and the memory with the program loaded. should be
// called after a successful call to Parse()
func prepare(md *modalflag.Modes, f machineFlags) (*environment.Environment, *memory.Flat, error) {
	if *f.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, fmt.Errorf("program file required for %s mode", md.Mode())
	case 1:
	default:
		return nil, nil, fmt.Errorf("too many arguments for %s mode", md.Mode())
	}

	prefs.PushCommandLineStack(*f.prefs)
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}
	if err != nil {
		return nil, nil, err
	}

	md.Visit(func(flag string) {
		if flag == "speed" && err == nil {
			err = env.Prefs.CyclesPerSecond.Set(*f.speed)
		}
	})
	if err != nil {
		return nil, nil, err
	}

	mem := memory.NewFlat(env, int(*f.rom))

	fn := md.GetArg(0)
	pf, err := os.Open(fn)
	if err != nil {
		return nil, nil, curated.Errorf(memory.LoadError, err)
	}
	defer pf.Close()

	n, err := mem.Load(pf, uint16(*f.origin))
	if err != nil {
		return nil, nil, err
	}
	logger.Logf(logger.Allow, "main", "loaded %d bytes from %s at %04x", n, fn, *f.origin)

	return env, mem, nil
}

// the uart is created before the Z8 so the clock is connected afterwards
type deferredClock struct {
	z8 *hardware.Z8
}

func (clk *deferredClock) Cycles() int64 {
	if clk.z8 == nil {
		return 0
	}
	return clk.z8.Cycles()
}

// ends the emulation when the program halts
type haltOnExit struct{}

func (haltOnExit) DebugStatusChanged(z8 *hardware.Z8) {
	if z8.State() == govern.InstHalt {
		z8.Quit()
	}
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	f := addMachineFlags(md)
	serial := md.AddNumber("serial", 0, 32, "connect terminal to the serial port with the number of cycles per bit. zero is no serial connection")
	profile := md.AddString("profile", "none", "run emulation through the profiler: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	env, mem, err := prepare(md, f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var io ports.IO = ports.NewPins()
	var line *uart.UART
	clk := &deferredClock{}
	if *serial > 0 {
		line = uart.NewUART(io, clk, int64(*serial))
		io = line
	}

	z8 := hardware.NewZ8(env, mem, io, hardware.Listeners{
		Debugger: haltOnExit{},
	})
	clk.z8 = z8

	if line != nil {
		modes, err := terminal.OpenModes()
		if err == nil {
			defer modes.Close()
			if err := modes.CBreakMode(); err != nil {
				return err
			}
			fmt.Printf("! serial connected. CTRL-] to quit\r\n")
		} else if !curated.Is(err, terminal.NotATerminal) {
			return err
		}

		go func() {
			err := terminal.Pipe(ctx, line, os.Stdin, os.Stdout)
			if err != nil {
				logger.Log(logger.Allow, "main", err)
			}
			cancel()
		}()
	}

	err = performance.RunProfiler(prf, "run", func() error {
		return z8.Run(ctx)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func debug(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	f := addMachineFlags(md)
	paused := md.AddBool("paused", true, "start the emulation in the paused state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, mem, err := prepare(md, f)
	if err != nil {
		return err
	}

	dbg := debugger.NewDebugger(env, mem, ports.NewPins(), plainterm.NewPlainTerminal(nil, nil))
	err = dbg.Start(ctx, *paused)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	f := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional 's' for seconds or 'm' for minutes)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	env, mem, err := prepare(md, f)
	if err != nil {
		return err
	}

	z8 := hardware.NewZ8(env, mem, ports.NewPins(), hardware.Listeners{
		Debugger: haltOnExit{},
	})

	return performance.Check(os.Stdout, prf, z8, *duration)
}
