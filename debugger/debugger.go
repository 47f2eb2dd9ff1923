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

package debugger

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/debugger/breakpoints"
	"github.com/jetsetilly/gopherz8/debugger/govern"
	"github.com/jetsetilly/gopherz8/debugger/terminal"
	"github.com/jetsetilly/gopherz8/environment"
	"github.com/jetsetilly/gopherz8/hardware"
	"github.com/jetsetilly/gopherz8/hardware/memory"
	"github.com/jetsetilly/gopherz8/hardware/ports"
)

// the maximum time to wait for the emulation to suspend after a step
// command
const settleTime = 250 * time.Millisecond

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	env  *environment.Environment
	z8   *hardware.Z8
	mem  memory.Memory
	term terminal.Terminal

	// breakpoints in the order they were added. only accessed by the input
	// loop
	breaks []breakpoints.Breakpoint

	// signalled whenever the emulation is suspended. capacity of one
	suspended chan bool

	// set by the QUIT command
	quit bool
}

// NewDebugger creates and connects all the pieces necessary for the debugger
// to function. The io argument can be nil.
func NewDebugger(env *environment.Environment, mem memory.Memory, io ports.IO, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		env:       env,
		mem:       mem,
		term:      term,
		suspended: make(chan bool, 1),
	}

	dbg.z8 = hardware.NewZ8(env, mem, io, hardware.Listeners{
		Reset:    dbg.resetListener,
		Status:   dbg.statusListener,
		Debugger: dbg,
	})

	return dbg
}

// Z8 returns the emulation controlled by the debugger.
func (dbg *Debugger) Z8() *hardware.Z8 {
	return dbg.z8
}

// DebugStatusChanged implements the hardware.Debugger interface.
func (dbg *Debugger) DebugStatusChanged(z8 *hardware.Z8) {
	state := z8.State()
	if state == govern.Running {
		return
	}

	dbg.printLine(terminal.StyleInstrument, "%s: %s", state, z8.Snapshot())

	select {
	case dbg.suspended <- true:
	default:
	}
}

func (dbg *Debugger) resetListener(_ *hardware.Z8, ev govern.Event) {
	dbg.printLine(terminal.StyleInstrument, "%s", ev)
}

func (dbg *Debugger) statusListener(z8 *hardware.Z8, ev govern.Event) {
	switch ev {
	case govern.EventCyclesPerSecondChanged:
		dbg.printLine(terminal.StyleFeedback, "speed: %s", speedString(z8.CyclesPerSecond()))
	case govern.EventStatusChanged:
		dbg.printLine(terminal.StyleFeedback, "max GPR: %02x", z8.MaxGPR())
	}
}

// Start the debugger. The emulation starts in the paused state if the paused
// argument is true. Start returns when the QUIT command is entered, when the
// terminal input is exhausted or when the context is cancelled.
func (dbg *Debugger) Start(ctx context.Context, paused bool) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if paused {
		dbg.z8.SetPause(true)
	}

	done := make(chan error, 1)
	go func() {
		done <- dbg.z8.Run(ctx)
	}()

	err = dbg.inputLoop(ctx)

	dbg.z8.Quit()
	<-done
	dbg.clearBreakpoints()

	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	return nil
}

func (dbg *Debugger) inputLoop(ctx context.Context) error {
	for !dbg.quit && ctx.Err() == nil {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.z8.SetPause(true)
				continue
			}
			if curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return err
		}

		dbg.printLine(terminal.StyleEcho, "%s", input)

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content: fmt.Sprintf("%04x", dbg.z8.Snapshot().PC),
		State:   dbg.z8.State(),
	}
}

// wait for the emulation to suspend after a step request. the wait is
// abandoned after settleTime because the emulation may never suspend
func (dbg *Debugger) settle(request func()) {
	select {
	case <-dbg.suspended:
	default:
	}

	request()

	select {
	case <-dbg.suspended:
	case <-time.After(settleTime):
	}
}

// printLine is the main method of sending output to the terminal. the
// function can be called from any goroutine
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	s = fmt.Sprintf(s, a...)

	// remove all trailing newlines, and return if the resulting string is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	dbg.term.TermPrintLine(sty, s)
}

// styleWriter implements the io.Writer interface. it is useful for when an
// io.Writer is required and you want to direct the output to the terminal.
// allows the application of a single style.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	for _, s := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		wrt.dbg.printLine(wrt.style, "%s", s)
	}
	return len(p), nil
}

func speedString(cyclesPerSecond int) string {
	if cyclesPerSecond == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d cycles per second", cyclesPerSecond)
}
