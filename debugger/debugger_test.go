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

package debugger_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherz8/debugger"
	"github.com/jetsetilly/gopherz8/debugger/terminal"
	"github.com/jetsetilly/gopherz8/environment"
	"github.com/jetsetilly/gopherz8/hardware/memory"
	"github.com/jetsetilly/gopherz8/test"
)

const timeout = 5 * time.Second

type mockTerm struct {
	t   *testing.T
	inp chan string
	out chan string
}

func newMockTerm(t *testing.T) *mockTerm {
	return &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 1000),
	}
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) TermRead(_ terminal.Prompt) (string, error) {
	s, ok := <-trm.inp
	if !ok {
		return "", io.EOF
	}
	return s, nil
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.out <- s
}

// send the input to the debugger. the empty input that follows the command
// is only read by the debugger once the command has completed
func (trm *mockTerm) send(s string) {
	trm.inp <- s
	trm.inp <- ""
}

// cmd sends the input to the debugger and returns the output
func (trm *mockTerm) cmd(s string) []string {
	trm.send(s)

	var output []string
	for {
		select {
		case s := <-trm.out:
			output = append(output, s)
		default:
			return output
		}
	}
}

// last line of output from the command
func (trm *mockTerm) last(s string) string {
	trm.t.Helper()
	output := trm.cmd(s)
	if len(output) == 0 {
		trm.t.Errorf("no output from %s", s)
		return ""
	}
	return output[len(output)-1]
}

// wait for a line of output that contains the string
func (trm *mockTerm) waitFor(s string) string {
	trm.t.Helper()
	for {
		select {
		case o := <-trm.out:
			if strings.Contains(o, s) {
				return o
			}
		case <-time.After(timeout):
			trm.t.Fatalf("timed out waiting for output containing %q", s)
		}
	}
}

func (trm *mockTerm) expectContains(output string, s string) {
	trm.t.Helper()
	if !strings.Contains(output, s) {
		trm.t.Errorf("unexpected debugger output (%s) should contain (%s)", output, s)
	}
}

// SRP #10; INC r0; JR -3
var loop = []uint8{0x31, 0x10, 0x0e, 0x8b, 0xfd}

func startDebugger(t *testing.T, trm *mockTerm) chan error {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	mem := memory.NewFlat(env, 0x1000)
	for i, b := range loop {
		mem.Poke(0x000c+uint16(i), b)
	}

	dbg := debugger.NewDebugger(env, mem, nil, trm)

	done := make(chan error, 1)
	go func() {
		done <- dbg.Start(context.Background(), true)
	}()

	trm.waitFor("Paused")
	return done
}

func quit(t *testing.T, trm *mockTerm, done chan error) {
	t.Helper()
	trm.inp <- "QUIT"
	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(timeout):
		t.Fatalf("debugger did not quit")
	}
}

func TestStepping(t *testing.T) {
	trm := newMockTerm(t)
	done := startDebugger(t, trm)

	trm.expectContains(trm.last("STEP"), "PC=000e")
	trm.expectContains(trm.last("STEP"), "PC=000f")
	trm.expectContains(trm.last("over"), "PC=000e")

	output := strings.Join(trm.cmd("REGS"), "\n")
	trm.expectContains(output, "RP   10")
	trm.expectContains(output, "r0  01")

	// there is no return instruction in the program
	test.ExpectEquality(t, len(trm.cmd("RET")), 0)
	trm.expectContains(trm.last("STEP"), "emulation is running")
	trm.expectContains(trm.last("PAUSE"), "Paused")
	trm.expectContains(trm.last("PAUSE"), "emulation is Paused")

	test.ExpectEquality(t, len(trm.cmd("CONT")), 0)
	trm.expectContains(trm.last("STEP"), "emulation is running")

	quit(t, trm, done)
}

func TestBreakpoints(t *testing.T) {
	trm := newMockTerm(t)
	done := startDebugger(t, trm)

	trm.expectContains(trm.last("LIST"), "no breakpoints")
	trm.expectContains(trm.last("BREAK REG $10 3"), "breakpoint #0")
	trm.expectContains(trm.last("BREAK PC $0020"), "breakpoint #1: PC=0020")
	trm.expectContains(trm.last("BREAK $0030"), "breakpoint #2: PC=0030")
	test.ExpectEquality(t, len(trm.cmd("LIST")), 3)
	trm.expectContains(trm.last("DROP 1"), "breakpoint #1 dropped")
	trm.expectContains(trm.last("DROP 1"), "breakpoint #1 dropped")
	test.ExpectEquality(t, len(trm.cmd("LIST")), 1)

	trm.send("CONT")
	trm.waitFor("Paused")
	trm.expectContains(strings.Join(trm.cmd("REGS"), "\n"), "r0  03")

	trm.expectContains(trm.last("CLEAR"), "breakpoints cleared")
	trm.expectContains(trm.last("BREAK LUA reg(0x10) == 6"), "LUA reg(0x10) == 6")
	trm.send("CONT")
	trm.waitFor("Paused")
	trm.expectContains(strings.Join(trm.cmd("REGS"), "\n"), "r0  06")

	trm.expectContains(trm.last("BREAK"), "requires arguments")
	trm.expectContains(trm.last("BREAK REG $10"), "requires a register and a value")
	trm.expectContains(trm.last("BREAK REG $10 $100"), "not a valid 8 bit number")
	trm.expectContains(trm.last("BREAK MEM $2000"), "requires an address and a value")
	trm.expectContains(trm.last("BREAK FOO 1"), "unknown breakpoint type")
	trm.expectContains(trm.last("BREAK LUA pc =="), "breakpoint script")
	trm.expectContains(trm.last("DROP 9"), "no breakpoint numbered 9")
	trm.expectContains(trm.last("BREAK MEM $2000 $ff DATA"), "breakpoint #1")
	trm.expectContains(trm.last("BREAK REG IMR $80 $80"), "breakpoint #2")

	quit(t, trm, done)
}

func TestCommands(t *testing.T) {
	trm := newMockTerm(t)
	done := startDebugger(t, trm)

	trm.expectContains(trm.last("HELP"), "BREAK")
	trm.expectContains(trm.last("help step"), "single instruction")
	trm.expectContains(trm.last("HELP FOO"), "no help for FOO")
	trm.expectContains(trm.last("FOO"), "unknown command FOO")
	test.ExpectEquality(t, len(trm.cmd("")), 0)

	trm.expectContains(trm.last("SPEED"), "speed: unlimited")
	trm.expectContains(trm.last("SPEED 1000000"), "speed: 1000000 cycles per second")
	trm.expectContains(trm.last("SPEED UNLIMITED"), "speed: unlimited")
	trm.expectContains(trm.last("SPEED FOO"), "command error")

	trm.expectContains(trm.last("PEEK $000c"), "000c: 31")
	trm.expectContains(trm.last("PEEK"), "requires an address")

	fn := filepath.Join(t.TempDir(), "cpu.dot")
	trm.expectContains(trm.last("MEMVIZ "+fn), "CPU state written")
	info, err := os.Stat(fn)
	if test.ExpectSuccess(t, err) {
		test.ExpectSuccess(t, info.Size() > 0)
	}

	test.ExpectEquality(t, len(trm.cmd("LOG CLEAR")), 0)
	trm.expectContains(trm.last("LOG FOO"), "requires a number of entries")

	trm.expectContains(trm.last("RESET FOO"), "unknown RESET option")
	trm.send("RESET")
	trm.waitFor("Reset")
	trm.send("RESET POWER")
	trm.waitFor("Power on")

	// reset resumes the emulation
	trm.expectContains(trm.last("STEP"), "emulation is running")

	quit(t, trm, done)
}

func TestEndOfInput(t *testing.T) {
	trm := newMockTerm(t)
	done := startDebugger(t, trm)
	close(trm.inp)

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(timeout):
		t.Fatalf("debugger did not end")
	}
}
