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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/debugger/breakpoints"
	"github.com/jetsetilly/gopherz8/debugger/govern"
	"github.com/jetsetilly/gopherz8/debugger/terminal"
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz8/logger"
)

// CommandError is returned by parseCommand() for any problem with the user
// input.
const CommandError = "command error: %v"

// debugger keywords
const (
	cmdHelp   = "HELP"
	cmdStep   = "STEP"
	cmdOver   = "OVER"
	cmdRet    = "RET"
	cmdCont   = "CONT"
	cmdPause  = "PAUSE"
	cmdBreak  = "BREAK"
	cmdList   = "LIST"
	cmdDrop   = "DROP"
	cmdClear  = "CLEAR"
	cmdRegs   = "REGS"
	cmdPeek   = "PEEK"
	cmdMemviz = "MEMVIZ"
	cmdSpeed  = "SPEED"
	cmdReset  = "RESET"
	cmdLog    = "LOG"
	cmdQuit   = "QUIT"
)

// usage and help for each command
var help = map[string][2]string{
	cmdHelp:   {"[command]", "Lists commands and provides help for individual debugger commands"},
	cmdStep:   {"", "Execute a single instruction"},
	cmdOver:   {"", "Execute a single instruction. CALL instructions are executed until the subroutine returns"},
	cmdRet:    {"", "Run until the current subroutine returns"},
	cmdCont:   {"", "Continue the emulation"},
	cmdPause:  {"", "Pause the emulation"},
	cmdBreak:  {"[PC] <address> | REG <register> <value> [mask] | MEM <address> <value> [DATA] | LUA <expression>", "Cause the emulation to pause when conditions are met"},
	cmdList:   {"", "List current breakpoints"},
	cmdDrop:   {"<n>", "Drop the breakpoint using the number reported by LIST"},
	cmdClear:  {"", "Clear all breakpoints"},
	cmdRegs:   {"", "Display the CPU registers. The working registers are displayed if the emulation is not running"},
	cmdPeek:   {"<address> [DATA]", "Inspect an individual memory address"},
	cmdMemviz: {"<filename>", "Write a graphviz visualisation of the CPU state to the file"},
	cmdSpeed:  {"[cycles per second | UNLIMITED]", "Display or change the speed of the emulation"},
	cmdReset:  {"[POWER]", "Reset the emulation. POWER performs a power-on reset"},
	cmdLog:    {"[n | CLEAR]", "Print the most recent log entries or clear the log"},
	cmdQuit:   {"", "Exits the emulator"},
}

// parseCommand tokenises the input and performs the command. an empty input is
// not an error
func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case cmdHelp:
		return dbg.help(args)

	case cmdStep:
		return dbg.resume(govern.StepInto)

	case cmdOver:
		return dbg.resume(govern.StepOver)

	case cmdRet:
		return dbg.resume(govern.RunToReturn)

	case cmdCont:
		return dbg.resume(govern.Run)

	case cmdPause:
		if dbg.z8.State() != govern.Running {
			return curated.Errorf(CommandError, fmt.Sprintf("emulation is %s", dbg.z8.State()))
		}
		dbg.settle(func() {
			dbg.z8.SetPause(true)
		})
		return nil

	case cmdBreak:
		return dbg.addBreakpoint(args)

	case cmdList:
		if len(dbg.breaks) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no breakpoints")
			return nil
		}
		for i, bp := range dbg.breaks {
			dbg.printLine(terminal.StyleFeedback, "%2d: %s", i, bp)
		}
		return nil

	case cmdDrop:
		if len(args) != 1 {
			return curated.Errorf(CommandError, fmt.Sprintf("%s requires a breakpoint number", cmdDrop))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n >= len(dbg.breaks) {
			return curated.Errorf(CommandError, fmt.Sprintf("no breakpoint numbered %s", args[0]))
		}
		closeBreakpoint(dbg.breaks[n])
		dbg.breaks = append(dbg.breaks[:n], dbg.breaks[n+1:]...)
		dbg.z8.SetBreakpoints(dbg.breaks)
		dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", n)
		return nil

	case cmdClear:
		dbg.clearBreakpoints()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil

	case cmdRegs:
		dbg.printRegisters()
		return nil

	case cmdPeek:
		if len(args) < 1 || len(args) > 2 {
			return curated.Errorf(CommandError, fmt.Sprintf("%s requires an address", cmdPeek))
		}
		address, err := parseNumber(args[0], 16)
		if err != nil {
			return err
		}
		data := len(args) == 2 && strings.ToUpper(args[1]) == "DATA"
		dbg.printLine(terminal.StyleFeedback, "%04x: %02x", address, dbg.mem.ReadByte(uint16(address), data))
		return nil

	case cmdMemviz:
		if len(args) != 1 {
			return curated.Errorf(CommandError, fmt.Sprintf("%s requires a filename", cmdMemviz))
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf(CommandError, err)
		}
		defer f.Close()
		memviz.Map(f, dbg.z8.Snapshot())
		dbg.printLine(terminal.StyleFeedback, "CPU state written to %s", args[0])
		return nil

	case cmdSpeed:
		return dbg.speed(args)

	case cmdReset:
		powerOn := len(args) == 1 && strings.ToUpper(args[0]) == "POWER"
		if len(args) > 0 && !powerOn {
			return curated.Errorf(CommandError, fmt.Sprintf("unknown %s option %s", cmdReset, args[0]))
		}
		dbg.z8.Reset(powerOn)
		return nil

	case cmdLog:
		if len(args) == 0 {
			logger.Write(dbg.printStyle(terminal.StyleLog))
			return nil
		}
		if strings.ToUpper(args[0]) == "CLEAR" {
			logger.Clear()
			return nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return curated.Errorf(CommandError, fmt.Sprintf("%s requires a number of entries", cmdLog))
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), n)
		return nil

	case cmdQuit:
		dbg.quit = true
		return nil
	}

	return curated.Errorf(CommandError, fmt.Sprintf("unknown command %s", tokens[0]))
}

func (dbg *Debugger) help(args []string) error {
	if len(args) == 0 {
		keywords := make([]string, 0, len(help))
		for k := range help {
			keywords = append(keywords, k)
		}
		sort.Strings(keywords)
		dbg.printLine(terminal.StyleHelp, "%s", strings.Join(keywords, " "))
		return nil
	}

	command := strings.ToUpper(args[0])
	h, ok := help[command]
	if !ok {
		return curated.Errorf(CommandError, fmt.Sprintf("no help for %s", args[0]))
	}
	dbg.printLine(terminal.StyleHelp, "%s %s", command, h[0])
	dbg.printLine(terminal.StyleHelp, "%s", h[1])
	return nil
}

// resume a paused emulation with the step mode
func (dbg *Debugger) resume(mode govern.StepMode) error {
	switch dbg.z8.State() {
	case govern.DebugStop:
	case govern.Running:
		return curated.Errorf(CommandError, "emulation is running")
	default:
		return curated.Errorf(CommandError, fmt.Sprintf("emulation is %s. RESET is required", dbg.z8.State()))
	}

	if mode == govern.Run {
		dbg.z8.SetPause(false)
		return nil
	}

	dbg.settle(func() {
		dbg.z8.SetStepMode(mode)
	})
	return nil
}

func (dbg *Debugger) speed(args []string) error {
	if len(args) == 0 {
		s := speedString(dbg.z8.CyclesPerSecond())
		if mhz, ok := dbg.z8.EmulatedMHz(); ok {
			s = fmt.Sprintf("%s (%.3f MHz)", s, mhz)
		}
		dbg.printLine(terminal.StyleFeedback, "speed: %s", s)
		return nil
	}

	if strings.ToUpper(args[0]) == "UNLIMITED" {
		args[0] = "0"
	}

	// the preference hook forwards the change to the emulation
	err := dbg.env.Prefs.CyclesPerSecond.Set(args[0])
	if err != nil {
		return curated.Errorf(CommandError, err)
	}
	return nil
}

func (dbg *Debugger) addBreakpoint(args []string) error {
	if len(args) == 0 {
		return curated.Errorf(CommandError, fmt.Sprintf("%s requires arguments", cmdBreak))
	}

	var bp breakpoints.Breakpoint

	switch strings.ToUpper(args[0]) {
	case "LUA":
		if len(args) < 2 {
			return curated.Errorf(CommandError, "LUA breakpoint requires an expression")
		}
		scr, err := breakpoints.NewScript(strings.Join(args[1:], " "))
		if err != nil {
			return curated.Errorf(CommandError, err)
		}
		bp = scr

	case "REG":
		if len(args) < 3 || len(args) > 4 {
			return curated.Errorf(CommandError, "REG breakpoint requires a register and a value")
		}
		r, err := parseRegister(args[1])
		if err != nil {
			return err
		}
		v, err := parseNumber(args[2], 8)
		if err != nil {
			return err
		}
		var m uint64 = 0xff
		if len(args) == 4 {
			m, err = parseNumber(args[3], 8)
			if err != nil {
				return err
			}
		}
		bp = breakpoints.Register{Register: r, Value: uint8(v), Mask: uint8(m)}

	case "MEM":
		if len(args) < 3 || len(args) > 4 {
			return curated.Errorf(CommandError, "MEM breakpoint requires an address and a value")
		}
		a, err := parseNumber(args[1], 16)
		if err != nil {
			return err
		}
		v, err := parseNumber(args[2], 8)
		if err != nil {
			return err
		}
		data := len(args) == 4 && strings.ToUpper(args[3]) == "DATA"
		bp = breakpoints.Memory{Address: uint16(a), Data: data, Value: uint8(v)}

	default:
		address := args[0]
		if strings.ToUpper(address) == "PC" {
			if len(args) != 2 {
				return curated.Errorf(CommandError, "PC breakpoint requires an address")
			}
			address = args[1]
		} else if len(args) != 1 {
			return curated.Errorf(CommandError, fmt.Sprintf("unknown breakpoint type %s", args[0]))
		}
		a, err := parseNumber(address, 16)
		if err != nil {
			return err
		}
		bp = breakpoints.PC{Address: uint16(a)}
	}

	dbg.breaks = append(dbg.breaks, bp)
	dbg.z8.SetBreakpoints(dbg.breaks)
	dbg.printLine(terminal.StyleFeedback, "breakpoint #%d: %s", len(dbg.breaks)-1, bp)

	return nil
}

func (dbg *Debugger) clearBreakpoints() {
	for _, bp := range dbg.breaks {
		closeBreakpoint(bp)
	}
	dbg.breaks = dbg.breaks[:0]
	dbg.z8.SetBreakpoints(nil)
}

// script breakpoints hold resources that must be released
func closeBreakpoint(bp breakpoints.Breakpoint) {
	if c, ok := bp.(interface{ Close() }); ok {
		c.Close()
	}
}

// parseNumber accepts decimal numbers and hexadecimal numbers with a $ or 0x
// prefix
func parseNumber(s string, bits int) (uint64, error) {
	n := s
	if strings.HasPrefix(n, "$") {
		n = "0x" + n[1:]
	}
	v, err := strconv.ParseUint(n, 0, bits)
	if err != nil {
		return 0, curated.Errorf(CommandError, fmt.Sprintf("%s is not a valid %d bit number", s, bits))
	}
	return v, nil
}

// parseRegister accepts a control register name or a register number
func parseRegister(s string) (uint8, error) {
	if r, ok := registers.Lookup(strings.ToUpper(s)); ok {
		return r, nil
	}
	v, err := parseNumber(s, 8)
	if err != nil {
		return 0, curated.Errorf(CommandError, fmt.Sprintf("%s is not a register", s))
	}
	return uint8(v), nil
}

func (dbg *Debugger) printRegisters() {
	s := dbg.z8.Snapshot()
	dbg.printLine(terminal.StyleFeedback, "%s", s)

	names := make([]string, 0, len(s.Control))
	for n := range s.Control {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, n := range names {
		if i > 0 && i%8 == 0 {
			dbg.printLine(terminal.StyleFeedback, "%s", b.String())
			b.Reset()
		}
		b.WriteString(fmt.Sprintf("%-5s%02x ", n, s.Control[n]))
	}
	dbg.printLine(terminal.StyleFeedback, "%s", b.String())

	for i, p := range s.Ports {
		dbg.printLine(terminal.StyleFeedback, "P%d: latch=%02x reg=%02x out=%02x", i, p.Latch, p.Register, p.Output)
	}
	dbg.printLine(terminal.StyleFeedback, "T0: %02x/%02x continuous=%v T1: %02x/%02x continuous=%v",
		s.T0.Counter, s.T0.Prescaler, s.T0.Continuous, s.T1.Counter, s.T1.Prescaler, s.T1.Continuous)

	b.Reset()
	for i, v := range s.Working {
		if i == 8 {
			dbg.printLine(terminal.StyleFeedback, "%s", b.String())
			b.Reset()
		}
		b.WriteString(fmt.Sprintf("r%-2d %02x ", i, v))
	}
	dbg.printLine(terminal.StyleFeedback, "%s", b.String())
}
