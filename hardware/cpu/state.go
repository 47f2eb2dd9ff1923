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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
)

// TimerState is a copy of the state of one of the timers.
type TimerState struct {
	Counter    uint8
	Prescaler  uint8
	Continuous bool
}

// PortState is a copy of the state of one of the ports.
type PortState struct {
	// the value most recently written to the port register by the program
	Latch uint8

	// the value most recently read from the port register by the program
	Register uint8

	// the output value of the port
	Output uint8
}

// State is a copy of the CPU registers. It is intended for display by a
// debugger and for the memviz package.
type State struct {
	PC            uint16
	SP            uint16
	InternalStack bool
	Flags         string

	// the highest implemented general purpose register
	MaxGPR uint8

	// control registers indexed by name
	Control map[string]uint8

	// the sixteen working registers selected by RP
	Working [16]uint8

	Ports [4]PortState

	T0 TimerState
	T1 TimerState

	// the interrupt priority ordering as a string
	Priority string
}

// State returns a copy of the current CPU state.
func (mc *CPU) State() *State {
	s := &State{
		PC:            mc.PC,
		SP:            mc.StackPointer(),
		InternalStack: mc.InternalStack(),
		Flags:         mc.Flags.String(),
		MaxGPR:        mc.maxGPR,
		Control:       make(map[string]uint8),
		T0: TimerState{
			Counter:    mc.t0.Counter(),
			Prescaler:  mc.t0.PreCounter(),
			Continuous: mc.t0.Continuous(),
		},
		T1: TimerState{
			Counter:    mc.t1.Counter(),
			Prescaler:  mc.t1.PreCounter(),
			Continuous: mc.t1.Continuous(),
		},
		Priority: "none",
	}

	for r := registers.FirstControl; r <= 0xff; r++ {
		s.Control[registers.Name(uint8(r))] = mc.PeekRegister(uint8(r))
	}

	rp := s.Control["RP"] & 0xf0
	for i := range s.Working {
		s.Working[i] = mc.PeekRegister(rp | uint8(i))
	}

	for i := range s.Ports {
		s.Ports[i] = PortState{
			Latch:    mc.latch[i],
			Register: mc.registers[i],
			Output:   mc.portLastOut[i],
		}
	}

	if mc.priorityValid {
		s.Priority = mc.priority.String()
	}

	return s
}

func (s *State) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x FLAGS=%s RP=%02x IRQ=%02x IMR=%02x IPR=%s",
		s.PC, s.SP, s.Flags, s.Control["RP"], s.Control["IRQ"], s.Control["IMR"], s.Priority)
}
