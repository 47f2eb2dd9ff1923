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

package execution

import "fmt"

// Effect describes how an instruction affects the run state of the machine.
type Effect int

// List of valid Effect values.
const (
	// the instruction completed normally
	None Effect = iota

	// the HALT instruction. execution stops until the CPU is reset
	Halt

	// the STOP instruction. execution stops but timers and interrupts
	// continue
	Stop
)

func (e Effect) String() string {
	switch e {
	case None:
		return "none"
	case Halt:
		return "halt"
	case Stop:
		return "stop"
	}
	return "unknown effect"
}

// Result of executing one instruction.
type Result struct {
	// address of the opcode
	Address uint16

	Opcode uint8

	// number of CPU cycles used by the instruction
	Cycles int

	Effect Effect
}

func (r Result) String() string {
	s := fmt.Sprintf("%04x: %02x (%d cycles)", r.Address, r.Opcode, r.Cycles)
	if r.Effect != None {
		s = fmt.Sprintf("%s [%s]", s, r.Effect)
	}
	return s
}
