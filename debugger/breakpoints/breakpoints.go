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

package breakpoints

import "fmt"

// Target is the CPU state examined by a breakpoint. Implementations must not
// change the state of the CPU when these functions are called.
type Target interface {
	ProgramCounter() uint16
	StackPointer() uint16
	PeekRegister(r uint8) uint8
	PeekMemory(address uint16, data bool) uint8
}

// Breakpoint is a predicate checked before every instruction.
type Breakpoint interface {
	Matches(t Target) bool
	String() string
}

// PC matches when the program counter is at the address.
type PC struct {
	Address uint16
}

// Matches implements the Breakpoint interface.
func (bp PC) Matches(t Target) bool {
	return t.ProgramCounter() == bp.Address
}

func (bp PC) String() string {
	return fmt.Sprintf("PC=%04x", bp.Address)
}

// Register matches when the bits of the register selected by the mask are
// equal to the value. A mask of zero is treated as 0xff.
type Register struct {
	Register uint8
	Value    uint8
	Mask     uint8
}

// Matches implements the Breakpoint interface.
func (bp Register) Matches(t Target) bool {
	m := bp.Mask
	if m == 0 {
		m = 0xff
	}
	return t.PeekRegister(bp.Register)&m == bp.Value&m
}

func (bp Register) String() string {
	if bp.Mask == 0 || bp.Mask == 0xff {
		return fmt.Sprintf("R%02x=%02x", bp.Register, bp.Value)
	}
	return fmt.Sprintf("R%02x&%02x=%02x", bp.Register, bp.Mask, bp.Value&bp.Mask)
}

// Memory matches when the value in memory at the address is equal to the
// value. Data selects the data memory space rather than program memory.
type Memory struct {
	Address uint16
	Data    bool
	Value   uint8
}

// Matches implements the Breakpoint interface.
func (bp Memory) Matches(t Target) bool {
	return t.PeekMemory(bp.Address, bp.Data) == bp.Value
}

func (bp Memory) String() string {
	if bp.Data {
		return fmt.Sprintf("D%04x=%02x", bp.Address, bp.Value)
	}
	return fmt.Sprintf("M%04x=%02x", bp.Address, bp.Value)
}

// Any returns true if any of the breakpoints matches.
func Any(bps []Breakpoint, t Target) bool {
	for _, bp := range bps {
		if bp.Matches(t) {
			return true
		}
	}
	return false
}
