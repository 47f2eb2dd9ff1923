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

package instructions

// Notable opcodes. These are the opcodes that the emulation or the debugger
// needs to recognise by value.
const (
	DecR     = 0x00
	SRP      = 0x31
	WDh      = 0x4f
	WDT      = 0x5f
	Stop     = 0x6f
	Halt     = 0x7f
	DI       = 0x8f
	EI       = 0x9f
	Ret      = 0xaf
	IRet     = 0xbf
	RCF      = 0xcf
	CallIRR  = 0xd4
	CallDA   = 0xd6
	SCF      = 0xdf
	CCF      = 0xef
	Nop      = 0xff
	JR       = 0x8b // JR with the always condition
	JP       = 0x8d // JP with the always condition
	LdImm    = 0x0c // LD r0,#IM. the high nibble selects the working register
	IncR     = 0x0e // INC r0. the high nibble selects the working register
	DJNZ     = 0x0a // DJNZ r0. the high nibble selects the working register
	LdRegReg = 0xe4
	LdRegImm = 0xe6
)

// IsCall returns true if the opcode is one of the CALL instructions.
func IsCall(opcode uint8) bool {
	return opcode == CallIRR || opcode == CallDA
}

// IsReturn returns true if the opcode is RET or IRET.
func IsReturn(opcode uint8) bool {
	return opcode == Ret || opcode == IRet
}
