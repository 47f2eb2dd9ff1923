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

// Package breakpoints defines the predicates that are checked by the Z8
// before every instruction. If any predicate matches the emulation enters the
// DebugStop state before the instruction is executed.
//
// The PC, Register and Memory types compare a single value. The Script type
// evaluates a Lua expression, with the CPU state made available through the
// following globals:
//
//	pc       the program counter
//	sp       the stack pointer
//	flags    the value of the FLAGS register
//	reg(n)   the value of register n
//	mem(a)   the value of program memory at address a
//	dmem(a)  the value of data memory at address a
//
// For example:
//
//	pc == 0x0812 and reg(0x5e) > 3
//
// Breakpoints are evaluated on the emulation goroutine. The Target is only
// valid for the duration of the call to Matches().
package breakpoints
