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

// Package instructions defines the operators, condition codes and notable
// opcodes of the Z8 instruction set.
//
// Z8 opcodes are decoded in two levels. The low nibble of the opcode selects
// the addressing mode family and, for the arithmetic and logic instructions,
// the high nibble selects the operation. The functions in this package
// perform the decoding of the high nibble.
package instructions
