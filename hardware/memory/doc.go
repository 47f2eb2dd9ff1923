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

// Package memory defines the memory bus of the Z8 and provides a simple
// implementation suitable for most programs.
//
// The Z8 distinguishes between program memory and data memory. The LDC
// instructions and the instruction fetch access program memory and the LDE
// instructions and the external stack access data memory. Whether the two
// address spaces are distinct is a matter for the implementation of the
// Memory interface.
//
// The Flat type implements a single 64k address space shared by program and
// data memory, with the lowest part of the address space protected from
// writes as ROM.
package memory
