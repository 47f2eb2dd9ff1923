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

// Package registers contains the flags register, the addresses and names of
// the Z8 control registers, and the arithmetic and logic operations that
// update the flags.
//
// The ALU operations are implemented as methods on the Flags type. Each
// operation returns the result and updates the flags as the Z8 would. The
// results are not written anywhere, that is the job of the CPU.
package registers
