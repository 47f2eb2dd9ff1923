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

package memory

// Memory defines the operations for the memory system when accessed from the
// CPU. The data argument is true if the access is to data memory.
type Memory interface {
	ReadByte(address uint16, data bool) uint8

	// WriteByte returns false if the address could not be written to
	WriteByte(address uint16, data bool, value uint8) bool

	// initialise the contents of RAM. called on power-on
	InitRAM()
}
