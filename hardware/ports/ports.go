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

package ports

// NumPorts is the number of I/O ports on the Z8.
const NumPorts = 4

// IO defines the operations of the hardware connected to the Z8 ports.
type IO interface {
	// the level of the port pins as driven by the external hardware
	GetPortValue(port int) uint8

	// the output latch of the port has changed
	SetPortValue(port int, value uint8)
}
