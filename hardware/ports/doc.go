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

// Package ports defines the interface between the Z8 I/O ports and the
// hardware connected to them.
//
// The CPU reads the external level of a port with GetPortValue() at most
// once per instruction and reports changes to its output latches with
// SetPortValue(). Both calls are made from the emulation goroutine and
// implementations should not block.
//
// The Pins type is an implementation of the IO interface that holds the
// input levels of each port in a latch that can be safely changed from
// another goroutine.
package ports
