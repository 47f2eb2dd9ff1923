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

package serial

import "math/bits"

// Transmitter is the output shift register. Bits are shifted out least
// significant first.
type Transmitter struct {
	shift uint16
}

// Load the transmitter with a value written to the SIO register.
//
// When parity is enabled bit seven of the value is replaced with a parity
// bit such that the eight data bits have an even number of ones.
//
// A start bit and two stop bits are added to the value. If the line is not
// currently at the mark level (lineHigh is false) an additional mark bit is
// sent before the start bit so that the receiver can see the start bit.
func (tx *Transmitter) Load(v uint8, parity bool, lineHigh bool) {
	if parity {
		v &= 0x7f
		if bits.OnesCount8(v)&0x01 == 0x01 {
			v |= 0x80
		}
	}

	tx.shift = 0x600 | uint16(v)<<1
	if !lineHigh {
		tx.shift = tx.shift<<1 | 0x01
	}
}

// Busy returns true if bits remain to be shifted out.
func (tx *Transmitter) Busy() bool {
	return tx.shift != 0
}

// Shift out the next bit. The bool return value is the level of the serial
// output line. The second return value is true if the final bit of the frame
// has been shifted out.
//
// Should only be called when Busy() is true.
func (tx *Transmitter) Shift() (bool, bool) {
	b := tx.shift&0x01 == 0x01
	tx.shift >>= 1
	return b, tx.shift == 0
}

// Reset the transmitter. Any frame being sent is abandoned.
func (tx *Transmitter) Reset() {
	tx.shift = 0
}
