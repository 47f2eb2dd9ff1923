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

// receiver states. the values between stateFirstBit and stateStopBit are the
// data bit states
const (
	stateIdle     = 0
	stateMark     = 1
	stateFirstBit = 2
	stateStopBit  = 10
)

// Receiver is the input shift register.
type Receiver struct {
	state int
	shift uint8

	// number of one bits seen in the current frame
	ones int
}

// Sample the serial input line once per bit period. Returns the received
// value and true when a frame has completed.
//
// When parity is enabled, bit seven of a completed frame is replaced by the
// parity of the ones counted during the frame.
func (rx *Receiver) Sample(line bool, parity bool) (uint8, bool) {
	switch {
	case rx.state == stateIdle:
		if line {
			rx.state = stateMark
		}

	case rx.state == stateMark:
		// start bit
		if !line {
			rx.state = stateFirstBit
			rx.shift = 0
			rx.ones = 0
		}

	case rx.state < stateStopBit:
		rx.state++
		rx.shift >>= 1
		if line {
			rx.shift |= 0x80
			if !parity || rx.state < 9 {
				rx.ones++
			}
		}

	default:
		// the stop bit is not checked. a space at this point means the line
		// must return to the mark level before the next start bit is seen
		if line {
			rx.state = stateMark
		} else {
			rx.state = stateIdle
		}

		if parity {
			if rx.ones&0x01 == 0x01 {
				rx.shift |= 0x80
			} else {
				rx.shift &= 0x7f
			}
		}
		return rx.shift, true
	}

	return 0, false
}

// Receiving returns true if the receiver is part way through a frame.
func (rx *Receiver) Receiving() bool {
	return rx.state >= stateFirstBit
}

// Reset the receiver.
func (rx *Receiver) Reset() {
	rx.state = stateIdle
	rx.shift = 0
	rx.ones = 0
}
