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

package serial_test

import (
	"testing"

	"github.com/jetsetilly/gopherz8/hardware/cpu/serial"
	"github.com/jetsetilly/gopherz8/test"
)

// frame returns the line levels shifted out by the transmitter for value v
func frame(v uint8, parity bool, lineHigh bool) []bool {
	var tx serial.Transmitter
	tx.Load(v, parity, lineHigh)

	var f []bool
	for tx.Busy() {
		b, _ := tx.Shift()
		f = append(f, b)
	}
	return f
}

// receive feeds line levels to a receiver that has seen the line idle at the
// mark level
func receive(rx *serial.Receiver, line []bool, parity bool) (uint8, int) {
	var v uint8
	n := 0
	rx.Sample(true, parity)
	for _, b := range line {
		if r, ok := rx.Sample(b, parity); ok {
			v = r
			n++
		}
	}
	return v, n
}

func TestDivider(t *testing.T) {
	var d serial.Divider
	n := 0
	for i := 1; i <= serial.DividerRatio*3; i++ {
		if d.Pulse() {
			n++
			test.ExpectEquality(t, i%serial.DividerRatio, 0)
		}
	}
	test.ExpectEquality(t, n, 3)
}

func TestTransmitterFrame(t *testing.T) {
	f := frame(0x55, false, true)
	exp := []bool{false, true, false, true, false, true, false, true, false, true, true}
	test.DemandEquality(t, len(f), len(exp))
	for i := range exp {
		test.ExpectEquality(t, f[i], exp[i], i)
	}

	// an extra mark bit is sent before the start bit when the line is low
	f = frame(0x55, false, false)
	test.DemandEquality(t, len(f), len(exp)+1)
	test.ExpectSuccess(t, f[0])
	test.ExpectFailure(t, f[1])
}

func TestTransmitterCompletion(t *testing.T) {
	var tx serial.Transmitter
	test.ExpectFailure(t, tx.Busy())

	tx.Load(0x00, false, true)
	n := 0
	for tx.Busy() {
		_, done := tx.Shift()
		n++
		test.ExpectEquality(t, done, !tx.Busy(), n)
	}
	test.ExpectEquality(t, n, 11)

	tx.Load(0xff, false, true)
	tx.Reset()
	test.ExpectFailure(t, tx.Busy())
}

func TestTransmitterParity(t *testing.T) {
	// 0x07 has three ones so the parity bit is set
	f := frame(0x07, true, true)
	test.ExpectSuccess(t, f[8])

	// 0x83 has two ones in the lower seven bits so the parity bit is clear
	f = frame(0x83, true, true)
	test.ExpectFailure(t, f[8])
}

func TestLoopback(t *testing.T) {
	var rx serial.Receiver
	for v := 0; v <= 0xff; v++ {
		r, n := receive(&rx, frame(uint8(v), false, true), false)
		test.ExpectEquality(t, n, 1, v)
		test.ExpectEquality(t, r, uint8(v), v)
	}
}

func TestReceiverParity(t *testing.T) {
	var rx serial.Receiver

	r, n := receive(&rx, frame(0x03, true, true), true)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, r, uint8(0x03))

	// parity is derived from the ones in the first six data bits only
	r, n = receive(&rx, frame(0x41, true, true), true)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, r, uint8(0xc1))
}

func TestReceiverResync(t *testing.T) {
	var rx serial.Receiver

	// a frame with a space where the stop bit should be
	line := frame(0x5a, false, true)
	line[9] = false
	line = line[:10]

	r, n := receive(&rx, line, false)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, r, uint8(0x5a))
	test.ExpectFailure(t, rx.Receiving())

	// the receiver waits for a mark before it accepts a start bit
	_, ok := rx.Sample(false, false)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, rx.Receiving())

	r, n = receive(&rx, frame(0xa5, false, true), false)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, r, uint8(0xa5))
}
