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

package uart

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gopherz8/hardware/ports"
	"github.com/jetsetilly/gopherz8/logger"
)

// Clock is the source of the emulation time.
type Clock interface {
	Cycles() int64
}

const (
	// port 3 pins used by the serial port
	serialIn  = 0x01
	serialOut = 0x80

	// the number of bits in a frame, including the start and stop bits
	frameBits = 10

	// capacity of the receive channel
	receiveBuffer = 256
)

// CyclesPerBit returns the number of CPU cycles in a bit period for the
// values written to the PRE0 and T0 registers. The serial port divides the
// T0 output by sixteen.
func CyclesPerBit(pre0 uint8, t0 uint8) int64 {
	prescale := int64(pre0>>2) & 0x3f
	if prescale == 0 {
		prescale = 64
	}
	count := int64(t0)
	if count == 0 {
		count = 256
	}
	return 4 * prescale * count * 16
}

// UART is an implementation of the ports.IO interface.
type UART struct {
	crit sync.Mutex

	io  ports.IO
	clk Clock

	cyclesPerBit int64

	// the level of P37 as most recently output by the Z8
	level bool

	// frame being received from the Z8
	receiving bool
	rxStart   int64
	rxBit     int
	rxValue   uint8
	received  chan uint8

	// values waiting to be sent to the Z8. the first entry is the frame
	// currently being sent, which started at txStart
	queue   []uint8
	txStart int64
}

// NewUART is the preferred method of initialisation for the UART type.
func NewUART(io ports.IO, clk Clock, cyclesPerBit int64) *UART {
	return &UART{
		io:           io,
		clk:          clk,
		cyclesPerBit: max(cyclesPerBit, 2),
		level:        true,
		received:     make(chan uint8, receiveBuffer),
	}
}

func (u *UART) String() string {
	u.crit.Lock()
	defer u.crit.Unlock()
	return fmt.Sprintf("%d cycles per bit; %d queued", u.cyclesPerBit, len(u.queue))
}

// SetCyclesPerBit changes the bit period. Frames being sent or received are
// abandoned.
func (u *UART) SetCyclesPerBit(cycles int64) {
	u.crit.Lock()
	defer u.crit.Unlock()
	u.cyclesPerBit = max(cycles, 2)
	u.receiving = false
	u.queue = u.queue[:0]
}

// Received returns the channel on which values sent by the Z8 are delivered.
// Values are dropped if the channel is full.
func (u *UART) Received() <-chan uint8 {
	return u.received
}

// Send queues values for sending to the Z8.
func (u *UART) Send(data ...uint8) {
	u.crit.Lock()
	defer u.crit.Unlock()

	now := u.clk.Cycles()
	if !u.sending(now) {
		u.txStart = now
	}
	u.queue = append(u.queue, data...)
}

// Pending returns the number of values that have not been completely sent.
func (u *UART) Pending() int {
	u.crit.Lock()
	defer u.crit.Unlock()
	u.sending(u.clk.Cycles())
	return len(u.queue)
}

// GetPortValue implements the ports.IO interface.
func (u *UART) GetPortValue(port int) uint8 {
	v := u.io.GetPortValue(port)
	if port != 3 {
		return v
	}

	u.crit.Lock()
	defer u.crit.Unlock()

	now := u.clk.Cycles()
	u.sample(now)
	if !u.line(now) {
		v &^= serialIn
	}
	return v
}

// SetPortValue implements the ports.IO interface.
func (u *UART) SetPortValue(port int, value uint8) {
	u.io.SetPortValue(port, value)
	if port != 3 {
		return
	}

	u.crit.Lock()
	defer u.crit.Unlock()

	now := u.clk.Cycles()

	// the previous level applies to all sample points before now
	u.sample(now)

	high := value&serialOut == serialOut
	if u.level && !high && !u.receiving {
		u.receiving = true
		u.rxStart = now
		u.rxBit = 0
		u.rxValue = 0
	}
	u.level = high
}

// sample the output of the Z8 at the middle of every bit period that ended
// before now
func (u *UART) sample(now int64) {
	for u.receiving {
		t := u.rxStart + int64(u.rxBit)*u.cyclesPerBit + u.cyclesPerBit/2
		if t >= now {
			return
		}

		switch {
		case u.rxBit == 0:
			// a start bit that does not last until the middle of the bit
			// period is a glitch
			if u.level {
				u.receiving = false
			}
		case u.rxBit < frameBits-1:
			if u.level {
				u.rxValue |= 0x01 << (u.rxBit - 1)
			}
		default:
			u.receiving = false
			if u.level {
				u.deliver(u.rxValue)
			} else {
				logger.Logf(logger.Allow, "uart", "framing error receiving %02x", u.rxValue)
			}
		}

		u.rxBit++
	}
}

func (u *UART) deliver(v uint8) {
	select {
	case u.received <- v:
	default:
		logger.Logf(logger.Allow, "uart", "receive buffer full. %02x dropped", v)
	}
}

// removes completed frames from the queue. returns true if a frame is being
// sent at time now
func (u *UART) sending(now int64) bool {
	frame := frameBits * u.cyclesPerBit
	for len(u.queue) > 0 && now-u.txStart >= frame {
		u.queue = u.queue[1:]
		u.txStart += frame
	}
	return len(u.queue) > 0
}

// the level of the serial input to the Z8 at time now
func (u *UART) line(now int64) bool {
	if !u.sending(now) {
		return true
	}

	bit := (now - u.txStart) / u.cyclesPerBit
	switch {
	case bit == 0:
		return false
	case bit < frameBits-1:
		return u.queue[0]>>(bit-1)&0x01 == 0x01
	}
	return true
}
