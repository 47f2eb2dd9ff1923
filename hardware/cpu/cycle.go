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

package cpu

import (
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
)

// interrupt request bits
const (
	irq0 = 0x01 // P32
	irq1 = 0x02 // P33
	irq2 = 0x04 // P31
	irq3 = 0x08 // P30 or serial in
	irq4 = 0x10 // T0 or serial out
	irq5 = 0x20 // T1
)

// the number of cycles charged for servicing an interrupt
const interruptCycles = 6

// BeginCycle prepares the CPU for the next instruction. The input ports are
// sampled afresh and falling edges on P30 to P33 raise interrupt requests
// and complete handshakes.
func (mc *CPU) BeginCycle() {
	clear(mc.portInValid[:])
	mc.portOut = mc.portLastOut

	// P30. not an interrupt source when the serial port is enabled
	if mc.p3m&0x40 == 0x00 && mc.p3Falling(0x01) {
		mc.irq |= irq3
	}

	// P31. handshake line for port 2
	mc.p31Falling = mc.p3Falling(0x02)
	if mc.p31Falling {
		if mc.p3m&0x20 == 0x20 {
			mc.handshake(mc.p2m&0x80 == 0x80, 0x40, mc.updateInput2, irq2)
		} else {
			mc.irq |= irq2
		}
	}

	// P32. handshake line for port 0
	if mc.p3Falling(0x04) {
		if mc.p3m&0x04 == 0x04 {
			mc.handshake(mc.p01m&0x03 == 0x01, 0x20, mc.updateInput0, irq0)
		} else {
			mc.irq |= irq0
		}
	}

	// P33. handshake line for port 1
	if mc.p3Falling(0x08) {
		if mc.p3m&0x18 == 0x18 {
			mc.handshake(mc.p01m&0x18 == 0x08, 0x10, mc.updateInput1, irq1)
		} else {
			mc.irq |= irq1
		}
	}
}

// handshake responds to the falling edge of a handshake input line. for an
// input port the data is latched if the ready line (a P3 output) was high.
// for an output port the ready line is raised
func (mc *CPU) handshake(input bool, ready uint8, latch func(), irq uint8) {
	if input {
		if mc.portLastOut[3]&ready == ready {
			latch()
			mc.portOut[3] &^= ready
			mc.irq |= irq
		}
		return
	}
	mc.portOut[3] |= ready
	mc.irq |= irq
}

// EndCycle completes a cycle of the number of CPU cycles used by the most
// recent instruction. A pending interrupt is serviced, the timers and serial
// port are advanced and the output ports are updated.
//
// Returns the number of cycles charged to the cycle. If an interrupt was
// serviced this will be the number of cycles required for the interrupt.
func (mc *CPU) EndCycle(cycles int) int {
	if mc.serviceInterrupt() {
		cycles = interruptCycles
	}

	sioPulse := mc.updateTimers(cycles)

	if sioPulse && mc.p3m&0x40 == 0x40 {
		mc.updateSerial()
	}

	if mc.portInValid[3] {
		mc.port3LastIn = mc.portIn[3]
	}
	mc.updatePorts()

	return cycles
}

// services the highest priority pending interrupt. returns true if an
// interrupt was serviced
func (mc *CPU) serviceInterrupt() bool {
	if mc.imr&0x80 == 0x00 || mc.irq&mc.imr&0x3f == 0x00 || !mc.priorityValid {
		return false
	}

	src, ok := mc.priority.Select(mc.irq & mc.imr & 0x3f)
	if !ok {
		return false
	}

	mc.PushWord(mc.PC)
	mc.Push(mc.ReadRegister(registers.FLAGS))

	v := src.VectorAddress()
	hi := mc.mem.ReadByte(v, false)
	mc.PC = uint16(hi)<<8 | uint16(mc.mem.ReadByte(v+1, false))

	mc.irq &^= src.Mask()
	mc.imr &= 0x7f

	return true
}

// advances the timers. returns true if T0 has produced a pulse for the
// serial port
func (mc *CPU) updateTimers(cycles int) bool {
	var sioPulse bool

	if mc.tmr&0x02 == 0x02 {
		if mc.t0.Update(cycles) {
			if mc.p3m&0x40 == 0x40 {
				sioPulse = true
			} else {
				mc.irq |= irq4
			}
			if mc.tmr&0xc0 == 0x40 {
				mc.toggleP36()
			}
		}
	}

	if mc.tmr&0x08 == 0x08 {
		var t1Cycles int

		if mc.t1ExtClock {
			// P31 is only available to the timer when it is not the port 2
			// handshake line
			if mc.p3m&0x20 == 0x00 {
				switch mc.tmr & 0x30 {
				case 0x00:
					// external clock
					if mc.p31Falling {
						t1Cycles = 1
					}
				case 0x10:
					// gate
					if mc.portValue(3)&0x02 == 0x02 {
						t1Cycles = cycles
					}
				case 0x20:
					// trigger. not retriggerable
					if mc.t1.Counter() == 0 && mc.p31Falling {
						mc.tmr |= 0x04
					}
				case 0x30:
					// trigger. retriggerable
					if mc.p31Falling {
						mc.tmr |= 0x04
					}
				}
			}
		} else {
			t1Cycles = cycles
		}

		if t1Cycles > 0 && mc.t1.Update(t1Cycles) {
			mc.irq |= irq5
			if mc.tmr&0xc0 == 0x80 {
				mc.toggleP36()
			}
		}
	}

	// load bits
	if mc.tmr&0x01 == 0x01 {
		mc.t0.Init()
		mc.tmr &^= 0x01
	}
	if mc.tmr&0x04 == 0x04 {
		mc.t1.Init()
		mc.tmr &^= 0x04
	}

	return sioPulse
}

// advances the serial port by one T0 pulse
func (mc *CPU) updateSerial() {
	if !mc.sioDivider.Pulse() {
		return
	}

	if mc.sioOut.Busy() {
		bit, done := mc.sioOut.Shift()
		mc.portOut[3] &= 0x7f
		if bit {
			mc.portOut[3] |= 0x80
		}
		if done {
			mc.irq |= irq4
		}
	}

	if v, ok := mc.sioIn.Sample(mc.portValue(3)&0x01 == 0x01, mc.p3m&0x80 == 0x80); ok {
		mc.sio = v
		mc.irq |= irq3
	}
}
