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
	"github.com/jetsetilly/gopherz8/hardware/cpu/interrupts"
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz8/logger"
)

// ReadRegister returns the value of a register as seen by a program running
// on the CPU. Reading a port register samples the port.
func (mc *CPU) ReadRegister(r uint8) uint8 {
	if r < registers.FirstControl {
		if r > mc.maxGPR {
			mc.diagnostic("reading unimplemented", r, r)
			return r
		}

		switch r {
		case 0:
			if mc.p3m&0x04 == 0x04 && mc.p01m&0x03 == 0x01 {
				// port 0 input handshake. P35 signals ready
				mc.portOut[3] |= 0x20
			} else {
				mc.updateInput0()
			}
		case 1:
			if mc.p3m&0x18 == 0x18 && mc.p01m&0x18 == 0x08 {
				// port 1 input handshake. P34 signals ready
				mc.portOut[3] |= 0x10
			} else {
				mc.updateInput1()
			}
		case 2:
			if mc.p3m&0x20 == 0x20 && mc.p2m&0x80 == 0x80 {
				// port 2 input handshake. P36 signals ready
				mc.portOut[3] |= 0x40
			} else {
				mc.updateInput2()
			}
		case 3:
			mc.registers[3] = (mc.portOut[3] & 0xf0) | (mc.portValue(3) & 0x0f)
		}

		v := mc.registers[r]
		if r > upperRegisters {
			mc.diagnostic("reading upper", r, v)
		}
		return v
	}

	switch r {
	case registers.SIO:
		return mc.sio
	case registers.TMR:
		return mc.tmr
	case registers.T1:
		return mc.t1.Counter()
	case registers.T0:
		return mc.t0.Counter()
	case registers.PRE1, registers.PRE0, registers.P2M, registers.P3M, registers.P01M, registers.IPR:
		return 0xff
	case registers.IRQ:
		return mc.irq
	case registers.IMR:
		return mc.imr
	case registers.FLAGS:
		return mc.Flags.Value()
	case registers.RP:
		return mc.rp
	case registers.SPH:
		return mc.sph
	case registers.SPL:
		return mc.spl
	}

	return r
}

// PeekRegister returns the value of a register without side effects. Ports
// return the value most recently read by the program. The write-only
// registers return the value most recently written to them and the timer
// registers return the current count.
func (mc *CPU) PeekRegister(r uint8) uint8 {
	if r < registers.FirstControl {
		if r > mc.maxGPR {
			return 0xff
		}
		return mc.registers[r]
	}

	switch r {
	case registers.SIO:
		return mc.sio
	case registers.TMR:
		return mc.tmr
	case registers.T1:
		return mc.t1.Counter()
	case registers.PRE1:
		return mc.t1.PreRegister
	case registers.T0:
		return mc.t0.Counter()
	case registers.PRE0:
		return mc.t0.PreRegister
	case registers.P2M:
		return mc.p2m
	case registers.P3M:
		return mc.p3m
	case registers.P01M:
		return mc.p01m
	case registers.IPR:
		return mc.ipr
	case registers.IRQ:
		return mc.irq
	case registers.IMR:
		return mc.imr
	case registers.FLAGS:
		return mc.Flags.Value()
	case registers.RP:
		return mc.rp
	case registers.SPH:
		return mc.sph
	}

	// SPL is the only remaining control register
	return mc.spl
}

// WriteRegister sets the value of a register as though written by a program
// running on the CPU.
func (mc *CPU) WriteRegister(r uint8, v uint8) {
	if r < registers.FirstControl {
		if r < 4 {
			mc.writePort(r, v)
			return
		}
		if r > mc.maxGPR {
			mc.diagnostic("writing unimplemented", r, v)
			return
		}
		if r > upperRegisters {
			mc.diagnostic("writing upper", r, v)
		}
		mc.registers[r] = v
		return
	}

	switch r {
	case registers.SPL:
		mc.spl = v
	case registers.SPH:
		mc.sph = v
	case registers.RP:
		mc.rp = v & 0xf0
	case registers.FLAGS:
		mc.Flags.FromValue(v)
	case registers.IMR:
		mc.imr = v
	case registers.IRQ:
		if mc.eiExecuted {
			mc.irq = v
		}
	case registers.IPR:
		if p, ok := interrupts.Decode(v); ok {
			mc.priority = p
			mc.priorityValid = true
		} else {
			logger.Logf(logger.Allow, "z8", "reserved IPR value (%02x). priority unchanged", v)
		}
		mc.ipr = v
	case registers.P01M:
		mc.p01m = v
	case registers.P3M:
		if mc.p3m&0x40 == 0x00 && v&0x40 == 0x40 {
			// serial port enabled
			mc.sioIn.Reset()
			mc.sioOut.Reset()
		}
		mc.p3m = v
	case registers.P2M:
		mc.p2m = v
	case registers.PRE0:
		mc.t0.SetPrescaler(v)
		mc.tmr |= 0x01
	case registers.T0:
		mc.t0.SetCounter(v)
		mc.tmr |= 0x01
	case registers.PRE1:
		mc.t1.SetPrescaler(v)
		mc.t1ExtClock = v&0x02 == 0x00
		mc.tmr |= 0x04
	case registers.T1:
		mc.t1.SetCounter(v)
		mc.tmr |= 0x04
	case registers.TMR:
		mc.tmr = v
	case registers.SIO:
		if mc.p3m&0x40 == 0x40 {
			mc.sioOut.Load(v, mc.p3m&0x80 == 0x80, mc.portLastOut[3]&0x80 == 0x80)
		}
	}
}

// the register number of a working register
func (mc *CPU) working(n uint8) uint8 {
	return (mc.rp & 0xf0) | (n & 0x0f)
}

// WorkingRegister returns the register number of working register n, as
// selected by the register pointer.
func (mc *CPU) WorkingRegister(n uint8) uint8 {
	return mc.working(n)
}

// resolve a register operand. operands of the form Ex are working registers
func (mc *CPU) resolve(r uint8) uint8 {
	if r&0xf0 == registers.WorkingGroup {
		return mc.working(r)
	}
	return r
}

// read register operand
func (mc *CPU) readOperand(r uint8) uint8 {
	return mc.ReadRegister(mc.resolve(r))
}

// write register operand
func (mc *CPU) writeOperand(r uint8, v uint8) {
	mc.WriteRegister(mc.resolve(r), v)
}

// ReadRegisterWord returns the value of a register pair. Bit zero of the
// register number is ignored.
func (mc *CPU) ReadRegisterWord(r uint8) uint16 {
	r &= 0xfe
	return uint16(mc.ReadRegister(r))<<8 | uint16(mc.ReadRegister(r+1))
}

// WriteRegisterWord sets the value of a register pair. Bit zero of the
// register number is ignored.
func (mc *CPU) WriteRegisterWord(r uint8, v uint16) {
	r &= 0xfe
	mc.WriteRegister(r, uint8(v>>8))
	mc.WriteRegister(r+1, uint8(v))
}

// InterruptPriority returns the priority ordering in effect. The bool return
// value is false if no valid value has been written to IPR since power-on.
func (mc *CPU) InterruptPriority() (interrupts.Priority, bool) {
	return mc.priority, mc.priorityValid
}
