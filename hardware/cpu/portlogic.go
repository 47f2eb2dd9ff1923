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

// the value of the port pins as driven by the external hardware. the port is
// sampled at most once per cycle
func (mc *CPU) portValue(port int) uint8 {
	if !mc.portInValid[port] {
		if mc.io == nil {
			return 0xff
		}
		mc.portIn[port] = mc.io.GetPortValue(port)
		mc.portInValid[port] = true
	}
	return mc.portIn[port]
}

// address bus value as seen on the ports when they are configured as address
// lines. the address of the most recently fetched byte
func (mc *CPU) addressBus() uint16 {
	return mc.PC - 1
}

// update register 0 from the port 0 pins according to P01M. the lower and
// upper nibbles of port 0 are configured separately
func (mc *CPU) updateInput0() {
	var v uint8
	if mc.p01m&0x03 == 0x01 || mc.p01m&0xc0 == 0x40 {
		v = mc.portValue(0)
	}

	var r uint8

	// P00-P03
	switch mc.p01m & 0x03 {
	case 0x00:
		r = mc.portLastOut[0] & 0x0f
	case 0x01:
		r = v & 0x0f
	default:
		// A8-A11
		r = uint8(mc.addressBus()>>8) & 0x0f
	}

	// P04-P07
	switch mc.p01m & 0xc0 {
	case 0x00:
		r |= mc.portLastOut[0] & 0xf0
	case 0x40:
		r |= v & 0xf0
	default:
		// A12-A15
		r |= uint8(mc.addressBus()>>8) & 0xf0
	}

	mc.registers[0] = r
}

// update register 1 from the port 1 pins according to P01M
func (mc *CPU) updateInput1() {
	switch mc.p01m & 0x18 {
	case 0x00:
		mc.registers[1] = mc.portLastOut[1]
	case 0x08, 0x18:
		// input or high impedance
		mc.registers[1] = mc.portValue(1)
	case 0x10:
		// A0-A7
		mc.registers[1] = uint8(mc.addressBus())
	}
}

// update register 2 from the port 2 pins according to P2M. bit 0 of P3M
// selects between open-drain and push-pull outputs
func (mc *CPU) updateInput2() {
	// all outputs and push-pull. external hardware has no influence
	if mc.p2m == 0x00 && mc.p3m&0x01 == 0x01 {
		mc.registers[2] = mc.portLastOut[2]
		return
	}

	v := mc.portValue(2)
	if mc.p3m&0x01 == 0x01 {
		v = (v & mc.p2m) | (mc.portLastOut[2] &^ mc.p2m)
	}
	mc.registers[2] = v
}

// write to one of the port registers
func (mc *CPU) writePort(r uint8, v uint8) {
	mc.latch[r] = v
	out := mc.portOut[r]

	switch r {
	case 0:
		if mc.p01m&0xc0 == 0x00 {
			// P04-P07 output
			out = (v & 0xf0) | (out & 0x0f)
		}
		if mc.p01m&0x03 == 0x00 {
			// P00-P03 output
			out = (out & 0xf0) | (v & 0x0f)
		}
		if mc.p01m&0xc0 == 0x00 && mc.p3m&0x04 == 0x04 && mc.portValue(3)&0x04 == 0x04 {
			// output handshake with P32 high. P35 signals data available
			mc.portOut[3] &= 0xdf
		}

	case 1:
		if mc.p01m&0x18 == 0x00 {
			out = v
			if mc.p3m&0x18 == 0x18 && mc.portValue(3)&0x08 == 0x08 {
				// output handshake with P33 high. P34 signals data available
				mc.portOut[3] &= 0xef
			}
		}

	case 2:
		// bits set in P2M are inputs
		out = (out & mc.p2m) | (v &^ mc.p2m)
		if mc.p2m&0x80 == 0x00 && mc.p3m&0x20 == 0x20 && mc.portValue(3)&0x02 == 0x02 {
			// output handshake with P31 high. P36 signals data available
			mc.portOut[3] &= 0xbf
		}

	case 3:
		// P30-P33 are always inputs
		out = (out & 0xf0) | (mc.port3LastIn & 0x0f)

		// P34-P37 are outputs unless they have a special function
		if mc.p3m&0x18 == 0x00 {
			out = (out & 0xef) | (v & 0x10)
		}
		if mc.p3m&0x04 == 0x00 {
			out = (out & 0xdf) | (v & 0x20)
		}
		if mc.p3m&0x20 == 0x00 {
			out = (out & 0xbf) | (v & 0x40)
		}
		if mc.p3m&0x80 == 0x00 {
			out = (out & 0x7f) | (v & 0x80)
		}
	}

	mc.portOut[r] = out
}

// returns true if the port 3 bit selected by mask was high in the previous
// cycle and is low now
func (mc *CPU) p3Falling(mask uint8) bool {
	now := mc.portValue(3) & mask
	return now == 0 && mc.port3LastIn&mask != 0
}

// toggle P36. used by the timer outputs
func (mc *CPU) toggleP36() {
	mc.portOut[3] = (mc.portOut[3] & 0xbf) | (^mc.portLastOut[3] & 0x40)
}

// report changed output values to the external hardware
func (mc *CPU) updatePorts() {
	for i, v := range mc.portOut {
		if v != mc.portLastOut[i] {
			mc.portLastOut[i] = v
			if mc.io != nil {
				mc.io.SetPortValue(i, v)
			}
		}
	}
}

// PortOutput returns the output value of a port as reported to the external
// hardware at the end of the most recent cycle.
func (mc *CPU) PortOutput(port int) uint8 {
	if port < 0 || port >= len(mc.portLastOut) {
		return 0xff
	}
	return mc.portLastOut[port]
}
