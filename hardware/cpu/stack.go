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

// InternalStack returns true if the stack is in the register file. Otherwise
// the stack is in data memory.
func (mc *CPU) InternalStack() bool {
	return mc.p01m&0x04 == 0x04
}

// StackPointer returns the current value of the stack pointer. For an
// internal stack only SPL is significant.
func (mc *CPU) StackPointer() uint16 {
	if mc.InternalStack() {
		return uint16(mc.spl)
	}
	return uint16(mc.sph)<<8 | uint16(mc.spl)
}

// Push a byte onto the stack. The stack grows downwards.
func (mc *CPU) Push(v uint8) {
	if mc.InternalStack() {
		// an internal stack wrapping below register zero loses the value
		sp := mc.spl - 1
		if mc.spl != 0x00 {
			mc.WriteRegister(sp, v)
		}
		mc.spl = sp
		return
	}
	sp := mc.StackPointer() - 1
	mc.mem.WriteByte(sp, true, v)
	mc.sph = uint8(sp >> 8)
	mc.spl = uint8(sp)
}

// Pop a byte from the stack.
func (mc *CPU) Pop() uint8 {
	if mc.InternalStack() {
		v := mc.ReadRegister(mc.spl)
		mc.spl++
		return v
	}
	sp := mc.StackPointer()
	v := mc.mem.ReadByte(sp, true)
	sp++
	mc.sph = uint8(sp >> 8)
	mc.spl = uint8(sp)
	return v
}

// PushWord pushes the low byte and then the high byte onto the stack.
func (mc *CPU) PushWord(v uint16) {
	mc.Push(uint8(v))
	mc.Push(uint8(v >> 8))
}

// PopWord pops the high byte and then the low byte from the stack.
func (mc *CPU) PopWord() uint16 {
	hi := mc.Pop()
	return uint16(hi)<<8 | uint16(mc.Pop())
}
