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
	"github.com/jetsetilly/gopherz8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherz8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz8/logger"
)

// read the next byte of the instruction from program memory
func (mc *CPU) fetch() uint8 {
	v := mc.mem.ReadByte(mc.PC, false)
	mc.PC++
	return v
}

// read the next two bytes of the instruction as a big endian word
func (mc *CPU) fetchWord() uint16 {
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(mc.fetch())
}

// apply a relative displacement to the program counter
func (mc *CPU) branch(d uint8) {
	mc.PC = uint16(int(mc.PC) + int(int8(d)))
}

// read-modify-write of a register
func (mc *CPU) modify(r uint8, f func(uint8) uint8) {
	mc.WriteRegister(r, f(mc.ReadRegister(r)))
}

// read-modify-write of a register pair
func (mc *CPU) modifyWord(r uint8, f func(uint16) uint16) {
	mc.WriteRegisterWord(r, f(mc.ReadRegisterWord(r)))
}

// the two working registers encoded in the nibbles of an operand byte
func (mc *CPU) workingPair(b uint8) (uint8, uint8) {
	return mc.working(b >> 4), mc.working(b)
}

// ExecuteInstruction executes the instruction at the program counter.
func (mc *CPU) ExecuteInstruction() execution.Result {
	r := execution.Result{
		Address: mc.PC,
	}

	opcode := mc.fetch()
	r.Opcode = opcode

	hi := opcode >> 4

	switch opcode & 0x0f {
	case 0x08:
		// LD r1,R2
		dst := mc.working(hi)
		mc.WriteRegister(dst, mc.readOperand(mc.fetch()))
		r.Cycles = 6

	case 0x09:
		// LD R2,r1
		src := mc.working(hi)
		mc.writeOperand(mc.fetch(), mc.ReadRegister(src))
		r.Cycles = 6

	case 0x0a:
		// DJNZ r1,RA
		reg := mc.working(hi)
		d := mc.fetch()
		v := mc.ReadRegister(reg) - 1
		mc.WriteRegister(reg, v)
		if v != 0 {
			mc.branch(d)
			r.Cycles = 12
		} else {
			r.Cycles = 10
		}

	case 0x0b:
		// JR cc,RA
		d := mc.fetch()
		if instructions.ConditionFromOpcode(opcode).Check(mc.Flags) {
			mc.branch(d)
			r.Cycles = 12
		} else {
			r.Cycles = 10
		}

	case 0x0c:
		// LD r1,IM
		mc.writeOperand(mc.working(hi), mc.fetch())
		r.Cycles = 6

	case 0x0d:
		// JP cc,DA
		a := mc.fetchWord()
		if instructions.ConditionFromOpcode(opcode).Check(mc.Flags) {
			mc.PC = a
			r.Cycles = 12
		} else {
			r.Cycles = 10
		}

	case 0x0e:
		// INC r1
		mc.modify(mc.working(hi), mc.Flags.Inc)
		r.Cycles = 6

	default:
		if op, ok := instructions.DecodeOperator(opcode); ok {
			r.Cycles = mc.executeALU(opcode, op)
		} else {
			r.Cycles, r.Effect = mc.executeOther(opcode)
		}
	}

	return r
}

// executeALU executes the arithmetic and logic instructions. the low nibble
// of the opcode is the addressing mode and is in the range 2 to 7
func (mc *CPU) executeALU(opcode uint8, op instructions.Operator) int {
	var dst uint8
	var cycles int

	// the source operand is either a register, read after the destination
	// register, or an immediate value
	var src uint8
	var srcReg uint8
	var immediate bool

	switch opcode & 0x0f {
	case 0x02:
		// r1,r2
		dst, srcReg = mc.workingPair(mc.fetch())
		cycles = 6

	case 0x03:
		// r1,Ir2
		var r2 uint8
		dst, r2 = mc.workingPair(mc.fetch())
		srcReg = mc.ReadRegister(r2)
		cycles = 6

	case 0x04:
		// R1,R2. the source register is the first operand byte
		srcReg = mc.resolve(mc.fetch())
		dst = mc.resolve(mc.fetch())
		cycles = 10

	case 0x05:
		// R1,IR2
		srcReg = mc.readOperand(mc.fetch())
		dst = mc.resolve(mc.fetch())
		cycles = 10

	case 0x06:
		// R1,IM
		dst = mc.resolve(mc.fetch())
		src = mc.fetch()
		immediate = true
		cycles = 10

	case 0x07:
		// IR1,IM
		dst = mc.readOperand(mc.fetch())
		src = mc.fetch()
		immediate = true
		cycles = 10
	}

	v := mc.ReadRegister(dst)
	if !immediate {
		src = mc.ReadRegister(srcReg)
	}

	switch op {
	case instructions.ADD:
		mc.WriteRegister(dst, mc.Flags.Add(v, src, false))
	case instructions.ADC:
		mc.WriteRegister(dst, mc.Flags.Add(v, src, mc.Flags.Carry))
	case instructions.SUB:
		mc.WriteRegister(dst, mc.Flags.Sub(v, src, false))
	case instructions.SBC:
		mc.WriteRegister(dst, mc.Flags.Sub(v, src, mc.Flags.Carry))
	case instructions.OR:
		mc.WriteRegister(dst, mc.Flags.Logic(v|src))
	case instructions.AND:
		mc.WriteRegister(dst, mc.Flags.Logic(v&src))
	case instructions.TCM:
		mc.Flags.Logic(^v & src)
	case instructions.TM:
		mc.Flags.Logic(v & src)
	case instructions.CP:
		mc.Flags.Compare(v, src)
	case instructions.XOR:
		mc.WriteRegister(dst, mc.Flags.Logic(v^src))
	}

	return cycles
}

// executeOther executes the instructions that are not decoded by the low
// nibble alone. unrecognised opcodes are executed as a six cycle NOP
func (mc *CPU) executeOther(opcode uint8) (int, execution.Effect) {
	switch opcode {
	case 0x00:
		// DEC R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.Dec)
	case 0x01:
		// DEC IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.Dec)
	case 0x10:
		// RLC R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.RotateLeftCarry)
	case 0x11:
		// RLC IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.RotateLeftCarry)
	case 0x20:
		// INC R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.Inc)
	case 0x21:
		// INC IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.Inc)

	case 0x30:
		// JP IRR1
		mc.PC = mc.ReadRegisterWord(mc.resolve(mc.fetch()))
		return 8, execution.None

	case instructions.SRP:
		mc.WriteRegister(registers.RP, mc.fetch()&0xf0)

	case 0x40:
		// DA R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.DA)
		return 8, execution.None
	case 0x41:
		// DA IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.DA)
		return 8, execution.None

	case 0x50:
		// POP R1
		dst := mc.fetch()
		mc.writeOperand(dst, mc.Pop())
		return 10, execution.None
	case 0x51:
		// POP IR1
		dst := mc.readOperand(mc.fetch())
		mc.WriteRegister(dst, mc.Pop())
		return 10, execution.None

	case 0x60:
		// COM R1
		dst := mc.fetch()
		mc.writeOperand(dst, mc.Flags.Logic(^mc.readOperand(dst)))
	case 0x61:
		// COM IR1
		mc.modify(mc.readOperand(mc.fetch()), func(v uint8) uint8 {
			return mc.Flags.Logic(^v)
		})

	case instructions.Stop:
		return 6, execution.Stop

	case 0x70:
		// PUSH R1
		mc.Push(mc.readOperand(mc.fetch()))
		if mc.InternalStack() {
			return 10, execution.None
		}
		return 12, execution.None
	case 0x71:
		// PUSH IR1. the indirect register number is itself treated as an
		// operand and may select a working register
		mc.Push(mc.readOperand(mc.readOperand(mc.fetch())))
		if mc.InternalStack() {
			return 12, execution.None
		}
		return 14, execution.None

	case instructions.Halt:
		return 7, execution.Halt

	case 0x80:
		// DECW RR1
		mc.modifyWord(mc.resolve(mc.fetch()), mc.Flags.DecW)
		return 10, execution.None
	case 0x81:
		// DECW IR1
		mc.modifyWord(mc.readOperand(mc.fetch()), mc.Flags.DecW)
		return 10, execution.None

	case 0x82, 0xc2:
		// LDE r1,Irr2 and LDC r1,Irr2
		dst, src := mc.workingPair(mc.fetch())
		mc.WriteRegister(dst, mc.mem.ReadByte(mc.ReadRegisterWord(src), opcode == 0x82))
		return 12, execution.None

	case 0x83, 0xc3:
		// LDEI Ir1,Irr2 and LDCI Ir1,Irr2
		r1, r2 := mc.workingPair(mc.fetch())
		dst := mc.ReadRegister(r1)
		a := mc.ReadRegisterWord(r2)
		mc.WriteRegister(dst, mc.mem.ReadByte(a, opcode == 0x83))
		mc.WriteRegister(r1, dst+1)
		mc.WriteRegisterWord(r2, a+1)
		return 18, execution.None

	case instructions.DI:
		mc.imr &= 0x7f

	case 0x90:
		// RL R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.RotateLeft)
	case 0x91:
		// RL IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.RotateLeft)

	case 0x92, 0xd2:
		// LDE Irr2,r1 and LDC Irr2,r1
		src, dst := mc.workingPair(mc.fetch())
		mc.mem.WriteByte(mc.ReadRegisterWord(dst), opcode == 0x92, mc.ReadRegister(src))
		return 12, execution.None

	case 0x93, 0xd3:
		// LDEI Irr2,Ir1 and LDCI Irr2,Ir1
		r1, r2 := mc.workingPair(mc.fetch())
		src := mc.ReadRegister(r1)
		a := mc.ReadRegisterWord(r2)
		mc.mem.WriteByte(a, opcode == 0x93, mc.ReadRegister(src))
		mc.WriteRegister(r1, src+1)
		mc.WriteRegisterWord(r2, a+1)
		return 18, execution.None

	case instructions.EI:
		mc.imr |= 0x80
		mc.eiExecuted = true

	case 0xa0:
		// INCW RR1
		mc.modifyWord(mc.resolve(mc.fetch()), mc.Flags.IncW)
		return 10, execution.None
	case 0xa1:
		// INCW IR1
		mc.modifyWord(mc.readOperand(mc.fetch()), mc.Flags.IncW)
		return 10, execution.None

	case instructions.Ret:
		mc.PC = mc.PopWord()
		return 14, execution.None

	case 0xb0:
		// CLR R1
		mc.writeOperand(mc.fetch(), 0x00)
	case 0xb1:
		// CLR IR1
		mc.WriteRegister(mc.readOperand(mc.fetch()), 0x00)

	case instructions.IRet:
		mc.WriteRegister(registers.FLAGS, mc.Pop())
		mc.imr |= 0x80
		mc.PC = mc.PopWord()
		return 16, execution.None

	case 0xc0:
		// RRC R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.RotateRightCarry)
	case 0xc1:
		// RRC IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.RotateRightCarry)

	case 0xc7:
		// LD r1,x(r2)
		dst, idx := mc.workingPair(mc.fetch())
		a := mc.ReadRegister(idx) + mc.fetch()
		mc.WriteRegister(dst, mc.ReadRegister(a))
		return 10, execution.None

	case instructions.RCF:
		mc.Flags.Carry = false

	case 0xd0:
		// SRA R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.ShiftRightArithmetic)
	case 0xd1:
		// SRA IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.ShiftRightArithmetic)

	case instructions.CallIRR:
		r := mc.resolve(mc.fetch())
		mc.PushWord(mc.PC)
		mc.PC = mc.ReadRegisterWord(r)
		return 20, execution.None

	case instructions.CallDA:
		a := mc.fetchWord()
		mc.PushWord(mc.PC)
		mc.PC = a
		return 20, execution.None

	case 0xd7:
		// LD x(r2),r1
		src, idx := mc.workingPair(mc.fetch())
		a := mc.ReadRegister(idx) + mc.fetch()
		mc.WriteRegister(a, mc.ReadRegister(src))
		return 10, execution.None

	case instructions.SCF:
		mc.Flags.Carry = true

	case 0xe0:
		// RR R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.RotateRight)
	case 0xe1:
		// RR IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.RotateRight)

	case 0xe3:
		// LD r1,Ir2
		dst, src := mc.workingPair(mc.fetch())
		mc.WriteRegister(dst, mc.ReadRegister(mc.ReadRegister(src)))

	case 0xe4:
		// LD R2,R1. the source register is the first operand byte
		src := mc.fetch()
		dst := mc.fetch()
		mc.writeOperand(dst, mc.readOperand(src))
		return 10, execution.None

	case 0xe5:
		// LD R2,IR1
		src := mc.fetch()
		dst := mc.fetch()
		mc.writeOperand(dst, mc.ReadRegister(mc.readOperand(src)))
		return 10, execution.None

	case 0xe6:
		// LD R1,IM
		dst := mc.resolve(mc.fetch())
		mc.WriteRegister(dst, mc.fetch())
		return 10, execution.None

	case 0xe7:
		// LD IR1,IM
		dst := mc.readOperand(mc.fetch())
		mc.WriteRegister(dst, mc.fetch())
		return 10, execution.None

	case instructions.CCF:
		mc.Flags.Carry = !mc.Flags.Carry

	case 0xf0:
		// SWAP R1
		mc.modify(mc.resolve(mc.fetch()), mc.Flags.Swap)
		return 8, execution.None
	case 0xf1:
		// SWAP IR1
		mc.modify(mc.readOperand(mc.fetch()), mc.Flags.Swap)
		return 8, execution.None

	case 0xf3:
		// LD Ir1,r2
		dst, src := mc.workingPair(mc.fetch())
		mc.WriteRegister(mc.ReadRegister(dst), mc.ReadRegister(src))

	case 0xf5:
		// LD IR2,R1
		src := mc.fetch()
		dst := mc.readOperand(mc.fetch())
		mc.writeOperand(dst, mc.readOperand(src))
		return 10, execution.None

	case instructions.WDh, instructions.WDT:
		logger.Logf(logger.Allow, "z8", "watchdog instruction (%02x) executed as NOP", opcode)

	default:
		// NOP and undefined opcodes
	}

	return 6, execution.None
}
