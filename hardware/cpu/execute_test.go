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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherz8/hardware/cpu"
	"github.com/jetsetilly/gopherz8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz8/test"
)

func TestLoadImmediate(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// SRP #10; LD r0,#2A; INC @r0 (as INC IR1 with a working register)
	mem.putInstructions(cpu.ResetAddress, 0x31, 0x10, 0x0c, 0x2a, 0x21, 0xe0)

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PeekRegister(registers.RP), uint8(0x10))
	test.ExpectEquality(t, mc.WorkingRegister(0), uint8(0x10))

	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, r.Address, uint16(0x000e))
	test.ExpectEquality(t, r.Opcode, uint8(0x0c))
	test.ExpectEquality(t, mc.ReadRegister(0x10), uint8(0x2a))

	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.ReadRegister(0x2a), uint8(0x01))
	test.ExpectEquality(t, mc.Flags.String(), "czsvdh")
	test.ExpectEquality(t, mc.PC, uint16(0x0012))
}

func TestAddWithCarry(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// SRP #10; SCF; LD r1,#7F; ADC R1,#01 (R1 as working register E1)
	mem.putInstructions(cpu.ResetAddress, 0x31, 0x10, 0xdf, 0x1c, 0x7f, 0x16, 0xe1, 0x01)
	run(mc, 3)
	test.ExpectSuccess(t, mc.Flags.Carry)

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.ReadRegister(0x11), uint8(0x81))
	test.ExpectFailure(t, mc.Flags.Carry)
	test.ExpectFailure(t, mc.Flags.Zero)
	test.ExpectSuccess(t, mc.Flags.Sign)
	test.ExpectSuccess(t, mc.Flags.Overflow)
	test.ExpectSuccess(t, mc.Flags.HalfCarry)
	test.ExpectFailure(t, mc.Flags.DecimalAdjust)
}

func TestDecimalAdjust(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// SRP #20; LD r0,#15; LD r1,#27; ADD r0,r1; DA R0
	mem.putInstructions(cpu.ResetAddress, 0x31, 0x20, 0x0c, 0x15, 0x1c, 0x27, 0x02, 0x01, 0x40, 0xe0)
	run(mc, 4)
	test.ExpectEquality(t, mc.ReadRegister(0x20), uint8(0x3c))

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 8)
	test.ExpectEquality(t, mc.ReadRegister(0x20), uint8(0x42))
	test.ExpectFailure(t, mc.Flags.Carry)
}

func TestRelativeJump(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// RCF; JR C,+2; JR NC,+2
	mem.putInstructions(cpu.ResetAddress, 0xcf, 0x7b, 0x02, 0xfb, 0x02)
	step(mc)

	// condition false
	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.PC, uint16(0x000f))

	// condition true
	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 12)
	test.ExpectEquality(t, mc.PC, uint16(0x0013))

	// backwards jump to self
	mem.putInstructions(0x0013, 0x8b, 0xfe)
	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 12)
	test.ExpectEquality(t, mc.PC, uint16(0x0013))
}

func TestAbsoluteJump(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// JP Z,1234; JP NZ,0100
	mem.putInstructions(cpu.ResetAddress, 0x6d, 0x12, 0x34, 0xed, 0x01, 0x00)

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.PC, uint16(0x000f))

	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 12)
	test.ExpectEquality(t, mc.PC, uint16(0x0100))
}

func TestDJNZ(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// SRP #10; LD r2,#3; LD r3,#0
	// loop: INC r3; DJNZ r2,loop
	mem.putInstructions(cpu.ResetAddress, 0x31, 0x10, 0x2c, 0x03, 0x3c, 0x00, 0x3e, 0x2a, 0xfd)
	run(mc, 3)

	for i := range 3 {
		step(mc)
		r := step(mc)
		if i < 2 {
			test.ExpectEquality(t, r.Cycles, 12, i)
			test.ExpectEquality(t, mc.PC, uint16(0x0012), i)
		} else {
			test.ExpectEquality(t, r.Cycles, 10, i)
			test.ExpectEquality(t, mc.PC, uint16(0x0015), i)
		}
	}

	test.ExpectEquality(t, mc.ReadRegister(0x13), uint8(0x03))
	test.ExpectEquality(t, mc.ReadRegister(0x12), uint8(0x00))
}

func TestFlagsOnlyOperators(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// SRP #30; LD r0,#0F; LD r1,#F0; TM r0,r1; CP r0,r1; TCM R0,#F0
	mem.putInstructions(cpu.ResetAddress,
		0x31, 0x30, 0x0c, 0x0f, 0x1c, 0xf0,
		0x72, 0x01, 0xa2, 0x01, 0x66, 0xe0, 0xf0)
	run(mc, 3)

	step(mc)
	test.ExpectSuccess(t, mc.Flags.Zero)
	test.ExpectEquality(t, mc.ReadRegister(0x30), uint8(0x0f))

	step(mc)
	test.ExpectSuccess(t, mc.Flags.Carry)
	test.ExpectFailure(t, mc.Flags.Zero)
	test.ExpectEquality(t, mc.ReadRegister(0x30), uint8(0x0f))

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectFailure(t, mc.Flags.Zero)
	test.ExpectEquality(t, mc.ReadRegister(0x30), uint8(0x0f))
}

func TestIndexedLoad(t *testing.T) {
	mc, mem := newCPU(t, nil)

	mc.WriteRegister(0x45, 0x99)

	// SRP #10; LD r1,#40; LD r0,5(r1); LD 6(r1),r0
	mem.putInstructions(cpu.ResetAddress, 0x31, 0x10, 0x1c, 0x40, 0xc7, 0x01, 0x05, 0xd7, 0x01, 0x06)
	run(mc, 2)

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.ReadRegister(0x10), uint8(0x99))

	step(mc)
	test.ExpectEquality(t, mc.ReadRegister(0x46), uint8(0x99))
}

func TestLoadConstant(t *testing.T) {
	mc, mem := newCPU(t, nil)

	mem.putInstructions(0x2000, 0xab, 0xcd)

	// SRP #10; LD r2,#20; LD r3,#00; LDCI @r0,@rr2 (r0 holding 50)
	mem.putInstructions(cpu.ResetAddress, 0x31, 0x10, 0x2c, 0x20, 0x3c, 0x00, 0x0c, 0x50,
		0xc3, 0x02, 0xc3, 0x02, 0xc2, 0x42)
	run(mc, 4)

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 18)
	step(mc)
	test.ExpectEquality(t, mc.ReadRegister(0x50), uint8(0xab))
	test.ExpectEquality(t, mc.ReadRegister(0x51), uint8(0xcd))
	test.ExpectEquality(t, mc.ReadRegister(0x10), uint8(0x52))
	test.ExpectEquality(t, mc.ReadRegisterWord(0x12), uint16(0x2002))

	// LDC r4,@rr2
	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 12)
	test.ExpectEquality(t, mc.ReadRegister(0x14), uint8(0x00))
}

func TestCallReturn(t *testing.T) {
	mc, mem := newCPU(t, nil)
	test.DemandSuccess(t, mc.InternalStack())

	// LD SPL,#80; CALL 0100
	mem.putInstructions(cpu.ResetAddress, 0xe6, 0xff, 0x80, 0xd6, 0x01, 0x00)

	// subroutine: RET
	mem.putInstructions(0x0100, 0xaf)

	step(mc)
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x0080))

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 20)
	test.ExpectEquality(t, mc.PC, uint16(0x0100))
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x007e))
	test.ExpectEquality(t, mc.ReadRegisterWord(0x7e), uint16(0x0012))

	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 14)
	test.ExpectEquality(t, mc.PC, uint16(0x0012))
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x0080))
}

func TestHaltAndStop(t *testing.T) {
	mc, mem := newCPU(t, nil)
	mem.putInstructions(cpu.ResetAddress, 0x7f, 0x6f)

	r := step(mc)
	test.ExpectEquality(t, r.Effect, execution.Halt)
	test.ExpectEquality(t, r.Cycles, 7)

	r = step(mc)
	test.ExpectEquality(t, r.Effect, execution.Stop)
	test.ExpectEquality(t, r.Cycles, 6)
}

func TestUnknownOpcode(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// WDT and an undefined opcode
	mem.putInstructions(cpu.ResetAddress, 0x5f, 0x0f, 0xff)
	for range 3 {
		r := step(mc)
		test.ExpectEquality(t, r.Cycles, 6)
		test.ExpectEquality(t, r.Effect, execution.None)
	}
	test.ExpectEquality(t, mc.PC, uint16(0x000f))
}

func TestAllOpcodes(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// every opcode executes with a valid cycle count
	valid := map[int]bool{6: true, 7: true, 8: true, 10: true, 12: true, 14: true, 16: true, 18: true, 20: true}
	for op := 0; op <= 0xff; op++ {
		mc.Reset(true)
		mc.WriteRegister(registers.SPL, 0x80)
		mem.putInstructions(cpu.ResetAddress, uint8(op), 0x10, 0x20)
		r := mc.ExecuteInstruction()
		test.ExpectSuccess(t, valid[r.Cycles], op)
	}
}
