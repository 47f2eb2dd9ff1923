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
	"strings"
	"testing"

	"github.com/jetsetilly/gopherz8/hardware/cpu"
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz8/hardware/ports"
	"github.com/jetsetilly/gopherz8/logger"
	"github.com/jetsetilly/gopherz8/test"
)

func TestPowerOnReset(t *testing.T) {
	mc, _ := newCPU(t, nil)

	test.ExpectEquality(t, mc.PC, uint16(cpu.ResetAddress))
	test.ExpectEquality(t, mc.PeekRegister(registers.P01M), uint8(0x6d))
	test.ExpectEquality(t, mc.PeekRegister(registers.P2M), uint8(0xff))
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x00))
	test.ExpectSuccess(t, mc.InternalStack())

	for r := 0x04; r < registers.FirstControl; r++ {
		test.ExpectEquality(t, mc.PeekRegister(uint8(r)), uint8(0x00), r)
	}

	_, ok := mc.InterruptPriority()
	test.ExpectFailure(t, ok)
}

func TestRandomReset(t *testing.T) {
	env := newEnvironment(t)
	test.DemandSuccess(t, env.Prefs.RegInitZero.Set(false))
	mc := cpu.NewCPU(env, newMockMem(), nil)

	var nonZero bool
	for r := 0x04; r < registers.FirstControl; r++ {
		if mc.PeekRegister(uint8(r)) != 0x00 {
			nonZero = true
			break
		}
	}
	test.ExpectSuccess(t, nonZero)
}

func TestSoftReset(t *testing.T) {
	mc, mem := newCPU(t, nil)

	mc.WriteRegister(0x40, 0x55)
	mc.WriteRegister(registers.IPR, 0x01)
	mc.WriteRegister(registers.IMR, 0x85)
	mc.WriteRegister(registers.P01M, 0x00)

	// EI; JR $
	mem.putInstructions(cpu.ResetAddress, 0x9f, 0x8b, 0xfe)
	run(mc, 2)
	mc.WriteRegister(registers.IRQ, 0x01)
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x01))

	mc.Reset(false)
	test.ExpectEquality(t, mc.PC, uint16(cpu.ResetAddress))
	test.ExpectEquality(t, mc.PeekRegister(0x40), uint8(0x55))
	test.ExpectEquality(t, mc.PeekRegister(registers.P01M), uint8(0x6d))
	test.ExpectEquality(t, mc.PeekRegister(registers.IMR), uint8(0x05))

	// pending interrupt requests and the priority survive a soft reset
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x01))
	_, ok := mc.InterruptPriority()
	test.ExpectSuccess(t, ok)

	// and IRQ is write protected again until EI
	mc.WriteRegister(registers.IRQ, 0x00)
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x01))
}

func TestWriteOnlyRegisters(t *testing.T) {
	mc, _ := newCPU(t, nil)

	mc.WriteRegister(registers.PRE0, 0x11)
	for _, r := range []uint8{registers.PRE1, registers.PRE0, registers.P2M, registers.P3M, registers.P01M, registers.IPR} {
		test.ExpectEquality(t, mc.ReadRegister(r), uint8(0xff), registers.Name(r))
	}
	test.ExpectEquality(t, mc.PeekRegister(registers.PRE0), uint8(0x11))
	test.ExpectEquality(t, mc.PeekRegister(registers.P01M), uint8(0x6d))
}

func TestUnimplementedRegisters(t *testing.T) {
	mc, _ := newCPU(t, nil)

	mc.SetMaxGPR(0x7f)
	test.ExpectEquality(t, mc.MaxGPR(), uint8(0x7f))

	mc.WriteRegister(0x90, 0x12)
	test.ExpectEquality(t, mc.ReadRegister(0x90), uint8(0x90))
	test.ExpectEquality(t, mc.PeekRegister(0x90), uint8(0xff))

	// reading an unimplemented register is logged once until power-on
	mc.Reset(true)
	mc.SetMaxGPR(0x7f)
	logger.Clear()
	test.ExpectEquality(t, mc.ReadRegister(0x90), uint8(0x90))
	test.ExpectEquality(t, mc.ReadRegister(0x90), uint8(0x90))

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectEquality(t, strings.Count(w.String(), "reading unimplemented register"), 1)
	logger.Clear()

	mc.SetMaxGPR(0x00)
	test.ExpectEquality(t, mc.MaxGPR(), uint8(0x04))
	mc.SetMaxGPR(0xff)
	test.ExpectEquality(t, mc.MaxGPR(), uint8(0xef))
}

func TestRegisterPointer(t *testing.T) {
	mc, _ := newCPU(t, nil)

	mc.WriteRegister(registers.RP, 0x3f)
	test.ExpectEquality(t, mc.ReadRegister(registers.RP), uint8(0x30))
	test.ExpectEquality(t, mc.WorkingRegister(0x05), uint8(0x35))

	mc.WriteRegisterWord(0x35, 0xbeef)
	test.ExpectEquality(t, mc.ReadRegisterWord(0x34), uint16(0xbeef))
	test.ExpectEquality(t, mc.ReadRegister(0x34), uint8(0xbe))
	test.ExpectEquality(t, mc.ReadRegister(0x35), uint8(0xef))
}

func TestInterruptPriorityRegister(t *testing.T) {
	mc, _ := newCPU(t, nil)

	mc.WriteRegister(registers.IPR, 0x01)
	p, ok := mc.InterruptPriority()
	test.DemandSuccess(t, ok)

	// a reserved value leaves the priority unchanged
	mc.WriteRegister(registers.IPR, 0x00)
	q, ok := mc.InterruptPriority()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, q, p)
	test.ExpectEquality(t, mc.PeekRegister(registers.IPR), uint8(0x00))
}

func TestInterruptDispatch(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// vector for IRQ2
	mem.putInstructions(0x0004, 0x12, 0x34)

	// LD SPL,#80; EI; LD IPR,#01; LD IRQ,#05; LD IMR,#85
	mem.putInstructions(cpu.ResetAddress,
		0xe6, 0xff, 0x80,
		0x9f,
		0xe6, 0xf9, 0x01,
		0xe6, 0xfa, 0x05,
		0xe6, 0xfb, 0x85)
	run(mc, 4)
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x05))
	test.ExpectEquality(t, mc.PC, uint16(0x0016))

	mc.BeginCycle()
	r := mc.ExecuteInstruction()
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.EndCycle(r.Cycles), 6)

	// IRQ2 has a higher priority than IRQ0 for this IPR value
	test.ExpectEquality(t, mc.PC, uint16(0x1234))
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x01))
	test.ExpectEquality(t, mc.PeekRegister(registers.IMR), uint8(0x05))

	// the stack holds the flags and the return address
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x007d))
	test.ExpectEquality(t, mc.PeekRegister(0x7d), uint8(0x00))
	test.ExpectEquality(t, mc.ReadRegisterWord(0x7e), uint16(0x0019))

	// IRET. IRQ0 is still pending and is serviced at the end of the same
	// cycle, with the vector at address zero
	mem.putInstructions(0x1234, 0xbf)
	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 16)
	test.ExpectEquality(t, mc.PC, uint16(0x0000))
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x00))
	test.ExpectEquality(t, mc.PeekRegister(registers.IMR), uint8(0x05))
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x007d))
	test.ExpectEquality(t, mc.ReadRegisterWord(0x7e), uint16(0x0019))
}

func TestInterruptsWithoutPriority(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// LD SPL,#80; EI; LD IRQ,#01; LD IMR,#81
	mem.putInstructions(cpu.ResetAddress,
		0xe6, 0xff, 0x80,
		0x9f,
		0xe6, 0xfa, 0x01,
		0xe6, 0xfb, 0x81)
	run(mc, 4)

	// no interrupt is serviced until IPR has been given a valid value
	test.ExpectEquality(t, mc.PC, uint16(0x0016))
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x01))
}

func TestInternalStack(t *testing.T) {
	mc, _ := newCPU(t, nil)
	test.DemandSuccess(t, mc.InternalStack())

	mc.WriteRegister(registers.SPL, 0x80)
	mc.PushWord(0x1234)
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x007e))
	test.ExpectEquality(t, mc.PeekRegister(0x7e), uint8(0x12))
	test.ExpectEquality(t, mc.PeekRegister(0x7f), uint8(0x34))
	test.ExpectEquality(t, mc.PopWord(), uint16(0x1234))
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x0080))

	// a push with SPL of zero loses the value
	mc.WriteRegister(registers.SPL, 0x00)
	mc.Push(0xaa)
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x00ff))
}

func TestExternalStack(t *testing.T) {
	mc, mem := newCPU(t, nil)

	mc.WriteRegister(registers.P01M, 0x69)
	test.DemandFailure(t, mc.InternalStack())

	mc.WriteRegister(registers.SPH, 0x20)
	mc.WriteRegister(registers.SPL, 0x00)
	mc.PushWord(0xabcd)
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x1ffe))
	test.ExpectEquality(t, mem.internal[0x1fff], uint8(0xcd))
	test.ExpectEquality(t, mem.internal[0x1ffe], uint8(0xab))
	test.ExpectEquality(t, mc.PopWord(), uint16(0xabcd))
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x2000))
}

func TestPushPop(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// SRP #10; LD SPL,#80; LD r0,#42; PUSH r0; POP 20
	mem.putInstructions(cpu.ResetAddress, 0x31, 0x10, 0xe6, 0xff, 0x80, 0x0c, 0x42, 0x70, 0xe0, 0x50, 0x20)
	run(mc, 3)

	r := step(mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x007f))

	r = step(mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.ReadRegister(0x20), uint8(0x42))
	test.ExpectEquality(t, mc.StackPointer(), uint16(0x0080))
}

func TestTimerInterrupt(t *testing.T) {
	mc, mem := newCPU(t, nil)

	// LD PRE0,#05; LD T0,#02; LD TMR,#03
	mem.putInstructions(cpu.ResetAddress, 0xe6, 0xf5, 0x05, 0xe6, 0xf4, 0x02, 0xe6, 0xf1, 0x03)
	run(mc, 2)
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ)&0x10, uint8(0x00))

	// the ten cycles of the instruction that starts the timer are enough
	// for the counter to reach zero
	step(mc)
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ)&0x10, uint8(0x10))

	// the load bit is cleared once the counter has been loaded
	test.ExpectEquality(t, mc.PeekRegister(registers.TMR), uint8(0x02))
	test.ExpectEquality(t, mc.ReadRegister(registers.T0), uint8(0x02))

	s := mc.State()
	test.ExpectSuccess(t, s.T0.Continuous)
	test.ExpectEquality(t, s.T0.Counter, uint8(0x02))
}

func TestPortInput(t *testing.T) {
	pins := ports.NewPins()
	mc, mem := newCPU(t, pins)

	pins.SetInput(2, 0x5a)

	// LD 20,02
	mem.putInstructions(cpu.ResetAddress, 0xe4, 0x02, 0x20)
	step(mc)
	test.ExpectEquality(t, mc.ReadRegister(0x20), uint8(0x5a))
	test.ExpectEquality(t, mc.State().Ports[2].Register, uint8(0x5a))
}

func TestPortAddressMode(t *testing.T) {
	pins := ports.NewPins()
	mc, mem := newCPU(t, pins)

	pins.SetInput(0, 0xff)

	// LD P01M,#82; JP 1234
	mem.putInstructions(cpu.ResetAddress, 0xe6, 0xf8, 0x82, 0x8d, 0x12, 0x34)

	// LD 20,00
	mem.putInstructions(0x1234, 0xe4, 0x00, 0x20)

	run(mc, 3)

	// both nibbles of port 0 carry A8-A15
	test.ExpectEquality(t, mc.ReadRegister(0x20), uint8(0x12))
}

func TestPortOutput(t *testing.T) {
	pins := ports.NewPins()
	mc, mem := newCPU(t, pins)

	var changes int
	pins.OnChange(func(port int, value uint8) {
		if port == 2 {
			changes++
		}
	})

	// LD P2M,#00; LD 02,#A5
	mem.putInstructions(cpu.ResetAddress, 0xe6, 0xf6, 0x00, 0xe6, 0x02, 0xa5)
	run(mc, 2)
	test.ExpectEquality(t, pins.Output(2), uint8(0xa5))
	test.ExpectEquality(t, mc.PortOutput(2), uint8(0xa5))
	test.ExpectEquality(t, changes, 1)

	s := mc.State()
	test.ExpectEquality(t, s.Ports[2].Latch, uint8(0xa5))
	test.ExpectEquality(t, s.Ports[2].Output, uint8(0xa5))
}

func TestPortEdgeInterrupt(t *testing.T) {
	pins := ports.NewPins()
	mc, mem := newCPU(t, pins)

	// JR $
	mem.putInstructions(cpu.ResetAddress, 0x8b, 0xfe)
	step(mc)
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x00))

	// falling edge on P32
	pins.SetInputBits(3, 0x04, 0x00)
	step(mc)
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x01))

	// falling edge on P33 followed by a rising edge. only the falling edge
	// raises an interrupt request
	pins.SetInputBits(3, 0x08, 0x00)
	step(mc)
	pins.SetInputBits(3, 0x08, 0x08)
	step(mc)
	test.ExpectEquality(t, mc.PeekRegister(registers.IRQ), uint8(0x03))
}

func TestState(t *testing.T) {
	mc, _ := newCPU(t, nil)

	mc.WriteRegister(registers.RP, 0x20)
	mc.WriteRegister(registers.IPR, 0x01)
	s := mc.State()
	test.ExpectEquality(t, s.PC, uint16(cpu.ResetAddress))
	test.ExpectEquality(t, s.Control["RP"], uint8(0x20))
	test.ExpectEquality(t, s.Control["P01M"], uint8(0x6d))
	test.ExpectInequality(t, s.Priority, "none")
	test.ExpectEquality(t, s.String(), "PC=000c SP=0000 FLAGS=czsvdh RP=20 IRQ=00 IMR=00 IPR="+s.Priority)
}
