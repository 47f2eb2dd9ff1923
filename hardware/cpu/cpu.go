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
	"fmt"

	"github.com/jetsetilly/gopherz8/environment"
	"github.com/jetsetilly/gopherz8/hardware/cpu/interrupts"
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz8/hardware/cpu/serial"
	"github.com/jetsetilly/gopherz8/hardware/cpu/timer"
	"github.com/jetsetilly/gopherz8/hardware/memory"
	"github.com/jetsetilly/gopherz8/hardware/ports"
	"github.com/jetsetilly/gopherz8/logger"
)

// ResetAddress is the value of the program counter after a reset.
const ResetAddress = 0x000c

// registers above this address are not present on all variants of the Z8 (the
// UB8830 for example). accessing them generates a diagnostic log entry
const upperRegisters = 0x7f

// CPU implements the Z8 microcontroller.
type CPU struct {
	env *environment.Environment
	mem memory.Memory
	io  ports.IO

	PC    uint16
	Flags registers.Flags

	// the general purpose registers. registers 0 to 3 hold the most recent
	// value read from the corresponding port
	registers [registers.FirstControl]uint8

	// the highest implemented general purpose register
	maxGPR uint8

	// control registers. FLAGS is stored in the Flags field and the timer
	// registers are stored in the timer types
	sio  uint8
	tmr  uint8
	p2m  uint8
	p3m  uint8
	p01m uint8
	ipr  uint8
	irq  uint8
	imr  uint8
	rp   uint8
	sph  uint8
	spl  uint8

	// the priority ordering selected by the most recent valid IPR value.
	// invalid until a valid value is written to IPR
	priority      interrupts.Priority
	priorityValid bool

	// writes to IRQ are ignored until the EI instruction has been executed
	eiExecuted bool

	t0 *timer.Timer
	t1 *timer.Timer

	// T1 is clocked by P31 rather than by the internal clock
	t1ExtClock bool

	// serial port
	sioDivider serial.Divider
	sioOut     serial.Transmitter
	sioIn      serial.Receiver

	// the value most recently written to each port register
	latch [ports.NumPorts]uint8

	// input values of the ports. only valid for the current cycle
	portIn      [ports.NumPorts]uint8
	portInValid [ports.NumPorts]bool

	// the output values being prepared for the end of the cycle and the
	// output values at the end of the previous cycle
	portOut     [ports.NumPorts]uint8
	portLastOut [ports.NumPorts]uint8

	// the value of port 3 at the end of the previous cycle. used to detect
	// falling edges
	port3LastIn uint8

	// P31 had a falling edge in this cycle
	p31Falling bool

	// registers that have already produced a diagnostic log entry
	diagnosed [256]bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// io argument can be nil, in which case all port inputs are high.
//
// The CPU is created in the power-on state.
func NewCPU(env *environment.Environment, mem memory.Memory, io ports.IO) *CPU {
	mc := &CPU{
		env: env,
		mem: mem,
		io:  io,
		t0:  timer.NewTimer(),
		t1:  timer.NewTimer(),
	}
	mc.SetMaxGPR(uint8(env.Prefs.MaxGPR.Get().(int)))
	mc.Reset(true)
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x RP=%02x %s=%s IRQ=%02x IMR=%02x",
		mc.PC, mc.StackPointer(), mc.rp, mc.Flags.Label(), mc.Flags, mc.irq, mc.imr)
}

// Reset the CPU. A power-on reset also initialises the general purpose
// registers, with zero or random values depending on the RegInitZero
// preference, and forgets the interrupt priority ordering.
func (mc *CPU) Reset(powerOn bool) {
	mc.PC = ResetAddress
	mc.eiExecuted = false

	if powerOn {
		if mc.env.Prefs.RegInitZero.Get().(bool) {
			clear(mc.registers[:])
		} else {
			mc.env.Random.Fill(mc.registers[:])
		}
		mc.irq = 0x00
		mc.priorityValid = false
		clear(mc.diagnosed[:])
	}

	mc.WriteRegister(registers.TMR, 0x00)
	mc.WriteRegister(registers.PRE1, mc.t1.PreRegister&0xfc)
	mc.WriteRegister(registers.PRE0, mc.t0.PreRegister&0xfe)
	mc.WriteRegister(registers.P2M, 0xff)
	mc.WriteRegister(registers.P3M, mc.p3m&0x02)
	mc.WriteRegister(registers.P01M, mc.env.Prefs.P01MReset())
	// the IRQ write is ignored because EI has not been executed since the
	// reset. pending interrupt requests survive the reset
	mc.WriteRegister(registers.IRQ, 0x00)
	mc.WriteRegister(registers.IMR, mc.imr&0x7f)

	// port 3 must be written after the mode registers
	mc.WriteRegister(3, 0xff)
	mc.updatePorts()
}

// SetMaxGPR sets the highest implemented general purpose register. The value
// is clamped to the range 0x04 to 0xef.
func (mc *CPU) SetMaxGPR(r uint8) {
	mc.maxGPR = min(max(r, 0x04), registers.FirstControl-1)
}

// MaxGPR returns the highest implemented general purpose register.
func (mc *CPU) MaxGPR() uint8 {
	return mc.maxGPR
}

// ProgramCounter returns the current value of the program counter.
func (mc *CPU) ProgramCounter() uint16 {
	return mc.PC
}

// PeekMemory reads memory without side effects.
func (mc *CPU) PeekMemory(address uint16, data bool) uint8 {
	return mc.mem.ReadByte(address, data)
}

// diagnostic logs access to a register that is not present on all variants
// of the Z8 or that is above the maximum general purpose register. each
// register is only logged once until the next power-on
func (mc *CPU) diagnostic(access string, r uint8, v uint8) {
	if mc.diagnosed[r] {
		return
	}
	mc.diagnosed[r] = true
	logger.Logf(logger.Allow, "z8", "%s register %s (value %02x) at %04x", access, registers.Name(r), v, mc.PC)
}
