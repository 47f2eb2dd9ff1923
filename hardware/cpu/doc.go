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

// Package cpu emulates the Z8 microcontroller core: the register file, the
// I/O port logic, the two counter/timers, the serial port, the interrupt
// controller and the instruction executor.
//
// The CPU type does not run by itself. A scheduler (see the hardware package)
// drives the CPU one instruction at a time, calling three functions in
// order:
//
//	mc.BeginCycle()
//	r := mc.ExecuteInstruction()
//	cycles := mc.EndCycle(r.Cycles)
//
// BeginCycle() samples the input ports and raises interrupt requests for any
// falling edges on port 3. ExecuteInstruction() executes the instruction at
// the program counter and reports the number of cycles used. EndCycle() then
// services a pending interrupt, advances the timers and the serial port by
// the number of cycles and finally reports any changes to the output ports.
// The number of cycles returned by EndCycle() can be different to the number
// of cycles used by the instruction, if an interrupt was serviced.
//
// When the CPU is not executing instructions, as a result of the STOP
// instruction, the scheduler can skip ExecuteInstruction() and call
// EndCycle() with a nominal number of cycles.
//
// Registers are accessed with ReadRegister() and WriteRegister(). Reading or
// writing the registers of ports 0 to 3 is never a simple matter of storage.
// The effect depends on the port mode registers, exactly as it would for a
// program running on the CPU. PeekRegister() gives a view of a register that
// is suitable for a debugger. It has no side effects and returns the stored
// value of the write-only registers.
//
// Reading an unimplemented register returns the address of the register. A
// register above the configurable maximum general purpose register (see
// SetMaxGPR()) is an unimplemented register.
//
// The CPU never returns an error. Unknown opcodes are executed as a six cycle
// NOP and invalid interrupt priority values leave the previous priority
// ordering in effect.
package cpu
