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

	"github.com/jetsetilly/gopherz8/environment"
	"github.com/jetsetilly/gopherz8/hardware/cpu"
	"github.com/jetsetilly/gopherz8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherz8/hardware/ports"
	"github.com/jetsetilly/gopherz8/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) ReadByte(address uint16, _ bool) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) WriteByte(address uint16, _ bool, value uint8) bool {
	mem.internal[address] = value
	return true
}

func (mem *mockMem) InitRAM() {
}

func newEnvironment(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

// newCPU returns a CPU with zeroed registers and the program counter at the
// reset address. io can be nil
func newCPU(t *testing.T, io ports.IO) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := cpu.NewCPU(newEnvironment(t), mem, io)
	return mc, mem
}

// step runs a complete cycle in the same way as the scheduler
func step(mc *cpu.CPU) execution.Result {
	mc.BeginCycle()
	r := mc.ExecuteInstruction()
	mc.EndCycle(r.Cycles)
	return r
}

// run a number of complete cycles. returns the total number of cycles
func run(mc *cpu.CPU, n int) int {
	var cycles int
	for range n {
		cycles += step(mc).Cycles
	}
	return cycles
}
