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

package hardware

import (
	"context"

	"github.com/jetsetilly/gopherz8/debugger/govern"
	"github.com/jetsetilly/gopherz8/hardware/cpu/execution"
)

// the number of cycles charged for every cycle in the InstStop state
const stopCycles = 4

// Run the emulation until Quit() is called or the context is cancelled.
// Should be called on its own goroutine. Returns the context error if the
// context was cancelled.
func (z8 *Z8) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, z8.Quit)
	defer stop()

	z8.limiter.Reset()

	var cycles int
	for !z8.quit.Load() {
		z8.totalCycles.Add(int64(cycles))
		z8.elapsed.Add(int64(cycles))
		z8.limiter.Cycles(cycles)
		z8.publish(cycles)
		cycles = z8.cycle()
	}

	return ctx.Err()
}

// a single cycle of the emulation. returns the number of cycles consumed
func (z8 *Z8) cycle() int {
	switch z8.State() {
	case govern.InstHalt:
		z8.suspend(govern.InstHalt)
	case govern.DebugStop:
		z8.suspend(govern.DebugStop)
	case govern.Running:
		if z8.debugStop() {
			z8.crit.Lock()
			if z8.State() == govern.Running {
				z8.setState(govern.DebugStop)
			}
			z8.crit.Unlock()
			z8.suspend(govern.DebugStop)
			z8.resumeStepOver()
		}
	}

	if z8.quit.Load() {
		return 0
	}

	if z8.resetPending.Swap(false) {
		z8.reset(z8.powerOn.Load())
	}

	if r := z8.maxGPR.Swap(-1); r >= 0 {
		if uint8(r) != z8.CPU.MaxGPR() {
			z8.CPU.SetMaxGPR(uint8(r))
			z8.notify(z8.listeners.Status, govern.EventStatusChanged)
		}
	}

	z8.CPU.BeginCycle()

	var cycles int

	switch z8.State() {
	case govern.InstStop:
		cycles = stopCycles

	case govern.Running:
		z8.notify(z8.listeners.PreInstruction, govern.EventPreInstruction)
		z8.checkWatches()

		r := z8.CPU.ExecuteInstruction()
		cycles = r.Cycles

		switch r.Effect {
		case execution.Halt:
			z8.enter(govern.InstHalt)
		case execution.Stop:
			z8.enter(govern.InstStop)
		case execution.None:
		}

	case govern.InstHalt, govern.DebugStop:
		// state changed by a request since the start of the cycle. the
		// timers and interrupts are updated with zero cycles
	}

	return z8.CPU.EndCycle(cycles)
}

// the HALT and STOP instructions change the run state. a reset requested
// during the instruction takes precedence
func (z8 *Z8) enter(s govern.State) {
	z8.crit.Lock()
	defer z8.crit.Unlock()
	if !z8.resetPending.Load() {
		z8.setState(s)
	}
}

// returns true if the emulation should wait in state s
func (z8 *Z8) waiting(s govern.State) bool {
	return z8.State() == s && !z8.quit.Load() && !z8.resetPending.Load()
}

// suspend the emulation goroutine while the run state is s. the debugger is
// notified before and after the wait
func (z8 *Z8) suspend(s govern.State) {
	z8.snapshot.Store(z8.CPU.State())
	z8.notifyDebugger()

	for z8.waiting(s) {
		<-z8.wake
	}

	z8.crit.Lock()
	z8.setState(govern.Running)
	if z8.debugSP == spPending {
		z8.debugSP = int(z8.CPU.StackPointer())
	}
	z8.crit.Unlock()

	z8.totalCycles.Store(0)
	z8.notifyDebugger()
}

// reset the emulation on the emulation goroutine
func (z8 *Z8) reset(powerOn bool) {
	if powerOn {
		z8.Mem.InitRAM()
	}
	z8.CPU.Reset(powerOn)

	if powerOn {
		z8.notify(z8.listeners.Reset, govern.EventPowerOn)
	} else {
		z8.notify(z8.listeners.Reset, govern.EventReset)
	}
}
