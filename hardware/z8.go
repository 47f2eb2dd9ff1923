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
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopherz8/debugger/breakpoints"
	"github.com/jetsetilly/gopherz8/debugger/govern"
	"github.com/jetsetilly/gopherz8/environment"
	"github.com/jetsetilly/gopherz8/hardware/cpu"
	"github.com/jetsetilly/gopherz8/hardware/memory"
	"github.com/jetsetilly/gopherz8/hardware/ports"
	"github.com/jetsetilly/gopherz8/performance/limiter"
	"github.com/jetsetilly/gopherz8/prefs"
)

// value of debugSP between a step request and the emulation resuming
const spPending = -2

// Z8 is the root of the emulation.
type Z8 struct {
	Env *environment.Environment

	CPU *cpu.CPU
	Mem memory.Memory
	IO  ports.IO

	listeners Listeners
	limiter   *limiter.Limiter

	// crit guards the run state and the request fields. the state is also
	// stored atomically so that it can be read without the lock
	crit     sync.Mutex
	state    atomic.Int32
	stepMode govern.StepMode

	// the stack pointer at the time of the most recent step request. -1 if
	// the request was not made in the DebugStop state. spPending until the
	// emulation goroutine resumes
	debugSP int

	// a signal is sent to the emulation goroutine whenever a request may
	// allow it to resume. capacity of one
	wake chan bool

	// requests
	quit         atomic.Bool
	resetPending atomic.Bool
	powerOn      atomic.Bool
	maxGPR       atomic.Int32

	breakpoints atomic.Pointer[[]breakpoints.Breakpoint]
	watches     atomic.Pointer[[]pcWatch]
	nextWatchID WatchID

	// the number of cycles since the emulation was last suspended and the
	// number of cycles since the emulation was created
	totalCycles atomic.Int64
	elapsed     atomic.Int64

	// the most recent copy of the CPU state
	snapshot        atomic.Pointer[cpu.State]
	snapshotCounter int
}

// NewZ8 creates a new Z8 emulation. The io argument can be nil if no
// hardware is connected to the ports.
//
// Changes to the CyclesPerSecond and MaxGPR preferences are forwarded to the
// emulation.
func NewZ8(env *environment.Environment, mem memory.Memory, io ports.IO, listeners Listeners) *Z8 {
	z8 := &Z8{
		Env:       env,
		Mem:       mem,
		IO:        io,
		listeners: listeners,
		limiter:   limiter.NewLimiter(env.Prefs.CyclesPerSecond.Get().(int)),
		debugSP:   -1,
		wake:      make(chan bool, 1),
	}

	mem.InitRAM()
	z8.CPU = cpu.NewCPU(env, mem, io)
	z8.maxGPR.Store(-1)
	z8.snapshot.Store(z8.CPU.State())

	env.Random.SetClock(z8)

	env.Prefs.CyclesPerSecond.SetHookPost(func(v prefs.Value) error {
		z8.SetCyclesPerSecond(v.(int))
		return nil
	})
	env.Prefs.MaxGPR.SetHookPost(func(v prefs.Value) error {
		z8.SetMaxGPR(uint8(v.(int)))
		return nil
	})

	return z8
}

func (z8 *Z8) String() string {
	return fmt.Sprintf("%s [%s]", z8.Snapshot(), z8.State())
}

// State returns the current run state of the emulation.
func (z8 *Z8) State() govern.State {
	return govern.State(z8.state.Load())
}

// StepMode returns the current step mode.
func (z8 *Z8) StepMode() govern.StepMode {
	z8.crit.Lock()
	defer z8.crit.Unlock()
	return z8.stepMode
}

// must be called with the crit lock held
func (z8 *Z8) setState(s govern.State) {
	z8.state.Store(int32(s))
}

// send wake signal without blocking. a signal that is already pending is
// sufficient
func (z8 *Z8) signal() {
	select {
	case z8.wake <- true:
	default:
	}
}

// Cycles returns the number of CPU cycles executed since the emulation was
// created. The value never decreases. Implements the random.Clock and
// uart.Clock interfaces.
func (z8 *Z8) Cycles() int64 {
	return z8.elapsed.Load()
}

// TotalCycles returns the number of CPU cycles executed since the emulation
// was last suspended or reset.
func (z8 *Z8) TotalCycles() int64 {
	return z8.totalCycles.Load()
}

// Quit the emulation. The Run() function will return before executing
// another instruction.
func (z8 *Z8) Quit() {
	z8.quit.Store(true)
	z8.signal()
}

// Reset the emulation. The reset is performed by the emulation goroutine
// before the next instruction. A power-on reset also initialises RAM and the
// general purpose registers.
//
// The emulation resumes if it is suspended for any reason and the step mode
// returns to govern.Run.
func (z8 *Z8) Reset(powerOn bool) {
	z8.crit.Lock()
	defer z8.crit.Unlock()

	z8.powerOn.Store(powerOn)
	z8.resetPending.Store(true)
	z8.stepMode = govern.Run
	z8.debugSP = -1
	if z8.State() != govern.Running {
		z8.setState(govern.Running)
	}
	z8.signal()
}

// SetPause suspends or resumes the emulation. A paused emulation is in the
// DebugStop state.
//
// Pausing has no effect if the emulation is halted or stopped. Resuming only
// has an effect if the emulation is in the DebugStop state.
func (z8 *Z8) SetPause(pause bool) {
	z8.crit.Lock()
	defer z8.crit.Unlock()

	if pause {
		if z8.State() == govern.Running {
			z8.setState(govern.DebugStop)
			z8.stepMode = govern.Stop
			z8.debugSP = -1
		}
		return
	}

	if z8.State() == govern.DebugStop {
		z8.setState(govern.Running)
		z8.stepMode = govern.Run
		z8.debugSP = -1
		z8.signal()
	}
}

// SetStepMode sets the condition under which the emulation will next enter
// the DebugStop state. If the emulation is already in the DebugStop state the
// current stack pointer is recorded and, unless the mode is govern.Stop, the
// emulation resumes.
func (z8 *Z8) SetStepMode(mode govern.StepMode) {
	z8.crit.Lock()
	defer z8.crit.Unlock()

	z8.stepMode = mode
	if z8.State() != govern.DebugStop {
		z8.debugSP = -1
		return
	}

	// the stack pointer is recorded by the emulation goroutine when it resumes
	z8.debugSP = spPending
	if mode != govern.Stop {
		z8.setState(govern.Running)
		z8.signal()
	}
}

// Step executes a single instruction if the emulation is in the DebugStop
// state.
func (z8 *Z8) Step() {
	z8.SetStepMode(govern.StepInto)
}

// SetBreakpoints replaces the list of breakpoints. The list is copied.
func (z8 *Z8) SetBreakpoints(bps []breakpoints.Breakpoint) {
	if len(bps) == 0 {
		z8.breakpoints.Store(nil)
		return
	}
	l := make([]breakpoints.Breakpoint, len(bps))
	copy(l, bps)
	z8.breakpoints.Store(&l)
}

// SetMaxGPR sets the highest implemented general purpose register. The
// change is made by the emulation goroutine before the next instruction.
func (z8 *Z8) SetMaxGPR(r uint8) {
	z8.maxGPR.Store(int32(r))
	z8.signal()
}

// MaxGPR returns the highest implemented general purpose register, including
// any change that is yet to be made.
func (z8 *Z8) MaxGPR() uint8 {
	if r := z8.maxGPR.Load(); r >= 0 {
		return uint8(r)
	}
	return z8.Snapshot().MaxGPR
}

// SetCyclesPerSecond changes the speed of the emulation. A value of zero
// means unlimited.
func (z8 *Z8) SetCyclesPerSecond(cycles int) {
	z8.limiter.SetLimit(cycles)
	z8.notify(z8.listeners.Status, govern.EventCyclesPerSecondChanged)
}

// CyclesPerSecond returns the target speed of the emulation.
func (z8 *Z8) CyclesPerSecond() int {
	return z8.limiter.Limit()
}

// SetSpeedUnlimitedFor suspends speed limiting for the number of cycles.
func (z8 *Z8) SetSpeedUnlimitedFor(cycles int64) {
	z8.limiter.UnlimitedFor(cycles)
}

// ResetSpeed restarts the speed measurement and cancels any unlimited speed
// request.
func (z8 *Z8) ResetSpeed() {
	z8.limiter.Reset()
}

// EmulatedMHz returns the measured speed of the emulation. The bool return
// value is false if the measurement is not yet available.
func (z8 *Z8) EmulatedMHz() (float64, bool) {
	return z8.limiter.MHz()
}
