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
	"github.com/jetsetilly/gopherz8/debugger/breakpoints"
	"github.com/jetsetilly/gopherz8/debugger/govern"
	"github.com/jetsetilly/gopherz8/hardware/cpu/instructions"
)

// returns true if a breakpoint matches or if the step mode requires the
// emulation to stop before the next instruction
func (z8 *Z8) debugStop() bool {
	if bps := z8.breakpoints.Load(); bps != nil && breakpoints.Any(*bps, z8.CPU) {
		return true
	}

	z8.crit.Lock()
	mode := z8.stepMode
	sp := z8.debugSP
	z8.crit.Unlock()

	switch mode {
	case govern.Run:
		return false
	case govern.RunToReturn:
		if !instructions.IsReturn(z8.CPU.PeekMemory(z8.CPU.ProgramCounter(), false)) {
			return false
		}
		return int(z8.CPU.StackPointer()) >= sp
	case govern.StepOver:
		return int(z8.CPU.StackPointer()) >= sp
	case govern.StepInto, govern.Stop:
		return true
	}

	return false
}

// a step over request for an instruction that is not a call is the same as
// a step into request
func (z8 *Z8) resumeStepOver() {
	z8.crit.Lock()
	defer z8.crit.Unlock()
	if z8.stepMode == govern.StepOver && !instructions.IsCall(z8.CPU.PeekMemory(z8.CPU.ProgramCounter(), false)) {
		z8.stepMode = govern.StepInto
	}
}
