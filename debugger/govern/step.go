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

package govern

// StepMode is the condition under which the emulation enters the DebugStop
// state before executing the next instruction.
type StepMode int

// List of step modes.
//
// StepOver and RunToReturn use the stack pointer at the time of the request.
// StepOver stops when the stack pointer has returned to at least that value.
// RunToReturn stops at a RET or IRET instruction with the stack pointer at
// least at that value.
const (
	Run StepMode = iota
	RunToReturn
	StepInto
	StepOver
	Stop
)

func (m StepMode) String() string {
	switch m {
	case Run:
		return "Run"
	case RunToReturn:
		return "Run to return"
	case StepInto:
		return "Step into"
	case StepOver:
		return "Step over"
	case Stop:
		return "Stop"
	}

	return ""
}
