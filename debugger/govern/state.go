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

// State indicates the run state of the Z8.
type State int

// List of possible emulation states.
//
// Only the Running state permits instructions to be fetched. InstHalt and
// InstStop are entered by the HALT and STOP instructions. DebugStop is
// entered on a breakpoint match or by a StepMode request.
//
// In the InstStop state the timers and interrupts continue to run.
const (
	Running State = iota
	InstHalt
	InstStop
	DebugStop
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case InstHalt:
		return "Halted"
	case InstStop:
		return "Stopped"
	case DebugStop:
		return "Paused"
	}

	return ""
}

// Paused returns true if the state is not Running.
func (s State) Paused() bool {
	return s != Running
}
