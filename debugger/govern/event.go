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

// Event is sent to the listeners of the hardware.Z8 type.
type Event int

// List of events.
const (
	// the Z8 has been reset. EventPowerOn is sent instead of EventReset for
	// a power-on reset
	EventReset Event = iota
	EventPowerOn

	// sent to the status listener
	EventCyclesPerSecondChanged
	EventStatusChanged

	// sent to the pre-instruction listener before every instruction
	EventPreInstruction
)

func (ev Event) String() string {
	switch ev {
	case EventReset:
		return "Reset"
	case EventPowerOn:
		return "Power on"
	case EventCyclesPerSecondChanged:
		return "Cycles per second changed"
	case EventStatusChanged:
		return "Status changed"
	case EventPreInstruction:
		return "Pre-instruction"
	}

	return ""
}
