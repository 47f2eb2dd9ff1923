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
	"github.com/jetsetilly/gopherz8/hardware/cpu"
)

// the number of cycles between updates of the published CPU state while the
// emulation is running
const publishInterval = 100000

// publish a copy of the CPU state every publishInterval cycles
func (z8 *Z8) publish(cycles int) {
	z8.snapshotCounter += cycles
	if z8.snapshotCounter < publishInterval {
		return
	}
	z8.snapshotCounter = 0
	z8.snapshot.Store(z8.CPU.State())
}

// Snapshot returns a copy of the CPU state. The copy is made whenever the
// emulation is suspended and periodically while it is running. It should be
// treated as read-only.
func (z8 *Z8) Snapshot() *cpu.State {
	return z8.snapshot.Load()
}
