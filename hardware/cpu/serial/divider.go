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

package serial

// DividerRatio is the number of T0 pulses for every bit period.
const DividerRatio = 16

// Divider counts T0 pulses.
type Divider struct {
	count int
}

// Pulse counts one T0 pulse. Returns true once every DividerRatio pulses.
func (d *Divider) Pulse() bool {
	if d.count < DividerRatio-1 {
		d.count++
		return false
	}
	d.count = 0
	return true
}

// Reset the divider count.
func (d *Divider) Reset() {
	d.count = 0
}
