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

// Package timer implements the two counter/timers of the Z8. Each timer
// consists of a six bit prescaler and an eight bit down counter. The
// prescaler is clocked once every four CPU cycles and the counter is clocked
// whenever the prescaler reaches zero.
//
// Values written to the PREx and Tx registers are latched and only copied
// to the running counters when Init() is called. The CPU does this when a
// load bit in the TMR register has been set.
package timer
