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

// Package interrupts describes the six interrupt sources of the Z8 and the
// priority orderings that can be selected through the IPR control register.
//
// The IPR register encodes the relative priority of three groups of two
// sources each. Of the 64 possible values of the lower six bits, 16 are
// reserved and do not describe a usable ordering. Decode() reports these
// with a false return value and the caller should keep whatever ordering
// was in effect previously.
package interrupts
