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

package registers

import "strings"

// Flags is the Z8 FLAGS register (0xfc). The individual flags are stored as
// booleans and packed into a byte only when the register is read.
type Flags struct {
	Carry         bool
	Zero          bool
	Sign          bool
	Overflow      bool
	DecimalAdjust bool
	HalfCarry     bool

	// bits 0 and 1 are user flags F1 and F2. they are stored as written
	User uint8
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "FLAGS"
}

func (f Flags) String() string {
	s := strings.Builder{}

	put := func(v bool, c rune) {
		if v {
			s.WriteRune(c)
		} else {
			s.WriteRune(c + ('a' - 'A'))
		}
	}

	put(f.Carry, 'C')
	put(f.Zero, 'Z')
	put(f.Sign, 'S')
	put(f.Overflow, 'V')
	put(f.DecimalAdjust, 'D')
	put(f.HalfCarry, 'H')

	return s.String()
}

// Value returns the flags packed into a byte.
func (f Flags) Value() uint8 {
	v := f.User & 0x03
	if f.HalfCarry {
		v |= 0x04
	}
	if f.DecimalAdjust {
		v |= 0x08
	}
	if f.Overflow {
		v |= 0x10
	}
	if f.Sign {
		v |= 0x20
	}
	if f.Zero {
		v |= 0x40
	}
	if f.Carry {
		v |= 0x80
	}
	return v
}

// FromValue unpacks the flags from a byte.
func (f *Flags) FromValue(v uint8) {
	f.User = v & 0x03
	f.HalfCarry = v&0x04 == 0x04
	f.DecimalAdjust = v&0x08 == 0x08
	f.Overflow = v&0x10 == 0x10
	f.Sign = v&0x20 == 0x20
	f.Zero = v&0x40 == 0x40
	f.Carry = v&0x80 == 0x80
}

// Reset clears all flags.
func (f *Flags) Reset() {
	f.FromValue(0)
}
