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

// bit returns 1 if b is true.
func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Add returns v1+v2 plus the carry-in and sets the Carry, Zero, Sign,
// Overflow and HalfCarry flags. DecimalAdjust is cleared.
func (f *Flags) Add(v1 uint8, v2 uint8, carry bool) uint8 {
	a, b, c := int(v1), int(v2), bit(carry)
	m := a + b
	rv := m + c

	f.Overflow = (a&0x80 == b&0x80) && (a&0x80 != m&0x80)
	if !f.Overflow {
		f.Overflow = (m&0x80 == c&0x80) && (m&0x80 != rv&0x80)
	}
	f.Carry = rv&0xff00 != 0
	f.Zero = rv&0xff == 0
	f.Sign = rv&0x80 != 0
	f.DecimalAdjust = false
	f.HalfCarry = ((a&0x0f)+(b&0x0f)+c)&0xf0 != 0

	return uint8(rv)
}

// Sub returns v1-v2 minus the carry-in and sets the Carry (borrow), Zero,
// Sign, Overflow and HalfCarry (half-borrow) flags. DecimalAdjust is set.
func (f *Flags) Sub(v1 uint8, v2 uint8, carry bool) uint8 {
	a, b, c := int(v1), int(v2), bit(carry)
	m := a - b
	rv := m - c

	f.Overflow = (a&0x80 != b&0x80) && (m&0x80 == b&0x80)
	if !f.Overflow {
		f.Overflow = (m&0x80 != c&0x80) && (rv&0x80 == c&0x80)
	}
	f.Carry = rv&0xff00 != 0
	f.Zero = rv&0xff == 0
	f.Sign = rv&0x80 != 0
	f.DecimalAdjust = true
	f.HalfCarry = ((a&0x0f)-(b&0x0f)-c)&0xf0 != 0

	return uint8(rv)
}

// Compare sets the Carry, Zero, Sign and Overflow flags as though v2 had been
// subtracted from v1. The HalfCarry and DecimalAdjust flags are unaffected.
func (f *Flags) Compare(v1 uint8, v2 uint8) {
	a, b := int(v1), int(v2)
	m := a - b
	f.Overflow = (a&0x80 != b&0x80) && (m&0x80 == b&0x80)
	f.Carry = m&0xff00 != 0
	f.Zero = m&0xff == 0
	f.Sign = m&0x80 != 0
}

// Logic sets the Zero and Sign flags for the result of a logical operation
// and clears the Overflow flag. The value is returned unchanged.
func (f *Flags) Logic(v uint8) uint8 {
	f.Zero = v == 0
	f.Sign = v&0x80 != 0
	f.Overflow = false
	return v
}

// DA corrects the result of a previous Add or Sub of two BCD values. The
// correction depends on the DecimalAdjust, Carry and HalfCarry flags and on
// the value of the two nibbles.
func (f *Flags) DA(v uint8) uint8 {
	r := int(v)
	h := r >> 4
	l := r & 0x0f
	c := f.Carry
	hc := f.HalfCarry

	if f.DecimalAdjust {
		switch {
		case !c && h <= 8 && hc && l >= 6:
			r += 0xfa
			f.Carry = false
		case c && h >= 7 && !hc && l <= 9:
			r += 0xa0
			f.Carry = true
		case c && h >= 6 && hc && l >= 6:
			r += 0x9a
			f.Carry = true
		default:
			f.Carry = false
		}
	} else {
		switch {
		case (!c && h <= 8 && !hc && l >= 0x0a) ||
			(!c && h <= 9 && hc && l <= 3):
			r += 0x06
			f.Carry = false
		case (!c && h >= 0x0a && !hc && l <= 9) ||
			(c && h <= 2 && !hc && l <= 9):
			r += 0x60
			f.Carry = true
		case (!c && h >= 9 && !hc && l >= 0x0a) ||
			(!c && h >= 0x0a && hc && l <= 3) ||
			(c && h <= 2 && !hc && l >= 0x0a) ||
			(c && h <= 3 && hc && l <= 3):
			r += 0x66
			f.Carry = true
		default:
			f.Carry = false
		}
	}

	f.Zero = r&0xff == 0
	f.Sign = r&0x80 != 0
	return uint8(r)
}

// Inc returns v+1. Overflow is set if the sign bit changes. Carry is
// unaffected.
func (f *Flags) Inc(v uint8) uint8 {
	m := v + 1
	f.Zero = m == 0
	f.Sign = m&0x80 != 0
	f.Overflow = m&0x80 != v&0x80
	return m
}

// Dec returns v-1. Carry is unaffected.
func (f *Flags) Dec(v uint8) uint8 {
	m := v - 1
	f.Zero = m == 0
	f.Sign = m&0x80 != 0
	f.Overflow = m&0x80 != v&0x80
	return m
}

// IncW returns v+1 for a register pair.
func (f *Flags) IncW(v uint16) uint16 {
	m := v + 1
	f.Zero = m == 0
	f.Sign = m&0x8000 != 0
	f.Overflow = m&0x8000 != v&0x8000
	return m
}

// DecW returns v-1 for a register pair.
func (f *Flags) DecW(v uint16) uint16 {
	m := v - 1
	f.Zero = m == 0
	f.Sign = m&0x8000 != 0
	f.Overflow = m&0x8000 != v&0x8000
	return m
}

func (f *Flags) rotated(v uint8, m uint8) uint8 {
	f.Zero = m == 0
	f.Sign = m&0x80 != 0
	f.Overflow = m&0x80 != v&0x80
	return m
}

// RotateLeft is the RL instruction. Bit 7 is copied into bit 0 and into the
// Carry flag.
func (f *Flags) RotateLeft(v uint8) uint8 {
	f.Carry = v&0x80 != 0
	m := v << 1
	if f.Carry {
		m |= 0x01
	}
	return f.rotated(v, m)
}

// RotateLeftCarry is the RLC instruction. The Carry flag is shifted into bit
// 0 and bit 7 is shifted into the Carry flag.
func (f *Flags) RotateLeftCarry(v uint8) uint8 {
	m := v << 1
	if f.Carry {
		m |= 0x01
	}
	f.Carry = v&0x80 != 0
	return f.rotated(v, m)
}

// RotateRight is the RR instruction. Bit 0 is copied into bit 7 and into the
// Carry flag.
func (f *Flags) RotateRight(v uint8) uint8 {
	f.Carry = v&0x01 != 0
	m := v >> 1
	if f.Carry {
		m |= 0x80
	}
	return f.rotated(v, m)
}

// RotateRightCarry is the RRC instruction. The Carry flag is shifted into
// bit 7 and bit 0 is shifted into the Carry flag.
func (f *Flags) RotateRightCarry(v uint8) uint8 {
	m := v >> 1
	if f.Carry {
		m |= 0x80
	}
	f.Carry = v&0x01 != 0
	return f.rotated(v, m)
}

// ShiftRightArithmetic is the SRA instruction. Bit 7 is preserved.
func (f *Flags) ShiftRightArithmetic(v uint8) uint8 {
	f.Carry = v&0x01 != 0
	m := (v >> 1) | (v & 0x80)
	f.Zero = m == 0
	f.Sign = m&0x80 != 0
	f.Overflow = false
	return m
}

// Swap exchanges the two nibbles.
func (f *Flags) Swap(v uint8) uint8 {
	m := v<<4 | v>>4
	f.Zero = m == 0
	f.Sign = m&0x80 != 0
	return m
}
