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

package interrupts

import "fmt"

// Source identifies one of the six interrupt request lines. The value of a
// Source is also the bit position in the IRQ and IMR registers.
type Source int

// List of valid Source values.
const (
	IRQ0 Source = iota
	IRQ1
	IRQ2
	IRQ3
	IRQ4
	IRQ5
)

// NumSources is the number of interrupt request lines.
const NumSources = 6

// Mask returns the bit of the source in the IRQ and IMR registers.
func (s Source) Mask() uint8 {
	return 1 << s
}

// VectorAddress returns the program memory address of the vector for the
// source. The vector is stored high byte first.
func (s Source) VectorAddress() uint16 {
	return uint16(s) * 2
}

func (s Source) String() string {
	switch s {
	case IRQ0:
		return "IRQ0 (P32)"
	case IRQ1:
		return "IRQ1 (P33)"
	case IRQ2:
		return "IRQ2 (P31)"
	case IRQ3:
		return "IRQ3 (P30/serial in)"
	case IRQ4:
		return "IRQ4 (T0/serial out)"
	case IRQ5:
		return "IRQ5 (T1)"
	}
	return fmt.Sprintf("IRQ? (%d)", int(s))
}

// Priority lists the interrupt sources from highest to lowest priority.
type Priority [NumSources]Source

func (p Priority) String() string {
	s := ""
	for i, src := range p {
		if i > 0 {
			s += " > "
		}
		s += fmt.Sprintf("%d", int(src))
	}
	return s
}

// Select returns the highest priority source that is set in the pending
// mask. The bool is false if none of the sources are pending.
func (p Priority) Select(pending uint8) (Source, bool) {
	for _, src := range p {
		if pending&src.Mask() != 0 {
			return src, true
		}
	}
	return 0, false
}

// codings is indexed by the lower six bits of the IPR register. nil entries
// are reserved codings. the table is never written to.
var codings = [64]*Priority{
	nil,                // 0x00 reserved
	{1, 4, 5, 3, 2, 0}, // 0x01 C > A > B
	nil,                // 0x02 reserved
	{4, 1, 5, 3, 2, 0}, // 0x03 C > A > B
	nil,                // 0x04 reserved
	{1, 4, 5, 3, 0, 2}, // 0x05 C > A > B
	nil,                // 0x06 reserved
	{4, 1, 5, 3, 0, 2}, // 0x07 C > A > B
	{5, 3, 2, 0, 1, 4}, // 0x08 A > B > C
	{5, 3, 1, 4, 2, 0}, // 0x09 A > C > B
	{5, 3, 2, 0, 4, 1}, // 0x0a A > B > C
	{5, 3, 4, 1, 2, 0}, // 0x0b A > C > B
	{5, 3, 0, 2, 1, 4}, // 0x0c A > B > C
	{5, 3, 1, 4, 0, 2}, // 0x0d A > C > B
	{5, 3, 0, 2, 4, 1}, // 0x0e A > B > C
	{5, 3, 4, 1, 0, 2}, // 0x0f A > C > B
	{2, 0, 1, 4, 5, 3}, // 0x10 B > C > A
	{1, 4, 2, 0, 5, 3}, // 0x11 C > B > A
	{2, 0, 4, 1, 5, 3}, // 0x12 B > C > A
	{4, 1, 2, 0, 5, 3}, // 0x13 C > B > A
	{0, 2, 1, 4, 5, 3}, // 0x14 B > C > A
	{1, 4, 0, 2, 5, 3}, // 0x15 C > B > A
	{0, 2, 4, 1, 5, 3}, // 0x16 B > C > A
	{4, 1, 0, 2, 5, 3}, // 0x17 C > B > A
	{2, 0, 5, 3, 1, 4}, // 0x18 B > A > C
	nil,                // 0x19 reserved
	{2, 0, 5, 3, 4, 1}, // 0x1a B > A > C
	nil,                // 0x1b reserved
	{0, 2, 5, 3, 1, 4}, // 0x1c B > A > C
	nil,                // 0x1d reserved
	{0, 2, 5, 3, 4, 1}, // 0x1e B > A > C
	nil,                // 0x1f reserved
	nil,                // 0x20 reserved
	{1, 4, 3, 5, 2, 0}, // 0x21 C > A > B
	nil,                // 0x22 reserved
	{4, 1, 3, 5, 2, 0}, // 0x23 C > A > B
	nil,                // 0x24 reserved
	{1, 4, 3, 5, 0, 2}, // 0x25 C > A > B
	nil,                // 0x26 reserved
	{4, 1, 3, 5, 0, 2}, // 0x27 C > A > B
	{3, 5, 2, 0, 1, 4}, // 0x28 A > B > C
	{3, 5, 1, 4, 2, 0}, // 0x29 A > C > B
	{3, 5, 2, 0, 4, 1}, // 0x2a A > B > C
	{3, 5, 4, 1, 2, 0}, // 0x2b A > C > B
	{3, 5, 0, 2, 1, 4}, // 0x2c A > B > C
	{3, 5, 1, 4, 0, 2}, // 0x2d A > C > B
	{3, 5, 0, 2, 4, 1}, // 0x2e A > B > C
	{3, 5, 4, 1, 0, 2}, // 0x2f A > C > B
	{2, 0, 1, 4, 3, 5}, // 0x30 B > C > A
	{1, 4, 2, 0, 3, 5}, // 0x31 C > B > A
	{2, 0, 4, 1, 3, 5}, // 0x32 B > C > A
	{4, 1, 2, 0, 3, 5}, // 0x33 C > B > A
	{0, 2, 1, 4, 3, 5}, // 0x34 B > C > A
	{1, 4, 0, 2, 3, 5}, // 0x35 C > B > A
	{0, 2, 4, 1, 3, 5}, // 0x36 B > C > A
	{4, 1, 0, 2, 3, 5}, // 0x37 C > B > A
	{2, 0, 3, 5, 1, 4}, // 0x38 B > A > C
	nil,                // 0x39 reserved
	{2, 0, 3, 5, 4, 1}, // 0x3a B > A > C
	nil,                // 0x3b reserved
	{0, 2, 3, 5, 1, 4}, // 0x3c B > A > C
	nil,                // 0x3d reserved
	{0, 2, 3, 5, 4, 1}, // 0x3e B > A > C
	nil,                // 0x3f reserved
}

// Decode returns the priority ordering selected by the IPR value. Only the
// lower six bits are significant. The bool return value is false if the
// value is a reserved coding.
func Decode(ipr uint8) (Priority, bool) {
	p := codings[ipr&0x3f]
	if p == nil {
		return Priority{}, false
	}
	return *p, true
}
