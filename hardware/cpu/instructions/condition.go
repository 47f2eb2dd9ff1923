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

package instructions

import "github.com/jetsetilly/gopherz8/hardware/cpu/registers"

// Condition is the condition code used by the JR and JP instructions. It is
// taken from the high nibble of the opcode.
type Condition uint8

// List of valid Condition values.
const (
	Never Condition = iota
	LT
	LE
	ULE
	OV
	MI
	EQ
	ULT
	Always
	GE
	GT
	UGT
	NOV
	PL
	NE
	UGE
)

var conditionNames = [16]string{
	"F", "LT", "LE", "ULE", "OV", "MI", "Z", "C",
	"", "GE", "GT", "UGT", "NOV", "PL", "NZ", "NC",
}

// ConditionFromOpcode returns the condition encoded by the opcode.
func ConditionFromOpcode(opcode uint8) Condition {
	return Condition(opcode >> 4)
}

// String returns the assembler name of the condition. The Always condition
// has no name.
func (c Condition) String() string {
	return conditionNames[c&0x0f]
}

// Check returns true if the condition is met by the flags.
func (c Condition) Check(f registers.Flags) bool {
	switch c & 0x0f {
	case Never:
		return false
	case LT:
		return f.Sign != f.Overflow
	case LE:
		return f.Zero || f.Sign != f.Overflow
	case ULE:
		return f.Carry || f.Zero
	case OV:
		return f.Overflow
	case MI:
		return f.Sign
	case EQ:
		return f.Zero
	case ULT:
		return f.Carry
	case Always:
		return true
	case GE:
		return f.Sign == f.Overflow
	case GT:
		return !(f.Zero || f.Sign != f.Overflow)
	case UGT:
		return !f.Carry && !f.Zero
	case NOV:
		return !f.Overflow
	case PL:
		return !f.Sign
	case NE:
		return !f.Zero
	case UGE:
		return !f.Carry
	}
	return false
}
