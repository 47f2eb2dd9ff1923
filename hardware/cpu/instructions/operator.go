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

// Operator is one of the ten arithmetic and logic operations that share the
// two operand addressing modes.
type Operator int

// List of valid Operator values.
const (
	ADD Operator = iota
	ADC
	SUB
	SBC
	OR
	AND
	TCM
	TM
	CP
	XOR
)

var operatorNames = [...]string{"ADD", "ADC", "SUB", "SBC", "OR", "AND", "TCM", "TM", "CP", "XOR"}

func (op Operator) String() string {
	return operatorNames[op]
}

// WritesResult returns false for the operators that only affect the flags.
func (op Operator) WritesResult() bool {
	switch op {
	case TCM, TM, CP:
		return false
	}
	return true
}

// operators is indexed by the high nibble of the opcode
var operators = [16]struct {
	op Operator
	ok bool
}{
	0x0: {ADD, true},
	0x1: {ADC, true},
	0x2: {SUB, true},
	0x3: {SBC, true},
	0x4: {OR, true},
	0x5: {AND, true},
	0x6: {TCM, true},
	0x7: {TM, true},
	0xa: {CP, true},
	0xb: {XOR, true},
}

// DecodeOperator returns the Operator for an opcode. The bool return value is
// false if the opcode is not one of the arithmetic and logic instructions.
func DecodeOperator(opcode uint8) (Operator, bool) {
	lo := opcode & 0x0f
	if lo < 0x02 || lo > 0x07 {
		return 0, false
	}
	o := operators[opcode>>4]
	return o.op, o.ok
}
