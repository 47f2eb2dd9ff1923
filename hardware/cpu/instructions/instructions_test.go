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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherz8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz8/test"
)

func TestDecodeOperator(t *testing.T) {
	op, ok := instructions.DecodeOperator(0x02)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.ADD)

	op, ok = instructions.DecodeOperator(0x17)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.ADC)

	op, ok = instructions.DecodeOperator(0xa4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.CP)
	test.ExpectFailure(t, op.WritesResult())

	op, ok = instructions.DecodeOperator(0xb6)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.XOR)
	test.ExpectSuccess(t, op.WritesResult())

	// addressing mode nibble outside of the ALU range
	_, ok = instructions.DecodeOperator(0x08)
	test.ExpectFailure(t, ok)
	_, ok = instructions.DecodeOperator(0x01)
	test.ExpectFailure(t, ok)

	// high nibble without an ALU operation
	_, ok = instructions.DecodeOperator(0x82)
	test.ExpectFailure(t, ok)
	_, ok = instructions.DecodeOperator(0xe4)
	test.ExpectFailure(t, ok)
}

func TestConditions(t *testing.T) {
	var f registers.Flags

	test.ExpectFailure(t, instructions.Never.Check(f))
	test.ExpectSuccess(t, instructions.Always.Check(f))

	// all flags clear
	test.ExpectSuccess(t, instructions.GE.Check(f))
	test.ExpectSuccess(t, instructions.GT.Check(f))
	test.ExpectSuccess(t, instructions.UGT.Check(f))
	test.ExpectSuccess(t, instructions.NE.Check(f))
	test.ExpectFailure(t, instructions.LT.Check(f))
	test.ExpectFailure(t, instructions.EQ.Check(f))

	// signed less than
	f.Sign = true
	test.ExpectSuccess(t, instructions.LT.Check(f))
	test.ExpectSuccess(t, instructions.LE.Check(f))
	test.ExpectSuccess(t, instructions.MI.Check(f))
	test.ExpectFailure(t, instructions.GE.Check(f))

	// sign and overflow cancel each other
	f.Overflow = true
	test.ExpectFailure(t, instructions.LT.Check(f))
	test.ExpectSuccess(t, instructions.OV.Check(f))
	test.ExpectFailure(t, instructions.NOV.Check(f))

	f = registers.Flags{Carry: true}
	test.ExpectSuccess(t, instructions.ULT.Check(f))
	test.ExpectSuccess(t, instructions.ULE.Check(f))
	test.ExpectFailure(t, instructions.UGT.Check(f))
	test.ExpectFailure(t, instructions.UGE.Check(f))

	f = registers.Flags{Zero: true}
	test.ExpectSuccess(t, instructions.LE.Check(f))
	test.ExpectFailure(t, instructions.GT.Check(f))
	test.ExpectSuccess(t, instructions.EQ.Check(f))
}

func TestConditionFromOpcode(t *testing.T) {
	test.ExpectEquality(t, instructions.ConditionFromOpcode(instructions.JR), instructions.Always)
	test.ExpectEquality(t, instructions.ConditionFromOpcode(0x6b), instructions.EQ)
	test.ExpectEquality(t, instructions.ConditionFromOpcode(0xed).String(), "NZ")
}
