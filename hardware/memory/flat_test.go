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

package memory_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/environment"
	"github.com/jetsetilly/gopherz8/hardware/memory"
	"github.com/jetsetilly/gopherz8/test"
)

func TestROMProtection(t *testing.T) {
	mem := memory.NewFlat(nil, 0x0800)
	test.ExpectEquality(t, mem.ROMSize(), 0x0800)

	test.ExpectFailure(t, mem.WriteByte(0x0000, false, 0x12))
	test.ExpectFailure(t, mem.WriteByte(0x07ff, true, 0x12))
	test.ExpectEquality(t, mem.ReadByte(0x07ff, false), uint8(0x00))

	test.ExpectSuccess(t, mem.WriteByte(0x0800, true, 0x34))
	test.ExpectEquality(t, mem.ReadByte(0x0800, false), uint8(0x34))
	test.ExpectEquality(t, mem.ReadByte(0x0800, true), uint8(0x34))

	// poke ignores ROM protection
	mem.Poke(0x0010, 0x56)
	test.ExpectEquality(t, mem.ReadByte(0x0010, false), uint8(0x56))
}

func TestLoad(t *testing.T) {
	mem := memory.NewFlat(nil, 0x0800)

	n, err := mem.Load(bytes.NewReader([]uint8{0x8b, 0xfe}), 0x000c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, mem.ReadByte(0x000c, false), uint8(0x8b))
	test.ExpectEquality(t, mem.ReadByte(0x000d, false), uint8(0xfe))

	// data fits exactly at the top of memory
	n, err = mem.Load(bytes.NewReader([]uint8{0x01, 0x02}), 0xfffe)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	// data that overflows memory
	_, err = mem.Load(bytes.NewReader([]uint8{0x01, 0x02, 0x03}), 0xfffe)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.LoadError))

	// empty data
	_, err = mem.Load(strings.NewReader(""), 0x0000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.LoadError))
}

func TestInitRAM(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	mem := memory.NewFlat(env, 0x0800)
	mem.Poke(0x0000, 0xaa)
	mem.Poke(0x1000, 0xaa)
	mem.InitRAM()

	// ROM is untouched and RAM is cleared
	test.ExpectEquality(t, mem.ReadByte(0x0000, false), uint8(0xaa))
	test.ExpectEquality(t, mem.ReadByte(0x1000, false), uint8(0x00))

	// random RAM. the chances of 0xf800 bytes all being zero is negligible
	test.DemandSuccess(t, env.Prefs.RegInitZero.Set(false))
	mem.InitRAM()
	nonZero := false
	for a := 0x0800; a < memory.AddressSpace; a++ {
		if mem.ReadByte(uint16(a), true) != 0 {
			nonZero = true
			break
		}
	}
	test.ExpectSuccess(t, nonZero)
	test.ExpectEquality(t, mem.ReadByte(0x0000, false), uint8(0xaa))
}

func TestDump(t *testing.T) {
	mem := memory.NewFlat(nil, 0)
	mem.Poke(0x0011, 0xff)
	s := mem.Dump(0x0012, 0x001f)
	test.ExpectEquality(t, s, "0010: 00 ff 00 00 00 00 00 00 00 00 00 00 00 00 00 00")
}
