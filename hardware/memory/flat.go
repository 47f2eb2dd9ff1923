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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/environment"
)

// Sentinal error returned by Flat.Load().
const (
	LoadError = "memory: load: %v"
)

// AddressSpace is the size of the program and data address spaces.
const AddressSpace = 0x10000

// Flat is an implementation of the Memory interface. Program and data memory
// share the same address space.
type Flat struct {
	env *environment.Environment

	internal []uint8

	// addresses below romTop are read-only
	romTop int
}

// NewFlat is the preferred method of initialisation for the Flat type. The
// romSize argument is the number of bytes from address zero that are
// read-only.
func NewFlat(env *environment.Environment, romSize int) *Flat {
	if romSize < 0 {
		romSize = 0
	} else if romSize > AddressSpace {
		romSize = AddressSpace
	}
	return &Flat{
		env:      env,
		internal: make([]uint8, AddressSpace),
		romTop:   romSize,
	}
}

// ROMSize returns the number of read-only bytes at the start of memory.
func (mem *Flat) ROMSize() int {
	return mem.romTop
}

// ReadByte implements the Memory interface.
func (mem *Flat) ReadByte(address uint16, _ bool) uint8 {
	return mem.internal[address]
}

// WriteByte implements the Memory interface.
func (mem *Flat) WriteByte(address uint16, _ bool, value uint8) bool {
	if int(address) < mem.romTop {
		return false
	}
	mem.internal[address] = value
	return true
}

// InitRAM implements the Memory interface. The RAM area is filled with zero
// or with random values depending on the RegInitZero preference.
func (mem *Flat) InitRAM() {
	ram := mem.internal[mem.romTop:]
	if mem.env != nil && !mem.env.Prefs.RegInitZero.Get().(bool) {
		mem.env.Random.Fill(ram)
		return
	}
	clear(ram)
}

// Poke writes a value to memory regardless of the ROM protection.
func (mem *Flat) Poke(address uint16, value uint8) {
	mem.internal[address] = value
}

// Load reads data into memory starting at origin. ROM protection does not
// apply. Returns the number of bytes loaded.
func (mem *Flat) Load(r io.Reader, origin uint16) (int, error) {
	space := AddressSpace - int(origin)

	// read one byte more than there is space for so that we can detect
	// oversized data
	data, err := io.ReadAll(io.LimitReader(r, int64(space)+1))
	if err != nil {
		return 0, curated.Errorf(LoadError, err)
	}
	if len(data) == 0 {
		return 0, curated.Errorf(LoadError, "no data")
	}
	if len(data) > space {
		return 0, curated.Errorf(LoadError, fmt.Sprintf("data does not fit at origin %04x", origin))
	}

	copy(mem.internal[origin:], data)
	return len(data), nil
}

// Dump returns a hex dump of the memory between the two addresses
// (inclusive).
func (mem *Flat) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	from &= 0xfff0
	for a := int(from); a <= int(to); a += 16 {
		s.WriteString(fmt.Sprintf("%04x:", a))
		for x := 0; x < 16 && a+x < AddressSpace; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.internal[a+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
