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

package random

import (
	"math/rand/v2"
	"sync/atomic"
	"time"
)

var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock is the source of the emulation time used to vary the seed.
type Clock interface {
	Cycles() int64
}

// Random should be used in preference to the math/rand package when a random
// number is required inside the emulation.
type Random struct {
	clk Clock

	// number of generators created. distinguishes generators created at the
	// same clock value
	draws atomic.Uint64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case the clock is always zero.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

// SetClock changes the clock used to seed new generators.
func (rnd *Random) SetClock(clk Clock) {
	rnd.clk = clk
}

func (rnd *Random) rand() *rand.Rand {
	var t uint64
	if rnd.clk != nil {
		t = uint64(rnd.clk.Cycles())
	}
	n := rnd.draws.Add(1)
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(t, n))
	}
	return rand.New(rand.NewPCG(baseSeed+t, n))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}

// Fill the slice with random bytes drawn from a single generator.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.UintN(256))
	}
}

// Reset the sequence so that a normalised instance produces the same numbers
// as a new instance.
func (rnd *Random) Reset() {
	rnd.draws.Store(0)
}
