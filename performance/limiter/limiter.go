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

// Package limiter provides a rough and ready way of limiting the speed of the
// emulation to a target number of CPU cycles per second.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(limiter.DefaultCyclesPerSecond)
//
// The emulation then reports the cycles used by each instruction. The
// limiter sleeps whenever the emulation is ahead of the target:
//
//	for {
//		lim.Cycles(executeInstruction())
//	}
//
// A target of zero means the emulation runs as quickly as possible.
package limiter

import (
	"fmt"
	"sync"
	"time"
)

// DefaultCyclesPerSecond is the nominal clock rate of a Z8 as found in the
// JU+TE computer.
const DefaultCyclesPerSecond = 4000000

// the number of cycles between speed adjustments
const adjustInterval = 10000

// sleep periods are clamped to this range. periods shorter than the minimum
// are not worth sleeping for
const (
	minSleep = 10 * time.Millisecond
	maxSleep = 50 * time.Millisecond
)

// Limiter paces the emulation. The Cycles() function should only be called
// from the emulation goroutine. All other functions can be called from any
// goroutine.
type Limiter struct {
	crit sync.Mutex

	cyclesPerSecond int

	// the time of the most recent reset and the number of cycles since then
	start       time.Time
	speedCycles int64

	// cycles since the previous adjustment. only accessed by Cycles()
	sinceAdjust int64

	// speed limiting is suspended until speedCycles reaches this value
	unlimitedUntil int64

	// time functions. replaced for testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(cyclesPerSecond int) *Limiter {
	lim := &Limiter{
		cyclesPerSecond: max(cyclesPerSecond, 0),
		now:             time.Now,
		sleep:           time.Sleep,
	}
	lim.Reset()
	return lim
}

func (lim *Limiter) String() string {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	if lim.cyclesPerSecond == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d cycles per second", lim.cyclesPerSecond)
}

// SetLimit changes the target number of cycles per second. A value of zero
// means unlimited. Returns true if the value has changed, in which case the
// speed measurement is reset.
func (lim *Limiter) SetLimit(cyclesPerSecond int) bool {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	cyclesPerSecond = max(cyclesPerSecond, 0)
	if cyclesPerSecond == lim.cyclesPerSecond {
		return false
	}
	lim.cyclesPerSecond = cyclesPerSecond
	lim.reset()
	return true
}

// Limit returns the target number of cycles per second.
func (lim *Limiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.cyclesPerSecond
}

// Reset the speed measurement. Also cancels any UnlimitedFor() request.
func (lim *Limiter) Reset() {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.reset()
}

func (lim *Limiter) reset() {
	lim.start = lim.now()
	lim.speedCycles = 0
	lim.unlimitedUntil = -1
}

// UnlimitedFor suspends speed limiting for the number of cycles.
func (lim *Limiter) UnlimitedFor(cycles int64) {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.unlimitedUntil = lim.speedCycles + cycles
}

// Cycles accounts for cycles used by the emulation. If the emulation is
// ahead of the target the function will sleep before returning.
func (lim *Limiter) Cycles(cycles int) {
	lim.sinceAdjust += int64(cycles)

	lim.crit.Lock()
	lim.speedCycles += int64(cycles)
	if lim.sinceAdjust <= adjustInterval || lim.speedCycles <= lim.unlimitedUntil || lim.cyclesPerSecond == 0 {
		lim.crit.Unlock()
		return
	}

	used := lim.now().Sub(lim.start)
	planned := time.Duration(lim.speedCycles) * time.Second / time.Duration(lim.cyclesPerSecond)
	lim.crit.Unlock()

	lim.sinceAdjust = 0

	if wait := planned - used; wait > minSleep {
		lim.sleep(min(wait, maxSleep))
	}
}

// MHz returns the measured speed of the emulation since the most recent
// reset. The bool return value is false if not enough time has elapsed for
// the measurement to be meaningful.
func (lim *Limiter) MHz() (float64, bool) {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	elapsed := lim.now().Sub(lim.start)
	if elapsed < time.Millisecond {
		return 0, false
	}
	return float64(lim.speedCycles) / elapsed.Seconds() / 1000000, true
}
