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

package limiter

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherz8/test"
)

// fakeTime only advances when the limiter sleeps or when advanced by the test
type fakeTime struct {
	t      time.Time
	sleeps int
	slept  time.Duration
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func (f *fakeTime) sleep(d time.Duration) {
	f.sleeps++
	f.slept += d
	f.t = f.t.Add(d)
}

func newFakeLimiter(cyclesPerSecond int) (*Limiter, *fakeTime) {
	f := &fakeTime{t: time.Unix(0, 0)}
	lim := NewLimiter(cyclesPerSecond)
	lim.now = f.now
	lim.sleep = f.sleep
	lim.Reset()
	return lim, f
}

func TestUnlimited(t *testing.T) {
	lim, f := newFakeLimiter(0)
	for range 100000 {
		lim.Cycles(12)
	}
	test.ExpectEquality(t, f.sleeps, 0)
	test.ExpectEquality(t, lim.String(), "unlimited")
}

func TestLimited(t *testing.T) {
	lim, f := newFakeLimiter(1000000)

	// one second of cycles. the fake clock only advances by sleeping so the
	// total sleep time must approach one second
	for range 100000 {
		lim.Cycles(10)
	}
	test.ExpectSuccess(t, f.sleeps > 0)
	test.ExpectApproximate(t, f.slept.Seconds(), 1.0, 0.02)

	// no sleep is longer than the maximum
	test.ExpectSuccess(t, f.slept <= time.Duration(f.sleeps)*maxSleep)

	mhz, ok := lim.MHz()
	test.ExpectSuccess(t, ok)
	test.ExpectApproximate(t, mhz, 1.0, 0.02)
}

func TestSlowHost(t *testing.T) {
	lim, f := newFakeLimiter(1000000)

	// the host takes longer than the target for every instruction
	for range 10000 {
		f.t = f.t.Add(20 * time.Microsecond)
		lim.Cycles(10)
	}
	test.ExpectEquality(t, f.sleeps, 0)
}

func TestUnlimitedFor(t *testing.T) {
	lim, f := newFakeLimiter(1000000)

	lim.UnlimitedFor(500000)
	for range 50000 {
		lim.Cycles(10)
	}
	test.ExpectEquality(t, f.sleeps, 0)

	// limiting resumes after the unlimited period
	for range 50000 {
		lim.Cycles(10)
	}
	test.ExpectSuccess(t, f.sleeps > 0)
}

func TestSetLimit(t *testing.T) {
	lim, _ := newFakeLimiter(1000000)
	test.ExpectFailure(t, lim.SetLimit(1000000))
	test.ExpectSuccess(t, lim.SetLimit(2000000))
	test.ExpectEquality(t, lim.Limit(), 2000000)
	test.ExpectSuccess(t, lim.SetLimit(-1))
	test.ExpectEquality(t, lim.Limit(), 0)
}

func TestRealTime(t *testing.T) {
	if testing.Short() {
		t.Skip("real time pacing")
	}

	lim := NewLimiter(1000000)
	start := time.Now()
	for range 20000 {
		lim.Cycles(10)
	}

	// 200ms of emulated time. cycles after the final adjustment and waits
	// shorter than the minimum sleep period are not slept for
	test.ExpectSuccess(t, time.Since(start) >= 150*time.Millisecond)
}
