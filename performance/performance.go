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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/hardware"
)

// Sentinal error returned by Check().
const CheckError = "performance: %v"

// Check the performance of the emulation. The emulation is run from its
// current state for the specified duration and the speed of the emulation is
// written to the output.
//
// A CPU profile, memory profile or trace (or a combination of those) will be
// created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, z8 *hardware.Z8, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	start := z8.Cycles()
	var elapsed time.Duration

	runner := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), dur)
		defer cancel()

		t := time.Now()
		err := z8.Run(ctx)
		elapsed = time.Since(t)

		if errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	cycles := z8.Cycles() - start
	mhz := float64(cycles) / elapsed.Seconds() / 1000000

	s := fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds)", mhz, cycles, elapsed.Seconds())
	if target := z8.CyclesPerSecond(); target > 0 {
		s = fmt.Sprintf("%s %.1f%%", s, mhz*1000000*100/float64(target))
	}
	fmt.Fprintln(output, s)

	return nil
}
