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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/test"
)

const testError = "test error: %s"
const wrapError = "wrapper: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, wrapError))
	test.ExpectSuccess(t, curated.IsAny(e))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(wrapError, e)
	test.ExpectEquality(t, f.Error(), "wrapper: test error: foo")
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, wrapError))
	test.ExpectFailure(t, curated.Is(f, testError))

	u := errors.Unwrap(f)
	test.ExpectSuccess(t, curated.Is(u, testError))
	test.ExpectEquality(t, u.Error(), e.Error())
	test.ExpectSuccess(t, errors.Unwrap(e) == nil)
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("memory: %v", curated.Errorf("memory: file too large"))
	test.ExpectEquality(t, e.Error(), "memory: file too large")
}
