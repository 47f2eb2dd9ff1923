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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for. Errors are created with Errorf(), which stores the formatting
// pattern and the values. Formatting is deferred until Error() is called.
//
// Is() checks whether the error was created with a specific pattern:
//
//	e := curated.Errorf("memory: load error: %v", err)
//	if curated.Is(e, "memory: load error: %v") {
//		...
//	}
//
// Has() checks the entire chain of curated errors for the pattern.
// Adjacent duplicate prefixes in the formatted message are removed, so
// wrapping an error with the same leading tag does not repeat the tag.
package curated
