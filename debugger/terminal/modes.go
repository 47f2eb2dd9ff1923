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

//go:build !windows

package terminal

import (
	"os"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Modes changes the mode of the controlling terminal.
type Modes struct {
	t *term.Term
}

// OpenModes is the preferred method of initialisation for the Modes type.
// Returns a NotATerminal error if standard input is not a terminal.
func OpenModes() (*Modes, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, curated.Errorf(NotATerminal, "stdin")
	}

	t, err := term.Open("/dev/tty")
	if err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}

	return &Modes{t: t}, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (m *Modes) CanonicalMode() error {
	return m.t.Restore()
}

// RawMode puts terminal into raw mode.
func (m *Modes) RawMode() error {
	return m.t.SetRaw()
}

// CBreakMode puts terminal into cbreak mode.
func (m *Modes) CBreakMode() error {
	return m.t.SetCbreak()
}

// Close restores the terminal to canonical mode and releases resources.
func (m *Modes) Close() error {
	_ = m.t.Restore()
	return m.t.Close()
}
