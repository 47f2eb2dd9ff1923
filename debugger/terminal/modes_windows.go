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

//go:build windows

package terminal

import (
	"os"

	"github.com/jetsetilly/gopherz8/curated"
	xterm "golang.org/x/term"
)

// Modes changes the mode of the console. There is no distinction between
// raw and cbreak modes under windows.
type Modes struct {
	fd    int
	state *xterm.State
}

// OpenModes is the preferred method of initialisation for the Modes type.
// Returns a NotATerminal error if standard input is not a terminal.
func OpenModes() (*Modes, error) {
	fd := int(os.Stdin.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, curated.Errorf(NotATerminal, "stdin")
	}
	return &Modes{fd: fd}, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (m *Modes) CanonicalMode() error {
	if m.state == nil {
		return nil
	}
	err := xterm.Restore(m.fd, m.state)
	m.state = nil
	return err
}

// RawMode puts terminal into raw mode.
func (m *Modes) RawMode() error {
	if m.state != nil {
		return nil
	}
	state, err := xterm.MakeRaw(m.fd)
	if err != nil {
		return err
	}
	m.state = state
	return nil
}

// CBreakMode puts terminal into cbreak mode.
func (m *Modes) CBreakMode() error {
	return m.RawMode()
}

// Close restores the terminal to canonical mode.
func (m *Modes) Close() error {
	return m.CanonicalMode()
}
