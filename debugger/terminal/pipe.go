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

package terminal

import (
	"context"
	"io"

	"github.com/jetsetilly/gopherz8/curated"
)

// Sentinal errors.
const (
	NotATerminal = "terminal: not a terminal: %v"
	PipeError    = "terminal: pipe: %v"
)

// Escape is the input value that ends a Pipe(). The value is CTRL-].
const Escape = 0x1d

// Line is the host side of a serial line. It is implemented by uart.UART.
type Line interface {
	Send(data ...uint8)
	Received() <-chan uint8
}

// Pipe connects the input and output to the serial line. Pipe returns when
// the context is cancelled, when the input is exhausted or when the Escape
// value is read from the input.
//
// The terminal should be in cbreak or raw mode if the input is a real
// terminal.
//
// A Read() from the input that is blocked when Pipe() returns will complete
// on another goroutine and the value will be discarded.
func Pipe(ctx context.Context, line Line, in io.Reader, out io.Writer) error {
	input := make(chan uint8)
	inputErr := make(chan error, 1)

	done := make(chan bool)
	defer close(done)

	go func() {
		b := make([]byte, 1)
		for {
			n, err := in.Read(b)
			if n > 0 {
				select {
				case input <- b[0]:
				case <-done:
					return
				}
			}
			if err != nil {
				inputErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-inputErr:
			if err == io.EOF {
				return nil
			}
			return curated.Errorf(PipeError, err)

		case v := <-input:
			if v == Escape {
				return nil
			}
			line.Send(translate(v))

		case v := <-line.Received():
			if _, err := out.Write([]byte{v}); err != nil {
				return curated.Errorf(PipeError, err)
			}
		}
	}
}

// terminals send DEL for the backspace key and line feed for the enter key
// when in canonical mode
func translate(v uint8) uint8 {
	switch v {
	case 0x7f:
		return 0x08
	case '\n':
		return '\r'
	}
	return v
}
