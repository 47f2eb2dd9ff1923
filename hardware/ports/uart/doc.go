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

// Package uart connects an asynchronous serial device to the serial port of
// the Z8. The Z8 transmits on P37 and receives on P30.
//
// The UART type wraps another implementation of the ports.IO interface and
// is itself an implementation of that interface. Port values pass through
// the UART unchanged except for P30, which is driven low by the UART while a
// start bit or a zero data bit is being sent.
//
// Timing is measured in CPU cycles, as reported by the Clock interface. The
// number of cycles per bit must match the bit rate selected by the program
// running on the Z8. The CyclesPerBit() function calculates the value from
// the timer settings.
//
// Frames have one start bit, eight data bits and one stop bit. Parity is not
// checked or generated by the UART.
package uart
