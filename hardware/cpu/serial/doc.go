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

// Package serial implements the shift registers of the Z8 serial I/O port.
//
// The serial port is clocked by T0. Every sixteen T0 pulses the transmitter
// shifts one bit onto P37 and the receiver samples one bit from P30. The
// Divider type counts the T0 pulses.
//
// Frames consist of a start bit, eight data bits and stop bits. When parity
// is enabled, the most significant data bit carries the parity. There is no
// break detection. A missing stop bit does not abort a frame, the receiver
// simply resynchronises on the next mark to space transition.
package serial
