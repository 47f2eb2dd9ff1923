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

package registers

import "fmt"

// Addresses of the control registers.
const (
	SIO   = 0xf0
	TMR   = 0xf1
	T1    = 0xf2
	PRE1  = 0xf3
	T0    = 0xf4
	PRE0  = 0xf5
	P2M   = 0xf6
	P3M   = 0xf7
	P01M  = 0xf8
	IPR   = 0xf9
	IRQ   = 0xfa
	IMR   = 0xfb
	FLAGS = 0xfc
	RP    = 0xfd
	SPH   = 0xfe
	SPL   = 0xff
)

// FirstControl is the address of the lowest control register. Registers
// below this address are the ports and the general purpose registers.
const FirstControl = SIO

// WorkingGroup is the high nibble of a register address that indicates a
// working register, relative to the register pointer.
const WorkingGroup = 0xe0

var controlNames = [16]string{
	"SIO", "TMR", "T1", "PRE1", "T0", "PRE0", "P2M", "P3M",
	"P01M", "IPR", "IRQ", "IMR", "FLAGS", "RP", "SPH", "SPL",
}

// writeOnly registers read as 0xff.
var writeOnly = [16]bool{
	PRE1 - FirstControl: true,
	PRE0 - FirstControl: true,
	P2M - FirstControl:  true,
	P3M - FirstControl:  true,
	P01M - FirstControl: true,
	IPR - FirstControl:  true,
}

// IsControl returns true if the register address is a control register.
func IsControl(r uint8) bool {
	return r >= FirstControl
}

// IsWriteOnly returns true if the register cannot be read by a program.
func IsWriteOnly(r uint8) bool {
	return IsControl(r) && writeOnly[r-FirstControl]
}

// Name returns the name of the register. Ports are named P0 to P3, control
// registers by their datasheet names and all others as a %xx address.
func Name(r uint8) string {
	switch {
	case r < 4:
		return fmt.Sprintf("P%d", r)
	case IsControl(r):
		return controlNames[r-FirstControl]
	}
	return fmt.Sprintf("%%%02X", r)
}

// Lookup returns the address of the named control register.
func Lookup(name string) (uint8, bool) {
	for i, n := range controlNames {
		if n == name {
			return uint8(FirstControl + i), true
		}
	}
	return 0, false
}
