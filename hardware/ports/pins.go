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

package ports

import (
	"fmt"
	"sync"
)

// Pins is an implementation of the IO interface. Input values are set with
// SetInput() and the most recent output values are retrieved with Output().
type Pins struct {
	crit sync.Mutex

	in  [NumPorts]uint8
	out [NumPorts]uint8

	// called on the emulation goroutine whenever an output changes
	onChange func(port int, value uint8)
}

// NewPins is the preferred method of initialisation for the Pins type. All
// inputs are initially high.
func NewPins() *Pins {
	p := &Pins{}
	for i := range p.in {
		p.in[i] = 0xff
	}
	return p
}

func (p *Pins) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return fmt.Sprintf("in=%02x %02x %02x %02x out=%02x %02x %02x %02x",
		p.in[0], p.in[1], p.in[2], p.in[3],
		p.out[0], p.out[1], p.out[2], p.out[3])
}

// OnChange sets the function that is called when an output value changes.
// The function is called on the emulation goroutine.
func (p *Pins) OnChange(f func(port int, value uint8)) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.onChange = f
}

// SetInput sets the level of all pins of a port.
func (p *Pins) SetInput(port int, value uint8) {
	p.SetInputBits(port, 0xff, value)
}

// SetInputBits sets the level of the pins selected by the mask. Other pins
// are unchanged.
func (p *Pins) SetInputBits(port int, mask uint8, value uint8) {
	if port < 0 || port >= NumPorts {
		return
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	p.in[port] = (p.in[port] &^ mask) | (value & mask)
}

// Output returns the most recent output value for the port.
func (p *Pins) Output(port int) uint8 {
	if port < 0 || port >= NumPorts {
		return 0xff
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.out[port]
}

// GetPortValue implements the IO interface.
func (p *Pins) GetPortValue(port int) uint8 {
	if port < 0 || port >= NumPorts {
		return 0xff
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.in[port]
}

// SetPortValue implements the IO interface.
func (p *Pins) SetPortValue(port int, value uint8) {
	if port < 0 || port >= NumPorts {
		return
	}
	p.crit.Lock()
	p.out[port] = value
	f := p.onChange
	p.crit.Unlock()

	if f != nil {
		f(port, value)
	}
}
