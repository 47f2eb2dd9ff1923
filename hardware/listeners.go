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

package hardware

import (
	"github.com/jetsetilly/gopherz8/debugger/govern"
)

// Listener is called by the emulation when an event occurs.
type Listener func(z8 *Z8, ev govern.Event)

// Debugger is notified whenever the emulation is suspended or resumed. The
// current state of the emulation is available with the State() function.
type Debugger interface {
	DebugStatusChanged(z8 *Z8)
}

// Listeners is the fixed set of listeners given to NewZ8(). Any field may be
// nil.
type Listeners struct {
	// called after every reset with EventReset or EventPowerOn
	Reset Listener

	// called with EventCyclesPerSecondChanged or EventStatusChanged
	Status Listener

	// called with EventPreInstruction before every instruction
	PreInstruction Listener

	Debugger Debugger
}

func (z8 *Z8) notify(l Listener, ev govern.Event) {
	if l != nil {
		l(z8, ev)
	}
}

func (z8 *Z8) notifyDebugger() {
	if z8.listeners.Debugger != nil {
		z8.listeners.Debugger.DebugStatusChanged(z8)
	}
}

// AllAddresses can be used as the address of a PC watch. The watch function
// will be called before every instruction.
const AllAddresses = -1

// PCWatch is called before the instruction at the watched address is
// executed.
type PCWatch func(z8 *Z8, pc uint16)

// WatchID identifies a PC watch added with AddPCWatch().
type WatchID int

type pcWatch struct {
	id      WatchID
	address int
	f       PCWatch
}

// AddPCWatch adds a function to be called when the program counter reaches
// the address. The address can be AllAddresses.
func (z8 *Z8) AddPCWatch(address int, f PCWatch) WatchID {
	z8.crit.Lock()
	defer z8.crit.Unlock()

	z8.nextWatchID++
	w := pcWatch{
		id:      z8.nextWatchID,
		address: address,
		f:       f,
	}

	var l []pcWatch
	if p := z8.watches.Load(); p != nil {
		l = append(l, *p...)
	}
	l = append(l, w)
	z8.watches.Store(&l)

	return w.id
}

// RemovePCWatch removes a watch added with AddPCWatch(). Returns false if
// the watch does not exist.
func (z8 *Z8) RemovePCWatch(id WatchID) bool {
	z8.crit.Lock()
	defer z8.crit.Unlock()

	p := z8.watches.Load()
	if p == nil {
		return false
	}

	var l []pcWatch
	for _, w := range *p {
		if w.id != id {
			l = append(l, w)
		}
	}
	if len(l) == len(*p) {
		return false
	}

	if len(l) == 0 {
		z8.watches.Store(nil)
	} else {
		z8.watches.Store(&l)
	}
	return true
}

// call watches for the current program counter
func (z8 *Z8) checkWatches() {
	p := z8.watches.Load()
	if p == nil {
		return
	}
	pc := z8.CPU.PC
	for _, w := range *p {
		if w.address == AllAddresses || w.address == int(pc) {
			w.f(z8, pc)
		}
	}
}
