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

package timer

import "fmt"

// the prescaler is clocked by the CPU clock divided by four
const clockDivider = 4

// Timer is one of the T0 or T1 counter/timers.
type Timer struct {
	// the most recent value written to the PREx register
	PreRegister uint8

	// the cycles remaining before the prescaler is next clocked
	div4Counter int

	preCounter     uint8
	preCounterInit uint8

	counter     uint8
	counterInit uint8

	// continuous mode. when false the timer stops once the counter reaches
	// zero
	loop     bool
	loopInit bool
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{
		div4Counter: clockDivider,
	}
}

func (tmr *Timer) String() string {
	mode := "single"
	if tmr.loop {
		mode = "continuous"
	}
	return fmt.Sprintf("pre=%02x cnt=%02x (%s)", tmr.preCounter, tmr.counter, mode)
}

// Counter returns the current value of the down counter.
func (tmr *Timer) Counter() uint8 {
	return tmr.counter
}

// PreCounter returns the current value of the prescaler.
func (tmr *Timer) PreCounter() uint8 {
	return tmr.preCounter
}

// Continuous returns true if the running timer reloads itself when the
// counter reaches zero.
func (tmr *Timer) Continuous() bool {
	return tmr.loop
}

// SetPrescaler latches the value written to the PREx register. Bits 2 to 7
// are the prescaler count and bit 0 selects continuous mode.
func (tmr *Timer) SetPrescaler(v uint8) {
	tmr.PreRegister = v
	tmr.preCounterInit = (v >> 2) & 0x3f
	tmr.loopInit = v&0x01 == 0x01
}

// SetCounter latches the value written to the Tx register.
func (tmr *Timer) SetCounter(v uint8) {
	tmr.counterInit = v
}

// Init copies the latched values into the running prescaler and counter.
func (tmr *Timer) Init() {
	tmr.preCounter = tmr.preCounterInit
	tmr.counter = tmr.counterInit
	tmr.loop = tmr.loopInit
}

// Update advances the timer by the number of CPU cycles. Returns true if the
// counter reached zero at least once during the update.
//
// A prescaler or counter value of zero is equivalent to the maximum count of
// 64 or 256 respectively.
func (tmr *Timer) Update(cycles int) bool {
	if !tmr.loop && tmr.counter == 0 {
		return false
	}

	var fired bool
	for cycles > 0 {
		if cycles >= tmr.div4Counter {
			cycles -= tmr.div4Counter
			tmr.div4Counter = clockDivider
			if tmr.decPrescaler() {
				fired = true
			}
		} else {
			tmr.div4Counter -= cycles
			cycles = 0
		}
	}
	return fired
}

func (tmr *Timer) decPrescaler() bool {
	tmr.preCounter = (tmr.preCounter - 1) & 0x3f
	if tmr.preCounter != 0 {
		return false
	}
	tmr.preCounter = tmr.preCounterInit
	return tmr.decCounter()
}

func (tmr *Timer) decCounter() bool {
	tmr.counter--
	if tmr.counter != 0 {
		return false
	}
	if tmr.loop {
		tmr.counter = tmr.counterInit
	}
	return true
}
