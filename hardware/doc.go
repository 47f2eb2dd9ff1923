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

// Package hardware is the base package for the Z8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Z8 type is the root of the emulation and contains external references
// to the memory and to the hardware connected to the I/O ports. The
// emulation is driven by the Run() function, which should be called on its
// own goroutine. Every other function of the Z8 type can be called from any
// goroutine.
//
// The emulation is controlled by the request functions: Reset(), SetPause(),
// SetStepMode() and Quit(). The effect of a request is seen by the emulation
// before the next instruction is fetched.
//
// Listeners are called on the emulation goroutine, with the exception of the
// EventCyclesPerSecondChanged event which is sent by the goroutine that made
// the change. The Debugger listener is
// called whenever the emulation is suspended or resumed. While the emulation
// is suspended the CPU can be examined safely from the goroutine that
// received the notification.
package hardware
