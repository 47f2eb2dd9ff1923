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

// Package debugger implements a line-oriented debugging console for the Z8
// emulation. Features include:
//
//	- instruction stepping, stepping over calls and running to a return
//	- breakpoints on the program counter, registers, memory and Lua expressions
//	- register display and visualisation of the CPU state with memviz
//	- access to the central log
//
// Initialisation of the debugger is done with the NewDebugger() function. The
// debugger creates the Z8 emulation and attaches itself as the emulation's
// Debugger listener.
//
//	dbg := debugger.NewDebugger(env, mem, io, term)
//
// Once initialised, the debugger can be started with the Start() function,
// which returns when the QUIT command is entered or when the terminal input
// is exhausted.
//
//	err := dbg.Start(ctx, true)
//
// Interaction with the debugger is through the Terminal interface (see
// terminal package). The plainterm sub-package provides a reference
// implementation.
package debugger
