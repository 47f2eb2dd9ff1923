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

// Package prefs contains the typed preference values used throughout the
// emulation. Values are stored atomically so that they can be read from the
// emulation goroutine while being changed from another goroutine.
//
// Each type can carry a pre-hook and a post-hook. The pre-hook can reject a
// new value by returning an error. The post-hook is called after the value
// has been stored and is the usual way of forwarding a change to the part of
// the emulation that depends on the value.
//
// Preference values can be overridden from the command line with a string of
// the form "key::value; key::value". See PushCommandLineStack().
package prefs
