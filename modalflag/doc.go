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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments. This allows the arguments to
// be parsed in layers, one layer for each mode.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//	p, err := md.Parse()
//
// The first sub-mode is the default mode. Sub-mode comparisons are case
// insensitive. Once the mode has been decided, NewMode() is called and the
// flags for that mode are added before calling Parse() again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddNumber("origin", 0, 16, "load address")
//		p, err := md.Parse()
//		...
//		load(md.GetArg(0), *origin)
//	}
//
// Help messages are handled automatically by the Parse() function, which
// returns ParseHelp when help has been printed. The help message includes the
// flags and sub-modes of the current mode.
package modalflag
