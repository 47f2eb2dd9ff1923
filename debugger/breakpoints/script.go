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

package breakpoints

import (
	"sync"

	"github.com/jetsetilly/gopherz8/curated"
	"github.com/jetsetilly/gopherz8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz8/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is returned by NewScript() when the Lua source cannot be
// compiled.
const ScriptError = "breakpoint script: %v"

// Script is a breakpoint defined by a Lua expression. The expression is true
// if it evaluates to anything other than nil or false.
//
// Matches() should only be called by the emulation goroutine. Close() can be
// called from any goroutine.
type Script struct {
	source string

	// guards the interpreter against Close() during a call to Matches()
	crit   sync.Mutex
	closed bool

	L  *lua.LState
	fn *lua.LFunction

	// the target of the current call to Matches()
	target Target

	// a runtime error has been logged. further errors are not logged
	failed bool
}

// NewScript compiles the Lua source. The source can be an expression or a
// chunk that ends with a return statement.
func NewScript(source string) (*Script, error) {
	scr := &Script{
		source: source,
		L:      lua.NewState(lua.Options{SkipOpenLibs: true}),
	}

	// the math and string libraries are useful in expressions
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.MathLibName, lua.OpenMath},
		{lua.StringLibName, lua.OpenString},
	} {
		err := scr.L.CallByParam(lua.P{
			Fn:      scr.L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			scr.L.Close()
			return nil, curated.Errorf(ScriptError, err)
		}
	}

	scr.L.SetGlobal("reg", scr.L.NewFunction(scr.reg))
	scr.L.SetGlobal("mem", scr.L.NewFunction(scr.mem(false)))
	scr.L.SetGlobal("dmem", scr.L.NewFunction(scr.mem(true)))

	fn, err := scr.L.LoadString("return " + source)
	if err != nil {
		var cerr error
		fn, cerr = scr.L.LoadString(source)
		if cerr != nil {
			scr.L.Close()
			return nil, curated.Errorf(ScriptError, err)
		}
	}
	scr.fn = fn

	return scr, nil
}

func (scr *Script) String() string {
	return "LUA " + scr.source
}

// Close releases the resources used by the Lua interpreter. The Script
// should not be used after Close() has been called.
func (scr *Script) Close() {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	if scr.closed {
		return
	}
	scr.closed = true
	scr.L.Close()
}

// Matches implements the Breakpoint interface. A runtime error in the script
// is logged once and is treated as a false result.
func (scr *Script) Matches(t Target) bool {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	if scr.closed {
		return false
	}

	scr.target = t
	defer func() {
		scr.target = nil
	}()

	scr.L.SetGlobal("pc", lua.LNumber(t.ProgramCounter()))
	scr.L.SetGlobal("sp", lua.LNumber(t.StackPointer()))
	scr.L.SetGlobal("flags", lua.LNumber(t.PeekRegister(registers.FLAGS)))

	err := scr.L.CallByParam(lua.P{
		Fn:      scr.fn,
		NRet:    1,
		Protect: true,
	})
	if err != nil {
		if !scr.failed {
			scr.failed = true
			logger.Log(logger.Allow, "breakpoint", curated.Errorf(ScriptError, err))
		}
		return false
	}

	v := scr.L.Get(-1)
	scr.L.Pop(1)
	return lua.LVAsBool(v)
}

func (scr *Script) reg(L *lua.LState) int {
	r := L.CheckInt(1)
	if r < 0 || r > 0xff {
		L.ArgError(1, "register out of range")
		return 0
	}
	L.Push(lua.LNumber(scr.target.PeekRegister(uint8(r))))
	return 1
}

func (scr *Script) mem(data bool) lua.LGFunction {
	return func(L *lua.LState) int {
		a := L.CheckInt(1)
		if a < 0 || a > 0xffff {
			L.ArgError(1, "address out of range")
			return 0
		}
		L.Push(lua.LNumber(scr.target.PeekMemory(uint16(a), data)))
		return 1
	}
}
