// Package luavm owns the process-wide Lua interpreter that hosts the
// inference script. The interpreter is a single shared state that is not
// safe for concurrent use; every call into it must happen between Acquire
// and its release func, and only one holder exists at any instant across
// the whole process.
package luavm

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

var (
	mu    sync.Mutex
	state *lua.LState
)

// Acquire locks the process-wide interpreter and returns it together with
// the release func. The caller must release on every exit path; the usual
// form is:
//
//	L, release := luavm.Acquire()
//	defer release()
//
// Acquisition blocks until any other holder releases. No ordering beyond
// mutual exclusion is guaranteed between concurrent waiters.
func Acquire() (*lua.LState, func()) {
	mu.Lock()
	if state == nil {
		state = lua.NewState()
		log.Debug().Msg("luavm: interpreter initialised")
	}
	return state, mu.Unlock
}

// LoadModule compiles and runs a script chunk and returns the module table
// it yields. The chunk must end with a return of a single table.
func LoadModule(L *lua.LState, source, name string) (*lua.LTable, error) {
	fn, err := L.Load(strings.NewReader(source), name)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	base := L.GetTop()
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		L.SetTop(base)
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	mod, ok := L.Get(-1).(*lua.LTable)
	L.Pop(1)
	if !ok {
		return nil, fmt.Errorf("%s did not return a module table", name)
	}
	log.Debug().Str("script", name).Msg("luavm: module loaded")
	return mod, nil
}

// EntryPoint resolves a function on a module table.
func EntryPoint(mod *lua.LTable, name string) (lua.LValue, error) {
	fn := mod.RawGetString(name)
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("entry point %q is %s, want function", name, fn.Type())
	}
	return fn, nil
}

// Call invokes fn in protected mode and returns its single result. A script
// error surfaces as the returned error; the interpreter stack is left
// balanced either way.
func Call(L *lua.LState, fn lua.LValue, args ...lua.LValue) (lua.LValue, error) {
	base := L.GetTop()
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		L.SetTop(base)
		return nil, err
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}
