// Package custom bridges Lua scheme scripts into the scheme.Scheme interface.
package custom

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// luaScheme is a scheme backed by a Lua script.
// Each scheme owns its own interpreter state.
type luaScheme struct {
	name  string
	state *lua.LState
}

func newLuaScheme(name string, state *lua.LState) *luaScheme {
	return &luaScheme{
		name:  name,
		state: state,
	}
}

// Name returns the script's display name.
func (s *luaScheme) Name() string {
	return s.name
}

// ID returns the unique scheme identifier.
func (s *luaScheme) ID() string {
	return IDfromName(s.name)
}

// call invokes a global Lua function and validates the type of its return value.
func (s *luaScheme) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	luaFn := s.state.GetGlobal(fn)

	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%s is not a function, got %s", fn, luaFn.Type())
	}

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)

	if err != nil {
		return nil, err
	}

	val := s.state.Get(-1)
	s.state.Pop(1)

	if val.Type() != retType {
		return nil, fmt.Errorf("%s was expected to return a %s, got %s", fn, retType, val.Type())
	}

	return val, nil
}
