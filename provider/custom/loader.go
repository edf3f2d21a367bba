package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"

	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/internal/script"
	"github.com/swatch-cli/swatch/scheme"
	"github.com/swatch-cli/swatch/util"
)

// IDfromName derives the scheme identifier from a script's basename.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadScheme executes a Lua script and validates that it defines the
// derivation entrypoint.
func LoadScheme(path string) (scheme.Scheme, error) {
	state := lua.NewState()
	libs.Preload(state)

	err := script.PreCompileAndLoad(state, path)
	if err != nil {
		return nil, err
	}

	name := util.FileStem(path)

	if state.GetGlobal(constant.DeriveSchemeFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.DeriveSchemeFn, name)
	}

	return newLuaScheme(name, state), nil
}
