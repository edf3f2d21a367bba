package custom

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/swatch-cli/swatch/color"
)

// colorToTable exposes a color to Lua as { hex, h, s, v }.
// Hue is normalized into [0,1), saturation and value into [0,1].
func colorToTable(state *lua.LState, c color.Color) *lua.LTable {
	hsv := c.HSV()

	table := state.NewTable()
	table.RawSetString("hex", lua.LString(c.Hex()))
	table.RawSetString("h", lua.LNumber(hsv.H))
	table.RawSetString("s", lua.LNumber(hsv.S))
	table.RawSetString("v", lua.LNumber(hsv.V))

	return table
}

// colorFromEntry converts a single derived entry back into a color.
// An entry is either a hex string or a table with h, s and v components.
func colorFromEntry(entry lua.LValue) (color.Color, error) {
	switch entry.Type() {
	case lua.LTString:
		return color.Parse(entry.String())
	case lua.LTTable:
		table := entry.(*lua.LTable)

		h, okH := getNumber(table, "h")
		s, okS := getNumber(table, "s")
		v, okV := getNumber(table, "v")

		if !okH || !okS || !okV {
			return color.Color{}, fmt.Errorf("derived entry must have h, s and v components")
		}

		return color.HSV{H: h, S: s, V: v}.Color(), nil
	default:
		return color.Color{}, fmt.Errorf("derived entry must be a hex string or a table, got %s", entry.Type())
	}
}

// getNumber reads a numeric field from a table.
func getNumber(table *lua.LTable, key string) (float64, bool) {
	value := table.RawGetString(key)

	if value.Type() != lua.LTNumber {
		return 0, false
	}

	return float64(value.(lua.LNumber)), true
}
