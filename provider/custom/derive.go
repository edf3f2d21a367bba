package custom

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
)

// Derive calls the script's entrypoint with the base color and converts the
// returned table. Entries that fail validation are skipped; their errors are
// surfaced only when nothing valid remains.
func (s *luaScheme) Derive(base color.Color) ([]color.Color, error) {
	result, err := s.call(constant.DeriveSchemeFn, lua.LTTable, colorToTable(s.state, base))
	if err != nil {
		return nil, err
	}

	table := result.(*lua.LTable)

	var (
		colors []color.Color
		errs   []error
	)

	table.ForEach(func(key, entry lua.LValue) {
		if key.Type() != lua.LTNumber {
			return
		}

		c, err := colorFromEntry(entry)
		if err != nil {
			errs = append(errs, err)
			return
		}

		colors = append(colors, c)
	})

	if len(colors) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	return colors, nil
}
