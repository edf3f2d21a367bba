// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/mo"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/scheme"
	"github.com/swatch-cli/swatch/util"
)

// ColorPicker narrows matched candidates down to a single color.
type ColorPicker func([]color.Color) *color.Color

// Options bundles everything a single inline run needs.
type Options struct {
	Out io.Writer

	// Query is matched against the color history.
	Query string

	// Base skips the history search entirely when present.
	Base mo.Option[color.Color]

	// ColorPicker selects one color from the matches.
	ColorPicker mo.Option[ColorPicker]

	// Schemes to derive from the selected color.
	Schemes []scheme.Scheme

	Json bool
}

// ParseColorPicker parses a picker description.
//
// Selectors:
//
//	first    - first matched color
//	last     - last matched color
//	exact    - the color equal to the query
//	[number] - matched color by index (starting from 0)
func ParseColorPicker(description, query string) (ColorPicker, error) {
	switch description {
	case "first":
		return func(colors []color.Color) *color.Color {
			if len(colors) == 0 {
				return nil
			}
			return &colors[0]
		}, nil
	case "last":
		return func(colors []color.Color) *color.Color {
			if len(colors) == 0 {
				return nil
			}
			return &colors[len(colors)-1]
		}, nil
	case "exact":
		return func(colors []color.Color) *color.Color {
			target, err := color.Parse(query)
			if err != nil {
				return nil
			}

			for _, c := range colors {
				if c == target {
					return &c
				}
			}
			return nil
		}, nil
	default:
		idx, err := strconv.ParseUint(description, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("unknown color picker: %s", description)
		}

		return func(colors []color.Color) *color.Color {
			if len(colors) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(colors)-1))
			return &colors[i]
		}, nil
	}
}
