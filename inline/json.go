// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/palette"
)

// Output is the stable document shape emitted by the json flag.
type Output struct {
	// Query is the search query that produced the result.
	Query string `json:"query"`
	// Colors are the matched, or explicitly provided, colors.
	Colors []color.Color `json:"colors"`
	// Palettes are derived from the selected color, one per requested scheme.
	Palettes []palette.Palette `json:"palettes,omitempty"`
}

func asJson(colors []color.Color, palettes []palette.Palette, query string) ([]byte, error) {
	if colors == nil {
		colors = []color.Color{}
	}

	return json.Marshal(&Output{
		Query:    query,
		Colors:   colors,
		Palettes: palettes,
	})
}
