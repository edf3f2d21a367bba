// Package scheme defines the palette derivation contract and its built-in implementations.
package scheme

import (
	"fmt"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/palette"
)

// Scheme derives an ordered set of colors from a base color.
// The base always appears in the derived set: rotating schemes lead with it,
// the analogous scheme centers it. Implementations never mutate shared state.
type Scheme interface {
	// ID is the stable identifier used in configuration and command arguments.
	ID() string

	// Name is the human-readable display name.
	Name() string

	// Derive expands the base color into the scheme's ordered colors.
	Derive(base color.Color) ([]color.Color, error)
}

// Expand derives a palette carrying the scheme's display name.
func Expand(s Scheme, base color.Color) (palette.Palette, error) {
	colors, err := s.Derive(base)
	if err != nil {
		return palette.Palette{}, err
	}
	return palette.Palette{Scheme: s.Name(), Colors: colors}, nil
}

// Generate expands every scheme from the same base color.
// The first failing scheme aborts the whole generation.
func Generate(base color.Color, schemes ...Scheme) ([]palette.Palette, error) {
	palettes := make([]palette.Palette, 0, len(schemes))
	for _, s := range schemes {
		p, err := Expand(s, base)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", s.Name(), err)
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}
