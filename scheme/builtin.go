package scheme

import (
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
)

// builtin adapts a pure hue-rotation function to the Scheme interface.
type builtin struct {
	id     string
	name   string
	derive func(base string) ([]string, error)
}

func (b *builtin) ID() string   { return b.id }
func (b *builtin) Name() string { return b.name }

func (b *builtin) Derive(base color.Color) ([]color.Color, error) {
	hexes, err := b.derive(base.Hex())
	if err != nil {
		return nil, err
	}

	p, err := palette.Of(b.name, hexes)
	if err != nil {
		return nil, err
	}
	return p.Colors, nil
}

// analogousCount reads the configured palette size, falling back to the stock default.
func analogousCount() int {
	if count := viper.GetInt(key.GenerationAnalogousCount); count > 0 {
		return count
	}
	return palette.DefaultAnalogousCount
}

// Builtins returns the native schemes in canonical order.
func Builtins() []Scheme {
	return []Scheme{
		&builtin{id: "analogous", name: "Analogous", derive: func(base string) ([]string, error) {
			return palette.Analogous(base, analogousCount())
		}},
		&builtin{id: "complementary", name: "Complementary", derive: palette.Complementary},
		&builtin{id: "triadic", name: "Triadic", derive: palette.Triadic},
		&builtin{id: "split-complementary", name: "Split Complementary", derive: palette.SplitComplementary},
		&builtin{id: "tetradic", name: "Tetradic", derive: palette.Tetradic},
	}
}
