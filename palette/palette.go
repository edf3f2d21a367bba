// Package palette derives color-scheme palettes by rotating hue in HSV space.
//
// Every scheme is a pure rotation of the base color's hue at fixed saturation
// and value. Hue arithmetic wraps modulo 1.0, so rotating by a full turn is a
// no-op. All operations accept a base hex string and return canonical hex
// strings; a malformed base fails with color.ErrInvalidFormat and is never
// substituted with a default.
package palette

import (
	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/color"
)

// hueStep is the wheel rotation applied per unit offset by Analogous, ≈30°.
const hueStep = 0.083

// DefaultAnalogousCount is the analogous palette size used when the caller does not specify one.
const DefaultAnalogousCount = 5

// Palette pairs a scheme name with the ordered colors derived from one base color.
// Created fresh on each generation request and never mutated.
type Palette struct {
	Scheme string        `json:"scheme"`
	Colors []color.Color `json:"colors"`
}

// Hexes returns the canonical hex string of every color in the palette.
func (p Palette) Hexes() []string {
	return lo.Map(p.Colors, func(c color.Color, _ int) string {
		return c.Hex()
	})
}

// Of assembles a Palette from raw hex values.
func Of(scheme string, hexes []string) (Palette, error) {
	colors := make([]color.Color, 0, len(hexes))
	for _, hex := range hexes {
		c, err := color.Parse(hex)
		if err != nil {
			return Palette{}, err
		}
		colors = append(colors, c)
	}
	return Palette{Scheme: scheme, Colors: colors}, nil
}

// Analogous derives exactly count colors adjacent on the color wheel.
// The base color sits at index count/2; offsets run from i-count/2 for
// i in [0, count), so an even count extends one extra step counter-clockwise.
func Analogous(base string, count int) ([]string, error) {
	c, err := color.Parse(base)
	if err != nil {
		return nil, err
	}

	hsv := c.HSV()
	colors := make([]string, 0, count)
	for i := 0; i < count; i++ {
		offset := float64(i-count/2) * hueStep
		colors = append(colors, color.FromHSV(hsv.H+offset, hsv.S, hsv.V))
	}

	return colors, nil
}

// Complementary derives the base color and its opposite on the color wheel.
func Complementary(base string) ([]string, error) {
	return withRotations(base, 0.5)
}

// Triadic derives three colors equally spaced on the color wheel.
func Triadic(base string) ([]string, error) {
	return withRotations(base, 0.333, 0.666)
}

// SplitComplementary derives the base color and the two colors adjacent to its complement.
func SplitComplementary(base string) ([]string, error) {
	return withRotations(base, 0.417, 0.583)
}

// Tetradic derives four colors arranged into two complementary pairs.
func Tetradic(base string) ([]string, error) {
	return withRotations(base, 0.25, 0.5, 0.75)
}

// withRotations returns the canonical base color followed by its hue rotations,
// saturation and value held from the base.
func withRotations(base string, offsets ...float64) ([]string, error) {
	c, err := color.Parse(base)
	if err != nil {
		return nil, err
	}

	hsv := c.HSV()
	rotated := lo.Map(offsets, func(offset float64, _ int) string {
		return color.FromHSV(hsv.H+offset, hsv.S, hsv.V)
	})

	return append([]string{c.Hex()}, rotated...), nil
}
