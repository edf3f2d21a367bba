// Package color implements the 24-bit RGB color model used across the application:
// fallible hex parsing, HSV conversion, weighted distance, and the named color table.
package color

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInvalidFormat is returned when an input string is not 6 hexadecimal digits
// after stripping an optional leading "#".
var ErrInvalidFormat = errors.New("invalid color format")

// Color is an immutable 24-bit RGB value.
// Its canonical textual form is a 6-character uppercase hex string with no leading marker.
type Color struct {
	R, G, B uint8
}

// Parse converts a hex string into a Color.
// An optional leading "#" and surrounding whitespace are accepted on input;
// anything that is not exactly 6 hex digits afterwards fails with ErrInvalidFormat.
// Parsing never substitutes a default color.
func Parse(s string) (Color, error) {
	stripped := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(stripped) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	value, err := strconv.ParseUint(stripped, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// Hex returns the canonical 6-digit uppercase hex representation, no leading marker.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Lipgloss adapts the color for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color("#" + c.Hex())
}

// MarshalJSON encodes the color as its canonical hex string.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON decodes a hex string, accepting the same inputs as Parse.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Name returns the human-readable name of the color, if it is one of the named colors.
func (c Color) Name() (string, bool) {
	name, ok := Names[c.Hex()]
	return name, ok
}
