package color

import "math"

// HSV is the transient cylindrical representation used during scheme derivation.
// Hue is normalized into [0,1) and cyclic; saturation and value live in [0,1].
// HSV values are never persisted and never compared with ==.
type HSV struct {
	H, S, V float64
}

// ToHSV parses a hex string and converts it to HSV.
// Fails with ErrInvalidFormat on anything that is not 6 hex digits.
func ToHSV(hex string) (HSV, error) {
	c, err := Parse(hex)
	if err != nil {
		return HSV{}, err
	}
	return c.HSV(), nil
}

// FromHSV converts an HSV triple to a canonical hex string.
// Hue is wrapped into [0,1) and saturation/value are clamped into [0,1] first.
func FromHSV(h, s, v float64) string {
	return HSV{H: h, S: s, V: v}.Color().Hex()
}

// HSV converts the color to its HSV representation.
func (c Color) HSV() HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))

	v := maxc
	if maxc == minc {
		return HSV{H: 0, S: 0, V: v}
	}

	rangec := maxc - minc
	s := rangec / maxc

	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec

	var h float64
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}

	h = math.Mod(h/6, 1)
	if h < 0 {
		h++
	}

	return HSV{H: h, S: s, V: v}
}

// Color converts the HSV triple back to RGB,
// rounding each channel to the nearest integer in [0,255].
func (hsv HSV) Color() Color {
	h := hsv.H - math.Floor(hsv.H)
	s := clamp01(hsv.S)
	v := clamp01(hsv.V)

	if s == 0 {
		channel := round255(v)
		return Color{R: channel, G: channel, B: channel}
	}

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return Color{R: round255(r), G: round255(g), B: round255(b)}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func round255(x float64) uint8 {
	return uint8(math.Round(x * 255))
}
