package color

import "math"

// Distance computes a weighted RGB distance between two colors.
// Channels are normalized to [0,1] and weighted 2/4/3 for red/green/blue,
// favoring green sensitivity over blue and blue over red.
// This is the heuristic chosen for this application, not a perceptual
// color-difference formula such as CIE ΔE.
func Distance(a, b Color) float64 {
	dr := (float64(a.R) - float64(b.R)) / 255
	dg := (float64(a.G) - float64(b.G)) / 255
	db := (float64(a.B) - float64(b.B)) / 255

	return math.Sqrt(2*dr*dr + 4*dg*dg + 3*db*db)
}
