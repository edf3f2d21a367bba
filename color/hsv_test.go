package color

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestToHSV(t *testing.T) {
	Convey("ToHSV", t, func() {
		Convey("Pure red sits at hue zero, fully saturated", func() {
			hsv, err := ToHSV("FF0000")
			So(err, ShouldBeNil)
			So(hsv.H, ShouldAlmostEqual, 0)
			So(hsv.S, ShouldAlmostEqual, 1)
			So(hsv.V, ShouldAlmostEqual, 1)
		})

		Convey("Achromatic colors have zero hue and saturation", func() {
			for _, hex := range []string{"000000", "FFFFFF", "808080"} {
				hsv, err := ToHSV(hex)
				So(err, ShouldBeNil)
				So(hsv.H, ShouldAlmostEqual, 0)
				So(hsv.S, ShouldAlmostEqual, 0)
			}
		})

		Convey("Pure green and blue sit a third of the wheel apart", func() {
			green, err := ToHSV("00FF00")
			So(err, ShouldBeNil)
			So(green.H, ShouldAlmostEqual, 1.0/3, 1e-9)

			blue, err := ToHSV("0000FF")
			So(err, ShouldBeNil)
			So(blue.H, ShouldAlmostEqual, 2.0/3, 1e-9)
		})

		Convey("Should fail on malformed input instead of defaulting", func() {
			_, err := ToHSV("zz0000")
			So(errors.Is(err, ErrInvalidFormat), ShouldBeTrue)
		})
	})
}

func TestFromHSV(t *testing.T) {
	Convey("FromHSV", t, func() {
		Convey("Known wheel positions", func() {
			So(FromHSV(0, 1, 1), ShouldEqual, "FF0000")
			So(FromHSV(0.5, 1, 1), ShouldEqual, "00FFFF")
			So(FromHSV(0.25, 1, 1), ShouldEqual, "80FF00")
		})

		Convey("Zero saturation collapses to gray", func() {
			So(FromHSV(0.3, 0, 0.5), ShouldEqual, "808080")
		})

		Convey("Hue wraps modulo one", func() {
			for _, h := range []float64{0, 0.125, 0.25, 0.375, 0.5} {
				base := FromHSV(h, 1, 1)
				So(FromHSV(h+1, 1, 1), ShouldEqual, base)
				So(FromHSV(h+2, 1, 1), ShouldEqual, base)
				So(FromHSV(h-1, 1, 1), ShouldEqual, base)
			}
		})

		Convey("Saturation and value are clamped into [0,1]", func() {
			So(FromHSV(0, 2, 1), ShouldEqual, "FF0000")
			So(FromHSV(0, 1, -1), ShouldEqual, "000000")
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("ToHSV after FromHSV reproduces the triple within quantization error", t, func() {
		for h := 0.0; h < 1; h += 0.1 {
			for _, s := range []float64{0.5, 0.75, 1} {
				for _, v := range []float64{0.5, 0.75, 1} {
					hsv, err := ToHSV(FromHSV(h, s, v))
					So(err, ShouldBeNil)
					So(hueDelta(hsv.H, h), ShouldBeLessThan, 0.01)
					So(math.Abs(hsv.S-s), ShouldBeLessThan, 0.01)
					So(math.Abs(hsv.V-v), ShouldBeLessThan, 0.01)
				}
			}
		}
	})
}

// hueDelta measures circular distance between two hues in [0,1).
func hueDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}
