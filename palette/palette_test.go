package palette

import (
	"errors"
	"math"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/color"
)

func TestComplementary(t *testing.T) {
	Convey("Complementary", t, func() {
		Convey("Pure red pairs with pure cyan", func() {
			colors, err := Complementary("FF0000")
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []string{"FF0000", "00FFFF"})
		})

		Convey("Should canonicalize the base element", func() {
			colors, err := Complementary("#ff0000")
			So(err, ShouldBeNil)
			So(colors[0], ShouldEqual, "FF0000")
		})

		Convey("Applying it twice returns to the base up to rounding", func() {
			for _, base := range []string{"FF0000", "1E90FF", "A52A2A", "7FFF22"} {
				once := lo.Must(Complementary(base))
				twice := lo.Must(Complementary(once[1]))
				So(channelsClose(twice[1], base, 1), ShouldBeTrue)
			}
		})

		Convey("Should fail on a malformed base", func() {
			_, err := Complementary("not-a-color")
			So(errors.Is(err, color.ErrInvalidFormat), ShouldBeTrue)
		})
	})
}

func TestTriadic(t *testing.T) {
	Convey("Triadic", t, func() {
		Convey("Pure red expands to the primary triad within rounding", func() {
			colors, err := Triadic("FF0000")
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 3)
			So(colors[0], ShouldEqual, "FF0000")
			So(channelsClose(colors[1], "00FF00", 1), ShouldBeTrue)
			So(channelsClose(colors[2], "0000FF", 1), ShouldBeTrue)
		})

		Convey("Hues are pairwise separated by a third of the wheel", func() {
			colors, err := Triadic("4080BF")
			So(err, ShouldBeNil)

			hues := lo.Map(colors, func(hex string, _ int) float64 {
				return lo.Must(color.ToHSV(hex)).H
			})
			So(hueDelta(hues[0], hues[1]), ShouldAlmostEqual, 1.0/3, 0.01)
			So(hueDelta(hues[1], hues[2]), ShouldAlmostEqual, 1.0/3, 0.01)
			So(hueDelta(hues[0], hues[2]), ShouldAlmostEqual, 1.0/3, 0.01)
		})

		Convey("Should fail on a malformed base", func() {
			_, err := Triadic("zz0000")
			So(errors.Is(err, color.ErrInvalidFormat), ShouldBeTrue)
		})
	})
}

func TestSplitComplementary(t *testing.T) {
	Convey("SplitComplementary", t, func() {
		colors, err := SplitComplementary("FF0000")
		So(err, ShouldBeNil)
		So(colors, ShouldHaveLength, 3)
		So(colors[0], ShouldEqual, "FF0000")

		Convey("The two derived hues flank the complement", func() {
			left := lo.Must(color.ToHSV(colors[1]))
			right := lo.Must(color.ToHSV(colors[2]))
			So(left.H, ShouldAlmostEqual, 0.417, 0.01)
			So(right.H, ShouldAlmostEqual, 0.583, 0.01)
		})
	})
}

func TestTetradic(t *testing.T) {
	Convey("Tetradic", t, func() {
		Convey("Pure red maps to exact quarter-wheel stops", func() {
			colors, err := Tetradic("FF0000")
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []string{"FF0000", "80FF00", "00FFFF", "8000FF"})
		})

		Convey("The third element is always the complement", func() {
			colors, err := Tetradic("1E90FF")
			So(err, ShouldBeNil)
			complement := lo.Must(Complementary("1E90FF"))[1]
			So(colors[2], ShouldEqual, complement)
		})
	})
}

func TestAnalogous(t *testing.T) {
	Convey("Analogous", t, func() {
		Convey("Default count of five centers the base", func() {
			colors, err := Analogous("FF0000", DefaultAnalogousCount)
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 5)
			So(colors[2], ShouldEqual, "FF0000")
		})

		Convey("Even counts still return exactly count colors", func() {
			colors, err := Analogous("1E90FF", 4)
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 4)
			So(colors[2], ShouldEqual, "1E90FF")
		})

		Convey("Count of one is just the base", func() {
			colors, err := Analogous("A52A2A", 1)
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []string{"A52A2A"})
		})

		Convey("Neighbors step around the wheel by the analogous increment", func() {
			colors, err := Analogous("00FFFF", 5)
			So(err, ShouldBeNil)
			for i := 1; i < len(colors); i++ {
				prev := lo.Must(color.ToHSV(colors[i-1]))
				next := lo.Must(color.ToHSV(colors[i]))
				So(hueDelta(prev.H, next.H), ShouldAlmostEqual, hueStep, 0.01)
			}
		})

		Convey("Should fail on a malformed base", func() {
			_, err := Analogous("gggggg", 5)
			So(errors.Is(err, color.ErrInvalidFormat), ShouldBeTrue)
		})
	})
}

func TestHexes(t *testing.T) {
	Convey("Hexes", t, func() {
		p := Palette{
			Scheme: "Triadic",
			Colors: []color.Color{{R: 255}, {G: 255}, {B: 255}},
		}
		So(p.Hexes(), ShouldResemble, []string{"FF0000", "00FF00", "0000FF"})
	})
}

func TestOf(t *testing.T) {
	Convey("Of", t, func() {
		Convey("Parses every entry", func() {
			p, err := Of("Complementary", []string{"#ff0000", "00ffff"})
			So(err, ShouldBeNil)
			So(p.Scheme, ShouldEqual, "Complementary")
			So(p.Hexes(), ShouldResemble, []string{"FF0000", "00FFFF"})
		})

		Convey("Fails on the first malformed entry", func() {
			_, err := Of("Broken", []string{"FF0000", "oops"})
			So(errors.Is(err, color.ErrInvalidFormat), ShouldBeTrue)
		})
	})
}

// channelsClose reports whether two hex colors differ by at most tol per RGB channel.
func channelsClose(a, b string, tol int) bool {
	ca := lo.Must(color.Parse(a))
	cb := lo.Must(color.Parse(b))

	near := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -tol && d <= tol
	}
	return near(ca.R, cb.R) && near(ca.G, cb.G) && near(ca.B, cb.B)
}

// hueDelta measures circular distance between two hues in [0,1).
func hueDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}
