package color

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should accept canonical hex", func() {
			c, err := Parse("FF0000")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, Color{R: 255, G: 0, B: 0})
		})

		Convey("Should strip an optional leading marker", func() {
			c, err := Parse("#00FF00")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, Color{R: 0, G: 255, B: 0})
		})

		Convey("Should accept lowercase digits", func() {
			c, err := Parse("a52a2a")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "A52A2A")
		})

		Convey("Should tolerate surrounding whitespace", func() {
			c, err := Parse("  0000FF\n")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "0000FF")
		})

		Convey("Should fail on non-hex characters", func() {
			_, err := Parse("zz0000")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrInvalidFormat), ShouldBeTrue)
		})

		Convey("Should fail on wrong length", func() {
			for _, input := range []string{"", "#", "F00", "FF00", "FF00000", "#FF000"} {
				_, err := Parse(input)
				So(errors.Is(err, ErrInvalidFormat), ShouldBeTrue)
			}
		})
	})
}

func TestHex(t *testing.T) {
	Convey("Hex", t, func() {
		Convey("Should emit uppercase without a marker", func() {
			c, err := Parse("#ff00ff")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "FF00FF")
			So(c.String(), ShouldEqual, "FF00FF")
		})

		Convey("Should pad channels to two digits", func() {
			So(Color{R: 0, G: 1, B: 15}.Hex(), ShouldEqual, "00010F")
		})
	})
}

func TestLipgloss(t *testing.T) {
	Convey("Lipgloss", t, func() {
		c := Color{R: 255, G: 0, B: 0}
		So(string(c.Lipgloss()), ShouldEqual, "#FF0000")
	})
}

func TestJSON(t *testing.T) {
	Convey("JSON", t, func() {
		Convey("Marshals to the canonical hex string", func() {
			contents, err := json.Marshal(Color{R: 255, G: 0, B: 0})
			So(err, ShouldBeNil)
			So(string(contents), ShouldEqual, `"FF0000"`)
		})

		Convey("Unmarshals any accepted input form", func() {
			var c Color
			So(json.Unmarshal([]byte(`"#1e90ff"`), &c), ShouldBeNil)
			So(c.Hex(), ShouldEqual, "1E90FF")
		})

		Convey("Rejects malformed values", func() {
			var c Color
			err := json.Unmarshal([]byte(`"nope"`), &c)
			So(errors.Is(err, ErrInvalidFormat), ShouldBeTrue)
		})
	})
}

func TestNames(t *testing.T) {
	Convey("Names", t, func() {
		Convey("Should know the basic palette", func() {
			name, ok := Color{R: 255, G: 0, B: 0}.Name()
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "red")
		})

		Convey("Should not invent names", func() {
			name, ok := Color{R: 1, G: 2, B: 3}.Name()
			So(ok, ShouldBeFalse)
			So(name, ShouldBeEmpty)
		})
	})
}

func TestDistance(t *testing.T) {
	Convey("Distance", t, func() {
		black := Color{}
		white := Color{R: 255, G: 255, B: 255}
		red := Color{R: 255}
		green := Color{G: 255}

		Convey("Should be zero on identity", func() {
			So(Distance(red, red), ShouldAlmostEqual, 0)
		})

		Convey("Should be symmetric", func() {
			So(Distance(red, green), ShouldAlmostEqual, Distance(green, red))
		})

		Convey("Should weight channels 2/4/3", func() {
			So(Distance(black, white), ShouldAlmostEqual, 3)
			So(Distance(red, green), ShouldAlmostEqual, 2.449489742783178, 1e-9)
		})
	})
}
