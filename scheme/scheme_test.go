package scheme

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/key"
)

func TestBuiltins(t *testing.T) {
	Convey("Builtins", t, func() {
		builtins := Builtins()

		Convey("Exposes the five native schemes under stable identifiers", func() {
			ids := lo.Map(builtins, func(s Scheme, _ int) string { return s.ID() })
			So(ids, ShouldResemble, []string{
				"analogous",
				"complementary",
				"triadic",
				"split-complementary",
				"tetradic",
			})
		})

		Convey("Rotating schemes keep the base color first", func() {
			base := lo.Must(color.Parse("1E90FF"))
			for _, s := range builtins[1:] {
				colors, err := s.Derive(base)
				So(err, ShouldBeNil)
				So(colors[0].Hex(), ShouldEqual, "1E90FF")
			}
		})

		Convey("Analogous centers the base color", func() {
			base := lo.Must(color.Parse("1E90FF"))
			colors, err := builtins[0].Derive(base)
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 5)
			So(colors[2].Hex(), ShouldEqual, "1E90FF")
		})

		Convey("Complementary derives the exact opposite", func() {
			base := lo.Must(color.Parse("FF0000"))
			colors, err := builtins[1].Derive(base)
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 2)
			So(colors[1].Hex(), ShouldEqual, "00FFFF")
		})

		Convey("Analogous honors the configured palette size", func() {
			viper.Set(key.GenerationAnalogousCount, 3)
			Reset(func() { viper.Set(key.GenerationAnalogousCount, 5) })

			base := lo.Must(color.Parse("FF0000"))
			colors, err := builtins[0].Derive(base)
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 3)
		})
	})
}

func TestExpand(t *testing.T) {
	Convey("Expand", t, func() {
		base := lo.Must(color.Parse("FF0000"))
		p, err := Expand(Builtins()[4], base)

		So(err, ShouldBeNil)
		So(p.Scheme, ShouldEqual, "Tetradic")
		So(p.Hexes(), ShouldResemble, []string{"FF0000", "80FF00", "00FFFF", "8000FF"})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Generate", t, func() {
		base := lo.Must(color.Parse("FF0000"))

		Convey("Derives one palette per scheme, in order", func() {
			palettes, err := Generate(base, Builtins()...)

			So(err, ShouldBeNil)
			So(palettes, ShouldHaveLength, 5)
			So(palettes[1].Scheme, ShouldEqual, "Complementary")
			So(palettes[1].Hexes(), ShouldResemble, []string{"FF0000", "00FFFF"})
		})

		Convey("No schemes yield no palettes", func() {
			palettes, err := Generate(base)

			So(err, ShouldBeNil)
			So(palettes, ShouldBeEmpty)
		})
	})
}
