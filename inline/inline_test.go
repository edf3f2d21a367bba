package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/config"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/scheme"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func builtinScheme(id string) scheme.Scheme {
	s, ok := lo.Find(scheme.Builtins(), func(s scheme.Scheme) bool {
		return s.ID() == id
	})
	if !ok {
		panic("unknown builtin scheme: " + id)
	}
	return s
}

func TestParseColorPicker(t *testing.T) {
	Convey("ParseColorPicker", t, func() {
		colors := []color.Color{
			lo.Must(color.Parse("FF0000")),
			lo.Must(color.Parse("00FF00")),
			lo.Must(color.Parse("0000FF")),
		}

		Convey("first", func() {
			pick := lo.Must(ParseColorPicker("first", ""))
			So(pick(colors).Hex(), ShouldEqual, "FF0000")
			So(pick(nil), ShouldBeNil)
		})

		Convey("last", func() {
			pick := lo.Must(ParseColorPicker("last", ""))
			So(pick(colors).Hex(), ShouldEqual, "0000FF")
		})

		Convey("exact", func() {
			pick := lo.Must(ParseColorPicker("exact", "#00ff00"))
			So(pick(colors).Hex(), ShouldEqual, "00FF00")

			absent := lo.Must(ParseColorPicker("exact", "123456"))
			So(absent(colors), ShouldBeNil)
		})

		Convey("index clamps to the last element", func() {
			pick := lo.Must(ParseColorPicker("99", ""))
			So(pick(colors).Hex(), ShouldEqual, "0000FF")
		})

		Convey("unknown selectors fail", func() {
			_, err := ParseColorPicker("middle", "")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given an explicit base color", t, func() {
		base := lo.Must(color.Parse("FF0000"))

		Convey("Json mode emits the structured document", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:     &buf,
				Base:    mo.Some(base),
				Schemes: []scheme.Scheme{builtinScheme("complementary")},
				Json:    true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Colors, ShouldHaveLength, 1)
			So(output.Colors[0].Hex(), ShouldEqual, "FF0000")
			So(output.Palettes, ShouldHaveLength, 1)
			So(output.Palettes[0].Scheme, ShouldEqual, "Complementary")
			So(output.Palettes[0].Colors[1].Hex(), ShouldEqual, "00FFFF")
		})

		Convey("Plain mode prints the hex", func() {
			var buf bytes.Buffer
			err := Run(&Options{Out: &buf, Base: mo.Some(base)})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "FF0000")
		})
	})

	Convey("Given colors in history", t, func() {
		So(history.Clear(), ShouldBeNil)
		So(history.Save("FF0000"), ShouldBeNil)
		So(history.Save("00FF00"), ShouldBeNil)
		So(history.Save("1E90FF"), ShouldBeNil)

		Convey("The query narrows the result", func() {
			var buf bytes.Buffer
			err := Run(&Options{Out: &buf, Query: "ff00", Json: true})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "ff00")
			So(output.Colors, ShouldHaveLength, 2)
		})

		Convey("A picker reduces matches to one color", func() {
			var buf bytes.Buffer
			pick := lo.Must(ParseColorPicker("first", ""))
			err := Run(&Options{
				Out:         &buf,
				Query:       "ff00",
				ColorPicker: mo.Some(pick),
				Json:        true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Colors, ShouldHaveLength, 1)
		})

		Convey("Deriving schemes over several colors is rejected", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:     &buf,
				Query:   "ff00",
				Schemes: []scheme.Scheme{builtinScheme("triadic")},
			})
			So(err, ShouldNotBeNil)
		})

		Convey("An unmatched query yields an empty document", func() {
			var buf bytes.Buffer
			err := Run(&Options{Out: &buf, Query: "deadbeefcafe", Json: true})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Colors, ShouldHaveLength, 0)
		})
	})
}
