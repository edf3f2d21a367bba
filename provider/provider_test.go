package provider

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Built-in schemes resolve by id", t, func() {
		p, ok := Get("split-complementary")
		So(ok, ShouldBeTrue)
		So(p.Name, ShouldEqual, "Split Complementary")
		So(p.IsCustom, ShouldBeFalse)
	})

	Convey("Built-in schemes resolve by display name, case-insensitively", t, func() {
		p, ok := Get("tetradic")
		So(ok, ShouldBeTrue)

		byName, ok := Get("TETRADIC")
		So(ok, ShouldBeTrue)
		So(byName.ID, ShouldEqual, p.ID)
	})

	Convey("A resolved provider derives colors", t, func() {
		p, ok := Get("complementary")
		So(ok, ShouldBeTrue)

		s, err := p.CreateScheme()
		So(err, ShouldBeNil)

		colors, err := s.Derive(lo.Must(color.Parse("FF0000")))
		So(err, ShouldBeNil)
		So(colors, ShouldHaveLength, 2)
		So(colors[1].Hex(), ShouldEqual, "00FFFF")
	})
}

func TestCustomProviders(t *testing.T) {
	Convey("Given scripts in the schemes directory", t, func() {
		api := filesystem.API()
		lo.Must0(api.WriteFile(filepath.Join(where.Schemes(), "neon.lua"), []byte(`
function DeriveScheme(base)
	return { base.hex }
end
`), 0644))
		lo.Must0(api.WriteFile(filepath.Join(where.Schemes(), "common.lua"), []byte(`return {}`), 0644))
		lo.Must0(api.WriteFile(filepath.Join(where.Schemes(), "notes.txt"), []byte(`not a scheme`), 0644))

		Convey("Only Lua scripts become providers and helpers are skipped", func() {
			customs := Customs()
			So(customs, ShouldHaveLength, 1)
			So(customs[0].ID, ShouldEqual, "neon custom")
			So(customs[0].Name, ShouldEqual, "neon")
			So(customs[0].IsCustom, ShouldBeTrue)
		})

		Convey("Custom providers are found by Get and load their script", func() {
			p, ok := Get("neon custom")
			So(ok, ShouldBeTrue)

			s, err := p.CreateScheme()
			So(err, ShouldBeNil)

			colors, err := s.Derive(lo.Must(color.Parse("A52A2A")))
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 1)
			So(colors[0].Hex(), ShouldEqual, "A52A2A")
		})

		Convey("List puts built-ins before customs", func() {
			all := List()
			So(len(all), ShouldBeGreaterThanOrEqualTo, 6)
			So(all[0].IsCustom, ShouldBeFalse)
			So(all[len(all)-1].IsCustom, ShouldBeTrue)
		})
	})
}
