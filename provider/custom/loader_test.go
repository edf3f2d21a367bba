package custom

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func writeScript(path, body string) {
	lo.Must0(filesystem.API().WriteFile(path, []byte(body), 0644))
}

func TestLoadScheme(t *testing.T) {
	Convey("Given a valid scheme script", t, func() {
		writeScript("pastel.lua", `
function DeriveScheme(base)
	return {
		base.hex,
		{ h = base.h, s = base.s, v = base.v / 2 },
	}
end
`)

		s, err := LoadScheme("pastel.lua")
		So(err, ShouldBeNil)

		Convey("It is identified by its basename", func() {
			So(s.Name(), ShouldEqual, "pastel")
			So(s.ID(), ShouldEqual, "pastel custom")
		})

		Convey("Derive converts every entry kind", func() {
			base := lo.Must(color.Parse("FF0000"))

			colors, err := s.Derive(base)
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 2)
			So(colors[0].Hex(), ShouldEqual, "FF0000")
			So(colors[1].Hex(), ShouldEqual, "800000")
		})
	})

	Convey("Given a script without the entrypoint", t, func() {
		writeScript("empty.lua", `local unused = 1`)

		_, err := LoadScheme("empty.lua")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "DeriveScheme")
	})

	Convey("Given a script that does not return a table", t, func() {
		writeScript("bad-return.lua", `
function DeriveScheme(base)
	return base.hex
end
`)

		s, err := LoadScheme("bad-return.lua")
		So(err, ShouldBeNil)

		_, err = s.Derive(lo.Must(color.Parse("FF0000")))
		So(err, ShouldNotBeNil)
	})

	Convey("Given a script that raises at runtime", t, func() {
		writeScript("raises.lua", `
function DeriveScheme(base)
	error("boom")
end
`)

		s, err := LoadScheme("raises.lua")
		So(err, ShouldBeNil)

		_, err = s.Derive(lo.Must(color.Parse("FF0000")))
		So(err, ShouldNotBeNil)
	})

	Convey("Invalid entries are skipped while valid ones remain", t, func() {
		writeScript("mixed.lua", `
function DeriveScheme(base)
	return { base.hex, 42, "zz" }
end
`)

		s, err := LoadScheme("mixed.lua")
		So(err, ShouldBeNil)

		colors, err := s.Derive(lo.Must(color.Parse("1E90FF")))
		So(err, ShouldBeNil)
		So(colors, ShouldHaveLength, 1)
		So(colors[0].Hex(), ShouldEqual, "1E90FF")
	})

	Convey("An all-invalid result surfaces the first error", t, func() {
		writeScript("broken.lua", `
function DeriveScheme(base)
	return { "not-a-color" }
end
`)

		s, err := LoadScheme("broken.lua")
		So(err, ShouldBeNil)

		_, err = s.Derive(lo.Must(color.Parse("FF0000")))
		So(errors.Is(err, color.ErrInvalidFormat), ShouldBeTrue)
	})
}
