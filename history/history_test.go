package history

import (
	"errors"
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

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		lo.Must0(Clear())

		Convey("Saving a color records its canonical form", func() {
			So(Save("#ff0000"), ShouldBeNil)

			records := lo.Must(Get())
			So(records, ShouldHaveLength, 1)
			So(records[0].Hex, ShouldEqual, "FF0000")
			So(records[0].Timestamp, ShouldBeGreaterThan, 0)
		})

		Convey("Re-saving the same color is a no-op", func() {
			So(Save("FF0000"), ShouldBeNil)
			So(Save("#ff0000"), ShouldBeNil)
			So(Save("  FF0000  "), ShouldBeNil)

			So(lo.Must(Get()), ShouldHaveLength, 1)
		})

		Convey("Saving a malformed color fails", func() {
			err := Save("not-a-color")
			So(errors.Is(err, color.ErrInvalidFormat), ShouldBeTrue)
			So(lo.Must(Get()), ShouldBeEmpty)
		})

		Convey("Removing a color deletes only that record", func() {
			So(Save("FF0000"), ShouldBeNil)
			So(Save("00FF00"), ShouldBeNil)

			So(Remove("#ff0000"), ShouldBeNil)

			records := lo.Must(Get())
			So(records, ShouldHaveLength, 1)
			So(records[0].Hex, ShouldEqual, "00FF00")
		})

		Convey("Records preserve pick order", func() {
			So(Save("111111"), ShouldBeNil)
			So(Save("222222"), ShouldBeNil)
			So(Save("333333"), ShouldBeNil)

			hexes := lo.Map(lo.Must(Get()), func(r ColorRecord, _ int) string { return r.Hex })
			So(hexes, ShouldResemble, []string{"111111", "222222", "333333"})
		})
	})
}

func TestFavorites(t *testing.T) {
	Convey("Given an empty favorites registry", t, func() {
		_ = filesystem.API().Remove(where.Favorites())

		Convey("Toggle adds, then removes", func() {
			favorites := lo.Must(LoadFavorites())

			So(favorites.Toggle("#ff0000"), ShouldBeNil)
			So(favorites.Has("FF0000"), ShouldBeTrue)
			So(favorites.List(), ShouldResemble, []string{"FF0000"})

			So(favorites.Toggle("FF0000"), ShouldBeNil)
			So(favorites.Has("FF0000"), ShouldBeFalse)
			So(favorites.List(), ShouldBeEmpty)
		})

		Convey("Toggles persist across loads", func() {
			favorites := lo.Must(LoadFavorites())
			So(favorites.Toggle("1E90FF"), ShouldBeNil)

			reloaded := lo.Must(LoadFavorites())
			So(reloaded.Has("1E90FF"), ShouldBeTrue)
		})

		Convey("Has sees through casing", func() {
			favorites := lo.Must(LoadFavorites())
			So(favorites.Toggle("A52A2A"), ShouldBeNil)
			So(favorites.Has("a52a2a"), ShouldBeTrue)
		})
	})
}
