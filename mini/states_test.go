package mini

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/swatch-cli/swatch/config"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/key"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func TestEntries(t *testing.T) {
	Convey("Given history with a favorite", t, func() {
		So(history.Clear(), ShouldBeNil)
		So(history.Save("FF0000"), ShouldBeNil)
		So(history.Save("00FF00"), ShouldBeNil)
		So(history.Save("0000FF"), ShouldBeNil)

		favorites := lo.Must(history.LoadFavorites())
		So(favorites.Toggle("00FF00"), ShouldBeNil)

		records := lo.Must(history.Get())

		Convey("Entries are listed newest first", func() {
			items := lo.Must(entries(records))
			So(items, ShouldHaveLength, 3)
			So(items[0].record.Hex, ShouldEqual, "0000FF")
			So(items[2].record.Hex, ShouldEqual, "FF0000")
		})

		Convey("Favorites carry their star", func() {
			items := lo.Must(entries(records))
			So(items[1].fav, ShouldBeTrue)
			So(items[0].fav, ShouldBeFalse)
		})

		Convey("The search limit caps the list", func() {
			viper.Set(key.MiniSearchLimit, 2)
			defer viper.Set(key.MiniSearchLimit, nil)

			items := lo.Must(entries(records))
			So(items, ShouldHaveLength, 2)
		})

		So(favorites.Toggle("00FF00"), ShouldBeNil)
	})
}
