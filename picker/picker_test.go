package picker

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/swatch-cli/swatch/config"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func TestBinary(t *testing.T) {
	Convey("Defaults to hyprpicker", t, func() {
		viper.Set(key.PickerDefault, nil)
		So(Binary(), ShouldEqual, "hyprpicker")

		Convey("And honors the configured override", func() {
			viper.Set(key.PickerDefault, "gpick")
			defer viper.Set(key.PickerDefault, nil)

			So(Binary(), ShouldEqual, "gpick")
		})
	})
}

func TestParseOutput(t *testing.T) {
	Convey("parseOutput", t, func() {
		Convey("Should accept a plain hex line", func() {
			c, err := parseOutput("hyprpicker", []byte("#1e90ff\n"))
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "1E90FF")
		})

		Convey("Should pick the first valid token among noise", func() {
			c, err := parseOutput("gpick", []byte("picked color: A52A2A (brown)\n"))
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "A52A2A")
		})

		Convey("Should fail when no token parses", func() {
			_, err := parseOutput("zenity", []byte("cancelled\n"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "zenity")
		})

		Convey("Should fail on empty output", func() {
			_, err := parseOutput("hyprpicker", nil)
			So(err, ShouldNotBeNil)
		})
	})
}
