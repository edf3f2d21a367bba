package store

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

type record struct {
	Hex       string `json:"hex"`
	Timestamp int64  `json:"timestamp"`
}

func TestStore(t *testing.T) {
	Convey("Store", t, func() {
		path := filepath.Join("store-test", "records.json")
		lo.Must0(filesystem.API().MkdirAll(filepath.Dir(path), 0755))

		Convey("Load on a missing file reports absence without error", func() {
			var out []record
			ok, err := Load(filepath.Join("store-test", "nothing.json"), &out)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			So(out, ShouldBeEmpty)
		})

		Convey("Save then Load round-trips the document", func() {
			in := []record{{Hex: "FF0000", Timestamp: 1712345678}}
			So(Save(path, in), ShouldBeNil)

			var out []record
			ok, err := Load(path, &out)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(out, ShouldResemble, in)
		})

		Convey("Save leaves no temporary file behind", func() {
			So(Save(path, []record{}), ShouldBeNil)
			exists := lo.Must(filesystem.API().Exists(path + ".tmp"))
			So(exists, ShouldBeFalse)
		})

		Convey("Load surfaces malformed documents", func() {
			broken := filepath.Join("store-test", "broken.json")
			lo.Must0(filesystem.API().WriteFile(broken, []byte("{not json"), 0644))

			var out []record
			_, err := Load(broken, &out)
			So(err, ShouldNotBeNil)
		})
	})
}
