package match

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/color"
)

func TestSearch(t *testing.T) {
	Convey("Search", t, func() {
		Convey("Empty query matches everything", func() {
			candidates := []string{"FF0000", "00FF00", "0000FF"}
			So(Search("", candidates), ShouldResemble, candidates)
			So(Search("   ", candidates), ShouldResemble, candidates)
		})

		Convey("Matches by hex substring, case-insensitively", func() {
			results := Search("ff00", []string{"FF0000", "00FF00", "0000FF"})
			So(results, ShouldResemble, []string{"FF0000", "00FF00"})
		})

		Convey("Matches by color-name alias", func() {
			results := Search("red", []string{"FF0000", "00FF00"})
			So(results, ShouldContain, "FF0000")
			So(results, ShouldNotContain, "00FF00")
		})

		Convey("Name aliases are filtered to the candidate set", func() {
			So(Search("blue", []string{"FF0000"}), ShouldBeEmpty)
		})

		Convey("Alias matching sees through markers and casing", func() {
			results := Search("red", []string{"#ff0000"})
			So(results, ShouldResemble, []string{"#ff0000"})
		})

		Convey("Matches by proximity when the query parses as a color", func() {
			results := Search("008000", []string{"008800", "FFFFFF"})
			So(results, ShouldResemble, []string{"008800"})
		})

		Convey("A query that cannot parse as a color still matches by substring", func() {
			results := Search("abc", []string{"ABC123", "FFFFFF"})
			So(results, ShouldResemble, []string{"ABC123"})
		})

		Convey("Results are always a subset of the candidates", func() {
			candidates := []string{"FF0000", "00FFFF", "808080"}
			for _, query := range []string{"red", "ff", "00ffff", "gray", "nonsense"} {
				for _, hex := range Search(query, candidates) {
					So(candidates, ShouldContain, hex)
				}
			}
		})

		Convey("No candidates means no results, never a crash", func() {
			So(Search("xyz", nil), ShouldBeEmpty)
			So(Search("xyz", []string{}), ShouldBeEmpty)
		})

		Convey("Malformed candidates are skipped, not fatal", func() {
			results := Search("008000", []string{"008800", "zzzzzz"})
			So(results, ShouldResemble, []string{"008800"})
		})
	})
}

func TestFindSimilar(t *testing.T) {
	Convey("FindSimilar", t, func() {
		Convey("Filters by threshold and sorts ascending by distance", func() {
			results, err := FindSimilar("000000", []string{"202020", "101010", "FFFFFF"}, DefaultMaxDistance)
			So(err, ShouldBeNil)
			So(results, ShouldResemble, []string{"101010", "202020"})
		})

		Convey("The target itself is its own closest match", func() {
			results, err := FindSimilar("FF0000", []string{"00FF00", "FF0000", "FF0101"}, DefaultMaxDistance)
			So(err, ShouldBeNil)
			So(results[0], ShouldEqual, "FF0000")
		})

		Convey("Malformed target fails fast", func() {
			_, err := FindSimilar("not-a-color", []string{"FF0000"}, DefaultMaxDistance)
			So(errors.Is(err, color.ErrInvalidFormat), ShouldBeTrue)
		})

		Convey("Malformed candidates are excluded without error", func() {
			results, err := FindSimilar("101010", []string{"zz", "111111"}, DefaultMaxDistance)
			So(err, ShouldBeNil)
			So(results, ShouldResemble, []string{"111111"})
		})

		Convey("A wider threshold admits more candidates", func() {
			narrow, err := FindSimilar("000000", []string{"404040", "808080"}, 0.5)
			So(err, ShouldBeNil)
			wide, err := FindSimilar("000000", []string{"404040", "808080"}, 3)
			So(err, ShouldBeNil)
			So(len(wide), ShouldBeGreaterThan, len(narrow))
		})
	})
}
