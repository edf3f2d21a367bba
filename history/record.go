package history

import (
	"fmt"
	"time"

	"github.com/swatch-cli/swatch/color"
)

// ColorRecord represents a single picked color preserved in the user's history.
type ColorRecord struct {
	Hex       string `json:"hex"`
	Timestamp int64  `json:"timestamp"`
}

// Color re-parses the stored value into its domain representation.
func (r ColorRecord) Color() (color.Color, error) {
	return color.Parse(r.Hex)
}

// Time returns the pick moment in local time.
func (r ColorRecord) Time() time.Time {
	return time.Unix(r.Timestamp, 0)
}

func (r ColorRecord) String() string {
	return fmt.Sprintf("%s • %s", r.Hex, r.Time().Format("2006-01-02 15:04"))
}
