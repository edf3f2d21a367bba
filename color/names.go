package color

// Names maps canonical hex strings to human-readable color names.
// Static, process-wide, read-only.
var Names = map[string]string{
	"FF0000": "red",
	"00FF00": "green",
	"0000FF": "blue",
	"FFFF00": "yellow",
	"FF00FF": "magenta",
	"00FFFF": "cyan",
	"000000": "black",
	"FFFFFF": "white",
	"808080": "gray",
	"800000": "maroon",
	"808000": "olive",
	"008000": "dark green",
	"800080": "purple",
	"008080": "teal",
	"000080": "navy",
	"FFA500": "orange",
	"A52A2A": "brown",
	"FFC0CB": "pink",
	"FFD700": "gold",
	"E6E6FA": "lavender",
}
