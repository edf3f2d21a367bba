package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Lua Icon = iota + 1
	Fail
	Success
	Progress
	Mark
	Link
	Search
	Favorite
	FavoriteOff
)

// icons maps every Icon to its per-variant visual representations.
var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(=^･ω･^=)",
		squares: "🟦",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(￣ω￣;)",
		squares: "🟨",
	},
	Mark: {
		emoji:   "🖌️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(´｡• ω •｡`)",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "~",
		kaomoji: "( つ•̀ω•́)つ",
		squares: "⬜",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ ) ?",
		squares: "🟫",
	},
	Favorite: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "★",
		kaomoji: "(♥ω♥)",
		squares: "🟧",
	},
	FavoriteOff: {
		emoji:   "✩",
		nerd:    "",
		plain:   "☆",
		kaomoji: "( ･ω･)",
		squares: "⬛",
	},
}
