package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

type statefulKeymap struct {
	state state

	quit          key.Binding
	forceQuit     key.Binding
	confirm       key.Binding
	back          key.Binding
	up            key.Binding
	down          key.Binding
	left          key.Binding
	right         key.Binding
	goToStart     key.Binding
	goToEnd       key.Binding
	filter        key.Binding
	clearFilter   key.Binding
	cancelFilter  key.Binding
	acceptFilter  key.Binding
	showFullHelp  key.Binding
	closeFullHelp key.Binding

	search           key.Binding
	acceptSuggestion key.Binding
	toggleFavorite   key.Binding
	favoritesOnly    key.Binding
	reverse          key.Binding
	copyHex          key.Binding
	remove           key.Binding
	showSaved        key.Binding
	saveDocument     key.Binding
	openFolder       key.Binding
	selectOne        key.Binding
	selectAll        key.Binding
	clearSelection   key.Binding
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		state: loadingState,
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		goToStart: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "go to start"),
		),
		goToEnd: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "go to end"),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		clearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		cancelFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		acceptFilter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		showFullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		closeFullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "less"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		toggleFavorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		favoritesOnly: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "favorites only"),
		),
		reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		copyHex: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		showSaved: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "saved palettes"),
		),
		saveDocument: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save markdown"),
		),
		openFolder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open folder"),
		),
		selectOne: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select one"),
		),
		selectAll: key.NewBinding(
			key.WithKeys("ctrl+a", "tab", "*"),
			key.WithHelp("tab", "select all"),
		),
		clearSelection: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "clear selection"),
		),
	}
}

// withDescription replaces the help description of a binding.
// Used to make generic bindings more descriptive in certain states.
func withDescription(binding key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(binding.Keys()...),
		key.WithHelp(binding.Help().Key, description),
	)
}

// help returns the short and the full help for the current state.
func (k *statefulKeymap) help() ([]key.Binding, [][]key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(bindings []key.Binding) [][]key.Binding {
		return [][]key.Binding{bindings}
	}

	switch k.state {
	case loadingState:
		s := h(k.back, k.forceQuit)
		return s, to2(s)
	case errorState:
		s := h(k.back, k.quit)
		return s, to2(s)
	case historyState:
		return h(
				withDescription(k.confirm, "schemes"),
				k.toggleFavorite,
				k.copyHex,
				k.search,
			), [][]key.Binding{
				{withDescription(k.confirm, "schemes"), k.toggleFavorite, k.favoritesOnly, k.reverse},
				{k.copyHex, k.remove, k.search, k.showSaved},
				{k.back, k.quit},
			}
	case searchState:
		s := h(
			withDescription(k.confirm, "search"),
			k.acceptSuggestion,
			k.back,
		)
		return s, to2(s)
	case resultsState:
		return h(
				withDescription(k.confirm, "schemes"),
				k.toggleFavorite,
				k.copyHex,
				k.back,
			), [][]key.Binding{
				{withDescription(k.confirm, "schemes"), k.toggleFavorite, k.favoritesOnly, k.reverse},
				{k.copyHex, k.remove, k.back, k.quit},
			}
	case schemesState:
		return h(
				k.selectOne,
				withDescription(k.confirm, "generate"),
				k.back,
			), [][]key.Binding{
				{k.selectOne, k.selectAll, k.clearSelection},
				{withDescription(k.confirm, "generate"), k.back, k.quit},
			}
	case paletteState:
		s := h(
			k.copyHex,
			k.saveDocument,
			k.back,
		)
		return s, to2(s)
	case savedState:
		return h(
				withDescription(k.confirm, "open"),
				k.openFolder,
				k.remove,
				k.back,
			), [][]key.Binding{
				{withDescription(k.confirm, "open"), k.openFolder},
				{k.remove, k.back, k.quit},
			}
	default:
		s := h(k.forceQuit)
		return s, to2(s)
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	s, _ := k.help()
	return s
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, f := k.help()
	return f
}

// forList converts the keymap to the list.KeyMap
func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.goToStart,
		GoToEnd:              k.goToEnd,
		Filter:               k.filter,
		ClearFilter:          k.clearFilter,
		CancelWhileFiltering: k.cancelFilter,
		AcceptWhileFiltering: k.acceptFilter,
		ShowFullHelp:         k.showFullHelp,
		CloseFullHelp:        k.closeFullHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
