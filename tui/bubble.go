package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/doc"
	"github.com/swatch-cli/swatch/internal/ui"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/provider"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool
	busy          bool
	keymap        *statefulKeymap

	notifier *ui.Model

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	helpC    help.Model

	historyC list.Model
	resultsC list.Model
	schemesC list.Model
	paletteC list.Model
	savedC   list.Model

	searchSuggestion mo.Option[string]

	// async results
	foundColorsChannel     chan []*colorEntry
	derivedPalettesChannel chan []palette.Palette
	savedDocumentsChannel  chan []*doc.Saved
	errorChannel           chan error

	// selection
	selectedColor   color.Color
	selectedSchemes map[*provider.Provider]struct{}
	foundEntries    []*colorEntry
	derivedPalettes []palette.Palette

	favoritesOnly bool
	reversed      bool

	progressStatus string
	lastError      error

	width, height int

	options *Options
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.state = s
}

func (b *statefulBubble) newState(s state) {
	// Transient states have no value for the user when returned to
	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) raiseError(err error) {
	log.Error(err)
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width, b.height = width, height

	listWidth, listHeight := width-x, height-y
	for _, lst := range []*list.Model{&b.historyC, &b.resultsC, &b.schemesC, &b.paletteC, &b.savedC} {
		lst.SetSize(listWidth, listHeight)
	}

	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	b.busy = true

	return tea.Batch(
		b.historyC.StartSpinner(),
		b.resultsC.StartSpinner(),
		b.schemesC.StartSpinner(),
		b.paletteC.StartSpinner(),
		b.savedC.StartSpinner(),
	)
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.busy = false

	b.historyC.StopSpinner()
	b.resultsC.StopSpinner()
	b.schemesC.StopSpinner()
	b.paletteC.StopSpinner()
	b.savedC.StopSpinner()
}

type listOptions struct {
	TitleStyle mo.Option[lipgloss.Style]
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		notifier:      &ui.Model{},

		foundColorsChannel:     make(chan []*colorEntry),
		derivedPalettesChannel: make(chan []palette.Palette),
		savedDocumentsChannel:  make(chan []*doc.Saved),
		errorChannel:           make(chan error),

		selectedSchemes: make(map[*provider.Provider]struct{}),

		favoritesOnly: options.FavoritesOnly,
		reversed:      viper.GetBool(key.TUIReverseColors),

		options: options,
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description

		delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
			Border(lipgloss.ThickBorder(), false, false, false, true).
			Foreground(style.AccentColor).
			BorderForeground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Faint(true)

		listC := list.New(nil, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.ShortHelp()
		}
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return lo.Flatten(bubble.keymap.FullHelp())
		}
		listC.Styles.NoItems = paddingStyle
		listC.Title = title
		if options != nil {
			if titleStyle, ok := options.TitleStyle.Get(); ok {
				listC.Styles.Title = titleStyle
			}
		}
		listC.StatusMessageLifetime = time.Hour * 999 // forever
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	accentTitle := func(background lipgloss.Color) mo.Option[lipgloss.Style] {
		return mo.Some(lipgloss.NewStyle().Foreground(style.Base).Background(background).Padding(0, 1))
	}

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)
	bubble.inputC.Placeholder = fmt.Sprintf("Search color history (%s %s)", constant.Swatch, constant.Version)
	bubble.inputC.CharLimit = 60

	bubble.helpC = help.New()

	showTimestamps := viper.GetBool(key.TUIShowTimestamps)
	bubble.historyC = makeList("Color History", showTimestamps, &listOptions{TitleStyle: accentTitle(style.AccentColor)})
	bubble.resultsC = makeList("Search Results", showTimestamps, &listOptions{TitleStyle: accentTitle(style.SecondaryColor)})
	bubble.schemesC = makeList("Schemes", true, &listOptions{TitleStyle: accentTitle(style.Teal)})
	bubble.paletteC = makeList("Palette", true, &listOptions{TitleStyle: accentTitle(style.Peach)})
	bubble.savedC = makeList("Saved Palettes", true, &listOptions{TitleStyle: accentTitle(style.SuccessColor)})

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
