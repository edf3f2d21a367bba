package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/doc"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/internal/ui"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/provider"
	"github.com/swatch-cli/swatch/query"
	"github.com/swatch-cli/swatch/util"
)

// selectedInternal returns the typed payload of the currently selected list item.
func selectedInternal[T any](l *list.Model) (T, bool) {
	var zero T

	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return zero, false
	}

	internal, ok := item.internal.(T)
	if !ok {
		return zero, false
	}

	return internal, true
}

func onListBack(l *list.Model) {
	l.ResetSelected()
	l.ResetFilter()
	l.NewStatusMessage("")
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case provider.SchemesUpdatedMsg:
		return b, tea.Batch(append(cmds, b.loadSchemes(), ui.Notify("Custom schemes updated"))...)
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, tea.Batch(cmds...)
	case []*colorEntry:
		b.foundEntries = msg
		setCmd := b.resultsC.SetItems(b.resultItems())
		b.resultsC.ResetSelected()
		b.stopLoading()
		b.newState(resultsState)
		return b, tea.Batch(append(cmds, setCmd)...)
	case []palette.Palette:
		b.derivedPalettes = msg
		b.paletteC.Title = "Palette for " + b.selectedColor.Hex()
		setCmd := b.paletteC.SetItems(b.paletteItems())
		b.paletteC.ResetSelected()
		b.stopLoading()
		b.newState(paletteState)
		return b, tea.Batch(append(cmds, setCmd)...)
	case []*doc.Saved:
		items := lo.Map(msg, func(d *doc.Saved, _ int) list.Item {
			return &listItem{internal: d}
		})
		setCmd := b.savedC.SetItems(items)
		b.savedC.ResetSelected()
		b.stopLoading()
		b.newState(savedState)
		return b, tea.Batch(append(cmds, setCmd)...)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		}

		// Key handling waits for whatever the spinner is spinning for
		if b.busy && b.state != errorState {
			return b, tea.Batch(cmds...)
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			switch b.state {
			case searchState:
				// First escape clears the query, second one leaves
				if b.inputC.Value() != "" {
					b.inputC.SetValue("")
					b.searchSuggestion = mo.None[string]()
					return b, tea.Batch(cmds...)
				}
			case historyState:
				if b.historyC.FilterState() != list.Unfiltered {
					var cmd tea.Cmd
					b.historyC, cmd = b.historyC.Update(msg)
					return b, tea.Batch(append(cmds, cmd)...)
				}
				onListBack(&b.historyC)
			case resultsState:
				if b.resultsC.FilterState() != list.Unfiltered {
					var cmd tea.Cmd
					b.resultsC, cmd = b.resultsC.Update(msg)
					return b, tea.Batch(append(cmds, cmd)...)
				}
				onListBack(&b.resultsC)
			case schemesState:
				if b.schemesC.FilterState() != list.Unfiltered {
					var cmd tea.Cmd
					b.schemesC, cmd = b.schemesC.Update(msg)
					return b, tea.Batch(append(cmds, cmd)...)
				}
				onListBack(&b.schemesC)
			case paletteState:
				if b.paletteC.FilterState() != list.Unfiltered {
					var cmd tea.Cmd
					b.paletteC, cmd = b.paletteC.Update(msg)
					return b, tea.Batch(append(cmds, cmd)...)
				}
				onListBack(&b.paletteC)
			case savedState:
				if b.savedC.FilterState() != list.Unfiltered {
					var cmd tea.Cmd
					b.savedC, cmd = b.savedC.Update(msg)
					return b, tea.Batch(append(cmds, cmd)...)
				}
				onListBack(&b.savedC)
			}

			b.previousState()
			b.stopLoading()
			return b, tea.Batch(cmds...)
		}
	}

	bubble, cmd := b.updateState(msg)
	return bubble, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case historyState:
		return b.updateHistory(msg)
	case searchState:
		return b.updateSearch(msg)
	case resultsState:
		return b.updateResults(msg)
	case schemesState:
		return b.updateSchemes(msg)
	case paletteState:
		return b.updatePalette(msg)
	case savedState:
		return b.updateSaved(msg)
	case errorState:
		return b.updateError(msg)
	default:
		return b, nil
	}
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.historyC.Items()); n > 0 && b.historyC.Index() == 0 {
				b.historyC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.historyC.Items()); n > 0 && b.historyC.Index() == n-1 {
				b.historyC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.toggleFavorite):
			return b, b.toggleFavorite(&b.historyC)
		case bubblesKey.Matches(msg, b.keymap.favoritesOnly):
			b.favoritesOnly = !b.favoritesOnly
			notification := lo.Ternary(b.favoritesOnly, "Showing favorites only", "Showing all colors")
			return b, tea.Batch(b.loadHistory(), ui.Notify(notification))
		case bubblesKey.Matches(msg, b.keymap.reverse):
			b.reversed = !b.reversed
			return b, b.loadHistory()
		case bubblesKey.Matches(msg, b.keymap.copyHex):
			if entry, ok := selectedInternal[*colorEntry](&b.historyC); ok {
				return b, b.copyColor(entry.color)
			}
		case bubblesKey.Matches(msg, b.keymap.remove):
			if entry, ok := selectedInternal[*colorEntry](&b.historyC); ok {
				if err := history.Remove(entry.record.Hex); err != nil {
					b.raiseError(err)
					return b, nil
				}

				b.historyC.RemoveItem(b.historyC.Index())
				return b, ui.Notify("Removed " + entry.record.Hex)
			}
		case bubblesKey.Matches(msg, b.keymap.showSaved):
			b.progressStatus = "Scanning saved palettes"
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.loadSaved(), b.waitForSaved(), b.spinnerC.Tick)
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if entry, ok := selectedInternal[*colorEntry](&b.historyC); ok {
				b.selectedColor = entry.color
				b.schemesC.Title = "Schemes for " + entry.color.Hex()
				b.newState(schemesState)
				return b, nil
			}
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && strings.TrimSpace(b.inputC.Value()) != "":
			value := strings.TrimSpace(b.inputC.Value())

			b.progressStatus = "Searching for " + value
			b.newState(loadingState)
			go query.Remember(value, 1)

			return b, tea.Batch(b.startLoading(), b.searchColors(value), b.waitForColors(), b.spinnerC.Tick)
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.SetCursor(len(suggestion))
			}

			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if viper.GetBool(key.SearchShowQuerySuggestions) {
		if value := strings.TrimSpace(b.inputC.Value()); value != "" {
			b.searchSuggestion = query.Suggest(value)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	}

	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.resultsC.Items()); n > 0 && b.resultsC.Index() == 0 {
				b.resultsC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.resultsC.Items()); n > 0 && b.resultsC.Index() == n-1 {
				b.resultsC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.toggleFavorite):
			return b, b.toggleFavorite(&b.resultsC)
		case bubblesKey.Matches(msg, b.keymap.favoritesOnly):
			b.favoritesOnly = !b.favoritesOnly
			notification := lo.Ternary(b.favoritesOnly, "Showing favorites only", "Showing all colors")
			return b, tea.Batch(b.resultsC.SetItems(b.resultItems()), ui.Notify(notification))
		case bubblesKey.Matches(msg, b.keymap.reverse):
			b.reversed = !b.reversed
			b.foundEntries = lo.Reverse(b.foundEntries)
			return b, b.resultsC.SetItems(b.resultItems())
		case bubblesKey.Matches(msg, b.keymap.copyHex):
			if entry, ok := selectedInternal[*colorEntry](&b.resultsC); ok {
				return b, b.copyColor(entry.color)
			}
		case bubblesKey.Matches(msg, b.keymap.remove):
			if entry, ok := selectedInternal[*colorEntry](&b.resultsC); ok {
				if err := history.Remove(entry.record.Hex); err != nil {
					b.raiseError(err)
					return b, nil
				}

				b.foundEntries = lo.Reject(b.foundEntries, func(e *colorEntry, _ int) bool {
					return e.record.Hex == entry.record.Hex
				})
				b.resultsC.RemoveItem(b.resultsC.Index())
				return b, ui.Notify("Removed " + entry.record.Hex)
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if entry, ok := selectedInternal[*colorEntry](&b.resultsC); ok {
				b.selectedColor = entry.color
				b.schemesC.Title = "Schemes for " + entry.color.Hex()
				b.newState(schemesState)
				return b, nil
			}
		}
	}

	b.resultsC, cmd = b.resultsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSchemes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.schemesC.FilterState() == list.Filtering {
			break
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.schemesC.Items()); n > 0 && b.schemesC.Index() == 0 {
				b.schemesC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.schemesC.Items()); n > 0 && b.schemesC.Index() == n-1 {
				b.schemesC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.selectOne):
			if item, ok := b.schemesC.SelectedItem().(*listItem); ok {
				if p, ok := item.internal.(*provider.Provider); ok {
					item.toggleMark()
					if item.marked {
						b.selectedSchemes[p] = struct{}{}
					} else {
						delete(b.selectedSchemes, p)
					}
				}
			}

			return b, nil
		case bubblesKey.Matches(msg, b.keymap.selectAll):
			for _, item := range b.schemesC.Items() {
				it, ok := item.(*listItem)
				if !ok {
					continue
				}

				if p, ok := it.internal.(*provider.Provider); ok && !it.marked {
					it.toggleMark()
					b.selectedSchemes[p] = struct{}{}
				}
			}

			return b, nil
		case bubblesKey.Matches(msg, b.keymap.clearSelection):
			for _, item := range b.schemesC.Items() {
				if it, ok := item.(*listItem); ok && it.marked {
					it.toggleMark()
				}
			}

			b.selectedSchemes = make(map[*provider.Provider]struct{})
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			providers := lo.FilterMap(b.schemesC.Items(), func(item list.Item, _ int) (*provider.Provider, bool) {
				it, ok := item.(*listItem)
				if !ok || !it.marked {
					return nil, false
				}

				p, ok := it.internal.(*provider.Provider)
				return p, ok
			})

			if len(providers) == 0 && viper.GetBool(key.TUIGenerateOnEnter) {
				if p, ok := selectedInternal[*provider.Provider](&b.schemesC); ok {
					providers = []*provider.Provider{p}
				}
			}

			if len(providers) == 0 {
				return b, ui.Notify("Nothing selected")
			}

			b.progressStatus = "Deriving palettes for " + b.selectedColor.Hex()
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.derivePalettes(b.selectedColor, providers), b.waitForPalettes(), b.spinnerC.Tick)
		}
	}

	b.schemesC, cmd = b.schemesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.paletteC.FilterState() == list.Filtering {
			break
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.paletteC.Items()); n > 0 && b.paletteC.Index() == 0 {
				b.paletteC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.paletteC.Items()); n > 0 && b.paletteC.Index() == n-1 {
				b.paletteC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.copyHex):
			if pc, ok := selectedInternal[*paletteColor](&b.paletteC); ok {
				return b, b.copyColor(pc.color)
			}
		case bubblesKey.Matches(msg, b.keymap.saveDocument):
			return b, b.saveDocument()
		}
	}

	b.paletteC, cmd = b.paletteC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSaved(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.savedC.FilterState() == list.Filtering {
			break
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.savedC.Items()); n > 0 && b.savedC.Index() == 0 {
				b.savedC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.savedC.Items()); n > 0 && b.savedC.Index() == n-1 {
				b.savedC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if saved, ok := selectedInternal[*doc.Saved](&b.savedC); ok {
				return b, b.openDocument(saved)
			}
		case bubblesKey.Matches(msg, b.keymap.openFolder):
			return b, b.openSavedFolder()
		case bubblesKey.Matches(msg, b.keymap.remove):
			if saved, ok := selectedInternal[*doc.Saved](&b.savedC); ok {
				if err := util.Delete(saved.Path); err != nil {
					b.raiseError(err)
					return b, nil
				}

				b.savedC.RemoveItem(b.savedC.Index())
				return b, ui.Notify("Deleted " + saved.Name)
			}
		}
	}

	b.savedC, cmd = b.savedC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

// toggleFavorite flips the favorite mark of the selected color and persists it.
func (b *statefulBubble) toggleFavorite(l *list.Model) tea.Cmd {
	entry, ok := selectedInternal[*colorEntry](l)
	if !ok {
		return nil
	}

	favorites, err := history.LoadFavorites()
	if err != nil {
		b.raiseError(err)
		return nil
	}

	if err := favorites.Toggle(entry.record.Hex); err != nil {
		b.raiseError(err)
		return nil
	}

	entry.fav = favorites.Has(entry.record.Hex)
	if b.favoritesOnly && !entry.fav {
		l.RemoveItem(l.Index())
	}

	return ui.Notify(lo.Ternary(entry.fav, "Favorited ", "Unfavorited ") + entry.record.Hex)
}

func (b *statefulBubble) copyColor(c color.Color) tea.Cmd {
	hex := c.Hex()
	if err := clipboard.WriteAll(hex); err != nil {
		log.Warn(err)
		return ui.Notify("Clipboard unavailable")
	}

	return ui.Notify("Copied " + hex)
}

func (b *statefulBubble) resultItems() []list.Item {
	entries := b.foundEntries
	if b.favoritesOnly {
		entries = lo.Filter(entries, func(e *colorEntry, _ int) bool {
			return e.fav
		})
	}

	return lo.Map(entries, func(e *colorEntry, _ int) list.Item {
		return &listItem{internal: e}
	})
}

func (b *statefulBubble) paletteItems() []list.Item {
	items := make([]list.Item, 0)
	for _, p := range b.derivedPalettes {
		for _, c := range p.Colors {
			items = append(items, &listItem{internal: &paletteColor{scheme: p.Scheme, color: c}})
		}
	}

	return items
}
