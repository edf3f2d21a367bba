// Package mini implements a lightweight, prompt-driven interface for browsing colors and deriving palettes.
package mini

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/swatch-cli/swatch/doc"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/match"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/provider"
	"github.com/swatch-cli/swatch/scheme"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

type state int

const (
	historySelectState state = iota + 1
	colorSearchState
	resultsSelectState
	actionSelectState
	schemeSelectState
	paletteViewState
	quitState
)

// entry adapts a history record for menu display, star included.
type entry struct {
	record history.ColorRecord
	fav    bool
}

func (e entry) String() string {
	star := icon.Get(icon.FavoriteOff)
	if e.fav {
		star = icon.Get(icon.Favorite)
	}
	return fmt.Sprintf("%s %s", star, e.record)
}

// entries annotates records with their favorite state, newest first,
// capped at the configured search limit.
func entries(records []history.ColorRecord) ([]entry, error) {
	favorites, err := history.LoadFavorites()
	if err != nil {
		return nil, err
	}

	annotated := lo.Map(records, func(r history.ColorRecord, _ int) entry {
		return entry{record: r, fav: favorites.Has(r.Hex)}
	})
	annotated = lo.Reverse(annotated)

	limit := util.Min(len(annotated), viper.GetInt(key.MiniSearchLimit))
	return annotated[:limit], nil
}

func (m *mini) handleHistorySelectState() error {
	records, err := history.Get()
	if err != nil {
		return err
	}

	items, err := entries(records)
	if err != nil {
		return err
	}

	title("Color History >>")
	b, e, err := menu(items, search)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case search:
		m.newState(colorSearchState)
		return nil
	}

	m.selectedColor, err = e.record.Color()
	if err != nil {
		return err
	}

	m.newState(actionSelectState)
	return nil
}

func (m *mini) handleColorSearchState() error {
	var searchLoop func() error
	title("Search Colors")

	searchLoop = func() error {
		in, err := getInput(func(s string) bool {
			return s != ""
		})

		if err != nil {
			return err
		}

		query := in.value

		records, err := history.Get()
		if err != nil {
			return err
		}

		hexes := lo.Map(records, func(r history.ColorRecord, _ int) string {
			return r.Hex
		})

		erase := progress("Searching Query..")
		matched := match.Search(query, hexes)
		erase()

		if len(matched) == 0 {
			fail("No matching colors found")
			return searchLoop()
		}

		m.cachedMatches[query] = lo.Filter(records, func(r history.ColorRecord, _ int) bool {
			return lo.Contains(matched, r.Hex)
		})

		m.query = query
		m.newState(resultsSelectState)
		return err
	}

	return searchLoop()
}

func (m *mini) handleResultsSelectState() error {
	items, err := entries(m.cachedMatches[m.query])
	if err != nil {
		return err
	}

	title("Query Results >>")
	b, e, err := menu(items, back)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case back:
		m.previousState()
		return nil
	}

	m.selectedColor, err = e.record.Color()
	if err != nil {
		return err
	}

	m.newState(actionSelectState)
	return nil
}

func (m *mini) handleActionSelectState() error {
	title(fmt.Sprintf("%s %s", style.Bg(m.selectedColor.Lipgloss())("  "), m.selectedColor.Hex()))

	b, _, err := menu([]fmt.Stringer{}, copyHex, favorite, generate, back)
	if err != nil {
		return err
	}

	switch b {
	case copyHex:
		if err := clipboard.WriteAll(m.selectedColor.Hex()); err != nil {
			fail("Clipboard unavailable")
			return nil
		}
		success("Copied to clipboard")
	case favorite:
		favorites, err := history.LoadFavorites()
		if err != nil {
			return err
		}

		if err := favorites.Toggle(m.selectedColor.Hex()); err != nil {
			return err
		}
		success("Toggled favorite")
	case generate:
		m.newState(schemeSelectState)
	case back:
		m.previousState()
	case quit:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleSchemeSelectState() error {
	providers := provider.List()
	names := lo.Map(providers, func(p *provider.Provider, _ int) string {
		return p.Name
	})

	// Preselect the configured default scheme set.
	defaults := lo.FilterMap(viper.GetStringSlice(key.GenerationSchemes), func(id string, _ int) (string, bool) {
		p, ok := provider.Get(id)
		if !ok {
			return "", false
		}
		return p.Name, true
	})

	chosen, err := multiselect("Select schemes", names, defaults)
	if err != nil {
		return err
	}

	if len(chosen) == 0 {
		fail("Nothing selected")
		return nil
	}

	erase := progress("Deriving Palettes..")
	defer erase()

	var palettes []palette.Palette
	for _, name := range chosen {
		p, ok := provider.Get(name)
		if !ok {
			continue
		}

		s, err := p.CreateScheme()
		if err != nil {
			return err
		}

		derived, err := scheme.Expand(s, m.selectedColor)
		if err != nil {
			return err
		}

		palettes = append(palettes, derived)
	}

	m.derivedPalettes = palettes
	m.newState(paletteViewState)
	return nil
}

func (m *mini) handlePaletteViewState() error {
	util.ClearScreen()
	title(fmt.Sprintf("Palettes for %s", m.selectedColor.Hex()))

	for _, p := range m.derivedPalettes {
		fmt.Println(style.Bold(p.Scheme))
		for _, c := range p.Colors {
			fmt.Printf("  %s %s\n", style.Bg(c.Lipgloss())("  "), c.Hex())
		}
	}

	b, _, err := menu([]fmt.Stringer{}, save, back)
	if err != nil {
		return err
	}

	switch b {
	case save:
		path, err := doc.Save(doc.New(m.selectedColor, m.derivedPalettes))
		if err != nil {
			return err
		}
		success("Saved " + path)
	case back:
		m.previousState()
	case quit:
		m.newState(quitState)
	}

	return nil
}
