package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/doc"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/match"
	"github.com/swatch-cli/swatch/open"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/provider"
	"github.com/swatch-cli/swatch/scheme"
	"github.com/swatch-cli/swatch/util"
)

// annotate pairs history records with their parsed colors and favorite marks,
// ordered the way the lists display them.
func (b *statefulBubble) annotate(records []history.ColorRecord) ([]*colorEntry, error) {
	favorites, err := history.LoadFavorites()
	if err != nil {
		return nil, err
	}

	entries := lo.FilterMap(records, func(r history.ColorRecord, _ int) (*colorEntry, bool) {
		c, err := r.Color()
		if err != nil {
			log.Warnf("skipping malformed history entry %q: %v", r.Hex, err)
			return nil, false
		}

		return &colorEntry{record: r, color: c, fav: favorites.Has(r.Hex)}, true
	})

	// Records are stored oldest first, the lists show the latest pick on top
	if !b.reversed {
		entries = lo.Reverse(entries)
	}

	return entries, nil
}

func (b *statefulBubble) loadHistory() tea.Cmd {
	return func() tea.Msg {
		records, err := history.Get()
		if err != nil {
			return err
		}

		entries, err := b.annotate(records)
		if err != nil {
			return err
		}

		if b.favoritesOnly {
			entries = lo.Filter(entries, func(e *colorEntry, _ int) bool {
				return e.fav
			})
		}

		items := lo.Map(entries, func(e *colorEntry, _ int) list.Item {
			return &listItem{internal: e}
		})

		return b.historyC.SetItems(items)()
	}
}

func (b *statefulBubble) loadSchemes() tea.Cmd {
	return func() tea.Msg {
		providers := provider.List()

		defaults := b.options.SchemeIDs
		if len(defaults) == 0 {
			defaults = viper.GetStringSlice(key.GenerationSchemes)
		}

		b.selectedSchemes = make(map[*provider.Provider]struct{})

		items := make([]list.Item, len(providers))
		for i, p := range providers {
			item := &listItem{internal: p}
			if lo.SomeBy(defaults, func(id string) bool {
				return strings.EqualFold(id, p.ID) || strings.EqualFold(id, p.Name)
			}) {
				item.marked = true
				b.selectedSchemes[p] = struct{}{}
			}
			items[i] = item
		}

		log.Info("loaded " + util.Quantify(len(providers), "scheme", "schemes"))
		return b.schemesC.SetItems(items)()
	}
}

func (b *statefulBubble) searchColors(query string) tea.Cmd {
	return func() tea.Msg {
		log.Info("searching color history for " + query)

		records, err := history.Get()
		if err != nil {
			b.errorChannel <- err
			return nil
		}

		hexes := lo.Map(records, func(r history.ColorRecord, _ int) string {
			return r.Hex
		})

		matched := match.Search(query, hexes)
		found := lo.Filter(records, func(r history.ColorRecord, _ int) bool {
			return lo.Contains(matched, r.Hex)
		})

		entries, err := b.annotate(found)
		if err != nil {
			b.errorChannel <- err
			return nil
		}

		log.Info("found " + util.Quantify(len(entries), "color", "colors"))
		b.foundColorsChannel <- entries
		return nil
	}
}

func (b *statefulBubble) waitForColors() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundColorsChannel:
			return found
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) derivePalettes(base color.Color, providers []*provider.Provider) tea.Cmd {
	return func() tea.Msg {
		log.Info(fmt.Sprintf("deriving %s from %s", util.Quantify(len(providers), "palette", "palettes"), base.Hex()))

		palettes := make([]palette.Palette, 0, len(providers))
		for _, p := range providers {
			s, err := p.CreateScheme()
			if err != nil {
				log.Error(err)
				b.errorChannel <- err
				return nil
			}

			derived, err := scheme.Expand(s, base)
			if err != nil {
				log.Error(err)
				b.errorChannel <- err
				return nil
			}

			palettes = append(palettes, derived)
		}

		b.derivedPalettesChannel <- palettes
		return nil
	}
}

func (b *statefulBubble) waitForPalettes() tea.Cmd {
	return func() tea.Msg {
		select {
		case palettes := <-b.derivedPalettesChannel:
			return palettes
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) loadSaved() tea.Cmd {
	return func() tea.Msg {
		saved, err := doc.List()
		if err != nil {
			b.errorChannel <- err
			return nil
		}

		documents := make([]*doc.Saved, len(saved))
		for i := range saved {
			documents[i] = &saved[i]
		}

		log.Info("found " + util.Quantify(len(documents), "saved palette", "saved palettes"))
		b.savedDocumentsChannel <- documents
		return nil
	}
}

func (b *statefulBubble) waitForSaved() tea.Cmd {
	return func() tea.Msg {
		select {
		case documents := <-b.savedDocumentsChannel:
			return documents
		case err := <-b.errorChannel:
			b.lastError = err
			return err
		}
	}
}

func (b *statefulBubble) saveDocument() tea.Cmd {
	return func() tea.Msg {
		path, err := doc.Save(doc.New(b.selectedColor, b.derivedPalettes))
		if err != nil {
			return err
		}

		log.Info("saved palette document " + path)
		return fmt.Sprintf("Saved %s", path)
	}
}

func (b *statefulBubble) openDocument(document *doc.Saved) tea.Cmd {
	return func() tea.Msg {
		log.Info("opening palette document " + document.Path)
		if err := open.Start(document.Path); err != nil {
			return err
		}

		return nil
	}
}

func (b *statefulBubble) openSavedFolder() tea.Cmd {
	return func() tea.Msg {
		dir := doc.Dir()

		log.Info("opening palette folder " + dir)
		if err := open.Start(dir); err != nil {
			return err
		}

		return nil
	}
}
