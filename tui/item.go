package tui

import (
	"fmt"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/doc"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/provider"
	"github.com/swatch-cli/swatch/style"
)

// colorEntry annotates a history record with its parsed color and favorite status.
type colorEntry struct {
	record history.ColorRecord
	color  color.Color
	fav    bool
}

func (e *colorEntry) star() string {
	if e.fav {
		return style.Fg(style.WarningColor)(icon.Get(icon.Favorite))
	}
	return style.Faint(icon.Get(icon.FavoriteOff))
}

func (e *colorEntry) title() string {
	return fmt.Sprintf("%s %s %s", e.star(), swatchBlock(e.color), style.Bold(e.record.Hex))
}

func (e *colorEntry) description() string {
	stamp := e.record.Time().Format("2006-01-02 15:04")
	if name, ok := e.color.Name(); ok {
		return fmt.Sprintf("%s • %s", name, stamp)
	}
	return stamp
}

// paletteColor is a single derived color annotated with the scheme that produced it.
type paletteColor struct {
	scheme string
	color  color.Color
}

// swatchBlock renders an inline preview cell painted with the color.
func swatchBlock(c color.Color) string {
	return style.Bg(c.Lipgloss())("  ")
}

type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) toggleMark() {
	t.marked = !t.marked
}

func (t *listItem) getMark() string {
	if t.marked {
		return style.Fg(style.AccentColor)(style.Bold(icon.Get(icon.Mark)))
	}
	return ""
}

func (t *listItem) Title() string {
	switch item := t.internal.(type) {
	case *colorEntry:
		return item.title()
	case *provider.Provider:
		if t.marked {
			return fmt.Sprintf("%s %s", item.Name, t.getMark())
		}
		return item.Name
	case *paletteColor:
		return fmt.Sprintf("%s %s", swatchBlock(item.color), style.Bold(item.color.Hex()))
	case *doc.Saved:
		return fmt.Sprintf("%s %s", swatchBlock(item.Base), item.Name)
	case string:
		return item
	default:
		return ""
	}
}

func (t *listItem) Description() string {
	switch item := t.internal.(type) {
	case *colorEntry:
		return item.description()
	case *provider.Provider:
		if item.IsCustom {
			return fmt.Sprintf("%s Lua scheme", icon.Get(icon.Lua))
		}
		return "Built-in scheme"
	case *paletteColor:
		return item.scheme
	case *doc.Saved:
		return item.Timestamp.Format("2006-01-02 15:04")
	case string:
		return item
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch item := t.internal.(type) {
	case *colorEntry:
		if name, ok := item.color.Name(); ok {
			return fmt.Sprintf("%s %s", item.record.Hex, name)
		}
		return item.record.Hex
	case *provider.Provider:
		return item.Name
	case *paletteColor:
		return item.color.Hex()
	case *doc.Saved:
		return item.Name
	case string:
		return item
	default:
		return ""
	}
}
