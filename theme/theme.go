// Package theme resolves the configured UI color source and injects it into the style palette.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/style"
)

// Supported values for the theme.source setting.
const (
	SourceBuiltin = "builtin"
	SourceConfig  = "config"
	SourcePywal   = "pywal"
)

// Theme is a resolved pair of UI colors.
type Theme struct {
	Background string
	Accent     string
}

// stock preserves the built-in palette before Apply overrides it.
var stock = Theme{
	Background: string(style.Base),
	Accent:     string(style.AccentColor),
}

// DefaultStylesheet mirrors the resolved UI colors as plain CSS for external use.
const DefaultStylesheet = `:root {
  --background: {{background}};
  --accent: {{accent}};
}
`

// walScheme mirrors the fragment of pywal's colors.json that the theme uses.
type walScheme struct {
	Special struct {
		Background string `json:"background"`
	} `json:"special"`
	Colors map[string]string `json:"colors"`
}

// WalColorsPath resolves the location of the pywal color scheme file.
func WalColorsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "wal", "colors.json"), nil
}

// Load resolves the configured color source.
// An unavailable or failing source degrades to the built-in theme with a logged warning.
func Load() Theme {
	switch viper.GetString(key.ThemeSource) {
	case SourcePywal:
		theme, err := loadWal()
		if err != nil {
			log.Warnf("pywal theme unavailable: %v", err)
			return stock
		}
		return theme
	case SourceConfig:
		return Theme{
			Background: viper.GetString(key.ThemeBackground),
			Accent:     viper.GetString(key.ThemeAccent),
		}
	default:
		return stock
	}
}

// loadWal extracts the background and accent colors from pywal's generated scheme.
// Entries missing from the scheme keep their built-in values.
func loadWal() (Theme, error) {
	path, err := WalColorsPath()
	if err != nil {
		return stock, err
	}

	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		return stock, err
	}

	var scheme walScheme
	if err := json.Unmarshal(contents, &scheme); err != nil {
		return stock, fmt.Errorf("parse %s: %w", path, err)
	}

	theme := stock
	if scheme.Special.Background != "" {
		theme.Background = scheme.Special.Background
	}
	if accent := scheme.Colors["color9"]; accent != "" {
		theme.Accent = accent
	}
	return theme, nil
}

// Apply injects the resolved theme into the global style palette.
// ActiveBorderColor is reassigned explicitly since it captured the accent at init.
func Apply() {
	theme := Load()
	style.Base = lipgloss.Color(theme.Background)
	style.AccentColor = lipgloss.Color(theme.Accent)
	style.ActiveBorderColor = style.AccentColor
}

// Stylesheet substitutes the resolved theme into a stylesheet template.
// Recognized tokens are {{background}} and {{accent}}.
func Stylesheet(tpl string) string {
	theme := Load()
	return strings.NewReplacer(
		"{{background}}", theme.Background,
		"{{accent}}", theme.Accent,
	).Replace(tpl)
}
