// Package doc renders generated palettes into markdown documents and catalogs the saved ones.
package doc

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/util"
	"github.com/swatch-cli/swatch/where"
	"golang.org/x/exp/slices"
)

//go:embed template.md
var markdownTemplate string

// stampLayout encodes the generation moment into the document filename.
const stampLayout = "20060102_150405"

// Document is a renderable collection of palettes derived from one base color.
type Document struct {
	Name      string
	Base      color.Color
	Palettes  []palette.Palette
	Timestamp time.Time
}

// New assembles a document for the base color with a default display name.
func New(base color.Color, palettes []palette.Palette) Document {
	return Document{
		Name:      fmt.Sprintf("Palette from %s", base.Hex()),
		Base:      base,
		Palettes:  palettes,
		Timestamp: time.Now(),
	}
}

var renderTemplate = lo.Must(template.New("palette").Funcs(template.FuncMap{
	"swatch": swatchImage,
	"swatches": func(colors []color.Color) string {
		return strings.Join(lo.Map(colors, func(c color.Color, _ int) string {
			return swatchImage(c)
		}), "")
	},
	"codes": func(colors []color.Color) string {
		return strings.Join(lo.Map(colors, func(c color.Color, _ int) string {
			return fmt.Sprintf("- `%s`", c.Hex())
		}), "\n")
	},
	"cssVariables":  cssVariables,
	"scssVariables": scssVariables,
}).Parse(markdownTemplate))

// swatchImage renders one markdown image tag using the configured swatch URL template.
func swatchImage(c color.Color) string {
	url := strings.ReplaceAll(viper.GetString(key.PalettesSwatchURL), "{hex}", c.Hex())
	return fmt.Sprintf("![%s](%s)", c.Hex(), url)
}

// cssVariables renders one custom property per color, grouped by scheme.
func cssVariables(palettes []palette.Palette) string {
	var b strings.Builder
	for _, p := range palettes {
		name := styleName(p.Scheme)
		for i, c := range p.Colors {
			fmt.Fprintf(&b, "  --%s-%d: #%s;\n", name, i, c.Hex())
		}
	}
	return b.String()
}

// scssVariables renders one variable per color, grouped by scheme.
func scssVariables(palettes []palette.Palette) string {
	var b strings.Builder
	for _, p := range palettes {
		name := styleName(p.Scheme)
		for i, c := range p.Colors {
			fmt.Fprintf(&b, "$%s-%d: #%s;\n", name, i, c.Hex())
		}
	}
	return b.String()
}

// styleName normalizes a scheme display name into a stylesheet-safe identifier.
func styleName(scheme string) string {
	return strings.ReplaceAll(strings.ToLower(scheme), " ", "-")
}

// Render produces the markdown body of the document.
func Render(d Document) string {
	var b strings.Builder
	lo.Must0(renderTemplate.Execute(&b, d))
	return b.String()
}

// Dir resolves the palette document directory, honoring the palettes.dir setting.
func Dir() string {
	if dir := viper.GetString(key.PalettesDir); dir != "" {
		lo.Must0(filesystem.API().MkdirAll(dir, 0755))
		return dir
	}
	return where.Palettes()
}

// Save writes the rendered document into the palette directory and returns its path.
func Save(d Document) (string, error) {
	filename := fmt.Sprintf("palette_%s_%s.md", d.Base.Hex(), d.Timestamp.Format(stampLayout))
	path := filepath.Join(Dir(), filename)

	if err := filesystem.API().WriteFile(path, []byte(Render(d)), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Saved describes one palette document found on disk.
type Saved struct {
	Name      string
	Base      color.Color
	Timestamp time.Time
	Path      string
}

var savedNameRegex = regexp.MustCompile(`^palette_(?P<hex>[0-9A-Fa-f]{6})_(?P<stamp>\d{8}_\d{6})\.md$`)

// List scans the palette directory and returns its documents, newest first.
// Files that do not look like palette documents are ignored; unreadable ones are
// skipped so a single bad file never hides the rest of the catalog.
func List() ([]Saved, error) {
	dir := Dir()
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var saved []Saved
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		groups := util.ReGroups(savedNameRegex, entry.Name())
		hex, ok := groups["hex"]
		if !ok {
			continue
		}

		base, err := color.Parse(hex)
		if err != nil {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		contents, err := filesystem.API().ReadFile(path)
		if err != nil {
			log.Warnf("skipping unreadable palette %s: %v", path, err)
			continue
		}

		// A stamp that does not parse falls back to the file's modification time.
		timestamp, err := time.ParseInLocation(stampLayout, groups["stamp"], time.Local)
		if err != nil {
			timestamp = entry.ModTime()
		}

		saved = append(saved, Saved{
			Name:      displayName(contents, base),
			Base:      base,
			Timestamp: timestamp,
			Path:      path,
		})
	}

	slices.SortFunc(saved, func(a, b Saved) int {
		switch {
		case a.Timestamp.After(b.Timestamp):
			return -1
		case a.Timestamp.Before(b.Timestamp):
			return 1
		default:
			return 0
		}
	})
	return saved, nil
}

// displayName extracts the document title from its first markdown header.
func displayName(contents []byte, base color.Color) string {
	first, _, _ := strings.Cut(string(contents), "\n")
	if name := strings.TrimLeft(first, "# "); name != "" {
		return name
	}
	return fmt.Sprintf("Palette from %s", base.Hex())
}
