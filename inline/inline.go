// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/match"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/scheme"
	"github.com/swatch-cli/swatch/style"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Resolve the candidate colors, either the explicit base or history matches.
	colors, err := resolveColors(options)
	if err != nil {
		return err
	}

	// Step 2: Apply color selection logic if a picker is defined.
	if options.ColorPicker.IsPresent() {
		picker := options.ColorPicker.MustGet()
		if choice := picker(colors); choice != nil {
			colors = []color.Color{*choice}
		} else {
			colors = nil
		}
	}

	if len(colors) == 0 {
		if options.Json {
			return writeJson(options.Out, nil, nil, options)
		}
		return nil // Nothing found
	}

	// Step 3: Derive the requested palettes from the selection.
	palettes, err := derivePalettes(colors, options.Schemes)
	if err != nil {
		return err
	}

	// Step 4: Dispatch the processed results to the configured output writer.
	if options.Json {
		return writeJson(options.Out, colors, palettes, options)
	}

	for _, c := range colors {
		fmt.Fprintf(options.Out, "%s %s\n", style.Bg(c.Lipgloss())("  "), style.Bold(c.Hex()))
	}

	for _, p := range palettes {
		fmt.Fprintf(options.Out, "%s %s\n", style.Faint(p.Scheme), strings.Join(p.Hexes(), " "))
	}

	return nil
}

func resolveColors(options *Options) ([]color.Color, error) {
	if base, ok := options.Base.Get(); ok {
		return []color.Color{base}, nil
	}

	records, err := history.Get()
	if err != nil {
		return nil, err
	}

	hexes := lo.Map(records, func(r history.ColorRecord, _ int) string {
		return r.Hex
	})

	var colors []color.Color
	for _, hex := range match.Search(options.Query, hexes) {
		c, err := color.Parse(hex)
		if err != nil {
			log.Warnf("skipping malformed history entry %q: %v", hex, err)
			continue
		}
		colors = append(colors, c)
	}

	return colors, nil
}

// derivePalettes expands each requested scheme from the selected color.
// Derivation only makes sense for a single base, so a wider selection is rejected.
func derivePalettes(colors []color.Color, schemes []scheme.Scheme) ([]palette.Palette, error) {
	if len(schemes) == 0 {
		return nil, nil
	}

	if len(colors) != 1 {
		return nil, errors.New("scheme derivation requires a single color, narrow the selection with a picker")
	}

	return scheme.Generate(colors[0], schemes...)
}

func writeJson(out io.Writer, colors []color.Color, palettes []palette.Palette, options *Options) error {
	data, err := asJson(colors, palettes, options.Query)
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
