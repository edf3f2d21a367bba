// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/inline"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/provider"
	"github.com/swatch-cli/swatch/query"
	"github.com/swatch-cli/swatch/scheme"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to match against the color history")
	inlineCmd.Flags().StringP("pick", "p", "", "Criteria for selecting a single color from the matches")
	inlineCmd.Flags().StringP("base", "b", "", "Hex color to act on directly, skipping the history search")
	inlineCmd.Flags().StringSliceP("schemes", "s", nil, "Schemes to derive from the selected color")
	inlineCmd.Flags().IntP("count", "c", 5, "Number of colors the analogous scheme produces")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	inlineCmd.MarkFlagsMutuallyExclusive("query", "base")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("schemes", completionSchemeNames))
}

// resolveSchemes maps scheme names to ready-to-derive instances.
// The special name "all" expands to every registered provider.
func resolveSchemes(names []string) ([]scheme.Scheme, error) {
	var providers []*provider.Provider

	if lo.Contains(names, "all") {
		providers = provider.List()
	} else {
		for _, name := range names {
			p, ok := provider.Get(name)
			if !ok {
				return nil, fmt.Errorf("unknown scheme: %s", name)
			}

			providers = append(providers, p)
		}
	}

	schemes := make([]scheme.Scheme, 0, len(providers))
	for _, p := range providers {
		s, err := p.CreateScheme()
		if err != nil {
			return nil, err
		}

		schemes = append(schemes, s)
	}

	return schemes, nil
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Color pickers:
  first - first matched color
  last - last matched color
  exact - the color equal to the query
  [number] - select color by index (starting from 0)

Scheme names resolve through the provider registry, the special name "all"
selects every registered scheme.

When the pick flag is omitted, every match is printed.`,

	Example: "https://github.com/swatch-cli/swatch/wiki/Inline-mode",
	Run: func(cmd *cobra.Command, args []string) {
		searchQuery := lo.Must(cmd.Flags().GetString("query"))

		if cmd.Flags().Changed("count") {
			viper.Set(key.GenerationAnalogousCount, lo.Must(cmd.Flags().GetInt("count")))
		}

		base := mo.None[color.Color]()
		if baseFlag := lo.Must(cmd.Flags().GetString("base")); baseFlag != "" {
			c, err := color.Parse(baseFlag)
			handleErr(err)
			base = mo.Some(c)
		}

		picker := mo.None[inline.ColorPicker]()
		if pickFlag := lo.Must(cmd.Flags().GetString("pick")); pickFlag != "" {
			fn, err := inline.ParseColorPicker(pickFlag, searchQuery)
			handleErr(err)
			picker = mo.Some(fn)
		}

		schemes, err := resolveSchemes(lo.Must(cmd.Flags().GetStringSlice("schemes")))
		handleErr(err)

		var writer io.Writer
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		options := &inline.Options{
			Out:         writer,
			Query:       searchQuery,
			Base:        base,
			ColorPicker: picker,
			Schemes:     schemes,
			Json:        lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for structured inline mode output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "color", "palette", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
