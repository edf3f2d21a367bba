// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/doc"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/scheme"
	"github.com/swatch-cli/swatch/style"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringSliceP("schemes", "s", []string{}, "Schemes to derive from the base color")
	generateCmd.Flags().IntP("count", "c", 5, "Number of colors the analogous scheme produces")
	generateCmd.Flags().BoolP("save", "S", false, "Save the derived palettes as a markdown document")

	lo.Must0(generateCmd.RegisterFlagCompletionFunc("schemes", completionSchemeNames))
}

// generateCmd derives color palettes from a base color.
var generateCmd = &cobra.Command{
	Use:     "generate [hex]",
	Short:   "Derive color palettes from a base color",
	Args:    cobra.ExactArgs(1),
	Example: "  swatch generate \"#FA8072\" --schemes analogous,triadic\n  swatch generate 2E86AB --save",
	Run: func(cmd *cobra.Command, args []string) {
		base, err := color.Parse(args[0])
		handleErr(err)

		if cmd.Flags().Changed("count") {
			viper.Set(key.GenerationAnalogousCount, lo.Must(cmd.Flags().GetInt("count")))
		}

		names := lo.Must(cmd.Flags().GetStringSlice("schemes"))
		if len(names) == 0 {
			names = viper.GetStringSlice(key.GenerationSchemes)
		}

		schemes, err := resolveSchemes(names)
		handleErr(err)

		palettes, err := scheme.Generate(base, schemes...)
		handleErr(err)

		for _, p := range palettes {
			fmt.Println(style.Bold(p.Scheme))
			for _, c := range p.Colors {
				fmt.Printf("%s %s\n", style.Bg(c.Lipgloss())("  "), c.Hex())
			}
			fmt.Println()
		}

		if lo.Must(cmd.Flags().GetBool("save")) {
			path, err := doc.Save(doc.New(base, palettes))
			handleErr(err)

			fmt.Printf("%s saved %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(path))
		}
	},
}
