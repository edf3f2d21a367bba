// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("base", "b", "", "Act on the given hex color instead of browsing the history")
}

// miniCmd launches the application in a lightweight, minimalist terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, minimalist terminal interface",
	Long:  `Initialize a streamlined, prompt-driven terminal UI for browsing colors and generating palettes.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Base: mo.None[color.Color](),
		}

		if base := lo.Must(cmd.Flags().GetString("base")); base != "" {
			c, err := color.Parse(base)
			handleErr(err)
			options.Base = mo.Some(c)
		}

		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
