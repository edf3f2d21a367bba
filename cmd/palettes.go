// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/doc"
	"github.com/swatch-cli/swatch/open"
	"github.com/swatch-cli/swatch/style"
)

func init() {
	rootCmd.AddCommand(palettesCmd)
}

// palettesCmd catalogs the saved palette documents.
var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the saved palette documents",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := doc.List()
		handleErr(err)

		if len(saved) == 0 {
			fmt.Println("No saved palettes yet. Save one from the TUI or with generate --save.")
			return
		}

		for _, s := range saved {
			fmt.Printf("%s %s %s\n",
				style.Bg(s.Base.Lipgloss())("  "),
				style.Bold(s.Name),
				style.Faint(s.Timestamp.Format("2006-01-02 15:04")),
			)
		}
	},
}

func init() {
	palettesCmd.AddCommand(palettesOpenCmd)
}

// palettesOpenCmd opens the saved palettes folder with the system handler.
var palettesOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the saved palettes folder",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(open.Start(doc.Dir()))
	},
}
