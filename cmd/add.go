// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/style"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

// printSwatch renders a single color line with its name when one is known.
func printSwatch(c color.Color) {
	if name, ok := c.Name(); ok {
		fmt.Printf("%s %s %s\n", style.Bg(c.Lipgloss())("  "), style.Bold(c.Hex()), style.Faint(name))
		return
	}

	fmt.Printf("%s %s\n", style.Bg(c.Lipgloss())("  "), style.Bold(c.Hex()))
}

// addCmd records a color in the history without opening the TUI.
var addCmd = &cobra.Command{
	Use:     "add [hex]",
	Short:   "Add a color to the history",
	Args:    cobra.ExactArgs(1),
	Example: "  swatch add \"#FA8072\"\n  swatch add 2E86AB",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := color.Parse(args[0])
		handleErr(err)

		handleErr(history.Save(c.Hex()))

		printSwatch(c)
	},
}
