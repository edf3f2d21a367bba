// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/provider/custom"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("base", "b", "FF0000", "Base hex color used to exercise the scheme")
}

// runCmd facilitates the execution of local Lua scheme scripts for development and debugging.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a local Lua scheme script",
	Long: `Initialize the Lua 5.1 virtual machine to load a scheme script and derive a palette with it.
Useful for scheme development and debugging.`,
	Args:    cobra.ExactArgs(1),
	Example: "  swatch run ./pastel.lua",
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath := args[0]

		base, err := color.Parse(lo.Must(cmd.Flags().GetString("base")))
		handleErr(err)

		s, err := custom.LoadScheme(scriptPath)
		handleErr(err)

		colors, err := s.Derive(base)
		handleErr(err)

		fmt.Printf("%s %s\n", style.Bold(s.Name()), style.Faint(util.Quantify(len(colors), "color", "colors")))
		for _, c := range colors {
			fmt.Printf("%s %s\n", style.Bg(c.Lipgloss())("  "), c.Hex())
		}
	},
}
