// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/theme"
)

func init() {
	rootCmd.AddCommand(themeCmd)

	themeCmd.Flags().Bool("css", false, "Emit the resolved theme as a CSS stylesheet")
}

// themeCmd prints the resolved UI theme.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the resolved UI theme",
	Long: `Resolve the UI colors from the configured source (theme.source) and print them.
Available sources: builtin, config, pywal.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("css")) {
			fmt.Print(theme.Stylesheet(theme.DefaultStylesheet))
			return
		}

		t := theme.Load()

		fmt.Println(style.Faint("source: ") + style.Bold(viper.GetString(key.ThemeSource)))

		rows := []struct{ label, value string }{
			{"background", t.Background},
			{"accent", t.Accent},
		}

		for _, row := range rows {
			// ANSI palette names are not previewable, only hex values get a block.
			block := "  "
			if c, err := color.Parse(row.value); err == nil {
				block = style.Bg(c.Lipgloss())("  ")
			}

			fmt.Printf("%s %-10s %s\n", block, row.label, style.Bold(row.value))
		}
	},
}
