// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/inline"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/match"
	"github.com/swatch-cli/swatch/query"
	"github.com/swatch-cli/swatch/style"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
}

// searchCmd matches the color history against a query.
var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Short:   "Search the color history",
	Args:    cobra.ExactArgs(1),
	Example: "  swatch search fa80\n  swatch search salmon",
	Run: func(cmd *cobra.Command, args []string) {
		searchQuery := args[0]

		// Feed the suggestion ranking even when nothing matches.
		if err := query.Remember(searchQuery, 1); err != nil {
			log.Warnf("remember query: %v", err)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.Run(&inline.Options{Query: searchQuery, Json: true}))
			return
		}

		records, err := history.Get()
		handleErr(err)

		byHex := make(map[string]history.ColorRecord, len(records))
		hexes := make([]string, 0, len(records))
		for _, r := range records {
			byHex[r.Hex] = r
			hexes = append(hexes, r.Hex)
		}

		found := match.Search(searchQuery, hexes)
		if len(found) == 0 {
			fmt.Printf("%s nothing matches %s\n", icon.Get(icon.Search), style.Bold(searchQuery))
			return
		}

		for _, hex := range found {
			record := byHex[hex]

			c, err := record.Color()
			if err != nil {
				log.Warnf("skipping malformed history entry %q: %v", hex, err)
				continue
			}

			line := fmt.Sprintf("%s %s", style.Bg(c.Lipgloss())("  "), style.Bold(c.Hex()))
			if name, ok := c.Name(); ok {
				line += " " + style.Faint(name)
			}
			line += " " + style.Faint(record.Time().Format("2006-01-02 15:04"))

			fmt.Println(line)
		}
	},
}
