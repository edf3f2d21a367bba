// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/picker"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

// pickCmd shells out to the configured external color picker.
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a color on screen with the configured picker",
	Long: `Run the configured external color picker and record the chosen color.
The picker program is set through the picker.default option.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkPicker()

		c, err := picker.Pick(cmd.Context())
		handleErr(err)

		if viper.GetBool(key.HistorySaveOnPick) {
			handleErr(history.Save(c.Hex()))
		}

		printSwatch(c)
	},
}
