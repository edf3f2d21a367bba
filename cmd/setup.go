// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/picker"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/theme"
	"github.com/swatch-cli/swatch/where"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupCmd walks through the essential configuration interactively.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the essential configuration interactively",
	Long: `Walk through the theme source, the color picker program and the palettes
directory, then write the configuration file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sourceSelect := survey.Select{
			Message: "Where should the UI theme come from?",
			Options: []string{theme.SourceBuiltin, theme.SourceConfig, theme.SourcePywal},
			Default: viper.GetString(key.ThemeSource),
		}
		var source string
		handleErr(survey.AskOne(&sourceSelect, &source))
		viper.Set(key.ThemeSource, source)

		if source == theme.SourceConfig {
			askColor := func(message, fallback string) string {
				input := survey.Input{Message: message, Default: fallback}
				var response string
				handleErr(survey.AskOne(&input, &response, survey.WithValidator(func(answer any) error {
					s, _ := answer.(string)
					_, err := color.Parse(s)
					return err
				})))

				return response
			}

			viper.Set(key.ThemeBackground, askColor("Background color:", viper.GetString(key.ThemeBackground)))
			viper.Set(key.ThemeAccent, askColor("Accent color:", viper.GetString(key.ThemeAccent)))
		}

		if source == theme.SourcePywal {
			if path, err := theme.WalColorsPath(); err == nil {
				fmt.Println(style.Faint("colors will be read from " + path))
			}
		}

		pickerInput := survey.Input{
			Message: "Which color picker program should swatch run?",
			Default: viper.GetString(key.PickerDefault),
		}
		var pickerBinary string
		handleErr(survey.AskOne(&pickerInput, &pickerBinary))

		if pickerBinary != "" {
			viper.Set(key.PickerDefault, pickerBinary)
			if !picker.Available() {
				fmt.Println(style.Fg(color.Yellow)(pickerBinary + " is not in PATH, install it before running swatch pick"))
			}
		}

		palettesInput := survey.Input{
			Message: "Where should palette documents be saved?",
			Default: viper.GetString(key.PalettesDir),
			Help:    "Leave empty to use the default data directory",
		}
		var palettesDir string
		handleErr(survey.AskOne(&palettesInput, &palettesDir))
		viper.Set(key.PalettesDir, palettesDir)

		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		configFilePath := filepath.Join(where.Config(), fmt.Sprintf("%s.%s", constant.Swatch, "toml"))
		fmt.Printf(
			"%s swatch was set up, config written to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(configFilePath),
		)
	},
}
