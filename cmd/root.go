// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/provider"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/tui"
	"github.com/swatch-cli/swatch/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist picked colors to the color history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPick, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.Flags().StringSliceP("schemes", "s", []string{}, "Preselect the schemes used for palette generation")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("schemes", completionSchemeNames))

	rootCmd.Flags().BoolP("favorites", "f", false, "Show favorite colors only")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// completionSchemeNames suggests every known scheme provider, builtin and custom.
func completionSchemeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var schemes []string

	for _, p := range provider.Builtins() {
		schemes = append(schemes, p.ID)
	}

	for _, p := range provider.Customs() {
		schemes = append(schemes, p.ID)
	}

	return schemes, cobra.ShellCompDirectiveDefault
}

// rootCmd defines the entry point for the swatch application.
var rootCmd = &cobra.Command{
	Use:   constant.Swatch,
	Short: "A personal color swatch manager for the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Purple).Render("    - A personal color swatch manager for the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			FavoritesOnly: lo.Must(cmd.Flags().GetBool("favorites")),
			SchemeIDs:     lo.Must(cmd.Flags().GetStringSlice("schemes")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
