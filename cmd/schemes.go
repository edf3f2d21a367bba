// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/util"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/provider"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/where"
)

func init() {
	rootCmd.AddCommand(schemesCmd)
}

// schemesCmd provides a parent command for managing scheme providers.
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "Manage built-in and custom scheme providers",
}

func init() {
	schemesCmd.AddCommand(schemesListCmd)

	schemesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	schemesListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua schemes")
	schemesListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in schemes")

	schemesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	schemesListCmd.SetOut(os.Stdout)
}

// schemesListCmd displays a summary of all registered scheme providers.
var schemesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered scheme providers",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, p := range provider.Builtins() {
				cmd.Println(p.Name)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, p := range provider.Customs() {
				cmd.Println(p.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	schemesCmd.AddCommand(schemesRemoveCmd)

	schemesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom scheme(s) to uninstall")
	lo.Must0(schemesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		schemes, err := filesystem.API().ReadDir(where.Schemes())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(schemes, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, provider.CustomProviderExtension) || name == "common.lua" {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// schemesRemoveCmd facilitates the uninstallation of custom Lua schemes.
var schemesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua schemes from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Schemes(), name+provider.CustomProviderExtension)
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	schemesCmd.AddCommand(schemesInstallCmd)

	schemesInstallCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the community scheme(s) to install")
	lo.Must0(schemesInstallCmd.MarkFlagRequired("name"))
}

// schemesInstallCmd fetches community scheme scripts from the official repository.
var schemesInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install community-contributed scheme scripts",
	Long: `Download the named scheme scripts from the official community repository.
` + provider.RepoRawURL,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			handleErr(provider.Install(ctx, name))
			fmt.Printf("%s successfully installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	schemesCmd.AddCommand(schemesGenCmd)

	schemesGenCmd.Flags().StringP("name", "n", "", "The display name of the new scheme provider")
	schemesGenCmd.Flags().StringP("url", "u", "", "A reference URL describing the color scheme")

	lo.Must0(schemesGenCmd.MarkFlagRequired("name"))
	lo.Must0(schemesGenCmd.MarkFlagRequired("url"))
}

// schemesGenCmd scaffolds a boilerplate Lua scheme script.
var schemesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua scheme script using a predefined template",
	Long:  `Generate a boilerplate Lua scheme script with a derive function and metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name           string
			URL            string
			DeriveSchemeFn string
			Author         string
		}{
			Name:           lo.Must(cmd.Flags().GetString("name")),
			URL:            lo.Must(cmd.Flags().GetString("url")),
			DeriveSchemeFn: constant.DeriveSchemeFn,
			Author:         author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("scheme").Funcs(funcMap).Parse(constant.SchemeTemplate)
		handleErr(err)

		target := filepath.Join(where.Schemes(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}
