// Package main is the entry point for the swatch application.
package main

import (
	"github.com/swatch-cli/swatch/cmd"
	"github.com/swatch-cli/swatch/config"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/theme"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// The theme has to land in the style palette before any command renders output.
	theme.Apply()

	cmd.Execute()
}
