// Package picker integrates external color picker programs.
package picker

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/viper"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/key"
)

// Binary returns the configured picker program name.
func Binary() string {
	return viper.GetString(key.PickerDefault)
}

// Available reports whether the configured picker is present in PATH.
func Available() bool {
	_, err := exec.LookPath(Binary())
	return err == nil
}

// Pick runs the configured picker, waits for the user to choose a color
// and parses the program's stdout. The picker blocks until the user picks
// or dismisses, so the context carries no default timeout.
func Pick(ctx context.Context) (color.Color, error) {
	binary := Binary()

	out, err := exec.CommandContext(ctx, binary).Output()
	if err != nil {
		return color.Color{}, fmt.Errorf("%s: %w", binary, err)
	}

	return parseOutput(binary, out)
}

// parseOutput extracts the first hex-looking token from picker stdout.
// Pickers disagree on formatting ("#RRGGBB", "RRGGBB", trailing newlines),
// so every whitespace-separated token is tried in order.
func parseOutput(binary string, out []byte) (color.Color, error) {
	for _, token := range strings.Fields(string(out)) {
		c, err := color.Parse(token)
		if err == nil {
			return c, nil
		}
	}

	return color.Color{}, fmt.Errorf("%s printed no color: %q", binary, strings.TrimSpace(string(out)))
}
