package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/style"
)

var (
	// listExtraPaddingStyle compensates for the default list left padding
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	errorStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func (b *statefulBubble) View() string {
	var view string

	switch b.state {
	case loadingState:
		view = b.viewLoading()
	case historyState:
		view = listExtraPaddingStyle.Render(b.historyC.View())
	case searchState:
		view = b.viewSearch()
	case resultsState:
		view = listExtraPaddingStyle.Render(b.resultsC.View())
	case schemesState:
		view = listExtraPaddingStyle.Render(b.schemesC.View())
	case paletteState:
		view = listExtraPaddingStyle.Render(b.paletteC.View())
	case savedState:
		view = listExtraPaddingStyle.Render(b.savedC.View())
	case errorState:
		view = b.viewError()
	}

	return b.notifier.View(view)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(true, []string{
		style.Title("Loading"),
		"",
		fmt.Sprintf("%s %s", b.spinnerC.View(), b.progressStatus),
	})
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Colors"),
		"",
		b.inputC.View(),
	}

	if viper.GetBool(key.SearchShowQuerySuggestions) {
		if suggestion, ok := b.searchSuggestion.Get(); ok {
			lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s", icon.Get(icon.Search), suggestion)))
		}
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorBody := ""
	if b.lastError != nil {
		errorBody = b.lastError.Error()
	}

	wrapped := wrap.String(errorBody, b.width-paddingStyle.GetHorizontalFrameSize())

	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		fmt.Sprintf("%s %s", icon.Get(icon.Fail), errorStyle.Render(wrapped)),
	})
}

// renderLines pads the lines until they fill the terminal height and
// optionally appends the help view at the bottom.
func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	if addHelp {
		padding := b.height - len(lines) - paddingStyle.GetVerticalFrameSize() - 1
		for i := 0; i < padding; i++ {
			lines = append(lines, "")
		}

		lines = append(lines, b.helpC.View(b.keymap))
	}

	return paddingStyle.Render(strings.Join(lines, "\n"))
}
