package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options defines how the interface starts up.
type Options struct {
	// FavoritesOnly narrows the color history down to favorite colors.
	FavoritesOnly bool

	// SchemeIDs overrides the preselected schemes for palette generation.
	SchemeIDs []string
}

// Run starts the TUI.
func Run(options *Options) error {
	bubble := newBubble(options)
	bubble.newState(historyState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
