package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/provider"
)

func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{b.loadHistory(), b.loadSchemes()}

	if viper.GetBool(key.SchemesAutoUpdate) {
		cmds = append(cmds, provider.UpdateCustoms())
	}

	return tea.Batch(cmds...)
}
