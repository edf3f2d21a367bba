// Package mini implements a lightweight, prompt-driven interface for browsing colors and deriving palettes.
package mini

import (
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/history"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/util"
)

var pageSize = 10

type Options struct {
	// Base skips history browsing and acts on the given color directly.
	Base mo.Option[color.Color]
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	cachedMatches map[string][]history.ColorRecord

	query           string
	selectedColor   color.Color
	derivedPalettes []palette.Palette
}

func newMini() *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		cachedMatches: make(map[string][]history.ColorRecord),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// Transient states are never returned to.
	if !lo.Contains([]state{colorSearchState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini()
	m.state = historySelectState

	if base, ok := options.Base.Get(); ok {
		m.selectedColor = base
		m.state = actionSelectState
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case historySelectState:
		return m.handleHistorySelectState()
	case colorSearchState:
		return m.handleColorSearchState()
	case resultsSelectState:
		return m.handleResultsSelectState()
	case actionSelectState:
		return m.handleActionSelectState()
	case schemeSelectState:
		return m.handleSchemeSelectState()
	case paletteViewState:
		return m.handlePaletteViewState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
