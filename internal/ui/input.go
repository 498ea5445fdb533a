package ui

import (
	"github.com/atomicstack/calc-prank/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap lists the bindings shown in the legend. Calculator keys are
// classified by the dispatcher; the bindings here only describe them, apart
// from the UI-level ones (palette, legend, quit) which are matched directly.
type keyMap struct {
	Digits    key.Binding
	Operators key.Binding
	Decimal   key.Binding
	Parens    key.Binding
	Equals    key.Binding
	Clear     key.Binding
	Delete    key.Binding
	Palette   key.Binding
	Legend    key.Binding
	Quit      key.Binding

	PaletteUp     key.Binding
	PaletteDown   key.Binding
	PaletteSelect key.Binding
	PaletteCancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits:    key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digits")),
		Operators: key.NewBinding(key.WithKeys("+", "-", "*", "/", "%"), key.WithHelp("+ - * / %", "operators")),
		Decimal:   key.NewBinding(key.WithKeys("."), key.WithHelp(".", "decimal point")),
		Parens:    key.NewBinding(key.WithKeys("(", ")"), key.WithHelp("( )", "parentheses")),
		Equals:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter =", "equals")),
		Clear:     key.NewBinding(key.WithKeys("esc", "delete"), key.WithHelp("esc del", "clear / close")),
		Delete:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete last")),
		Palette:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "functions")),
		Legend:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle keys")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		PaletteUp:     key.NewBinding(key.WithKeys("up", "ctrl+k")),
		PaletteDown:   key.NewBinding(key.WithKeys("down", "ctrl+j")),
		PaletteSelect: key.NewBinding(key.WithKeys("enter")),
		PaletteCancel: key.NewBinding(key.WithKeys("esc")),
	}
}

// legend returns the bindings listed in the footer, in display order.
func (k keyMap) legend() []key.Binding {
	return []key.Binding{k.Digits, k.Operators, k.Decimal, k.Parens, k.Equals, k.Clear, k.Delete, k.Palette, k.Legend, k.Quit}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.App.Quit("ctrl+c")
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Palette):
		if m.calc.Overlay().Visible {
			return nil
		}
		return m.openPalette()
	case key.Matches(keyMsg, m.keys.Legend):
		m.showFooter = !m.showFooter
		return nil
	}
	return m.apply(m.calc.HandleKey(keyMsg.String()))
}
