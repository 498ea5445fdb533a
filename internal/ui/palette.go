package ui

import (
	"github.com/atomicstack/calc-prank/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const paletteMaxVisible = 8

func newQueryInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = "type a function name"
	ti.CharLimit = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.PalettePrompt != nil {
		ti.PromptStyle = *styles.PalettePrompt
	}
	if styles.Palette != nil {
		ti.TextStyle = *styles.Palette
	}
	if styles.PaletteHint != nil {
		ti.PlaceholderStyle = *styles.PaletteHint
	}
	return ti
}

func (m *Model) openPalette() tea.Cmd {
	m.paletteOpen = true
	m.query.SetValue("")
	m.palette.SetQuery("")
	events.Palette.Open()
	return m.query.Focus()
}

func (m *Model) closePalette() {
	m.paletteOpen = false
	m.query.Blur()
	m.query.SetValue("")
	m.palette.SetQuery("")
}

// handlePaletteMsg consumes key presses while the palette is open. Other
// messages fall through to the regular handlers.
func (m *Model) handlePaletteMsg(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return false, nil
	case key.Matches(keyMsg, m.keys.PaletteCancel):
		m.closePalette()
		events.Palette.Cancel(events.PaletteReasonEscape)
		return true, nil
	case key.Matches(keyMsg, m.keys.PaletteUp):
		m.palette.MoveCursor(-1)
		return true, nil
	case key.Matches(keyMsg, m.keys.PaletteDown):
		m.palette.MoveCursor(1)
		return true, nil
	case key.Matches(keyMsg, m.keys.PaletteSelect):
		button, ok := m.palette.Selected()
		m.closePalette()
		if !ok {
			events.Palette.Cancel(events.PaletteReasonEmpty)
			return true, nil
		}
		events.Palette.Select(button.ID)
		return true, m.apply(m.calc.Handle(button.Action))
	}
	var cmd tea.Cmd
	before := m.query.Value()
	m.query, cmd = m.query.Update(keyMsg)
	if value := m.query.Value(); value != before {
		m.palette.SetQuery(value)
		events.Palette.Filter(value, len(m.palette.Items))
	}
	return true, cmd
}
