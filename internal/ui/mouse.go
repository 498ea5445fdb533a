package ui

import (
	"github.com/atomicstack/calc-prank/internal/calc"
	"github.com/atomicstack/calc-prank/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg turns left clicks into keypad presses, or into overlay
// dismissal while the overlay is up.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.calc.Overlay().Visible {
		g := m.overlayLayout()
		if g.contains(ev.X, ev.Y) && !g.onClose(ev.X, ev.Y) {
			return nil
		}
		return m.apply(m.calc.Handle(calc.DismissOverlay()))
	}
	if m.paletteOpen || m.clippedRow(ev.Y) {
		return nil
	}
	button, ok := m.grid.HitTest(m.registry.Rows(), ev.X, ev.Y-keypadTop)
	if !ok {
		return nil
	}
	events.Calc.Button(button.ID, ev.X, ev.Y)
	return m.apply(m.calc.Handle(button.Action))
}

// clippedRow reports whether y is the ellipsis line, or below it, of a
// height-limited calculator view.
func (m *Model) clippedRow(y int) bool {
	if m.height <= 0 || len(m.calculatorLines()) <= m.height {
		return false
	}
	return y >= m.height-1
}
