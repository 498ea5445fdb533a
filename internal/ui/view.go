package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/calc-prank/internal/calc"
	"github.com/atomicstack/calc-prank/internal/format/table"
	"github.com/atomicstack/calc-prank/internal/keypad"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	keypadTop     = 3 // history, entry, rule
	columnsPerRow = 5
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already styled; skip style wrapping, use ANSI-aware truncation
}

// panelWidth is the width of the calculator body in cells.
func (m *Model) panelWidth() int {
	return m.grid.Width(columnsPerRow)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.calc.Overlay().Visible {
		return m.viewOverlay()
	}
	return m.viewCalculator()
}

func (m *Model) viewCalculator() string {
	lines := m.calculatorLines()
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) calculatorLines() []styledLine {
	session := m.calc.Session()
	width := m.panelWidth()

	lines := make([]styledLine, 0, 24)
	lines = append(lines, styledLine{text: alignRight(fitHistory(session.History, width), width), style: styles.History})
	entryStyle := styles.Entry
	if calc.IsFakeToken(session.Entry) {
		entryStyle = styles.EntryFault
	}
	lines = append(lines, styledLine{text: alignRight(fitTail(session.Entry, width), width), style: entryStyle})
	lines = append(lines, styledLine{text: strings.Repeat("─", width), style: styles.History})

	if m.paletteOpen {
		lines = append(lines, m.paletteLines(width)...)
	} else {
		for _, row := range m.registry.Rows() {
			lines = append(lines, styledLine{text: m.renderKeypadRow(row, session.AngleMode), raw: true})
		}
	}

	if m.showFooter {
		lines = append(lines, styledLine{})
		for _, row := range m.legendLines() {
			lines = append(lines, styledLine{text: row, style: styles.Footer})
		}
	}
	return lines
}

func (m *Model) renderKeypadRow(row []keypad.Button, active calc.AngleMode) string {
	cells := make([]string, len(row))
	for i, b := range row {
		label := b.Label
		style := buttonStyle(b)
		if b.Class == keypad.ClassMode {
			if b.Action.Token == string(active) {
				label = "● " + label
				style = styles.ModeActive
			} else {
				label = "○ " + label
			}
		}
		cell := lipgloss.NewStyle()
		if style != nil {
			cell = *style
		}
		cells[i] = cell.Width(m.grid.CellWidth).Align(lipgloss.Center).Render(label)
	}
	return strings.Join(cells, strings.Repeat(" ", m.grid.Gap))
}

func buttonStyle(b keypad.Button) *lipgloss.Style {
	switch b.Class {
	case keypad.ClassDigit:
		return styles.Digit
	case keypad.ClassOperator:
		return styles.Operator
	case keypad.ClassFunction:
		return styles.Function
	case keypad.ClassMode:
		return styles.Mode
	}
	if b.Action == calc.Named(calc.ActionEquals) {
		return styles.Equals
	}
	return styles.Action
}

func (m *Model) paletteLines(width int) []styledLine {
	lines := []styledLine{{text: m.query.View(), raw: true}}
	if len(m.palette.Items) == 0 {
		msg := fmt.Sprintf("No matches for %q", m.query.Value())
		return append(lines, styledLine{text: msg, style: styles.PaletteEmpty})
	}
	visible := m.palette.Visible(paletteMaxVisible)
	labelWidth := 0
	for _, b := range visible {
		if w := runewidth.StringWidth(b.Label); w > labelWidth {
			labelWidth = w
		}
	}
	for i, b := range visible {
		idx := m.palette.ViewportOffset + i
		marker := "  "
		style := styles.PaletteItem
		if idx == m.palette.Cursor {
			marker = "▌ "
			style = styles.PaletteActive
		}
		text := marker + b.Label + strings.Repeat(" ", labelWidth-runewidth.StringWidth(b.Label)) + "  " + b.Hint
		if pad := width - runewidth.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		lines = append(lines, styledLine{text: text, style: style})
	}
	return lines
}

func (m *Model) legendLines() []string {
	bindings := m.keys.legend()
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		rows = append(rows, []string{help.Key, help.Desc})
	}
	return table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft})
}

// fitTail keeps the end of s visible within width cells.
func fitTail(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	used := 1
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return "…" + string(runes[start:])
}

func fitHistory(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

func alignRight(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = ansi.Truncate(text, width, "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(text, width, "…")
}
