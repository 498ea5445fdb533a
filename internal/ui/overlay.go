package ui

import (
	"math"
	"strings"

	"github.com/atomicstack/calc-prank/internal/calc"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const closeLabel = "[ close ]"

var gestureArt = []string{
	`¯\_(ツ)_/¯`,
	`    |    `,
	`   / \   `,
}

// overlayGeometry is where the overlay box sits on screen. Mouse handling
// uses the same numbers the view renders with. closeLeft and closeWidth span
// the close label on closeRow.
type overlayGeometry struct {
	lines      []string
	left       int
	top        int
	width      int
	height     int
	closeRow   int
	closeLeft  int
	closeWidth int
	screenW    int
	screenH    int
}

func (g overlayGeometry) contains(x, y int) bool {
	return x >= g.left && x < g.left+g.width && y >= g.top && y < g.top+g.height
}

func (g overlayGeometry) onClose(x, y int) bool {
	return y == g.closeRow && x >= g.closeLeft && x < g.closeLeft+g.closeWidth
}

// gestureLines applies the overlay transform to the gesture art: Scale widens
// the padding around it, Rotation shears it left or right.
func gestureLines(overlay calc.Overlay) []string {
	pad := int((overlay.Scale-30)/5) + 1
	if pad < 1 {
		pad = 1
	}
	shift := int(math.Round(overlay.Rotation / 5))
	n := len(gestureArt)
	maxOffset := absInt(shift) * (n - 1)
	side := strings.Repeat(" ", pad*2)

	lines := make([]string, 0, n+pad)
	for i := 0; i < pad/2; i++ {
		lines = append(lines, "")
	}
	for i, art := range gestureArt {
		offset := i * shift
		if shift < 0 {
			offset = (n - 1 - i) * -shift
		}
		lines = append(lines, side+strings.Repeat(" ", offset)+art+strings.Repeat(" ", maxOffset-offset)+side)
	}
	for i := 0; i < pad/2; i++ {
		lines = append(lines, "")
	}
	return lines
}

func (m *Model) overlayLayout() overlayGeometry {
	session := m.calc.Session()
	overlay := m.calc.Overlay()

	history := session.History
	if maxText := m.width - 6; maxText > 0 {
		history = fitHistory(history, maxText)
	}

	styled := make([]string, 0, 12)
	for _, line := range gestureLines(overlay) {
		styled = append(styled, renderWith(styles.Gesture, line))
	}
	styled = append(styled,
		"",
		renderWith(styles.History, history),
		renderWith(styles.EntryFault, session.Entry),
		"",
		renderWith(styles.OverlayClose, closeLabel),
	)

	box := lipgloss.NewStyle()
	if styles.Overlay != nil {
		box = *styles.Overlay
	}
	rendered := box.Border(lipgloss.RoundedBorder()).Padding(0, 2).Align(lipgloss.Center).Render(strings.Join(styled, "\n"))
	lines := strings.Split(rendered, "\n")

	g := overlayGeometry{lines: lines, width: lipgloss.Width(rendered), height: len(lines)}
	g.screenW, g.screenH = m.width, m.height
	if g.screenW < g.width {
		g.screenW = g.width
	}
	if g.screenH < g.height {
		g.screenH = g.height
	}
	g.left = (g.screenW - g.width) / 2
	g.top = (g.screenH - g.height) / 2
	g.closeRow = g.top + g.height - 2
	g.closeWidth = runewidth.StringWidth(closeLabel)
	if row := g.height - 2; row >= 0 {
		plain := ansi.Strip(lines[row])
		if idx := strings.Index(plain, closeLabel); idx >= 0 {
			g.closeLeft = g.left + runewidth.StringWidth(plain[:idx])
		}
	}
	return g
}

// viewOverlay covers the whole screen with the overlay box.
func (m *Model) viewOverlay() string {
	g := m.overlayLayout()
	out := make([]string, 0, g.screenH)
	for i := 0; i < g.top; i++ {
		out = append(out, "")
	}
	indent := strings.Repeat(" ", g.left)
	for _, line := range g.lines {
		out = append(out, indent+line)
	}
	return strings.Join(out, "\n")
}

func renderWith(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
