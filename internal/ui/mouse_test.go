package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/calc-prank/internal/calc"
	"github.com/atomicstack/calc-prank/internal/dispatcher"
	tea "github.com/charmbracelet/bubbletea"
)

// cellX returns a column inside the col-th keypad button.
func cellX(col int) int {
	return col*8 + 2
}

func TestClickKeypad(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Click(cellX(1), keypadTop+5) // 5
	h.Click(cellX(4), keypadTop+6) // +
	h.Click(cellX(2), keypadTop+6) // 3

	s := h.Model().calc.Session()
	if s.Entry != "3" || s.History != "5 +" || s.Operator != "+" {
		t.Fatalf("unexpected session after clicks: %+v", s)
	}
}

func TestClickGapDoesNothing(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Click(7, keypadTop+5)
	if got := h.Model().calc.Session().Entry; got != "0" {
		t.Fatalf("expected entry unchanged, got %q", got)
	}
}

func TestClickModeButton(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Click(cellX(1), keypadTop)
	if got := h.Model().calc.Session().AngleMode; got != calc.AngleRad {
		t.Fatalf("expected rad mode, got %q", got)
	}
	if !strings.Contains(h.View(), "● RAD") {
		t.Fatalf("expected active marker on RAD:\n%s", h.View())
	}
}

func TestClickFunctionTriggersOverlay(t *testing.T) {
	player := &fakePlayer{}
	h := newTestHarness(t, player)
	h.Type("9")
	h.Click(cellX(0), keypadTop+1) // sin

	m := h.Model()
	if !m.calc.Overlay().Visible {
		t.Fatalf("expected overlay after sin")
	}
	if player.plays != 1 {
		t.Fatalf("expected cue, got %d plays", player.plays)
	}
}

func TestOverlayClicks(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Type("=")

	g := h.Model().overlayLayout()
	h.Click(g.left+1, g.top+1)
	if !h.Model().calc.Overlay().Visible {
		t.Fatalf("click inside the box should keep the overlay")
	}

	h.Click(g.closeLeft+1, g.closeRow)
	if h.Model().calc.Overlay().Visible {
		t.Fatalf("click on close should dismiss the overlay")
	}

	h.Type("=")
	h.Click(0, 0)
	if h.Model().calc.Overlay().Visible {
		t.Fatalf("click outside the box should dismiss the overlay")
	}
	if got := h.Model().calc.Session().Entry; got != "0" {
		t.Fatalf("expected cleared entry after dismiss, got %q", got)
	}
}

func TestOverlayCloseRowOutsideLabelKeepsOverlay(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Type("=")

	g := h.Model().overlayLayout()
	if g.closeLeft <= g.left+1 {
		t.Fatalf("expected close label inside the box, got closeLeft=%d left=%d", g.closeLeft, g.left)
	}
	for _, x := range []int{g.left, g.left + 1, g.closeLeft - 1, g.closeLeft + g.closeWidth, g.left + g.width - 1} {
		h.Click(x, g.closeRow)
		if !h.Model().calc.Overlay().Visible {
			t.Fatalf("click at column %d beside the close label dismissed the overlay", x)
		}
	}
	h.Click(g.closeLeft+g.closeWidth-1, g.closeRow)
	if h.Model().calc.Overlay().Visible {
		t.Fatalf("click on the last column of the close label should dismiss")
	}
}

func TestClickOnClippedRowsIgnored(t *testing.T) {
	d := dispatcher.New(calc.NewSession(), calc.NewController(calc.NewRand(1)))
	h := NewHarness(NewModel(d, nil, 0, 0, false))
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 10})

	h.Click(cellX(0), 9) // "…" line, where the 1 button would be
	if got := h.Model().calc.Session().Entry; got != "0" {
		t.Fatalf("click on the ellipsis line pressed a hidden button: entry=%q", got)
	}
	h.Click(cellX(1), 8) // last drawn keypad row holds 5
	if got := h.Model().calc.Session().Entry; got != "5" {
		t.Fatalf("expected visible 5 button to work, got %q", got)
	}
}

func TestOverlayViewCentersBox(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Type("=")

	g := h.Model().overlayLayout()
	if g.left <= 0 || g.top <= 0 {
		t.Fatalf("expected centered box, got left=%d top=%d", g.left, g.top)
	}
	lines := viewLines(h)
	if len(lines) != g.top+g.height {
		t.Fatalf("expected %d lines, got %d", g.top+g.height, len(lines))
	}
	if !strings.Contains(lines[g.closeRow], closeLabel) {
		t.Fatalf("expected close label on row %d, got %q", g.closeRow, lines[g.closeRow])
	}
}

func TestGestureLinesFollowTransform(t *testing.T) {
	small := gestureLines(calc.Overlay{Visible: true, Scale: 30})
	large := gestureLines(calc.Overlay{Visible: true, Scale: 49})
	if len(large) <= len(small) {
		t.Fatalf("expected larger scale to add rows: %d vs %d", len(large), len(small))
	}

	right := gestureLines(calc.Overlay{Visible: true, Scale: 30, Rotation: 14})
	if strings.Index(right[len(right)-1], "/") <= strings.Index(right[0], "¯") {
		t.Fatalf("expected positive rotation to shear right: %q", right)
	}
}
