package keypad

import (
	"testing"

	"github.com/atomicstack/calc-prank/internal/calc"
)

func TestRegistryCoversEveryAction(t *testing.T) {
	r := BuildRegistry()
	want := []string{
		"digit:0", "digit:1", "digit:2", "digit:3", "digit:4",
		"digit:5", "digit:6", "digit:7", "digit:8", "digit:9",
		"op:+", "op:-", "op:*", "op:/", "op:%",
		"action:point", "action:open", "action:close",
		"action:clear", "action:delete", "action:sign", "action:equals",
		"action:pi", "action:e", "action:pow",
		"fn:sin", "fn:cos", "fn:tan", "fn:log", "fn:ln",
		"fn:sqrt", "fn:square", "fn:tenpow", "fn:fact", "fn:abs",
		"mode:deg", "mode:rad", "mode:grad",
	}
	for _, id := range want {
		if _, ok := r.Find(id); !ok {
			t.Fatalf("expected button %s", id)
		}
	}
	if got := len(r.Buttons()); got != len(want) {
		t.Fatalf("expected %d buttons, got %d", len(want), got)
	}
}

func TestOperatorLabelsUseDisplaySymbols(t *testing.T) {
	r := BuildRegistry()
	b, _ := r.Find("op:*")
	if b.Label != "×" {
		t.Fatalf("expected × label, got %q", b.Label)
	}
	if b.Action != calc.Operator("*") {
		t.Fatalf("expected raw operator token, got %s", b.Action)
	}
}

func TestGridHitTest(t *testing.T) {
	r := BuildRegistry()
	g := Grid{CellWidth: 7, Gap: 1}
	tests := []struct {
		x, y int
		id   string
		ok   bool
	}{
		{x: 0, y: 0, id: "mode:deg", ok: true},
		{x: 8, y: 0, id: "mode:rad", ok: true},
		{x: 7, y: 0, ok: false},
		{x: 24, y: 0, ok: false},
		{x: 3, y: 1, id: "fn:sin", ok: true},
		{x: 38, y: 7, id: "action:equals", ok: true},
		{x: 0, y: 7, id: "digit:0", ok: true},
		{x: 0, y: 8, ok: false},
		{x: -1, y: 2, ok: false},
	}
	for _, tt := range tests {
		b, ok := g.HitTest(r.Rows(), tt.x, tt.y)
		if ok != tt.ok {
			t.Fatalf("HitTest(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
		}
		if ok && b.ID != tt.id {
			t.Fatalf("HitTest(%d,%d) = %s, want %s", tt.x, tt.y, b.ID, tt.id)
		}
	}
	if w := g.Width(5); w != 39 {
		t.Fatalf("expected row width 39, got %d", w)
	}
}
