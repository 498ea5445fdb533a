package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"0-9", "digits"},
		{"enter", "equals"},
		{"÷", "divide"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	want := []string{
		"  0-9  digits",
		"enter  equals",
		"    ÷  divide",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
