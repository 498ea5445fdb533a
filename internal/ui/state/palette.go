package state

import (
	"strings"

	"github.com/atomicstack/calc-prank/internal/keypad"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Palette holds the command palette list: the full button set, the
// filtered view, the cursor, and the viewport offset.
type Palette struct {
	Full           []keypad.Button
	Items          []keypad.Button
	Query          string
	Cursor         int
	ViewportOffset int
}

// NewPalette constructs a palette over buttons with an empty query.
func NewPalette(buttons []keypad.Button) *Palette {
	p := &Palette{Full: cloneButtons(buttons)}
	p.SetQuery("")
	return p
}

// SetQuery filters the list and moves the cursor to the best match.
func (p *Palette) SetQuery(query string) {
	p.Query = query
	p.Items = FilterButtons(p.Full, query)
	p.ViewportOffset = 0
	p.Cursor = BestMatchIndex(p.Items, query)
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// MoveCursor moves by delta, clamped to the list.
func (p *Palette) MoveCursor(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	return p.Cursor != old
}

// Selected returns the button under the cursor.
func (p *Palette) Selected() (keypad.Button, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return keypad.Button{}, false
	}
	return p.Items[p.Cursor], true
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Palette) EnsureCursorVisible(maxVisible int) {
	if len(p.Items) == 0 || maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if upper := p.ViewportOffset + maxVisible - 1; p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
	}
	maxOffset := len(p.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
}

// Visible returns the slice of items inside the viewport.
func (p *Palette) Visible(maxVisible int) []keypad.Button {
	p.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(p.Items) <= maxVisible {
		return p.Items
	}
	return p.Items[p.ViewportOffset : p.ViewportOffset+maxVisible]
}

// SearchText is what the query is matched against.
func SearchText(b keypad.Button) string {
	return b.Label + " " + buttonName(b) + " " + b.Hint
}

// buttonName is the ID without its class prefix.
func buttonName(b keypad.Button) string {
	if idx := strings.LastIndex(b.ID, ":"); idx >= 0 {
		return b.ID[idx+1:]
	}
	return b.ID
}

// FilterButtons returns buttons matching query, in layout order.
func FilterButtons(buttons []keypad.Button, query string) []keypad.Button {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneButtons(buttons)
	}
	targets := make([]string, len(buttons))
	for i, b := range buttons {
		targets[i] = SearchText(b)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, targets)
	if len(ranks) == 0 {
		return nil
	}
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	filtered := make([]keypad.Button, 0, len(matches))
	for idx, b := range buttons {
		if _, ok := matches[idx]; ok {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// BestMatchIndex prefers exact label or name matches, then prefixes, then
// the closest fuzzy match.
func BestMatchIndex(items []keypad.Button, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	names := make([]string, len(items))
	for i, b := range items {
		names[i] = strings.ToLower(buttonName(b))
	}
	for i, b := range items {
		if strings.EqualFold(b.Label, trimmed) || names[i] == lower {
			return i
		}
	}
	for i, b := range items {
		if strings.HasPrefix(strings.ToLower(b.Label), lower) || strings.HasPrefix(names[i], lower) {
			return i
		}
	}
	for i, b := range items {
		if strings.HasPrefix(strings.ToLower(b.Hint), lower) {
			return i
		}
	}
	targets := make([]string, len(items))
	for i, b := range items {
		targets[i] = SearchText(b)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, targets)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func cloneButtons(buttons []keypad.Button) []keypad.Button {
	dup := make([]keypad.Button, len(buttons))
	copy(dup, buttons)
	return dup
}
