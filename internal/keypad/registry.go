package keypad

// Registry indexes the keypad buttons by ID.
type Registry struct {
	rows  [][]Button
	order []Button
	byID  map[string]Button
}

// BuildRegistry constructs the registry from Layout.
func BuildRegistry() *Registry {
	rows := Layout()
	r := &Registry{rows: rows, byID: make(map[string]Button)}
	for _, row := range rows {
		for _, b := range row {
			r.order = append(r.order, b)
			r.byID[b.ID] = b
		}
	}
	return r
}

// Rows returns the layout rows.
func (r *Registry) Rows() [][]Button {
	return r.rows
}

// Buttons returns every button in layout order.
func (r *Registry) Buttons() []Button {
	dup := make([]Button, len(r.order))
	copy(dup, r.order)
	return dup
}

// Find locates a button by ID.
func (r *Registry) Find(id string) (Button, bool) {
	b, ok := r.byID[id]
	return b, ok
}

// Grid describes how the rows are laid out in terminal cells. Every button
// occupies one row and CellWidth columns, separated by Gap columns.
type Grid struct {
	CellWidth int
	Gap       int
}

// DefaultGrid is the grid the UI renders with.
var DefaultGrid = Grid{CellWidth: 7, Gap: 1}

// Width returns the width of a row holding n buttons.
func (g Grid) Width(n int) int {
	if n <= 0 {
		return 0
	}
	return n*g.CellWidth + (n-1)*g.Gap
}

// HitTest resolves keypad-local coordinates to a button. Clicks on the gap
// between buttons hit nothing.
func (g Grid) HitTest(rows [][]Button, x, y int) (Button, bool) {
	if x < 0 || y < 0 || y >= len(rows) || g.CellWidth <= 0 {
		return Button{}, false
	}
	stride := g.CellWidth + g.Gap
	col := x / stride
	if x%stride >= g.CellWidth {
		return Button{}, false
	}
	row := rows[y]
	if col >= len(row) {
		return Button{}, false
	}
	return row[col], true
}
