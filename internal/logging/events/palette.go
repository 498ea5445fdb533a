package events

import "github.com/atomicstack/calc-prank/internal/logging"

type PaletteTracer struct{}

type paletteReason string

const (
	PaletteReasonEscape paletteReason = "escape"
	PaletteReasonEmpty  paletteReason = "empty"
)

var Palette = PaletteTracer{}

func (PaletteTracer) Open() {
	logging.Trace("palette.open", nil)
}

func (PaletteTracer) Filter(query string, matches int) {
	logging.Trace("palette.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (PaletteTracer) Select(id string) {
	logging.Trace("palette.select", map[string]interface{}{"id": id})
}

func (PaletteTracer) Cancel(reason paletteReason) {
	logging.Trace("palette.cancel", map[string]interface{}{"reason": string(reason)})
}
