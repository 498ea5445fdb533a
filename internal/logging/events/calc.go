package events

import "github.com/atomicstack/calc-prank/internal/logging"

type CalcTracer struct{}

type SurpriseTracer struct{}

var (
	Calc     = CalcTracer{}
	Surprise = SurpriseTracer{}
)

func (CalcTracer) Apply(action, entry, history string) {
	logging.Trace("calc.apply", map[string]interface{}{
		"action":  action,
		"entry":   entry,
		"history": history,
	})
}

func (CalcTracer) Ignored(action string) {
	logging.Trace("calc.ignored", map[string]interface{}{"action": action})
}

func (CalcTracer) Button(id string, x, y int) {
	logging.Trace("calc.button", map[string]interface{}{"id": id, "x": x, "y": y})
}

func (SurpriseTracer) Trigger(action, before, entry, history string) {
	logging.Trace("surprise.trigger", map[string]interface{}{
		"action":  action,
		"before":  before,
		"entry":   entry,
		"history": history,
	})
}

func (SurpriseTracer) Dismiss() {
	logging.Trace("surprise.dismiss", nil)
}
