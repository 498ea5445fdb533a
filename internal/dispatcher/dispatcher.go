package dispatcher

import (
	"github.com/atomicstack/calc-prank/internal/calc"
	"github.com/atomicstack/calc-prank/internal/logging/events"
)

// Result describes what a handled action did.
type Result struct {
	Changed   bool
	Surprised bool
	Dismissed bool
	PlayCue   bool
}

// Dispatcher owns the calculator session and overlay for the lifetime of
// the program and routes every classified input to exactly one mutator.
type Dispatcher struct {
	session  calc.Session
	overlay  calc.Overlay
	surprise *calc.Controller
}

func New(initial calc.Session, surprise *calc.Controller) *Dispatcher {
	if surprise == nil {
		surprise = calc.NewController(nil)
	}
	return &Dispatcher{session: initial, surprise: surprise}
}

func (d *Dispatcher) Session() calc.Session {
	return d.session
}

func (d *Dispatcher) Overlay() calc.Overlay {
	return d.overlay
}

func (d *Dispatcher) Handle(action calc.Action) Result {
	var res Result
	switch {
	case action.Kind == calc.KindDismiss:
		d.session, d.overlay = calc.Dismiss(d.session)
		events.Surprise.Dismiss()
		res.Changed = true
		res.Dismissed = true
	case calc.IsSurprise(action):
		before := d.session
		d.session, d.overlay = d.surprise.Trigger(d.session)
		events.Surprise.Trigger(action.Token, before.Entry, d.session.Entry, d.session.History)
		res.Changed = true
		res.Surprised = true
		res.PlayCue = true
	default:
		next, ok := calc.Reduce(d.session, action)
		if !ok {
			events.Calc.Ignored(action.String())
			return res
		}
		d.session = next
		events.Calc.Apply(action.String(), next.Entry, next.History)
		res.Changed = true
	}
	return res
}

// HandleKey classifies a key and handles it. Unrecognized keys are ignored.
func (d *Dispatcher) HandleKey(key string) Result {
	action, ok := ClassifyKey(key, d.overlay.Visible)
	if !ok {
		return Result{}
	}
	return d.Handle(action)
}
