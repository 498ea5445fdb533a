package calc

import (
	"fmt"
	"strings"
)

// AngleMode is the trigonometric unit selector. It never feeds a computation.
type AngleMode string

const (
	AngleDeg  AngleMode = "deg"
	AngleRad  AngleMode = "rad"
	AngleGrad AngleMode = "grad"
)

// AngleModes lists the selectable modes in display order.
func AngleModes() []AngleMode {
	return []AngleMode{AngleDeg, AngleRad, AngleGrad}
}

// ParseAngleMode validates a mode name such as "deg" or "GRAD".
func ParseAngleMode(name string) (AngleMode, error) {
	mode := AngleMode(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AngleModes() {
		if mode == known {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown angle mode %q (want deg, rad or grad)", name)
}

// Session is the single display record mutated by every input event.
type Session struct {
	Entry           string
	History         string
	AwaitingOperand bool
	Operator        string
	PreviousValue   float64
	AngleMode       AngleMode
}

// NewSession returns the record as it looks right after start-up.
func NewSession() Session {
	return Session{
		Entry:     "0",
		AngleMode: AngleDeg,
	}
}

// Clear resets everything except the angle mode.
func Clear(s Session) Session {
	s.Entry = "0"
	s.History = ""
	s.Operator = ""
	s.PreviousValue = 0
	s.AwaitingOperand = false
	return s
}
