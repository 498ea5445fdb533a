package calc

import (
	"fmt"
	"math/rand/v2"
)

const (
	minScale    = 30.0
	scaleSpread = 20.0
	maxTilt     = 15.0
)

// FakePhrases are appended to the history label in place of a result.
var FakePhrases = []string{
	"Calculation error",
	"Undefined result",
	"Mathematical overload",
	"Division by zero detected",
	"Precision exceeded",
	"Complex result",
}

// FakeTokens replace the entry after a surprise.
var FakeTokens = []string{
	"NaN",
	"∞",
	"ERROR",
	"#¡VALOR!",
	"#######",
	"MATH ERR",
}

// Rand is the randomness the controller draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a seeded source, or a randomly seeded one when seed is 0.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Overlay is the visible state of the prank overlay. Scale is in
// viewport-relative units, Rotation in degrees.
type Overlay struct {
	Visible  bool
	Scale    float64
	Rotation float64
}

// Controller produces the fake result shown instead of an evaluation.
type Controller struct {
	rnd Rand
}

// NewController wraps rnd; a nil rnd falls back to a random seed.
func NewController(rnd Rand) *Controller {
	if rnd == nil {
		rnd = NewRand(0)
	}
	return &Controller{rnd: rnd}
}

// Trigger shows the overlay and replaces the display with fake error text.
func (c *Controller) Trigger(s Session) (Session, Overlay) {
	overlay := Overlay{
		Scale:    minScale + c.rnd.Float64()*scaleSpread,
		Rotation: -maxTilt + c.rnd.Float64()*maxTilt*2,
	}
	overlay.Visible = true

	input := valueOf(s.Entry)
	phrase := FakePhrases[c.rnd.IntN(len(FakePhrases))]
	s.History = fmt.Sprintf("%s %s %s = %s",
		FormatNumber(s.PreviousValue), OperatorSymbol(s.Operator), FormatNumber(input), phrase)
	s.Entry = FakeTokens[c.rnd.IntN(len(FakeTokens))]

	s.Operator = ""
	s.AwaitingOperand = true
	return s, overlay
}

// Dismiss hides the overlay and clears the session.
func Dismiss(s Session) (Session, Overlay) {
	return Clear(s), Overlay{}
}

// IsFakeToken reports whether entry is one of FakeTokens.
func IsFakeToken(entry string) bool {
	for _, tok := range FakeTokens {
		if tok == entry {
			return true
		}
	}
	return false
}
