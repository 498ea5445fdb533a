package calc

// Kind classifies an input token.
type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindDecimal
	KindParenthesis
	KindNamed
	KindMode
	KindDismiss
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	case KindDecimal:
		return "decimal"
	case KindParenthesis:
		return "parenthesis"
	case KindNamed:
		return "named"
	case KindMode:
		return "mode"
	case KindDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Named action tokens.
const (
	ActionClear  = "clear"
	ActionDelete = "delete"
	ActionEquals = "equals"
	ActionSign   = "sign"
	ActionSin    = "sin"
	ActionCos    = "cos"
	ActionTan    = "tan"
	ActionLog    = "log"
	ActionLn     = "ln"
	ActionPi     = "pi"
	ActionE      = "e"
	ActionSqrt   = "sqrt"
	ActionSquare = "square"
	ActionPow    = "pow"
	ActionTenPow = "tenpow"
	ActionFact   = "fact"
	ActionAbs    = "abs"
)

// surpriseActions are the named tokens wired to the overlay instead of math.
var surpriseActions = map[string]struct{}{
	ActionEquals: {},
	ActionSin:    {},
	ActionCos:    {},
	ActionTan:    {},
	ActionLog:    {},
	ActionLn:     {},
	ActionSqrt:   {},
	ActionSquare: {},
	ActionTenPow: {},
	ActionFact:   {},
	ActionAbs:    {},
}

// Action is a classified input event.
type Action struct {
	Kind  Kind
	Token string
}

// Digit is a single decimal digit key.
func Digit(d string) Action {
	return Action{Kind: KindDigit, Token: d}
}

// Operator carries a raw operator token such as "+" or "*".
func Operator(op string) Action {
	return Action{Kind: KindOperator, Token: op}
}

func Decimal() Action {
	return Action{Kind: KindDecimal, Token: "."}
}

// Parenthesis is "(" or ")".
func Parenthesis(p string) Action {
	return Action{Kind: KindParenthesis, Token: p}
}

// Named wraps one of the Action* tokens.
func Named(name string) Action {
	return Action{Kind: KindNamed, Token: name}
}

// Mode selects an angle mode.
func Mode(mode AngleMode) Action {
	return Action{Kind: KindMode, Token: string(mode)}
}

// DismissOverlay hides the overlay and clears the display.
func DismissOverlay() Action {
	return Action{Kind: KindDismiss}
}

func (a Action) String() string {
	if a.Token == "" {
		return a.Kind.String()
	}
	return a.Kind.String() + ":" + a.Token
}

// IsSurprise reports whether a triggers the overlay.
func IsSurprise(a Action) bool {
	if a.Kind != KindNamed {
		return false
	}
	_, ok := surpriseActions[a.Token]
	return ok
}

// Reduce applies a to s for every action that is not a surprise or a
// dismissal. The boolean is false when a was not handled; s is then returned
// untouched.
func Reduce(s Session, a Action) (Session, bool) {
	switch a.Kind {
	case KindDigit:
		if len(a.Token) != 1 || !isDigit(a.Token[0]) {
			return s, false
		}
		return InputDigit(s, a.Token), true
	case KindOperator:
		if a.Token == "" {
			return s, false
		}
		return InputOperator(s, a.Token), true
	case KindDecimal:
		return InputDecimal(s), true
	case KindParenthesis:
		if a.Token != "(" && a.Token != ")" {
			return s, false
		}
		return InputParenthesis(s, a.Token), true
	case KindMode:
		mode, err := ParseAngleMode(a.Token)
		if err != nil {
			return s, false
		}
		return SetAngleMode(s, mode), true
	case KindNamed:
		return reduceNamed(s, a.Token)
	}
	return s, false
}

func reduceNamed(s Session, name string) (Session, bool) {
	switch name {
	case ActionClear:
		return Clear(s), true
	case ActionDelete:
		return DeleteLast(s), true
	case ActionSign:
		return ToggleSign(s), true
	case ActionPi:
		return InputConstant(s, piEntry), true
	case ActionE:
		return InputConstant(s, eEntry), true
	case ActionPow:
		return InputOperator(s, "^"), true
	}
	return s, false
}
