package dispatcher

import "github.com/atomicstack/calc-prank/internal/calc"

var keyOperators = map[string]struct{}{
	"+": {},
	"-": {},
	"*": {},
	"/": {},
	"%": {},
}

// ClassifyKey maps a key name, as reported by the terminal, to an action.
// Escape dismisses the overlay when it is visible and clears otherwise.
func ClassifyKey(key string, overlayVisible bool) (calc.Action, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return calc.Digit(key), true
	}
	if _, ok := keyOperators[key]; ok {
		return calc.Operator(key), true
	}
	switch key {
	case ".":
		return calc.Decimal(), true
	case "enter", "=":
		return calc.Named(calc.ActionEquals), true
	case "esc":
		if overlayVisible {
			return calc.DismissOverlay(), true
		}
		return calc.Named(calc.ActionClear), true
	case "delete":
		return calc.Named(calc.ActionClear), true
	case "backspace":
		return calc.Named(calc.ActionDelete), true
	case "(", ")":
		return calc.Parenthesis(key), true
	}
	return calc.Action{}, false
}
