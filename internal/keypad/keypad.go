package keypad

import (
	"strings"

	"github.com/atomicstack/calc-prank/internal/calc"
)

// Class groups buttons for styling.
type Class int

const (
	ClassDigit Class = iota
	ClassOperator
	ClassFunction
	ClassAction
	ClassMode
)

// Button is one labeled control on the keypad.
type Button struct {
	ID     string
	Label  string
	Hint   string
	Class  Class
	Action calc.Action
}

func digit(d string) Button {
	return Button{ID: "digit:" + d, Label: d, Hint: "digit " + d, Class: ClassDigit, Action: calc.Digit(d)}
}

func operator(op, hint string) Button {
	return Button{ID: "op:" + op, Label: calc.OperatorSymbol(op), Hint: hint, Class: ClassOperator, Action: calc.Operator(op)}
}

func function(name, label, hint string) Button {
	return Button{ID: "fn:" + name, Label: label, Hint: hint, Class: ClassFunction, Action: calc.Named(name)}
}

func action(name, label, hint string, a calc.Action) Button {
	return Button{ID: "action:" + name, Label: label, Hint: hint, Class: ClassAction, Action: a}
}

func mode(m calc.AngleMode) Button {
	return Button{ID: "mode:" + string(m), Label: strings.ToUpper(string(m)), Hint: "angle mode " + string(m), Class: ClassMode, Action: calc.Mode(m)}
}

// Layout returns the keypad rows, top to bottom. The first row holds the
// angle mode selectors.
func Layout() [][]Button {
	modes := make([]Button, 0, len(calc.AngleModes()))
	for _, m := range calc.AngleModes() {
		modes = append(modes, mode(m))
	}
	return [][]Button{
		modes,
		{
			function(calc.ActionSin, "sin", "sine"),
			function(calc.ActionCos, "cos", "cosine"),
			function(calc.ActionTan, "tan", "tangent"),
			function(calc.ActionLog, "log", "base 10 logarithm"),
			function(calc.ActionLn, "ln", "natural logarithm"),
		},
		{
			function(calc.ActionSqrt, "√", "square root"),
			function(calc.ActionSquare, "x²", "square"),
			action(calc.ActionPow, "x^y", "power", calc.Named(calc.ActionPow)),
			function(calc.ActionTenPow, "10^x", "ten to the power"),
			function(calc.ActionFact, "n!", "factorial"),
		},
		{
			action(calc.ActionClear, "C", "clear", calc.Named(calc.ActionClear)),
			action(calc.ActionDelete, "⌫", "delete last character", calc.Named(calc.ActionDelete)),
			action(calc.ActionSign, "±", "toggle sign", calc.Named(calc.ActionSign)),
			operator("%", "modulo"),
			operator("/", "divide"),
		},
		{
			digit("7"), digit("8"), digit("9"),
			action("open", "(", "open parenthesis", calc.Parenthesis("(")),
			operator("*", "multiply"),
		},
		{
			digit("4"), digit("5"), digit("6"),
			action("close", ")", "close parenthesis", calc.Parenthesis(")")),
			operator("-", "subtract"),
		},
		{
			digit("1"), digit("2"), digit("3"),
			action(calc.ActionPi, "π", "pi", calc.Named(calc.ActionPi)),
			operator("+", "add"),
		},
		{
			digit("0"),
			action("point", ".", "decimal point", calc.Decimal()),
			action(calc.ActionE, "e", "euler's number", calc.Named(calc.ActionE)),
			function(calc.ActionAbs, "|x|", "absolute value"),
			action(calc.ActionEquals, "=", "equals", calc.Named(calc.ActionEquals)),
		},
	}
}
