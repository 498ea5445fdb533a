package calc

import (
	"math"
	"strings"
)

const (
	piEntry = "3.141592653589793"
	eEntry  = "2.718281828459045"
)

var operatorSymbols = map[string]string{
	"+": "+",
	"-": "−",
	"*": "×",
	"/": "÷",
	"%": "%",
}

// OperatorSymbol maps a raw operator token to its display glyph. Unknown
// tokens, "^" and the empty token are returned unchanged.
func OperatorSymbol(op string) string {
	if sym, ok := operatorSymbols[op]; ok {
		return sym
	}
	return op
}

// InputDigit appends a digit, replacing a lone "0" or a finished entry.
func InputDigit(s Session, digit string) Session {
	switch {
	case s.AwaitingOperand:
		s.Entry = digit
		s.AwaitingOperand = false
	case s.Entry == "0":
		s.Entry = digit
	default:
		s.Entry += digit
	}
	return s
}

// InputOperator records op as the pending operator. A pending operator is
// overwritten; nothing is ever evaluated.
func InputOperator(s Session, op string) Session {
	s.PreviousValue = valueOf(s.Entry)
	s.Operator = op
	s.AwaitingOperand = true
	s.History = FormatNumber(s.PreviousValue) + " " + OperatorSymbol(op)
	return s
}

// InputDecimal adds a decimal point unless the entry already has one.
func InputDecimal(s Session) Session {
	if s.AwaitingOperand {
		s.Entry = "0."
		s.AwaitingOperand = false
		return s
	}
	if !strings.Contains(s.Entry, ".") {
		s.Entry += "."
	}
	return s
}

// InputParenthesis concatenates "(" or ")". Parentheses are never balanced.
func InputParenthesis(s Session, paren string) Session {
	if s.AwaitingOperand {
		s.Entry = paren
		s.AwaitingOperand = false
		return s
	}
	s.Entry += paren
	return s
}

// ToggleSign negates the parsed entry.
func ToggleSign(s Session) Session {
	s.Entry = FormatNumber(valueOf(s.Entry) * -1)
	return s
}

// DeleteLast drops the final character; a single character becomes "0".
func DeleteLast(s Session) Session {
	runes := []rune(s.Entry)
	if len(runes) > 1 {
		s.Entry = string(runes[:len(runes)-1])
	} else {
		s.Entry = "0"
	}
	return s
}

// InputConstant replaces the entry with a literal constant value.
func InputConstant(s Session, literal string) Session {
	s.Entry = literal
	s.AwaitingOperand = false
	return s
}

// SetAngleMode selects the active angle unit.
func SetAngleMode(s Session, mode AngleMode) Session {
	s.AngleMode = mode
	return s
}

// ConvertAngle converts v, expressed in mode, to radians.
func ConvertAngle(v float64, mode AngleMode) float64 {
	switch mode {
	case AngleRad:
		return v
	case AngleGrad:
		return v * math.Pi / 200
	default:
		return v * math.Pi / 180
	}
}
