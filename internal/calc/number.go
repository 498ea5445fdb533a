package calc

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads the longest numeric prefix of entry, the way a lenient
// float parser would: "5)" is 5, "3.14abc" is 3.14, "(5" and "MATH ERR" fail.
func ParseNumber(entry string) (float64, bool) {
	s := strings.TrimLeft(entry, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	if strings.HasPrefix(s[end:], "Infinity") {
		v := math.Inf(1)
		if s[0] == '-' {
			v = math.Inf(-1)
		}
		return v, true
	}
	mantissa := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
		}
	}
	digits := strings.Trim(s[mantissa:end], ".")
	if digits == "" {
		return 0, false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// out-of-range literals still carry a sign and magnitude
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// valueOf parses entry and falls back to 0.
func valueOf(entry string) float64 {
	v, ok := ParseNumber(entry)
	if !ok {
		return 0
	}
	return v
}

// FormatNumber renders v as the shortest round-trip decimal string.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		out := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(out, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		if exp == "" {
			exp = "0"
		}
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
