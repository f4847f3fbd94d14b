package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// ParseInt reads the leading integer of s after skipping whitespace, so
// "12abc" is 12 and "abc" is not a number. Values beyond int range saturate.
func ParseInt(s string) (int, bool) {
	m := intPrefix.FindString(strings.TrimLeft(s, " \t\n\r"))
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		if strings.HasPrefix(m, "-") {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return int(n), true
}

// ParseFloat reads the leading decimal number of s, like parseFloat.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	m := floatPrefix.FindString(s)
	if m == "" {
		switch {
		case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
			return math.Inf(1), true
		case strings.HasPrefix(s, "-Infinity"):
			return math.Inf(-1), true
		}
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil && !math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// optionalInt is the payload form of an optional numeric input: nil when
// the input is empty or not a number.
func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, ok := ParseInt(s)
	if !ok {
		return nil
	}
	return &n
}

func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	n, ok := ParseFloat(s)
	if !ok {
		return nil
	}
	return &n
}

// intOrZero and floatOrZero mirror `parseInt(x) || 0`.
func intOrZero(s string) int {
	n, _ := ParseInt(s)
	return n
}

func floatOrZero(s string) float64 {
	n, ok := ParseFloat(s)
	if !ok || math.IsNaN(n) {
		return 0
	}
	return n
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func intText(n *int) string {
	if n == nil || *n == 0 {
		return ""
	}
	return strconv.Itoa(*n)
}

func floatText(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
