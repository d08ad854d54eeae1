// Package money converts loosely-typed stored and typed-in values into whole
// currency amounts and renders them with locale digit grouping.
//
// Nothing in this package returns an error. Values that cannot be read as a
// number come back as 0 (or "0"), because persisted data may carry strings
// written by older schema versions or typed by hand.
package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer atomic.Pointer[message.Printer]

func init() {
	printer.Store(message.NewPrinter(language.English))
}

// SetLocale switches the grouping style used by Format, e.g. "en", "de", "zh-TW".
func SetLocale(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		return err
	}
	printer.Store(message.NewPrinter(t))
	return nil
}

// SafeInt reads v as a whole number. Strings may contain "," thousands
// separators and trailing garbage ("12abc" reads as 12); fractional values are
// truncated toward zero. Empty, nil, boolean and unparsable input yields 0.
func SafeInt(v any) int64 {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return parseIntPrefix(strings.ReplaceAll(x, ",", ""))
	case json.Number:
		return parseIntPrefix(strings.ReplaceAll(string(x), ",", ""))
	case Amount:
		return int64(x)
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return clampUint(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return clampUint(x)
	case float32:
		return truncFloat(float64(x))
	case float64:
		return truncFloat(x)
	default:
		return 0
	}
}

// Format renders v as a grouped integer string ("1,234,567" in English).
// Non-numeric input, nil and NaN render as "0".
func Format(v any) string {
	n, ok := numeric(v)
	if !ok {
		return "0"
	}
	return printer.Load().Sprintf("%d", n)
}

// numeric is stricter than SafeInt: a string must be a number in its
// entirety (separators aside) to count.
func numeric(v any) (int64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case string:
		return parseWhole(x)
	case json.Number:
		return parseWhole(string(x))
	case float32:
		if math.IsNaN(float64(x)) {
			return 0, false
		}
		return truncFloat(float64(x)), true
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return truncFloat(x), true
	case bool:
		return 0, false
	}
	return SafeInt(v), true
}

func parseWhole(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return truncFloat(f), true
}

// parseIntPrefix reads an optionally signed run of leading digits after any
// leading whitespace. Digits past the int64 range saturate.
func parseIntPrefix(s string) int64 {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		n = math.MaxInt64
	}
	if neg {
		return -n
	}
	return n
}

func truncFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func clampUint(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}
