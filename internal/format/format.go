package format

import (
	"fmt"
	"strings"
	"time"
)

// USD formats a dollar amount for display. Whole amounts drop the cents.
// Example: USD(3) => "$3", USD(4.5) => "$4.50"
func USD(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("$%s", thousandSep(int64(amount)))
	}
	return fmt.Sprintf("$%.2f", amount)
}

// Latency renders a millisecond latency value.
func Latency(ms int) string {
	return fmt.Sprintf("%s ms", thousandSep(int64(ms)))
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

// Date formats time in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "ja", "ko", "zh":
		return t.Format("2006-01-02")
	default:
		return t.Format("Jan 2, 2006")
	}
}
