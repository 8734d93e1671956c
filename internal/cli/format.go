// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/theirongolddev/pocketguard/internal/model"
)

// FormatMoney formats an amount with a currency prefix and comma separators.
// e.g., 1234567 -> "₹1,234,567", -40 -> "-₹40"
func FormatMoney(m model.Money, symbol string) string {
	if m < 0 {
		return "-" + symbol + FormatNumber(int64(-m))
	}
	return symbol + FormatNumber(int64(m))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatShare returns part/whole as a percentage, or "-" when whole is zero.
func FormatShare(part, whole model.Money) string {
	if whole <= 0 {
		return "-"
	}
	return FormatPercent(float64(part) / float64(whole))
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatLabel capitalizes a lower-case enum name for display, e.g. "food" -> "Food".
func FormatLabel(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// MoodEmoji returns the face shown next to a mood.
func MoodEmoji(m model.Mood) string {
	switch m {
	case model.MoodHappy:
		return "😊"
	case model.MoodStressed:
		return "😰"
	case model.MoodSad:
		return "😢"
	default:
		return "😐"
	}
}
