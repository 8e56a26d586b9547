package cli

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatCurrency formats a monetary amount with thousands separators.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := "$" + strings.Join(groups, ",") + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent formats a percentage with sign. NaN renders as a dash.
func FormatPercent(value float64) string {
	if math.IsNaN(value) {
		return "—"
	}
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatMetric formats a unitless statistic. NaN renders as a dash.
func FormatMetric(value float64) string {
	if math.IsNaN(value) {
		return "—"
	}
	return fmt.Sprintf("%.2f", value)
}

// FormatDate formats a calendar date.
func FormatDate(t time.Time) string {
	return t.Format("02-Jan-2006")
}

// FormatTime formats a time of day.
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDateTime formats a datetime.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02-Jan-2006 15:04:05")
}

// TruncateString truncates a string to maxLen with an ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
