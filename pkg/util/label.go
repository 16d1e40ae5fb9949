package util

// TruncateLabel shortens a timestamp label to at most max runes. Axis labels
// keep the date prefix and drop the time-of-day tail.
func TruncateLabel(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
