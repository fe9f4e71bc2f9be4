package results

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatDuration renders seconds as "1h 30m 0s", or "5m 3s" under an hour
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, mins, secs)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}

// FormatClock renders seconds as a zero padded MM:SS match clock.
// Minutes keep growing past 99.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count in binary units with at most two decimals
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := 0
	value := float64(bytes)
	for value >= 1024 && i < len(fileSizeUnits)-1 {
		value /= 1024
		i++
	}

	s := formatFixed(value, 2)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s + " " + fileSizeUnits[i]
}

// formatFixed renders x with the given number of decimals. Values exactly half
// way between two candidates round up, away from zero.
func formatFixed(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	// x is a tie exactly when x*2^(digits+1) is an odd integer
	scaled := math.Ldexp(x, digits+1)
	if scaled < 1<<53 && scaled == math.Trunc(scaled) && int64(scaled)%2 == 1 {
		n := (int64(scaled)*pow5(digits) + 1) / 2
		return sign + insertPoint(strconv.FormatInt(n, 10), digits)
	}

	return sign + strconv.FormatFloat(x, 'f', digits, 64)
}

func pow5(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 5
	}
	return p
}

// insertPoint places a decimal point before the last digits characters
func insertPoint(s string, digits int) string {
	if digits == 0 {
		return s
	}
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	return s[:len(s)-digits] + "." + s[len(s)-digits:]
}
