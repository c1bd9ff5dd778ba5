package engine

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	durationPattern = regexp.MustCompile(`^(?:(\d+)\s*h)?\s*(?:(\d+)\s*m)?$`)
	numberPattern   = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseDuration reads a compact "XhYm" duration ("5h0m", "2h 30m", "45m", "3h") as minutes.
func ParseDuration(value string) (int, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 0, false
	}

	parts := durationPattern.FindStringSubmatch(value)
	if parts == nil || (parts[1] == "" && parts[2] == "") {
		return 0, false
	}

	hours, _ := strconv.Atoi(parts[1])
	minutes, _ := strconv.Atoi(parts[2])

	return hours*60 + minutes, true
}

// ParseDistance returns the first number in a distance label such as "1.2 km from center".
func ParseDistance(value string) (float64, bool) {
	match := numberPattern.FindString(value)
	if match == "" {
		return 0, false
	}

	distance, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	return distance, true
}
