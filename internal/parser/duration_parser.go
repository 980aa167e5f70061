package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseBreakMinutes parses a break duration into whole minutes
// Supported formats:
// - bare minutes (e.g., "45")
// - Xm (e.g., "30m")
// - Xh (e.g., "1h")
// - XhYm (e.g., "1h15m")
func ParseBreakMinutes(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("duration is required")
	}

	// Bare number means minutes
	if minutes, err := strconv.Atoi(input); err == nil {
		return minutes, nil
	}

	durationRegex := regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)
	matches := durationRegex.FindStringSubmatch(input)
	if matches == nil || (matches[1] == "" && matches[2] == "") {
		return 0, fmt.Errorf("invalid duration '%s'. Use: 45, 30m, 1h, or 1h15m", input)
	}

	minutes := 0
	if matches[1] != "" {
		hours, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid hours")
		}
		minutes += hours * 60
	}
	if matches[2] != "" {
		m, err := strconv.Atoi(matches[2])
		if err != nil {
			return 0, fmt.Errorf("invalid minutes")
		}
		minutes += m
	}

	return minutes, nil
}
