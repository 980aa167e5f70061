package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses the date formats accepted on the command line
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2026")
// - yyyy-mm-dd (e.g., "2026-12-15")
// - "today", "tomorrow"
// - X days (e.g., "3 days", "1 day")
func ParseDate(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "today":
		d := startOfDay(time.Now())
		return &d, nil
	case "tomorrow":
		d := startOfDay(time.Now()).AddDate(0, 0, 1)
		return &d, nil
	}

	if d, err := parseSlashDate(input); err == nil {
		return d, nil
	}

	if d, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return &d, nil
	}

	if d, err := parseRelativeDays(input); err == nil {
		return d, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, yyyy-mm-dd, today, tomorrow, or X days")
}

// parseSlashDate parses dd/mm/yyyy format
func parseSlashDate(input string) (*time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	// Validate date ranges
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &date, nil
}

// parseRelativeDays parses "X days" relative to today
func parseRelativeDays(input string) (*time.Time, error) {
	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days)$`)
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))

	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}
	if amount < 1 || amount > 365 {
		return nil, fmt.Errorf("days must be between 1 and 365")
	}

	date := startOfDay(time.Now()).AddDate(0, 0, amount)
	return &date, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
