package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the textual form dates are stored and persisted in.
const DateLayout = "2006-01-02"

// ParseID turns raw user input into an entity identifier.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("ParseID: %q is not an integer: %w", s, ErrValidation)
	}
	return id, nil
}

// ParseDate accepts year-month-day with or without zero padding and returns
// the canonical yyyy-mm-dd form. Out of range dates (2023-02-30) are rejected.
func ParseDate(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("ParseDate: %q is not yyyy-mm-dd: %w", s, ErrValidation)
	}

	var ymd [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return "", fmt.Errorf("ParseDate: %q is not yyyy-mm-dd: %w", s, ErrValidation)
		}
		ymd[i] = n
	}

	year, month, day := ymd[0], ymd[1], ymd[2]
	if year < 1 || year > 9999 {
		return "", fmt.Errorf("ParseDate: year %d out of range: %w", year, ErrValidation)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", fmt.Errorf("ParseDate: %q is not a calendar date: %w", s, ErrValidation)
	}
	return t.Format(DateLayout), nil
}
