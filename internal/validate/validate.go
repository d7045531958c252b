// Package validate checks raw user input before it reaches the booking
// workflow. Formats are strict: zero-padded day/month/hour/minute, exactly
// as prompted.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateTimeLayout = "02.01.2006 15:04"
	DateLayout     = "02.01.2006"
)

var (
	ErrFormat       = errors.New("value does not match the expected format")
	ErrCalendar     = errors.New("date does not exist in the Gregorian calendar")
	ErrEmptyName    = errors.New("name is empty")
	ErrPeriodChoice = errors.New("chosen period is not available")
	ErrFileType     = errors.New("unsupported file type")
)

var (
	dateTimePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4} \d{2}:\d{2}$`)
	datePattern     = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
)

// DateTime parses a "DD.MM.YYYY HH:MM" timestamp in local time. The regexp
// runs first: time.Parse tolerates single-digit components that the prompts
// must reject.
func DateTime(value string) (time.Time, error) {
	if !dateTimePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("%q: %w", value, ErrFormat)
	}

	parsed, err := time.ParseInLocation(DateTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", value, ErrCalendar)
	}
	return parsed, nil
}

// Date parses a "DD.MM.YYYY" calendar date in local time.
func Date(value string) (time.Time, error) {
	if !datePattern.MatchString(value) {
		return time.Time{}, fmt.Errorf("%q: %w", value, ErrFormat)
	}

	parsed, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", value, ErrCalendar)
	}
	return parsed, nil
}

// Name accepts any non-empty string.
func Name(value string) (string, error) {
	if value == "" {
		return "", ErrEmptyName
	}
	return value, nil
}

// Period resolves a choice given in minutes against the offered list.
func Period(value string, offered []time.Duration) (time.Duration, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", value, ErrPeriodChoice)
	}

	period := time.Duration(minutes) * time.Minute
	for _, p := range offered {
		if p == period {
			return period, nil
		}
	}
	return 0, fmt.Errorf("%d minutes: %w", minutes, ErrPeriodChoice)
}

// FileType accepts the supported export formats.
func FileType(value string) (string, error) {
	switch value {
	case "json", "csv":
		return value, nil
	}
	return "", fmt.Errorf("%q: %w", value, ErrFileType)
}
