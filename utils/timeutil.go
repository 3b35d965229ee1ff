package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock strings are bare "HH:MM" labels with no date attached. All
// arithmetic happens on minutes-since-midnight modulo one day, so results
// that cross midnight silently stay on the same calendar date label.

const minutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" string to minutes since midnight
func ParseClock(t string) (int, error) {
	hStr, mStr, ok := strings.Cut(t, ":")
	if !ok {
		return 0, NewValidationError(fmt.Sprintf("invalid time %q, expected HH:MM", t))
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("invalid hour in %q", t))
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("invalid minute in %q", t))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, NewValidationError(fmt.Sprintf("time %q out of range", t))
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight to a zero-padded "HH:MM",
// wrapping modulo one day
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidClock reports whether t is a well-formed HH:MM string
func ValidClock(t string) bool {
	_, err := ParseClock(t)
	return err == nil
}

// AddMinutes shifts a clock time by delta minutes, wrapping in either
// direction across midnight. No date carry is tracked.
func AddMinutes(t string, delta int) string {
	m, err := ParseClock(t)
	if err != nil {
		m = 0
	}
	return FormatClock(m + delta)
}

// Midpoint returns the floor average of two clock times. Same-day
// arithmetic only: callers must ensure t1 <= t2 in minutes-of-day terms,
// a range crossing midnight yields a misleading mid value.
func Midpoint(t1, t2 string) string {
	m1, err := ParseClock(t1)
	if err != nil {
		m1 = 0
	}
	m2, err := ParseClock(t2)
	if err != nil {
		m2 = 0
	}
	return FormatClock((m1 + m2) / 2)
}

// RoundToNearest5 rounds a clock time to the nearest 5-minute boundary,
// wrapping modulo one day
func RoundToNearest5(t string) string {
	m, err := ParseClock(t)
	if err != nil {
		m = 0
	}
	return FormatClock((m + 2) / 5 * 5)
}
