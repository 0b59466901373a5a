package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const day = 24 * time.Hour

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts a plain calendar date (as sent by HTML date inputs) or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD or RFC3339", ErrValidation, s)
}

// RentalDays is the number of billed days: partial days round up.
func RentalDays(pickup, returnDate time.Time) int {
	return int(math.Ceil(float64(returnDate.Sub(pickup)) / float64(day)))
}

// StartOfDay truncates t to midnight UTC, the instant a plain calendar date parses to.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidatePeriod checks a rental period against the current moment: pickup may be
// today at the earliest, and the return must come after the pickup.
func ValidatePeriod(pickup, returnDate, now time.Time) error {
	if pickup.IsZero() || returnDate.IsZero() {
		return fmt.Errorf("%w: pickup and return dates are required", ErrValidation)
	}
	if pickup.Before(StartOfDay(now)) {
		return fmt.Errorf("%w: pickup date cannot be in the past", ErrValidation)
	}
	if !returnDate.After(pickup) {
		return fmt.Errorf("%w: return date must be after pickup date", ErrValidation)
	}
	return nil
}
