// Package format holds the small pure formatters that turn raw Garmin
// fields into the strings embedded in note entries and tags.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// NA is the placeholder rendered for any field the service did not supply.
const NA = "N/A"

const (
	layoutClock = "15:04"
	layoutISO   = "2006-01-02T15:04:05.999999999"
)

// Clock converts an epoch-millisecond timestamp to local wall-clock HH:MM.
// Zero or negative input means the field was absent.
func Clock(ms int64) string {
	if ms <= 0 {
		return NA
	}
	return time.UnixMilli(ms).Format(layoutClock)
}

// Hours renders a second count as hours with two decimals, e.g. "7.52h".
func Hours(seconds float64) string {
	return fmt.Sprintf("%.2fh", seconds/3600)
}

// Tag renders a numeric tag value as a whole number with no decimal point
// and no separators. Halves round away from zero.
func Tag(v float64) string {
	return strconv.FormatInt(int64(math.Round(v)), 10)
}

// OptTag is Tag for optional fields: nil renders as the N/A placeholder.
func OptTag(v *float64) string {
	if v == nil {
		return NA
	}
	return Tag(*v)
}

// IsoClock extracts local wall-clock HH:MM from an ISO-8601 timestamp with
// optional fractional seconds. Empty or unparseable input renders as N/A.
func IsoClock(s string) string {
	if s == "" {
		return NA
	}
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return NA
	}
	return t.Format(layoutClock)
}
