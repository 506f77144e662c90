package acaldate

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by Parse, tried in order.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102T150405Z",
	"20060102T150405",
	"20060102",
}

// Parse reads a date string in any of the supported layouts.
func Parse(value string) (*CalDate, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("caldate: empty date string")
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return NewCalDateFromTime(t), nil
		}
	}
	return nil, fmt.Errorf("caldate: unparseable date string %q", value)
}

// MustParse parses a date string, returning nil on failure.
func MustParse(value string) *CalDate {
	cd, err := Parse(value)
	if err != nil {
		return nil
	}
	return cd
}

// FormatICalDateTime renders an iCalendar DATE-TIME (e.g. 20090701T000000).
func FormatICalDateTime(cd *CalDate) string {
	if cd == nil {
		return ""
	}
	return fmt.Sprintf("%04d%02d%02dT%02d%02d%02d", cd.year, cd.month, cd.day, cd.hour, cd.min, cd.sec)
}

// FormatICalDate renders an iCalendar DATE (e.g. 20090701).
func FormatICalDate(cd *CalDate) string {
	if cd == nil {
		return ""
	}
	return fmt.Sprintf("%04d%02d%02d", cd.year, cd.month, cd.day)
}
