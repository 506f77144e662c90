package acaldate

import (
	"time"

	"github.com/teambition/rrule-go"
)

// weekdayOrder maps Sunday-first weekday indexes (0=Sunday) onto the
// RFC 5545 weekday vocabulary from rrule-go.
var weekdayOrder = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// WeekdayToRRule converts a time.Weekday to its rrule.Weekday counterpart.
func WeekdayToRRule(wd time.Weekday) rrule.Weekday {
	return weekdayOrder[int(wd)%7]
}

// RRuleToWeekday converts an rrule.Weekday (0=Monday) back to time.Weekday.
func RRuleToWeekday(wd rrule.Weekday) time.Weekday {
	return time.Weekday((wd.Day() + 1) % 7)
}

// WeekdayToken returns the two-letter RFC 5545 token (SU, MO, ...) for a weekday.
func WeekdayToken(wd time.Weekday) string {
	return WeekdayToRRule(wd).String()
}

// WeekdayFromToken resolves a two-letter weekday token. The second return is
// false for unknown tokens.
func WeekdayFromToken(token string) (time.Weekday, bool) {
	for i, rd := range weekdayOrder {
		if rd.String() == token {
			return time.Weekday(i), true
		}
	}
	return time.Sunday, false
}
