package arecur

import (
	"strings"
	"time"

	"github.com/jpfluger/arecur/acaldate"
	"github.com/rickar/cal/v2"
)

// ObservanceMode controls how an occurrence landing on a weekend or holiday
// is shifted to a business day.
type ObservanceMode string

const (
	OBSERVANCE_NONE            ObservanceMode = "none"
	OBSERVANCE_NEXT_BIZDAY     ObservanceMode = "next-business-day"
	OBSERVANCE_PREVIOUS_BIZDAY ObservanceMode = "previous-business-day"
)

func (om ObservanceMode) IsEmpty() bool {
	return strings.TrimSpace(string(om)) == ""
}

func (om ObservanceMode) IsNone() bool {
	return om.IsEmpty() || om == OBSERVANCE_NONE
}

// ICalendar is the holiday calendar surface required for observance
// shifting. rickar/cal business calendars satisfy it.
type ICalendar interface {
	IsHoliday(date time.Time) (actual, observed bool, h *cal.Holiday)
}

// observanceScanLimit bounds the shift walk; no real calendar strings
// together a year of consecutive non-business days.
const observanceScanLimit = 366

// NextObservedAfter returns the next active occurrence after pivot, shifted
// off weekends and holidays per the observance mode. A nil holiday calendar
// shifts off weekends only. Returns nil when the series is exhausted or no
// business day is reachable within the scan limit.
func (r *Recurrence) NextObservedAfter(pivot *acaldate.CalDate, holidays ICalendar, mode ObservanceMode) *acaldate.CalDate {
	next := r.NextActiveAfter(pivot)
	if next == nil || mode.IsNone() {
		return next
	}

	step := 1
	if mode == OBSERVANCE_PREVIOUS_BIZDAY {
		step = -1
	}
	t := next.Time()
	for attempts := 0; attempts < observanceScanLimit; attempts++ {
		if isBusinessDay(t, holidays) {
			return acaldate.NewCalDateFromTime(t)
		}
		t = t.AddDate(0, 0, step)
	}
	return nil
}

func isBusinessDay(t time.Time, holidays ICalendar) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	if holidays != nil {
		actual, observed, _ := holidays.IsHoliday(t)
		if actual || observed {
			return false
		}
	}
	return true
}
