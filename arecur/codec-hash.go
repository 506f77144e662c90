package arecur

import (
	"strconv"
	"strings"
	"time"

	"github.com/jpfluger/arecur/acaldate"
)

// Hash cycle and type vocabulary.
const (
	HASHCYCLE_DAILY   = "daily"
	HASHCYCLE_WEEKLY  = "weekly"
	HASHCYCLE_MONTHLY = "monthly"
	HASHCYCLE_YEARLY  = "yearly"

	HASHTYPE_DAYNUMBER = "daynumber"
	HASHTYPE_WEEKDAY   = "weekday"
	HASHTYPE_MONTHDAY  = "monthday"
	HASHTYPE_YEARDAY   = "yearday"

	HASHRANGE_NUMBER = "number"
	HASHRANGE_DATE   = "date"
	HASHRANGE_NONE   = "none"
)

var hashMonthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var hashWeekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// RecurrenceHash is the structured named-field form of a rule. DayNumber is
// the day of month (monthday/daynumber types), the day of year (yearday), or
// the 1-5 weekday ordinal (weekday types).
type RecurrenceHash struct {
	Interval    int      `json:"interval,omitempty"`
	Cycle       string   `json:"cycle,omitempty"`
	Type        string   `json:"type,omitempty"`
	DayNumber   int      `json:"daynumber,omitempty"`
	Month       string   `json:"month,omitempty"`
	Days        []string `json:"day,omitempty"`
	RangeType   string   `json:"range-type,omitempty"`
	Range       string   `json:"range,omitempty"`
	Exceptions  []string `json:"exceptions,omitempty"`
	Completions []string `json:"completions,omitempty"`
}

// FromHash loads the rule from its hash form. Returns false — leaving a
// non-recurring rule — when the mandatory interval or range-type fields are
// missing. Unknown cycle, weekday or month values are skipped silently.
func (r *Recurrence) FromHash(h *RecurrenceHash) bool {
	if h == nil || h.Interval <= 0 || strings.TrimSpace(h.RangeType) == "" {
		r.Type = RECURTYPE_NONE
		return false
	}

	r.SetInterval(h.Interval)

	cycle := strings.ToLower(strings.TrimSpace(h.Cycle))
	typ := strings.ToLower(strings.TrimSpace(h.Type))
	switch cycle {
	case HASHCYCLE_DAILY:
		r.Type = RECURTYPE_DAILY
	case HASHCYCLE_WEEKLY:
		r.Type = RECURTYPE_WEEKLY
	case HASHCYCLE_MONTHLY:
		if typ == HASHTYPE_WEEKDAY {
			r.Type = RECURTYPE_MONTHLY_BYWEEKDAY
		} else {
			r.Type = RECURTYPE_MONTHLY_BYDATE
		}
	case HASHCYCLE_YEARLY:
		switch typ {
		case HASHTYPE_YEARDAY:
			r.Type = RECURTYPE_YEARLY_BYYEARDAY
		case HASHTYPE_WEEKDAY:
			r.Type = RECURTYPE_YEARLY_BYWEEKDAY
		default:
			r.Type = RECURTYPE_YEARLY_BYDATE
		}
	default:
		r.Type = RECURTYPE_NONE
	}

	mask := 0
	lastWD := time.Sunday
	haveWD := false
	for _, name := range h.Days {
		if wd, ok := weekdayByName(name); ok {
			mask |= 1 << uint(wd)
			lastWD = wd
			haveWD = true
		}
	}
	r.WeekdayMask = mask

	switch strings.ToLower(strings.TrimSpace(h.RangeType)) {
	case HASHRANGE_NUMBER:
		if n, err := strconv.Atoi(strings.TrimSpace(h.Range)); err == nil {
			r.SetCount(n)
		}
	case HASHRANGE_DATE:
		if until := acaldate.MustParse(h.Range); until != nil {
			until.SetTimeOfDay(23, 59, 59)
			r.SetUntil(until)
		}
	default:
		r.ClearTermination()
	}

	if r.Start != nil {
		switch r.Type {
		case RECURTYPE_MONTHLY_BYDATE:
			if h.DayNumber > 0 {
				r.Start.SetDay(h.DayNumber)
			}
		case RECURTYPE_MONTHLY_BYWEEKDAY:
			if h.DayNumber > 0 && haveWD {
				r.Start.SetNthWeekday(lastWD, h.DayNumber)
			}
		case RECURTYPE_YEARLY_BYDATE:
			if m, ok := monthByName(h.Month); ok {
				r.Start.SetMonth(m)
			}
			if h.DayNumber > 0 {
				r.Start.SetDay(h.DayNumber)
			}
		case RECURTYPE_YEARLY_BYYEARDAY:
			if h.DayNumber > 0 {
				r.Start.SetDayOfYear(h.DayNumber)
			}
		case RECURTYPE_YEARLY_BYWEEKDAY:
			if m, ok := monthByName(h.Month); ok {
				r.Start.SetMonth(m)
			}
			if h.DayNumber > 0 && haveWD {
				r.Start.SetNthWeekday(lastWD, h.DayNumber)
			}
		}
	}

	r.Exceptions = DayKeysFromStrings(h.Exceptions)
	r.Completions = DayKeysFromStrings(h.Completions)
	return true
}

// ToHash renders the rule in its hash form. A non-recurring rule yields the
// empty hash.
func (r *Recurrence) ToHash() *RecurrenceHash {
	h := &RecurrenceHash{}
	if r == nil || r.Start == nil || r.Type.IsNone() {
		return h
	}

	h.Interval = r.Interval
	switch r.Type {
	case RECURTYPE_DAILY:
		h.Cycle = HASHCYCLE_DAILY
	case RECURTYPE_WEEKLY:
		h.Cycle = HASHCYCLE_WEEKLY
		for i := 0; i <= 6; i++ {
			if r.WeekdayMask&(1<<uint(i)) != 0 {
				h.Days = append(h.Days, hashWeekdayNames[i])
			}
		}
	case RECURTYPE_MONTHLY_BYDATE:
		h.Cycle = HASHCYCLE_MONTHLY
		h.Type = HASHTYPE_DAYNUMBER
		h.DayNumber = r.Start.Day()
	case RECURTYPE_MONTHLY_BYWEEKDAY:
		h.Cycle = HASHCYCLE_MONTHLY
		h.Type = HASHTYPE_WEEKDAY
		h.DayNumber = vcalOrdinal(r.Start)
		h.Days = []string{hashWeekdayNames[int(r.Start.Weekday())]}
	case RECURTYPE_YEARLY_BYDATE:
		h.Cycle = HASHCYCLE_YEARLY
		h.Type = HASHTYPE_MONTHDAY
		h.DayNumber = r.Start.Day()
		h.Month = hashMonthNames[r.Start.Month()-1]
	case RECURTYPE_YEARLY_BYYEARDAY:
		h.Cycle = HASHCYCLE_YEARLY
		h.Type = HASHTYPE_YEARDAY
		h.DayNumber = r.Start.DayOfYear()
	case RECURTYPE_YEARLY_BYWEEKDAY:
		h.Cycle = HASHCYCLE_YEARLY
		h.Type = HASHTYPE_WEEKDAY
		h.DayNumber = vcalOrdinal(r.Start)
		h.Month = hashMonthNames[r.Start.Month()-1]
		h.Days = []string{hashWeekdayNames[int(r.Start.Weekday())]}
	}

	switch {
	case r.untilOrNil() != nil:
		until := r.untilOrNil()
		h.RangeType = HASHRANGE_DATE
		h.Range = until.String()[:10]
	case r.Count > 0:
		h.RangeType = HASHRANGE_NUMBER
		h.Range = strconv.Itoa(r.Count)
	default:
		h.RangeType = HASHRANGE_NONE
	}

	h.Exceptions = r.Exceptions.ToStrings()
	h.Completions = r.Completions.ToStrings()
	return h
}

func weekdayByName(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range hashWeekdayNames {
		if n == name {
			return time.Weekday(i), true
		}
	}
	return time.Sunday, false
}

func monthByName(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range hashMonthNames {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}
