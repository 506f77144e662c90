package arecur

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jpfluger/arecur/acaldate"
)

// vCalendar 1.0 recurrence tags, longest prefixes first so MD/MP/YM/YD win
// over the bare D.
var vcalTags = []struct {
	tag string
	rt  RecurType
}{
	{"MP", RECURTYPE_MONTHLY_BYWEEKDAY},
	{"MD", RECURTYPE_MONTHLY_BYDATE},
	{"YM", RECURTYPE_YEARLY_BYDATE},
	{"YD", RECURTYPE_YEARLY_BYYEARDAY},
	{"W", RECURTYPE_WEEKLY},
	{"D", RECURTYPE_DAILY},
}

var vcalUntilRE = regexp.MustCompile(`^(\d{8})(T\d{6})?Z?$`)

// FromVCal loads the rule from a vCalendar 1.0 RRULE line, e.g.
// "W2 MO TH 20090701T000000" or "D1 #3". Empty or unrecognized input leaves
// a non-recurring rule. Unrecognized modifier tokens (the MD/YM/YD day
// numbers, MP ordinals) are skipped; the anchor date carries that state.
func (r *Recurrence) FromVCal(line string) {
	r.Type = RECURTYPE_NONE
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	rt := RECURTYPE_NONE
	rest := ""
	for _, t := range vcalTags {
		if strings.HasPrefix(line, t.tag) {
			rt, rest = t.rt, line[len(t.tag):]
			break
		}
	}
	if rt.IsNone() {
		return
	}

	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	interval := 1
	if i > 0 {
		interval, _ = strconv.Atoi(rest[:i])
	}

	r.Type = rt
	r.Interval = 1
	r.SetInterval(interval)
	r.ClearTermination()
	if rt == RECURTYPE_WEEKLY {
		r.WeekdayMask = 0
	}

	for _, field := range strings.Fields(rest[i:]) {
		switch {
		case strings.HasPrefix(field, "#"):
			if n, err := strconv.Atoi(field[1:]); err == nil {
				// "#0" means unbounded; SetCount clears on 0.
				r.SetCount(n)
			}
		case vcalUntilRE.MatchString(field):
			if until := acaldate.MustParse(strings.TrimSuffix(field, "Z")); until != nil {
				// The wire value is half-open (day after the last occurrence).
				r.SetUntil(until.AddDays(-1))
			}
		default:
			if rt == RECURTYPE_WEEKLY {
				if wd, ok := acaldate.WeekdayFromToken(strings.ToUpper(field)); ok {
					r.AddWeekday(wd)
				}
			}
		}
	}

	if rt == RECURTYPE_WEEKLY && r.WeekdayMask == 0 && r.Start != nil {
		r.AddWeekday(r.Start.Weekday())
	}
}

// ToVCal renders the rule as a vCalendar 1.0 RRULE line. Non-recurring rules
// and types the format cannot carry yield the empty string.
func (r *Recurrence) ToVCal() string {
	if r == nil || r.Start == nil {
		return ""
	}

	var b strings.Builder
	switch r.Type {
	case RECURTYPE_DAILY:
		fmt.Fprintf(&b, "D%d", r.Interval)
	case RECURTYPE_WEEKLY:
		fmt.Fprintf(&b, "W%d", r.Interval)
		for i := 0; i <= 6; i++ {
			if r.WeekdayMask&(1<<uint(i)) != 0 {
				b.WriteString(" " + acaldate.WeekdayToken(time.Weekday(i)))
			}
		}
	case RECURTYPE_MONTHLY_BYWEEKDAY:
		fmt.Fprintf(&b, "MP%d %d+ %s", r.Interval, vcalOrdinal(r.Start), acaldate.WeekdayToken(r.Start.Weekday()))
	case RECURTYPE_MONTHLY_BYDATE:
		fmt.Fprintf(&b, "MD%d %d", r.Interval, r.Start.Day())
	case RECURTYPE_YEARLY_BYDATE:
		fmt.Fprintf(&b, "YM%d %d", r.Interval, r.Start.Month())
	case RECURTYPE_YEARLY_BYYEARDAY:
		fmt.Fprintf(&b, "YD%d %d", r.Interval, r.Start.DayOfYear())
	default:
		return ""
	}

	if until := r.untilOrNil(); until != nil {
		// Half-open on the wire: emit the day after the inclusive end.
		b.WriteString(" " + acaldate.FormatICalDateTime(until.AddDays(1)))
	} else {
		fmt.Fprintf(&b, " #%d", r.Count)
	}
	return b.String()
}

// vcalOrdinal computes the weekday slot emitted for MP rules: 5 when the
// anchor sits in the month's final seven days, otherwise the plain ordinal.
func vcalOrdinal(cd *acaldate.CalDate) int {
	if cd.Day()+7 > acaldate.DaysInMonth(cd.Year(), cd.Month()) {
		return 5
	}
	return nthOfMonth(cd)
}
