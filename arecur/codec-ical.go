package arecur

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jpfluger/arecur/acaldate"
)

// FromICal loads the rule from an iCalendar 2.0 RRULE property value, e.g.
// "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH;COUNT=10". Input without a FREQ key
// leaves a non-recurring rule.
func (r *Recurrence) FromICal(value string) {
	r.Type = RECURTYPE_NONE

	kv := map[string]string{}
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		kv[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	byday, hasByDay := kv["BYDAY"]
	_, hasByYearDay := kv["BYYEARDAY"]

	switch strings.ToUpper(kv["FREQ"]) {
	case "DAILY":
		r.Type = RECURTYPE_DAILY
	case "WEEKLY":
		r.Type = RECURTYPE_WEEKLY
		if hasByDay {
			r.WeekdayMask = parseWeekdayList(byday)
		}
	case "MONTHLY":
		if hasByDay {
			r.Type = RECURTYPE_MONTHLY_BYWEEKDAY
		} else {
			r.Type = RECURTYPE_MONTHLY_BYDATE
		}
	case "YEARLY":
		switch {
		case hasByYearDay:
			r.Type = RECURTYPE_YEARLY_BYYEARDAY
		case hasByDay:
			r.Type = RECURTYPE_YEARLY_BYWEEKDAY
		default:
			r.Type = RECURTYPE_YEARLY_BYDATE
		}
	default:
		return
	}

	r.Interval = 1
	if v, ok := kv["INTERVAL"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			r.SetInterval(n)
		}
	}

	r.ClearTermination()
	if v, ok := kv["UNTIL"]; ok {
		if until := acaldate.MustParse(v); until != nil {
			// The wire value is half-open (day after the last occurrence).
			r.SetUntil(until.AddDays(-1))
		}
	}
	if v, ok := kv["COUNT"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			r.SetCount(n)
		}
	}
}

// parseWeekdayList folds a comma-separated BYDAY value into the weekday
// bitmask. Ordinal prefixes ("2MO", "-1FR") and unknown tokens are skipped.
func parseWeekdayList(value string) int {
	mask := 0
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(strings.ToUpper(tok))
		tok = strings.TrimLeft(tok, "+-0123456789")
		if wd, ok := acaldate.WeekdayFromToken(tok); ok {
			mask |= 1 << uint(wd)
		}
	}
	return mask
}

// ToICal renders the rule as an iCalendar 2.0 RRULE property value.
// Non-recurring rules yield the empty string.
func (r *Recurrence) ToICal() string {
	if r == nil || r.Start == nil {
		return ""
	}

	var freq string
	switch r.Type {
	case RECURTYPE_DAILY:
		freq = "DAILY"
	case RECURTYPE_WEEKLY:
		freq = "WEEKLY"
	case RECURTYPE_MONTHLY_BYDATE, RECURTYPE_MONTHLY_BYWEEKDAY:
		freq = "MONTHLY"
	case RECURTYPE_YEARLY_BYDATE, RECURTYPE_YEARLY_BYYEARDAY, RECURTYPE_YEARLY_BYWEEKDAY:
		freq = "YEARLY"
	default:
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "FREQ=%s;INTERVAL=%d", freq, r.Interval)

	switch r.Type {
	case RECURTYPE_WEEKLY:
		var days []string
		for i := 0; i <= 6; i++ {
			if r.WeekdayMask&(1<<uint(i)) != 0 {
				days = append(days, acaldate.WeekdayToken(time.Weekday(i)))
			}
		}
		if len(days) > 0 {
			b.WriteString(";BYDAY=" + strings.Join(days, ","))
		}
	case RECURTYPE_MONTHLY_BYWEEKDAY:
		fmt.Fprintf(&b, ";BYDAY=%d%s", vcalOrdinal(r.Start), acaldate.WeekdayToken(r.Start.Weekday()))
	case RECURTYPE_YEARLY_BYYEARDAY:
		fmt.Fprintf(&b, ";BYYEARDAY=%d", r.Start.DayOfYear())
	case RECURTYPE_YEARLY_BYWEEKDAY:
		fmt.Fprintf(&b, ";BYDAY=%d%s;BYMONTH=%d",
			r.Start.WeekOfMonth(), acaldate.WeekdayToken(r.Start.Weekday()), r.Start.Month())
	}

	if until := r.untilOrNil(); until != nil {
		// Half-open on the wire: emit the day after the inclusive end.
		b.WriteString(";UNTIL=" + acaldate.FormatICalDateTime(until.AddDays(1)))
	}
	if r.Count > 0 {
		fmt.Fprintf(&b, ";COUNT=%d", r.Count)
	}
	return b.String()
}
