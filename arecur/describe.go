package arecur

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// String renders a short human-readable summary of the rule.
func (r *Recurrence) String() string {
	parts := r.ToDescriptor()
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " · ")
}

// ToDescriptor renders the rule as descriptor fragments, one per aspect.
func (r *Recurrence) ToDescriptor() []string {
	if r == nil || r.Start == nil {
		return nil
	}

	var parts []string
	switch r.Type {
	case RECURTYPE_DAILY:
		parts = append(parts, everyN(r.Interval, "day"))
	case RECURTYPE_WEEKLY:
		s := everyN(r.Interval, "week")
		if days := r.weekdayList(); days != "" {
			s += " on " + days
		}
		parts = append(parts, s)
	case RECURTYPE_MONTHLY_BYDATE:
		parts = append(parts, fmt.Sprintf("%s on day %d", everyN(r.Interval, "month"), r.startDay()))
	case RECURTYPE_MONTHLY_BYWEEKDAY:
		parts = append(parts, fmt.Sprintf("%s on the %s %s",
			everyN(r.Interval, "month"), humanize.Ordinal(nthOfMonth(r.Start)), r.startWeekday()))
	case RECURTYPE_YEARLY_BYDATE:
		parts = append(parts, fmt.Sprintf("%s on %s %d",
			everyN(r.Interval, "year"), r.startMonth(), r.startDay()))
	case RECURTYPE_YEARLY_BYYEARDAY:
		parts = append(parts, fmt.Sprintf("%s on day %d of the year",
			everyN(r.Interval, "year"), r.Start.DayOfYear()))
	case RECURTYPE_YEARLY_BYWEEKDAY:
		parts = append(parts, fmt.Sprintf("%s on the %s %s of %s",
			everyN(r.Interval, "year"), humanize.Ordinal(nthOfMonth(r.Start)), r.startWeekday(), r.startMonth()))
	default:
		return nil
	}

	if r.Count > 0 {
		parts = append(parts, fmt.Sprintf("up to %d times", r.Count))
	}
	if until := r.untilOrNil(); until != nil {
		parts = append(parts, fmt.Sprintf("until %04d-%02d-%02d", until.Year(), until.Month(), until.Day()))
	}
	if n := len(r.Exceptions); n > 0 {
		parts = append(parts, fmt.Sprintf("%d exception(s)", n))
	}
	if n := len(r.Completions); n > 0 {
		parts = append(parts, fmt.Sprintf("%d completed", n))
	}
	return parts
}

func everyN(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("Every %d %ss", n, unit)
	}
	return "Every " + unit
}

func (r *Recurrence) weekdayList() string {
	var names []string
	for i := 0; i <= 6; i++ {
		if r.WeekdayMask&(1<<uint(i)) != 0 {
			names = append(names, time.Weekday(i).String())
		}
	}
	return strings.Join(names, ", ")
}

func (r *Recurrence) startDay() int {
	if r.Start == nil {
		return 0
	}
	return r.Start.Day()
}

func (r *Recurrence) startWeekday() string {
	if r.Start == nil {
		return ""
	}
	return r.Start.Weekday().String()
}

func (r *Recurrence) startMonth() string {
	if r.Start == nil {
		return ""
	}
	return time.Month(r.Start.Month()).String()
}
