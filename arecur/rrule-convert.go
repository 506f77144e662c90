package arecur

import (
	"fmt"
	"time"

	"github.com/jpfluger/arecur/acaldate"
	"github.com/teambition/rrule-go"
)

// ToROption exports the rule as RFC 5545 options for the rrule-go ecosystem.
// Exceptions and completions have no RFC 5545 counterpart here and are not
// carried over. Non-recurring rules are an error.
func (r *Recurrence) ToROption() (rrule.ROption, error) {
	if r == nil || r.Start == nil {
		return rrule.ROption{}, fmt.Errorf("recurrence has no start date")
	}
	if r.Type.IsNone() {
		return rrule.ROption{}, fmt.Errorf("recurrence type %q has no RFC 5545 form", r.Type)
	}

	opt := rrule.ROption{
		Interval: r.Interval,
		Dtstart:  r.Start.Time(),
		Count:    r.Count,
	}
	if until := r.untilOrNil(); until != nil {
		opt.Until = until.Time()
	}

	switch r.Type {
	case RECURTYPE_DAILY:
		opt.Freq = rrule.DAILY
	case RECURTYPE_WEEKLY:
		opt.Freq = rrule.WEEKLY
		for i := 0; i <= 6; i++ {
			if r.WeekdayMask&(1<<uint(i)) != 0 {
				opt.Byweekday = append(opt.Byweekday, acaldate.WeekdayToRRule(time.Weekday(i)))
			}
		}
	case RECURTYPE_MONTHLY_BYDATE:
		opt.Freq = rrule.MONTHLY
		opt.Bymonthday = []int{r.Start.Day()}
	case RECURTYPE_MONTHLY_BYWEEKDAY:
		opt.Freq = rrule.MONTHLY
		wd := acaldate.WeekdayToRRule(r.Start.Weekday())
		opt.Byweekday = []rrule.Weekday{wd.Nth(nthOfMonth(r.Start))}
	case RECURTYPE_YEARLY_BYDATE:
		opt.Freq = rrule.YEARLY
		opt.Bymonth = []int{r.Start.Month()}
		opt.Bymonthday = []int{r.Start.Day()}
	case RECURTYPE_YEARLY_BYYEARDAY:
		opt.Freq = rrule.YEARLY
		opt.Byyearday = []int{r.Start.DayOfYear()}
	case RECURTYPE_YEARLY_BYWEEKDAY:
		opt.Freq = rrule.YEARLY
		opt.Bymonth = []int{r.Start.Month()}
		wd2 := acaldate.WeekdayToRRule(r.Start.Weekday())
		opt.Byweekday = []rrule.Weekday{wd2.Nth(nthOfMonth(r.Start))}
	default:
		return rrule.ROption{}, fmt.Errorf("unsupported recurrence type: %q", r.Type)
	}

	return opt, nil
}

// ToRRule builds a ready-to-iterate rrule.RRule from the exported options.
func (r *Recurrence) ToRRule() (*rrule.RRule, error) {
	opt, err := r.ToROption()
	if err != nil {
		return nil, err
	}
	return rrule.NewRRule(opt)
}
