package arecur

import (
	"github.com/jpfluger/arecur/acaldate"
)

// NextAfter returns the earliest occurrence on or after pivot, honoring the
// count/until bounds, or nil when the series is exhausted. Exceptions and
// completions are not consulted; see NextActiveAfter.
func (r *Recurrence) NextAfter(pivot *acaldate.CalDate) *acaldate.CalDate {
	if r == nil || r.Start == nil || pivot == nil {
		return nil
	}
	if r.Start.CompareDateTime(pivot) >= 0 {
		return r.Start.Clone()
	}
	if r.Type.IsNone() || r.Interval <= 0 {
		return nil
	}
	switch r.Type {
	case RECURTYPE_DAILY:
		return r.nextDaily(pivot)
	case RECURTYPE_WEEKLY:
		return r.nextWeekly(pivot)
	case RECURTYPE_MONTHLY_BYDATE:
		return r.nextMonthlyByDate(pivot)
	case RECURTYPE_MONTHLY_BYWEEKDAY:
		return r.nextMonthlyByWeekday(pivot)
	case RECURTYPE_YEARLY_BYDATE:
		return r.nextYearlyByDate(pivot)
	case RECURTYPE_YEARLY_BYYEARDAY:
		return r.nextYearlyByDayOfYear(pivot)
	case RECURTYPE_YEARLY_BYWEEKDAY:
		return r.nextYearlyByWeekday(pivot)
	default:
		return nil
	}
}

// NextActiveAfter returns the earliest occurrence strictly after pivot's day
// that is in neither the exception nor the completion set, or nil when the
// series is exhausted.
func (r *Recurrence) NextActiveAfter(pivot *acaldate.CalDate) *acaldate.CalDate {
	if r == nil || pivot == nil {
		return nil
	}
	cursor := pivot.AddDays(1)
	for {
		next := r.NextAfter(cursor)
		if next == nil {
			return nil
		}
		if !r.isSkipped(next) {
			return next
		}
		cursor = next.AddDays(1)
	}
}

// HasActiveOccurrence reports whether any occurrence remains outside the
// skip-sets. An unbounded rule (no until date) always has one.
func (r *Recurrence) HasActiveOccurrence() bool {
	if r == nil || r.Start == nil {
		return false
	}
	if r.untilOrNil() == nil {
		return true
	}
	cursor := r.Start.Clone()
	for {
		next := r.NextAfter(cursor)
		if next == nil {
			return false
		}
		if !r.isSkipped(next) {
			return true
		}
		// Strictly greater: step a whole day so a candidate day is never
		// considered twice.
		cursor = next.AddDays(1)
	}
}

// boundUntil applies the inclusive until bound, comparing calendar days only
// so an occurrence on the until day survives regardless of clock fields.
func (r *Recurrence) boundUntil(cand *acaldate.CalDate) *acaldate.CalDate {
	if until := r.untilOrNil(); until != nil && cand.CompareDate(until) > 0 {
		return nil
	}
	return cand
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (r *Recurrence) nextDaily(pivot *acaldate.CalDate) *acaldate.CalDate {
	days := r.Start.DiffDays(pivot)
	k := ceilDiv(days, r.Interval)
	if r.Count > 0 && k >= r.Count {
		return nil
	}
	return r.boundUntil(r.Start.AddDays(k * r.Interval))
}

// weekAnchor returns the first day (Monday) of the ISO week containing d,
// carrying the anchor's time of day. Computing it as Monday-on-or-before
// also covers the late-December dates that alias into ISO week 1.
func (r *Recurrence) weekAnchor(d *acaldate.CalDate) *acaldate.CalDate {
	a := d.AddDays(-((int(d.Weekday()) + 6) % 7))
	a.SetTimeOfDay(r.Start.Hour(), r.Start.Min(), r.Start.Sec())
	return a
}

func (r *Recurrence) nextWeekly(pivot *acaldate.CalDate) *acaldate.CalDate {
	if r.WeekdayMask == 0 {
		return nil
	}
	sw := r.weekAnchor(r.Start)
	pw := r.weekAnchor(pivot)

	// Align the week offset up to the next interval multiple.
	delta := sw.DiffDays(pw)
	span := r.Interval * 7
	if rem := delta % span; rem != 0 {
		delta += span - rem
	}
	if r.Count > 0 && (delta/7)/r.Interval >= r.Count {
		return nil
	}

	cand := sw.AddDays(delta)
	weekEnd := pw.AddDays(7)
	if cand.CompareDate(weekEnd) >= 0 {
		// Off-cycle week: resume the search from the following week.
		return r.nextWeekly(weekEnd)
	}
	for cand.CompareDate(pivot) < 0 {
		cand = cand.AddDays(1)
		if cand.CompareDate(weekEnd) >= 0 {
			return r.nextWeekly(weekEnd)
		}
	}
	for !r.HasWeekday(cand.Weekday()) {
		cand = cand.AddDays(1)
		if cand.CompareDate(weekEnd) >= 0 {
			return r.nextWeekly(weekEnd)
		}
	}
	return r.boundUntil(cand)
}

func (r *Recurrence) nextMonthlyByDate(pivot *acaldate.CalDate) *acaldate.CalDate {
	months := (pivot.Year()-r.Start.Year())*12 + pivot.Month() - r.Start.Month()
	if pivot.Day() > r.Start.Day() {
		months++
	}
	if months < 0 {
		months = 0
	}
	off := ceilDiv(months, r.Interval) * r.Interval
	for {
		if r.Count > 0 && off/r.Interval >= r.Count {
			return nil
		}
		cand := r.Start.AddMonths(off)
		if until := r.untilOrNil(); until != nil && cand.CompareDate(until) > 0 {
			return nil
		}
		if cand.IsValid() {
			return cand
		}
		// A yearly step over a non-existent anchor (e.g. April 31) would
		// loop forever; only Feb 29 anchors ever become valid again.
		if r.Interval == 12 && (cand.Month() != 2 || cand.Day() > 29) {
			return nil
		}
		off += r.Interval
	}
}

// nthOfMonth is the ordinal slot (1-5) of the anchor's weekday within its month.
func nthOfMonth(cd *acaldate.CalDate) int {
	return (cd.Day() + 6) / 7
}

func (r *Recurrence) nextMonthlyByWeekday(pivot *acaldate.CalDate) *acaldate.CalDate {
	nth := nthOfMonth(r.Start)
	wd := r.Start.Weekday()
	months := (pivot.Year()-r.Start.Year())*12 + pivot.Month() - r.Start.Month()
	if months < 0 {
		months = 0
	}
	// One interval back so the first loop step lands on the first candidate.
	off := ceilDiv(months, r.Interval)*r.Interval - r.Interval
	for {
		off += r.Interval
		if r.Count > 0 && off/r.Interval >= r.Count {
			return nil
		}
		cand := r.Start.AddMonths(off)
		cand.SetNthWeekday(wd, nth)
		if until := r.untilOrNil(); until != nil && cand.CompareDate(until) > 0 {
			return nil
		}
		if cand.CompareDate(pivot) >= 0 {
			return cand
		}
	}
}

func (r *Recurrence) nextYearlyByDate(pivot *acaldate.CalDate) *acaldate.CalDate {
	year := pivot.Year()
	if pivot.Month()*100+pivot.Day() > r.Start.Month()*100+r.Start.Day() {
		year++
	}
	if r.Start.Month() == 2 && r.Start.Day() == 29 {
		for !acaldate.IsLeapYear(year) {
			year++
		}
	}
	off := year - r.Start.Year()
	if off < 0 {
		off = 0
	}
	off = ceilDiv(off, r.Interval) * r.Interval
	if r.Count > 0 && off >= r.Count {
		return nil
	}
	cand := r.Start.Clone()
	cand.SetYear(r.Start.Year() + off)
	return r.boundUntil(cand)
}

func (r *Recurrence) nextYearlyByDayOfYear(pivot *acaldate.CalDate) *acaldate.CalDate {
	doy := r.Start.DayOfYear()
	idx := (pivot.Year()-r.Start.Year())/r.Interval + 1
	if r.Count > 0 {
		if idx > r.Count {
			return nil
		}
		if idx == r.Count && pivot.DayOfYear() > doy {
			return nil
		}
	}
	cand := r.Start.Clone()
	cand.SetYear(r.Start.Year() + (idx-1)*r.Interval)
	cand.SetDayOfYear(doy)
	if cand.CompareDate(pivot) < 0 {
		idx++
		if r.Count > 0 && idx > r.Count {
			return nil
		}
		cand.SetYear(cand.Year() + r.Interval)
		cand.SetDayOfYear(doy)
	}
	return r.boundUntil(cand)
}

func (r *Recurrence) nextYearlyByWeekday(pivot *acaldate.CalDate) *acaldate.CalDate {
	nth := nthOfMonth(r.Start)
	wd := r.Start.Weekday()
	years := pivot.Year() - r.Start.Year()
	if years < 0 {
		years = 0
	}
	off := ceilDiv(years, r.Interval)*r.Interval - r.Interval
	for {
		off += r.Interval
		if r.Count > 0 && off/r.Interval >= r.Count {
			return nil
		}
		cand := r.Start.Clone()
		cand.SetYear(r.Start.Year() + off)
		cand.SetNthWeekday(wd, nth)
		if until := r.untilOrNil(); until != nil && cand.CompareDate(until) > 0 {
			return nil
		}
		if cand.CompareDate(pivot) >= 0 {
			return cand
		}
	}
}
