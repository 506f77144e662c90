package acaldate

import (
	"fmt"
	"time"
)

// CalDate is a wall-clock calendar instant with independently mutable fields.
// Unlike time.Time it can hold dates that do not exist on the calendar
// (e.g. February 30), which recurrence walks rely on: a candidate is built
// field-by-field first and checked with IsValid afterwards.
type CalDate struct {
	year  int
	month int
	day   int
	hour  int
	min   int
	sec   int
}

// NewCalDate creates a CalDate from explicit field values. No validation is
// performed; use IsValid to test the result.
func NewCalDate(year, month, day, hour, min, sec int) *CalDate {
	return &CalDate{year: year, month: month, day: day, hour: hour, min: min, sec: sec}
}

// NewCalDateFromTime creates a CalDate from a time.Time, using its wall-clock fields.
func NewCalDateFromTime(t time.Time) *CalDate {
	return &CalDate{
		year:  t.Year(),
		month: int(t.Month()),
		day:   t.Day(),
		hour:  t.Hour(),
		min:   t.Minute(),
		sec:   t.Second(),
	}
}

// NewCalDateFromEpoch creates a CalDate from Unix epoch seconds (UTC).
func NewCalDateFromEpoch(secs int64) *CalDate {
	return NewCalDateFromTime(time.Unix(secs, 0).UTC())
}

// Clone returns a deep copy.
func (cd *CalDate) Clone() *CalDate {
	if cd == nil {
		return nil
	}
	c := *cd
	return &c
}

func (cd *CalDate) Year() int  { return cd.year }
func (cd *CalDate) Month() int { return cd.month }
func (cd *CalDate) Day() int   { return cd.day }
func (cd *CalDate) Hour() int  { return cd.hour }
func (cd *CalDate) Min() int   { return cd.min }
func (cd *CalDate) Sec() int   { return cd.sec }

func (cd *CalDate) SetYear(y int)  { cd.year = y }
func (cd *CalDate) SetMonth(m int) { cd.month = m }
func (cd *CalDate) SetDay(d int)   { cd.day = d }
func (cd *CalDate) SetHour(h int)  { cd.hour = h }
func (cd *CalDate) SetMin(m int)   { cd.min = m }
func (cd *CalDate) SetSec(s int)   { cd.sec = s }

// SetTimeOfDay sets the clock fields in one call.
func (cd *CalDate) SetTimeOfDay(hour, min, sec int) {
	cd.hour = hour
	cd.min = min
	cd.sec = sec
}

// Time converts to a time.Time in UTC. Invalid field combinations are
// normalized the way time.Date normalizes them.
func (cd *CalDate) Time() time.Time {
	return time.Date(cd.year, time.Month(cd.month), cd.day, cd.hour, cd.min, cd.sec, 0, time.UTC)
}

// dateTime is Time with the clock zeroed, for date-only arithmetic.
func (cd *CalDate) dateTime() time.Time {
	return time.Date(cd.year, time.Month(cd.month), cd.day, 0, 0, 0, 0, time.UTC)
}

// IsValid reports whether the fields name an existing calendar instant.
// February 30 or April 31 fail; so do out-of-range clock fields.
func (cd *CalDate) IsValid() bool {
	if cd == nil || cd.month < 1 || cd.month > 12 || cd.day < 1 {
		return false
	}
	if cd.hour < 0 || cd.hour > 23 || cd.min < 0 || cd.min > 59 || cd.sec < 0 || cd.sec > 59 {
		return false
	}
	return cd.day <= DaysInMonth(cd.year, cd.month)
}

// Weekday returns the day of week, 0=Sunday through 6=Saturday.
func (cd *CalDate) Weekday() time.Weekday {
	return cd.dateTime().Weekday()
}

// DayOfYear returns the ordinal day within the year, 1-366.
func (cd *CalDate) DayOfYear() int {
	return cd.dateTime().YearDay()
}

// WeekOfYear returns the ISO 8601 week number.
func (cd *CalDate) WeekOfYear() int {
	_, week := cd.dateTime().ISOWeek()
	return week
}

// WeekOfMonth returns the Sunday-based week number within the month:
// week 1 is the week containing the 1st, and a new week begins each Sunday.
func (cd *CalDate) WeekOfMonth() int {
	first := time.Date(cd.year, time.Month(cd.month), 1, 0, 0, 0, 0, time.UTC)
	return (cd.day+int(first.Weekday())-1)/7 + 1
}

// CompareDateTime orders two instants over all six fields.
// Returns -1, 0 or 1. Works on invalid dates too (plain field comparison).
func (cd *CalDate) CompareDateTime(o *CalDate) int {
	if c := cd.CompareDate(o); c != 0 {
		return c
	}
	a := cd.hour*3600 + cd.min*60 + cd.sec
	b := o.hour*3600 + o.min*60 + o.sec
	return cmpInt(a, b)
}

// CompareDate orders two instants by calendar day only.
func (cd *CalDate) CompareDate(o *CalDate) int {
	if c := cmpInt(cd.year, o.year); c != 0 {
		return c
	}
	if c := cmpInt(cd.month, o.month); c != 0 {
		return c
	}
	return cmpInt(cd.day, o.day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// DiffDays returns the number of whole days from cd to o, ignoring the clock.
// Positive when o is later.
func (cd *CalDate) DiffDays(o *CalDate) int {
	return int(o.dateTime().Sub(cd.dateTime()) / (24 * time.Hour))
}

// AddDays returns a new CalDate n days later (earlier for negative n),
// keeping the time of day.
func (cd *CalDate) AddDays(n int) *CalDate {
	t := cd.dateTime().AddDate(0, 0, n)
	return &CalDate{
		year:  t.Year(),
		month: int(t.Month()),
		day:   t.Day(),
		hour:  cd.hour,
		min:   cd.min,
		sec:   cd.sec,
	}
}

// AddMonths returns a new CalDate n months later, normalizing only the
// year and month. The day field is left untouched, so stepping from
// January 31 yields February 31; callers check IsValid on the result.
func (cd *CalDate) AddMonths(n int) *CalDate {
	c := cd.Clone()
	m := cd.month - 1 + n
	c.year = cd.year + floorDiv(m, 12)
	c.month = mod(m, 12) + 1
	return c
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// SetDayOfYear mutates month and day so that DayOfYear becomes n within the
// current year.
func (cd *CalDate) SetDayOfYear(n int) {
	t := time.Date(cd.year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
	cd.month = int(t.Month())
	cd.day = t.Day()
}

// SetNthWeekday mutates the day to the n-th occurrence (1-5) of weekday wd
// within the current month. When n is 5 and the month holds only four such
// weekdays, the last occurrence is used instead.
func (cd *CalDate) SetNthWeekday(wd time.Weekday, n int) {
	first := time.Date(cd.year, time.Month(cd.month), 1, 0, 0, 0, 0, time.UTC)
	day := 1 + int((wd-first.Weekday()+7)%7) + (n-1)*7
	last := DaysInMonth(cd.year, cd.month)
	for day > last {
		day -= 7
	}
	cd.day = day
}

// FirstDayOfISOWeek returns the Monday of the given ISO 8601 week.
func FirstDayOfISOWeek(week, year int) *CalDate {
	// January 4 is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	return NewCalDateFromTime(monday.AddDate(0, 0, (week-1)*7))
}

// IsLeapYear reports whether the year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayKey returns the zero-padded YYYYMMDD key for the calendar day.
func (cd *CalDate) DayKey() string {
	return fmt.Sprintf("%04d%02d%02d", cd.year, cd.month, cd.day)
}

func (cd *CalDate) String() string {
	if cd == nil {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", cd.year, cd.month, cd.day, cd.hour, cd.min, cd.sec)
}

// MarshalJSON encodes the date as its String form.
func (cd *CalDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + cd.String() + `"`), nil
}

// UnmarshalJSON decodes any layout accepted by Parse.
func (cd *CalDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("caldate: invalid JSON value %s", s)
	}
	parsed, err := Parse(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*cd = *parsed
	return nil
}
