package arecur

import (
	"testing"
	"time"

	"github.com/jpfluger/arecur/acaldate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromVCalDaily(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-01 09:00:00"))
	r.FromVCal("D2 #3")

	assert.Equal(t, RECURTYPE_DAILY, r.Type)
	assert.Equal(t, 2, r.Interval)
	assert.Equal(t, 3, r.Count)
	assert.Nil(t, r.Until)
}

func TestFromVCalDailyUnbounded(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-01 09:00:00"))
	r.FromVCal("D1 #0")

	assert.Equal(t, RECURTYPE_DAILY, r.Type)
	assert.Equal(t, 1, r.Interval)
	assert.Equal(t, 0, r.Count) // #0 means unbounded
	assert.Nil(t, r.Until)
}

func TestFromVCalWeekly(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-05 10:00:00"))
	r.FromVCal("W2 MO TH 20090701T000000")

	assert.Equal(t, RECURTYPE_WEEKLY, r.Type)
	assert.Equal(t, 2, r.Interval)
	assert.Equal(t, (1<<1)|(1<<4), r.WeekdayMask)
	require.NotNil(t, r.Until)
	// Wire value is the day after the inclusive end.
	assert.Equal(t, "2009-06-30T00:00:00", r.Until.String())
	assert.Equal(t, 0, r.Count)
}

func TestFromVCalWeeklyDefaultsToAnchorWeekday(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-05 10:00:00")) // Monday
	r.FromVCal("W1 #5")

	assert.Equal(t, RECURTYPE_WEEKLY, r.Type)
	assert.Equal(t, 1<<1, r.WeekdayMask)
	assert.Equal(t, 5, r.Count)
}

func TestFromVCalMonthlyByWeekday(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-12 00:00:00"))
	r.FromVCal("MP1 2+ MO #0")

	assert.Equal(t, RECURTYPE_MONTHLY_BYWEEKDAY, r.Type)
	assert.Equal(t, 1, r.Interval)
	assert.Equal(t, 0, r.Count)
}

func TestFromVCalMonthlyByDate(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-31 00:00:00"))
	r.FromVCal("MD1 31 #2")

	assert.Equal(t, RECURTYPE_MONTHLY_BYDATE, r.Type)
	assert.Equal(t, 2, r.Count)
}

func TestFromVCalYearly(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-06-15 00:00:00"))
	r.FromVCal("YM1 6 20100101T000000")
	assert.Equal(t, RECURTYPE_YEARLY_BYDATE, r.Type)
	require.NotNil(t, r.Until)
	assert.Equal(t, "2009-12-31", r.Until.String()[:10])

	r = NewRecurrence(acaldate.MustParse("2009-04-10 00:00:00"))
	r.FromVCal("YD3 100 #4")
	assert.Equal(t, RECURTYPE_YEARLY_BYYEARDAY, r.Type)
	assert.Equal(t, 3, r.Interval)
	assert.Equal(t, 4, r.Count)
}

func TestFromVCalUnrecognized(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-05 10:00:00"))
	r.SetType(RECURTYPE_DAILY)

	r.FromVCal("")
	assert.Equal(t, RECURTYPE_NONE, r.Type)

	r.FromVCal("FREQ=DAILY") // iCalendar syntax is not a vCalendar rule
	assert.Equal(t, RECURTYPE_NONE, r.Type)
}

func TestToVCalDaily(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-01 09:00:00"))
	r.SetType(RECURTYPE_DAILY)
	r.SetInterval(2)
	r.SetCount(3)
	assert.Equal(t, "D2 #3", r.ToVCal())

	r.SetCount(0)
	assert.Equal(t, "D2 #0", r.ToVCal())
}

func TestToVCalWeeklyRoundTrip(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-05 10:00:00"))
	r.SetType(RECURTYPE_WEEKLY)
	r.SetInterval(2)
	r.AddWeekday(time.Monday)
	r.AddWeekday(time.Thursday)
	r.SetUntil(acaldate.MustParse("2009-06-30"))

	line := r.ToVCal()
	assert.Equal(t, "W2 MO TH 20090701T000000", line)

	back := NewRecurrence(r.Start)
	back.FromVCal(line)
	assert.Equal(t, r.Type, back.Type)
	assert.Equal(t, r.Interval, back.Interval)
	assert.Equal(t, r.WeekdayMask, back.WeekdayMask)
	require.NotNil(t, back.Until)
	assert.Equal(t, 0, r.Until.CompareDateTime(back.Until))
	assert.Equal(t, 0, back.Count)
}

func TestToVCalMonthlyByWeekday(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-12 00:00:00")) // 2nd Monday
	r.SetType(RECURTYPE_MONTHLY_BYWEEKDAY)
	assert.Equal(t, "MP1 2+ MO #0", r.ToVCal())

	// An anchor in the month's last seven days emits slot 5.
	r = NewRecurrence(acaldate.MustParse("2009-01-26 00:00:00")) // last Monday
	r.SetType(RECURTYPE_MONTHLY_BYWEEKDAY)
	assert.Equal(t, "MP1 5+ MO #0", r.ToVCal())
}

func TestToVCalOtherKinds(t *testing.T) {
	r := NewRecurrence(acaldate.MustParse("2009-01-31 00:00:00"))
	r.SetType(RECURTYPE_MONTHLY_BYDATE)
	assert.Equal(t, "MD1 31 #0", r.ToVCal())

	r = NewRecurrence(acaldate.MustParse("2009-06-15 00:00:00"))
	r.SetType(RECURTYPE_YEARLY_BYDATE)
	assert.Equal(t, "YM1 6 #0", r.ToVCal())

	r = NewRecurrence(acaldate.MustParse("2009-04-10 00:00:00"))
	r.SetType(RECURTYPE_YEARLY_BYYEARDAY)
	r.SetInterval(3)
	assert.Equal(t, "YD3 100 #0", r.ToVCal())

	// Kinds the line format cannot carry yield nothing.
	r.SetType(RECURTYPE_YEARLY_BYWEEKDAY)
	assert.Equal(t, "", r.ToVCal())
	r.SetType(RECURTYPE_NONE)
	assert.Equal(t, "", r.ToVCal())
}

func TestVCalRoundTripAllTags(t *testing.T) {
	for _, tc := range []struct {
		start string
		rt    RecurType
	}{
		{"2009-01-01 09:00:00", RECURTYPE_DAILY},
		{"2009-01-05 10:00:00", RECURTYPE_WEEKLY},
		{"2009-01-12 00:00:00", RECURTYPE_MONTHLY_BYWEEKDAY},
		{"2009-01-31 00:00:00", RECURTYPE_MONTHLY_BYDATE},
		{"2009-06-15 00:00:00", RECURTYPE_YEARLY_BYDATE},
		{"2009-04-10 00:00:00", RECURTYPE_YEARLY_BYYEARDAY},
	} {
		r := NewRecurrence(acaldate.MustParse(tc.start))
		r.SetType(tc.rt)
		r.SetInterval(2)
		r.SetCount(7)
		if tc.rt == RECURTYPE_WEEKLY {
			r.AddWeekday(time.Monday)
			r.AddWeekday(time.Friday)
		}

		back := NewRecurrence(r.Start)
		back.FromVCal(r.ToVCal())
		assert.Equal(t, r.Type, back.Type, string(tc.rt))
		assert.Equal(t, r.Interval, back.Interval, string(tc.rt))
		assert.Equal(t, r.Count, back.Count, string(tc.rt))
		if tc.rt == RECURTYPE_WEEKLY {
			assert.Equal(t, r.WeekdayMask, back.WeekdayMask)
		}
	}
}
