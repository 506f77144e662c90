package arecur

import (
	"fmt"

	"github.com/jpfluger/arecur/acaldate"
)

// DayKey identifies a calendar day as a zero-padded YYYYMMDD string.
type DayKey string

// NewDayKey formats a DayKey from year, month and day.
func NewDayKey(year, month, day int) DayKey {
	return DayKey(fmt.Sprintf("%04d%02d%02d", year, month, day))
}

// NewDayKeyFromDate formats a DayKey for the date's calendar day.
func NewDayKeyFromDate(cd *acaldate.CalDate) DayKey {
	if cd == nil {
		return ""
	}
	return DayKey(cd.DayKey())
}

func (dk DayKey) IsEmpty() bool {
	return dk == ""
}

func (dk DayKey) String() string {
	return string(dk)
}

// DayKeys is a day-granular membership set. Duplicate entries are permitted
// and behave like a single entry.
type DayKeys []DayKey

// Has tests membership.
func (dks DayKeys) Has(dk DayKey) bool {
	for _, k := range dks {
		if k == dk {
			return true
		}
	}
	return false
}

// Add inserts a key.
func (dks *DayKeys) Add(dk DayKey) {
	if dk.IsEmpty() {
		return
	}
	*dks = append(*dks, dk)
}

// Delete removes every entry matching the key. Absent keys are a no-op.
func (dks *DayKeys) Delete(dk DayKey) {
	out := (*dks)[:0]
	for _, k := range *dks {
		if k != dk {
			out = append(out, k)
		}
	}
	*dks = out
}

// Clone returns a copy of the set.
func (dks DayKeys) Clone() DayKeys {
	if dks == nil {
		return nil
	}
	out := make(DayKeys, len(dks))
	copy(out, dks)
	return out
}

// ToStrings renders the keys as plain strings.
func (dks DayKeys) ToStrings() []string {
	if len(dks) == 0 {
		return nil
	}
	out := make([]string, len(dks))
	for i, k := range dks {
		out[i] = string(k)
	}
	return out
}

// DayKeysFromStrings builds a set from plain strings, skipping empties.
func DayKeysFromStrings(keys []string) DayKeys {
	var out DayKeys
	for _, k := range keys {
		if k != "" {
			out = append(out, DayKey(k))
		}
	}
	return out
}
