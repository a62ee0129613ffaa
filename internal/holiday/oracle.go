// Package holiday provides public-holiday lookup as an explicit
// capability owned by the caller. Providers are resolved per country
// code at configuration load time; there is no process-global state.
package holiday

import (
	"time"
)

//go:generate mockgen -source=oracle.go -destination=../mocks/holiday_mocks.go -package=mocks

// Oracle answers whether a date is a public holiday for an engineer's
// location. Lookups are synchronous and never perform I/O.
type Oracle interface {
	IsHoliday(date time.Time, country, region string) bool
}

// None is an Oracle that knows no holidays.
type None struct{}

// IsHoliday always returns false.
func (None) IsHoliday(time.Time, string, string) bool {
	return false
}

// Static is an Oracle backed by a fixed set of dates, applied to every
// location. Used for company-wide closure days and in tests.
type Static struct {
	dates map[string]bool
}

// NewStatic builds a Static oracle from YYYY-MM-DD date strings;
// unparseable entries are ignored.
func NewStatic(dates ...string) *Static {
	s := &Static{dates: make(map[string]bool, len(dates))}
	for _, d := range dates {
		if _, err := time.Parse("2006-01-02", d); err == nil {
			s.dates[d] = true
		}
	}
	return s
}

// IsHoliday reports whether the date is in the static set.
func (s *Static) IsHoliday(date time.Time, _, _ string) bool {
	return s.dates[date.Format("2006-01-02")]
}

// Union combines oracles; a date is a holiday if any member says so.
type Union []Oracle

// IsHoliday reports whether any member oracle considers the date a holiday.
func (u Union) IsHoliday(date time.Time, country, region string) bool {
	for _, o := range u {
		if o.IsHoliday(date, country, region) {
			return true
		}
	}
	return false
}
