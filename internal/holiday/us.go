package holiday

import (
	"time"
)

// usProvider computes United States federal holidays plus a handful of
// state observances for the states the roster actually uses. Year
// tables are memoized per (year, state).
type usProvider struct {
	cache map[usKey]map[string]string
}

type usKey struct {
	year  int
	state string
}

func newUSProvider() *usProvider {
	return &usProvider{cache: make(map[usKey]map[string]string)}
}

func (p *usProvider) Holidays(year int, region string) map[string]string {
	k := usKey{year: year, state: region}
	if table, ok := p.cache[k]; ok {
		return table
	}

	table := make(map[string]string, 12)
	table[key(observed(ymd(year, time.January, 1)))] = "New Year's Day"
	table[key(nthWeekday(year, time.January, time.Monday, 3))] = "Martin Luther King Jr. Day"
	table[key(nthWeekday(year, time.February, time.Monday, 3))] = "Washington's Birthday"
	table[key(lastWeekday(year, time.May, time.Monday))] = "Memorial Day"
	table[key(observed(ymd(year, time.June, 19)))] = "Juneteenth"
	table[key(observed(ymd(year, time.July, 4)))] = "Independence Day"
	table[key(nthWeekday(year, time.September, time.Monday, 1))] = "Labor Day"
	table[key(nthWeekday(year, time.November, time.Thursday, 4))] = "Thanksgiving Day"
	table[key(observed(ymd(year, time.November, 11)))] = "Veterans Day"
	table[key(observed(ymd(year, time.December, 25)))] = "Christmas Day"

	switch region {
	case "CA":
		table[key(observed(ymd(year, time.March, 31)))] = "Cesar Chavez Day"
		table[key(nthWeekday(year, time.November, time.Thursday, 4).AddDate(0, 0, 1))] = "Day After Thanksgiving"
	case "TX":
		table[key(ymd(year, time.March, 2))] = "Texas Independence Day"
	case "MA":
		table[key(nthWeekday(year, time.April, time.Monday, 3))] = "Patriots' Day"
	}

	p.cache[k] = table
	return table
}
