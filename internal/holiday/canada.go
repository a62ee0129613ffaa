package holiday

import (
	"time"
)

// canadaProvider computes Canadian national holidays plus common
// provincial observances. Year tables are memoized per (year, province).
type canadaProvider struct {
	cache map[caKey]map[string]string
}

type caKey struct {
	year     int
	province string
}

func newCanadaProvider() *canadaProvider {
	return &canadaProvider{cache: make(map[caKey]map[string]string)}
}

func (p *canadaProvider) Holidays(year int, region string) map[string]string {
	k := caKey{year: year, province: region}
	if table, ok := p.cache[k]; ok {
		return table
	}

	easter := easterSunday(year)
	// Victoria Day is the Monday preceding May 25.
	victoria := ymd(year, time.May, 24)
	for victoria.Weekday() != time.Monday {
		victoria = victoria.AddDate(0, 0, -1)
	}
	// Boxing Day rolls forward, never back, so it cannot land on the
	// observed Christmas date.
	boxing := ymd(year, time.December, 26)
	for boxing.Weekday() == time.Saturday || boxing.Weekday() == time.Sunday {
		boxing = boxing.AddDate(0, 0, 1)
	}

	table := make(map[string]string, 10)
	table[key(observed(ymd(year, time.January, 1)))] = "New Year's Day"
	table[key(easter.AddDate(0, 0, -2))] = "Good Friday"
	table[key(victoria)] = "Victoria Day"
	table[key(observed(ymd(year, time.July, 1)))] = "Canada Day"
	table[key(nthWeekday(year, time.September, time.Monday, 1))] = "Labour Day"
	table[key(nthWeekday(year, time.October, time.Monday, 2))] = "Thanksgiving"
	table[key(observed(ymd(year, time.December, 25)))] = "Christmas Day"
	table[key(boxing)] = "Boxing Day"

	switch region {
	case "ON":
		table[key(nthWeekday(year, time.February, time.Monday, 3))] = "Family Day"
		table[key(nthWeekday(year, time.August, time.Monday, 1))] = "Civic Holiday"
	case "BC":
		table[key(nthWeekday(year, time.February, time.Monday, 3))] = "Family Day"
		table[key(nthWeekday(year, time.August, time.Monday, 1))] = "British Columbia Day"
	case "QC":
		table[key(observed(ymd(year, time.June, 24)))] = "Saint-Jean-Baptiste Day"
	}

	p.cache[k] = table
	return table
}
