package holiday_test

import (
	"testing"
	"time"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/holiday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRegistryFailsFastOnUnknownCode(t *testing.T) {
	_, err := holiday.NewRegistry("US", "XX")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedHolidayCode)
	assert.Contains(t, err.Error(), "XX")
}

func TestNewRegistryAcceptsLowercaseAndDuplicates(t *testing.T) {
	registry, err := holiday.NewRegistry("us", "US", "ca")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"US", "CA"}, registry.Supported())
}

func TestUSFederalHolidays(t *testing.T) {
	registry, err := holiday.NewRegistry("US")
	require.NoError(t, err)

	testCases := []struct {
		name string
		date time.Time
	}{
		{"new year's day", date(2026, time.January, 1)},
		{"mlk day", date(2026, time.January, 19)},
		{"memorial day", date(2026, time.May, 25)},
		{"independence day observed", date(2026, time.July, 3)}, // Jul 4 is a Saturday
		{"labor day", date(2026, time.September, 7)},
		{"thanksgiving", date(2026, time.November, 26)},
		{"christmas", date(2026, time.December, 25)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, registry.IsHoliday(tc.date, "US", ""), "%s should be a holiday", tc.date)
		})
	}

	assert.False(t, registry.IsHoliday(date(2026, time.January, 7), "US", ""))
	assert.False(t, registry.IsHoliday(date(2026, time.July, 4), "US", ""), "the weekend date itself is not the observed holiday")
}

func TestUSStateHolidays(t *testing.T) {
	registry, err := holiday.NewRegistry("US")
	require.NoError(t, err)

	chavez := date(2026, time.March, 31)
	assert.True(t, registry.IsHoliday(chavez, "US", "CA"))
	assert.False(t, registry.IsHoliday(chavez, "US", "NY"))

	dayAfterThanksgiving := date(2026, time.November, 27)
	assert.True(t, registry.IsHoliday(dayAfterThanksgiving, "US", "CA"))
	assert.False(t, registry.IsHoliday(dayAfterThanksgiving, "US", ""))
}

func TestCanadaHolidays(t *testing.T) {
	registry, err := holiday.NewRegistry("CA")
	require.NoError(t, err)

	assert.True(t, registry.IsHoliday(date(2026, time.April, 3), "CA", ""), "Good Friday 2026")
	assert.True(t, registry.IsHoliday(date(2026, time.May, 18), "CA", ""), "Victoria Day 2026")
	assert.True(t, registry.IsHoliday(date(2026, time.July, 1), "CA", ""), "Canada Day")
	assert.True(t, registry.IsHoliday(date(2026, time.October, 12), "CA", ""), "Canadian Thanksgiving")

	// Family Day is provincial.
	familyDay := date(2026, time.February, 16)
	assert.True(t, registry.IsHoliday(familyDay, "CA", "ON"))
	assert.True(t, registry.IsHoliday(familyDay, "CA", "BC"))
	assert.False(t, registry.IsHoliday(familyDay, "CA", ""))
}

func TestHolidayName(t *testing.T) {
	registry, err := holiday.NewRegistry("US")
	require.NoError(t, err)

	assert.Equal(t, "Thanksgiving Day", registry.HolidayName(date(2026, time.November, 26), "US", ""))
	assert.Empty(t, registry.HolidayName(date(2026, time.November, 26), "FR", ""))
	assert.Empty(t, registry.HolidayName(date(2026, time.January, 7), "US", ""))
}

func TestRegistryUnknownCountryReportsNoHolidays(t *testing.T) {
	registry, err := holiday.NewRegistry("US")
	require.NoError(t, err)

	assert.False(t, registry.IsHoliday(date(2026, time.January, 1), "CA", "ON"))
}

func TestStaticOracle(t *testing.T) {
	oracle := holiday.NewStatic("2026-12-24", "not-a-date")

	assert.True(t, oracle.IsHoliday(date(2026, time.December, 24), "US", "CA"))
	assert.True(t, oracle.IsHoliday(date(2026, time.December, 24), "CA", "ON"), "static dates apply to every location")
	assert.False(t, oracle.IsHoliday(date(2026, time.December, 23), "US", "CA"))
}

func TestUnionOracle(t *testing.T) {
	registry, err := holiday.NewRegistry("US")
	require.NoError(t, err)
	company := holiday.NewStatic("2026-12-24")

	oracle := holiday.Union{registry, company}

	assert.True(t, oracle.IsHoliday(date(2026, time.December, 24), "US", "CA"), "company closure")
	assert.True(t, oracle.IsHoliday(date(2026, time.December, 25), "US", "CA"), "federal holiday")
	assert.False(t, oracle.IsHoliday(date(2026, time.December, 23), "US", "CA"))
}

func TestNoneOracle(t *testing.T) {
	assert.False(t, holiday.None{}.IsHoliday(date(2026, time.December, 25), "US", "CA"))
}
