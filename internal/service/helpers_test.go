package service_test

import (
	"testing"
	"time"

	"rotation-manager-backend/internal/rotation"

	"github.com/stretchr/testify/require"
)

var testAnchor = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func testClock() time.Time {
	return time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
}

func testConfig() rotation.Config {
	return rotation.Config{
		Engineers: []rotation.Engineer{
			{Name: "Alex", Letter: "A", Seniority: 1, Country: "US", Region: "CA"},
			{Name: "Blake", Letter: "B", Seniority: 2, Country: "US", Region: "CA"},
			{Name: "Casey", Letter: "C", Seniority: 3, Country: "US", Region: "CA"},
			{Name: "Dana", Letter: "D", Seniority: 4, Country: "CA", Region: "ON"},
			{Name: "Evan", Letter: "E", Seniority: 5, Country: "CA", Region: "ON"},
			{Name: "Fiona", Letter: "F", Seniority: 6, Country: "CA", Region: "BC"},
		},
		RotationDays: []string{"Monday", "Wednesday", "Thursday", "Friday"},
		MandatoryDay: "Tuesday",
	}
}

func newTestEngine(t *testing.T) (*rotation.Schedule, *rotation.Ledger) {
	t.Helper()
	cycle, err := rotation.NewCycle(testConfig())
	require.NoError(t, err)
	schedule := rotation.NewSchedule(cycle, rotation.WithAnchor(testAnchor))
	return schedule, rotation.NewLedger()
}
