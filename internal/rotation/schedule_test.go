package rotation_test

import (
	"testing"
	"time"

	"rotation-manager-backend/internal/rotation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStartDate(t *testing.T) {
	schedule := newTestSchedule(t)

	assert.Equal(t, testAnchor, schedule.WeekStartDate(0))
	assert.Equal(t, testAnchor.AddDate(0, 0, 21), schedule.WeekStartDate(3))
	assert.Equal(t, testAnchor.AddDate(0, 0, -28), schedule.WeekStartDate(-4))
}

func TestDefaultAnchorIsNextMonday(t *testing.T) {
	cycle, err := rotation.NewCycle(testConfig())
	require.NoError(t, err)

	// Thursday 2026-01-08; the following Monday is 2026-01-12.
	now := time.Date(2026, time.January, 8, 15, 30, 0, 0, time.UTC)
	schedule := rotation.NewSchedule(cycle, rotation.WithClock(func() time.Time { return now }))

	assert.Equal(t, time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), schedule.Anchor())

	// A Monday anchors to itself.
	monday := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)
	schedule = rotation.NewSchedule(cycle, rotation.WithClock(func() time.Time { return monday }))
	assert.Equal(t, time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), schedule.Anchor())
}

func TestOnCallEngineerRotation(t *testing.T) {
	schedule := newTestSchedule(t)

	engineers := schedule.Cycle().Engineers()
	for week := 0; week < 30; week++ {
		assert.Equal(t, engineers[week%6].Name, schedule.OnCallEngineer(week).Name)
	}

	// On-call cycle length is the team size, shorter than the fairness cycle.
	assert.Equal(t, "Alex", schedule.OnCallEngineer(0).Name)
	assert.Equal(t, "Alex", schedule.OnCallEngineer(6).Name)
	assert.Equal(t, "Blake", schedule.OnCallEngineer(7).Name)
	assert.Equal(t, "Fiona", schedule.OnCallEngineer(-1).Name)
}

func TestWeekScheduleRoster(t *testing.T) {
	schedule := newTestSchedule(t)

	week := schedule.WeekSchedule(0)

	// Mandatory day: the full team, on-call marked.
	assert.Equal(t, []string{"A*", "B", "C", "D", "E", "F"}, week["Tuesday"])

	// Alex is off Monday in the base pattern but is on-call, so still works.
	assert.Equal(t, []string{"A*", "B", "C", "D", "E", "F"}, week["Monday"])

	// Blake and Fiona are off Wednesday.
	assert.Equal(t, []string{"A*", "C", "D", "E"}, week["Wednesday"])
	assert.Equal(t, []string{"A*", "B", "D", "E", "F"}, week["Thursday"])
	assert.Equal(t, []string{"A*", "B", "C", "F"}, week["Friday"])
}

func TestWeekScheduleIdempotent(t *testing.T) {
	schedule := newTestSchedule(t)

	assert.Equal(t, schedule.WeekSchedule(5), schedule.WeekSchedule(5))
	assert.Equal(t, schedule.WeekSchedule(0), schedule.WeekSchedule(0))
}

func TestWeekForDate(t *testing.T) {
	schedule := newTestSchedule(t)

	testCases := []struct {
		name     string
		date     time.Time
		want     int
		inBounds bool
	}{
		{"anchor monday", testAnchor, 0, true},
		{"midweek", time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), 0, true},
		{"sunday of week zero", time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC), 0, true},
		{"next week", time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), 1, true},
		{"four weeks back", time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC), -4, true},
		{"before horizon", time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC), 0, false},
		{"last week in horizon", time.Date(2027, time.January, 3, 0, 0, 0, 0, time.UTC), 51, true},
		{"past horizon", time.Date(2027, time.January, 4, 0, 0, 0, 0, time.UTC), 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			week, ok := schedule.WeekForDate(tc.date)
			assert.Equal(t, tc.inBounds, ok)
			if tc.inBounds {
				assert.Equal(t, tc.want, week)
			}
		})
	}
}
