package service_test

import (
	"testing"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/holiday"
	"rotation-manager-backend/internal/rotation"
	"rotation-manager-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleService(t *testing.T) (*service.ScheduleService, *rotation.Schedule, *rotation.Ledger) {
	schedule, ledger := newTestEngine(t)
	svc := service.NewScheduleService(schedule, ledger, holiday.None{}, 52, 104)
	return svc, schedule, ledger
}

func TestWeekRendersFullView(t *testing.T) {
	svc, _, _ := newScheduleService(t)

	week, err := svc.Week(0)
	require.NoError(t, err)

	assert.Equal(t, 0, week.Week)
	assert.Equal(t, "2026-01-05", week.StartDate)
	assert.Equal(t, "Alex", week.OnCall.Name)
	assert.Equal(t, []string{"A*", "B", "C", "D", "E", "F"}, week.Days["Tuesday"])
	assert.Equal(t, "Monday", week.Pattern["Alex"])
	assert.Empty(t, week.Adjustments)
}

func TestWeekHorizonBounds(t *testing.T) {
	svc, _, _ := newScheduleService(t)

	_, err := svc.Week(-4)
	assert.NoError(t, err)

	_, err = svc.Week(-5)
	assert.ErrorIs(t, err, apperrors.ErrWeekOutOfHorizon)

	_, err = svc.Week(103)
	assert.NoError(t, err)

	_, err = svc.Week(104)
	assert.ErrorIs(t, err, apperrors.ErrWeekOutOfHorizon)
}

func TestWeekDaysFollowApprovedSwaps(t *testing.T) {
	svc, schedule, ledger := newScheduleService(t)

	validator := rotation.NewValidator(schedule, rotation.WithValidatorClock(testClock))
	swap, rejection := validator.Validate("Blake", "Casey", "2026-01-07", "")
	require.Nil(t, rejection)
	ledger.Add(swap)
	require.True(t, ledger.Approve(swap.ID, "morgan"))

	week, err := svc.Week(0)
	require.NoError(t, err)

	// Blake works Wednesday now and takes Casey's Thursday instead.
	assert.Equal(t, "Thursday", week.Pattern["Blake"])
	assert.Equal(t, []string{"A*", "B", "D", "E"}, week.Days["Wednesday"])
	assert.Equal(t, []string{"A*", "C", "D", "E", "F"}, week.Days["Thursday"])
}

func TestPatternLayers(t *testing.T) {
	svc, schedule, ledger := newScheduleService(t)

	// Approve a swap so base and effective diverge.
	validator := rotation.NewValidator(schedule, rotation.WithValidatorClock(testClock))
	swap, rejection := validator.Validate("Blake", "Casey", "2026-01-07", "")
	require.Nil(t, rejection)
	ledger.Add(swap)
	require.True(t, ledger.Approve(swap.ID, "morgan"))

	base, err := svc.Pattern(0, service.PatternLayerBase)
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", base.Pattern["Blake"])
	assert.Equal(t, "Thursday", base.Pattern["Casey"])

	effective, err := svc.Pattern(0, service.PatternLayerEffective)
	require.NoError(t, err)
	assert.Equal(t, "Thursday", effective.Pattern["Blake"])
	assert.Equal(t, "Wednesday", effective.Pattern["Casey"])
}

func TestPatternRejectsUnknownLayer(t *testing.T) {
	svc, _, _ := newScheduleService(t)

	_, err := svc.Pattern(0, "partial")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestOnCall(t *testing.T) {
	svc, _, _ := newScheduleService(t)

	oncall, err := svc.OnCall(7)
	require.NoError(t, err)
	assert.Equal(t, "Blake", oncall.Engineer.Name)
	assert.Equal(t, "2026-02-23", oncall.StartDate)
}

func TestWeekForDate(t *testing.T) {
	svc, _, _ := newScheduleService(t)

	week, err := svc.WeekForDate("2026-01-14")
	require.NoError(t, err)
	assert.Equal(t, 1, week)

	_, err = svc.WeekForDate("2031-01-01")
	assert.ErrorIs(t, err, apperrors.ErrWeekNotFound)

	_, err = svc.WeekForDate("not-a-date")
	assert.True(t, apperrors.IsValidation(err))
}

func TestEngineersReturnsRosterInOrder(t *testing.T) {
	svc, _, _ := newScheduleService(t)

	engineers := svc.Engineers()
	require.Len(t, engineers, 6)
	assert.Equal(t, "Alex", engineers[0].Name)
	assert.Equal(t, "Fiona", engineers[5].Name)
}

func TestFairnessCoversWholeCycle(t *testing.T) {
	svc, _, _ := newScheduleService(t)

	fairness := svc.Fairness()
	assert.Equal(t, 24, fairness.CycleWeeks)
	require.Len(t, fairness.Engineers, 6)

	// One day off per week, except the 4 on-call weeks which carry none.
	for name, days := range fairness.Engineers {
		total := 0
		for _, count := range days {
			total += count
		}
		assert.Equal(t, 20, total, "engineer %s day-off share", name)
	}

	// 24 on-call weeks split evenly across a 6-engineer roster.
	require.Len(t, fairness.OnCall, 6)
	for name, weeks := range fairness.OnCall {
		assert.Equal(t, 4, weeks, "engineer %s on-call share", name)
	}
}
