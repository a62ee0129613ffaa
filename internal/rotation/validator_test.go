package rotation_test

import (
	"testing"
	"time"

	"rotation-manager-backend/internal/rotation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *rotation.Validator {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC) }
	return rotation.NewValidator(newTestSchedule(t), rotation.WithValidatorClock(clock))
}

// Week 0 base pattern (anchor 2026-01-05): Alex=Monday, Blake=Wednesday,
// Casey=Thursday, Dana=Friday, Evan=Friday, Fiona=Wednesday. Alex is
// on-call.

func TestValidateSuccess(t *testing.T) {
	validator := newTestValidator(t)

	// Blake is off Wednesday, Casey works it.
	req, rej := validator.Validate("Blake", "Casey", "2026-01-07", "appointment")
	require.Nil(t, rej)
	require.NotNil(t, req)

	assert.Equal(t, "Blake-Casey-2026-01-07", req.ID)
	assert.Equal(t, rotation.StatusPending, req.Status)
	assert.Equal(t, "Blake", req.Requester)
	assert.Equal(t, "Casey", req.Target)
	assert.Equal(t, "appointment", req.Reason)
	assert.Empty(t, req.ApprovedBy)
	assert.Equal(t, time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), req.Date)
}

func TestValidateSuccessTargetOff(t *testing.T) {
	validator := newTestValidator(t)

	// Symmetric case: requester works the day, target is off.
	req, rej := validator.Validate("Casey", "Blake", "2026-01-07", "")
	require.Nil(t, rej)
	assert.Equal(t, rotation.StatusPending, req.Status)
}

func TestValidateRejections(t *testing.T) {
	validator := newTestValidator(t)

	testCases := []struct {
		name      string
		requester string
		target    string
		date      string
		reason    rotation.RejectionReason
	}{
		{"malformed date", "Blake", "Casey", "01/07/2026", rotation.RejectInvalidDate},
		{"nonsense date", "Blake", "Casey", "2026-13-40", rotation.RejectInvalidDate},
		{"far future", "Blake", "Casey", "2030-01-01", rotation.RejectDateOutOfRange},
		{"far past", "Blake", "Casey", "2025-11-01", rotation.RejectDateOutOfRange},
		{"unknown requester", "Zoe", "Casey", "2026-01-07", rotation.RejectUnknownEngineer},
		{"unknown target", "Blake", "Zoe", "2026-01-07", rotation.RejectUnknownEngineer},
		{"requester on-call", "Alex", "Casey", "2026-01-07", rotation.RejectOnCallConflict},
		{"target on-call", "Blake", "Alex", "2026-01-07", rotation.RejectOnCallConflict},
		{"mandatory tuesday", "Blake", "Casey", "2026-01-06", rotation.RejectNonRotationDay},
		{"saturday", "Blake", "Casey", "2026-01-10", rotation.RejectWeekendDay},
		{"sunday", "Blake", "Casey", "2026-01-11", rotation.RejectWeekendDay},
		{"both off", "Blake", "Fiona", "2026-01-07", rotation.RejectRedundantSwap},
		{"both working", "Blake", "Casey", "2026-01-05", rotation.RejectRedundantSwap},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, rej := validator.Validate(tc.requester, tc.target, tc.date, "because")
			assert.Nil(t, req)
			require.NotNil(t, rej)
			assert.Equal(t, tc.reason, rej.Reason)
			assert.NotEmpty(t, rej.Detail)
		})
	}
}

func TestValidateTuesdayAlwaysRejected(t *testing.T) {
	validator := newTestValidator(t)

	// Evan and Fiona are not on-call during these weeks, so every Tuesday
	// fails on the weekday rule regardless of the roster state.
	for week := 0; week < 4; week++ {
		date := testAnchor.AddDate(0, 0, 7*week+1).Format("2006-01-02")
		_, rej := validator.Validate("Evan", "Fiona", date, "")
		require.NotNil(t, rej, "week %d", week)
		assert.Equal(t, rotation.RejectNonRotationDay, rej.Reason)
	}
}

func TestValidateReadsBasePatternOnly(t *testing.T) {
	schedule := newTestSchedule(t)
	validator := rotation.NewValidator(schedule)
	ledger := rotation.NewLedger()

	// Approve a swap moving Blake off Wednesday to Thursday...
	req, rej := validator.Validate("Blake", "Casey", "2026-01-07", "")
	require.Nil(t, rej)
	ledger.Add(req)
	require.True(t, ledger.Approve(req.ID, "Morgan"))

	// ...validation of the same exchange still reads the base pattern, so
	// the outcome is unchanged by the approved swap.
	again, rej := validator.Validate("Blake", "Casey", "2026-01-07", "")
	require.Nil(t, rej)
	assert.Equal(t, req.ID, again.ID)
}
