package service_test

import (
	"testing"

	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/logger"
	"rotation-manager-backend/internal/rotation"
	"rotation-manager-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwapService(t *testing.T) (*service.SwapService, *rotation.Ledger) {
	schedule, ledger := newTestEngine(t)
	rules := rotation.NewValidator(schedule, rotation.WithValidatorClock(testClock))
	svc := service.NewSwapService(rules, ledger, nil, nil, validator.New(), logger.New())
	return svc, ledger
}

func TestRequestAcceptsValidSwap(t *testing.T) {
	svc, ledger := newSwapService(t)

	resp, rejection, err := svc.Request(&service.CreateSwapRequest{
		Requester: "Blake",
		Target:    "Casey",
		Date:      "2026-01-07",
		Reason:    "appointment",
	})
	require.NoError(t, err)
	require.Nil(t, rejection)

	assert.Equal(t, "Blake-Casey-2026-01-07", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "appointment", resp.Reason)

	_, ok := ledger.Get(resp.ID)
	assert.True(t, ok, "accepted request must be registered in the ledger")
}

func TestRequestReturnsRejectionNotError(t *testing.T) {
	svc, ledger := newSwapService(t)

	resp, rejection, err := svc.Request(&service.CreateSwapRequest{
		Requester: "Blake",
		Target:    "Casey",
		Date:      "2026-01-10", // Saturday
	})
	require.NoError(t, err)
	require.NotNil(t, rejection)
	assert.Nil(t, resp)
	assert.Equal(t, "weekend day", rejection.Reason)

	assert.Empty(t, ledger.All(), "rejected request must not enter the ledger")
}

func TestResolveApprove(t *testing.T) {
	svc, _ := newSwapService(t)

	created, rejection, err := svc.Request(&service.CreateSwapRequest{
		Requester: "Blake",
		Target:    "Casey",
		Date:      "2026-01-07",
	})
	require.NoError(t, err)
	require.Nil(t, rejection)

	resolved, err := svc.Resolve(created.ID, "morgan", true)
	require.NoError(t, err)
	assert.Equal(t, "approved", resolved.Status)
	assert.Equal(t, "morgan", resolved.ApprovedBy)
}

func TestResolveUnknownID(t *testing.T) {
	svc, _ := newSwapService(t)

	_, err := svc.Resolve("Blake-Casey-2026-01-07", "morgan", true)
	assert.ErrorIs(t, err, apperrors.ErrSwapRequestNotFound)
}

func TestResolveIsTerminal(t *testing.T) {
	svc, _ := newSwapService(t)

	created, _, err := svc.Request(&service.CreateSwapRequest{
		Requester: "Blake",
		Target:    "Casey",
		Date:      "2026-01-07",
	})
	require.NoError(t, err)

	_, err = svc.Resolve(created.ID, "morgan", true)
	require.NoError(t, err)

	// A later reject is a no-op; the approval stands.
	resolved, err := svc.Resolve(created.ID, "sam", false)
	require.NoError(t, err)
	assert.Equal(t, "approved", resolved.Status)
	assert.Equal(t, "morgan", resolved.ApprovedBy)
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _ := newSwapService(t)

	first, _, err := svc.Request(&service.CreateSwapRequest{
		Requester: "Blake", Target: "Casey", Date: "2026-01-07",
	})
	require.NoError(t, err)
	_, _, err = svc.Request(&service.CreateSwapRequest{
		Requester: "Dana", Target: "Fiona", Date: "2026-01-09",
	})
	require.NoError(t, err)

	_, err = svc.Resolve(first.ID, "morgan", true)
	require.NoError(t, err)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := svc.List("approved")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)

	pending, err := svc.List("pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	rejected, err := svc.List("rejected")
	require.NoError(t, err)
	assert.Empty(t, rejected)

	_, err = svc.List("bogus")
	assert.True(t, apperrors.IsValidation(err))
}

func TestGet(t *testing.T) {
	svc, _ := newSwapService(t)

	created, _, err := svc.Request(&service.CreateSwapRequest{
		Requester: "Blake", Target: "Casey", Date: "2026-01-07",
	})
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, apperrors.ErrSwapRequestNotFound)
}
