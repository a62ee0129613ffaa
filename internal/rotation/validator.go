package rotation

import (
	"fmt"
	"time"
)

// RejectionReason is the closed set of business-rule failures for a swap
// request. Rejections are returned as data, never as errors; user-facing
// messaging is the caller's concern.
type RejectionReason string

const (
	RejectInvalidDate     RejectionReason = "invalid date"
	RejectDateOutOfRange  RejectionReason = "date out of range"
	RejectUnknownEngineer RejectionReason = "unknown engineer"
	RejectOnCallConflict  RejectionReason = "on-call conflict"
	RejectNonRotationDay  RejectionReason = "non-rotation day"
	RejectWeekendDay      RejectionReason = "weekend day"
	RejectRedundantSwap   RejectionReason = "redundant swap"
)

// Rejection carries the reason plus a human-readable detail.
type Rejection struct {
	Reason RejectionReason
	Detail string
}

func (r *Rejection) String() string {
	return r.Detail
}

// Validator is the stateless rule-checker deciding whether a proposed
// swap is legal. It always reads the base pattern, never the
// swap-adjusted effective pattern, so the legality of a new request can
// never depend on other pending or approved swaps.
type Validator struct {
	schedule *Schedule
	clock    Clock
}

// NewValidator creates a validator over the given schedule.
func NewValidator(schedule *Schedule, opts ...ValidatorOption) *Validator {
	v := &Validator{
		schedule: schedule,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidatorOption customizes a Validator.
type ValidatorOption func(*Validator)

// WithValidatorClock overrides the time source used for CreatedAt stamps.
func WithValidatorClock(clock Clock) ValidatorOption {
	return func(v *Validator) { v.clock = clock }
}

// Validate applies the swap rules in fixed order, short-circuiting on
// the first failure. On success it returns a new pending SwapRequest;
// registering it in the ledger is the caller's responsibility.
func (v *Validator) Validate(requester, target, dateStr, reason string) (*SwapRequest, *Rejection) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		return nil, &Rejection{
			Reason: RejectInvalidDate,
			Detail: fmt.Sprintf("%q is not a valid date, expected YYYY-MM-DD", dateStr),
		}
	}

	week, ok := v.schedule.WeekForDate(date)
	if !ok {
		return nil, &Rejection{
			Reason: RejectDateOutOfRange,
			Detail: "date is too far in the past or future",
		}
	}

	cycle := v.schedule.Cycle()
	if _, ok := cycle.EngineerByName(requester); !ok {
		return nil, &Rejection{
			Reason: RejectUnknownEngineer,
			Detail: fmt.Sprintf("requester %q is not on the roster", requester),
		}
	}
	if _, ok := cycle.EngineerByName(target); !ok {
		return nil, &Rejection{
			Reason: RejectUnknownEngineer,
			Detail: fmt.Sprintf("target %q is not on the roster", target),
		}
	}

	oncall := v.schedule.OnCallEngineer(week)
	if requester == oncall.Name {
		return nil, &Rejection{
			Reason: RejectOnCallConflict,
			Detail: fmt.Sprintf("%s is on-call that week and cannot participate in swaps", requester),
		}
	}
	if target == oncall.Name {
		return nil, &Rejection{
			Reason: RejectOnCallConflict,
			Detail: fmt.Sprintf("%s is on-call that week and cannot participate in swaps", target),
		}
	}

	day := dayName(date)
	if isWeekend(date) {
		return nil, &Rejection{
			Reason: RejectWeekendDay,
			Detail: "cannot swap weekend days",
		}
	}
	if !v.isRotationDay(day) {
		return nil, &Rejection{
			Reason: RejectNonRotationDay,
			Detail: fmt.Sprintf("cannot swap %s, only rotation days can be swapped", day),
		}
	}

	pattern := v.schedule.RotationPattern(week)
	requesterOff := pattern[requester] == day
	targetOff := pattern[target] == day
	if requesterOff == targetOff {
		state := "working"
		if requesterOff {
			state = "off"
		}
		return nil, &Rejection{
			Reason: RejectRedundantSwap,
			Detail: fmt.Sprintf("both %s and %s are %s on %s, nothing to exchange", requester, target, state, day),
		}
	}

	return &SwapRequest{
		ID:        SwapID(requester, target, date),
		Requester: requester,
		Target:    target,
		Date:      midnight(date),
		Reason:    reason,
		Status:    StatusPending,
		CreatedAt: v.clock(),
	}, nil
}

func (v *Validator) isRotationDay(day string) bool {
	for _, d := range v.schedule.Cycle().RotationDays() {
		if d == day {
			return true
		}
	}
	return false
}
