package rotation

import (
	"time"
)

// Ledger stores swap requests and advances their status. It is not
// internally synchronized: callers that mutate concurrently must
// serialize writes themselves.
type Ledger struct {
	swaps []*SwapRequest
	byID  map[string]*SwapRequest
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		byID: make(map[string]*SwapRequest),
	}
}

// Add registers a request, keeping insertion order. A request with a
// duplicate id replaces nothing and is ignored.
func (l *Ledger) Add(req *SwapRequest) {
	if req == nil {
		return
	}
	if _, exists := l.byID[req.ID]; exists {
		return
	}
	l.swaps = append(l.swaps, req)
	l.byID[req.ID] = req
}

// Approve marks a pending request approved and records the approver.
// Returns false only when the id is unknown; transitions are terminal,
// so repeated calls on a resolved request are no-ops.
func (l *Ledger) Approve(id, approver string) bool {
	return l.resolve(id, approver, StatusApproved)
}

// Reject marks a pending request rejected and records the approver.
// Returns false only when the id is unknown.
func (l *Ledger) Reject(id, approver string) bool {
	return l.resolve(id, approver, StatusRejected)
}

func (l *Ledger) resolve(id, approver string, status SwapStatus) bool {
	swap, ok := l.byID[id]
	if !ok {
		return false
	}
	if swap.Status == StatusPending {
		swap.Status = status
		swap.ApprovedBy = approver
	}
	return true
}

// Get returns a copy of the request with the given id.
func (l *Ledger) Get(id string) (SwapRequest, bool) {
	swap, ok := l.byID[id]
	if !ok {
		return SwapRequest{}, false
	}
	return *swap, true
}

// Pending returns pending requests in insertion order.
func (l *Ledger) Pending() []SwapRequest {
	return l.byStatus(StatusPending)
}

// Approved returns approved requests in insertion order.
func (l *Ledger) Approved() []SwapRequest {
	return l.byStatus(StatusApproved)
}

// All returns every request regardless of status, in insertion order.
func (l *Ledger) All() []SwapRequest {
	out := make([]SwapRequest, 0, len(l.swaps))
	for _, swap := range l.swaps {
		out = append(out, *swap)
	}
	return out
}

func (l *Ledger) byStatus(status SwapStatus) []SwapRequest {
	var out []SwapRequest
	for _, swap := range l.swaps {
		if swap.Status == status {
			out = append(out, *swap)
		}
	}
	return out
}

// EffectivePattern folds the approved swaps whose date falls within the
// 7-day span starting at weekStart into the base pattern: requester and
// target exchange their currently-assigned day-off for that week only.
// Overlapping swaps for the same engineer are applied sequentially in
// insertion order with no conflict detection.
func (l *Ledger) EffectivePattern(weekStart time.Time, base BasePattern) BasePattern {
	pattern := base.clone()
	start := midnight(weekStart)
	end := start.AddDate(0, 0, 7)

	for _, swap := range l.swaps {
		if swap.Status != StatusApproved {
			continue
		}
		if swap.Date.Before(start) || !swap.Date.Before(end) {
			continue
		}
		requesterDay, okR := pattern[swap.Requester]
		targetDay, okT := pattern[swap.Target]
		if !okR || !okT {
			continue
		}
		pattern[swap.Requester] = targetDay
		pattern[swap.Target] = requesterDay
	}

	return pattern
}
