package rotation

import (
	"fmt"
	"time"
)

// SwapStatus is the lifecycle state of a swap request.
type SwapStatus string

const (
	StatusPending  SwapStatus = "pending"
	StatusApproved SwapStatus = "approved"
	StatusRejected SwapStatus = "rejected"
)

// IsValid checks if the SwapStatus is valid
func (s SwapStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// SwapRequest is a request for two engineers to exchange day-off
// assignments for the single week containing Date. Once created only
// Status and ApprovedBy mutate; requests are never deleted.
type SwapRequest struct {
	ID         string
	Requester  string
	Target     string
	Date       time.Time
	Reason     string
	Status     SwapStatus
	CreatedAt  time.Time
	ApprovedBy string
}

// SwapID derives the stable identifier for a requester/target/date
// combination.
func SwapID(requester, target string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%s", requester, target, date.Format("2006-01-02"))
}
