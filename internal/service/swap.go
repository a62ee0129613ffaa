package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"rotation-manager-backend/internal/database/models"
	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/logger"
	"rotation-manager-backend/internal/repository"
	"rotation-manager-backend/internal/rotation"

	"github.com/go-playground/validator/v10"
)

// CreateSwapRequest represents the request to create a swap
type CreateSwapRequest struct {
	Requester string `json:"requester" binding:"required" validate:"required"`
	Target    string `json:"target" binding:"required" validate:"required"`
	Date      string `json:"date" binding:"required" validate:"required"`
	Reason    string `json:"reason" validate:"max=500"`
}

// SwapResponse represents a swap request in API responses
type SwapResponse struct {
	ID         string `json:"id"`
	Requester  string `json:"requester"`
	Target     string `json:"target"`
	Date       string `json:"date"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	ApprovedBy string `json:"approved_by,omitempty"`
}

// RejectionResponse reports why a swap request was not accepted
type RejectionResponse struct {
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// SwapService handles the swap request lifecycle. The in-memory ledger
// is the source of truth the schedule reads from; the repository is a
// write-through audit copy and survives restarts. A nil repository
// keeps the ledger purely in memory.
type SwapService struct {
	mu        sync.Mutex
	validator *rotation.Validator
	ledger    *rotation.Ledger
	swapRepo  *repository.SwapRepository
	engRepo   *repository.EngineerRepository
	validate  *validator.Validate
	log       *logger.Logger
}

// NewSwapService creates a new swap service
func NewSwapService(rotationValidator *rotation.Validator, ledger *rotation.Ledger, swapRepo *repository.SwapRepository, engRepo *repository.EngineerRepository, validate *validator.Validate, log *logger.Logger) *SwapService {
	return &SwapService{
		validator: rotationValidator,
		ledger:    ledger,
		swapRepo:  swapRepo,
		engRepo:   engRepo,
		validate:  validate,
		log:       log,
	}
}

// Reload rebuilds the ledger from persisted swap records. Called once
// at startup, before the service handles requests.
func (s *SwapService) Reload() error {
	if s.swapRepo == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.swapRepo.GetAllWithEngineers()
	if err != nil {
		return fmt.Errorf("reload swap ledger: %w", err)
	}

	for _, rec := range records {
		req := &rotation.SwapRequest{
			ID:        rec.SwapID,
			Requester: rec.Requester.Name,
			Target:    rec.Target.Name,
			Date:      rec.SwapDate.UTC(),
			Reason:    rec.Reason,
			Status:    rotation.SwapStatus(rec.Status),
			CreatedAt: rec.CreatedAt.UTC(),
		}
		if rec.ResolvedBy != "" {
			req.ApprovedBy = rec.ResolvedBy
		}
		s.ledger.Add(req)
	}

	s.log.WithField("swaps", len(records)).Info("swap ledger reloaded")
	return nil
}

// Request validates and registers a new swap request. A rejection is
// not an error: the request was well-formed but the swap is not
// allowed.
func (s *SwapService) Request(req *CreateSwapRequest) (*SwapResponse, *RejectionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, nil, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	swap, rejection := s.validator.Validate(req.Requester, req.Target, req.Date, req.Reason)
	if rejection != nil {
		s.log.WithFields(map[string]interface{}{
			"requester": req.Requester,
			"target":    req.Target,
			"date":      req.Date,
			"reason":    string(rejection.Reason),
		}).Info("swap request rejected")
		return nil, &RejectionResponse{
			Reason: string(rejection.Reason),
			Detail: rejection.Detail,
		}, nil
	}

	s.ledger.Add(swap)

	if err := s.persist(swap); err != nil {
		return nil, nil, err
	}

	s.log.WithField("swap_id", swap.ID).Info("swap request created")
	resp := toSwapResponse(*swap)
	return &resp, nil, nil
}

// Resolve approves or rejects a pending swap request
func (s *SwapService) Resolve(id, approver string, approve bool) (*SwapResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if approve {
		ok = s.ledger.Approve(id, approver)
	} else {
		ok = s.ledger.Reject(id, approver)
	}
	if !ok {
		return nil, apperrors.ErrSwapRequestNotFound
	}

	swap, _ := s.ledger.Get(id)

	if s.swapRepo != nil {
		status := models.SwapRecordStatusRejected
		if approve {
			status = models.SwapRecordStatusApproved
		}
		// A repeat resolve is a no-op on the ledger; the audit row is
		// already terminal then too.
		err := s.swapRepo.Resolve(id, status, approver)
		if err != nil && !errors.Is(err, apperrors.ErrSwapAlreadyResolved) {
			return nil, fmt.Errorf("persist swap resolution: %w", err)
		}
	}

	s.log.WithFields(map[string]interface{}{
		"swap_id":  id,
		"approver": approver,
		"status":   string(swap.Status),
	}).Info("swap request resolved")

	resp := toSwapResponse(swap)
	return &resp, nil
}

// Get returns one swap request by id
func (s *SwapService) Get(id string) (*SwapResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap, ok := s.ledger.Get(id)
	if !ok {
		return nil, apperrors.ErrSwapRequestNotFound
	}
	resp := toSwapResponse(swap)
	return &resp, nil
}

// List returns swap requests, optionally filtered by status, in
// insertion order
func (s *SwapService) List(status string) ([]SwapResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var swaps []rotation.SwapRequest
	switch status {
	case "":
		swaps = s.ledger.All()
	case string(rotation.StatusPending):
		swaps = s.ledger.Pending()
	case string(rotation.StatusApproved):
		swaps = s.ledger.Approved()
	default:
		if !rotation.SwapStatus(status).IsValid() {
			return nil, apperrors.NewValidationError("status", "must be pending, approved or rejected")
		}
		for _, swap := range s.ledger.All() {
			if swap.Status == rotation.SwapStatus(status) {
				swaps = append(swaps, swap)
			}
		}
	}

	out := make([]SwapResponse, 0, len(swaps))
	for _, swap := range swaps {
		out = append(out, toSwapResponse(swap))
	}
	return out, nil
}

// persist writes the accepted request through to the audit table.
func (s *SwapService) persist(swap *rotation.SwapRequest) error {
	if s.swapRepo == nil {
		return nil
	}

	requester, err := s.engRepo.GetByName(swap.Requester)
	if err != nil {
		return fmt.Errorf("lookup requester %q: %w", swap.Requester, err)
	}
	target, err := s.engRepo.GetByName(swap.Target)
	if err != nil {
		return fmt.Errorf("lookup target %q: %w", swap.Target, err)
	}

	record := &models.SwapRecord{
		SwapID:      swap.ID,
		RequesterID: requester.ID,
		TargetID:    target.ID,
		SwapDate:    swap.Date,
		Reason:      swap.Reason,
		Status:      models.SwapRecordStatus(swap.Status),
	}
	if err := s.swapRepo.Create(record); err != nil {
		return fmt.Errorf("persist swap request: %w", err)
	}
	return nil
}

func toSwapResponse(swap rotation.SwapRequest) SwapResponse {
	return SwapResponse{
		ID:         swap.ID,
		Requester:  swap.Requester,
		Target:     swap.Target,
		Date:       swap.Date.Format("2006-01-02"),
		Reason:     swap.Reason,
		Status:     string(swap.Status),
		CreatedAt:  swap.CreatedAt.UTC().Format(time.RFC3339),
		ApprovedBy: swap.ApprovedBy,
	}
}
