package handlers

import (
	"errors"
	"net/http"

	"rotation-manager-backend/internal/auth"
	apperrors "rotation-manager-backend/internal/errors"
	"rotation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SwapHandler handles HTTP requests for swap requests
type SwapHandler struct {
	service *service.SwapService
}

// NewSwapHandler creates a new swap handler
func NewSwapHandler(service *service.SwapService) *SwapHandler {
	return &SwapHandler{service: service}
}

// CreateSwap submits a new swap request. A business-rule rejection
// returns 422 with the reason; only malformed requests are 400.
func (h *SwapHandler) CreateSwap(c *gin.Context) {
	var req service.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	swap, rejection, err := h.service.Request(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rejection != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     "swap request rejected",
			"rejection": rejection,
		})
		return
	}

	c.JSON(http.StatusCreated, swap)
}

// ListSwaps returns swap requests, optionally filtered by status
func (h *SwapHandler) ListSwaps(c *gin.Context) {
	swaps, err := h.service.List(c.Query("status"))
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"swaps": swaps})
}

// GetSwap returns one swap request by id
func (h *SwapHandler) GetSwap(c *gin.Context) {
	swap, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrSwapRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, swap)
}

// ApproveSwap approves a pending swap request
func (h *SwapHandler) ApproveSwap(c *gin.Context) {
	h.resolve(c, true)
}

// RejectSwap rejects a pending swap request
func (h *SwapHandler) RejectSwap(c *gin.Context) {
	h.resolve(c, false)
}

func (h *SwapHandler) resolve(c *gin.Context, approve bool) {
	approver, ok := auth.GetApprover(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "approver identity missing"})
		return
	}

	swap, err := h.service.Resolve(c.Param("id"), approver, approve)
	if err != nil {
		if errors.Is(err, apperrors.ErrSwapRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, swap)
}
