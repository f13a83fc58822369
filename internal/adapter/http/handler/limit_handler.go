package handler

import (
	"spendguard/internal/adapter/http/dto"
	"spendguard/internal/adapter/http/middleware"
	"spendguard/internal/core/domain"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"
	"spendguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// LimitHandler handles spending limit endpoints.
type LimitHandler struct {
	batchSvc       ports.BatchService
	enforcementSvc ports.EnforcementService
}

// NewLimitHandler creates a new LimitHandler.
func NewLimitHandler(batchSvc ports.BatchService, enforcementSvc ports.EnforcementService) *LimitHandler {
	return &LimitHandler{batchSvc: batchSvc, enforcementSvc: enforcementSvc}
}

// BatchUpdate handles POST /api/v1/limits/batch.
// Per-item failures come back as data inside the result, not as an
// HTTP error.
func (h *LimitHandler) BatchUpdate(c *gin.Context) {
	caller, ok := c.Get(middleware.CtxPrincipal)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.BatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	requests := make([]domain.SpendingLimitRequest, 0, len(req.Limits))
	for _, item := range req.Limits {
		requests = append(requests, domain.SpendingLimitRequest{
			User:         item.User,
			MonthlyLimit: item.MonthlyLimit,
			Category:     item.Category,
		})
	}

	result, err := h.batchSvc.BatchUpdateLimits(c.Request.Context(), caller.(string), requests)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBatchUpdateResponse(result))
}

// Enforce handles POST /api/v1/limits/enforce.
func (h *LimitHandler) Enforce(c *gin.Context) {
	var req dto.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.enforcementSvc.EnforceSpendingLimit(c.Request.Context(), req.User, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EnforceResponse{
		User:    req.User,
		Amount:  req.Amount,
		Allowed: true,
	})
}

// GetLimit handles GET /api/v1/limits/:user.
// A user with no configured limit yields a null payload, not an error.
func (h *LimitHandler) GetLimit(c *gin.Context) {
	user := c.Param("user")

	limit, err := h.enforcementSvc.GetSpendingLimit(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToLimitResponse(limit))
}
