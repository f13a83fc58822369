package handler

import (
	"spendguard/internal/adapter/http/dto"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"
	"spendguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// FraudHandler handles fraud screening endpoints.
type FraudHandler struct {
	fraudSvc ports.FraudService
}

// NewFraudHandler creates a new FraudHandler.
func NewFraudHandler(fraudSvc ports.FraudService) *FraudHandler {
	return &FraudHandler{fraudSvc: fraudSvc}
}

// Check handles POST /api/v1/fraud/check.
// A flagged transaction is still a 200; the flag is advisory.
func (h *FraudHandler) Check(c *gin.Context) {
	var req dto.FraudCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.fraudSvc.CheckTransaction(c.Request.Context(), req.User, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FraudCheckResponse{
		Flagged:    result.Flagged,
		Reasons:    result.Reasons,
		DailyTotal: result.DailyTotal,
	})
}
