package handler

import (
	"spendguard/internal/adapter/http/dto"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"
	"spendguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// DelegationHandler handles delegated allowance endpoints.
type DelegationHandler struct {
	delegationSvc ports.DelegationService
}

// NewDelegationHandler creates a new DelegationHandler.
func NewDelegationHandler(delegationSvc ports.DelegationService) *DelegationHandler {
	return &DelegationHandler{delegationSvc: delegationSvc}
}

// Set handles POST /api/v1/delegations.
func (h *DelegationHandler) Set(c *gin.Context) {
	var req dto.DelegationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.delegationSvc.SetDelegation(c.Request.Context(), req.Owner, req.Delegate, req.Limit); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.DelegationResponse{
		Owner:     req.Owner,
		Delegate:  req.Delegate,
		Limit:     req.Limit,
		Remaining: req.Limit,
	})
}

// Consume handles POST /api/v1/delegations/consume.
func (h *DelegationHandler) Consume(c *gin.Context) {
	var req dto.ConsumeAllowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.delegationSvc.ConsumeAllowance(c.Request.Context(), req.Owner, req.Delegate, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	delegation, err := h.delegationSvc.GetDelegation(c.Request.Context(), req.Owner, req.Delegate)
	if err != nil {
		response.Error(c, err)
		return
	}
	if delegation == nil {
		response.Error(c, apperror.ErrNoDelegation())
		return
	}

	response.OK(c, dto.ToDelegationResponse(delegation))
}

// Get handles GET /api/v1/delegations/:owner/:delegate.
func (h *DelegationHandler) Get(c *gin.Context) {
	owner := c.Param("owner")
	delegate := c.Param("delegate")

	delegation, err := h.delegationSvc.GetDelegation(c.Request.Context(), owner, delegate)
	if err != nil {
		response.Error(c, err)
		return
	}
	if delegation == nil {
		response.Error(c, apperror.ErrNoDelegation())
		return
	}

	response.OK(c, dto.ToDelegationResponse(delegation))
}

// Revoke handles DELETE /api/v1/delegations/:owner/:delegate.
// Revoking a delegation that does not exist is a no-op.
func (h *DelegationHandler) Revoke(c *gin.Context) {
	owner := c.Param("owner")
	delegate := c.Param("delegate")

	if err := h.delegationSvc.RevokeDelegation(c.Request.Context(), owner, delegate); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"owner": owner, "delegate": delegate, "revoked": true})
}
