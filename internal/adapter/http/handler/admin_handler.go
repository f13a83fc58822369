package handler

import (
	"net/http"

	"spendguard/internal/adapter/http/dto"
	"spendguard/internal/adapter/http/middleware"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"
	"spendguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles initialisation, login, and administration endpoints.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Initialize handles POST /api/v1/admin/initialize.
// One-shot: a second call fails with ADM_003.
func (h *AdminHandler) Initialize(c *gin.Context) {
	var req dto.InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.adminSvc.Initialize(c.Request.Context(), req.Admin, req.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.AdminResponse{Admin: req.Admin})
}

// Login handles POST /api/v1/auth/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.adminSvc.Login(c.Request.Context(), req.Principal, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// GetAdmin handles GET /api/v1/admin.
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	admin, err := h.adminSvc.GetAdmin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AdminResponse{Admin: admin})
}

// SetAdmin handles PUT /api/v1/admin.
func (h *AdminHandler) SetAdmin(c *gin.Context) {
	caller, ok := c.Get(middleware.CtxPrincipal)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.adminSvc.SetAdmin(c.Request.Context(), caller.(string), req.NewAdmin); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AdminResponse{Admin: req.NewAdmin})
}

// GetStats handles GET /api/v1/admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	lastBatchID, err := h.adminSvc.GetLastBatchID(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	totalLimits, err := h.adminSvc.GetTotalLimitsUpdated(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	totalBatches, err := h.adminSvc.GetTotalBatchesProcessed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatsResponse{
		LastBatchID:           lastBatchID,
		TotalLimitsUpdated:    totalLimits,
		TotalBatchesProcessed: totalBatches,
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
