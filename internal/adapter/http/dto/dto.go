package dto

import "spendguard/internal/core/domain"

// InitializeRequest is the request body for one-time service initialisation.
// The admin identity itself is validated in the core.
type InitializeRequest struct {
	Admin    string `json:"admin" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for administrator login.
type LoginRequest struct {
	Principal string `json:"principal" binding:"required,max=64,safe_id"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// SetAdminRequest is the request body for administrator handover.
type SetAdminRequest struct {
	NewAdmin string `json:"new_admin" binding:"required"`
}

// AdminResponse is the response body for the admin query.
type AdminResponse struct {
	Admin string `json:"admin"`
}

// StatsResponse is the response body for the running totals query.
type StatsResponse struct {
	LastBatchID           uint64 `json:"last_batch_id"`
	TotalLimitsUpdated    uint64 `json:"total_limits_updated"`
	TotalBatchesProcessed uint64 `json:"total_batches_processed"`
}

// LimitItem is one entry of a batch limit update. Per-item validation
// happens in the core so one bad item cannot reject the whole batch.
type LimitItem struct {
	User         string `json:"user"`
	MonthlyLimit int64  `json:"monthly_limit"`
	Category     string `json:"category,omitempty"`
}

// BatchUpdateRequest is the request body for a batch limit update.
// Emptiness is checked in the core (BATCH_001), not by binding.
type BatchUpdateRequest struct {
	Limits []LimitItem `json:"limits"`
}

// LimitResultItem is the per-item outcome of a batch update.
type LimitResultItem struct {
	User      string         `json:"user"`
	Success   bool           `json:"success"`
	Limit     *LimitResponse `json:"limit,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
}

// BatchMetricsResponse aggregates a batch call.
type BatchMetricsResponse struct {
	TotalRequests     int    `json:"total_requests"`
	SuccessfulUpdates int    `json:"successful_updates"`
	FailedUpdates     int    `json:"failed_updates"`
	TotalLimitsValue  int64  `json:"total_limits_value"`
	AvgLimitAmount    int64  `json:"avg_limit_amount"`
	ProcessedAt       uint64 `json:"processed_at"`
}

// BatchUpdateResponse is the response body for a batch limit update.
type BatchUpdateResponse struct {
	BatchID       uint64               `json:"batch_id"`
	TotalRequests int                  `json:"total_requests"`
	Successful    int                  `json:"successful"`
	Failed        int                  `json:"failed"`
	Results       []LimitResultItem    `json:"results"`
	Metrics       BatchMetricsResponse `json:"metrics"`
}

// EnforceRequest is the request body for a spend enforcement call.
// User and amount are validated in the core.
type EnforceRequest struct {
	User   string `json:"user"`
	Amount int64  `json:"amount"`
}

// EnforceResponse is the response body for an allowed spend.
type EnforceResponse struct {
	User    string `json:"user"`
	Amount  int64  `json:"amount"`
	Allowed bool   `json:"allowed"`
}

// LimitResponse is the response body for a spending limit query.
type LimitResponse struct {
	User            string `json:"user"`
	MonthlyLimit    int64  `json:"monthly_limit"`
	DailyLimit      int64  `json:"daily_limit"`
	CurrentSpending int64  `json:"current_spending"`
	Category        string `json:"category,omitempty"`
	UpdatedAt       int64  `json:"updated_at"`
	IsActive        bool   `json:"is_active"`
}

// DelegationRequest is the request body for granting an allowance.
type DelegationRequest struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate"`
	Limit    int64  `json:"limit"`
}

// ConsumeAllowanceRequest is the request body for spending against an
// allowance.
type ConsumeAllowanceRequest struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate"`
	Amount   int64  `json:"amount"`
}

// DelegationResponse is the response body for a delegation query.
type DelegationResponse struct {
	Owner     string `json:"owner"`
	Delegate  string `json:"delegate"`
	Limit     int64  `json:"limit"`
	Spent     int64  `json:"spent"`
	Remaining int64  `json:"remaining"`
}

// FraudCheckRequest is the request body for a fraud screen.
type FraudCheckRequest struct {
	User   string `json:"user"`
	Amount int64  `json:"amount"`
}

// FraudCheckResponse is the response body for a fraud screen.
type FraudCheckResponse struct {
	Flagged    bool     `json:"flagged"`
	Reasons    []string `json:"reasons,omitempty"`
	DailyTotal int64    `json:"daily_total"`
}

// ToLimitResponse converts a domain.SpendingLimit to its DTO.
func ToLimitResponse(l *domain.SpendingLimit) *LimitResponse {
	if l == nil {
		return nil
	}
	return &LimitResponse{
		User:            l.User,
		MonthlyLimit:    l.MonthlyLimit,
		DailyLimit:      l.DailyLimit(),
		CurrentSpending: l.CurrentSpending,
		Category:        l.Category,
		UpdatedAt:       l.UpdatedAt,
		IsActive:        l.IsActive,
	}
}

// ToBatchUpdateResponse converts a domain.BatchLimitResult to its DTO.
func ToBatchUpdateResponse(r *domain.BatchLimitResult) BatchUpdateResponse {
	results := make([]LimitResultItem, 0, len(r.Results))
	for _, item := range r.Results {
		results = append(results, LimitResultItem{
			User:      item.User,
			Success:   item.Success,
			Limit:     ToLimitResponse(item.Limit),
			ErrorCode: item.ErrorCode,
		})
	}
	return BatchUpdateResponse{
		BatchID:       r.BatchID,
		TotalRequests: r.TotalRequests,
		Successful:    r.Successful,
		Failed:        r.Failed,
		Results:       results,
		Metrics: BatchMetricsResponse{
			TotalRequests:     r.Metrics.TotalRequests,
			SuccessfulUpdates: r.Metrics.SuccessfulUpdates,
			FailedUpdates:     r.Metrics.FailedUpdates,
			TotalLimitsValue:  r.Metrics.TotalLimitsValue,
			AvgLimitAmount:    r.Metrics.AvgLimitAmount,
			ProcessedAt:       r.Metrics.ProcessedAt,
		},
	}
}

// ToDelegationResponse converts a domain.Delegation to its DTO.
func ToDelegationResponse(d *domain.Delegation) DelegationResponse {
	return DelegationResponse{
		Owner:     d.Owner,
		Delegate:  d.Delegate,
		Limit:     d.Limit,
		Spent:     d.Spent,
		Remaining: d.Remaining(),
	}
}
