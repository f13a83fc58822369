package service

import (
	"spendguard/internal/core/domain"
	"spendguard/pkg/apperror"
)

// ValidateLimitRequest runs the pure, stateless checks on a single limit
// update request. First failure wins. The returned error is always an
// *apperror.AppError so the batch processor can classify failures without
// aborting the whole call.
func ValidateLimitRequest(req domain.SpendingLimitRequest) error {
	if req.MonthlyLimit <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if !domain.ValidPrincipal(req.User) {
		return apperror.ErrInvalidPrincipal()
	}
	// Category is optional; only a present label is checked.
	if req.Category != "" && !domain.ValidCategory(req.Category) {
		return apperror.ErrInvalidCategory()
	}
	return nil
}
