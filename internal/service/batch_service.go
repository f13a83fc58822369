package service

import (
	"context"
	"errors"
	"fmt"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"
	"spendguard/pkg/metrics"

	"github.com/rs/zerolog"
)

// BatchServiceImpl implements ports.BatchService.
type BatchServiceImpl struct {
	limitRepo  ports.LimitRepository
	stateRepo  ports.StateRepository
	clock      ports.LedgerClock
	events     ports.EventPublisher
	transactor ports.DBTransactor
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewBatchService creates a new BatchServiceImpl.
func NewBatchService(
	limitRepo ports.LimitRepository,
	stateRepo ports.StateRepository,
	clock ports.LedgerClock,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	m *metrics.Metrics,
	log zerolog.Logger,
) *BatchServiceImpl {
	return &BatchServiceImpl{
		limitRepo:  limitRepo,
		stateRepo:  stateRepo,
		clock:      clock,
		events:     events,
		transactor: transactor,
		metrics:    m,
		log:        log,
	}
}

// BatchUpdateLimits replaces the monthly spending limits for every user in
// the batch. Precondition violations (unknown admin, empty or oversized
// batch) abort the whole call with nothing persisted; per-item validation
// failures are recorded in the result and never affect other items.
func (s *BatchServiceImpl) BatchUpdateLimits(ctx context.Context, caller string, requests []domain.SpendingLimitRequest) (*domain.BatchLimitResult, error) {
	admin, err := s.stateRepo.GetAdmin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load admin: %w", err))
	}
	if admin == "" {
		return nil, apperror.ErrNotInitialized()
	}
	if caller != admin {
		return nil, apperror.ErrUnauthorized()
	}

	if len(requests) == 0 {
		return nil, apperror.ErrEmptyBatch()
	}
	if len(requests) > domain.MaxBatchSize {
		return nil, apperror.ErrBatchTooLarge(domain.MaxBatchSize)
	}

	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger clock: %w", err))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetBatchStateForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load batch state: %w", err))
	}
	batchID := state.LastBatchID + 1

	s.publish(ctx, domain.BatchStarted(batchID, len(requests)))

	results := make([]domain.LimitUpdateResult, 0, len(requests))
	successful := 0
	failed := 0
	var totalLimitsValue int64

	for _, req := range requests {
		if verr := ValidateLimitRequest(req); verr != nil {
			failed++
			code := errorCode(verr)
			s.publish(ctx, domain.LimitUpdateFailed(batchID, req.User, code))
			results = append(results, domain.LimitUpdateResult{
				User:      req.User,
				Success:   false,
				ErrorCode: code,
			})
			continue
		}

		// A successful update fully replaces the record and resets the
		// month-to-date mirror.
		limit := domain.SpendingLimit{
			User:            req.User,
			MonthlyLimit:    req.MonthlyLimit,
			CurrentSpending: 0,
			Category:        req.Category,
			UpdatedAt:       now.MonthID(),
			IsActive:        true,
		}

		if err := s.limitRepo.PutLimit(ctx, dbTx, &limit); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("store limit for %s: %w", req.User, err))
		}

		totalLimitsValue = domain.SaturatingAdd(totalLimitsValue, req.MonthlyLimit)
		successful++

		s.publish(ctx, domain.LimitUpdated(batchID, limit))
		if req.MonthlyLimit >= domain.HighValueThreshold {
			s.publish(ctx, domain.HighValueLimit(batchID, req.User, req.MonthlyLimit))
		}

		results = append(results, domain.LimitUpdateResult{
			User:    req.User,
			Success: true,
			Limit:   &limit,
		})
	}

	var avgLimitAmount int64
	if successful > 0 {
		avgLimitAmount = totalLimitsValue / int64(successful)
	}

	state.LastBatchID = batchID
	state.TotalLimitsUpdated += uint64(successful)
	state.TotalBatchesProcessed++
	if err := s.stateRepo.PutBatchState(ctx, dbTx, state); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store batch state: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.BatchCompleted(batchID, successful, failed, totalLimitsValue))
	s.metrics.BatchProcessed(len(requests), successful, failed)

	s.log.Info().
		Uint64("batch_id", batchID).
		Int("total", len(requests)).
		Int("successful", successful).
		Int("failed", failed).
		Int64("total_limits_value", totalLimitsValue).
		Msg("batch limit update processed")

	return &domain.BatchLimitResult{
		BatchID:       batchID,
		TotalRequests: len(requests),
		Successful:    successful,
		Failed:        failed,
		Results:       results,
		Metrics: domain.BatchLimitMetrics{
			TotalRequests:     len(requests),
			SuccessfulUpdates: successful,
			FailedUpdates:     failed,
			TotalLimitsValue:  totalLimitsValue,
			AvgLimitAmount:    avgLimitAmount,
			ProcessedAt:       now.Sequence,
		},
	}, nil
}

// publish emits an event best-effort; sink failures are logged, never
// surfaced to the caller.
func (s *BatchServiceImpl) publish(ctx context.Context, event domain.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Strs("topic", event.Topic).Msg("event publish failed")
	}
}

// errorCode extracts the stable code from an AppError.
func errorCode(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "SYS_001"
}
