package service

import (
	"context"
	"fmt"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"
	"spendguard/pkg/metrics"

	"github.com/rs/zerolog"
)

// EnforcementServiceImpl implements ports.EnforcementService.
type EnforcementServiceImpl struct {
	limitRepo  ports.LimitRepository
	clock      ports.LedgerClock
	events     ports.EventPublisher
	transactor ports.DBTransactor
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewEnforcementService creates a new EnforcementServiceImpl.
func NewEnforcementService(
	limitRepo ports.LimitRepository,
	clock ports.LedgerClock,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	m *metrics.Metrics,
	log zerolog.Logger,
) *EnforcementServiceImpl {
	return &EnforcementServiceImpl{
		limitRepo:  limitRepo,
		clock:      clock,
		events:     events,
		transactor: transactor,
		metrics:    m,
		log:        log,
	}
}

// EnforceSpendingLimit checks a spend against both rolling windows and, if
// allowed, records it. The call is all-or-nothing: a rejected spend leaves
// both stored counters exactly as they were.
func (s *EnforcementServiceImpl) EnforceSpendingLimit(ctx context.Context, user string, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	limit, err := s.limitRepo.GetLimitForUpdate(ctx, dbTx, user)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load limit: %w", err))
	}
	// No limit configured, or limit switched off: unrestricted spend,
	// zero writes.
	if limit == nil || !limit.IsActive {
		s.metrics.EnforcementAllowed()
		return nil
	}

	now, err := s.clock.Now(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("ledger clock: %w", err))
	}

	dayID := now.DayID()
	monthID := now.MonthID()
	dailyKey := domain.DailyKey(user, dayID)
	monthlyKey := domain.MonthlyKey(user, monthID)

	currentDaily, err := s.limitRepo.GetPeriodCounter(ctx, dbTx, dailyKey)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load daily counter: %w", err))
	}
	currentMonthly, err := s.limitRepo.GetPeriodCounter(ctx, dbTx, monthlyKey)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load monthly counter: %w", err))
	}
	if currentDaily < 0 || currentMonthly < 0 {
		return apperror.ErrCounterOverflow()
	}

	newDaily := domain.SaturatingAdd(currentDaily, amount)
	newMonthly := domain.SaturatingAdd(currentMonthly, amount)

	dailyLimit := limit.DailyLimit()
	dailyOK := newDaily <= dailyLimit
	monthlyOK := newMonthly <= limit.MonthlyLimit

	if !dailyOK || !monthlyOK {
		remainingDaily := int64(0)
		if currentDaily < dailyLimit {
			remainingDaily = dailyLimit - currentDaily
		}
		remainingMonthly := int64(0)
		if currentMonthly < limit.MonthlyLimit {
			remainingMonthly = limit.MonthlyLimit - currentMonthly
		}

		s.publish(ctx, domain.LimitExceeded(user, amount, remainingDaily, remainingMonthly))

		s.log.Info().
			Str("user", user).
			Int64("amount", amount).
			Int64("remaining_daily", remainingDaily).
			Int64("remaining_monthly", remainingMonthly).
			Msg("spend rejected by limit")

		// Daily violation takes precedence when both windows trip.
		if !dailyOK {
			s.metrics.EnforcementRejected("daily")
			return apperror.ErrDailyLimitExceeded()
		}
		s.metrics.EnforcementRejected("monthly")
		return apperror.ErrMonthlyLimitExceeded()
	}

	if err := s.limitRepo.PutPeriodCounter(ctx, dbTx, dailyKey, newDaily); err != nil {
		return apperror.InternalError(fmt.Errorf("store daily counter: %w", err))
	}
	if err := s.limitRepo.PutPeriodCounter(ctx, dbTx, monthlyKey, newMonthly); err != nil {
		return apperror.InternalError(fmt.Errorf("store monthly counter: %w", err))
	}

	// Keep the embedded month-to-date mirror in sync for external readers.
	limit.CurrentSpending = newMonthly
	limit.UpdatedAt = monthID
	if err := s.limitRepo.PutLimit(ctx, dbTx, limit); err != nil {
		return apperror.InternalError(fmt.Errorf("store limit: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.metrics.EnforcementAllowed()
	return nil
}

// GetSpendingLimit returns the configured limit, or nil when none exists.
func (s *EnforcementServiceImpl) GetSpendingLimit(ctx context.Context, user string) (*domain.SpendingLimit, error) {
	limit, err := s.limitRepo.GetLimit(ctx, user)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load limit: %w", err))
	}
	return limit, nil
}

func (s *EnforcementServiceImpl) publish(ctx context.Context, event domain.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Strs("topic", event.Topic).Msg("event publish failed")
	}
}
