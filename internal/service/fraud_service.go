package service

import (
	"context"
	"fmt"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"

	"github.com/rs/zerolog"
)

// FraudServiceImpl implements ports.FraudService. Unlike limit
// enforcement, fraud screening always accumulates the rolling daily total,
// flagged or not, so repeat offenders keep tripping the velocity rule.
type FraudServiceImpl struct {
	counters  ports.FraudCounterStore
	clock     ports.LedgerClock
	events    ports.EventPublisher
	threshold int64
	maxDaily  int64
	log       zerolog.Logger
}

// NewFraudService creates a new FraudServiceImpl. threshold flags single
// transactions by size; maxDaily flags the per-user rolling daily total.
func NewFraudService(
	counters ports.FraudCounterStore,
	clock ports.LedgerClock,
	events ports.EventPublisher,
	threshold int64,
	maxDaily int64,
	log zerolog.Logger,
) *FraudServiceImpl {
	return &FraudServiceImpl{
		counters:  counters,
		clock:     clock,
		events:    events,
		threshold: threshold,
		maxDaily:  maxDaily,
		log:       log,
	}
}

// CheckTransaction screens a transaction and flags it when any rule trips.
func (s *FraudServiceImpl) CheckTransaction(ctx context.Context, user string, amount int64) (*domain.FraudCheck, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !domain.ValidPrincipal(user) {
		return nil, apperror.ErrInvalidPrincipal()
	}

	check := &domain.FraudCheck{}

	if amount >= s.threshold {
		check.Flagged = true
		check.Reasons = append(check.Reasons, domain.FraudReasonAbnormalSize)
	}

	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger clock: %w", err))
	}

	total, err := s.counters.AddDailyTotal(ctx, user, now.DayID(), amount)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("accumulate daily total: %w", err))
	}
	check.DailyTotal = total
	// maxDaily <= 0 disables the velocity rule.
	if s.maxDaily > 0 && total > s.maxDaily {
		check.Flagged = true
		check.Reasons = append(check.Reasons, domain.FraudReasonDailyLimit)
	}

	if check.Flagged {
		if err := s.events.Publish(ctx, domain.FraudAlert(user, amount, check.Reasons)); err != nil {
			s.log.Warn().Err(err).Str("user", user).Msg("event publish failed")
		}
		s.log.Info().
			Str("user", user).
			Int64("amount", amount).
			Strs("reasons", check.Reasons).
			Msg("transaction flagged")
	}

	return check, nil
}
