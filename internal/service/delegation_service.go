package service

import (
	"context"
	"fmt"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"

	"github.com/rs/zerolog"
)

// DelegationServiceImpl implements ports.DelegationService.
type DelegationServiceImpl struct {
	delegationRepo ports.DelegationRepository
	events         ports.EventPublisher
	transactor     ports.DBTransactor
	log            zerolog.Logger
}

// NewDelegationService creates a new DelegationServiceImpl.
func NewDelegationService(
	delegationRepo ports.DelegationRepository,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *DelegationServiceImpl {
	return &DelegationServiceImpl{
		delegationRepo: delegationRepo,
		events:         events,
		transactor:     transactor,
		log:            log,
	}
}

// SetDelegation grants or adjusts a delegate's allowance. Adjusting an
// existing delegation preserves the amount already spent.
func (s *DelegationServiceImpl) SetDelegation(ctx context.Context, owner, delegate string, limit int64) error {
	if !domain.ValidPrincipal(owner) || !domain.ValidPrincipal(delegate) {
		return apperror.ErrInvalidPrincipal()
	}
	if owner == delegate {
		return apperror.ErrSelfDelegation()
	}
	if limit <= 0 {
		return apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	delegation, err := s.delegationRepo.GetForUpdate(ctx, dbTx, owner, delegate)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load delegation: %w", err))
	}
	if delegation == nil {
		delegation = &domain.Delegation{Owner: owner, Delegate: delegate}
	}
	delegation.Limit = limit

	if err := s.delegationRepo.Put(ctx, dbTx, delegation); err != nil {
		return apperror.InternalError(fmt.Errorf("store delegation: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.DelegationSet(owner, delegate, limit))
	s.log.Info().Str("owner", owner).Str("delegate", delegate).Int64("limit", limit).Msg("delegation set")
	return nil
}

// RevokeDelegation removes a delegate's spending rights. Revoking a
// delegation that does not exist is a no-op.
func (s *DelegationServiceImpl) RevokeDelegation(ctx context.Context, owner, delegate string) error {
	if !domain.ValidPrincipal(owner) || !domain.ValidPrincipal(delegate) {
		return apperror.ErrInvalidPrincipal()
	}

	existed, err := s.delegationRepo.Delete(ctx, owner, delegate)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("delete delegation: %w", err))
	}
	if existed {
		s.publish(ctx, domain.DelegationRevoked(owner, delegate))
		s.log.Info().Str("owner", owner).Str("delegate", delegate).Msg("delegation revoked")
	}
	return nil
}

// ConsumeAllowance spends a portion of the delegate's allowance. The call
// is all-or-nothing: a rejected consume leaves the spent total untouched.
func (s *DelegationServiceImpl) ConsumeAllowance(ctx context.Context, owner, delegate string, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	delegation, err := s.delegationRepo.GetForUpdate(ctx, dbTx, owner, delegate)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load delegation: %w", err))
	}
	if delegation == nil {
		return apperror.ErrNoDelegation()
	}

	newSpent := domain.SaturatingAdd(delegation.Spent, amount)
	if newSpent > delegation.Limit {
		return apperror.ErrAllowanceExceeded()
	}

	delegation.Spent = newSpent
	if err := s.delegationRepo.Put(ctx, dbTx, delegation); err != nil {
		return apperror.InternalError(fmt.Errorf("store delegation: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.DelegationConsumed(owner, delegate, amount))
	return nil
}

// GetDelegation returns the current delegation state, or nil when none
// is configured.
func (s *DelegationServiceImpl) GetDelegation(ctx context.Context, owner, delegate string) (*domain.Delegation, error) {
	delegation, err := s.delegationRepo.Get(ctx, owner, delegate)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load delegation: %w", err))
	}
	return delegation, nil
}

func (s *DelegationServiceImpl) publish(ctx context.Context, event domain.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Strs("topic", event.Topic).Msg("event publish failed")
	}
}
