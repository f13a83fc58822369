package service

import (
	"context"
	"fmt"
	"time"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/ports"
	"spendguard/pkg/apperror"

	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService. The administrator
// principal is set once at initialization and can only be rotated by the
// current admin.
type AdminServiceImpl struct {
	stateRepo ports.StateRepository
	hashSvc   ports.HashService
	tokenSvc  ports.TokenService
	log       zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	stateRepo ports.StateRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		stateRepo: stateRepo,
		hashSvc:   hashSvc,
		tokenSvc:  tokenSvc,
		log:       log,
	}
}

// Initialize stores the administrator principal and credentials. Set-once.
func (s *AdminServiceImpl) Initialize(ctx context.Context, admin, password string) error {
	if !domain.ValidPrincipal(admin) {
		return apperror.ErrInvalidPrincipal()
	}
	existing, err := s.stateRepo.GetAdmin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load admin: %w", err))
	}
	if existing != "" {
		return apperror.ErrAlreadyInitialized()
	}

	hash, err := s.hashSvc.Hash(password)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}
	if err := s.stateRepo.Initialize(ctx, admin, hash); err != nil {
		return apperror.InternalError(fmt.Errorf("store admin: %w", err))
	}

	s.log.Info().Str("admin", admin).Msg("service initialized")
	return nil
}

// Login verifies admin credentials and issues a JWT for the admin surface.
func (s *AdminServiceImpl) Login(ctx context.Context, principal, password string) (string, time.Time, error) {
	admin, err := s.stateRepo.GetAdmin(ctx)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("load admin: %w", err))
	}
	if admin == "" {
		return "", time.Time{}, apperror.ErrNotInitialized()
	}
	if principal != admin {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	hash, err := s.stateRepo.GetAdminPasswordHash(ctx)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("load credentials: %w", err))
	}
	ok, err := s.hashSvc.Verify(password, hash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(principal)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

// GetAdmin returns the administrator principal.
func (s *AdminServiceImpl) GetAdmin(ctx context.Context) (string, error) {
	admin, err := s.stateRepo.GetAdmin(ctx)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("load admin: %w", err))
	}
	if admin == "" {
		return "", apperror.ErrNotInitialized()
	}
	return admin, nil
}

// SetAdmin rotates the administrator principal. Only the current admin
// may do this.
func (s *AdminServiceImpl) SetAdmin(ctx context.Context, caller, newAdmin string) error {
	admin, err := s.stateRepo.GetAdmin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load admin: %w", err))
	}
	if admin == "" {
		return apperror.ErrNotInitialized()
	}
	if caller != admin {
		return apperror.ErrUnauthorized()
	}
	if !domain.ValidPrincipal(newAdmin) {
		return apperror.ErrInvalidPrincipal()
	}

	if err := s.stateRepo.SetAdmin(ctx, newAdmin); err != nil {
		return apperror.InternalError(fmt.Errorf("store admin: %w", err))
	}

	s.log.Info().Str("old_admin", admin).Str("new_admin", newAdmin).Msg("admin rotated")
	return nil
}

// GetLastBatchID returns the id of the most recently processed batch,
// zero before the first batch.
func (s *AdminServiceImpl) GetLastBatchID(ctx context.Context) (uint64, error) {
	state, err := s.batchState(ctx)
	if err != nil {
		return 0, err
	}
	return state.LastBatchID, nil
}

// GetTotalLimitsUpdated returns the cumulative count of successful limit
// updates across all batches.
func (s *AdminServiceImpl) GetTotalLimitsUpdated(ctx context.Context) (uint64, error) {
	state, err := s.batchState(ctx)
	if err != nil {
		return 0, err
	}
	return state.TotalLimitsUpdated, nil
}

// GetTotalBatchesProcessed returns the cumulative count of batch calls.
func (s *AdminServiceImpl) GetTotalBatchesProcessed(ctx context.Context) (uint64, error) {
	state, err := s.batchState(ctx)
	if err != nil {
		return 0, err
	}
	return state.TotalBatchesProcessed, nil
}

func (s *AdminServiceImpl) batchState(ctx context.Context) (*domain.BatchState, error) {
	state, err := s.stateRepo.GetBatchState(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load batch state: %w", err))
	}
	return state, nil
}
