package postgres

import (
	"context"
	"errors"
	"fmt"

	"spendguard/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// StateRepo implements ports.StateRepository over a single-row state
// table. The fixed id keeps the singletons addressable and lockable.
type StateRepo struct {
	pool Pool
}

// NewStateRepo creates a new StateRepo.
func NewStateRepo(pool Pool) *StateRepo {
	return &StateRepo{pool: pool}
}

// Initialize inserts the state row. Fails if it already exists.
func (r *StateRepo) Initialize(ctx context.Context, admin string, passwordHash string) error {
	query := `INSERT INTO service_state
		(id, admin_principal, admin_password_hash, last_batch_id, total_limits_updated, total_batches_processed)
		VALUES (1, $1, $2, 0, 0, 0)`

	if _, err := r.pool.Exec(ctx, query, admin, passwordHash); err != nil {
		return fmt.Errorf("initialize state: %w", err)
	}
	return nil
}

// GetAdmin returns the admin principal, or "" when not initialized.
func (r *StateRepo) GetAdmin(ctx context.Context) (string, error) {
	query := `SELECT admin_principal FROM service_state WHERE id = 1`

	var admin string
	err := r.pool.QueryRow(ctx, query).Scan(&admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}

// GetAdminPasswordHash returns the stored credential hash.
func (r *StateRepo) GetAdminPasswordHash(ctx context.Context) (string, error) {
	query := `SELECT admin_password_hash FROM service_state WHERE id = 1`

	var hash string
	err := r.pool.QueryRow(ctx, query).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get admin credentials: %w", err)
	}
	return hash, nil
}

// SetAdmin rotates the admin principal.
func (r *StateRepo) SetAdmin(ctx context.Context, newAdmin string) error {
	query := `UPDATE service_state SET admin_principal = $1 WHERE id = 1`

	tag, err := r.pool.Exec(ctx, query, newAdmin)
	if err != nil {
		return fmt.Errorf("set admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("state row not found")
	}
	return nil
}

const batchStateColumns = `last_batch_id, total_limits_updated, total_batches_processed`

// GetBatchStateForUpdate loads the running totals with the state row
// locked for the duration of the transaction.
func (r *StateRepo) GetBatchStateForUpdate(ctx context.Context, tx pgx.Tx) (*domain.BatchState, error) {
	query := `SELECT ` + batchStateColumns + ` FROM service_state WHERE id = 1 FOR UPDATE`

	s := &domain.BatchState{}
	err := tx.QueryRow(ctx, query).Scan(&s.LastBatchID, &s.TotalLimitsUpdated, &s.TotalBatchesProcessed)
	if err != nil {
		return nil, fmt.Errorf("get batch state for update: %w", err)
	}
	return s, nil
}

// GetBatchState loads the running totals without locking. Returns zeros
// when the service has not been initialized yet.
func (r *StateRepo) GetBatchState(ctx context.Context) (*domain.BatchState, error) {
	query := `SELECT ` + batchStateColumns + ` FROM service_state WHERE id = 1`

	s := &domain.BatchState{}
	err := r.pool.QueryRow(ctx, query).Scan(&s.LastBatchID, &s.TotalLimitsUpdated, &s.TotalBatchesProcessed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.BatchState{}, nil
		}
		return nil, fmt.Errorf("get batch state: %w", err)
	}
	return s, nil
}

// PutBatchState stores the running totals within a transaction.
func (r *StateRepo) PutBatchState(ctx context.Context, tx pgx.Tx, s *domain.BatchState) error {
	query := `UPDATE service_state
		SET last_batch_id = $1, total_limits_updated = $2, total_batches_processed = $3
		WHERE id = 1`

	tag, err := tx.Exec(ctx, query, s.LastBatchID, s.TotalLimitsUpdated, s.TotalBatchesProcessed)
	if err != nil {
		return fmt.Errorf("put batch state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("state row not found")
	}
	return nil
}
