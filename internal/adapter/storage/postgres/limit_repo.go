package postgres

import (
	"context"
	"errors"
	"fmt"

	"spendguard/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LimitRepo implements ports.LimitRepository. It owns the storage keys for
// spending limits and period counters and nothing else.
type LimitRepo struct {
	pool Pool
}

// NewLimitRepo creates a new LimitRepo.
func NewLimitRepo(pool Pool) *LimitRepo {
	return &LimitRepo{pool: pool}
}

const limitColumns = `user_id, monthly_limit, current_spending, category, updated_at, is_active`

func scanLimit(row pgx.Row) (*domain.SpendingLimit, error) {
	l := &domain.SpendingLimit{}
	err := row.Scan(
		&l.User, &l.MonthlyLimit, &l.CurrentSpending,
		&l.Category, &l.UpdatedAt, &l.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

// GetLimit fetches a user's spending limit without locking.
// Returns nil, nil when no limit is configured.
func (r *LimitRepo) GetLimit(ctx context.Context, user string) (*domain.SpendingLimit, error) {
	query := `SELECT ` + limitColumns + ` FROM spending_limits WHERE user_id = $1`

	l, err := scanLimit(r.pool.QueryRow(ctx, query, user))
	if err != nil {
		return nil, fmt.Errorf("get limit: %w", err)
	}
	return l, nil
}

// GetLimitForUpdate fetches a user's spending limit with the row locked.
// This MUST be called within a transaction.
func (r *LimitRepo) GetLimitForUpdate(ctx context.Context, tx pgx.Tx, user string) (*domain.SpendingLimit, error) {
	query := `SELECT ` + limitColumns + ` FROM spending_limits WHERE user_id = $1 FOR UPDATE`

	l, err := scanLimit(tx.QueryRow(ctx, query, user))
	if err != nil {
		return nil, fmt.Errorf("get limit for update: %w", err)
	}
	return l, nil
}

// PutLimit fully replaces a user's spending limit within a transaction.
func (r *LimitRepo) PutLimit(ctx context.Context, tx pgx.Tx, l *domain.SpendingLimit) error {
	query := `INSERT INTO spending_limits (` + limitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			monthly_limit = EXCLUDED.monthly_limit,
			current_spending = EXCLUDED.current_spending,
			category = EXCLUDED.category,
			updated_at = EXCLUDED.updated_at,
			is_active = EXCLUDED.is_active`

	_, err := tx.Exec(ctx, query,
		l.User, l.MonthlyLimit, l.CurrentSpending,
		l.Category, l.UpdatedAt, l.IsActive,
	)
	if err != nil {
		return fmt.Errorf("put limit: %w", err)
	}
	return nil
}

// HasLimit reports whether any limit record exists for the user.
func (r *LimitRepo) HasLimit(ctx context.Context, user string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM spending_limits WHERE user_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, user).Scan(&exists); err != nil {
		return false, fmt.Errorf("has limit: %w", err)
	}
	return exists, nil
}

// GetPeriodCounter loads one period counter. Absent counters are 0.
func (r *LimitRepo) GetPeriodCounter(ctx context.Context, tx pgx.Tx, key domain.PeriodKey) (int64, error) {
	query := `SELECT total FROM period_spending
		WHERE user_id = $1 AND period_kind = $2 AND period_id = $3`

	var total int64
	err := tx.QueryRow(ctx, query, key.User, string(key.Kind), key.ID).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get period counter: %w", err)
	}
	return total, nil
}

// PutPeriodCounter stores one period counter, creating it lazily.
func (r *LimitRepo) PutPeriodCounter(ctx context.Context, tx pgx.Tx, key domain.PeriodKey, total int64) error {
	query := `INSERT INTO period_spending (user_id, period_kind, period_id, total)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, period_kind, period_id) DO UPDATE SET total = EXCLUDED.total`

	_, err := tx.Exec(ctx, query, key.User, string(key.Kind), key.ID, total)
	if err != nil {
		return fmt.Errorf("put period counter: %w", err)
	}
	return nil
}
