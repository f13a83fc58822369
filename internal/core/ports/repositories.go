package ports

import (
	"context"

	"spendguard/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LimitRepository is the thin accessor over the persistent store for
// spending limits and period counters. It owns key construction only;
// no validation, no business rules.
// Methods accepting pgx.Tx run inside transaction blocks so a whole call
// commits or rolls back as one unit.
type LimitRepository interface {
	GetLimit(ctx context.Context, user string) (*domain.SpendingLimit, error)
	GetLimitForUpdate(ctx context.Context, tx pgx.Tx, user string) (*domain.SpendingLimit, error)
	PutLimit(ctx context.Context, tx pgx.Tx, limit *domain.SpendingLimit) error
	HasLimit(ctx context.Context, user string) (bool, error)
	GetPeriodCounter(ctx context.Context, tx pgx.Tx, key domain.PeriodKey) (int64, error)
	PutPeriodCounter(ctx context.Context, tx pgx.Tx, key domain.PeriodKey, total int64) error
}

// StateRepository persists the service-wide singletons: administrator
// principal and the running batch totals. Explicit dependency, not a
// process-wide global.
type StateRepository interface {
	// Initialize stores the admin principal and password hash. Fails if
	// state already exists.
	Initialize(ctx context.Context, admin string, passwordHash string) error
	// GetAdmin returns the admin principal, or "" when not initialized.
	GetAdmin(ctx context.Context) (string, error)
	GetAdminPasswordHash(ctx context.Context) (string, error)
	SetAdmin(ctx context.Context, newAdmin string) error
	// GetBatchStateForUpdate loads the running totals with the state row
	// locked for the duration of the transaction.
	GetBatchStateForUpdate(ctx context.Context, tx pgx.Tx) (*domain.BatchState, error)
	PutBatchState(ctx context.Context, tx pgx.Tx, state *domain.BatchState) error
	GetBatchState(ctx context.Context) (*domain.BatchState, error)
}

// DelegationRepository persists per-(owner, delegate) allowances.
type DelegationRepository interface {
	Get(ctx context.Context, owner, delegate string) (*domain.Delegation, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, owner, delegate string) (*domain.Delegation, error)
	Put(ctx context.Context, tx pgx.Tx, delegation *domain.Delegation) error
	// Delete removes the allowance. Returns false when none existed.
	Delete(ctx context.Context, owner, delegate string) (bool, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
