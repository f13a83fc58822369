package postgres

import (
	"context"
	"errors"
	"fmt"

	"spendguard/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DelegationRepo implements ports.DelegationRepository.
type DelegationRepo struct {
	pool Pool
}

// NewDelegationRepo creates a new DelegationRepo.
func NewDelegationRepo(pool Pool) *DelegationRepo {
	return &DelegationRepo{pool: pool}
}

const delegationColumns = `owner_principal, delegate_principal, allowance_limit, allowance_spent`

func scanDelegation(row pgx.Row) (*domain.Delegation, error) {
	d := &domain.Delegation{}
	err := row.Scan(&d.Owner, &d.Delegate, &d.Limit, &d.Spent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// Get returns the delegation for an owner/delegate pair, or nil when
// none exists.
func (r *DelegationRepo) Get(ctx context.Context, owner, delegate string) (*domain.Delegation, error) {
	query := `SELECT ` + delegationColumns + ` FROM delegations
		WHERE owner_principal = $1 AND delegate_principal = $2`

	d, err := scanDelegation(r.pool.QueryRow(ctx, query, owner, delegate))
	if err != nil {
		return nil, fmt.Errorf("get delegation: %w", err)
	}
	return d, nil
}

// GetForUpdate returns the delegation with its row locked for the
// duration of the transaction.
func (r *DelegationRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, owner, delegate string) (*domain.Delegation, error) {
	query := `SELECT ` + delegationColumns + ` FROM delegations
		WHERE owner_principal = $1 AND delegate_principal = $2 FOR UPDATE`

	d, err := scanDelegation(tx.QueryRow(ctx, query, owner, delegate))
	if err != nil {
		return nil, fmt.Errorf("get delegation for update: %w", err)
	}
	return d, nil
}

// Put inserts or replaces the delegation within a transaction.
func (r *DelegationRepo) Put(ctx context.Context, tx pgx.Tx, d *domain.Delegation) error {
	query := `INSERT INTO delegations (` + delegationColumns + `)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_principal, delegate_principal) DO UPDATE SET
			allowance_limit = EXCLUDED.allowance_limit,
			allowance_spent = EXCLUDED.allowance_spent`

	if _, err := tx.Exec(ctx, query, d.Owner, d.Delegate, d.Limit, d.Spent); err != nil {
		return fmt.Errorf("put delegation: %w", err)
	}
	return nil
}

// Delete removes the delegation and reports whether one existed.
func (r *DelegationRepo) Delete(ctx context.Context, owner, delegate string) (bool, error) {
	query := `DELETE FROM delegations WHERE owner_principal = $1 AND delegate_principal = $2`

	tag, err := r.pool.Exec(ctx, query, owner, delegate)
	if err != nil {
		return false, fmt.Errorf("delete delegation: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
