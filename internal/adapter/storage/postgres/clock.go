package postgres

import (
	"context"
	"fmt"

	"spendguard/internal/core/domain"
)

// LedgerClock reads time and an ordering sequence from the database so
// every node observes the same timeline. Sequence values are strictly
// increasing across the whole deployment.
type LedgerClock struct {
	pool Pool
}

// NewLedgerClock creates a new LedgerClock.
func NewLedgerClock(pool Pool) *LedgerClock {
	return &LedgerClock{pool: pool}
}

// Now returns the database clock paired with the next ledger sequence.
func (c *LedgerClock) Now(ctx context.Context) (domain.LedgerTime, error) {
	query := `SELECT EXTRACT(EPOCH FROM now())::bigint, nextval('ledger_sequence')`

	var t domain.LedgerTime
	if err := c.pool.QueryRow(ctx, query).Scan(&t.Unix, &t.Sequence); err != nil {
		return domain.LedgerTime{}, fmt.Errorf("read ledger clock: %w", err)
	}
	return t, nil
}
