package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"spendguard/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repository implementations for integration tests.
// These avoid the need for a real PostgreSQL instance while exercising
// the full HTTP -> service -> repository flow. Transaction handles are
// accepted but ignored; a sync.RWMutex stands in for row-level locking.

// --- Limit repo ---

type inMemoryLimitRepo struct {
	mu       sync.RWMutex
	limits   map[string]*domain.SpendingLimit
	counters map[domain.PeriodKey]int64
}

func newInMemoryLimitRepo() *inMemoryLimitRepo {
	return &inMemoryLimitRepo{
		limits:   make(map[string]*domain.SpendingLimit),
		counters: make(map[domain.PeriodKey]int64),
	}
}

func (r *inMemoryLimitRepo) GetLimit(ctx context.Context, user string) (*domain.SpendingLimit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.limits[user]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *inMemoryLimitRepo) GetLimitForUpdate(ctx context.Context, tx pgx.Tx, user string) (*domain.SpendingLimit, error) {
	return r.GetLimit(ctx, user)
}

func (r *inMemoryLimitRepo) PutLimit(ctx context.Context, tx pgx.Tx, limit *domain.SpendingLimit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *limit
	r.limits[limit.User] = &cp
	return nil
}

func (r *inMemoryLimitRepo) HasLimit(ctx context.Context, user string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.limits[user]
	return ok, nil
}

func (r *inMemoryLimitRepo) GetPeriodCounter(ctx context.Context, tx pgx.Tx, key domain.PeriodKey) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[key], nil
}

func (r *inMemoryLimitRepo) PutPeriodCounter(ctx context.Context, tx pgx.Tx, key domain.PeriodKey, total int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[key] = total
	return nil
}

// --- State repo ---

type inMemoryStateRepo struct {
	mu          sync.RWMutex
	initialized bool
	admin       string
	hash        string
	batch       domain.BatchState
}

func newInMemoryStateRepo() *inMemoryStateRepo {
	return &inMemoryStateRepo{}
}

func (r *inMemoryStateRepo) Initialize(ctx context.Context, admin string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		return fmt.Errorf("state already initialized")
	}
	r.initialized = true
	r.admin = admin
	r.hash = passwordHash
	return nil
}

func (r *inMemoryStateRepo) GetAdmin(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.admin, nil
}

func (r *inMemoryStateRepo) GetAdminPasswordHash(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hash, nil
}

func (r *inMemoryStateRepo) SetAdmin(ctx context.Context, newAdmin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admin = newAdmin
	return nil
}

func (r *inMemoryStateRepo) GetBatchStateForUpdate(ctx context.Context, tx pgx.Tx) (*domain.BatchState, error) {
	return r.GetBatchState(ctx)
}

func (r *inMemoryStateRepo) PutBatchState(ctx context.Context, tx pgx.Tx, state *domain.BatchState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batch = *state
	return nil
}

func (r *inMemoryStateRepo) GetBatchState(ctx context.Context) (*domain.BatchState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.batch
	return &cp, nil
}

// --- Delegation repo ---

type inMemoryDelegationRepo struct {
	mu          sync.RWMutex
	delegations map[string]*domain.Delegation
}

func newInMemoryDelegationRepo() *inMemoryDelegationRepo {
	return &inMemoryDelegationRepo{delegations: make(map[string]*domain.Delegation)}
}

func delegationKey(owner, delegate string) string {
	return owner + "|" + delegate
}

func (r *inMemoryDelegationRepo) Get(ctx context.Context, owner, delegate string) (*domain.Delegation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.delegations[delegationKey(owner, delegate)]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *inMemoryDelegationRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, owner, delegate string) (*domain.Delegation, error) {
	return r.Get(ctx, owner, delegate)
}

func (r *inMemoryDelegationRepo) Put(ctx context.Context, tx pgx.Tx, delegation *domain.Delegation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *delegation
	r.delegations[delegationKey(delegation.Owner, delegation.Delegate)] = &cp
	return nil
}

func (r *inMemoryDelegationRepo) Delete(ctx context.Context, owner, delegate string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := delegationKey(owner, delegate)
	_, ok := r.delegations[key]
	delete(r.delegations, key)
	return ok, nil
}

// --- Ledger clock ---

// fakeLedgerClock returns wall-clock time with an atomically increasing
// sequence, mirroring the sequence column the real clock reads from
// PostgreSQL.
type fakeLedgerClock struct {
	seq atomic.Uint64
}

func (c *fakeLedgerClock) Now(ctx context.Context) (domain.LedgerTime, error) {
	return domain.LedgerTime{
		Unix:     time.Now().Unix(),
		Sequence: c.seq.Add(1),
	}, nil
}

// --- Transactor ---

type inMemoryTransactor struct{}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx implements pgx.Tx as a no-op for in-memory testing.
type noopTx struct{}

func (tx *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return tx, nil }
func (tx *noopTx) Commit(ctx context.Context) error          { return nil }
func (tx *noopTx) Rollback(ctx context.Context) error        { return nil }
func (tx *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (tx *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (tx *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (tx *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (tx *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (tx *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (tx *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (tx *noopTx) Conn() *pgx.Conn                                               { return nil }
