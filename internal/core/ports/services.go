package ports

import (
	"context"
	"time"

	"spendguard/internal/core/domain"
)

// LedgerClock exposes the external time source: wall-clock seconds plus a
// monotonically increasing sequence number, advanced only by the host.
type LedgerClock interface {
	Now(ctx context.Context) (domain.LedgerTime, error)
}

// EventPublisher is the append-only notification sink. The core decides
// what and when to emit; delivery failures must not fail the operation
// that emitted the event.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the admin surface.
type TokenService interface {
	Generate(principal string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Principal string
}

// SignatureService handles HMAC-SHA256 signing for the enforcement API.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// FraudCounterStore accumulates rolling daily totals for fraud screening.
// Unlike enforcement counters these are always accumulated, even when the
// transaction is flagged.
type FraudCounterStore interface {
	// AddDailyTotal adds amount to the user's total for the given logical
	// day and returns the new total.
	AddDailyTotal(ctx context.Context, user string, dayID int64, amount int64) (int64, error)
}

// --- Service Ports (Business Logic) ---

// BatchService processes administrative bulk limit reconfiguration.
type BatchService interface {
	BatchUpdateLimits(ctx context.Context, caller string, requests []domain.SpendingLimitRequest) (*domain.BatchLimitResult, error)
}

// EnforcementService checks and records spends against configured limits.
type EnforcementService interface {
	// EnforceSpendingLimit is all-or-nothing: either both window counters
	// update, or the call fails and neither is touched.
	EnforceSpendingLimit(ctx context.Context, user string, amount int64) error
	GetSpendingLimit(ctx context.Context, user string) (*domain.SpendingLimit, error)
}

// AdminService owns the administrator capability and the running totals.
type AdminService interface {
	Initialize(ctx context.Context, admin, password string) error
	Login(ctx context.Context, principal, password string) (string, time.Time, error)
	GetAdmin(ctx context.Context) (string, error)
	SetAdmin(ctx context.Context, caller, newAdmin string) error
	GetLastBatchID(ctx context.Context) (uint64, error)
	GetTotalLimitsUpdated(ctx context.Context) (uint64, error)
	GetTotalBatchesProcessed(ctx context.Context) (uint64, error)
}

// DelegationService manages per-pair spending allowances.
type DelegationService interface {
	SetDelegation(ctx context.Context, owner, delegate string, limit int64) error
	RevokeDelegation(ctx context.Context, owner, delegate string) error
	ConsumeAllowance(ctx context.Context, owner, delegate string, amount int64) error
	GetDelegation(ctx context.Context, owner, delegate string) (*domain.Delegation, error)
}

// FraudService screens transactions against size and velocity rules.
type FraudService interface {
	CheckTransaction(ctx context.Context, user string, amount int64) (*domain.FraudCheck, error)
}
