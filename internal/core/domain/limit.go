package domain

import "math"

const (
	// MaxBatchSize bounds a single batch limit-update call.
	MaxBatchSize = 100

	// HighValueThreshold is the monthly limit at or above which a
	// high-value notification is emitted (smallest asset unit).
	HighValueThreshold int64 = 10_000_000_000_000_000

	// SecondsPerDay and SecondsPerMonth define the rolling windows.
	// A month is a fixed 30-day window, not a calendar month.
	SecondsPerDay   int64 = 86_400
	SecondsPerMonth int64 = SecondsPerDay * 30

	// MaxAmount is the saturation ceiling for all counter arithmetic.
	MaxAmount int64 = math.MaxInt64
)

// SpendingLimit is the per-principal monthly cap. The daily cap is never
// stored; it is derived from MonthlyLimit on every enforcement call.
type SpendingLimit struct {
	User            string `json:"user"`
	MonthlyLimit    int64  `json:"monthly_limit"` // Smallest asset unit
	CurrentSpending int64  `json:"current_spending"`
	Category        string `json:"category"`
	UpdatedAt       int64  `json:"updated_at"` // Period marker of last touch
	IsActive        bool   `json:"is_active"`
}

// DailyLimit derives the enforceable daily cap from the monthly limit.
// Any positive monthly limit yields a positive daily cap, even below 30.
func (l *SpendingLimit) DailyLimit() int64 {
	if l.MonthlyLimit <= 0 {
		return 0
	}
	base := l.MonthlyLimit / 30
	if base == 0 {
		return 1
	}
	return base
}

// SpendingLimitRequest is one entry of a batch limit update. Not persisted.
type SpendingLimitRequest struct {
	User         string `json:"user"`
	MonthlyLimit int64  `json:"monthly_limit"`
	Category     string `json:"category"`
}

// PeriodKind distinguishes the two rolling windows a counter belongs to.
type PeriodKind string

const (
	PeriodDaily   PeriodKind = "DAILY"
	PeriodMonthly PeriodKind = "MONTHLY"
)

// PeriodKey addresses one spending counter. Counters are created lazily
// (absence = 0) and never cleared; a new period id addresses a new key.
type PeriodKey struct {
	User string
	Kind PeriodKind
	ID   int64
}

// DayID returns the logical day identifier for a unix timestamp.
func DayID(unix int64) int64 { return unix / SecondsPerDay }

// MonthID returns the logical month identifier for a unix timestamp.
func MonthID(unix int64) int64 { return unix / SecondsPerMonth }

// DailyKey builds the counter key for a user's logical day.
func DailyKey(user string, dayID int64) PeriodKey {
	return PeriodKey{User: user, Kind: PeriodDaily, ID: dayID}
}

// MonthlyKey builds the counter key for a user's logical month.
func MonthlyKey(user string, monthID int64) PeriodKey {
	return PeriodKey{User: user, Kind: PeriodMonthly, ID: monthID}
}

// SaturatingAdd adds two non-negative amounts, clamping at MaxAmount
// instead of wrapping.
func SaturatingAdd(a, b int64) int64 {
	if a > MaxAmount-b {
		return MaxAmount
	}
	return a + b
}

// LimitUpdateResult is the per-item outcome of a batch update. Exactly one
// of Limit (success) or ErrorCode (failure) is set.
type LimitUpdateResult struct {
	User      string         `json:"user"`
	Success   bool           `json:"success"`
	Limit     *SpendingLimit `json:"limit,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
}

// BatchLimitMetrics aggregates one batch call.
type BatchLimitMetrics struct {
	TotalRequests     int    `json:"total_requests"`
	SuccessfulUpdates int    `json:"successful_updates"`
	FailedUpdates     int    `json:"failed_updates"`
	TotalLimitsValue  int64  `json:"total_limits_value"` // Saturating sum of successful limits
	AvgLimitAmount    int64  `json:"avg_limit_amount"`   // Integer-truncated mean, 0 when no successes
	ProcessedAt       uint64 `json:"processed_at"`       // Ledger sequence at processing time
}

// BatchLimitResult is the full outcome of one batch update call. Results
// preserve input order; failures are data, not errors.
type BatchLimitResult struct {
	BatchID       uint64              `json:"batch_id"`
	TotalRequests int                 `json:"total_requests"`
	Successful    int                 `json:"successful"`
	Failed        int                 `json:"failed"`
	Results       []LimitUpdateResult `json:"results"`
	Metrics       BatchLimitMetrics   `json:"metrics"`
}

// LedgerTime is a snapshot of the ledger clock: wall-clock seconds plus a
// monotonically increasing sequence number.
type LedgerTime struct {
	Unix     int64
	Sequence uint64
}

// DayID returns the logical day for this snapshot.
func (t LedgerTime) DayID() int64 { return DayID(t.Unix) }

// MonthID returns the logical month for this snapshot.
func (t LedgerTime) MonthID() int64 { return MonthID(t.Unix) }
