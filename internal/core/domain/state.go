package domain

// BatchState holds the running totals persisted across batch calls.
type BatchState struct {
	LastBatchID           uint64
	TotalLimitsUpdated    uint64
	TotalBatchesProcessed uint64
}

// FraudCheck is the outcome of a fraud screen. Reasons lists every rule
// that tripped, in evaluation order.
type FraudCheck struct {
	Flagged    bool     `json:"flagged"`
	Reasons    []string `json:"reasons,omitempty"`
	DailyTotal int64    `json:"daily_total"`
}

// Fraud rule identifiers.
const (
	FraudReasonAbnormalSize = "abnormal_size"
	FraudReasonDailyLimit   = "daily_limit"
)
