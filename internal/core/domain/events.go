package domain

// Event is a structured notification for the append-only event sink: a
// topic tuple plus a flat payload. The core decides what and when to emit;
// delivery is the sink's concern.
type Event struct {
	Topic   []string       `json:"topic"`
	Payload map[string]any `json:"payload"`
}

// Event topics for the spending-limit engine.
const (
	TopicLimits     = "limits"
	TopicDelegation = "delegation"
	TopicFraud      = "fraud"
)

// BatchStarted is emitted when batch processing begins.
func BatchStarted(batchID uint64, requestCount int) Event {
	return Event{
		Topic: []string{TopicLimits, "batch_started"},
		Payload: map[string]any{
			"batch_id":      batchID,
			"request_count": requestCount,
		},
	}
}

// LimitUpdated is emitted for each successful limit update in a batch.
func LimitUpdated(batchID uint64, limit SpendingLimit) Event {
	return Event{
		Topic: []string{TopicLimits, "limit_updated"},
		Payload: map[string]any{
			"batch_id":      batchID,
			"user":          limit.User,
			"monthly_limit": limit.MonthlyLimit,
			"category":      limit.Category,
		},
	}
}

// LimitUpdateFailed is emitted for each failed limit update in a batch.
func LimitUpdateFailed(batchID uint64, user, errorCode string) Event {
	return Event{
		Topic: []string{TopicLimits, "limit_update_failed"},
		Payload: map[string]any{
			"batch_id":   batchID,
			"user":       user,
			"error_code": errorCode,
		},
	}
}

// HighValueLimit is emitted alongside LimitUpdated when the new limit is
// at or above HighValueThreshold.
func HighValueLimit(batchID uint64, user string, monthlyLimit int64) Event {
	return Event{
		Topic: []string{TopicLimits, "high_value_limit"},
		Payload: map[string]any{
			"batch_id":      batchID,
			"user":          user,
			"monthly_limit": monthlyLimit,
		},
	}
}

// BatchCompleted is emitted once per batch after all items are processed.
func BatchCompleted(batchID uint64, successful, failed int, totalValue int64) Event {
	return Event{
		Topic: []string{TopicLimits, "batch_completed"},
		Payload: map[string]any{
			"batch_id":    batchID,
			"successful":  successful,
			"failed":      failed,
			"total_value": totalValue,
		},
	}
}

// LimitExceeded is emitted when a spend violates either window. It carries
// the attempted amount and the remaining headroom of both windows at the
// time of the attempt.
func LimitExceeded(user string, attempted, remainingDaily, remainingMonthly int64) Event {
	return Event{
		Topic: []string{TopicLimits, "limit_exceeded"},
		Payload: map[string]any{
			"user":              user,
			"attempted_amount":  attempted,
			"remaining_daily":   remainingDaily,
			"remaining_monthly": remainingMonthly,
		},
	}
}

// DelegationSet is emitted when an owner grants or adjusts an allowance.
func DelegationSet(owner, delegate string, limit int64) Event {
	return Event{
		Topic: []string{TopicDelegation, "set"},
		Payload: map[string]any{
			"owner":    owner,
			"delegate": delegate,
			"limit":    limit,
		},
	}
}

// DelegationRevoked is emitted when an owner revokes an allowance.
func DelegationRevoked(owner, delegate string) Event {
	return Event{
		Topic: []string{TopicDelegation, "revoked"},
		Payload: map[string]any{
			"owner":    owner,
			"delegate": delegate,
		},
	}
}

// DelegationConsumed is emitted when a delegate spends allowance.
func DelegationConsumed(owner, delegate string, amount int64) Event {
	return Event{
		Topic: []string{TopicDelegation, "consumed"},
		Payload: map[string]any{
			"owner":    owner,
			"delegate": delegate,
			"amount":   amount,
		},
	}
}

// FraudAlert is emitted when a transaction trips one or more fraud rules.
func FraudAlert(user string, amount int64, reasons []string) Event {
	return Event{
		Topic: []string{TopicFraud, "alert"},
		Payload: map[string]any{
			"user":    user,
			"amount":  amount,
			"reasons": reasons,
		},
	}
}
