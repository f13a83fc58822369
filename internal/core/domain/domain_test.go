package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpendingLimit_DailyLimit(t *testing.T) {
	tests := []struct {
		name    string
		monthly int64
		want    int64
	}{
		{"zero", 0, 0},
		{"negative", -100, 0},
		{"below thirty floors to one", 1, 1},
		{"twenty nine floors to one", 29, 1},
		{"exactly thirty", 30, 1},
		{"thirty one truncates", 31, 1},
		{"sixty", 60, 2},
		{"typical", 300_000, 10_000},
		{"max divides cleanly", MaxAmount, MaxAmount / 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &SpendingLimit{MonthlyLimit: tt.monthly}
			assert.Equal(t, tt.want, l.DailyLimit())
		})
	}
}

func TestPeriodIDs(t *testing.T) {
	// 1_700_000_000 = 2023-11-14T22:13:20Z
	assert.Equal(t, int64(19675), DayID(1_700_000_000))
	assert.Equal(t, int64(655), MonthID(1_700_000_000))

	// Consecutive seconds within the same day map to the same id.
	assert.Equal(t, DayID(1_700_000_000), DayID(1_700_000_001))

	// Day boundary
	assert.Equal(t, int64(0), DayID(SecondsPerDay-1))
	assert.Equal(t, int64(1), DayID(SecondsPerDay))
}

func TestLedgerTime_Periods(t *testing.T) {
	lt := LedgerTime{Unix: 1_700_000_000, Sequence: 42}
	assert.Equal(t, DayID(1_700_000_000), lt.DayID())
	assert.Equal(t, MonthID(1_700_000_000), lt.MonthID())
}

func TestPeriodKeys(t *testing.T) {
	dk := DailyKey("alice", 19675)
	assert.Equal(t, PeriodKey{User: "alice", Kind: PeriodDaily, ID: 19675}, dk)

	mk := MonthlyKey("alice", 655)
	assert.Equal(t, PeriodKey{User: "alice", Kind: PeriodMonthly, ID: 655}, mk)
}

func TestSaturatingAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"normal", 100, 200, 300},
		{"zero", 0, 0, 0},
		{"at ceiling", MaxAmount, 0, MaxAmount},
		{"overflow clamps", MaxAmount, 1, MaxAmount},
		{"both large", MaxAmount - 5, 10, MaxAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SaturatingAdd(tt.a, tt.b))
		})
	}
}

func TestValidPrincipal(t *testing.T) {
	assert.True(t, ValidPrincipal("alice"))
	assert.True(t, ValidPrincipal("GABCD1234.acct-7_x"))
	assert.True(t, ValidPrincipal(strings.Repeat("a", MaxPrincipalLen)))

	assert.False(t, ValidPrincipal(""))
	assert.False(t, ValidPrincipal("has space"))
	assert.False(t, ValidPrincipal("semi;colon"))
	assert.False(t, ValidPrincipal(strings.Repeat("a", MaxPrincipalLen+1)))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("groceries"))
	assert.True(t, ValidCategory(strings.Repeat("c", MaxCategoryLen)))

	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("two words"))
	assert.False(t, ValidCategory(strings.Repeat("c", MaxCategoryLen+1)))
}

func TestDelegation_Remaining(t *testing.T) {
	tests := []struct {
		name         string
		limit, spent int64
		want         int64
	}{
		{"untouched", 10_000, 0, 10_000},
		{"partial", 10_000, 4_000, 6_000},
		{"exhausted", 10_000, 10_000, 0},
		{"overspent never negative", 10_000, 12_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Delegation{Limit: tt.limit, Spent: tt.spent}
			assert.Equal(t, tt.want, d.Remaining())
		})
	}
}

func TestEventTopics(t *testing.T) {
	assert.Equal(t, []string{"limits", "batch_started"}, BatchStarted(1, 3).Topic)
	assert.Equal(t, []string{"limits", "limit_updated"}, LimitUpdated(1, SpendingLimit{User: "alice"}).Topic)
	assert.Equal(t, []string{"limits", "batch_completed"}, BatchCompleted(1, 3, 0, 100).Topic)
	assert.Equal(t, []string{"limits", "limit_exceeded"}, LimitExceeded("alice", 10, 1, 2).Topic)
	assert.Equal(t, []string{"delegation", "set"}, DelegationSet("alice", "bob", 10).Topic)
	assert.Equal(t, []string{"fraud", "alert"}, FraudAlert("alice", 10, []string{FraudReasonAbnormalSize}).Topic)
}
