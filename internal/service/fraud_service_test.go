package service

import (
	"context"
	"testing"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fraudTestDeps struct {
	svc      *FraudServiceImpl
	counters *mocks.MockFraudCounterStore
	clock    *mocks.MockLedgerClock
	events   *mocks.MockEventPublisher
	ctrl     *gomock.Controller
}

func setupFraudService(t *testing.T, threshold, maxDaily int64) *fraudTestDeps {
	ctrl := gomock.NewController(t)
	d := &fraudTestDeps{
		counters: mocks.NewMockFraudCounterStore(ctrl),
		clock:    mocks.NewMockLedgerClock(ctrl),
		events:   mocks.NewMockEventPublisher(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewFraudService(d.counters, d.clock, d.events, threshold, maxDaily, zerolog.Nop())
	return d
}

var fraudNow = domain.LedgerTime{Unix: 1_700_000_000, Sequence: 90}

func TestFraudService_CheckTransaction_Clean(t *testing.T) {
	d := setupFraudService(t, 1_000_000, 5_000_000)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.clock.EXPECT().Now(ctx).Return(fraudNow, nil)
	d.counters.EXPECT().AddDailyTotal(ctx, "alice", fraudNow.DayID(), int64(500)).Return(int64(500), nil)

	check, err := d.svc.CheckTransaction(ctx, "alice", 500)
	require.NoError(t, err)
	assert.False(t, check.Flagged)
	assert.Empty(t, check.Reasons)
	assert.Equal(t, int64(500), check.DailyTotal)
}

func TestFraudService_CheckTransaction_AbnormalSize(t *testing.T) {
	d := setupFraudService(t, 1_000_000, 5_000_000)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.clock.EXPECT().Now(ctx).Return(fraudNow, nil)
	d.counters.EXPECT().AddDailyTotal(ctx, "alice", fraudNow.DayID(), int64(1_000_000)).Return(int64(1_000_000), nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			assert.Equal(t, []string{"fraud", "alert"}, event.Topic)
			return nil
		})

	check, err := d.svc.CheckTransaction(ctx, "alice", 1_000_000)
	require.NoError(t, err)
	assert.True(t, check.Flagged)
	assert.Contains(t, check.Reasons, domain.FraudReasonAbnormalSize)
}

func TestFraudService_CheckTransaction_DailyVelocity(t *testing.T) {
	d := setupFraudService(t, 1_000_000, 5_000_000)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.clock.EXPECT().Now(ctx).Return(fraudNow, nil)
	d.counters.EXPECT().AddDailyTotal(ctx, "alice", fraudNow.DayID(), int64(600_000)).Return(int64(5_200_000), nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	check, err := d.svc.CheckTransaction(ctx, "alice", 600_000)
	require.NoError(t, err)
	assert.True(t, check.Flagged)
	assert.Contains(t, check.Reasons, domain.FraudReasonDailyLimit)
	assert.NotContains(t, check.Reasons, domain.FraudReasonAbnormalSize)
	assert.Equal(t, int64(5_200_000), check.DailyTotal)
}

func TestFraudService_CheckTransaction_BothRules(t *testing.T) {
	d := setupFraudService(t, 1_000_000, 5_000_000)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.clock.EXPECT().Now(ctx).Return(fraudNow, nil)
	d.counters.EXPECT().AddDailyTotal(ctx, "alice", fraudNow.DayID(), int64(6_000_000)).Return(int64(6_000_000), nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	check, err := d.svc.CheckTransaction(ctx, "alice", 6_000_000)
	require.NoError(t, err)
	assert.True(t, check.Flagged)
	assert.Equal(t, []string{domain.FraudReasonAbnormalSize, domain.FraudReasonDailyLimit}, check.Reasons)
}

func TestFraudService_CheckTransaction_VelocityDisabled(t *testing.T) {
	d := setupFraudService(t, 1_000_000, 0)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.clock.EXPECT().Now(ctx).Return(fraudNow, nil)
	d.counters.EXPECT().AddDailyTotal(ctx, "alice", fraudNow.DayID(), int64(900)).Return(int64(999_999_999), nil)

	check, err := d.svc.CheckTransaction(ctx, "alice", 900)
	require.NoError(t, err)
	assert.False(t, check.Flagged, "maxDaily of zero disables the velocity rule")
}

func TestFraudService_CheckTransaction_FlaggedStillAccumulates(t *testing.T) {
	d := setupFraudService(t, 100, 5_000_000)
	defer d.ctrl.Finish()

	ctx := context.Background()
	// The daily total is accumulated even for a flagged transaction.
	d.clock.EXPECT().Now(ctx).Return(fraudNow, nil)
	d.counters.EXPECT().AddDailyTotal(ctx, "alice", fraudNow.DayID(), int64(200)).Return(int64(200), nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	check, err := d.svc.CheckTransaction(ctx, "alice", 200)
	require.NoError(t, err)
	assert.True(t, check.Flagged)
	assert.Equal(t, int64(200), check.DailyTotal)
}

func TestFraudService_CheckTransaction_InvalidInput(t *testing.T) {
	d := setupFraudService(t, 1_000_000, 5_000_000)
	defer d.ctrl.Finish()

	_, err := d.svc.CheckTransaction(context.Background(), "alice", 0)
	assertAppError(t, err, "LIMIT_001")

	_, err = d.svc.CheckTransaction(context.Background(), "bad user", 100)
	assertAppError(t, err, "LIMIT_006")
}
