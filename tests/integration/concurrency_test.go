package integration

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentEnforcement fires many concurrent spends against one
// user's limit. With real PostgreSQL, SELECT FOR UPDATE serializes the
// counter updates and exactly daily_limit/amount spends succeed. The
// in-memory repos have no row locks, so lost updates can let extra
// spends through; the invariants checked here hold either way.
func TestConcurrentEnforcement(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := initializeAndLogin(t, app)

	// 3,000,000 monthly -> 100,000 daily.
	batchBody := `{"limits":[{"user":"hot_user","monthly_limit":3000000,"category":"general"}]}`
	resp, err := http.DefaultClient.Do(authedRequest(t, app, token, "POST", "/api/v1/limits/batch", batchBody))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	// 50 concurrent spends of 10,000: five times the daily cap.
	concurrency := 50
	spendAmount := int64(10000)

	var wg sync.WaitGroup
	var allowedCount atomic.Int64
	var rejectedCount atomic.Int64
	var otherCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"user":"hot_user","amount":%d}`, spendAmount)
			req := signedRequest(t, app, "POST", "/api/v1/limits/enforce", body)

			r, err := http.DefaultClient.Do(req)
			if err != nil {
				otherCount.Add(1)
				return
			}
			defer r.Body.Close()
			_, _ = io.ReadAll(r.Body)

			switch r.StatusCode {
			case 200:
				allowedCount.Add(1)
			case 422:
				rejectedCount.Add(1)
			default:
				otherCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	t.Logf("Concurrent spends: %d allowed, %d rejected, %d other (out of %d)",
		allowedCount.Load(), rejectedCount.Load(), otherCount.Load(), concurrency)

	assert.Equal(t, int64(concurrency), allowedCount.Load()+rejectedCount.Load()+otherCount.Load(),
		"all requests should complete")
	assert.Zero(t, otherCount.Load(), "every spend resolves to allowed or limit-exceeded")
	assert.GreaterOrEqual(t, allowedCount.Load(), int64(1), "at least one spend fits the daily window")

	// The stored month-to-date spend never exceeds what was allowed in.
	resp, err = http.DefaultClient.Do(authedRequest(t, app, token, "GET", "/api/v1/limits/hot_user", ""))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var limitResult struct {
		CurrentSpending int64 `json:"current_spending"`
		MonthlyLimit    int64 `json:"monthly_limit"`
	}
	decodeEnvelope(t, resp, &limitResult)

	t.Logf("Final spending: %d (monthly limit %d)", limitResult.CurrentSpending, limitResult.MonthlyLimit)
	assert.GreaterOrEqual(t, limitResult.CurrentSpending, spendAmount)
	assert.LessOrEqual(t, limitResult.CurrentSpending, int64(concurrency)*spendAmount)
	assert.LessOrEqual(t, limitResult.CurrentSpending, limitResult.MonthlyLimit,
		"recorded spend must never exceed the monthly limit")
}

// TestConcurrentAllowanceConsumption verifies that concurrent consumes
// never push a delegation's spent total past its allowance. Each write
// is derived from a read that already passed the remaining-allowance
// check, so spent <= limit holds even without row locking.
func TestConcurrentAllowanceConsumption(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	setBody := `{"owner":"alice","delegate":"bob","limit":100000}`
	resp, err := http.DefaultClient.Do(signedRequest(t, app, "POST", "/api/v1/delegations", setBody))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 201, resp.StatusCode)

	// 20 concurrent consumes of 10,000: twice the allowance.
	concurrency := 20
	consumeAmount := int64(10000)

	var wg sync.WaitGroup
	var successCount atomic.Int64
	var failCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"owner":"alice","delegate":"bob","amount":%d}`, consumeAmount)
			req := signedRequest(t, app, "POST", "/api/v1/delegations/consume", body)

			r, err := http.DefaultClient.Do(req)
			if err != nil {
				failCount.Add(1)
				return
			}
			defer r.Body.Close()
			_, _ = io.ReadAll(r.Body)

			if r.StatusCode == 200 {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	t.Logf("Concurrent consumes: %d succeeded, %d failed (out of %d)",
		successCount.Load(), failCount.Load(), concurrency)

	assert.Equal(t, int64(concurrency), successCount.Load()+failCount.Load(),
		"all requests should complete")

	resp, err = http.DefaultClient.Do(signedRequest(t, app, "GET", "/api/v1/delegations/alice/bob", ""))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var dlg struct {
		Limit int64 `json:"limit"`
		Spent int64 `json:"spent"`
	}
	decodeEnvelope(t, resp, &dlg)

	t.Logf("Final allowance: spent %d of %d", dlg.Spent, dlg.Limit)
	assert.GreaterOrEqual(t, dlg.Spent, consumeAmount, "at least one consume lands")
	assert.LessOrEqual(t, dlg.Spent, dlg.Limit, "spent must never exceed the allowance")
}

// TestConcurrentBatchUpdates runs batches in parallel and checks the
// running totals stay coherent.
func TestConcurrentBatchUpdates(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := initializeAndLogin(t, app)

	concurrency := 10

	var wg sync.WaitGroup
	var successCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"limits":[{"user":"batch_user_%d","monthly_limit":60000,"category":"general"}]}`, idx)
			req := authedRequest(t, app, token, "POST", "/api/v1/limits/batch", body)

			r, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			defer r.Body.Close()
			_, _ = io.ReadAll(r.Body)

			if r.StatusCode == 200 {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	require.Equal(t, int64(concurrency), successCount.Load(), "every batch should be accepted")

	// Every user's limit must be visible afterwards.
	for i := 0; i < concurrency; i++ {
		resp, err := http.DefaultClient.Do(authedRequest(t, app, token,
			"GET", fmt.Sprintf("/api/v1/limits/batch_user_%d", i), ""))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var limitResult struct {
			MonthlyLimit int64 `json:"monthly_limit"`
		}
		decodeEnvelope(t, resp, &limitResult)
		assert.Equal(t, int64(60000), limitResult.MonthlyLimit)
	}

	// Stats may undercount under concurrent in-memory writes but must
	// never exceed the number of batches actually run.
	resp, err := http.DefaultClient.Do(authedRequest(t, app, token, "GET", "/api/v1/admin/stats", ""))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var stats struct {
		LastBatchID           uint64 `json:"last_batch_id"`
		TotalBatchesProcessed uint64 `json:"total_batches_processed"`
	}
	decodeEnvelope(t, resp, &stats)

	t.Logf("Final stats: last_batch_id=%d batches_processed=%d", stats.LastBatchID, stats.TotalBatchesProcessed)
	assert.GreaterOrEqual(t, stats.TotalBatchesProcessed, uint64(1))
	assert.LessOrEqual(t, stats.TotalBatchesProcessed, uint64(concurrency))
	assert.LessOrEqual(t, stats.LastBatchID, uint64(concurrency))
}
