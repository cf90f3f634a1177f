package farm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// Two messages racing to harvest the same ready plot: exactly one wins, the
// loser sees plot-not-ready, and the yield is credited once.
func TestConcurrentHarvestSingleWinner(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.svc.Plant(ctx, testPlatform, testPlatformID, testUsername, "radish", 0)
	require.NoError(t, err)
	h.clock.Advance(testRadish.GrowthDuration)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = h.svc.Harvest(ctx, testPlatform, testPlatformID, testUsername, 0)
		}(i)
	}
	wg.Wait()

	successes, notReady := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, domain.ErrPlotNotReady)
			notReady++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, notReady)

	status, err := h.svc.Status(ctx, testPlatform, testPlatformID, testUsername)
	require.NoError(t, err)
	assert.Equal(t, int64(120), status.Balances[domain.ResourceMoney],
		"yield credited exactly once")
}

// Concurrent plants on distinct plots of one account serialize and both
// succeed; the costs compound.
func TestConcurrentPlantsSerialize(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	// Register up front so both goroutines resolve the same account.
	_, err := h.svc.Status(ctx, testPlatform, testPlatformID, testUsername)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = h.svc.Plant(ctx, testPlatform, testPlatformID, testUsername, "radish", i)
		}(i)
	}
	wg.Wait()

	for i, err := range results {
		assert.NoError(t, err, "plant on plot %d", i)
	}

	status, err := h.svc.Status(ctx, testPlatform, testPlatformID, testUsername)
	require.NoError(t, err)
	assert.Equal(t, testStartingBalance-2*testRadish.PlantingCost, status.Balances[domain.ResourceMoney])
	assert.Equal(t, domain.PlotStatePlanted, status.Plots[0].State)
	assert.Equal(t, domain.PlotStatePlanted, status.Plots[1].State)
}

// Accounts are independent critical sections: many accounts mutating at
// once never interfere with each other's balances.
func TestAccountsProgressIndependently(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	const accounts = 8
	var wg sync.WaitGroup
	errs := make([]error, accounts)
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i := 0; i < accounts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			platformID := "discord-" + ids[i]
			if _, err := h.svc.Plant(ctx, testPlatform, platformID, testUsername, "radish", 0); err != nil {
				errs[i] = err
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "account %d", i)
	}

	for i := 0; i < accounts; i++ {
		status, err := h.svc.Status(ctx, testPlatform, "discord-"+ids[i], testUsername)
		require.NoError(t, err)
		assert.Equal(t, testStartingBalance-testRadish.PlantingCost, status.Balances[domain.ResourceMoney])
	}
}

// A lazy evaluation far past ready_at still resolves to a single harvest at
// the stored yield; downtime does not duplicate or decay crops.
func TestHarvestAfterLongIdle(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	_, err := h.svc.Plant(ctx, testPlatform, testPlatformID, testUsername, "radish", 0)
	require.NoError(t, err)

	h.clock.Advance(30 * 24 * time.Hour)

	resp, err := h.svc.Harvest(ctx, testPlatform, testPlatformID, testUsername, 0)
	require.NoError(t, err)
	assert.Equal(t, testRadish.YieldAmount, resp.ResourcesGained[domain.ResourceMoney])

	_, err = h.svc.Harvest(ctx, testPlatform, testPlatformID, testUsername, 0)
	assert.ErrorIs(t, err, domain.ErrPlotNotReady)
}
