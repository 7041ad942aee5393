package keeper_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cairn-chain/cairn/x/pricefeed/keeper"
)

// TestRateLimiterBasic tests basic rate limiting functionality
func TestRateLimiterBasic(t *testing.T) {
	t.Parallel()

	// 10 requests/second, burst of 5
	limiter := keeper.NewRateLimiter(10, 5)

	clientID := "test-client"

	for i := 0; i < 5; i++ {
		require.True(t, limiter.Allow(clientID), "request %d should be allowed", i)
	}

	// Burst exhausted.
	require.False(t, limiter.Allow(clientID), "6th request should be denied")
}

// TestRateLimiterRefill tests that tokens refill over time
func TestRateLimiterRefill(t *testing.T) {
	t.Parallel()

	limiter := keeper.NewRateLimiter(10, 2)

	clientID := "test-client"

	for i := 0; i < 2; i++ {
		limiter.Allow(clientID)
	}
	require.False(t, limiter.Allow(clientID))

	// 150ms at 10/sec refills at least one token.
	time.Sleep(150 * time.Millisecond)
	require.True(t, limiter.Allow(clientID))
}

// TestRateLimiterDifferentClients tests that clients have separate buckets
func TestRateLimiterDifferentClients(t *testing.T) {
	t.Parallel()

	limiter := keeper.NewRateLimiter(10, 3)

	for i := 0; i < 3; i++ {
		limiter.Allow("client1")
	}
	require.False(t, limiter.Allow("client1"))

	require.True(t, limiter.Allow("client2"))
	require.True(t, limiter.Allow("client2"))
	require.True(t, limiter.Allow("client2"))
	require.False(t, limiter.Allow("client2"))
}

// TestRateLimiterConcurrent tests the limiter under concurrent access
func TestRateLimiterConcurrent(t *testing.T) {
	t.Parallel()

	limiter := keeper.NewRateLimiter(100, 50)

	clientID := "concurrent-client"

	var wg sync.WaitGroup
	allowedCount := 0
	var mu sync.Mutex

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow(clientID) {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	// Roughly the burst size, with slack for refill during the run.
	require.GreaterOrEqual(t, allowedCount, 40, "should allow at least 40 requests")
	require.LessOrEqual(t, allowedCount, 60, "should not allow more than 60 requests")
}
