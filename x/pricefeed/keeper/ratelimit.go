package keeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// RateLimiter tracks a token bucket per query client. Stale buckets are
// dropped after an idle interval so the map does not grow unbounded.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rps      rate.Limit
	burst    int

	cleanupInterval time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter
// rps: number of requests allowed per second per client
// burst: maximum burst size per client
func NewRateLimiter(rps, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters:        make(map[string]*clientLimiter),
		rps:             rate.Limit(rps),
		burst:           burst,
		cleanupInterval: 5 * time.Minute,
	}

	go rl.cleanup()

	return rl
}

// Allow checks if a request from the given client should be allowed
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	cl, exists := rl.limiters[clientID]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.limiters[clientID] = cl
	}
	cl.lastSeen = time.Now()
	rl.mu.Unlock()

	return cl.limiter.Allow()
}

// cleanup periodically removes idle client buckets
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for clientID, cl := range rl.limiters {
			if now.Sub(cl.lastSeen) > rl.cleanupInterval {
				delete(rl.limiters, clientID)
			}
		}
		rl.mu.Unlock()
	}
}

// getClientID extracts a client identifier from the context
// Priority: metadata > peer IP
func getClientID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if clientIDs := md.Get("x-client-id"); len(clientIDs) > 0 {
			return clientIDs[0]
		}
		if apiKeys := md.Get("x-api-key"); len(apiKeys) > 0 {
			return apiKeys[0]
		}
	}

	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}

	return "unknown"
}

// RateLimitedQueryServer wraps a query server with per-client rate limiting.
// Valuation queries hit two feeds per call, so public RPC endpoints front
// the query service with this wrapper.
type RateLimitedQueryServer struct {
	types.QueryServer
	limiter *RateLimiter
}

// NewRateLimitedQueryServer creates a new rate-limited query server
func NewRateLimitedQueryServer(qs types.QueryServer, limiter *RateLimiter) *RateLimitedQueryServer {
	return &RateLimitedQueryServer{
		QueryServer: qs,
		limiter:     limiter,
	}
}

// checkRateLimit checks rate limit and returns error if exceeded
func (rlqs *RateLimitedQueryServer) checkRateLimit(ctx context.Context) error {
	clientID := getClientID(ctx)
	if !rlqs.limiter.Allow(clientID) {
		return status.Errorf(
			codes.ResourceExhausted,
			"query rate limit exceeded",
		)
	}
	return nil
}

// Params wraps the Params query with rate limiting
func (rlqs *RateLimitedQueryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Params: rate limit: %w", err)
	}
	return rlqs.QueryServer.Params(ctx, req)
}

// Source wraps the Source query with rate limiting
func (rlqs *RateLimitedQueryServer) Source(ctx context.Context, req *types.QuerySourceRequest) (*types.QuerySourceResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Source: rate limit: %w", err)
	}
	return rlqs.QueryServer.Source(ctx, req)
}

// Sources wraps the Sources query with rate limiting
func (rlqs *RateLimitedQueryServer) Sources(ctx context.Context, req *types.QuerySourcesRequest) (*types.QuerySourcesResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Sources: rate limit: %w", err)
	}
	return rlqs.QueryServer.Sources(ctx, req)
}

// RiskOff wraps the RiskOff query with rate limiting
func (rlqs *RateLimitedQueryServer) RiskOff(ctx context.Context, req *types.QueryRiskOffRequest) (*types.QueryRiskOffResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("RiskOff: rate limit: %w", err)
	}
	return rlqs.QueryServer.RiskOff(ctx, req)
}

// PegState wraps the PegState query with rate limiting
func (rlqs *RateLimitedQueryServer) PegState(ctx context.Context, req *types.QueryPegStateRequest) (*types.QueryPegStateResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("PegState: rate limit: %w", err)
	}
	return rlqs.QueryServer.PegState(ctx, req)
}

// Value wraps the Value query with rate limiting
func (rlqs *RateLimitedQueryServer) Value(ctx context.Context, req *types.QueryValueRequest) (*types.QueryValueResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Value: rate limit: %w", err)
	}
	return rlqs.QueryServer.Value(ctx, req)
}

// LiquidationValue wraps the LiquidationValue query with rate limiting
func (rlqs *RateLimitedQueryServer) LiquidationValue(ctx context.Context, req *types.QueryLiquidationValueRequest) (*types.QueryLiquidationValueResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("LiquidationValue: rate limit: %w", err)
	}
	return rlqs.QueryServer.LiquidationValue(ctx, req)
}

// Capability wraps the Capability query with rate limiting
func (rlqs *RateLimitedQueryServer) Capability(ctx context.Context, req *types.QueryCapabilityRequest) (*types.QueryCapabilityResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Capability: rate limit: %w", err)
	}
	return rlqs.QueryServer.Capability(ctx, req)
}
