package types

import (
	"context"
	"time"

	"cosmossdk.io/math"
)

// RateSource is the venue supplying the primary cross rate. The update
// timestamp has its own accessor: it must never be recovered from a secondary
// return value of the rate read, where a fixed denominator can masquerade as
// a plausible-looking timestamp.
type RateSource interface {
	// MedianRate returns the venue's median rate for a feed as a
	// numerator/denominator pair. The denominator is expected to equal
	// ExpectedRateScale on every read.
	MedianRate(ctx context.Context, feedID string) (numerator, denominator math.Int, err error)

	// MedianTimestamp returns when the median for a feed was last updated.
	MedianTimestamp(ctx context.Context, feedID string) (time.Time, error)

	// NumRates returns how many individual reports back the current median.
	NumRates(ctx context.Context, feedID string) (uint64, error)
}

// PegFeed is the secondary reference feed for the stablecoin assumed to trade
// near parity.
type PegFeed interface {
	// LatestRoundData returns the most recent round.
	LatestRoundData(ctx context.Context) (RoundData, error)

	// Decimals returns the precision of Answer values.
	Decimals(ctx context.Context) (uint8, error)
}

// =============================================================================
// Local Pricefeed Interfaces for External Consumers
// =============================================================================

// PricefeedKeeperV1 is the versioned interface the debt ledger module
// consumes: the four valuation entry points plus the risk-off gate it must
// check before any debt-issuing action.
type PricefeedKeeperV1 interface {
	// PeekValue values quote-asset amounts on the mint path, side-effect free.
	PeekValue(ctx context.Context, base, quote string, amount math.Int) (math.Int, time.Time, error)

	// GetValue is the transactional-path twin of PeekValue; the computation
	// is identical.
	GetValue(ctx context.Context, base, quote string, amount math.Int) (math.Int, time.Time, error)

	// PeekLiquidationValue values collateral during forced liquidation with
	// the peg premium capped at parity.
	PeekLiquidationValue(ctx context.Context, base, quote string, amount math.Int) (math.Int, time.Time, error)

	// GetLiquidationValue is the transactional-path twin of PeekLiquidationValue.
	GetLiquidationValue(ctx context.Context, base, quote string, amount math.Int) (math.Int, time.Time, error)

	// IsRiskOff reports whether the circuit breaker currently blocks new
	// debt issuance.
	IsRiskOff(ctx context.Context) bool
}
