package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// PeekValue prices amount units of base in quote under mint-mode peg gating.
// It reads feeds fresh and touches no state. The returned update time is the
// older of the two contributing feed timestamps.
func (k Keeper) PeekValue(ctx context.Context, base, quote string, amount math.Int) (math.Int, time.Time, error) {
	return k.value(ctx, base, quote, amount, false)
}

// GetValue performs the identical computation as PeekValue. Both entry
// points exist for interface parity with consumers that mutate their own
// state around the call; this module mutates nothing on either.
func (k Keeper) GetValue(ctx context.Context, base, quote string, amount math.Int) (math.Int, time.Time, error) {
	return k.value(ctx, base, quote, amount, false)
}

// PeekLiquidationValue prices under the liquidation peg policy: no mint-band
// gate, multiplier capped at parity on the high side.
func (k Keeper) PeekLiquidationValue(ctx context.Context, base, quote string, amount math.Int) (math.Int, time.Time, error) {
	return k.value(ctx, base, quote, amount, true)
}

// GetLiquidationValue performs the identical computation as
// PeekLiquidationValue.
func (k Keeper) GetLiquidationValue(ctx context.Context, base, quote string, amount math.Int) (math.Int, time.Time, error) {
	return k.value(ctx, base, quote, amount, true)
}

// value composes one valuation: amount, times the inverted primary rate,
// times the peg multiplier, floored at each fixed-point multiply.
func (k Keeper) value(ctx context.Context, base, quote string, amount math.Int, liquidation bool) (val math.Int, updateTime time.Time, err error) {
	path := "mint"
	if liquidation {
		path = "liquidation"
	}
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		GetPricefeedMetrics().ValuationsTotal.WithLabelValues(path, result).Inc()
	}()

	if amount.IsNil() || amount.IsNegative() {
		return math.Int{}, time.Time{}, types.ErrInvalidAmount.Wrap("amount must be non-negative")
	}

	// Identity pairs price at face value without touching any feed.
	if base == quote {
		return amount, sdk.UnwrapSDKContext(ctx).BlockTime(), nil
	}

	source, err := k.GetSource(ctx, base, quote)
	if err != nil {
		return math.Int{}, time.Time{}, err
	}

	invertedRate, rateTime, err := k.readPrimaryRate(ctx, source)
	if err != nil {
		return math.Int{}, time.Time{}, err
	}

	reading := k.ReadPegReading(ctx)

	var multiplier math.Int
	if liquidation {
		multiplier, err = reading.LiquidationMultiplier()
	} else {
		multiplier, err = reading.MintMultiplier(k.GetParams(ctx).MintBand)
	}
	if err != nil {
		return math.Int{}, time.Time{}, err
	}

	val = types.MulDiv(amount, invertedRate, types.Unit)
	val = types.MulDiv(val, multiplier, types.Unit)

	// The reading is valid here, so its update time is meaningful.
	updateTime = rateTime
	if reading.UpdatedAt.Before(updateTime) {
		updateTime = reading.UpdatedAt
	}

	return val, updateTime, nil
}
