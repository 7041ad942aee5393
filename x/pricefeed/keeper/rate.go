package keeper

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// readPrimaryRate reads the venue rate for a source, validates it, and
// returns the inverted quote/base rate at Unit scale with the venue
// timestamp.
//
// The checks run in a fixed order: venue call, zero rate, denominator scale,
// future timestamp, staleness, report count, bounds. Venue call failures
// abort the valuation; they are not folded into the risk flag.
func (k Keeper) readPrimaryRate(ctx context.Context, source types.Source) (math.Int, time.Time, error) {
	numerator, denominator, err := k.rateSource.MedianRate(ctx, source.FeedID)
	if err != nil {
		return math.Int{}, time.Time{}, fmt.Errorf("rate source read failed for feed %s: %w", source.FeedID, err)
	}

	// The venue's aggregate timestamp comes from its dedicated accessor, not
	// from the rate struct. Some venues leave the struct timestamp at the
	// round open time.
	timestamp, err := k.rateSource.MedianTimestamp(ctx, source.FeedID)
	if err != nil {
		return math.Int{}, time.Time{}, fmt.Errorf("timestamp read failed for feed %s: %w", source.FeedID, err)
	}

	if !numerator.IsPositive() {
		return math.Int{}, time.Time{}, types.ErrZeroRate.Wrapf("feed %s reported a non-positive rate", source.FeedID)
	}

	if !denominator.Equal(types.ExpectedRateScale) {
		return math.Int{}, time.Time{}, types.ErrUnexpectedDenominator.Wrapf(
			"feed %s denominator %s, expected %s", source.FeedID, denominator, types.ExpectedRateScale,
		)
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	if timestamp.Unix() > now.Unix() {
		return math.Int{}, time.Time{}, types.ErrFutureTimestamp.Wrapf(
			"feed %s timestamp %d ahead of block time %d", source.FeedID, timestamp.Unix(), now.Unix(),
		)
	}

	// age is non-negative here, the future check ran first.
	age := now.Unix() - timestamp.Unix()
	if uint64(age) > source.MaxAge {
		return math.Int{}, time.Time{}, types.ErrStalePrice.Wrapf(
			"feed %s is %ds old, max age %ds", source.FeedID, age, source.MaxAge,
		)
	}

	if source.MinReports > 0 {
		count, err := k.rateSource.NumRates(ctx, source.FeedID)
		if err != nil {
			return math.Int{}, time.Time{}, fmt.Errorf("report count read failed for feed %s: %w", source.FeedID, err)
		}
		if count < source.MinReports {
			return math.Int{}, time.Time{}, types.ErrInsufficientReports.Wrapf(
				"feed %s has %d reports, need %d", source.FeedID, count, source.MinReports,
			)
		}
	}

	invertedRate := types.InvertRate(numerator)

	// Bound checks are inclusive: a rate sitting exactly on a bound passes.
	if source.HasMinPrice() && invertedRate.LT(source.MinPrice) {
		return math.Int{}, time.Time{}, types.ErrPriceBelowMinimum.Wrapf(
			"rate %s below minimum %s for feed %s", invertedRate, source.MinPrice, source.FeedID,
		)
	}
	if source.HasMaxPrice() && invertedRate.GT(source.MaxPrice) {
		return math.Int{}, time.Time{}, types.ErrPriceAboveMaximum.Wrapf(
			"rate %s above maximum %s for feed %s", invertedRate, source.MaxPrice, source.FeedID,
		)
	}

	return invertedRate, timestamp, nil
}
