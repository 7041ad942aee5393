package keeper_test

import (
	"errors"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/cairn-chain/cairn/testutil/keeper"
	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// setPegPrice scripts the fake peg feed to report the given USD price at its
// native 18 decimals.
func setPegPrice(pegFeed *keepertest.FakePegFeed, price string) {
	pegFeed.Round.Answer = math.LegacyMustNewDecFromStr(price).MulInt(types.Unit).TruncateInt()
}

func units(n int64) math.Int {
	return math.NewInt(n).Mul(types.Unit)
}

func TestValueParity(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// Default fakes: rate inverts to 100 units, peg at exact parity. Ten
	// base units price to exactly one thousand quote units.
	val, updateTime, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	require.True(t, val.Equal(units(1000)), "value = %s", val)
	require.Equal(t, keepertest.BlockTime.Add(-time.Minute), updateTime)
}

func TestValueExactRate(t *testing.T) {
	k, rateSource, _, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// An 8000-unit numerator inverts to exactly 125 units.
	rateSource.Numerator = units(8000)

	val, _, err := k.GetValue(ctx, "uusd", "ucairn", units(100))
	require.NoError(t, err)
	require.True(t, val.Equal(units(12500)), "value = %s", val)
}

func TestValueFractionalRate(t *testing.T) {
	k, rateSource, _, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// A 7757-unit numerator inverts to roughly 128.9158 units, so one
	// hundred base units land between 12891 and 12892 quote units.
	rateSource.Numerator = units(7757)

	val, _, err := k.GetValue(ctx, "uusd", "ucairn", units(100))
	require.NoError(t, err)
	require.True(t, val.GTE(units(12891)), "value = %s", val)
	require.True(t, val.LT(units(12892)), "value = %s", val)
}

func TestValuePegPremiumInBand(t *testing.T) {
	k, _, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// A 0.5% premium sits inside the default 1% mint band and passes
	// through as a multiplier.
	setPegPrice(pegFeed, "1.005")

	val, _, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	require.True(t, val.Equal(units(1005)), "value = %s", val)
}

func TestValuePegBandEdge(t *testing.T) {
	k, _, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// Deviation exactly equal to the band is still in band.
	setPegPrice(pegFeed, "1.01")

	val, _, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	require.True(t, val.Equal(units(1010)), "value = %s", val)
}

func TestValuePegOutOfBand(t *testing.T) {
	k, _, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	for _, price := range []string{"1.05", "0.95", "1.011", "0.989"} {
		setPegPrice(pegFeed, price)

		_, _, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
		require.Error(t, err, "price %s", price)
		require.True(t, types.ErrPegOutOfBand.Is(err), "price %s: %v", price, err)
	}
}

func TestLiquidationValueCapsPremium(t *testing.T) {
	k, _, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// The same 5% premium that blocks minting caps to parity on the
	// liquidation path.
	setPegPrice(pegFeed, "1.05")

	_, _, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.True(t, types.ErrPegOutOfBand.Is(err))

	val, _, err := k.GetLiquidationValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	require.True(t, val.Equal(units(1000)), "value = %s", val)
}

func TestLiquidationValueAppliesDiscount(t *testing.T) {
	k, _, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// Discounts pass through unguarded: collateral valued against a peg
	// trading at 0.95 is worth 5% less.
	setPegPrice(pegFeed, "0.95")

	val, _, err := k.GetLiquidationValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	require.True(t, val.Equal(units(950)), "value = %s", val)
}

func TestValueStaleRateFailsAllEntryPoints(t *testing.T) {
	k, rateSource, _, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	rateSource.Timestamp = keepertest.BlockTime.Add(-2 * time.Hour)

	entryPoints := map[string]func() (math.Int, time.Time, error){
		"GetValue":             func() (math.Int, time.Time, error) { return k.GetValue(ctx, "uusd", "ucairn", units(10)) },
		"PeekValue":            func() (math.Int, time.Time, error) { return k.PeekValue(ctx, "uusd", "ucairn", units(10)) },
		"GetLiquidationValue":  func() (math.Int, time.Time, error) { return k.GetLiquidationValue(ctx, "uusd", "ucairn", units(10)) },
		"PeekLiquidationValue": func() (math.Int, time.Time, error) { return k.PeekLiquidationValue(ctx, "uusd", "ucairn", units(10)) },
	}

	for name, read := range entryPoints {
		_, _, err := read()
		require.Error(t, err, name)
		require.True(t, types.ErrStalePrice.Is(err), "%s: %v", name, err)
	}
}

func TestValueInvalidPeg(t *testing.T) {
	k, _, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	pegFeed.RoundErr = errors.New("peg venue unreachable")

	_, _, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.True(t, types.ErrPegInvalid.Is(err))

	_, _, err = k.GetLiquidationValue(ctx, "uusd", "ucairn", units(10))
	require.True(t, types.ErrPegInvalid.Is(err))
}

func TestValuePegScaledDecimals(t *testing.T) {
	k, _, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// An 8-decimal venue reporting 1.00500000 scales up to the same
	// multiplier an 18-decimal venue would produce.
	pegFeed.Dec = 8
	pegFeed.Round.Answer = math.NewInt(100_500_000)

	val, _, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	require.True(t, val.Equal(units(1005)), "value = %s", val)
}

func TestValueIdentityPair(t *testing.T) {
	k, rateSource, pegFeed, ctx := keepertest.PricefeedKeeper(t)

	// Identity pairs never consult a feed: both venues are broken here and
	// the valuation still answers at face value.
	rateSource.RateErr = errors.New("down")
	pegFeed.RoundErr = errors.New("down")

	val, updateTime, err := k.GetValue(ctx, "ucairn", "ucairn", units(42))
	require.NoError(t, err)
	require.True(t, val.Equal(units(42)))
	require.Equal(t, keepertest.BlockTime, updateTime)
}

func TestValueMissingSource(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)

	_, _, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.Error(t, err)
	require.True(t, types.ErrSourceNotFound.Is(err))
}

func TestValueInvalidAmount(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	for name, amount := range map[string]math.Int{
		"nil":      {},
		"negative": math.NewInt(-1),
	} {
		_, _, err := k.GetValue(ctx, "uusd", "ucairn", amount)
		require.Error(t, err, name)
		require.True(t, types.ErrInvalidAmount.Is(err), name)
	}

	// Zero is a valid amount and prices to zero.
	val, _, err := k.GetValue(ctx, "uusd", "ucairn", math.ZeroInt())
	require.NoError(t, err)
	require.True(t, val.IsZero())
}

func TestValueUpdateTimeIsOlderFeed(t *testing.T) {
	k, rateSource, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	// Peg lags the rate: the valuation reports the peg's time.
	pegFeed.Round.UpdatedAt = keepertest.BlockTime.Add(-10 * time.Minute)

	_, updateTime, err := k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	require.Equal(t, keepertest.BlockTime.Add(-10*time.Minute), updateTime)

	// Rate lags the peg: the valuation reports the rate's time.
	rateSource.Timestamp = keepertest.BlockTime.Add(-20 * time.Minute)

	_, updateTime, err = k.GetValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	require.Equal(t, keepertest.BlockTime.Add(-20*time.Minute), updateTime)
}

func TestPeekMatchesGet(t *testing.T) {
	k, rateSource, pegFeed, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	rateSource.Numerator = units(7757)
	setPegPrice(pegFeed, "0.995")

	peekVal, peekTime, peekErr := k.PeekValue(ctx, "uusd", "ucairn", units(100))
	getVal, getTime, getErr := k.GetValue(ctx, "uusd", "ucairn", units(100))

	require.NoError(t, peekErr)
	require.NoError(t, getErr)
	require.True(t, peekVal.Equal(getVal))
	require.Equal(t, peekTime, getTime)

	peekVal, peekTime, peekErr = k.PeekLiquidationValue(ctx, "uusd", "ucairn", units(100))
	getVal, getTime, getErr = k.GetLiquidationValue(ctx, "uusd", "ucairn", units(100))

	require.NoError(t, peekErr)
	require.NoError(t, getErr)
	require.True(t, peekVal.Equal(getVal))
	require.Equal(t, peekTime, getTime)
}

func TestPeekTouchesNoState(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)
	keepertest.RegisterTestSource(t, k, ctx, "uusd", "ucairn")

	before, err := k.GetPegState(ctx)
	require.NoError(t, err)

	eventsBefore := len(ctx.EventManager().Events())

	_, _, err = k.PeekValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)
	_, _, err = k.PeekLiquidationValue(ctx, "uusd", "ucairn", units(10))
	require.NoError(t, err)

	after, err := k.GetPegState(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Len(t, ctx.EventManager().Events(), eventsBefore)
}
