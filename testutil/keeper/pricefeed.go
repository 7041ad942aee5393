package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/cairn-chain/cairn/x/pricefeed/keeper"
	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// BlockTime is the fixed block time every test context starts from. Staleness
// arithmetic in tests is relative to this instant.
var BlockTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// FakeRateSource is a scriptable primary rate venue. The zero value is not
// useful; PricefeedKeeper seeds it with a healthy parity-rate read.
type FakeRateSource struct {
	Numerator   math.Int
	Denominator math.Int
	Timestamp   time.Time
	Reports     uint64

	RateErr      error
	TimestampErr error
	ReportsErr   error
}

var _ types.RateSource = (*FakeRateSource)(nil)

func (f *FakeRateSource) MedianRate(ctx context.Context, feedID string) (math.Int, math.Int, error) {
	if f.RateErr != nil {
		return math.Int{}, math.Int{}, f.RateErr
	}
	return f.Numerator, f.Denominator, nil
}

func (f *FakeRateSource) MedianTimestamp(ctx context.Context, feedID string) (time.Time, error) {
	if f.TimestampErr != nil {
		return time.Time{}, f.TimestampErr
	}
	return f.Timestamp, nil
}

func (f *FakeRateSource) NumRates(ctx context.Context, feedID string) (uint64, error) {
	if f.ReportsErr != nil {
		return 0, f.ReportsErr
	}
	return f.Reports, nil
}

// FakePegFeed is a scriptable secondary reference feed.
type FakePegFeed struct {
	Round    types.RoundData
	Dec      uint8
	RoundErr error
	DecErr   error
}

var _ types.PegFeed = (*FakePegFeed)(nil)

func (f *FakePegFeed) LatestRoundData(ctx context.Context) (types.RoundData, error) {
	if f.RoundErr != nil {
		return types.RoundData{}, f.RoundErr
	}
	return f.Round, nil
}

func (f *FakePegFeed) Decimals(ctx context.Context) (uint8, error) {
	if f.DecErr != nil {
		return 0, f.DecErr
	}
	return f.Dec, nil
}

// RecordingHooks captures risk transitions for assertions.
type RecordingHooks struct {
	SetRounds     []uint64
	ClearedRounds []uint64
}

var _ types.PricefeedHooks = (*RecordingHooks)(nil)

func (h *RecordingHooks) AfterRiskOffSet(ctx context.Context, roundID uint64) error {
	h.SetRounds = append(h.SetRounds, roundID)
	return nil
}

func (h *RecordingHooks) AfterRiskOffCleared(ctx context.Context, roundID uint64) error {
	h.ClearedRounds = append(h.ClearedRounds, roundID)
	return nil
}

// PricefeedKeeper creates a test keeper for the pricefeed module backed by
// scriptable venue fakes. The fakes start healthy: the rate read inverts to
// 100 units and the peg feed reports exact parity one minute before BlockTime.
func PricefeedKeeper(t testing.TB) (*keeper.Keeper, *FakeRateSource, *FakePegFeed, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	rateSource := &FakeRateSource{
		// 10^22 numerator inverts to 100 units at the expected scale.
		Numerator:   math.NewIntWithDecimal(1, 22),
		Denominator: types.ExpectedRateScale,
		Timestamp:   BlockTime.Add(-time.Minute),
		Reports:     5,
	}

	pegFeed := &FakePegFeed{
		Round: types.RoundData{
			RoundID:         1,
			Answer:          types.Unit,
			StartedAt:       BlockTime.Add(-time.Minute),
			UpdatedAt:       BlockTime.Add(-time.Minute),
			AnsweredInRound: 1,
		},
		Dec: 18,
	}

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		rateSource,
		pegFeed,
		types.DefaultAuthority(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: BlockTime}, false, log.NewNopLogger())
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k, rateSource, pegFeed, ctx
}

// RegisterTestSource registers a pair against the fake venue with a one hour
// staleness horizon and no report floor.
func RegisterTestSource(t testing.TB, k *keeper.Keeper, ctx sdk.Context, base, quote string) {
	require.NoError(t, k.AddSource(ctx, base, quote, types.DeriveFeedID(base, quote), 3600, 0))
}

// AccAddress returns a fresh random bech32 account address.
func AccAddress() string {
	return sdk.AccAddress(ed25519.GenPrivKey().PubKey().Address()).String()
}
