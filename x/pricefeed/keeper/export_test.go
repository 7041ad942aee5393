package keeper

// This file exports private keeper methods for testing purposes.
// This is a standard Go testing pattern for white-box testing.

import (
	"context"
	"time"

	"cosmossdk.io/math"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// Exported for testing: primary rate gate
func (k Keeper) ReadPrimaryRate(ctx context.Context, source types.Source) (math.Int, time.Time, error) {
	return k.readPrimaryRate(ctx, source)
}

// Exported for testing: signer authorization
func (k Keeper) Authorize(ctx context.Context, operation, signer string) error {
	return k.authorize(ctx, operation, signer)
}

// Exported for testing: direct peg state writes
func (k Keeper) SetPegState(ctx context.Context, state types.PegState) error {
	return k.setPegState(ctx, state)
}

// Exported for testing: raw store writes for corruption scenarios
func (k Keeper) SetRawStoreEntry(ctx context.Context, key, value []byte) {
	k.getStore(ctx).Set(key, value)
}
