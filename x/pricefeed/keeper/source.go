package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// AddSource registers a feed for a new (base, quote) pair. The source is
// created with empty bounds; SetBounds installs them separately.
func (k Keeper) AddSource(ctx context.Context, base, quote, feedID string, maxAge, minReports uint64) error {
	if err := types.ValidatePair(base, quote); err != nil {
		return err
	}

	source := types.NewSource(feedID, maxAge, minReports)
	if err := source.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	key := types.GetSourceKey(base, quote)
	if store.Has(key) {
		return types.ErrSourceExists.Wrapf("source already registered for %s", types.PairString(base, quote))
	}

	if err := k.setSource(ctx, base, quote, source); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSourceAdded,
			sdk.NewAttribute(types.AttributeKeyBase, base),
			sdk.NewAttribute(types.AttributeKeyQuote, quote),
			sdk.NewAttribute(types.AttributeKeyFeedID, feedID),
			sdk.NewAttribute(types.AttributeKeyMaxAge, fmt.Sprintf("%d", maxAge)),
			sdk.NewAttribute(types.AttributeKeyMinReports, fmt.Sprintf("%d", minReports)),
		),
	)

	return nil
}

// SetSource reconfigures an existing pair in place. The feed, staleness
// horizon, and report floor are replaced; previously installed bounds are
// preserved.
func (k Keeper) SetSource(ctx context.Context, base, quote, feedID string, maxAge, minReports uint64) error {
	if err := types.ValidatePair(base, quote); err != nil {
		return err
	}

	source, err := k.GetSource(ctx, base, quote)
	if err != nil {
		return err
	}

	source.FeedID = feedID
	source.MaxAge = maxAge
	source.MinReports = minReports
	if err := source.Validate(); err != nil {
		return err
	}

	if err := k.setSource(ctx, base, quote, source); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSourceUpdated,
			sdk.NewAttribute(types.AttributeKeyBase, base),
			sdk.NewAttribute(types.AttributeKeyQuote, quote),
			sdk.NewAttribute(types.AttributeKeyFeedID, feedID),
			sdk.NewAttribute(types.AttributeKeyMaxAge, fmt.Sprintf("%d", maxAge)),
			sdk.NewAttribute(types.AttributeKeyMinReports, fmt.Sprintf("%d", minReports)),
		),
	)

	return nil
}

// SetBounds installs sanity bounds on an existing pair. A zero bound disables
// that side of the check; setting both to zero clears the window.
func (k Keeper) SetBounds(ctx context.Context, base, quote string, minPrice, maxPrice math.Int) error {
	if err := types.ValidatePair(base, quote); err != nil {
		return err
	}
	if err := types.ValidateBounds(minPrice, maxPrice); err != nil {
		return err
	}

	source, err := k.GetSource(ctx, base, quote)
	if err != nil {
		return err
	}

	source.MinPrice = minPrice
	source.MaxPrice = maxPrice

	if err := k.setSource(ctx, base, quote, source); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBoundsSet,
			sdk.NewAttribute(types.AttributeKeyBase, base),
			sdk.NewAttribute(types.AttributeKeyQuote, quote),
			sdk.NewAttribute(types.AttributeKeyMinPrice, minPrice.String()),
			sdk.NewAttribute(types.AttributeKeyMaxPrice, maxPrice.String()),
		),
	)

	return nil
}

// GetSource retrieves the configuration of a pair.
func (k Keeper) GetSource(ctx context.Context, base, quote string) (types.Source, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetSourceKey(base, quote))
	if bz == nil {
		return types.Source{}, types.ErrSourceNotFound.Wrapf("no source registered for %s", types.PairString(base, quote))
	}

	var source types.Source
	if err := json.Unmarshal(bz, &source); err != nil {
		return types.Source{}, types.ErrInvalidSource.Wrapf("corrupt source for %s: %v", types.PairString(base, quote), err)
	}

	return source, nil
}

// HasSource reports whether a pair is configured.
func (k Keeper) HasSource(ctx context.Context, base, quote string) bool {
	return k.getStore(ctx).Has(types.GetSourceKey(base, quote))
}

// GetAllSources returns every configured pair in store order.
func (k Keeper) GetAllSources(ctx context.Context) []types.SourceEntry {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.SourceKeyPrefix)
	defer iterator.Close()

	var entries []types.SourceEntry
	for ; iterator.Valid(); iterator.Next() {
		base, quote := types.SplitSourceKey(iterator.Key()[len(types.SourceKeyPrefix):])

		var source types.Source
		if err := json.Unmarshal(iterator.Value(), &source); err != nil {
			continue
		}

		entries = append(entries, types.SourceEntry{Base: base, Quote: quote, Source: source})
	}

	return entries
}

// setSource writes a source record without validation or events. Genesis
// import uses it directly.
func (k Keeper) setSource(ctx context.Context, base, quote string, source types.Source) error {
	bz, err := json.Marshal(&source)
	if err != nil {
		return fmt.Errorf("failed to marshal source for %s: %w", types.PairString(base, quote), err)
	}

	k.getStore(ctx).Set(types.GetSourceKey(base, quote), bz)
	return nil
}
