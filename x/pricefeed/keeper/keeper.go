package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// Keeper maintains the state of the pricefeed module: source registry, risk
// circuit breaker, and operation capabilities. Valuations are computed on
// demand from the injected rate source and peg feed; no prices are stored.
type Keeper struct {
	cdc          codec.BinaryCodec
	storeService store.KVStoreService
	rateSource   types.RateSource
	pegFeed      types.PegFeed
	hooks        types.PricefeedHooks
	authority    string // module authority (usually governance module account)
}

// NewKeeper creates a new pricefeed Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	rateSource types.RateSource,
	pegFeed types.PegFeed,
	authority string,
) *Keeper {
	return &Keeper{
		cdc:          cdc,
		storeService: storeService,
		rateSource:   rateSource,
		pegFeed:      pegFeed,
		authority:    authority,
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority (governance account)
func (k Keeper) GetAuthority() string {
	return k.authority
}

// SetHooks sets the pricefeed hooks. Panics if hooks are already set.
func (k *Keeper) SetHooks(h types.PricefeedHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set pricefeed hooks twice")
	}
	k.hooks = h
	return k
}

// GetHooks returns the registered hooks, or an empty fan-out when none are
// set so call sites never nil-check.
func (k Keeper) GetHooks() types.PricefeedHooks {
	if k.hooks == nil {
		return types.MultiPricefeedHooks{}
	}
	return k.hooks
}

// getStore returns the module KV store adapted for prefix iteration.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
}

// GetParams gets all parameters from the store
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}

	return params
}

// SetParams sets the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	bz, err := json.Marshal(&params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}
