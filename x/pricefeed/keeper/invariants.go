package keeper

import (
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// RegisterInvariants registers all pricefeed module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "peg-state",
		PegStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "registered-sources",
		RegisteredSourcesInvariant(k))
}

// AllInvariants runs all invariants of the pricefeed module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PegStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return RegisteredSourcesInvariant(k)(ctx)
	}
}

// PegStateInvariant checks that the stored circuit breaker state decodes and
// is well formed.
func PegStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string

		state, err := k.GetPegState(ctx)
		if err != nil {
			msg = fmt.Sprintf("error reading peg state: %v", err)
			return sdk.FormatInvariant(types.ModuleName, "peg-state", msg), true
		}

		if err := state.Validate(); err != nil {
			msg = fmt.Sprintf("stored peg state is invalid: %v", err)
			return sdk.FormatInvariant(types.ModuleName, "peg-state", msg), true
		}

		return sdk.FormatInvariant(types.ModuleName, "peg-state", msg), false
	}
}

// RegisteredSourcesInvariant checks that every stored source record decodes
// and validates against the registry rules.
func RegisteredSourcesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
			issues []string
		)

		store := k.getStore(ctx)
		iter := storetypes.KVStorePrefixIterator(store, types.SourceKeyPrefix)
		defer iter.Close()

		for ; iter.Valid(); iter.Next() {
			base, quote := types.SplitSourceKey(iter.Key()[len(types.SourceKeyPrefix):])

			var source types.Source
			if err := json.Unmarshal(iter.Value(), &source); err != nil {
				broken = true
				issues = append(issues, fmt.Sprintf(
					"error unmarshaling source for %s: %v",
					types.PairString(base, quote), err,
				))
				continue
			}

			if err := types.ValidatePair(base, quote); err != nil {
				broken = true
				issues = append(issues, fmt.Sprintf(
					"stored pair key %s is invalid: %v",
					types.PairString(base, quote), err,
				))
			}

			if err := source.Validate(); err != nil {
				broken = true
				issues = append(issues, fmt.Sprintf(
					"source for %s is invalid: %v",
					types.PairString(base, quote), err,
				))
			}
		}

		if len(issues) > 0 {
			msg = fmt.Sprintf("%d invalid sources:\n", len(issues))
			for _, issue := range issues {
				msg += fmt.Sprintf("  - %s\n", issue)
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "registered-sources", msg), broken
	}
}
