package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// GetCapability returns the principals granted an operation, sorted. An
// operation with no grants returns an empty set.
func (k Keeper) GetCapability(ctx context.Context, operation string) ([]string, error) {
	if !types.IsValidOperation(operation) {
		return nil, types.ErrInvalidCapability.Wrapf("unknown operation %q", operation)
	}

	store := k.getStore(ctx)
	bz := store.Get(types.GetCapabilityKey(operation))
	if bz == nil {
		return nil, nil
	}

	var principals []string
	if err := json.Unmarshal(bz, &principals); err != nil {
		return nil, types.ErrInvalidCapability.Wrapf("corrupt capability set for %q: %v", operation, err)
	}

	return principals, nil
}

// GrantCapability adds a principal to an operation's capability set. Granting
// an already-held capability is a no-op.
func (k Keeper) GrantCapability(ctx context.Context, operation, grantee string) error {
	principals, err := k.GetCapability(ctx, operation)
	if err != nil {
		return err
	}

	for _, p := range principals {
		if p == grantee {
			return nil
		}
	}

	principals = append(principals, grantee)
	if err := k.setCapability(ctx, operation, principals); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCapabilityGranted,
			sdk.NewAttribute(types.AttributeKeyOperation, operation),
			sdk.NewAttribute(types.AttributeKeyGrantee, grantee),
		),
	)

	return nil
}

// RevokeCapability removes a principal from an operation's capability set.
// Revoking an absent capability is a no-op.
func (k Keeper) RevokeCapability(ctx context.Context, operation, grantee string) error {
	principals, err := k.GetCapability(ctx, operation)
	if err != nil {
		return err
	}

	kept := principals[:0]
	for _, p := range principals {
		if p != grantee {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(principals) {
		return nil
	}

	if err := k.setCapability(ctx, operation, kept); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCapabilityRevoked,
			sdk.NewAttribute(types.AttributeKeyOperation, operation),
			sdk.NewAttribute(types.AttributeKeyGrantee, grantee),
		),
	)

	return nil
}

// setCapability writes an operation's principal set. Principals are stored
// sorted so export order is deterministic; an empty set clears the record.
func (k Keeper) setCapability(ctx context.Context, operation string, principals []string) error {
	if !types.IsValidOperation(operation) {
		return types.ErrInvalidCapability.Wrapf("unknown operation %q", operation)
	}

	store := k.getStore(ctx)
	key := types.GetCapabilityKey(operation)

	if len(principals) == 0 {
		store.Delete(key)
		return nil
	}

	sorted := make([]string, len(principals))
	copy(sorted, principals)
	sort.Strings(sorted)

	bz, err := json.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("failed to marshal capability set for %q: %w", operation, err)
	}

	store.Set(key, bz)
	return nil
}

// authorize checks that a signer may perform a registry operation. The
// module authority is always allowed; other signers need a standing
// capability grant.
func (k Keeper) authorize(ctx context.Context, operation, signer string) error {
	if signer == k.authority {
		return nil
	}

	principals, err := k.GetCapability(ctx, operation)
	if err != nil {
		return err
	}

	for _, p := range principals {
		if p == signer {
			return nil
		}
	}

	return types.ErrUnauthorized.Wrapf("%s may not perform %s", signer, operation)
}
