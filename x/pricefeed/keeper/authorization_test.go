package keeper_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/cairn-chain/cairn/testutil/keeper"
	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

func TestGetCapabilityUnknownOperation(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)

	_, err := k.GetCapability(ctx, "remove_source")
	require.Error(t, err)
	require.True(t, types.ErrInvalidCapability.Is(err))
}

func TestGetCapabilityEmpty(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)

	principals, err := k.GetCapability(ctx, types.CapabilityAddSource)
	require.NoError(t, err)
	require.Empty(t, principals)
}

func TestGrantCapabilityIdempotent(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)

	operator := keepertest.AccAddress()

	require.NoError(t, k.GrantCapability(ctx, types.CapabilityAddSource, operator))
	require.NoError(t, k.GrantCapability(ctx, types.CapabilityAddSource, operator))

	principals, err := k.GetCapability(ctx, types.CapabilityAddSource)
	require.NoError(t, err)
	require.Len(t, principals, 1)
}

func TestCapabilityPrincipalsSorted(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, k.GrantCapability(ctx, types.CapabilitySetBounds, keepertest.AccAddress()))
	}

	principals, err := k.GetCapability(ctx, types.CapabilitySetBounds)
	require.NoError(t, err)
	require.Len(t, principals, 5)
	require.True(t, sort.StringsAreSorted(principals))
}

func TestRevokeCapabilityAbsentIsNoOp(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)

	require.NoError(t, k.RevokeCapability(ctx, types.CapabilityAddSource, keepertest.AccAddress()))
}

func TestRevokeLastPrincipalClearsRecord(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)

	operator := keepertest.AccAddress()

	require.NoError(t, k.GrantCapability(ctx, types.CapabilitySetSource, operator))
	require.NoError(t, k.RevokeCapability(ctx, types.CapabilitySetSource, operator))

	principals, err := k.GetCapability(ctx, types.CapabilitySetSource)
	require.NoError(t, err)
	require.Empty(t, principals)
}

func TestAuthorize(t *testing.T) {
	k, _, _, ctx := keepertest.PricefeedKeeper(t)

	operator := keepertest.AccAddress()
	stranger := keepertest.AccAddress()
	require.NoError(t, k.GrantCapability(ctx, types.CapabilityAddSource, operator))

	// The module authority needs no grant.
	require.NoError(t, k.Authorize(ctx, types.CapabilityAddSource, k.GetAuthority()))
	require.NoError(t, k.Authorize(ctx, types.CapabilitySetBounds, k.GetAuthority()))

	// Grantees pass only for their operation.
	require.NoError(t, k.Authorize(ctx, types.CapabilityAddSource, operator))
	err := k.Authorize(ctx, types.CapabilitySetBounds, operator)
	require.True(t, types.ErrUnauthorized.Is(err))

	err = k.Authorize(ctx, types.CapabilityAddSource, stranger)
	require.True(t, types.ErrUnauthorized.Is(err))

	// Unknown operations fail before any principal lookup.
	err = k.Authorize(ctx, "remove_source", operator)
	require.True(t, types.ErrInvalidCapability.Is(err))
}
