package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/hashicorp/go-metrics"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// AddSource registers a feed for a new pair. The signer needs the
// add_source capability or must be the module authority.
func (k msgServer) AddSource(goCtx context.Context, msg *types.MsgAddSource) (*types.MsgAddSourceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.authorize(ctx, types.CapabilityAddSource, msg.Signer); err != nil {
		return nil, err
	}

	if err := k.Keeper.AddSource(ctx, msg.Base, msg.Quote, msg.FeedID, msg.MaxAge, msg.MinReports); err != nil {
		return nil, err
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "msg", "add_source"},
		1,
		[]metrics.Label{telemetry.NewLabel("pair", types.PairString(msg.Base, msg.Quote))},
	)

	return &types.MsgAddSourceResponse{}, nil
}

// SetSource reconfigures an existing pair. The signer needs the set_source
// capability or must be the module authority.
func (k msgServer) SetSource(goCtx context.Context, msg *types.MsgSetSource) (*types.MsgSetSourceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.authorize(ctx, types.CapabilitySetSource, msg.Signer); err != nil {
		return nil, err
	}

	if err := k.Keeper.SetSource(ctx, msg.Base, msg.Quote, msg.FeedID, msg.MaxAge, msg.MinReports); err != nil {
		return nil, err
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "msg", "set_source"},
		1,
		[]metrics.Label{telemetry.NewLabel("pair", types.PairString(msg.Base, msg.Quote))},
	)

	return &types.MsgSetSourceResponse{}, nil
}

// SetBounds installs sanity bounds on an existing pair. The signer needs the
// set_bounds capability or must be the module authority.
func (k msgServer) SetBounds(goCtx context.Context, msg *types.MsgSetBounds) (*types.MsgSetBoundsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.authorize(ctx, types.CapabilitySetBounds, msg.Signer); err != nil {
		return nil, err
	}

	if err := k.Keeper.SetBounds(ctx, msg.Base, msg.Quote, msg.MinPrice, msg.MaxPrice); err != nil {
		return nil, err
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "msg", "set_bounds"},
		1,
		[]metrics.Label{telemetry.NewLabel("pair", types.PairString(msg.Base, msg.Quote))},
	)

	return &types.MsgSetBoundsResponse{}, nil
}

// UpdateRiskOff advances the risk circuit breaker by one observation. Any
// account may call it; the transition depends only on feed state.
func (k msgServer) UpdateRiskOff(goCtx context.Context, msg *types.MsgUpdateRiskOff) (*types.MsgUpdateRiskOffResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	state, err := k.Keeper.UpdateRiskOff(ctx)
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "msg", "update_risk_off")

	return &types.MsgUpdateRiskOffResponse{RiskOff: state.RiskOff}, nil
}

// GrantCapability adds a principal to an operation's capability set.
// Governance only.
func (k msgServer) GrantCapability(goCtx context.Context, msg *types.MsgGrantCapability) (*types.MsgGrantCapabilityResponse, error) {
	if msg.Authority != k.GetAuthority() {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.GrantCapability(ctx, msg.Operation, msg.Grantee); err != nil {
		return nil, err
	}

	return &types.MsgGrantCapabilityResponse{}, nil
}

// RevokeCapability removes a principal from an operation's capability set.
// Governance only.
func (k msgServer) RevokeCapability(goCtx context.Context, msg *types.MsgRevokeCapability) (*types.MsgRevokeCapabilityResponse, error) {
	if msg.Authority != k.GetAuthority() {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.RevokeCapability(ctx, msg.Operation, msg.Grantee); err != nil {
		return nil, err
	}

	return &types.MsgRevokeCapabilityResponse{}, nil
}

// UpdateParams replaces the module parameters. Governance only.
func (k msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if msg.Authority != k.GetAuthority() {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyMintBand, msg.Params.MintBand.String()),
			sdk.NewAttribute(types.AttributeKeyRiskOffBand, msg.Params.RiskOffBand.String()),
			sdk.NewAttribute(types.AttributeKeyPegMaxAge, fmt.Sprintf("%d", msg.Params.PegMaxAge)),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}
