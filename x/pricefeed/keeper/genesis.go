package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	for _, entry := range genState.Sources {
		if err := entry.Validate(); err != nil {
			k.Logger(ctx).Error("skipping invalid source during genesis", "pair", types.PairString(entry.Base, entry.Quote), "error", err)
			continue
		}
		if err := k.setSource(ctx, entry.Base, entry.Quote, entry.Source); err != nil {
			k.Logger(ctx).Error("failed to set source during genesis", "pair", types.PairString(entry.Base, entry.Quote), "error", err)
		}
	}

	if err := k.setPegState(ctx, genState.PegState); err != nil {
		panic(fmt.Sprintf("failed to set peg state: %s", err))
	}

	for _, grant := range genState.Capabilities {
		if err := k.setCapability(ctx, grant.Operation, grant.Principals); err != nil {
			k.Logger(ctx).Error("failed to set capability during genesis", "operation", grant.Operation, "error", err)
		}
	}

	k.Logger(ctx).Info("pricefeed module genesis initialized",
		"sources", len(genState.Sources),
		"risk_off", genState.PegState.RiskOff,
	)
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	pegState, err := k.GetPegState(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to read peg state: %s", err))
	}

	var capabilities []types.CapabilityGrant
	for _, op := range types.ValidOperations() {
		principals, err := k.GetCapability(ctx, op)
		if err != nil {
			panic(fmt.Sprintf("failed to read capability set for %q: %s", op, err))
		}
		if len(principals) == 0 {
			continue
		}
		capabilities = append(capabilities, types.CapabilityGrant{Operation: op, Principals: principals})
	}

	return types.NewGenesisState(k.GetParams(ctx), k.GetAllSources(ctx), pegState, capabilities)
}
