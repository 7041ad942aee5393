package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// GetPegState retrieves the circuit breaker state. A missing record is the
// genesis default; a corrupt record is an error so callers can fail safe
// instead of silently resetting to risk-on.
func (k Keeper) GetPegState(ctx context.Context) (types.PegState, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PegStateKey)
	if bz == nil {
		return types.DefaultPegState(), nil
	}

	var state types.PegState
	if err := json.Unmarshal(bz, &state); err != nil {
		return types.PegState{}, types.ErrInvalidPegState.Wrapf("corrupt peg state: %v", err)
	}

	return state, nil
}

// setPegState writes the circuit breaker state. Genesis import uses it
// directly.
func (k Keeper) setPegState(ctx context.Context, state types.PegState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(&state)
	if err != nil {
		return fmt.Errorf("failed to marshal peg state: %w", err)
	}

	k.getStore(ctx).Set(types.PegStateKey, bz)
	return nil
}

// UpdateRiskOff polls the peg feed once and advances the circuit breaker.
// Any caller may invoke it at any cadence; a repeat poll of an unchanged
// round is a no-op and an unchanged state is not rewritten. Returns the
// state after the update.
func (k Keeper) UpdateRiskOff(ctx context.Context) (types.PegState, error) {
	prev, err := k.GetPegState(ctx)
	if err != nil {
		return types.PegState{}, err
	}

	params := k.GetParams(ctx)
	reading := k.ReadPegReading(ctx)

	next := prev.Next(reading, params.RiskOffBand)
	if next == prev {
		return next, nil
	}

	if err := k.setPegState(ctx, next); err != nil {
		return types.PegState{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if next.LastRoundID != prev.LastRoundID {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePegRoundObserved,
				sdk.NewAttribute(types.AttributeKeyRoundID, fmt.Sprintf("%d", next.LastRoundID)),
				sdk.NewAttribute(types.AttributeKeyDeviation, reading.Deviation().String()),
				sdk.NewAttribute(types.AttributeKeyInBandCount, fmt.Sprintf("%d", next.InBandCount)),
				sdk.NewAttribute(types.AttributeKeyRiskOff, fmt.Sprintf("%t", next.RiskOff)),
			),
		)
	}

	metrics := GetPricefeedMetrics()
	metrics.InBandCount.Set(float64(next.InBandCount))
	if reading.Valid {
		dev, err := reading.Deviation().Float64()
		if err == nil {
			metrics.PegDeviation.Set(dev)
		}
	}

	switch {
	case next.RiskOff && !prev.RiskOff:
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRiskOffSet,
				sdk.NewAttribute(types.AttributeKeyRoundID, fmt.Sprintf("%d", next.LastRoundID)),
			),
		)
		metrics.RiskOff.Set(1)
		metrics.RiskTransitionsTotal.WithLabelValues("set").Inc()
		if err := k.GetHooks().AfterRiskOffSet(ctx, next.LastRoundID); err != nil {
			k.Logger(ctx).Error("risk-off set hook failed", "error", err)
		}

	case !next.RiskOff && prev.RiskOff:
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRiskOffCleared,
				sdk.NewAttribute(types.AttributeKeyRoundID, fmt.Sprintf("%d", next.LastRoundID)),
			),
		)
		metrics.RiskOff.Set(0)
		metrics.RiskTransitionsTotal.WithLabelValues("cleared").Inc()
		if err := k.GetHooks().AfterRiskOffCleared(ctx, next.LastRoundID); err != nil {
			k.Logger(ctx).Error("risk-off cleared hook failed", "error", err)
		}
	}

	return next, nil
}

// IsRiskOff reports whether new debt issuance is blocked. An unreadable
// state reads as risk-off.
func (k Keeper) IsRiskOff(ctx context.Context) bool {
	state, err := k.GetPegState(ctx)
	if err != nil {
		return true
	}
	return state.RiskOff
}
