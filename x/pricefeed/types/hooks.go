package types

import (
	"context"
)

// PricefeedHooks defines the interface for pricefeed module callbacks.
// Dependent modules subscribe to risk transitions: the debt ledger pauses
// issuance the moment risk-off sets, the auction house may widen spreads.
type PricefeedHooks interface {
	// AfterRiskOffSet is called when the circuit breaker trips.
	AfterRiskOffSet(ctx context.Context, roundID uint64) error

	// AfterRiskOffCleared is called when the breaker clears after sustained
	// in-band rounds.
	AfterRiskOffCleared(ctx context.Context, roundID uint64) error
}

// MultiPricefeedHooks combines multiple pricefeed hooks into a single hook
// that calls all of them.
type MultiPricefeedHooks []PricefeedHooks

// NewMultiPricefeedHooks creates a new MultiPricefeedHooks from a list of hooks.
func NewMultiPricefeedHooks(hooks ...PricefeedHooks) MultiPricefeedHooks {
	return hooks
}

// AfterRiskOffSet calls AfterRiskOffSet on all registered hooks.
func (h MultiPricefeedHooks) AfterRiskOffSet(ctx context.Context, roundID uint64) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterRiskOffSet(ctx, roundID); err != nil {
			return err
		}
	}
	return nil
}

// AfterRiskOffCleared calls AfterRiskOffCleared on all registered hooks.
func (h MultiPricefeedHooks) AfterRiskOffCleared(ctx context.Context, roundID uint64) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterRiskOffCleared(ctx, roundID); err != nil {
			return err
		}
	}
	return nil
}
