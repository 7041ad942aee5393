package keeper

import (
	"context"
)

// BeginBlocker polls the peg feed, advances the risk circuit breaker, and
// refreshes the module's operational gauges. A failed update is logged and
// skipped; it never halts the block.
func (k Keeper) BeginBlocker(ctx context.Context) error {
	if _, err := k.UpdateRiskOff(ctx); err != nil {
		k.Logger(ctx).Error("risk-off update failed", "error", err)
	}

	m := GetPricefeedMetrics()

	m.SourcesConfigured.Set(float64(len(k.GetAllSources(ctx))))

	if k.IsRiskOff(ctx) {
		m.RiskOff.Set(1)
	} else {
		m.RiskOff.Set(0)
	}

	return nil
}

// EndBlocker is a no-op. All peg observation happens in BeginBlocker.
func (k Keeper) EndBlocker(ctx context.Context) error {
	return nil
}
