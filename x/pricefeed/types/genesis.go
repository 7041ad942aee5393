package types

import (
	"fmt"
)

// GenesisState defines the pricefeed module's genesis state.
type GenesisState struct {
	Params       Params            `protobuf:"bytes,1,opt,name=params,proto3" json:"params"`
	Sources      []SourceEntry     `protobuf:"bytes,2,rep,name=sources,proto3" json:"sources"`
	PegState     PegState          `protobuf:"bytes,3,opt,name=peg_state,json=pegState,proto3" json:"peg_state"`
	Capabilities []CapabilityGrant `protobuf:"bytes,4,rep,name=capabilities,proto3" json:"capabilities"`
}

// NewGenesisState creates a new genesis state instance
func NewGenesisState(params Params, sources []SourceEntry, pegState PegState, capabilities []CapabilityGrant) *GenesisState {
	return &GenesisState{
		Params:       params,
		Sources:      sources,
		PegState:     pegState,
		Capabilities: capabilities,
	}
}

// DefaultGenesis returns the default genesis state: default params, no
// sources, and the breaker risk-on until the first peg observation says
// otherwise.
func DefaultGenesis() *GenesisState {
	return NewGenesisState(DefaultParams(), nil, DefaultPegState(), nil)
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenPairs := make(map[string]struct{}, len(gs.Sources))
	for _, entry := range gs.Sources {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid source for %s: %w", PairString(entry.Base, entry.Quote), err)
		}
		pair := PairString(entry.Base, entry.Quote)
		if _, ok := seenPairs[pair]; ok {
			return fmt.Errorf("duplicate source for %s", pair)
		}
		seenPairs[pair] = struct{}{}
	}

	if err := gs.PegState.Validate(); err != nil {
		return fmt.Errorf("invalid peg state: %w", err)
	}

	seenOps := make(map[string]struct{}, len(gs.Capabilities))
	for _, grant := range gs.Capabilities {
		if err := grant.Validate(); err != nil {
			return fmt.Errorf("invalid capability grant for %q: %w", grant.Operation, err)
		}
		if _, ok := seenOps[grant.Operation]; ok {
			return fmt.Errorf("duplicate capability grant for %q", grant.Operation)
		}
		seenOps[grant.Operation] = struct{}{}
	}

	return nil
}
