package types

import (
	"strings"
	"testing"
)

func TestDefaultGenesis(t *testing.T) {
	genesis := DefaultGenesis()

	if genesis == nil {
		t.Fatal("DefaultGenesis() returned nil")
	}

	if len(genesis.Sources) != 0 {
		t.Errorf("Expected no default sources, got %d", len(genesis.Sources))
	}
	if len(genesis.Capabilities) != 0 {
		t.Errorf("Expected no default capability grants, got %d", len(genesis.Capabilities))
	}

	// A fresh chain starts risk-on; the breaker only trips on observations.
	if genesis.PegState.RiskOff {
		t.Error("Default genesis must not start risk-off")
	}
	if genesis.PegState.LastRoundID != 0 || genesis.PegState.InBandCount != 0 {
		t.Errorf("Expected zeroed peg state, got %+v", genesis.PegState)
	}

	if err := genesis.Validate(); err != nil {
		t.Errorf("Default genesis failed validation: %v", err)
	}
}

func TestGenesisState_Validate(t *testing.T) {
	entry := SourceEntry{Base: "uusd", Quote: "ucairn", Source: NewSource("0xfeed", 3600, 0)}
	grant := CapabilityGrant{Operation: CapabilityAddSource, Principals: []string{validAddress}}

	tests := []struct {
		name    string
		genesis func() *GenesisState
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid default genesis",
			genesis: func() *GenesisState {
				return DefaultGenesis()
			},
			wantErr: false,
		},
		{
			name: "valid populated genesis",
			genesis: func() *GenesisState {
				gs := DefaultGenesis()
				gs.Sources = []SourceEntry{entry}
				gs.Capabilities = []CapabilityGrant{grant}
				gs.PegState = PegState{LastRoundID: 42, InBandCount: 2, RiskOff: true}
				return gs
			},
			wantErr: false,
		},
		{
			name: "invalid params",
			genesis: func() *GenesisState {
				gs := DefaultGenesis()
				gs.Params.PegMaxAge = 0
				return gs
			},
			wantErr: true,
			errMsg:  "invalid params",
		},
		{
			name: "invalid source entry",
			genesis: func() *GenesisState {
				gs := DefaultGenesis()
				bad := entry
				bad.Source.MaxAge = 0
				gs.Sources = []SourceEntry{bad}
				return gs
			},
			wantErr: true,
			errMsg:  "invalid source for uusd/ucairn",
		},
		{
			name: "duplicate source pair",
			genesis: func() *GenesisState {
				gs := DefaultGenesis()
				gs.Sources = []SourceEntry{entry, entry}
				return gs
			},
			wantErr: true,
			errMsg:  "duplicate source for uusd/ucairn",
		},
		{
			name: "invalid peg state",
			genesis: func() *GenesisState {
				gs := DefaultGenesis()
				gs.PegState = PegState{InBandCount: RiskRecoveryRounds + 1}
				return gs
			},
			wantErr: true,
			errMsg:  "invalid peg state",
		},
		{
			name: "unknown capability operation",
			genesis: func() *GenesisState {
				gs := DefaultGenesis()
				gs.Capabilities = []CapabilityGrant{{Operation: "remove_source", Principals: []string{validAddress}}}
				return gs
			},
			wantErr: true,
			errMsg:  "unknown operation",
		},
		{
			name: "duplicate capability grant",
			genesis: func() *GenesisState {
				gs := DefaultGenesis()
				gs.Capabilities = []CapabilityGrant{grant, grant}
				return gs
			},
			wantErr: true,
			errMsg:  "duplicate capability grant",
		},
		{
			name: "duplicate principal in grant",
			genesis: func() *GenesisState {
				gs := DefaultGenesis()
				gs.Capabilities = []CapabilityGrant{{
					Operation:  CapabilitySetBounds,
					Principals: []string{validAddress, validAddress},
				}}
				return gs
			},
			wantErr: true,
			errMsg:  "duplicate principal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.genesis().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("GenesisState.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("GenesisState.Validate() error = %v, want error containing %v", err, tt.errMsg)
				}
			}
		})
	}
}
