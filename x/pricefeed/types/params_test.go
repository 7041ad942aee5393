package types

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
)

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()

	expectedMint := math.LegacyMustNewDecFromStr("0.01")
	if !params.MintBand.Equal(expectedMint) {
		t.Errorf("Expected MintBand %s, got %s", expectedMint, params.MintBand)
	}

	expectedRiskOff := math.LegacyMustNewDecFromStr("0.03")
	if !params.RiskOffBand.Equal(expectedRiskOff) {
		t.Errorf("Expected RiskOffBand %s, got %s", expectedRiskOff, params.RiskOffBand)
	}

	if params.PegMaxAge != 3600 {
		t.Errorf("Expected PegMaxAge 3600, got %d", params.PegMaxAge)
	}

	if err := params.Validate(); err != nil {
		t.Errorf("Default params must validate: %v", err)
	}
}

func TestMainnetParams(t *testing.T) {
	params := MainnetParams()

	expectedMint := math.LegacyMustNewDecFromStr("0.005")
	if !params.MintBand.Equal(expectedMint) {
		t.Errorf("Expected MintBand %s, got %s", expectedMint, params.MintBand)
	}

	expectedRiskOff := math.LegacyMustNewDecFromStr("0.02")
	if !params.RiskOffBand.Equal(expectedRiskOff) {
		t.Errorf("Expected RiskOffBand %s, got %s", expectedRiskOff, params.RiskOffBand)
	}

	if err := params.Validate(); err != nil {
		t.Errorf("Mainnet params must validate: %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	valid := DefaultParams()

	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr string
	}{
		{"valid", func(p *Params) {}, ""},
		{"zero mint band", func(p *Params) { p.MintBand = math.LegacyZeroDec() }, "mint band must be positive"},
		{"negative mint band", func(p *Params) { p.MintBand = math.LegacyMustNewDecFromStr("-0.01") }, "mint band must be positive"},
		{"nil mint band", func(p *Params) { p.MintBand = math.LegacyDec{} }, "mint band must be positive"},
		{"zero risk-off band", func(p *Params) { p.RiskOffBand = math.LegacyZeroDec() }, "risk-off band must be positive"},
		{"mint band equals risk-off band", func(p *Params) { p.MintBand = p.RiskOffBand }, "tighter than"},
		{"mint band wider than risk-off band", func(p *Params) {
			p.MintBand = math.LegacyMustNewDecFromStr("0.05")
		}, "tighter than"},
		{"risk-off band at one", func(p *Params) {
			p.MintBand = math.LegacyMustNewDecFromStr("0.5")
			p.RiskOffBand = math.LegacyOneDec()
		}, "below 1"},
		{"zero peg max age", func(p *Params) { p.PegMaxAge = 0 }, "peg max age must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)

			err := params.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Error("Validate() expected error, got nil")
				return
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
