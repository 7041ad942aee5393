package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params are the pricefeed module parameters.
type Params struct {
	// MintBand is the tight symmetric deviation-from-parity window the peg
	// must sit inside before new debt may be issued against it.
	MintBand math.LegacyDec `protobuf:"bytes,1,opt,name=mint_band,json=mintBand,proto3,customtype=cosmossdk.io/math.LegacyDec" json:"mint_band"`
	// RiskOffBand is the looser window the circuit breaker judges rounds
	// against. It is always wider than MintBand.
	RiskOffBand math.LegacyDec `protobuf:"bytes,2,opt,name=risk_off_band,json=riskOffBand,proto3,customtype=cosmossdk.io/math.LegacyDec" json:"risk_off_band"`
	// PegMaxAge is the staleness horizon for peg feed rounds, in seconds.
	PegMaxAge uint64 `protobuf:"varint,3,opt,name=peg_max_age,json=pegMaxAge,proto3" json:"peg_max_age"`
}

// NewParams creates a Params instance.
func NewParams(mintBand, riskOffBand math.LegacyDec, pegMaxAge uint64) Params {
	return Params{
		MintBand:    mintBand,
		RiskOffBand: riskOffBand,
		PegMaxAge:   pegMaxAge,
	}
}

// DefaultParams returns default pricefeed parameters
func DefaultParams() Params {
	return Params{
		// 1% absorbs ordinary stablecoin drift.
		MintBand: math.LegacyMustNewDecFromStr("0.01"),
		// 3% marks genuine depeg territory. The gap between the two bands
		// is the hysteresis zone where minting stops but the breaker has
		// not yet declared risk-off.
		RiskOffBand: math.LegacyMustNewDecFromStr("0.03"),
		PegMaxAge:   3600, // one hour, the reference feed's heartbeat
	}
}

// MainnetParams returns pricefeed parameters suitable for mainnet deployment
func MainnetParams() Params {
	params := DefaultParams()
	params.MintBand = math.LegacyMustNewDecFromStr("0.005")
	params.RiskOffBand = math.LegacyMustNewDecFromStr("0.02")
	return params
}

// Validate ensures the parameter set is well-formed.
func (p Params) Validate() error {
	if p.MintBand.IsNil() || !p.MintBand.IsPositive() {
		return fmt.Errorf("mint band must be positive")
	}
	if p.RiskOffBand.IsNil() || !p.RiskOffBand.IsPositive() {
		return fmt.Errorf("risk-off band must be positive")
	}
	if p.MintBand.GTE(p.RiskOffBand) {
		return fmt.Errorf("mint band %s must be tighter than risk-off band %s", p.MintBand, p.RiskOffBand)
	}
	if p.RiskOffBand.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("risk-off band must be below 1")
	}
	if p.PegMaxAge == 0 {
		return fmt.Errorf("peg max age must be positive")
	}
	return nil
}
