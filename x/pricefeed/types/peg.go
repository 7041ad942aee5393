package types

import (
	"time"

	"cosmossdk.io/math"
)

// RoundData is one round of the secondary reference feed, as reported by the
// venue. AnsweredInRound < RoundID marks a carried-over (unanswered) round.
type RoundData struct {
	RoundID         uint64
	Answer          math.Int
	StartedAt       time.Time
	UpdatedAt       time.Time
	AnsweredInRound uint64
}

// PegReading is a validated peg observation at Unit precision (1.0 == one
// unit == exact parity). A reading is computed fresh on every call and never
// cached. Any venue failure or malformed shape yields Valid == false; the
// monitor itself never raises.
type PegReading struct {
	Price     math.Int
	UpdatedAt time.Time
	RoundID   uint64
	Valid     bool
}

// InvalidPegReading is the sentinel every peg feed failure collapses into.
func InvalidPegReading() PegReading {
	return PegReading{Price: math.ZeroInt(), Valid: false}
}

// Deviation returns the absolute deviation of the reading from parity, as a
// decimal fraction (0.02 == two percent off peg). Only meaningful for valid
// readings.
func (r PegReading) Deviation() math.LegacyDec {
	return math.LegacyNewDecFromIntWithPrec(r.Price, 18).Sub(math.LegacyOneDec()).Abs()
}

// WithinBand reports whether the reading sits inside a symmetric band around
// parity. Band edges are accepted.
func (r PegReading) WithinBand(band math.LegacyDec) bool {
	return r.Deviation().LTE(band)
}

// MintMultiplier returns the mint-path valuation multiplier at Unit scale.
// The reading must be valid and inside the tight mint band; within it the
// observed price passes through unmodified, so a peg trading slightly under
// parity proportionally discounts newly minted debt.
func (r PegReading) MintMultiplier(mintBand math.LegacyDec) (math.Int, error) {
	if !r.Valid {
		return math.Int{}, ErrPegInvalid.Wrap("no valid peg reading")
	}
	if !r.WithinBand(mintBand) {
		return math.Int{}, ErrPegOutOfBand.Wrapf("peg deviation %s exceeds mint band %s", r.Deviation(), mintBand)
	}
	return r.Price, nil
}

// LiquidationMultiplier returns the liquidation-path multiplier at Unit
// scale. No band gate applies, but the multiplier is capped at parity on the
// high side so a peg above one never inflates collateral values during
// liquidation. An invalid reading still fails; liquidation does not value
// collateral on no data.
func (r PegReading) LiquidationMultiplier() (math.Int, error) {
	if !r.Valid {
		return math.Int{}, ErrPegInvalid.Wrap("no valid peg reading")
	}
	if r.Price.GT(Unit) {
		return Unit, nil
	}
	return r.Price, nil
}

// PegState is the risk circuit breaker state, the only persistent mutable
// state in the module. The zero value is the optimistic genesis default.
type PegState struct {
	// LastRoundID debounces repeated polls: a reading whose round id matches
	// is a no-op. It only advances on valid rounds.
	LastRoundID uint64 `protobuf:"varint,1,opt,name=last_round_id,json=lastRoundId,proto3" json:"last_round_id"`
	// InBandCount counts consecutive valid in-band rounds, saturating at
	// RiskRecoveryRounds.
	InBandCount uint32 `protobuf:"varint,2,opt,name=in_band_count,json=inBandCount,proto3" json:"in_band_count"`
	// RiskOff blocks new debt issuance when true. It is set on the first bad
	// or invalid round and cleared only after RiskRecoveryRounds good ones.
	RiskOff bool `protobuf:"varint,3,opt,name=risk_off,json=riskOff,proto3" json:"risk_off"`
}

// DefaultPegState returns the genesis breaker state: no round observed,
// risk-on until the feed says otherwise.
func DefaultPegState() PegState {
	return PegState{LastRoundID: 0, InBandCount: 0, RiskOff: false}
}

// Validate checks that the state is reachable under the transition rules.
func (s PegState) Validate() error {
	if s.InBandCount > RiskRecoveryRounds {
		return ErrInvalidPegState.Wrapf("in-band count %d exceeds %d", s.InBandCount, RiskRecoveryRounds)
	}
	if s.RiskOff && s.InBandCount == RiskRecoveryRounds {
		return ErrInvalidPegState.Wrap("risk-off cannot hold with a saturated in-band count")
	}
	return nil
}

// Next applies one breaker transition for a fresh peg reading and returns the
// resulting state. It is a pure function so transitions can be replayed
// offline; the keeper layers storage, events, and hooks on top.
//
// One-strike rule: the first invalid or out-of-band round trips risk-off
// immediately. Recovery needs RiskRecoveryRounds consecutive distinct in-band
// rounds. An invalid reading's round id is not trusted, so LastRoundID does
// not advance on invalid rounds.
func (s PegState) Next(reading PegReading, riskOffBand math.LegacyDec) PegState {
	if !reading.Valid {
		return PegState{LastRoundID: s.LastRoundID, InBandCount: 0, RiskOff: true}
	}

	if reading.RoundID == s.LastRoundID {
		return s
	}

	next := PegState{LastRoundID: reading.RoundID, InBandCount: s.InBandCount, RiskOff: s.RiskOff}
	if !reading.WithinBand(riskOffBand) {
		next.InBandCount = 0
		next.RiskOff = true
		return next
	}

	if next.InBandCount < RiskRecoveryRounds {
		next.InBandCount++
	}
	if next.InBandCount >= RiskRecoveryRounds {
		next.RiskOff = false
	}
	return next
}
