package types

import (
	"cosmossdk.io/math"
)

const (
	// PegTargetDecimals is the precision peg feed answers are normalized to.
	PegTargetDecimals = uint8(18)

	// RiskRecoveryRounds is the number of consecutive in-band rounds required
	// before the circuit breaker clears risk-off.
	RiskRecoveryRounds = uint32(3)
)

var (
	// Unit is the protocol fixed-point scale: 1.0 == 10^18.
	Unit = math.NewIntWithDecimal(1, 18)

	// ExpectedRateScale is the venue's fixed rate denominator (10^24). Every
	// median rate read from the venue must carry exactly this denominator.
	ExpectedRateScale = math.NewIntWithDecimal(1, 24)
)

// MulDiv computes a*b/denom with floor division over arbitrary-precision
// integers. Every rate, peg, and amount combination in the module is routed
// through this single helper so mint and liquidation valuations round the
// same way. The intermediate product is never truncated.
func MulDiv(a, b, denom math.Int) math.Int {
	return a.Mul(b).Quo(denom)
}

// InvertRate converts the venue's quote-per-base numerator into a
// base-per-quote rate at Unit precision: Unit*ExpectedRateScale/numerator.
// The caller must have established numerator > 0.
func InvertRate(numerator math.Int) math.Int {
	return MulDiv(Unit, ExpectedRateScale, numerator)
}

// ScalePegAnswer normalizes a raw peg answer reported at the given decimal
// precision up to PegTargetDecimals. The caller must have established
// decimals <= PegTargetDecimals.
func ScalePegAnswer(answer math.Int, decimals uint8) math.Int {
	if decimals == PegTargetDecimals {
		return answer
	}
	return answer.Mul(math.NewIntWithDecimal(1, int(PegTargetDecimals-decimals)))
}
