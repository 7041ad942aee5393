package types

import (
	"testing"

	"cosmossdk.io/math"
	"pgregory.net/rapid"
)

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		denom    string
		expected string
	}{
		{"unit identity", "100000000000000000000", "1000000000000000000", "1000000000000000000", "100000000000000000000"},
		{"floors toward zero", "7", "3", "2", "10"},
		{"amount times rate", "100000000000000000000", "125000000000000000000", "1000000000000000000", "12500000000000000000000"},
		{"half unit multiplier", "10000000000000000000", "500000000000000000", "1000000000000000000", "5000000000000000000"},
		{"zero amount", "0", "125000000000000000000", "1000000000000000000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := math.NewIntFromString(tt.a)
			b, _ := math.NewIntFromString(tt.b)
			denom, _ := math.NewIntFromString(tt.denom)
			expected, _ := math.NewIntFromString(tt.expected)

			got := MulDiv(a, b, denom)
			if !got.Equal(expected) {
				t.Errorf("MulDiv(%s, %s, %s) = %s, want %s", tt.a, tt.b, tt.denom, got, expected)
			}
		})
	}
}

// MulDiv keeps the full intermediate product, so operands far beyond 64 bits
// must not overflow or lose precision.
func TestMulDivLargeOperands(t *testing.T) {
	a := math.NewIntWithDecimal(5, 30)
	b := math.NewIntWithDecimal(3, 30)
	got := MulDiv(a, b, Unit)

	expected := math.NewIntWithDecimal(15, 42)
	if !got.Equal(expected) {
		t.Errorf("MulDiv large = %s, want %s", got, expected)
	}
}

func TestInvertRate(t *testing.T) {
	tests := []struct {
		name      string
		numerator math.Int
		expected  math.Int
	}{
		// Venue reports 10^22 quote per base at the 10^24 scale, so one
		// quote buys 100 base units.
		{"hundred units", math.NewIntWithDecimal(1, 22), math.NewIntWithDecimal(1, 20)},
		{"exact parity", math.NewIntWithDecimal(1, 24), Unit},
		{"one eighth", math.NewIntWithDecimal(8, 21), math.NewIntWithDecimal(125, 18)},
		{"half unit", math.NewIntWithDecimal(2, 24), math.NewIntWithDecimal(5, 17)},
		{"floors repeating third", math.NewIntWithDecimal(3, 24), math.NewIntFromUint64(333333333333333333)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InvertRate(tt.numerator)
			if !got.Equal(tt.expected) {
				t.Errorf("InvertRate(%s) = %s, want %s", tt.numerator, got, tt.expected)
			}
		})
	}
}

// A venue numerator of 7757 whole units must invert to just under 128.916
// units: 10^42 / (7757*10^18) is approximately 128.915*10^18.
func TestInvertRateOddNumerator(t *testing.T) {
	numerator := math.NewInt(7757).Mul(Unit)
	got := InvertRate(numerator)

	lower := math.LegacyMustNewDecFromStr("128.915").MulInt(Unit).TruncateInt()
	upper := math.LegacyMustNewDecFromStr("128.916").MulInt(Unit).TruncateInt()

	if got.LT(lower) || got.GTE(upper) {
		t.Errorf("InvertRate(%s) = %s, want in [%s, %s)", numerator, got, lower, upper)
	}
}

// InvertRate is floor division: the result times the numerator never exceeds
// the scaled unit, and one more would always overshoot.
func TestInvertRateFloorProperty(t *testing.T) {
	target := Unit.Mul(ExpectedRateScale)

	rapid.Check(t, func(t *rapid.T) {
		units := rapid.Int64Range(1, 1_000_000).Draw(t, "units")
		dust := rapid.Int64Range(0, 999_999_999).Draw(t, "dust")
		numerator := math.NewInt(units).Mul(Unit).Add(math.NewInt(dust))

		inverted := InvertRate(numerator)

		if inverted.Mul(numerator).GT(target) {
			t.Fatalf("InvertRate(%s) = %s overshoots the scaled unit", numerator, inverted)
		}
		if inverted.Add(math.OneInt()).Mul(numerator).LTE(target) {
			t.Fatalf("InvertRate(%s) = %s is not the floor", numerator, inverted)
		}
	})
}

// A venue quoting more quote per base must never invert to a larger rate.
func TestInvertRateMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64Range(1, 1_000_000_000).Draw(t, "a")
		b := rapid.Int64Range(1, 1_000_000_000).Draw(t, "b")

		smaller := math.NewInt(min(a, b)).Mul(Unit)
		larger := math.NewInt(max(a, b)).Mul(Unit)

		if InvertRate(smaller).LT(InvertRate(larger)) {
			t.Fatalf("inversion not monotonic for %s vs %s", smaller, larger)
		}
	})
}

func TestScalePegAnswer(t *testing.T) {
	tests := []struct {
		name     string
		answer   math.Int
		decimals uint8
		expected math.Int
	}{
		{"already at target", Unit, 18, Unit},
		{"eight decimal parity", math.NewIntWithDecimal(1, 8), 8, Unit},
		{"eight decimal discount", math.NewInt(99_000_000), 8, math.NewIntWithDecimal(99, 16)},
		{"zero decimals", math.NewInt(1), 0, Unit},
		{"six decimal premium", math.NewInt(1_050_000), 6, math.NewIntWithDecimal(105, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScalePegAnswer(tt.answer, tt.decimals)
			if !got.Equal(tt.expected) {
				t.Errorf("ScalePegAnswer(%s, %d) = %s, want %s", tt.answer, tt.decimals, got, tt.expected)
			}
		})
	}
}
