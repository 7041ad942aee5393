package types

import (
	"strings"
	"testing"

	sdkerrors "cosmossdk.io/errors"
)

func TestErrorDefinitions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code uint32
		msg  string
	}{
		{"ErrInvalidSource", ErrInvalidSource, 2, "invalid price source"},
		{"ErrSourceExists", ErrSourceExists, 3, "price source already registered"},
		{"ErrSourceNotFound", ErrSourceNotFound, 4, "price source not found"},
		{"ErrInvalidBounds", ErrInvalidBounds, 5, "invalid price bounds"},
		{"ErrZeroRate", ErrZeroRate, 6, "venue reported non-positive rate"},
		{"ErrUnexpectedDenominator", ErrUnexpectedDenominator, 7, "unexpected rate denominator"},
		{"ErrFutureTimestamp", ErrFutureTimestamp, 8, "rate timestamp is in the future"},
		{"ErrStalePrice", ErrStalePrice, 9, "stale price"},
		{"ErrInsufficientReports", ErrInsufficientReports, 10, "insufficient venue reports"},
		{"ErrPriceBelowMinimum", ErrPriceBelowMinimum, 11, "price below configured minimum"},
		{"ErrPriceAboveMaximum", ErrPriceAboveMaximum, 12, "price above configured maximum"},
		{"ErrPegOutOfBand", ErrPegOutOfBand, 13, "peg outside mint band"},
		{"ErrPegInvalid", ErrPegInvalid, 14, "peg reading invalid"},
		{"ErrUnauthorized", ErrUnauthorized, 15, "unauthorized"},
		{"ErrInvalidCapability", ErrInvalidCapability, 16, "invalid capability"},
		{"ErrInvalidPegState", ErrInvalidPegState, 17, "invalid peg state"},
		{"ErrInvalidAmount", ErrInvalidAmount, 18, "invalid amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Error("Error is nil")
				return
			}

			errMsg := tt.err.Error()
			if !strings.Contains(errMsg, tt.msg) {
				t.Errorf("Expected error message to contain %q, got %q", tt.msg, errMsg)
			}

			if sdkErr, ok := tt.err.(*sdkerrors.Error); ok {
				if sdkErr.ABCICode() != tt.code {
					t.Errorf("Expected ABCI code %d, got %d", tt.code, sdkErr.ABCICode())
				}

				if sdkErr.Codespace() != ModuleName {
					t.Errorf("Expected codespace %q, got %q", ModuleName, sdkErr.Codespace())
				}
			} else {
				t.Errorf("Expected *sdkerrors.Error, got %T", tt.err)
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	wrapped := ErrStalePrice.Wrapf("age %d exceeds max %d", 7200, 3600)

	if !sdkerrors.IsOf(wrapped, ErrStalePrice) {
		t.Error("Wrapped error no longer matches its sentinel")
	}

	if !strings.Contains(wrapped.Error(), "age 7200 exceeds max 3600") {
		t.Errorf("Wrapped error lost its context: %v", wrapped)
	}
}
