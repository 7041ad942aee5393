package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Pricefeed module sentinel errors
var (
	// Configuration errors (caller mistake, fail fast)
	ErrInvalidSource  = sdkerrors.Register(ModuleName, 2, "invalid price source")
	ErrSourceExists   = sdkerrors.Register(ModuleName, 3, "price source already registered")
	ErrSourceNotFound = sdkerrors.Register(ModuleName, 4, "price source not found")
	ErrInvalidBounds  = sdkerrors.Register(ModuleName, 5, "invalid price bounds")

	// Data integrity errors
	ErrZeroRate              = sdkerrors.Register(ModuleName, 6, "venue reported non-positive rate")
	ErrUnexpectedDenominator = sdkerrors.Register(ModuleName, 7, "unexpected rate denominator")

	// Freshness errors
	ErrFutureTimestamp = sdkerrors.Register(ModuleName, 8, "rate timestamp is in the future")
	ErrStalePrice      = sdkerrors.Register(ModuleName, 9, "stale price")

	// Availability errors
	ErrInsufficientReports = sdkerrors.Register(ModuleName, 10, "insufficient venue reports")

	// Bounds errors
	ErrPriceBelowMinimum = sdkerrors.Register(ModuleName, 11, "price below configured minimum")
	ErrPriceAboveMaximum = sdkerrors.Register(ModuleName, 12, "price above configured maximum")
	ErrPegOutOfBand      = sdkerrors.Register(ModuleName, 13, "peg outside mint band")

	// Every malformed or unreachable peg feed response collapses into this
	// single sentinel
	ErrPegInvalid = sdkerrors.Register(ModuleName, 14, "peg reading invalid")

	// Authorization errors
	ErrUnauthorized      = sdkerrors.Register(ModuleName, 15, "unauthorized")
	ErrInvalidCapability = sdkerrors.Register(ModuleName, 16, "invalid capability")

	// State errors
	ErrInvalidPegState = sdkerrors.Register(ModuleName, 17, "invalid peg state")
	ErrInvalidAmount   = sdkerrors.Register(ModuleName, 18, "invalid amount")
)
