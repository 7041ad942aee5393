package types

// Event types for the Pricefeed module
// All event types use lowercase with underscore separator (module_action format)
const (
	// Source registry events
	EventTypeSourceAdded   = "pricefeed_source_added"
	EventTypeSourceUpdated = "pricefeed_source_updated"
	EventTypeBoundsSet     = "pricefeed_bounds_set"

	// Risk circuit breaker events
	EventTypeRiskOffSet       = "pricefeed_risk_off_set"
	EventTypeRiskOffCleared   = "pricefeed_risk_off_cleared"
	EventTypePegRoundObserved = "pricefeed_peg_round_observed"

	// Authorization events
	EventTypeCapabilityGranted = "pricefeed_capability_granted"
	EventTypeCapabilityRevoked = "pricefeed_capability_revoked"

	// Parameter events
	EventTypeParamsUpdated = "pricefeed_params_updated"
)

// Event attribute keys for the Pricefeed module
const (
	AttributeKeyBase       = "base"
	AttributeKeyQuote      = "quote"
	AttributeKeyFeedID     = "feed_id"
	AttributeKeyMaxAge     = "max_age"
	AttributeKeyMinReports = "min_reports"
	AttributeKeyMinPrice   = "min_price"
	AttributeKeyMaxPrice   = "max_price"

	AttributeKeyRoundID     = "round_id"
	AttributeKeyDeviation   = "deviation"
	AttributeKeyInBandCount = "in_band_count"
	AttributeKeyRiskOff     = "risk_off"

	AttributeKeyOperation = "operation"
	AttributeKeyGrantee   = "grantee"

	AttributeKeyMintBand    = "mint_band"
	AttributeKeyRiskOffBand = "risk_off_band"
	AttributeKeyPegMaxAge   = "peg_max_age"
)
