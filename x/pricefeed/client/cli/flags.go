package cli

// Flag constants for pricefeed CLI commands
const (
	// Source flags
	FlagMinReports   = "min-reports"
	FlagDeriveFeedID = "derive-feed-id"
)
