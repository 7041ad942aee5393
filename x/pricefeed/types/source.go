package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"golang.org/x/crypto/sha3"
)

// Source is the per-pair feed configuration. It is keyed by the ordered
// (base, quote) denom pair and persisted as JSON.
type Source struct {
	// FeedID identifies the venue feed the primary rate is read from.
	FeedID string `protobuf:"bytes,1,opt,name=feed_id,json=feedId,proto3" json:"feed_id"`
	// MaxAge is the staleness horizon for the primary rate, in seconds.
	MaxAge uint64 `protobuf:"varint,2,opt,name=max_age,json=maxAge,proto3" json:"max_age"`
	// MinPrice and MaxPrice bound the inverted rate. A zero bound disables
	// that side of the check.
	MinPrice math.Int `protobuf:"bytes,3,opt,name=min_price,json=minPrice,proto3,customtype=cosmossdk.io/math.Int" json:"min_price"`
	MaxPrice math.Int `protobuf:"bytes,4,opt,name=max_price,json=maxPrice,proto3,customtype=cosmossdk.io/math.Int" json:"max_price"`
	// MinReports is the venue report-count floor. Zero disables the check.
	MinReports uint64 `protobuf:"varint,5,opt,name=min_reports,json=minReports,proto3" json:"min_reports"`
}

// NewSource creates a source with empty bounds.
func NewSource(feedID string, maxAge, minReports uint64) Source {
	return Source{
		FeedID:     feedID,
		MaxAge:     maxAge,
		MinPrice:   math.ZeroInt(),
		MaxPrice:   math.ZeroInt(),
		MinReports: minReports,
	}
}

// Validate checks the source configuration shape.
func (s Source) Validate() error {
	if strings.TrimSpace(s.FeedID) == "" {
		return ErrInvalidSource.Wrap("feed id cannot be empty")
	}
	if s.MaxAge == 0 {
		return ErrInvalidSource.Wrap("max age must be positive")
	}
	if err := ValidateBounds(s.MinPrice, s.MaxPrice); err != nil {
		return err
	}
	return nil
}

// HasMinPrice reports whether the lower sanity bound is set.
func (s Source) HasMinPrice() bool {
	return !s.MinPrice.IsNil() && s.MinPrice.IsPositive()
}

// HasMaxPrice reports whether the upper sanity bound is set.
func (s Source) HasMaxPrice() bool {
	return !s.MaxPrice.IsNil() && s.MaxPrice.IsPositive()
}

// ValidateBounds checks a (min, max) bound pair. Zero (or nil) disables a
// side; when both are set the window must be non-empty.
func ValidateBounds(minPrice, maxPrice math.Int) error {
	if !minPrice.IsNil() && minPrice.IsNegative() {
		return ErrInvalidBounds.Wrap("min price cannot be negative")
	}
	if !maxPrice.IsNil() && maxPrice.IsNegative() {
		return ErrInvalidBounds.Wrap("max price cannot be negative")
	}
	minSet := !minPrice.IsNil() && minPrice.IsPositive()
	maxSet := !maxPrice.IsNil() && maxPrice.IsPositive()
	if minSet && maxSet && minPrice.GTE(maxPrice) {
		return ErrInvalidBounds.Wrapf("min price %s must be below max price %s", minPrice, maxPrice)
	}
	return nil
}

// ValidatePair checks a (base, quote) registry key. Identity pairs are
// rejected because valuation short-circuits them without a source.
func ValidatePair(base, quote string) error {
	if base == "" || quote == "" {
		return ErrInvalidSource.Wrap("base and quote cannot be empty")
	}
	if base == quote {
		return ErrInvalidSource.Wrap("identity pairs need no source")
	}
	return nil
}

// SourceEntry pairs a source with the denoms it is keyed by. Used in genesis
// and in paginated query responses.
type SourceEntry struct {
	Base   string `protobuf:"bytes,1,opt,name=base,proto3" json:"base"`
	Quote  string `protobuf:"bytes,2,opt,name=quote,proto3" json:"quote"`
	Source Source `protobuf:"bytes,3,opt,name=source,proto3" json:"source"`
}

// Validate checks the entry key and the embedded source.
func (e SourceEntry) Validate() error {
	if err := ValidatePair(e.Base, e.Quote); err != nil {
		return err
	}
	return e.Source.Validate()
}

// PairString renders a (base, quote) pair for logs and events.
func PairString(base, quote string) string {
	return fmt.Sprintf("%s/%s", base, quote)
}

// DeriveFeedID returns the canonical venue feed id for a pair: the keccak256
// digest of "pricefeed:<base>/<quote>", hex encoded with a 0x prefix. Venues
// that key feeds by 32-byte ids use this convention; operators may still
// register an explicit id instead.
func DeriveFeedID(base, quote string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte("pricefeed:" + base + "/" + quote))
	return fmt.Sprintf("0x%x", h.Sum(nil))
}
