package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgAddSource        = "add_source"
	TypeMsgSetSource        = "set_source"
	TypeMsgSetBounds        = "set_bounds"
	TypeMsgUpdateRiskOff    = "update_risk_off"
	TypeMsgGrantCapability  = "grant_capability"
	TypeMsgRevokeCapability = "revoke_capability"
	TypeMsgUpdateParams     = "update_params"
)

var (
	_ sdk.Msg = &MsgAddSource{}
	_ sdk.Msg = &MsgSetSource{}
	_ sdk.Msg = &MsgSetBounds{}
	_ sdk.Msg = &MsgUpdateRiskOff{}
	_ sdk.Msg = &MsgGrantCapability{}
	_ sdk.Msg = &MsgRevokeCapability{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgAddSource registers a feed for a new (base, quote) pair.
type MsgAddSource struct {
	Signer     string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer"`
	Base       string `protobuf:"bytes,2,opt,name=base,proto3" json:"base"`
	Quote      string `protobuf:"bytes,3,opt,name=quote,proto3" json:"quote"`
	FeedID     string `protobuf:"bytes,4,opt,name=feed_id,json=feedId,proto3" json:"feed_id"`
	MaxAge     uint64 `protobuf:"varint,5,opt,name=max_age,json=maxAge,proto3" json:"max_age"`
	MinReports uint64 `protobuf:"varint,6,opt,name=min_reports,json=minReports,proto3" json:"min_reports"`
}

// MsgAddSourceResponse is the response of MsgAddSource.
type MsgAddSourceResponse struct{}

// NewMsgAddSource creates a new MsgAddSource instance
func NewMsgAddSource(signer, base, quote, feedID string, maxAge, minReports uint64) *MsgAddSource {
	return &MsgAddSource{
		Signer:     signer,
		Base:       base,
		Quote:      quote,
		FeedID:     feedID,
		MaxAge:     maxAge,
		MinReports: minReports,
	}
}

// Route implements sdk.Msg
func (msg *MsgAddSource) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgAddSource) Type() string { return TypeMsgAddSource }

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgAddSource) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Signer)
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgAddSource) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgAddSource) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrUnauthorized.Wrapf("invalid signer address: %s", err)
	}
	return validatePairAndSource(msg.Base, msg.Quote, msg.FeedID, msg.MaxAge, msg.MinReports)
}

// MsgSetSource updates the feed, staleness horizon, and report floor of an
// existing source in place. Bounds are untouched.
type MsgSetSource struct {
	Signer     string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer"`
	Base       string `protobuf:"bytes,2,opt,name=base,proto3" json:"base"`
	Quote      string `protobuf:"bytes,3,opt,name=quote,proto3" json:"quote"`
	FeedID     string `protobuf:"bytes,4,opt,name=feed_id,json=feedId,proto3" json:"feed_id"`
	MaxAge     uint64 `protobuf:"varint,5,opt,name=max_age,json=maxAge,proto3" json:"max_age"`
	MinReports uint64 `protobuf:"varint,6,opt,name=min_reports,json=minReports,proto3" json:"min_reports"`
}

// MsgSetSourceResponse is the response of MsgSetSource.
type MsgSetSourceResponse struct{}

// NewMsgSetSource creates a new MsgSetSource instance
func NewMsgSetSource(signer, base, quote, feedID string, maxAge, minReports uint64) *MsgSetSource {
	return &MsgSetSource{
		Signer:     signer,
		Base:       base,
		Quote:      quote,
		FeedID:     feedID,
		MaxAge:     maxAge,
		MinReports: minReports,
	}
}

// Route implements sdk.Msg
func (msg *MsgSetSource) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSetSource) Type() string { return TypeMsgSetSource }

// GetSigners implements sdk.Msg
func (msg *MsgSetSource) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Signer)
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgSetSource) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgSetSource) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrUnauthorized.Wrapf("invalid signer address: %s", err)
	}
	return validatePairAndSource(msg.Base, msg.Quote, msg.FeedID, msg.MaxAge, msg.MinReports)
}

// MsgSetBounds sets or overwrites the sanity bounds of an existing source.
// A zero bound disables that side of the check.
type MsgSetBounds struct {
	Signer   string   `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer"`
	Base     string   `protobuf:"bytes,2,opt,name=base,proto3" json:"base"`
	Quote    string   `protobuf:"bytes,3,opt,name=quote,proto3" json:"quote"`
	MinPrice math.Int `protobuf:"bytes,4,opt,name=min_price,json=minPrice,proto3,customtype=cosmossdk.io/math.Int" json:"min_price"`
	MaxPrice math.Int `protobuf:"bytes,5,opt,name=max_price,json=maxPrice,proto3,customtype=cosmossdk.io/math.Int" json:"max_price"`
}

// MsgSetBoundsResponse is the response of MsgSetBounds.
type MsgSetBoundsResponse struct{}

// NewMsgSetBounds creates a new MsgSetBounds instance
func NewMsgSetBounds(signer, base, quote string, minPrice, maxPrice math.Int) *MsgSetBounds {
	return &MsgSetBounds{
		Signer:   signer,
		Base:     base,
		Quote:    quote,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}
}

// Route implements sdk.Msg
func (msg *MsgSetBounds) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSetBounds) Type() string { return TypeMsgSetBounds }

// GetSigners implements sdk.Msg
func (msg *MsgSetBounds) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Signer)
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgSetBounds) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgSetBounds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrUnauthorized.Wrapf("invalid signer address: %s", err)
	}
	if err := ValidatePair(msg.Base, msg.Quote); err != nil {
		return err
	}
	return ValidateBounds(msg.MinPrice, msg.MaxPrice)
}

// MsgUpdateRiskOff advances the risk circuit breaker by one observation. Any
// account may submit it at any cadence; repeated calls within an unchanged
// round are no-ops.
type MsgUpdateRiskOff struct {
	Signer string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer"`
}

// MsgUpdateRiskOffResponse reports the breaker state after the update.
type MsgUpdateRiskOffResponse struct {
	RiskOff bool `protobuf:"varint,1,opt,name=risk_off,json=riskOff,proto3" json:"risk_off"`
}

// NewMsgUpdateRiskOff creates a new MsgUpdateRiskOff instance
func NewMsgUpdateRiskOff(signer string) *MsgUpdateRiskOff {
	return &MsgUpdateRiskOff{Signer: signer}
}

// Route implements sdk.Msg
func (msg *MsgUpdateRiskOff) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateRiskOff) Type() string { return TypeMsgUpdateRiskOff }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateRiskOff) GetSigners() []sdk.AccAddress {
	signer, _ := sdk.AccAddressFromBech32(msg.Signer)
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateRiskOff) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateRiskOff) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return ErrUnauthorized.Wrapf("invalid signer address: %s", err)
	}
	return nil
}

// MsgGrantCapability adds a principal to an operation's capability set
// (governance only).
type MsgGrantCapability struct {
	Authority string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority"`
	Operation string `protobuf:"bytes,2,opt,name=operation,proto3" json:"operation"`
	Grantee   string `protobuf:"bytes,3,opt,name=grantee,proto3" json:"grantee"`
}

// MsgGrantCapabilityResponse is the response of MsgGrantCapability.
type MsgGrantCapabilityResponse struct{}

// NewMsgGrantCapability creates a new MsgGrantCapability instance
func NewMsgGrantCapability(authority, operation, grantee string) *MsgGrantCapability {
	return &MsgGrantCapability{
		Authority: authority,
		Operation: operation,
		Grantee:   grantee,
	}
}

// Route implements sdk.Msg
func (msg *MsgGrantCapability) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgGrantCapability) Type() string { return TypeMsgGrantCapability }

// GetSigners implements sdk.Msg
func (msg *MsgGrantCapability) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgGrantCapability) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgGrantCapability) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if !IsValidOperation(msg.Operation) {
		return ErrInvalidCapability.Wrapf("unknown operation %q", msg.Operation)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Grantee); err != nil {
		return ErrInvalidCapability.Wrapf("invalid grantee address: %s", err)
	}
	return nil
}

// MsgRevokeCapability removes a principal from an operation's capability set
// (governance only).
type MsgRevokeCapability struct {
	Authority string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority"`
	Operation string `protobuf:"bytes,2,opt,name=operation,proto3" json:"operation"`
	Grantee   string `protobuf:"bytes,3,opt,name=grantee,proto3" json:"grantee"`
}

// MsgRevokeCapabilityResponse is the response of MsgRevokeCapability.
type MsgRevokeCapabilityResponse struct{}

// NewMsgRevokeCapability creates a new MsgRevokeCapability instance
func NewMsgRevokeCapability(authority, operation, grantee string) *MsgRevokeCapability {
	return &MsgRevokeCapability{
		Authority: authority,
		Operation: operation,
		Grantee:   grantee,
	}
}

// Route implements sdk.Msg
func (msg *MsgRevokeCapability) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRevokeCapability) Type() string { return TypeMsgRevokeCapability }

// GetSigners implements sdk.Msg
func (msg *MsgRevokeCapability) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRevokeCapability) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRevokeCapability) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	if !IsValidOperation(msg.Operation) {
		return ErrInvalidCapability.Wrapf("unknown operation %q", msg.Operation)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Grantee); err != nil {
		return ErrInvalidCapability.Wrapf("invalid grantee address: %s", err)
	}
	return nil
}

// MsgUpdateParams replaces the module parameters (governance only).
type MsgUpdateParams struct {
	Authority string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority"`
	Params    Params `protobuf:"bytes,2,opt,name=params,proto3" json:"params"`
}

// MsgUpdateParamsResponse is the response of MsgUpdateParams.
type MsgUpdateParamsResponse struct{}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Authority: authority,
		Params:    params,
	}
}

// Route implements sdk.Msg
func (msg *MsgUpdateParams) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}

func validatePairAndSource(base, quote, feedID string, maxAge, minReports uint64) error {
	if err := ValidatePair(base, quote); err != nil {
		return err
	}
	return NewSource(feedID, maxAge, minReports).Validate()
}
