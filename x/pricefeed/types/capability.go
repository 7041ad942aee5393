package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Operation capability names. Each config mutation is gated by its own
// capability so operators can be granted narrow rights (a feed operator may
// rotate feed ids without being able to widen sanity bounds).
const (
	CapabilityAddSource = "add_source"
	CapabilitySetSource = "set_source"
	CapabilitySetBounds = "set_bounds"
)

// ValidOperations lists every grantable operation name.
func ValidOperations() []string {
	return []string{CapabilityAddSource, CapabilitySetSource, CapabilitySetBounds}
}

// IsValidOperation reports whether the operation name is grantable.
func IsValidOperation(operation string) bool {
	for _, op := range ValidOperations() {
		if op == operation {
			return true
		}
	}
	return false
}

// CapabilityGrant is the genesis/export form of an operation's principal set.
type CapabilityGrant struct {
	Operation  string   `protobuf:"bytes,1,opt,name=operation,proto3" json:"operation"`
	Principals []string `protobuf:"bytes,2,rep,name=principals,proto3" json:"principals"`
}

// Validate checks the grant shape.
func (g CapabilityGrant) Validate() error {
	if !IsValidOperation(g.Operation) {
		return ErrInvalidCapability.Wrapf("unknown operation %q", g.Operation)
	}
	seen := make(map[string]struct{}, len(g.Principals))
	for _, principal := range g.Principals {
		if _, err := sdk.AccAddressFromBech32(principal); err != nil {
			return ErrInvalidCapability.Wrapf("invalid principal %q: %s", principal, err)
		}
		if _, ok := seen[principal]; ok {
			return ErrInvalidCapability.Wrapf("duplicate principal %q", principal)
		}
		seen[principal] = struct{}{}
	}
	return nil
}
