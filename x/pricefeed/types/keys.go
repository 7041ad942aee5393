package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName is the name of the pricefeed module
	ModuleName = "pricefeed"

	// StoreKey is the default store key for the pricefeed module
	StoreKey = ModuleName

	// RouterKey is the message route for the pricefeed module
	RouterKey = ModuleName
)

var (
	// ModuleNamespace is the namespace byte for the Pricefeed module (0x04)
	ModuleNamespace = byte(0x04)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x04, 0x01}

	// SourceKeyPrefix is the prefix for price source store keys
	SourceKeyPrefix = []byte{0x04, 0x02}

	// PegStateKey is the key for the risk circuit breaker state
	PegStateKey = []byte{0x04, 0x03}

	// CapabilityKeyPrefix is the prefix for operation capability grants
	CapabilityKeyPrefix = []byte{0x04, 0x04}
)

// DefaultAuthority returns the governance module address as the only allowed
// authority for pricefeed parameter updates.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// GetSourceKey returns the store key for the source registered for the ordered
// (base, quote) pair. Denoms never contain a NUL byte, so 0x00 is a safe separator.
func GetSourceKey(base, quote string) []byte {
	key := make([]byte, 0, len(SourceKeyPrefix)+len(base)+1+len(quote))
	key = append(key, SourceKeyPrefix...)
	key = append(key, []byte(base)...)
	key = append(key, 0x00)
	key = append(key, []byte(quote)...)
	return key
}

// SplitSourceKey recovers the (base, quote) pair from a source store key with
// SourceKeyPrefix already stripped.
func SplitSourceKey(pair []byte) (base, quote string) {
	for i, b := range pair {
		if b == 0x00 {
			return string(pair[:i]), string(pair[i+1:])
		}
	}
	return string(pair), ""
}

// GetCapabilityKey returns the store key for the principal set of an operation.
func GetCapabilityKey(operation string) []byte {
	return append(CapabilityKeyPrefix, []byte(operation)...)
}
