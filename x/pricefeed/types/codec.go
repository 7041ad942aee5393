package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/pricefeed interfaces
// and concrete types on the provided LegacyAmino codec. These types are used
// for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgAddSource{}, "cairn/pricefeed/MsgAddSource", nil)
	cdc.RegisterConcrete(&MsgSetSource{}, "cairn/pricefeed/MsgSetSource", nil)
	cdc.RegisterConcrete(&MsgSetBounds{}, "cairn/pricefeed/MsgSetBounds", nil)
	cdc.RegisterConcrete(&MsgUpdateRiskOff{}, "cairn/pricefeed/MsgUpdateRiskOff", nil)
	cdc.RegisterConcrete(&MsgGrantCapability{}, "cairn/pricefeed/MsgGrantCapability", nil)
	cdc.RegisterConcrete(&MsgRevokeCapability{}, "cairn/pricefeed/MsgRevokeCapability", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "cairn/pricefeed/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/pricefeed message implementations with
// the interface registry. Service descs are wired to the message router in
// the module's RegisterServices; there is no protoc descriptor set to
// register here.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgAddSource{},
		&MsgSetSource{},
		&MsgSetBounds{},
		&MsgUpdateRiskOff{},
		&MsgGrantCapability{},
		&MsgRevokeCapability{},
		&MsgUpdateParams{},
	)
}

var (
	Amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(Amino)
	cryptocodec.RegisterCrypto(Amino)
	Amino.Seal()
}
