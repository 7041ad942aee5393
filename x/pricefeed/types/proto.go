package types

import (
	proto "github.com/cosmos/gogoproto/proto"
)

// Wire types for the cairn.pricefeed.v1 services. The module keeps its wire
// surface in Go rather than vendoring protoc output; the registrations below
// mirror what generated code performs in its init.

func (m *Params) Reset()         { *m = Params{} }
func (m *Params) String() string { return proto.CompactTextString(m) }
func (*Params) ProtoMessage()    {}

func (m *Source) Reset()         { *m = Source{} }
func (m *Source) String() string { return proto.CompactTextString(m) }
func (*Source) ProtoMessage()    {}

func (m *SourceEntry) Reset()         { *m = SourceEntry{} }
func (m *SourceEntry) String() string { return proto.CompactTextString(m) }
func (*SourceEntry) ProtoMessage()    {}

func (m *PegState) Reset()         { *m = PegState{} }
func (m *PegState) String() string { return proto.CompactTextString(m) }
func (*PegState) ProtoMessage()    {}

func (m *CapabilityGrant) Reset()         { *m = CapabilityGrant{} }
func (m *CapabilityGrant) String() string { return proto.CompactTextString(m) }
func (*CapabilityGrant) ProtoMessage()    {}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()    {}

func (m *MsgAddSource) Reset()         { *m = MsgAddSource{} }
func (m *MsgAddSource) String() string { return proto.CompactTextString(m) }
func (*MsgAddSource) ProtoMessage()    {}

func (m *MsgAddSourceResponse) Reset()         { *m = MsgAddSourceResponse{} }
func (m *MsgAddSourceResponse) String() string { return proto.CompactTextString(m) }
func (*MsgAddSourceResponse) ProtoMessage()    {}

func (m *MsgSetSource) Reset()         { *m = MsgSetSource{} }
func (m *MsgSetSource) String() string { return proto.CompactTextString(m) }
func (*MsgSetSource) ProtoMessage()    {}

func (m *MsgSetSourceResponse) Reset()         { *m = MsgSetSourceResponse{} }
func (m *MsgSetSourceResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSetSourceResponse) ProtoMessage()    {}

func (m *MsgSetBounds) Reset()         { *m = MsgSetBounds{} }
func (m *MsgSetBounds) String() string { return proto.CompactTextString(m) }
func (*MsgSetBounds) ProtoMessage()    {}

func (m *MsgSetBoundsResponse) Reset()         { *m = MsgSetBoundsResponse{} }
func (m *MsgSetBoundsResponse) String() string { return proto.CompactTextString(m) }
func (*MsgSetBoundsResponse) ProtoMessage()    {}

func (m *MsgUpdateRiskOff) Reset()         { *m = MsgUpdateRiskOff{} }
func (m *MsgUpdateRiskOff) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateRiskOff) ProtoMessage()    {}

func (m *MsgUpdateRiskOffResponse) Reset()         { *m = MsgUpdateRiskOffResponse{} }
func (m *MsgUpdateRiskOffResponse) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateRiskOffResponse) ProtoMessage()    {}

func (m *MsgGrantCapability) Reset()         { *m = MsgGrantCapability{} }
func (m *MsgGrantCapability) String() string { return proto.CompactTextString(m) }
func (*MsgGrantCapability) ProtoMessage()    {}

func (m *MsgGrantCapabilityResponse) Reset()         { *m = MsgGrantCapabilityResponse{} }
func (m *MsgGrantCapabilityResponse) String() string { return proto.CompactTextString(m) }
func (*MsgGrantCapabilityResponse) ProtoMessage()    {}

func (m *MsgRevokeCapability) Reset()         { *m = MsgRevokeCapability{} }
func (m *MsgRevokeCapability) String() string { return proto.CompactTextString(m) }
func (*MsgRevokeCapability) ProtoMessage()    {}

func (m *MsgRevokeCapabilityResponse) Reset()         { *m = MsgRevokeCapabilityResponse{} }
func (m *MsgRevokeCapabilityResponse) String() string { return proto.CompactTextString(m) }
func (*MsgRevokeCapabilityResponse) ProtoMessage()    {}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParams) ProtoMessage()    {}

func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParamsResponse) ProtoMessage()    {}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()    {}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()    {}

func (m *QuerySourceRequest) Reset()         { *m = QuerySourceRequest{} }
func (m *QuerySourceRequest) String() string { return proto.CompactTextString(m) }
func (*QuerySourceRequest) ProtoMessage()    {}

func (m *QuerySourceResponse) Reset()         { *m = QuerySourceResponse{} }
func (m *QuerySourceResponse) String() string { return proto.CompactTextString(m) }
func (*QuerySourceResponse) ProtoMessage()    {}

func (m *QuerySourcesRequest) Reset()         { *m = QuerySourcesRequest{} }
func (m *QuerySourcesRequest) String() string { return proto.CompactTextString(m) }
func (*QuerySourcesRequest) ProtoMessage()    {}

func (m *QuerySourcesResponse) Reset()         { *m = QuerySourcesResponse{} }
func (m *QuerySourcesResponse) String() string { return proto.CompactTextString(m) }
func (*QuerySourcesResponse) ProtoMessage()    {}

func (m *QueryRiskOffRequest) Reset()         { *m = QueryRiskOffRequest{} }
func (m *QueryRiskOffRequest) String() string { return proto.CompactTextString(m) }
func (*QueryRiskOffRequest) ProtoMessage()    {}

func (m *QueryRiskOffResponse) Reset()         { *m = QueryRiskOffResponse{} }
func (m *QueryRiskOffResponse) String() string { return proto.CompactTextString(m) }
func (*QueryRiskOffResponse) ProtoMessage()    {}

func (m *QueryPegStateRequest) Reset()         { *m = QueryPegStateRequest{} }
func (m *QueryPegStateRequest) String() string { return proto.CompactTextString(m) }
func (*QueryPegStateRequest) ProtoMessage()    {}

func (m *QueryPegStateResponse) Reset()         { *m = QueryPegStateResponse{} }
func (m *QueryPegStateResponse) String() string { return proto.CompactTextString(m) }
func (*QueryPegStateResponse) ProtoMessage()    {}

func (m *QueryValueRequest) Reset()         { *m = QueryValueRequest{} }
func (m *QueryValueRequest) String() string { return proto.CompactTextString(m) }
func (*QueryValueRequest) ProtoMessage()    {}

func (m *QueryValueResponse) Reset()         { *m = QueryValueResponse{} }
func (m *QueryValueResponse) String() string { return proto.CompactTextString(m) }
func (*QueryValueResponse) ProtoMessage()    {}

func (m *QueryLiquidationValueRequest) Reset()         { *m = QueryLiquidationValueRequest{} }
func (m *QueryLiquidationValueRequest) String() string { return proto.CompactTextString(m) }
func (*QueryLiquidationValueRequest) ProtoMessage()    {}

func (m *QueryLiquidationValueResponse) Reset()         { *m = QueryLiquidationValueResponse{} }
func (m *QueryLiquidationValueResponse) String() string { return proto.CompactTextString(m) }
func (*QueryLiquidationValueResponse) ProtoMessage()    {}

func (m *QueryCapabilityRequest) Reset()         { *m = QueryCapabilityRequest{} }
func (m *QueryCapabilityRequest) String() string { return proto.CompactTextString(m) }
func (*QueryCapabilityRequest) ProtoMessage()    {}

func (m *QueryCapabilityResponse) Reset()         { *m = QueryCapabilityResponse{} }
func (m *QueryCapabilityResponse) String() string { return proto.CompactTextString(m) }
func (*QueryCapabilityResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Params)(nil), "cairn.pricefeed.v1.Params")
	proto.RegisterType((*Source)(nil), "cairn.pricefeed.v1.Source")
	proto.RegisterType((*SourceEntry)(nil), "cairn.pricefeed.v1.SourceEntry")
	proto.RegisterType((*PegState)(nil), "cairn.pricefeed.v1.PegState")
	proto.RegisterType((*CapabilityGrant)(nil), "cairn.pricefeed.v1.CapabilityGrant")
	proto.RegisterType((*GenesisState)(nil), "cairn.pricefeed.v1.GenesisState")
	proto.RegisterType((*MsgAddSource)(nil), "cairn.pricefeed.v1.MsgAddSource")
	proto.RegisterType((*MsgAddSourceResponse)(nil), "cairn.pricefeed.v1.MsgAddSourceResponse")
	proto.RegisterType((*MsgSetSource)(nil), "cairn.pricefeed.v1.MsgSetSource")
	proto.RegisterType((*MsgSetSourceResponse)(nil), "cairn.pricefeed.v1.MsgSetSourceResponse")
	proto.RegisterType((*MsgSetBounds)(nil), "cairn.pricefeed.v1.MsgSetBounds")
	proto.RegisterType((*MsgSetBoundsResponse)(nil), "cairn.pricefeed.v1.MsgSetBoundsResponse")
	proto.RegisterType((*MsgUpdateRiskOff)(nil), "cairn.pricefeed.v1.MsgUpdateRiskOff")
	proto.RegisterType((*MsgUpdateRiskOffResponse)(nil), "cairn.pricefeed.v1.MsgUpdateRiskOffResponse")
	proto.RegisterType((*MsgGrantCapability)(nil), "cairn.pricefeed.v1.MsgGrantCapability")
	proto.RegisterType((*MsgGrantCapabilityResponse)(nil), "cairn.pricefeed.v1.MsgGrantCapabilityResponse")
	proto.RegisterType((*MsgRevokeCapability)(nil), "cairn.pricefeed.v1.MsgRevokeCapability")
	proto.RegisterType((*MsgRevokeCapabilityResponse)(nil), "cairn.pricefeed.v1.MsgRevokeCapabilityResponse")
	proto.RegisterType((*MsgUpdateParams)(nil), "cairn.pricefeed.v1.MsgUpdateParams")
	proto.RegisterType((*MsgUpdateParamsResponse)(nil), "cairn.pricefeed.v1.MsgUpdateParamsResponse")
	proto.RegisterType((*QueryParamsRequest)(nil), "cairn.pricefeed.v1.QueryParamsRequest")
	proto.RegisterType((*QueryParamsResponse)(nil), "cairn.pricefeed.v1.QueryParamsResponse")
	proto.RegisterType((*QuerySourceRequest)(nil), "cairn.pricefeed.v1.QuerySourceRequest")
	proto.RegisterType((*QuerySourceResponse)(nil), "cairn.pricefeed.v1.QuerySourceResponse")
	proto.RegisterType((*QuerySourcesRequest)(nil), "cairn.pricefeed.v1.QuerySourcesRequest")
	proto.RegisterType((*QuerySourcesResponse)(nil), "cairn.pricefeed.v1.QuerySourcesResponse")
	proto.RegisterType((*QueryRiskOffRequest)(nil), "cairn.pricefeed.v1.QueryRiskOffRequest")
	proto.RegisterType((*QueryRiskOffResponse)(nil), "cairn.pricefeed.v1.QueryRiskOffResponse")
	proto.RegisterType((*QueryPegStateRequest)(nil), "cairn.pricefeed.v1.QueryPegStateRequest")
	proto.RegisterType((*QueryPegStateResponse)(nil), "cairn.pricefeed.v1.QueryPegStateResponse")
	proto.RegisterType((*QueryValueRequest)(nil), "cairn.pricefeed.v1.QueryValueRequest")
	proto.RegisterType((*QueryValueResponse)(nil), "cairn.pricefeed.v1.QueryValueResponse")
	proto.RegisterType((*QueryLiquidationValueRequest)(nil), "cairn.pricefeed.v1.QueryLiquidationValueRequest")
	proto.RegisterType((*QueryLiquidationValueResponse)(nil), "cairn.pricefeed.v1.QueryLiquidationValueResponse")
	proto.RegisterType((*QueryCapabilityRequest)(nil), "cairn.pricefeed.v1.QueryCapabilityRequest")
	proto.RegisterType((*QueryCapabilityResponse)(nil), "cairn.pricefeed.v1.QueryCapabilityResponse")
}
