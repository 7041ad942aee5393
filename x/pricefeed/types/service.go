package types

import (
	context "context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// gRPC glue for the cairn.pricefeed.v1.Msg and cairn.pricefeed.v1.Query
// services: client stubs, server interfaces, and service descs in the shape
// protoc-gen-gogo emits.

// MsgClient is the client API for Msg service.
type MsgClient interface {
	// AddSource registers a feed for a new pair.
	AddSource(ctx context.Context, in *MsgAddSource, opts ...grpc.CallOption) (*MsgAddSourceResponse, error)
	// SetSource reconfigures an existing pair in place, preserving bounds.
	SetSource(ctx context.Context, in *MsgSetSource, opts ...grpc.CallOption) (*MsgSetSourceResponse, error)
	// SetBounds sets the sanity bounds of an existing pair.
	SetBounds(ctx context.Context, in *MsgSetBounds, opts ...grpc.CallOption) (*MsgSetBoundsResponse, error)
	// UpdateRiskOff advances the risk circuit breaker by one peg observation.
	UpdateRiskOff(ctx context.Context, in *MsgUpdateRiskOff, opts ...grpc.CallOption) (*MsgUpdateRiskOffResponse, error)
	// GrantCapability adds a principal to an operation's capability set.
	GrantCapability(ctx context.Context, in *MsgGrantCapability, opts ...grpc.CallOption) (*MsgGrantCapabilityResponse, error)
	// RevokeCapability removes a principal from an operation's capability set.
	RevokeCapability(ctx context.Context, in *MsgRevokeCapability, opts ...grpc.CallOption) (*MsgRevokeCapabilityResponse, error)
	// UpdateParams replaces the module parameters.
	UpdateParams(ctx context.Context, in *MsgUpdateParams, opts ...grpc.CallOption) (*MsgUpdateParamsResponse, error)
}

type msgClient struct {
	cc grpc1.ClientConn
}

// NewMsgClient creates a new Msg service client.
func NewMsgClient(cc grpc1.ClientConn) MsgClient {
	return &msgClient{cc}
}

func (c *msgClient) AddSource(ctx context.Context, in *MsgAddSource, opts ...grpc.CallOption) (*MsgAddSourceResponse, error) {
	out := new(MsgAddSourceResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Msg/AddSource", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) SetSource(ctx context.Context, in *MsgSetSource, opts ...grpc.CallOption) (*MsgSetSourceResponse, error) {
	out := new(MsgSetSourceResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Msg/SetSource", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) SetBounds(ctx context.Context, in *MsgSetBounds, opts ...grpc.CallOption) (*MsgSetBoundsResponse, error) {
	out := new(MsgSetBoundsResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Msg/SetBounds", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) UpdateRiskOff(ctx context.Context, in *MsgUpdateRiskOff, opts ...grpc.CallOption) (*MsgUpdateRiskOffResponse, error) {
	out := new(MsgUpdateRiskOffResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Msg/UpdateRiskOff", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) GrantCapability(ctx context.Context, in *MsgGrantCapability, opts ...grpc.CallOption) (*MsgGrantCapabilityResponse, error) {
	out := new(MsgGrantCapabilityResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Msg/GrantCapability", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) RevokeCapability(ctx context.Context, in *MsgRevokeCapability, opts ...grpc.CallOption) (*MsgRevokeCapabilityResponse, error) {
	out := new(MsgRevokeCapabilityResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Msg/RevokeCapability", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) UpdateParams(ctx context.Context, in *MsgUpdateParams, opts ...grpc.CallOption) (*MsgUpdateParamsResponse, error) {
	out := new(MsgUpdateParamsResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Msg/UpdateParams", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MsgServer is the server API for Msg service.
type MsgServer interface {
	// AddSource registers a feed for a new pair.
	AddSource(context.Context, *MsgAddSource) (*MsgAddSourceResponse, error)
	// SetSource reconfigures an existing pair in place, preserving bounds.
	SetSource(context.Context, *MsgSetSource) (*MsgSetSourceResponse, error)
	// SetBounds sets the sanity bounds of an existing pair.
	SetBounds(context.Context, *MsgSetBounds) (*MsgSetBoundsResponse, error)
	// UpdateRiskOff advances the risk circuit breaker by one peg observation.
	UpdateRiskOff(context.Context, *MsgUpdateRiskOff) (*MsgUpdateRiskOffResponse, error)
	// GrantCapability adds a principal to an operation's capability set.
	GrantCapability(context.Context, *MsgGrantCapability) (*MsgGrantCapabilityResponse, error)
	// RevokeCapability removes a principal from an operation's capability set.
	RevokeCapability(context.Context, *MsgRevokeCapability) (*MsgRevokeCapabilityResponse, error)
	// UpdateParams replaces the module parameters.
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// UnimplementedMsgServer can be embedded to have forward compatible implementations.
type UnimplementedMsgServer struct{}

func (*UnimplementedMsgServer) AddSource(ctx context.Context, req *MsgAddSource) (*MsgAddSourceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddSource not implemented")
}
func (*UnimplementedMsgServer) SetSource(ctx context.Context, req *MsgSetSource) (*MsgSetSourceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSource not implemented")
}
func (*UnimplementedMsgServer) SetBounds(ctx context.Context, req *MsgSetBounds) (*MsgSetBoundsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetBounds not implemented")
}
func (*UnimplementedMsgServer) UpdateRiskOff(ctx context.Context, req *MsgUpdateRiskOff) (*MsgUpdateRiskOffResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateRiskOff not implemented")
}
func (*UnimplementedMsgServer) GrantCapability(ctx context.Context, req *MsgGrantCapability) (*MsgGrantCapabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GrantCapability not implemented")
}
func (*UnimplementedMsgServer) RevokeCapability(ctx context.Context, req *MsgRevokeCapability) (*MsgRevokeCapabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RevokeCapability not implemented")
}
func (*UnimplementedMsgServer) UpdateParams(ctx context.Context, req *MsgUpdateParams) (*MsgUpdateParamsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateParams not implemented")
}

// RegisterMsgServer registers the Msg service implementation with the gRPC
// server.
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_AddSource_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgAddSource)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).AddSource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Msg/AddSource",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).AddSource(ctx, req.(*MsgAddSource))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_SetSource_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSetSource)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SetSource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Msg/SetSource",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SetSource(ctx, req.(*MsgSetSource))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_SetBounds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSetBounds)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SetBounds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Msg/SetBounds",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SetBounds(ctx, req.(*MsgSetBounds))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateRiskOff_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateRiskOff)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateRiskOff(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Msg/UpdateRiskOff",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateRiskOff(ctx, req.(*MsgUpdateRiskOff))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_GrantCapability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgGrantCapability)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).GrantCapability(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Msg/GrantCapability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).GrantCapability(ctx, req.(*MsgGrantCapability))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_RevokeCapability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRevokeCapability)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RevokeCapability(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Msg/RevokeCapability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RevokeCapability(ctx, req.(*MsgRevokeCapability))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateParams)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Msg/UpdateParams",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateParams(ctx, req.(*MsgUpdateParams))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "cairn.pricefeed.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddSource",
			Handler:    _Msg_AddSource_Handler,
		},
		{
			MethodName: "SetSource",
			Handler:    _Msg_SetSource_Handler,
		},
		{
			MethodName: "SetBounds",
			Handler:    _Msg_SetBounds_Handler,
		},
		{
			MethodName: "UpdateRiskOff",
			Handler:    _Msg_UpdateRiskOff_Handler,
		},
		{
			MethodName: "GrantCapability",
			Handler:    _Msg_GrantCapability_Handler,
		},
		{
			MethodName: "RevokeCapability",
			Handler:    _Msg_RevokeCapability_Handler,
		},
		{
			MethodName: "UpdateParams",
			Handler:    _Msg_UpdateParams_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cairn/pricefeed/v1/tx.proto",
}

// QueryClient is the client API for Query service.
type QueryClient interface {
	// Params returns the module parameters.
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	// Source returns the configuration of a single pair.
	Source(ctx context.Context, in *QuerySourceRequest, opts ...grpc.CallOption) (*QuerySourceResponse, error)
	// Sources returns all configured pairs, paginated.
	Sources(ctx context.Context, in *QuerySourcesRequest, opts ...grpc.CallOption) (*QuerySourcesResponse, error)
	// RiskOff returns the current breaker flag.
	RiskOff(ctx context.Context, in *QueryRiskOffRequest, opts ...grpc.CallOption) (*QueryRiskOffResponse, error)
	// PegState returns the full circuit breaker state.
	PegState(ctx context.Context, in *QueryPegStateRequest, opts ...grpc.CallOption) (*QueryPegStateResponse, error)
	// Value prices an amount of base in quote under mint-mode peg gating.
	Value(ctx context.Context, in *QueryValueRequest, opts ...grpc.CallOption) (*QueryValueResponse, error)
	// LiquidationValue prices an amount under the liquidation peg policy.
	LiquidationValue(ctx context.Context, in *QueryLiquidationValueRequest, opts ...grpc.CallOption) (*QueryLiquidationValueResponse, error)
	// Capability returns the principals granted an operation.
	Capability(ctx context.Context, in *QueryCapabilityRequest, opts ...grpc.CallOption) (*QueryCapabilityResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient creates a new Query service client.
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Source(ctx context.Context, in *QuerySourceRequest, opts ...grpc.CallOption) (*QuerySourceResponse, error) {
	out := new(QuerySourceResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Query/Source", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Sources(ctx context.Context, in *QuerySourcesRequest, opts ...grpc.CallOption) (*QuerySourcesResponse, error) {
	out := new(QuerySourcesResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Query/Sources", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) RiskOff(ctx context.Context, in *QueryRiskOffRequest, opts ...grpc.CallOption) (*QueryRiskOffResponse, error) {
	out := new(QueryRiskOffResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Query/RiskOff", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PegState(ctx context.Context, in *QueryPegStateRequest, opts ...grpc.CallOption) (*QueryPegStateResponse, error) {
	out := new(QueryPegStateResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Query/PegState", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Value(ctx context.Context, in *QueryValueRequest, opts ...grpc.CallOption) (*QueryValueResponse, error) {
	out := new(QueryValueResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Query/Value", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LiquidationValue(ctx context.Context, in *QueryLiquidationValueRequest, opts ...grpc.CallOption) (*QueryLiquidationValueResponse, error) {
	out := new(QueryLiquidationValueResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Query/LiquidationValue", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Capability(ctx context.Context, in *QueryCapabilityRequest, opts ...grpc.CallOption) (*QueryCapabilityResponse, error) {
	out := new(QueryCapabilityResponse)
	err := c.cc.Invoke(ctx, "/cairn.pricefeed.v1.Query/Capability", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryServer is the server API for Query service.
type QueryServer interface {
	// Params returns the module parameters.
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	// Source returns the configuration of a single pair.
	Source(context.Context, *QuerySourceRequest) (*QuerySourceResponse, error)
	// Sources returns all configured pairs, paginated.
	Sources(context.Context, *QuerySourcesRequest) (*QuerySourcesResponse, error)
	// RiskOff returns the current breaker flag.
	RiskOff(context.Context, *QueryRiskOffRequest) (*QueryRiskOffResponse, error)
	// PegState returns the full circuit breaker state.
	PegState(context.Context, *QueryPegStateRequest) (*QueryPegStateResponse, error)
	// Value prices an amount of base in quote under mint-mode peg gating.
	Value(context.Context, *QueryValueRequest) (*QueryValueResponse, error)
	// LiquidationValue prices an amount under the liquidation peg policy.
	LiquidationValue(context.Context, *QueryLiquidationValueRequest) (*QueryLiquidationValueResponse, error)
	// Capability returns the principals granted an operation.
	Capability(context.Context, *QueryCapabilityRequest) (*QueryCapabilityResponse, error)
}

// UnimplementedQueryServer can be embedded to have forward compatible implementations.
type UnimplementedQueryServer struct{}

func (*UnimplementedQueryServer) Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Params not implemented")
}
func (*UnimplementedQueryServer) Source(ctx context.Context, req *QuerySourceRequest) (*QuerySourceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Source not implemented")
}
func (*UnimplementedQueryServer) Sources(ctx context.Context, req *QuerySourcesRequest) (*QuerySourcesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Sources not implemented")
}
func (*UnimplementedQueryServer) RiskOff(ctx context.Context, req *QueryRiskOffRequest) (*QueryRiskOffResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RiskOff not implemented")
}
func (*UnimplementedQueryServer) PegState(ctx context.Context, req *QueryPegStateRequest) (*QueryPegStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PegState not implemented")
}
func (*UnimplementedQueryServer) Value(ctx context.Context, req *QueryValueRequest) (*QueryValueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Value not implemented")
}
func (*UnimplementedQueryServer) LiquidationValue(ctx context.Context, req *QueryLiquidationValueRequest) (*QueryLiquidationValueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LiquidationValue not implemented")
}
func (*UnimplementedQueryServer) Capability(ctx context.Context, req *QueryCapabilityRequest) (*QueryCapabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Capability not implemented")
}

// RegisterQueryServer registers the Query service implementation with the
// gRPC server.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Query/Params",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Source_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySourceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Source(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Query/Source",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Source(ctx, req.(*QuerySourceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Sources_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySourcesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Sources(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Query/Sources",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Sources(ctx, req.(*QuerySourcesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_RiskOff_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryRiskOffRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).RiskOff(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Query/RiskOff",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).RiskOff(ctx, req.(*QueryRiskOffRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_PegState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPegStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).PegState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Query/PegState",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).PegState(ctx, req.(*QueryPegStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Value_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryValueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Value(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Query/Value",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Value(ctx, req.(*QueryValueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_LiquidationValue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryLiquidationValueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).LiquidationValue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Query/LiquidationValue",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).LiquidationValue(ctx, req.(*QueryLiquidationValueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Capability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryCapabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Capability(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cairn.pricefeed.v1.Query/Capability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Capability(ctx, req.(*QueryCapabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "cairn.pricefeed.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Params",
			Handler:    _Query_Params_Handler,
		},
		{
			MethodName: "Source",
			Handler:    _Query_Source_Handler,
		},
		{
			MethodName: "Sources",
			Handler:    _Query_Sources_Handler,
		},
		{
			MethodName: "RiskOff",
			Handler:    _Query_RiskOff_Handler,
		},
		{
			MethodName: "PegState",
			Handler:    _Query_PegState_Handler,
		},
		{
			MethodName: "Value",
			Handler:    _Query_Value_Handler,
		},
		{
			MethodName: "LiquidationValue",
			Handler:    _Query_LiquidationValue_Handler,
		},
		{
			MethodName: "Capability",
			Handler:    _Query_Capability_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cairn/pricefeed/v1/query.proto",
}
