package types

import (
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryParamsRequest is the request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params"`
}

// QuerySourceRequest is the request type for the Query/Source RPC method.
type QuerySourceRequest struct {
	Base  string `protobuf:"bytes,1,opt,name=base,proto3" json:"base"`
	Quote string `protobuf:"bytes,2,opt,name=quote,proto3" json:"quote"`
}

// QuerySourceResponse is the response type for the Query/Source RPC method.
type QuerySourceResponse struct {
	Source Source `protobuf:"bytes,1,opt,name=source,proto3" json:"source"`
}

// QuerySourcesRequest is the request type for the Query/Sources RPC method.
type QuerySourcesRequest struct {
	Pagination *query.PageRequest `protobuf:"bytes,1,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

// QuerySourcesResponse is the response type for the Query/Sources RPC method.
type QuerySourcesResponse struct {
	Sources    []SourceEntry       `protobuf:"bytes,1,rep,name=sources,proto3" json:"sources"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

// QueryRiskOffRequest is the request type for the Query/RiskOff RPC method.
type QueryRiskOffRequest struct{}

// QueryRiskOffResponse is the response type for the Query/RiskOff RPC method.
type QueryRiskOffResponse struct {
	RiskOff bool `protobuf:"varint,1,opt,name=risk_off,json=riskOff,proto3" json:"risk_off"`
}

// QueryPegStateRequest is the request type for the Query/PegState RPC method.
type QueryPegStateRequest struct{}

// QueryPegStateResponse is the response type for the Query/PegState RPC
// method.
type QueryPegStateResponse struct {
	PegState PegState `protobuf:"bytes,1,opt,name=peg_state,json=pegState,proto3" json:"peg_state"`
}

// QueryValueRequest is the request type for the Query/Value RPC method. It
// prices Amount units of Base in Quote under mint-mode peg gating.
type QueryValueRequest struct {
	Base   string   `protobuf:"bytes,1,opt,name=base,proto3" json:"base"`
	Quote  string   `protobuf:"bytes,2,opt,name=quote,proto3" json:"quote"`
	Amount math.Int `protobuf:"bytes,3,opt,name=amount,proto3,customtype=cosmossdk.io/math.Int" json:"amount"`
}

// QueryValueResponse is the response type for the Query/Value RPC method.
// UpdateTime is the unix time of the oldest input the value depends on.
type QueryValueResponse struct {
	Value      math.Int `protobuf:"bytes,1,opt,name=value,proto3,customtype=cosmossdk.io/math.Int" json:"value"`
	UpdateTime int64    `protobuf:"varint,2,opt,name=update_time,json=updateTime,proto3" json:"update_time"`
}

// QueryLiquidationValueRequest is the request type for the
// Query/LiquidationValue RPC method. Same shape as Value, priced under the
// liquidation peg policy.
type QueryLiquidationValueRequest struct {
	Base   string   `protobuf:"bytes,1,opt,name=base,proto3" json:"base"`
	Quote  string   `protobuf:"bytes,2,opt,name=quote,proto3" json:"quote"`
	Amount math.Int `protobuf:"bytes,3,opt,name=amount,proto3,customtype=cosmossdk.io/math.Int" json:"amount"`
}

// QueryLiquidationValueResponse is the response type for the
// Query/LiquidationValue RPC method.
type QueryLiquidationValueResponse struct {
	Value      math.Int `protobuf:"bytes,1,opt,name=value,proto3,customtype=cosmossdk.io/math.Int" json:"value"`
	UpdateTime int64    `protobuf:"varint,2,opt,name=update_time,json=updateTime,proto3" json:"update_time"`
}

// QueryCapabilityRequest is the request type for the Query/Capability RPC
// method.
type QueryCapabilityRequest struct {
	Operation string `protobuf:"bytes,1,opt,name=operation,proto3" json:"operation"`
}

// QueryCapabilityResponse is the response type for the Query/Capability RPC
// method.
type QueryCapabilityResponse struct {
	Principals []string `protobuf:"bytes,1,rep,name=principals,proto3" json:"principals"`
}
