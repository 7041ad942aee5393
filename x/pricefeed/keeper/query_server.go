package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/store/prefix"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// sanitizePagination enforces sensible defaults and caps for paginated queries.
func sanitizePagination(p *query.PageRequest) *query.PageRequest {
	if p == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}

	if p.Limit == 0 {
		p.Limit = defaultPaginationLimit
	}

	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}

	return p
}

// Params queries the pricefeed module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	params := qs.GetParams(goCtx)

	return &types.QueryParamsResponse{Params: params}, nil
}

// Source queries the configuration of a single pair
func (qs queryServer) Source(goCtx context.Context, req *types.QuerySourceRequest) (*types.QuerySourceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.Base == "" || req.Quote == "" {
		return nil, status.Error(codes.InvalidArgument, "base and quote cannot be empty")
	}

	source, err := qs.GetSource(goCtx, req.Base, req.Quote)
	if err != nil {
		return nil, err
	}

	return &types.QuerySourceResponse{Source: source}, nil
}

// Sources queries all configured pairs
func (qs queryServer) Sources(goCtx context.Context, req *types.QuerySourcesRequest) (*types.QuerySourcesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	sourceStore := prefix.NewStore(qs.getStore(goCtx), types.SourceKeyPrefix)

	var entries []types.SourceEntry
	pageRes, err := query.Paginate(sourceStore, sanitizePagination(req.Pagination), func(key []byte, value []byte) error {
		var source types.Source
		if err := json.Unmarshal(value, &source); err != nil {
			return err
		}
		base, quote := types.SplitSourceKey(key)
		entries = append(entries, types.SourceEntry{Base: base, Quote: quote, Source: source})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QuerySourcesResponse{
		Sources:    entries,
		Pagination: pageRes,
	}, nil
}

// RiskOff queries the current breaker flag
func (qs queryServer) RiskOff(goCtx context.Context, req *types.QueryRiskOffRequest) (*types.QueryRiskOffResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	return &types.QueryRiskOffResponse{RiskOff: qs.IsRiskOff(goCtx)}, nil
}

// PegState queries the full circuit breaker state
func (qs queryServer) PegState(goCtx context.Context, req *types.QueryPegStateRequest) (*types.QueryPegStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	state, err := qs.GetPegState(goCtx)
	if err != nil {
		return nil, err
	}

	return &types.QueryPegStateResponse{PegState: state}, nil
}

// Value prices an amount of base in quote under mint-mode peg gating
func (qs queryServer) Value(goCtx context.Context, req *types.QueryValueRequest) (*types.QueryValueResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.Base == "" || req.Quote == "" {
		return nil, status.Error(codes.InvalidArgument, "base and quote cannot be empty")
	}

	if req.Amount.IsNil() {
		return nil, status.Error(codes.InvalidArgument, "amount cannot be nil")
	}

	value, updateTime, err := qs.PeekValue(goCtx, req.Base, req.Quote, req.Amount)
	if err != nil {
		return nil, err
	}

	return &types.QueryValueResponse{
		Value:      value,
		UpdateTime: updateTime.Unix(),
	}, nil
}

// LiquidationValue prices an amount under the liquidation peg policy
func (qs queryServer) LiquidationValue(goCtx context.Context, req *types.QueryLiquidationValueRequest) (*types.QueryLiquidationValueResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.Base == "" || req.Quote == "" {
		return nil, status.Error(codes.InvalidArgument, "base and quote cannot be empty")
	}

	if req.Amount.IsNil() {
		return nil, status.Error(codes.InvalidArgument, "amount cannot be nil")
	}

	value, updateTime, err := qs.PeekLiquidationValue(goCtx, req.Base, req.Quote, req.Amount)
	if err != nil {
		return nil, err
	}

	return &types.QueryLiquidationValueResponse{
		Value:      value,
		UpdateTime: updateTime.Unix(),
	}, nil
}

// Capability queries the principals granted an operation
func (qs queryServer) Capability(goCtx context.Context, req *types.QueryCapabilityRequest) (*types.QueryCapabilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.Operation == "" {
		return nil, status.Error(codes.InvalidArgument, "operation cannot be empty")
	}

	principals, err := qs.GetCapability(goCtx, req.Operation)
	if err != nil {
		return nil, err
	}

	return &types.QueryCapabilityResponse{Principals: principals}, nil
}
