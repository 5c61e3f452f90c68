package keeper

import (
	"context"

	"github.com/kiln-chain/kiln/x/launch/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the launch QueryServer
// interface for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

func (q queryServer) Pool(ctx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	pool, found := q.GetPool(ctx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

func (q queryServer) PoolByDenoms(ctx context.Context, req *types.QueryPoolByDenomsRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	pool, found := q.GetPoolByDenoms(ctx, req.DenomA, req.DenomB)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pair %s/%s", req.DenomA, req.DenomB)
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

func (q queryServer) Pools(ctx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	return &types.QueryPoolsResponse{Pools: q.GetAllPools(ctx)}, nil
}

func (q queryServer) Reserves(ctx context.Context, req *types.QueryReservesRequest) (*types.QueryReservesResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	pool, found := q.GetPool(ctx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}
	realToken, realAsset := q.GetRealReserves(ctx, pool)
	effToken, effAsset := q.GetReserves(ctx, pool)
	return &types.QueryReservesResponse{
		ReserveToken:   realToken,
		ReserveAsset:   realAsset,
		EffectiveToken: effToken,
		EffectiveAsset: effAsset,
	}, nil
}

func (q queryServer) Quote(ctx context.Context, req *types.QueryQuoteRequest) (*types.QueryQuoteResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	amountOut, err := q.QuotePair(ctx, req.DenomIn, req.DenomOut, req.AmountIn)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteResponse{AmountOut: amountOut}, nil
}

func (q queryServer) Allowance(ctx context.Context, req *types.QueryAllowanceRequest) (*types.QueryAllowanceResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	allowance, found := q.GetAllowance(ctx, req.PoolId, req.Spender, req.Denom)
	if !found {
		return nil, types.ErrAllowanceNotFound.Wrapf("pool %d, spender %s, denom %s", req.PoolId, req.Spender, req.Denom)
	}
	return &types.QueryAllowanceResponse{Allowance: allowance}, nil
}
