package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// QueryServer defines the read-only query interface for the launch module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	PoolByDenoms(context.Context, *QueryPoolByDenomsRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Reserves(context.Context, *QueryReservesRequest) (*QueryReservesResponse, error)
	Quote(context.Context, *QueryQuoteRequest) (*QueryQuoteResponse, error)
	Allowance(context.Context, *QueryAllowanceRequest) (*QueryAllowanceResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

type QueryPoolByDenomsRequest struct {
	DenomA string `json:"denom_a"`
	DenomB string `json:"denom_b"`
}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QueryPoolsRequest struct{}

type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

type QueryReservesRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryReservesResponse exposes both the live custody balances and the
// virtual-augmented reserves the curve actually prices against.
type QueryReservesResponse struct {
	ReserveToken   sdkmath.Int `json:"reserve_token"`
	ReserveAsset   sdkmath.Int `json:"reserve_asset"`
	EffectiveToken sdkmath.Int `json:"effective_token"`
	EffectiveAsset sdkmath.Int `json:"effective_asset"`
}

type QueryQuoteRequest struct {
	DenomIn  string      `json:"denom_in"`
	DenomOut string      `json:"denom_out"`
	AmountIn sdkmath.Int `json:"amount_in"`
}

type QueryQuoteResponse struct {
	AmountOut sdkmath.Int `json:"amount_out"`
}

type QueryAllowanceRequest struct {
	PoolId  uint64 `json:"pool_id"`
	Spender string `json:"spender"`
	Denom   string `json:"denom"`
}

type QueryAllowanceResponse struct {
	Allowance Allowance `json:"allowance"`
}
