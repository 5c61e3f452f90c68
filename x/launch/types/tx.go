package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// MsgServer defines the message handling interface for the launch module.
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	SetVirtualReserveDefaults(context.Context, *MsgSetVirtualReserveDefaults) (*MsgSetVirtualReserveDefaultsResponse, error)
	SetFeeParams(context.Context, *MsgSetFeeParams) (*MsgSetFeeParamsResponse, error)
	SetAuthorizedRouter(context.Context, *MsgSetAuthorizedRouter) (*MsgSetAuthorizedRouterResponse, error)
	SetAuthorities(context.Context, *MsgSetAuthorities) (*MsgSetAuthoritiesResponse, error)
	SeedLiquidity(context.Context, *MsgSeedLiquidity) (*MsgSeedLiquidityResponse, error)
	Buy(context.Context, *MsgBuy) (*MsgBuyResponse, error)
	Sell(context.Context, *MsgSell) (*MsgSellResponse, error)
	GraduatePool(context.Context, *MsgGraduatePool) (*MsgGraduatePoolResponse, error)
	WithdrawAllowance(context.Context, *MsgWithdrawAllowance) (*MsgWithdrawAllowanceResponse, error)
}

type MsgCreatePoolResponse struct {
	PoolId      uint64 `json:"pool_id"`
	PoolAddress string `json:"pool_address"`
}

type MsgSetVirtualReserveDefaultsResponse struct{}

type MsgSetFeeParamsResponse struct{}

type MsgSetAuthorizedRouterResponse struct{}

type MsgSetAuthoritiesResponse struct{}

type MsgSeedLiquidityResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgBuyResponse reports the input credited to the curve after the fee and
// the tokens delivered to the recipient.
type MsgBuyResponse struct {
	NetAmountIn sdkmath.Int `json:"net_amount_in"`
	AmountOut   sdkmath.Int `json:"amount_out"`
}

// MsgSellResponse reports the gross quote and the net asset delivered to the
// recipient after the output fee.
type MsgSellResponse struct {
	AmountIn     sdkmath.Int `json:"amount_in"`
	AmountOut    sdkmath.Int `json:"amount_out"`
	NetAmountOut sdkmath.Int `json:"net_amount_out"`
}

// MsgGraduatePoolResponse reports the token and asset amounts paid to the
// executor and the tokens burned.
type MsgGraduatePoolResponse struct {
	TokensMoved  sdkmath.Int `json:"tokens_moved"`
	AssetMoved   sdkmath.Int `json:"asset_moved"`
	TokensBurned sdkmath.Int `json:"tokens_burned"`
}

type MsgWithdrawAllowanceResponse struct {
	Amount sdkmath.Int `json:"amount"`
}
