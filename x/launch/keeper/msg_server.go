package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kiln-chain/kiln/x/launch/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the launch MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	pool, err := m.Keeper.CreatePool(ctx, msg.Creator, msg.TokenDenom, msg.AssetDenom)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolId: pool.Id, PoolAddress: pool.Address}, nil
}

func (m msgServer) SetVirtualReserveDefaults(ctx context.Context, msg *types.MsgSetVirtualReserveDefaults) (*types.MsgSetVirtualReserveDefaultsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetDefaultVirtualReserves(ctx, msg.Authority, msg.VirtualToken, msg.VirtualAsset); err != nil {
		return nil, err
	}
	return &types.MsgSetVirtualReserveDefaultsResponse{}, nil
}

func (m msgServer) SetFeeParams(ctx context.Context, msg *types.MsgSetFeeParams) (*types.MsgSetFeeParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetFeeParams(ctx, msg.Authority, msg.FeeVault, msg.BuyFeePct, msg.SellFeePct); err != nil {
		return nil, err
	}
	return &types.MsgSetFeeParamsResponse{}, nil
}

func (m msgServer) SetAuthorizedRouter(ctx context.Context, msg *types.MsgSetAuthorizedRouter) (*types.MsgSetAuthorizedRouterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetAuthorizedRouter(ctx, msg.Authority, msg.Router); err != nil {
		return nil, err
	}
	return &types.MsgSetAuthorizedRouterResponse{}, nil
}

func (m msgServer) SetAuthorities(ctx context.Context, msg *types.MsgSetAuthorities) (*types.MsgSetAuthoritiesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetAuthorities(ctx, msg.Authority, msg.PoolCreator, msg.Executor); err != nil {
		return nil, err
	}
	return &types.MsgSetAuthoritiesResponse{}, nil
}

func (m msgServer) SeedLiquidity(ctx context.Context, msg *types.MsgSeedLiquidity) (*types.MsgSeedLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("executor: %v", err)
	}
	pool, err := m.Keeper.SeedLiquidity(ctx, executor, msg.TokenDenom, msg.AssetDenom, msg.TokenAmount, msg.AssetAmount)
	if err != nil {
		return nil, err
	}
	return &types.MsgSeedLiquidityResponse{PoolId: pool.Id}, nil
}

func (m msgServer) Buy(ctx context.Context, msg *types.MsgBuy) (*types.MsgBuyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("executor: %v", err)
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("recipient: %v", err)
	}
	netIn, amountOut, err := m.Keeper.Buy(ctx, executor, msg.AmountIn, msg.TokenDenom, msg.AssetDenom, recipient)
	if err != nil {
		return nil, err
	}
	return &types.MsgBuyResponse{NetAmountIn: netIn, AmountOut: amountOut}, nil
}

func (m msgServer) Sell(ctx context.Context, msg *types.MsgSell) (*types.MsgSellResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("executor: %v", err)
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("recipient: %v", err)
	}
	amountIn, amountOut, netOut, err := m.Keeper.Sell(ctx, executor, msg.AmountIn, msg.TokenDenom, msg.AssetDenom, recipient)
	if err != nil {
		return nil, err
	}
	return &types.MsgSellResponse{AmountIn: amountIn, AmountOut: amountOut, NetAmountOut: netOut}, nil
}

func (m msgServer) GraduatePool(ctx context.Context, msg *types.MsgGraduatePool) (*types.MsgGraduatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("executor: %v", err)
	}
	tokensMoved, assetMoved, tokensBurned, err := m.Keeper.GraduatePool(ctx, executor, msg.TokenDenom, msg.AssetDenom)
	if err != nil {
		return nil, err
	}
	return &types.MsgGraduatePoolResponse{
		TokensMoved:  tokensMoved,
		AssetMoved:   assetMoved,
		TokensBurned: tokensBurned,
	}, nil
}

func (m msgServer) WithdrawAllowance(ctx context.Context, msg *types.MsgWithdrawAllowance) (*types.MsgWithdrawAllowanceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	spender, err := sdk.AccAddressFromBech32(msg.Spender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("spender: %v", err)
	}
	amount, err := m.Keeper.WithdrawAllowance(ctx, spender, msg.PoolId, msg.Denom)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawAllowanceResponse{Amount: amount}, nil
}
