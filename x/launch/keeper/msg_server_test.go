package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/kiln-chain/kiln/testutil/keeper"
	"github.com/kiln-chain/kiln/x/launch/keeper"
	"github.com/kiln-chain/kiln/x/launch/types"
)

func TestMsgServer_CreatePool(t *testing.T) {
	k, _, ctx := keepertest.LaunchKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	resp, err := srv.CreatePool(ctx, types.NewMsgCreatePool(keepertest.Creator.String(), "ubonk", "ukiln"))
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.PoolId)
	require.Equal(t, types.PoolAddress(1).String(), resp.PoolAddress)

	_, err = srv.CreatePool(ctx, types.NewMsgCreatePool(keepertest.Creator.String(), "ubonk", "ukiln"))
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)
}

func TestMsgServer_AdminFlow(t *testing.T) {
	k, _, ctx := keepertest.LaunchKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.SetFeeParams(ctx, types.NewMsgSetFeeParams(keepertest.Authority, keepertest.FeeVault.String(), 5, 3))
	require.NoError(t, err)

	_, err = srv.SetVirtualReserveDefaults(ctx, types.NewMsgSetVirtualReserveDefaults(keepertest.Authority, math.NewInt(10), math.NewInt(20)))
	require.NoError(t, err)

	newRouter := keepertest.TestAddr("new_router")
	_, err = srv.SetAuthorizedRouter(ctx, types.NewMsgSetAuthorizedRouter(keepertest.Authority, newRouter.String()))
	require.NoError(t, err)

	_, err = srv.SetAuthorities(ctx, types.NewMsgSetAuthorities(keepertest.Authority, keepertest.Creator.String(), keepertest.Executor.String()))
	require.NoError(t, err)

	params := k.GetParams(ctx)
	require.Equal(t, uint64(5), params.BuyFeePct)
	require.Equal(t, uint64(3), params.SellFeePct)
	require.Equal(t, math.NewInt(10), params.DefaultVirtualToken)
	require.Equal(t, newRouter.String(), params.AuthorizedRouter)

	// non-authority signers are rejected
	_, err = srv.SetFeeParams(ctx, types.NewMsgSetFeeParams(keepertest.Trader.String(), keepertest.FeeVault.String(), 5, 3))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestMsgServer_TradeFlow(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.CreatePool(ctx, types.NewMsgCreatePool(keepertest.Creator.String(), "ubonk", "ukiln"))
	require.NoError(t, err)

	bank.Mint(keepertest.Executor, sdk.NewInt64Coin("ubonk", 1_000_000), sdk.NewInt64Coin("ukiln", 4_500))
	seedResp, err := srv.SeedLiquidity(ctx, types.NewMsgSeedLiquidity(
		keepertest.Executor.String(), "ubonk", "ukiln", math.NewInt(1_000_000), math.NewInt(4_500)))
	require.NoError(t, err)
	require.Equal(t, uint64(1), seedResp.PoolId)

	bank.Mint(keepertest.Executor, sdk.NewInt64Coin("ukiln", 1_000))
	buyResp, err := srv.Buy(ctx, types.NewMsgBuy(
		keepertest.Executor.String(), "ubonk", "ukiln", math.NewInt(1_000), keepertest.Trader.String()))
	require.NoError(t, err)
	// default 1% buy fee: net 990, out = floor(990 * 1000000 / 5490) = 180327
	require.Equal(t, math.NewInt(990), buyResp.NetAmountIn)
	require.Equal(t, math.NewInt(180327), buyResp.AmountOut)

	bank.Mint(keepertest.Executor, sdk.NewInt64Coin("ubonk", 50_000))
	sellResp, err := srv.Sell(ctx, types.NewMsgSell(
		keepertest.Executor.String(), "ubonk", "ukiln", math.NewInt(50_000), keepertest.Trader.String()))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000), sellResp.AmountIn)
	require.True(t, sellResp.NetAmountOut.LTE(sellResp.AmountOut))

	gradResp, err := srv.GraduatePool(ctx, types.NewMsgGraduatePool(
		keepertest.Executor.String(), "ubonk", "ukiln"))
	require.NoError(t, err)
	require.True(t, gradResp.AssetMoved.IsPositive())

	realToken, realAsset := k.GetRealReserves(ctx, mustPool(t, k, ctx, 1))
	require.True(t, realToken.IsZero())
	require.True(t, realAsset.IsZero())
}

func TestMsgServer_WithdrawAllowance(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ukiln", 500))
	venue := keepertest.TestAddr("venue")
	require.NoError(t, k.GrantAllowance(ctx, types.RouterAddress().String(), pool.Id, venue, "ukiln", math.NewInt(500)))

	resp, err := srv.WithdrawAllowance(ctx, types.NewMsgWithdrawAllowance(venue.String(), pool.Id, "ukiln"))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), resp.Amount)
	require.Equal(t, math.NewInt(500), bank.GetBalance(ctx, venue, "ukiln").Amount)

	_, err = srv.WithdrawAllowance(ctx, types.NewMsgWithdrawAllowance(venue.String(), pool.Id, "ukiln"))
	require.ErrorIs(t, err, types.ErrAllowanceNotFound)
}

func mustPool(t *testing.T, k keeper.Keeper, ctx sdk.Context, id uint64) types.Pool {
	pool, found := k.GetPool(ctx, id)
	require.True(t, found)
	return pool
}
