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

func TestQueryServer_ParamsAndPools(t *testing.T) {
	k, _, ctx := keepertest.LaunchKeeper(t)
	q := keeper.NewQueryServerImpl(k)

	paramsResp, err := q.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, keepertest.DefaultTestParams(), paramsResp.Params)

	created := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")

	poolResp, err := q.Pool(ctx, &types.QueryPoolRequest{PoolId: created.Id})
	require.NoError(t, err)
	require.Equal(t, created, poolResp.Pool)

	_, err = q.Pool(ctx, &types.QueryPoolRequest{PoolId: 99})
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	byDenoms, err := q.PoolByDenoms(ctx, &types.QueryPoolByDenomsRequest{DenomA: "ukiln", DenomB: "ubonk"})
	require.NoError(t, err)
	require.Equal(t, created.Id, byDenoms.Pool.Id)

	poolsResp, err := q.Pools(ctx, &types.QueryPoolsRequest{})
	require.NoError(t, err)
	require.Len(t, poolsResp.Pools, 1)
}

func TestQueryServer_ReservesAndQuote(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	q := keeper.NewQueryServerImpl(k)

	require.NoError(t, k.SetDefaultVirtualReserves(ctx, keepertest.Authority, math.NewInt(100), math.NewInt(200)))
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000), sdk.NewInt64Coin("ukiln", 500))

	reserves, err := q.Reserves(ctx, &types.QueryReservesRequest{PoolId: pool.Id})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), reserves.ReserveToken)
	require.Equal(t, math.NewInt(500), reserves.ReserveAsset)
	require.Equal(t, math.NewInt(1100), reserves.EffectiveToken)
	require.Equal(t, math.NewInt(700), reserves.EffectiveAsset)

	quote, err := q.Quote(ctx, &types.QueryQuoteRequest{DenomIn: "ubonk", DenomOut: "ukiln", AmountIn: math.NewInt(100)})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(58), quote.AmountOut)

	_, err = q.Quote(ctx, &types.QueryQuoteRequest{DenomIn: "ubonk", DenomOut: "ubonk", AmountIn: math.NewInt(100)})
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}
