package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/kiln-chain/kiln/testutil/keeper"
	"github.com/kiln-chain/kiln/x/launch/types"
)

func TestGraduatePool_ConcreteScenario(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	require.NoError(t, k.SetDefaultVirtualReserves(ctx, keepertest.Authority, math.ZeroInt(), math.NewInt(4500)))
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")

	// vT=0, vA=4500, real T=1_000_000, real A=9_001
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1_000_000), sdk.NewInt64Coin("ukiln", 9_001))

	tokensMoved, assetMoved, tokensBurned, err := k.GraduatePool(ctx, keepertest.Executor, "ubonk", "ukiln")
	require.NoError(t, err)

	// targetToken = floor(9001 * 1000000 / 13501) = 666691
	require.Equal(t, math.NewInt(666691), tokensMoved)
	require.Equal(t, math.NewInt(9001), assetMoved)
	require.Equal(t, math.NewInt(333309), tokensBurned)

	// the executor received the full asset custody plus the target tokens
	require.Equal(t, math.NewInt(9001), bank.GetBalance(ctx, keepertest.Executor, "ukiln").Amount)
	require.Equal(t, math.NewInt(666691), bank.GetBalance(ctx, keepertest.Executor, "ubonk").Amount)

	// the surplus was destroyed
	require.Equal(t, math.NewInt(333309), bank.Burned.AmountOf("ubonk"))

	// real custody is exactly zero afterward; the record persists
	realToken, realAsset := k.GetRealReserves(ctx, pool)
	require.True(t, realToken.IsZero())
	require.True(t, realAsset.IsZero())
	_, found := k.GetPool(ctx, pool.Id)
	require.True(t, found)
}

func TestGraduatePool_PriceContinuity(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	require.NoError(t, k.SetDefaultVirtualReserves(ctx, keepertest.Authority, math.NewInt(2_000), math.NewInt(30_000)))
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 5_000_000), sdk.NewInt64Coin("ukiln", 120_000))

	tokensMoved, assetMoved, _, err := k.GraduatePool(ctx, keepertest.Executor, "ubonk", "ukiln")
	require.NoError(t, err)

	// targetToken/A must equal (T+vT)/(A+vA) within integer rounding:
	// |targetToken * (A+vA) - A * (T+vT)| < A+vA
	lhs := tokensMoved.Mul(math.NewInt(120_000 + 30_000))
	rhs := assetMoved.Mul(math.NewInt(5_000_000 + 2_000))
	diff := lhs.Sub(rhs).Abs()
	require.True(t, diff.LT(math.NewInt(120_000+30_000)), "graduation must preserve the spot price")
}

func TestGraduatePool_ZeroEffectiveAsset(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1_000_000))

	// no real asset and no virtual cushion: the target is undefined
	_, _, _, err := k.GraduatePool(ctx, keepertest.Executor, "ubonk", "ukiln")
	require.ErrorIs(t, err, types.ErrArithmetic)
}

func TestGraduatePool_TargetExceedsHoldings(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	// a huge virtual token cushion pushes the price-preserving target above
	// the real holdings
	require.NoError(t, k.SetDefaultVirtualReserves(ctx, keepertest.Authority, math.NewInt(10_000_000), math.ZeroInt()))
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1_000), sdk.NewInt64Coin("ukiln", 9_000))

	_, _, _, err := k.GraduatePool(ctx, keepertest.Executor, "ubonk", "ukiln")
	require.ErrorIs(t, err, types.ErrArithmetic)

	// nothing moved
	realToken, realAsset := k.GetRealReserves(ctx, pool)
	require.Equal(t, math.NewInt(1_000), realToken)
	require.Equal(t, math.NewInt(9_000), realAsset)
}

func TestGraduatePool_ExecutorGated(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000), sdk.NewInt64Coin("ukiln", 1000))

	_, _, _, err := k.GraduatePool(ctx, keepertest.Trader, "ubonk", "ukiln")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, _, _, err = k.GraduatePool(ctx, keepertest.Executor, "unknown", "ukiln")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestGraduatePool_EmitsEvent(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 10_000), sdk.NewInt64Coin("ukiln", 5_000))

	_, _, _, err := k.GraduatePool(ctx, keepertest.Executor, "ubonk", "ukiln")
	require.NoError(t, err)

	found := false
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == types.EventTypePoolGraduated {
			found = true
		}
	}
	require.True(t, found)
}
