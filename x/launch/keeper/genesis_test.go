package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/kiln-chain/kiln/testutil/keeper"
	"github.com/kiln-chain/kiln/x/launch/types"
)

func TestGenesis_ExportImportRoundTrip(t *testing.T) {
	k, _, ctx := keepertest.LaunchKeeper(t)

	require.NoError(t, k.SetDefaultVirtualReserves(ctx, keepertest.Authority, math.NewInt(10), math.NewInt(4500)))
	first, err := k.CreatePool(ctx, keepertest.Creator.String(), "ubonk", "ukiln")
	require.NoError(t, err)
	_, err = k.CreatePool(ctx, keepertest.Creator.String(), "umeme", "ukiln")
	require.NoError(t, err)
	require.NoError(t, k.GrantAllowance(ctx, types.RouterAddress().String(), first.Id, keepertest.Trader, "ukiln", math.NewInt(321)))

	exported := k.ExportGenesis(ctx)
	require.Len(t, exported.Pools, 2)
	require.Len(t, exported.Allowances, 1)
	require.Equal(t, uint64(3), exported.NextPoolId)
	require.NoError(t, exported.Validate())

	// import into a fresh keeper and compare full state
	k2, _, ctx2 := keepertest.LaunchKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reExported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported, reExported)

	// the denom index survives the round trip in both directions
	pool, found := k2.GetPoolByDenoms(ctx2, "ukiln", "ubonk")
	require.True(t, found)
	require.Equal(t, first.Id, pool.Id)
	require.Equal(t, math.NewInt(10), pool.VirtualToken)
	require.Equal(t, math.NewInt(4500), pool.VirtualAsset)

	allowance, found := k2.GetAllowance(ctx2, first.Id, keepertest.Trader.String(), "ukiln")
	require.True(t, found)
	require.Equal(t, math.NewInt(321), allowance.Amount)
}

func TestInitGenesis_RejectsInvalidState(t *testing.T) {
	k, _, ctx := keepertest.LaunchKeeper(t)

	genesis := types.DefaultGenesisState()
	genesis.NextPoolId = 0
	require.Error(t, k.InitGenesis(ctx, *genesis))
}
