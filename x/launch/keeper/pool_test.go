package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/kiln-chain/kiln/testutil/keeper"
	"github.com/kiln-chain/kiln/x/launch/types"
)

var router = types.RouterAddress().String()

func TestGetReserves_VirtualAugmented(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	require.NoError(t, k.SetDefaultVirtualReserves(ctx, keepertest.Authority, math.NewInt(100), math.NewInt(200)))
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")

	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000), sdk.NewInt64Coin("ukiln", 500))

	realToken, realAsset := k.GetRealReserves(ctx, pool)
	require.Equal(t, math.NewInt(1000), realToken)
	require.Equal(t, math.NewInt(500), realAsset)

	effToken, effAsset := k.GetReserves(ctx, pool)
	require.Equal(t, math.NewInt(1100), effToken)
	require.Equal(t, math.NewInt(700), effAsset)
}

func TestQuote_ConcreteScenario(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	require.NoError(t, k.SetDefaultVirtualReserves(ctx, keepertest.Authority, math.NewInt(100), math.NewInt(200)))
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000), sdk.NewInt64Coin("ukiln", 500))

	// selling 100 token into 1100/700 effective reserves
	out, err := k.Quote(ctx, pool, "ubonk", math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(58), out)
}

func TestQuote_Validation(t *testing.T) {
	k, _, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")

	_, err := k.Quote(ctx, pool, "ubonk", math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = k.Quote(ctx, pool, "uforeign", math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestInitializePool(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000))

	require.NoError(t, k.InitializePool(ctx, router, pool.Id))

	stored, found := k.GetPool(ctx, pool.Id)
	require.True(t, found)
	require.True(t, stored.Initialized())
	require.Equal(t, ctx.BlockTime().Unix(), stored.LastUpdated)

	// second initialization always fails
	err := k.InitializePool(ctx, router, pool.Id)
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)
}

func TestInitializePool_EmitsRealReserves(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	require.NoError(t, k.SetDefaultVirtualReserves(ctx, keepertest.Authority, math.NewInt(9999), math.NewInt(9999)))
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000))

	require.NoError(t, k.InitializePool(ctx, router, pool.Id))

	var event *sdk.Event
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == types.EventTypePoolInitialized {
			ev := ev
			event = &ev
		}
	}
	require.NotNil(t, event, "initialization event missing")

	attrs := map[string]string{}
	for _, attr := range event.Attributes {
		attrs[attr.Key] = attr.Value
	}
	// real balances, not the virtual-augmented figures
	require.Equal(t, "1000", attrs[types.AttributeKeyReserveToken])
	require.Equal(t, "0", attrs[types.AttributeKeyReserveAsset])
}

func TestCustodyOps_MoverGated(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000), sdk.NewInt64Coin("ukiln", 1000))
	intruder := keepertest.Trader.String()

	require.ErrorIs(t, k.InitializePool(ctx, intruder, pool.Id), types.ErrUnauthorizedMover)
	require.ErrorIs(t, k.RecordSwap(ctx, intruder, pool.Id, math.OneInt(), math.ZeroInt(), math.ZeroInt(), math.OneInt()), types.ErrUnauthorizedMover)
	require.ErrorIs(t, k.PayToken(ctx, intruder, pool.Id, keepertest.Trader, math.OneInt()), types.ErrUnauthorizedMover)
	require.ErrorIs(t, k.PayAsset(ctx, intruder, pool.Id, keepertest.Trader, math.OneInt()), types.ErrUnauthorizedMover)
	require.ErrorIs(t, k.BurnPoolTokens(ctx, intruder, pool.Id, math.OneInt()), types.ErrUnauthorizedMover)
	require.ErrorIs(t, k.GrantAllowance(ctx, intruder, pool.Id, keepertest.Trader, "ubonk", math.OneInt()), types.ErrUnauthorizedMover)
}

func TestPayOps(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000), sdk.NewInt64Coin("ukiln", 600))

	require.NoError(t, k.PayToken(ctx, router, pool.Id, keepertest.Trader, math.NewInt(400)))
	require.NoError(t, k.PayAsset(ctx, router, pool.Id, keepertest.Trader, math.NewInt(600)))

	require.Equal(t, math.NewInt(400), bank.GetBalance(ctx, keepertest.Trader, "ubonk").Amount)
	require.Equal(t, math.NewInt(600), bank.GetBalance(ctx, keepertest.Trader, "ukiln").Amount)

	// paying more than custody holds fails
	err := k.PayToken(ctx, router, pool.Id, keepertest.Trader, math.NewInt(10_000))
	require.ErrorIs(t, err, types.ErrInsufficientReserves)

	// zero payment amount is rejected
	err = k.PayAsset(ctx, router, pool.Id, keepertest.Trader, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)

	// empty recipient is rejected
	err = k.PayAsset(ctx, router, pool.Id, nil, math.OneInt())
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestBurnPoolTokens(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ubonk", 1000))

	require.NoError(t, k.BurnPoolTokens(ctx, router, pool.Id, math.NewInt(300)))

	remaining, _ := k.GetRealReserves(ctx, pool)
	require.Equal(t, math.NewInt(700), remaining)
	require.Equal(t, math.NewInt(300), bank.Burned.AmountOf("ubonk"))
}

func TestAllowanceLifecycle(t *testing.T) {
	k, bank, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	bank.Mint(types.PoolAddress(pool.Id), sdk.NewInt64Coin("ukiln", 500))
	spender := keepertest.TestAddr("venue")

	// denom must belong to the pair
	err := k.GrantAllowance(ctx, router, pool.Id, spender, "uforeign", math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidInput)

	require.NoError(t, k.GrantAllowance(ctx, router, pool.Id, spender, "ukiln", math.NewInt(200)))

	stored, found := k.GetAllowance(ctx, pool.Id, spender.String(), "ukiln")
	require.True(t, found)
	require.Equal(t, math.NewInt(200), stored.Amount)

	amount, err := k.WithdrawAllowance(ctx, spender, pool.Id, "ukiln")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200), amount)
	require.Equal(t, math.NewInt(200), bank.GetBalance(ctx, spender, "ukiln").Amount)

	// the grant is consumed
	_, found = k.GetAllowance(ctx, pool.Id, spender.String(), "ukiln")
	require.False(t, found)
	_, err = k.WithdrawAllowance(ctx, spender, pool.Id, "ukiln")
	require.ErrorIs(t, err, types.ErrAllowanceNotFound)
}

func TestRecordSwap_StampsAndEmits(t *testing.T) {
	k, _, ctx := keepertest.LaunchKeeper(t)
	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")

	require.NoError(t, k.RecordSwap(ctx, router, pool.Id, math.NewInt(10), math.ZeroInt(), math.ZeroInt(), math.NewInt(5)))

	stored, _ := k.GetPool(ctx, pool.Id)
	require.Equal(t, ctx.BlockTime().Unix(), stored.LastUpdated)

	found := false
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == types.EventTypeSwapRecorded {
			found = true
		}
	}
	require.True(t, found)
}
