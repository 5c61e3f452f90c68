package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/kiln-chain/kiln/x/launch/keeper"
	"github.com/kiln-chain/kiln/x/launch/types"
)

// TestAddr derives a deterministic valid bech32 address from a seed string.
func TestAddr(seed string) sdk.AccAddress {
	return sdk.AccAddress([]byte(fmt.Sprintf("%-20s", seed)))
}

// Well-known test identities.
var (
	Authority = authtypes.NewModuleAddress("gov").String()
	Creator   = TestAddr("creator")
	Executor  = TestAddr("executor")
	FeeVault  = TestAddr("fee_vault")
	Trader    = TestAddr("trader")
)

var _ types.BankKeeper = (*MockBankKeeper)(nil)

// MockBankKeeper is an in-memory token ledger implementing types.BankKeeper.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	// Burned accumulates everything destroyed through BurnCoins.
	Burned sdk.Coins
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// Mint credits an account out of thin air, for test setup. Coins may arrive
// in any denom order; Coins.Add requires sorted input, so normalize first.
func (m *MockBankKeeper) Mint(addr sdk.AccAddress, coins ...sdk.Coin) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(sdk.NewCoins(coins...)...)
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	remaining, negative := m.balances[fromAddr.String()].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromAddr, m.balances[fromAddr.String()], amt)
	}
	m.balances[fromAddr.String()] = remaining
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	moduleAddr := authtypes.NewModuleAddress(moduleName)
	remaining, negative := m.balances[moduleAddr.String()].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient module balance to burn %s", amt)
	}
	m.balances[moduleAddr.String()] = remaining
	m.Burned = m.Burned.Add(amt...)
	return nil
}

// LaunchKeeper creates a test keeper backed by an in-memory store and mock
// bank ledger. Genesis is initialized with fully wired test params.
func LaunchKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(storeKey, bank, Authority)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0))

	genesis := types.DefaultGenesisState()
	genesis.Params = DefaultTestParams()
	require.NoError(t, k.InitGenesis(ctx, *genesis))

	return *k, bank, ctx
}

// DefaultTestParams returns params with every capability holder configured:
// the module's own router address as authorized mover, plus the well-known
// creator, executor and vault identities.
func DefaultTestParams() types.Params {
	params := types.DefaultParams()
	params.AuthorizedRouter = types.RouterAddress().String()
	params.PoolCreator = Creator.String()
	params.Executor = Executor.String()
	params.FeeVault = FeeVault.String()
	return params
}

// CreateTestPool registers a pool for the pair and returns it.
func CreateTestPool(t testing.TB, k keeper.Keeper, ctx sdk.Context, tokenDenom, assetDenom string) types.Pool {
	pool, err := k.CreatePool(ctx, Creator.String(), tokenDenom, assetDenom)
	require.NoError(t, err)
	return pool
}

// SeedTestPool funds the executor, seeds the pool and activates it.
func SeedTestPool(t testing.TB, k keeper.Keeper, bank *MockBankKeeper, ctx sdk.Context, pool types.Pool, tokenAmount, assetAmount int64) {
	bank.Mint(Executor, sdk.NewInt64Coin(pool.TokenDenom, tokenAmount))
	if assetAmount > 0 {
		bank.Mint(Executor, sdk.NewInt64Coin(pool.AssetDenom, assetAmount))
	}
	_, err := k.SeedLiquidity(ctx, Executor, pool.TokenDenom, pool.AssetDenom,
		sdkmath.NewInt(tokenAmount), sdkmath.NewInt(assetAmount))
	require.NoError(t, err)
}
