package ante_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	protov2 "google.golang.org/protobuf/proto"

	"github.com/kiln-chain/kiln/app/ante"
	keepertest "github.com/kiln-chain/kiln/testutil/keeper"
	launchtypes "github.com/kiln-chain/kiln/x/launch/types"
)

// mockTx is a minimal sdk.Tx carrying plain messages and a memo.
type mockTx struct {
	msgs []sdk.Msg
	memo string
}

func (t mockTx) GetMsgs() []sdk.Msg { return t.msgs }

func (t mockTx) GetMsgsV2() ([]protov2.Message, error) { return nil, nil }

func (t mockTx) GetMemo() string { return t.memo }

func passThrough(ctx sdk.Context, _ sdk.Tx, _ bool) (sdk.Context, error) {
	return ctx, nil
}

func TestMemoLimitDecorator(t *testing.T) {
	_, _, ctx := keepertest.LaunchKeeper(t)
	d := ante.NewMemoLimitDecorator(16)

	_, err := d.AnteHandle(ctx, mockTx{memo: "short"}, false, passThrough)
	require.NoError(t, err)

	_, err = d.AnteHandle(ctx, mockTx{memo: strings.Repeat("x", 17)}, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "memo too large")

	_, err = d.AnteHandle(ctx, mockTx{memo: string([]byte{0xff, 0xfe})}, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not valid UTF-8")
}

func TestGasLimitDecorator_MessageCount(t *testing.T) {
	_, _, ctx := keepertest.LaunchKeeper(t)
	d := ante.NewGasLimitDecorator()

	msgs := make([]sdk.Msg, ante.MaxMessagesPerTx+1)
	for i := range msgs {
		msgs[i] = &launchtypes.MsgBuy{}
	}

	_, err := d.AnteHandle(ctx, mockTx{msgs: msgs}, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "too many messages")
}

func TestGasLimitDecorator_RequiresTradeGas(t *testing.T) {
	_, _, ctx := keepertest.LaunchKeeper(t)
	d := ante.NewGasLimitDecorator()

	buy := launchtypes.NewMsgBuy(
		keepertest.Executor.String(), "ubonk", "ukiln",
		math.NewInt(1000), keepertest.Trader.String(),
	)

	// Gas budget below the trade reservation is rejected up front.
	lowGasCtx := ctx.WithGasMeter(storetypes.NewGasMeter(ante.MaxGasPerTrade - 1))
	_, err := d.AnteHandle(lowGasCtx, mockTx{msgs: []sdk.Msg{buy}}, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient gas")

	okCtx := ctx.WithGasMeter(storetypes.NewGasMeter(ante.MaxGasPerTrade))
	_, err = d.AnteHandle(okCtx, mockTx{msgs: []sdk.Msg{buy}}, false, passThrough)
	require.NoError(t, err)
}

func TestLaunchDecorator(t *testing.T) {
	k, _, ctx := keepertest.LaunchKeeper(t)
	d := ante.NewLaunchDecorator(k)

	pool := keepertest.CreateTestPool(t, k, ctx, "ubonk", "ukiln")
	require.Equal(t, uint64(1), pool.Id)

	// Recreating a registered pair is rejected before execution.
	dup := launchtypes.NewMsgCreatePool(keepertest.Creator.String(), "ubonk", "ukiln")
	_, err := d.AnteHandle(ctx, mockTx{msgs: []sdk.Msg{dup}}, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	// Trades against an unregistered pair never reach the message server.
	miss := launchtypes.NewMsgBuy(keepertest.Executor.String(), "unone", "ukiln", math.NewInt(10), keepertest.Trader.String())
	_, err = d.AnteHandle(ctx, mockTx{msgs: []sdk.Msg{miss}}, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")

	// A well-formed trade against a registered pool passes through.
	buy := launchtypes.NewMsgBuy(keepertest.Executor.String(), "ubonk", "ukiln", math.NewInt(10), keepertest.Trader.String())
	_, err = d.AnteHandle(ctx, mockTx{msgs: []sdk.Msg{buy}}, false, passThrough)
	require.NoError(t, err)

	// Simulation skips launch screening entirely.
	_, err = d.AnteHandle(ctx, mockTx{msgs: []sdk.Msg{miss}}, true, passThrough)
	require.NoError(t, err)
}
