package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	launchtypes "github.com/kiln-chain/kiln/x/launch/types"
)

// Gas limits for different operation types to prevent exhaustion attacks
const (
	MaxGasPerPoolCreation uint64 = 300_000
	MaxGasPerSeed         uint64 = 250_000
	MaxGasPerTrade        uint64 = 200_000
	MaxGasPerGraduation   uint64 = 400_000

	// General limits
	MaxGasPerTx      uint64 = 10_000_000
	MaxMessagesPerTx int    = 10
)

// GasLimitDecorator enforces per-transaction message counts and gas bounds.
type GasLimitDecorator struct{}

// NewGasLimitDecorator creates a new GasLimitDecorator
func NewGasLimitDecorator() GasLimitDecorator {
	return GasLimitDecorator{}
}

// AnteHandle enforces gas limits on transactions and individual messages
func (gld GasLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	msgs := tx.GetMsgs()

	if len(msgs) > MaxMessagesPerTx {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction contains too many messages: %d > %d",
			len(msgs), MaxMessagesPerTx,
		)
	}

	if limit := ctx.GasMeter().Limit(); limit > MaxGasPerTx && !simulate {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction gas limit too high: %d > %d",
			limit, MaxGasPerTx,
		)
	}

	// A batch of curve operations must arrive with enough gas for every
	// message it carries, otherwise it is rejected up front instead of
	// failing partway through execution.
	var required uint64
	for _, msg := range msgs {
		required += requiredGasForMessage(msg)
	}
	if limit := ctx.GasMeter().Limit(); !simulate && required > 0 && limit > 0 && limit < required {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"insufficient gas for launch messages: limit %d, need at least %d",
			limit, required,
		)
	}

	return next(ctx, tx, simulate)
}

func requiredGasForMessage(msg sdk.Msg) uint64 {
	switch msg.(type) {
	case *launchtypes.MsgCreatePool:
		return MaxGasPerPoolCreation
	case *launchtypes.MsgSeedLiquidity:
		return MaxGasPerSeed
	case *launchtypes.MsgBuy, *launchtypes.MsgSell:
		return MaxGasPerTrade
	case *launchtypes.MsgGraduatePool:
		return MaxGasPerGraduation
	default:
		return 0
	}
}
