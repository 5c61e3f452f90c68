package ante

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	launchkeeper "github.com/kiln-chain/kiln/x/launch/keeper"
	launchtypes "github.com/kiln-chain/kiln/x/launch/types"
)

// Validation gas charged per launch message during the ante pass.
const launchValidationGas = 10_000

// LaunchDecorator validates launch module-specific transaction requirements
// before execution: the referenced pool must exist for trades and
// graduations, and pool creation must name a usable pair.
type LaunchDecorator struct {
	keeper launchkeeper.Keeper
}

// NewLaunchDecorator creates a new LaunchDecorator
func NewLaunchDecorator(keeper launchkeeper.Keeper) LaunchDecorator {
	return LaunchDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (ld LaunchDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case *launchtypes.MsgCreatePool:
			if err := ld.validateCreatePool(ctx, msg); err != nil {
				return ctx, err
			}
		case *launchtypes.MsgSeedLiquidity:
			if err := ld.validatePair(ctx, msg.TokenDenom, msg.AssetDenom); err != nil {
				return ctx, err
			}
		case *launchtypes.MsgBuy:
			if err := ld.validateTrade(ctx, msg.TokenDenom, msg.AssetDenom, msg.AmountIn); err != nil {
				return ctx, err
			}
		case *launchtypes.MsgSell:
			if err := ld.validateTrade(ctx, msg.TokenDenom, msg.AssetDenom, msg.AmountIn); err != nil {
				return ctx, err
			}
		case *launchtypes.MsgGraduatePool:
			if err := ld.validatePair(ctx, msg.TokenDenom, msg.AssetDenom); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateCreatePool rejects pairs that could never be registered.
func (ld LaunchDecorator) validateCreatePool(ctx sdk.Context, msg *launchtypes.MsgCreatePool) error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(launchValidationGas, "pool creation validation")

	if msg.TokenDenom == "" || msg.AssetDenom == "" {
		return sdkerrors.ErrInvalidRequest.Wrap("denominations cannot be empty")
	}

	if msg.TokenDenom == msg.AssetDenom {
		return sdkerrors.ErrInvalidRequest.Wrap("pool denominations must differ")
	}

	if _, found := ld.keeper.GetPoolByDenoms(ctx, msg.TokenDenom, msg.AssetDenom); found {
		return sdkerrors.ErrInvalidRequest.Wrapf("pool for pair %s/%s already exists", msg.TokenDenom, msg.AssetDenom)
	}

	return nil
}

// validatePair requires a registered pool for the named pair.
func (ld LaunchDecorator) validatePair(ctx sdk.Context, tokenDenom, assetDenom string) error {
	ctx.GasMeter().ConsumeGas(launchValidationGas, "pool lookup validation")

	if _, found := ld.keeper.GetPoolByDenoms(ctx, tokenDenom, assetDenom); !found {
		return sdkerrors.ErrNotFound.Wrapf("pool for pair %s/%s not found", tokenDenom, assetDenom)
	}

	return nil
}

// validateTrade requires a registered pool and a positive input amount.
func (ld LaunchDecorator) validateTrade(ctx sdk.Context, tokenDenom, assetDenom string, amountIn math.Int) error {
	if err := ld.validatePair(ctx, tokenDenom, assetDenom); err != nil {
		return err
	}

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return sdkerrors.ErrInvalidRequest.Wrap("trade amount must be positive")
	}

	return nil
}
