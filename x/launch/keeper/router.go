package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kiln-chain/kiln/x/launch/types"
)

// Trade protocols. The keeper acts as the router account when commanding
// pool custody, so these entry points only succeed while the module's own
// router address is the configured authorized mover.

func (k Keeper) assertExecutor(ctx context.Context, executor string) error {
	configured := k.GetParams(ctx).Executor
	if configured == "" || executor != configured {
		return types.ErrUnauthorized.Wrapf("%s may not execute trades", executor)
	}
	return nil
}

func (k Keeper) mustGetPoolByDenoms(ctx context.Context, tokenDenom, assetDenom string) (types.Pool, error) {
	if tokenDenom == "" || assetDenom == "" {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrap("denoms cannot be empty")
	}
	if tokenDenom == assetDenom {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrapf("identical denoms %s", tokenDenom)
	}
	pool, found := k.GetPoolByDenoms(ctx, tokenDenom, assetDenom)
	if !found {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pair %s/%s", tokenDenom, assetDenom)
	}
	return pool, nil
}

// QuotePair resolves the pool for a pair and prices a swap without touching
// any state.
func (k Keeper) QuotePair(ctx context.Context, denomIn, denomOut string, amountIn sdkmath.Int) (sdkmath.Int, error) {
	pool, err := k.mustGetPoolByDenoms(ctx, denomIn, denomOut)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return k.Quote(ctx, pool, denomIn, amountIn)
}

// SeedLiquidity pulls the initial reserves from the executor straight into
// pool custody and activates the pool. The seed ratio is not validated; the
// executor owns that decision together with the baked-in virtual cushions.
func (k Keeper) SeedLiquidity(ctx context.Context, executor sdk.AccAddress, tokenDenom, assetDenom string, amountToken, amountAsset sdkmath.Int) (types.Pool, error) {
	if err := k.assertExecutor(ctx, executor.String()); err != nil {
		return types.Pool{}, err
	}
	if amountToken.IsNil() || !amountToken.IsPositive() {
		return types.Pool{}, types.ErrZeroAmount.Wrap("token seed amount must be positive")
	}
	// A zero asset seed is valid: the virtual asset cushion alone can carry
	// the opening price.
	if amountAsset.IsNil() || amountAsset.IsNegative() {
		return types.Pool{}, types.ErrInvalidInput.Wrap("asset seed amount must be non-negative")
	}
	pool, err := k.mustGetPoolByDenoms(ctx, tokenDenom, assetDenom)
	if err != nil {
		return types.Pool{}, err
	}

	seed := sdk.NewCoins(
		sdk.NewCoin(pool.TokenDenom, amountToken),
		sdk.NewCoin(pool.AssetDenom, amountAsset),
	)
	if err := k.bankKeeper.SendCoins(ctx, executor, types.PoolAddress(pool.Id), seed); err != nil {
		return types.Pool{}, types.ErrInsufficientReserves.Wrapf("seed transfer: %v", err)
	}

	if err := k.InitializePool(ctx, types.RouterAddress().String(), pool.Id); err != nil {
		return types.Pool{}, err
	}

	pool, _ = k.GetPool(ctx, pool.Id)
	return pool, nil
}

// Buy swaps asset for token. The fee comes off the input before quoting:
// the full input is pulled from the executor once, the fee is routed to the
// vault and only the net amount enters the curve.
func (k Keeper) Buy(ctx context.Context, executor sdk.AccAddress, amountIn sdkmath.Int, tokenDenom, assetDenom string, to sdk.AccAddress) (netIn, amountOut sdkmath.Int, err error) {
	if err := k.assertExecutor(ctx, executor.String()); err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrZeroAmount.Wrap("buy amount must be positive")
	}
	if to.Empty() {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrInvalidAddress.Wrap("buy recipient cannot be empty")
	}
	pool, err := k.mustGetPoolByDenoms(ctx, tokenDenom, assetDenom)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}

	err = k.WithReentrancyGuard(ctx, pool.Id, "buy", func() error {
		params := k.GetParams(ctx)
		fee, ferr := FeeAmount(amountIn, params.BuyFeePct)
		if ferr != nil {
			return ferr
		}
		if fee.IsPositive() && params.FeeVault == "" {
			return types.ErrFeeVaultNotSet.Wrap("cannot collect buy fee")
		}

		netIn = amountIn.Sub(fee)

		// Quote before any funds land in custody: the curve's
		// reserveIn + amountIn term already accounts for the incoming net.
		out, qerr := k.Quote(ctx, pool, pool.AssetDenom, netIn)
		if qerr != nil {
			return qerr
		}
		amountOut = out

		router := types.RouterAddress()
		if err := k.bankKeeper.SendCoins(ctx, executor, router, sdk.NewCoins(sdk.NewCoin(pool.AssetDenom, amountIn))); err != nil {
			return types.ErrInsufficientReserves.Wrapf("buy input transfer: %v", err)
		}
		if fee.IsPositive() {
			vault := sdk.MustAccAddressFromBech32(params.FeeVault)
			if err := k.bankKeeper.SendCoins(ctx, router, vault, sdk.NewCoins(sdk.NewCoin(pool.AssetDenom, fee))); err != nil {
				return types.ErrInvalidState.Wrapf("buy fee routing: %v", err)
			}
		}
		if err := k.bankKeeper.SendCoins(ctx, router, types.PoolAddress(pool.Id), sdk.NewCoins(sdk.NewCoin(pool.AssetDenom, netIn))); err != nil {
			return types.ErrInvalidState.Wrapf("buy net transfer: %v", err)
		}

		if err := k.PayToken(ctx, router.String(), pool.Id, to, amountOut); err != nil {
			return err
		}
		return k.RecordSwap(ctx, router.String(), pool.Id, sdkmath.ZeroInt(), amountOut, netIn, sdkmath.ZeroInt())
	})
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}

	recordTrade("buy")
	k.Logger(ctx).Info("buy executed",
		"pool", pool.Id, "amount_in", amountIn.String(), "net_in", netIn.String(), "amount_out", amountOut.String())
	return netIn, amountOut, nil
}

// Sell swaps token for asset. The quote runs before the input is pulled,
// and the fee comes off the quoted output.
func (k Keeper) Sell(ctx context.Context, executor sdk.AccAddress, amountIn sdkmath.Int, tokenDenom, assetDenom string, to sdk.AccAddress) (in, amountOut, netOut sdkmath.Int, err error) {
	if err := k.assertExecutor(ctx, executor.String()); err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, types.ErrZeroAmount.Wrap("sell amount must be positive")
	}
	if to.Empty() {
		return sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, types.ErrInvalidAddress.Wrap("sell recipient cannot be empty")
	}
	pool, err := k.mustGetPoolByDenoms(ctx, tokenDenom, assetDenom)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}

	err = k.WithReentrancyGuard(ctx, pool.Id, "sell", func() error {
		params := k.GetParams(ctx)

		// Quote strictly before the input lands in custody.
		out, qerr := k.Quote(ctx, pool, pool.TokenDenom, amountIn)
		if qerr != nil {
			return qerr
		}
		amountOut = out

		fee, ferr := FeeAmount(amountOut, params.SellFeePct)
		if ferr != nil {
			return ferr
		}
		if fee.IsPositive() && params.FeeVault == "" {
			return types.ErrFeeVaultNotSet.Wrap("cannot collect sell fee")
		}
		netOut = amountOut.Sub(fee)

		if err := k.bankKeeper.SendCoins(ctx, executor, types.PoolAddress(pool.Id), sdk.NewCoins(sdk.NewCoin(pool.TokenDenom, amountIn))); err != nil {
			return types.ErrInsufficientReserves.Wrapf("sell input transfer: %v", err)
		}

		router := types.RouterAddress().String()
		if netOut.IsPositive() {
			if err := k.PayAsset(ctx, router, pool.Id, to, netOut); err != nil {
				return err
			}
		}
		if fee.IsPositive() {
			vault := sdk.MustAccAddressFromBech32(params.FeeVault)
			if err := k.PayAsset(ctx, router, pool.Id, vault, fee); err != nil {
				return err
			}
		}
		return k.RecordSwap(ctx, router, pool.Id, amountIn, sdkmath.ZeroInt(), sdkmath.ZeroInt(), amountOut)
	})
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}

	recordTrade("sell")
	k.Logger(ctx).Info("sell executed",
		"pool", pool.Id, "amount_in", amountIn.String(), "amount_out", amountOut.String(), "net_out", netOut.String())
	return amountIn, amountOut, netOut, nil
}
