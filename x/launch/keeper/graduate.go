package keeper

import (
	"context"
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kiln-chain/kiln/x/launch/types"
)

// GraduatePool drains a pool for migration to an external venue. The
// executor receives the full real asset balance plus the token amount that
// reproduces the pool's last spot price on a venue with no virtual cushion:
//
//	targetToken = floor(A * (T + vT) / (A + vA))
//
// The surplus tokens are burned so no latent sell pressure carries over.
// The pool record survives with near-zero custody; pools are never deleted.
func (k Keeper) GraduatePool(ctx context.Context, executor sdk.AccAddress, tokenDenom, assetDenom string) (tokensMoved, assetMoved, tokensBurned sdkmath.Int, err error) {
	if err := k.assertExecutor(ctx, executor.String()); err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}
	pool, err := k.mustGetPoolByDenoms(ctx, tokenDenom, assetDenom)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}

	err = k.WithReentrancyGuard(ctx, pool.Id, "graduate", func() error {
		realToken, realAsset := k.GetRealReserves(ctx, pool)

		effToken, aerr := SafeAdd(realToken, pool.VirtualToken)
		if aerr != nil {
			return aerr
		}
		effAsset, aerr := SafeAdd(realAsset, pool.VirtualAsset)
		if aerr != nil {
			return aerr
		}
		if effAsset.IsZero() {
			return types.ErrArithmetic.Wrapf("pool %d has no effective asset reserve", pool.Id)
		}

		targetToken, merr := SafeMulDiv(realAsset, effToken, effAsset)
		if merr != nil {
			return merr
		}

		// Skewed virtual cushions can push the price-preserving target
		// above the real holdings; that is reported, never wrapped.
		burn, serr := SafeSub(realToken, targetToken)
		if serr != nil {
			return types.ErrArithmetic.Wrapf("graduation target %s exceeds real token balance %s", targetToken, realToken)
		}

		router := types.RouterAddress().String()
		if realAsset.IsPositive() {
			if err := k.PayAsset(ctx, router, pool.Id, executor, realAsset); err != nil {
				return err
			}
		}
		if targetToken.IsPositive() {
			if err := k.PayToken(ctx, router, pool.Id, executor, targetToken); err != nil {
				return err
			}
		}
		if burn.IsPositive() {
			if err := k.BurnPoolTokens(ctx, router, pool.Id, burn); err != nil {
				return err
			}
		}

		tokensMoved, assetMoved, tokensBurned = targetToken, realAsset, burn

		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePoolGraduated,
				sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(pool.Id, 10)),
				sdk.NewAttribute(types.AttributeKeyTokensMoved, targetToken.String()),
				sdk.NewAttribute(types.AttributeKeyAssetMoved, realAsset.String()),
				sdk.NewAttribute(types.AttributeKeyTokensBurned, burn.String()),
				sdk.NewAttribute(types.AttributeKeyRecipient, executor.String()),
			),
		)
		return nil
	})
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}

	recordGraduation()
	k.Logger(ctx).Info("pool graduated",
		"pool", pool.Id, "tokens_moved", tokensMoved.String(), "asset_moved", assetMoved.String(), "tokens_burned", tokensBurned.String())
	return tokensMoved, assetMoved, tokensBurned, nil
}
