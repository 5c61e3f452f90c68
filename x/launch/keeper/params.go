package keeper

import (
	"context"
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kiln-chain/kiln/x/launch/types"
)

// GetParams returns the current module params, falling back to defaults if
// no params record has been written yet.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	params, err := types.UnmarshalParams(bz)
	if err != nil {
		panic(err)
	}
	return params
}

// SetParams validates and writes the full parameter set.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, params.MustMarshal())
	return nil
}

func (k Keeper) assertAuthority(authority string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}
	return nil
}

// SetDefaultVirtualReserves updates the virtual cushions snapshotted onto
// pools created from now on. Existing pools are unaffected.
func (k Keeper) SetDefaultVirtualReserves(ctx context.Context, authority string, virtualToken, virtualAsset sdkmath.Int) error {
	if err := k.assertAuthority(authority); err != nil {
		return err
	}
	if virtualToken.IsNil() || virtualToken.IsNegative() {
		return types.ErrInvalidInput.Wrap("virtual token reserve must be non-negative")
	}
	if virtualAsset.IsNil() || virtualAsset.IsNegative() {
		return types.ErrInvalidInput.Wrap("virtual asset reserve must be non-negative")
	}

	params := k.GetParams(ctx)
	params.DefaultVirtualToken = virtualToken
	params.DefaultVirtualAsset = virtualAsset
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVirtualReservesUpdated,
			sdk.NewAttribute(types.AttributeKeyVirtualToken, virtualToken.String()),
			sdk.NewAttribute(types.AttributeKeyVirtualAsset, virtualAsset.String()),
		),
	)
	return nil
}

// SetFeeParams updates the fee vault and fee percentages. The candidate
// values are validated before anything is written.
func (k Keeper) SetFeeParams(ctx context.Context, authority, feeVault string, buyFeePct, sellFeePct uint64) error {
	if err := k.assertAuthority(authority); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(feeVault); err != nil {
		return types.ErrInvalidAddress.Wrapf("fee vault: %v", err)
	}
	if buyFeePct > types.MaxFeePct {
		return types.ErrInvalidFee.Wrapf("buy fee %d%% exceeds %d%%", buyFeePct, types.MaxFeePct)
	}
	if sellFeePct > types.MaxFeePct {
		return types.ErrInvalidFee.Wrapf("sell fee %d%% exceeds %d%%", sellFeePct, types.MaxFeePct)
	}

	params := k.GetParams(ctx)
	params.FeeVault = feeVault
	params.BuyFeePct = buyFeePct
	params.SellFeePct = sellFeePct
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyFeeVault, feeVault),
			sdk.NewAttribute(types.AttributeKeyBuyFeePct, strconv.FormatUint(buyFeePct, 10)),
			sdk.NewAttribute(types.AttributeKeySellFeePct, strconv.FormatUint(sellFeePct, 10)),
		),
	)
	return nil
}

// SetAuthorizedRouter rotates the single account allowed to command pool
// custody. Pools read the router live, so every existing pool follows the
// rotation immediately.
func (k Keeper) SetAuthorizedRouter(ctx context.Context, authority, router string) error {
	if err := k.assertAuthority(authority); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(router); err != nil {
		return types.ErrInvalidAddress.Wrapf("router: %v", err)
	}

	params := k.GetParams(ctx)
	params.AuthorizedRouter = router
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRouterUpdated,
			sdk.NewAttribute(types.AttributeKeyRouter, router),
		),
	)
	return nil
}

// SetAuthorities rotates the pool creator and executor capability holders.
func (k Keeper) SetAuthorities(ctx context.Context, authority, poolCreator, executor string) error {
	if err := k.assertAuthority(authority); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(poolCreator); err != nil {
		return types.ErrInvalidAddress.Wrapf("pool creator: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(executor); err != nil {
		return types.ErrInvalidAddress.Wrapf("executor: %v", err)
	}

	params := k.GetParams(ctx)
	params.PoolCreator = poolCreator
	params.Executor = executor
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAuthoritiesUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolCreator, poolCreator),
			sdk.NewAttribute(types.AttributeKeyExecutor, executor),
		),
	)
	return nil
}
