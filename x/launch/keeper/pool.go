package keeper

import (
	"context"
	"strconv"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kiln-chain/kiln/x/launch/types"
)

// Custody and accounting operations. Every state-changing operation here
// verifies the mover against the live authorized router before touching the
// pool, mirroring the single-mover custody model.

// assertAuthorizedMover checks the mover against the current router param.
func (k Keeper) assertAuthorizedMover(ctx context.Context, mover string) error {
	router := k.GetParams(ctx).AuthorizedRouter
	if router == "" {
		return types.ErrRouterNotSet.Wrap("no authorized router configured")
	}
	if mover != router {
		return types.ErrUnauthorizedMover.Wrapf("%s is not the authorized router", mover)
	}
	return nil
}

// GetRealReserves returns the pool's live custody balances with no virtual
// augmentation. Always re-read from the bank ledger, never cached.
func (k Keeper) GetRealReserves(ctx context.Context, pool types.Pool) (token, asset sdkmath.Int) {
	addr := types.PoolAddress(pool.Id)
	token = k.bankKeeper.GetBalance(ctx, addr, pool.TokenDenom).Amount
	asset = k.bankKeeper.GetBalance(ctx, addr, pool.AssetDenom).Amount
	return token, asset
}

// GetReserves returns the virtual-augmented reserves the curve prices
// against. Each side is always at least its virtual cushion.
func (k Keeper) GetReserves(ctx context.Context, pool types.Pool) (reserveToken, reserveAsset sdkmath.Int) {
	realToken, realAsset := k.GetRealReserves(ctx, pool)
	return realToken.Add(pool.VirtualToken), realAsset.Add(pool.VirtualAsset)
}

// Quote prices a swap of amountIn of denomIn against the pool's current
// effective reserves.
func (k Keeper) Quote(ctx context.Context, pool types.Pool, denomIn string, amountIn sdkmath.Int) (sdkmath.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return sdkmath.Int{}, types.ErrZeroAmount.Wrap("quote requires positive input amount")
	}

	realToken, realAsset := k.GetRealReserves(ctx, pool)
	switch denomIn {
	case pool.TokenDenom:
		return types.QuoteOutput(amountIn, realToken, realAsset, pool.VirtualToken, pool.VirtualAsset)
	case pool.AssetDenom:
		return types.QuoteOutput(amountIn, realAsset, realToken, pool.VirtualAsset, pool.VirtualToken)
	default:
		return sdkmath.Int{}, types.ErrInvalidInput.Wrapf("denom %s is not part of pair %s/%s", denomIn, pool.TokenDenom, pool.AssetDenom)
	}
}

// InitializePool activates a pool for trading. Funds must already sit at the
// custody address; no transfers happen here. The emitted record carries the
// real balances so external tooling sees actual holdings, not the
// virtual-augmented figures.
func (k Keeper) InitializePool(ctx context.Context, mover string, poolID uint64) error {
	if err := k.assertAuthorizedMover(ctx, mover); err != nil {
		return err
	}
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if pool.Initialized() {
		return types.ErrAlreadyInitialized.Wrapf("pool %d initialized at %d", poolID, pool.LastUpdated)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	realToken, realAsset := k.GetRealReserves(ctx, pool)

	pool.LastUpdated = sdkCtx.BlockTime().Unix()
	k.setPool(ctx, pool)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolInitialized,
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute(types.AttributeKeyReserveToken, realToken.String()),
			sdk.NewAttribute(types.AttributeKeyReserveAsset, realAsset.String()),
		),
	)
	return nil
}

// RecordSwap stamps the pool and emits a bookkeeping record. It performs no
// transfers and no invariant check; the mover has already completed the real
// movements and vouches for the reported figures.
func (k Keeper) RecordSwap(ctx context.Context, mover string, poolID uint64, in0, out0, in1, out1 sdkmath.Int) error {
	if err := k.assertAuthorizedMover(ctx, mover); err != nil {
		return err
	}
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool.LastUpdated = sdkCtx.BlockTime().Unix()
	k.setPool(ctx, pool)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapRecorded,
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute(types.AttributeKeyAmountIn0, in0.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut0, out0.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn1, in1.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut1, out1.String()),
		),
	)
	return nil
}

// PayToken pays amount of the pool's bonding token from custody to the
// recipient.
func (k Keeper) PayToken(ctx context.Context, mover string, poolID uint64, to sdk.AccAddress, amount sdkmath.Int) error {
	return k.payFromCustody(ctx, mover, poolID, to, amount, func(pool types.Pool) string { return pool.TokenDenom })
}

// PayAsset pays amount of the pool's reserve asset from custody to the
// recipient.
func (k Keeper) PayAsset(ctx context.Context, mover string, poolID uint64, to sdk.AccAddress, amount sdkmath.Int) error {
	return k.payFromCustody(ctx, mover, poolID, to, amount, func(pool types.Pool) string { return pool.AssetDenom })
}

func (k Keeper) payFromCustody(ctx context.Context, mover string, poolID uint64, to sdk.AccAddress, amount sdkmath.Int, denomOf func(types.Pool) string) error {
	if err := k.assertAuthorizedMover(ctx, mover); err != nil {
		return err
	}
	if to.Empty() {
		return types.ErrInvalidAddress.Wrap("payment recipient cannot be empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("payment amount must be positive")
	}
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	coins := sdk.NewCoins(sdk.NewCoin(denomOf(pool), amount))
	if err := k.bankKeeper.SendCoins(ctx, types.PoolAddress(poolID), to, coins); err != nil {
		return types.ErrInsufficientReserves.Wrapf("pool %d payment: %v", poolID, err)
	}
	return nil
}

// BurnPoolTokens permanently removes amount of the bonding token from the
// pool's custody. Coins are staged through the module account because the
// bank keeper only burns module balances.
func (k Keeper) BurnPoolTokens(ctx context.Context, mover string, poolID uint64, amount sdkmath.Int) error {
	if err := k.assertAuthorizedMover(ctx, mover); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("burn amount must be positive")
	}
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	coins := sdk.NewCoins(sdk.NewCoin(pool.TokenDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, types.PoolAddress(poolID), types.ModuleName, coins); err != nil {
		return types.ErrInsufficientReserves.Wrapf("pool %d burn staging: %v", poolID, err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return types.ErrInvalidState.Wrapf("pool %d burn: %v", poolID, err)
	}
	return nil
}

// GrantAllowance records a one-shot pull grant against the pool's custody.
func (k Keeper) GrantAllowance(ctx context.Context, mover string, poolID uint64, spender sdk.AccAddress, denom string, amount sdkmath.Int) error {
	if err := k.assertAuthorizedMover(ctx, mover); err != nil {
		return err
	}
	if spender.Empty() {
		return types.ErrInvalidAddress.Wrap("spender cannot be empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("allowance amount must be positive")
	}
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if denom != pool.TokenDenom && denom != pool.AssetDenom {
		return types.ErrInvalidInput.Wrapf("denom %s is not part of pair %s/%s", denom, pool.TokenDenom, pool.AssetDenom)
	}

	allowance := types.NewAllowance(poolID, spender.String(), denom, amount)
	k.getStore(ctx).Set(types.GetAllowanceKey(poolID, spender.String(), denom), allowance.MustMarshal())

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAllowanceGranted,
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// WithdrawAllowance pulls a previously granted amount out of pool custody.
// The grant is consumed in full and deleted.
func (k Keeper) WithdrawAllowance(ctx context.Context, spender sdk.AccAddress, poolID uint64, denom string) (sdkmath.Int, error) {
	allowance, found := k.GetAllowance(ctx, poolID, spender.String(), denom)
	if !found {
		return sdkmath.Int{}, types.ErrAllowanceNotFound.Wrapf("pool %d, spender %s, denom %s", poolID, spender, denom)
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, allowance.Amount))
	if err := k.bankKeeper.SendCoins(ctx, types.PoolAddress(poolID), spender, coins); err != nil {
		return sdkmath.Int{}, types.ErrInsufficientReserves.Wrapf("pool %d allowance withdrawal: %v", poolID, err)
	}
	k.getStore(ctx).Delete(types.GetAllowanceKey(poolID, spender.String(), denom))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAllowanceWithdrawn,
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, allowance.Amount.String()),
		),
	)
	return allowance.Amount, nil
}

// GetAllowance returns a stored allowance grant.
func (k Keeper) GetAllowance(ctx context.Context, poolID uint64, spender, denom string) (types.Allowance, bool) {
	bz := k.getStore(ctx).Get(types.GetAllowanceKey(poolID, spender, denom))
	if bz == nil {
		return types.Allowance{}, false
	}
	allowance, err := types.UnmarshalAllowance(bz)
	if err != nil {
		panic(err)
	}
	return allowance, true
}

// GetAllAllowances returns every stored allowance grant.
func (k Keeper) GetAllAllowances(ctx context.Context) []types.Allowance {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.AllowanceKey)
	defer iterator.Close()

	var allowances []types.Allowance
	for ; iterator.Valid(); iterator.Next() {
		allowance, err := types.UnmarshalAllowance(iterator.Value())
		if err != nil {
			panic(err)
		}
		allowances = append(allowances, allowance)
	}
	return allowances
}
