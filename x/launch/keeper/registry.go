package keeper

import (
	"context"
	"strconv"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kiln-chain/kiln/x/launch/types"
)

// GetNextPoolID returns the next pool id in the sequence.
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setNextPoolID(ctx context.Context, id uint64) {
	k.getStore(ctx).Set(types.PoolCountKey, sdk.Uint64ToBigEndian(id))
}

// CreatePool registers a new pair. The current default virtual cushions are
// frozen into the record; later default changes never affect this pool.
func (k Keeper) CreatePool(ctx context.Context, creator, tokenDenom, assetDenom string) (types.Pool, error) {
	params := k.GetParams(ctx)
	if params.PoolCreator == "" || creator != params.PoolCreator {
		return types.Pool{}, types.ErrUnauthorized.Wrapf("%s may not create pools", creator)
	}
	if tokenDenom == "" || assetDenom == "" {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrap("denoms cannot be empty")
	}
	if tokenDenom == assetDenom {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrapf("identical denoms %s", tokenDenom)
	}
	if err := sdk.ValidateDenom(tokenDenom); err != nil {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrapf("token denom: %v", err)
	}
	if err := sdk.ValidateDenom(assetDenom); err != nil {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrapf("asset denom: %v", err)
	}
	if params.AuthorizedRouter == "" {
		return types.Pool{}, types.ErrRouterNotSet.Wrap("cannot create pools before a router is configured")
	}
	if _, found := k.GetPoolByDenoms(ctx, tokenDenom, assetDenom); found {
		return types.Pool{}, types.ErrPoolAlreadyExists.Wrapf("pair %s/%s", tokenDenom, assetDenom)
	}

	id := k.GetNextPoolID(ctx)
	pool := types.NewPool(id, tokenDenom, assetDenom, params.DefaultVirtualToken, params.DefaultVirtualAsset)

	store := k.getStore(ctx)
	store.Set(types.GetPoolKey(id), pool.MustMarshal())
	store.Set(types.GetPoolByDenomsKey(tokenDenom, assetDenom), sdk.Uint64ToBigEndian(id))
	k.setNextPoolID(ctx, id+1)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyPoolAddress, pool.Address),
			sdk.NewAttribute(types.AttributeKeyTokenDenom, tokenDenom),
			sdk.NewAttribute(types.AttributeKeyAssetDenom, assetDenom),
		),
	)
	recordPoolCreated()

	return pool, nil
}

// GetPool returns a pool record by id.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, bool) {
	bz := k.getStore(ctx).Get(types.GetPoolKey(poolID))
	if bz == nil {
		return types.Pool{}, false
	}
	pool, err := types.UnmarshalPool(bz)
	if err != nil {
		panic(err)
	}
	return pool, true
}

// GetPoolByDenoms resolves a pool by its pair in either denom order.
func (k Keeper) GetPoolByDenoms(ctx context.Context, denomA, denomB string) (types.Pool, bool) {
	bz := k.getStore(ctx).Get(types.GetPoolByDenomsKey(denomA, denomB))
	if bz == nil {
		return types.Pool{}, false
	}
	return k.GetPool(ctx, sdk.BigEndianToUint64(bz))
}

func (k Keeper) setPool(ctx context.Context, pool types.Pool) {
	k.getStore(ctx).Set(types.GetPoolKey(pool.Id), pool.MustMarshal())
}

// GetAllPools returns every pool record in id order.
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKey)
	defer iterator.Close()

	var pools []types.Pool
	for ; iterator.Valid(); iterator.Next() {
		pool, err := types.UnmarshalPool(iterator.Value())
		if err != nil {
			panic(err)
		}
		pools = append(pools, pool)
	}
	return pools
}
