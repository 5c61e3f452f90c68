package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kiln-chain/kiln/x/launch/types"
)

// RegisterInvariants registers all launch module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-index", PoolIndexInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-records", PoolRecordsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "params-bounds", ParamsBoundsInvariant(k))
}

// AllInvariants runs all invariants of the launch module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolIndexInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = PoolRecordsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ParamsBoundsInvariant(k)(ctx)
	}
}

// PoolIndexInvariant checks that every pool record resolves through the
// denom-pair index in both directions and back to the same id.
func PoolIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pool := range k.GetAllPools(ctx) {
			forward, ok := k.GetPoolByDenoms(ctx, pool.TokenDenom, pool.AssetDenom)
			if !ok || forward.Id != pool.Id {
				count++
				msg += fmt.Sprintf("pool %d: forward index lookup failed\n", pool.Id)
			}
			reverse, ok := k.GetPoolByDenoms(ctx, pool.AssetDenom, pool.TokenDenom)
			if !ok || reverse.Id != pool.Id {
				count++
				msg += fmt.Sprintf("pool %d: reverse index lookup failed\n", pool.Id)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "pool-index",
			fmt.Sprintf("%d broken index entries\n%s", count, msg)), broken
	}
}

// PoolRecordsInvariant checks structural validity of every stored pool: ids
// below the sequence, valid fields, non-negative cushions.
func PoolRecordsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		next := k.GetNextPoolID(ctx)
		for _, pool := range k.GetAllPools(ctx) {
			if pool.Id >= next {
				count++
				msg += fmt.Sprintf("pool %d: id outside sequence (next is %d)\n", pool.Id, next)
			}
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "pool-records",
			fmt.Sprintf("%d invalid pool records\n%s", count, msg)), broken
	}
}

// ParamsBoundsInvariant checks the stored params are within bounds.
func ParamsBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		err := k.GetParams(ctx).Validate()
		broken := err != nil
		return sdk.FormatInvariant(types.ModuleName, "params-bounds",
			fmt.Sprintf("stored params invalid: %v", err)), broken
	}
}
