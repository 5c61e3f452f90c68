package keeper

import (
	"context"
	"fmt"

	"github.com/kiln-chain/kiln/x/launch/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InitGenesis initializes the launch module's state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid launch genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	k.setNextPoolID(ctx, genState.NextPoolId)

	store := k.getStore(ctx)
	for _, pool := range genState.Pools {
		store.Set(types.GetPoolKey(pool.Id), pool.MustMarshal())
		store.Set(types.GetPoolByDenomsKey(pool.TokenDenom, pool.AssetDenom), sdk.Uint64ToBigEndian(pool.Id))
	}

	for _, allowance := range genState.Allowances {
		store.Set(types.GetAllowanceKey(allowance.PoolId, allowance.Spender, allowance.Denom), allowance.MustMarshal())
	}

	return nil
}

// ExportGenesis returns the launch module's full exported state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return types.NewGenesisState(
		k.GetParams(ctx),
		k.GetAllPools(ctx),
		k.GetNextPoolID(ctx),
		k.GetAllAllowances(ctx),
	)
}
