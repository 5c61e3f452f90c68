package keeper

import (
	"context"
	"fmt"

	"github.com/kiln-chain/kiln/x/launch/types"
)

// WithReentrancyGuard executes fn under a single-entry lock scoped to a pool
// and operation name. The lock lives in the KVStore so it holds across any
// nested calls sharing the same state, which is the only reentry path the
// serialized execution model leaves open.
func (k Keeper) WithReentrancyGuard(ctx context.Context, poolID uint64, operation string, fn func() error) error {
	lockID := fmt.Sprintf("%d:%s", poolID, operation)

	if err := k.acquireReentrancyLock(ctx, lockID); err != nil {
		return err
	}
	defer k.releaseReentrancyLock(ctx, lockID)

	return fn()
}

func (k Keeper) acquireReentrancyLock(ctx context.Context, lockID string) error {
	store := k.getStore(ctx)
	key := types.GetReentrancyLockKey(lockID)
	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("operation %s is already in progress", lockID)
	}
	store.Set(key, []byte{0x01})
	return nil
}

func (k Keeper) releaseReentrancyLock(ctx context.Context, lockID string) {
	k.getStore(ctx).Delete(types.GetReentrancyLockKey(lockID))
}
