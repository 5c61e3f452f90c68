package types

import "fmt"

// GenesisState is the full exported state of the launch module.
type GenesisState struct {
	Params     Params      `json:"params"`
	Pools      []Pool      `json:"pools"`
	NextPoolId uint64      `json:"next_pool_id"`
	Allowances []Allowance `json:"allowances"`
}

func NewGenesisState(params Params, pools []Pool, nextPoolID uint64, allowances []Allowance) *GenesisState {
	return &GenesisState{
		Params:     params,
		Pools:      pools,
		NextPoolId: nextPoolID,
		Allowances: allowances,
	}
}

func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), nil, 1, nil)
}

// Validate checks internal consistency: valid params, well-formed pools with
// unique ids and pairs below the id sequence, and allowances referencing
// known pools.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("params: %w", err)
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be at least 1")
	}

	seenIDs := make(map[uint64]struct{}, len(gs.Pools))
	seenPairs := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.Id, err)
		}
		if pool.Id == 0 || pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool %d: id outside sequence (next is %d)", pool.Id, gs.NextPoolId)
		}
		if _, ok := seenIDs[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		seenIDs[pool.Id] = struct{}{}

		a, b := pool.TokenDenom, pool.AssetDenom
		if b < a {
			a, b = b, a
		}
		pair := a + "/" + b
		if _, ok := seenPairs[pair]; ok {
			return fmt.Errorf("duplicate pool for pair %s", pair)
		}
		seenPairs[pair] = struct{}{}
	}

	for _, allowance := range gs.Allowances {
		if err := allowance.Validate(); err != nil {
			return fmt.Errorf("allowance for pool %d: %w", allowance.PoolId, err)
		}
		if _, ok := seenIDs[allowance.PoolId]; !ok {
			return fmt.Errorf("allowance references unknown pool %d", allowance.PoolId)
		}
	}

	return nil
}
