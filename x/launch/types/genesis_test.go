package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/kiln-chain/kiln/x/launch/types"
)

func TestGenesisState_Validate(t *testing.T) {
	pool1 := types.NewPool(1, "ubonk", "ukiln", math.ZeroInt(), math.NewInt(4500))
	pool2 := types.NewPool(2, "umeme", "ukiln", math.ZeroInt(), math.ZeroInt())

	tests := []struct {
		name    string
		genesis *types.GenesisState
		wantErr bool
	}{
		{
			"default is valid",
			types.DefaultGenesisState(),
			false,
		},
		{
			"pools with sequence",
			types.NewGenesisState(types.DefaultParams(), []types.Pool{pool1, pool2}, 3, nil),
			false,
		},
		{
			"zero next pool id",
			types.NewGenesisState(types.DefaultParams(), nil, 0, nil),
			true,
		},
		{
			"pool id outside sequence",
			types.NewGenesisState(types.DefaultParams(), []types.Pool{pool1}, 1, nil),
			true,
		},
		{
			"duplicate pool ids",
			func() *types.GenesisState {
				dup := pool2
				dup.Id = pool1.Id
				dup.Address = types.PoolAddress(dup.Id).String()
				return types.NewGenesisState(types.DefaultParams(), []types.Pool{pool1, dup}, 3, nil)
			}(),
			true,
		},
		{
			"duplicate pair either order",
			func() *types.GenesisState {
				mirrored := types.NewPool(2, "ukiln", "ubonk", math.ZeroInt(), math.ZeroInt())
				return types.NewGenesisState(types.DefaultParams(), []types.Pool{pool1, mirrored}, 3, nil)
			}(),
			true,
		},
		{
			"allowance for known pool",
			types.NewGenesisState(types.DefaultParams(), []types.Pool{pool1}, 2,
				[]types.Allowance{types.NewAllowance(1, addr("spender"), "ukiln", math.NewInt(100))}),
			false,
		},
		{
			"allowance for unknown pool",
			types.NewGenesisState(types.DefaultParams(), []types.Pool{pool1}, 2,
				[]types.Allowance{types.NewAllowance(9, addr("spender"), "ukiln", math.NewInt(100))}),
			true,
		},
		{
			"invalid params",
			func() *types.GenesisState {
				params := types.DefaultParams()
				params.BuyFeePct = 101
				return types.NewGenesisState(params, nil, 1, nil)
			}(),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.genesis.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	params := types.DefaultParams()
	params.DefaultVirtualToken = math.NewInt(-1)
	require.ErrorIs(t, params.Validate(), types.ErrInvalidInput)

	params = types.DefaultParams()
	params.SellFeePct = 150
	require.ErrorIs(t, params.Validate(), types.ErrInvalidFee)

	params = types.DefaultParams()
	params.AuthorizedRouter = "not-an-address"
	require.ErrorIs(t, params.Validate(), types.ErrInvalidAddress)

	params = types.DefaultParams()
	params.FeeVault = addr("vault")
	params.AuthorizedRouter = types.RouterAddress().String()
	require.NoError(t, params.Validate())
}
