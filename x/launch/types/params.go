package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the module-wide configuration: default virtual reserves
// applied to new pools, fee routing, and the privileged account set.
type Params struct {
	// DefaultVirtualToken and DefaultVirtualAsset are snapshotted onto each
	// pool at creation time. Later changes do not affect existing pools.
	DefaultVirtualToken sdkmath.Int `json:"default_virtual_token"`
	DefaultVirtualAsset sdkmath.Int `json:"default_virtual_asset"`

	// FeeVault receives trade fees. Empty means unset; trades that would
	// collect a nonzero fee fail until it is configured.
	FeeVault string `json:"fee_vault"`

	// BuyFeePct is charged on trade input, SellFeePct on trade output.
	// Both are whole percentages in [0, 100].
	BuyFeePct  uint64 `json:"buy_fee_pct"`
	SellFeePct uint64 `json:"sell_fee_pct"`

	// AuthorizedRouter is the only account allowed to move pool custody
	// funds. Pools resolve it live, so rotating the router retargets all
	// existing pools at once.
	AuthorizedRouter string `json:"authorized_router"`

	// PoolCreator may register pools; Executor may drive trade protocols.
	// Empty values leave the corresponding operations disabled.
	PoolCreator string `json:"pool_creator"`
	Executor    string `json:"executor"`
}

const MaxFeePct = 100

// DefaultParams returns conservative defaults: zero virtual cushions, 1%
// fees, and no privileged accounts configured. Operations that need an
// unset account fail until governance sets one.
func DefaultParams() Params {
	return Params{
		DefaultVirtualToken: sdkmath.ZeroInt(),
		DefaultVirtualAsset: sdkmath.ZeroInt(),
		FeeVault:            "",
		BuyFeePct:           1,
		SellFeePct:          1,
		AuthorizedRouter:    "",
		PoolCreator:         "",
		Executor:            "",
	}
}

// Validate performs stateless sanity checks on the parameter set.
func (p Params) Validate() error {
	if p.DefaultVirtualToken.IsNil() || p.DefaultVirtualToken.IsNegative() {
		return ErrInvalidInput.Wrap("default virtual token reserve must be non-negative")
	}
	if p.DefaultVirtualAsset.IsNil() || p.DefaultVirtualAsset.IsNegative() {
		return ErrInvalidInput.Wrap("default virtual asset reserve must be non-negative")
	}
	if p.BuyFeePct > MaxFeePct {
		return ErrInvalidFee.Wrapf("buy fee %d%% exceeds %d%%", p.BuyFeePct, MaxFeePct)
	}
	if p.SellFeePct > MaxFeePct {
		return ErrInvalidFee.Wrapf("sell fee %d%% exceeds %d%%", p.SellFeePct, MaxFeePct)
	}
	for name, addr := range map[string]string{
		"fee vault":         p.FeeVault,
		"authorized router": p.AuthorizedRouter,
		"pool creator":      p.PoolCreator,
		"executor":          p.Executor,
	} {
		if addr == "" {
			continue
		}
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return ErrInvalidAddress.Wrapf("%s: %s", name, addr)
		}
	}
	return nil
}

// MustMarshal encodes params for storage; panics are confined to programmer
// error since Params contains no unmarshalable fields.
func (p Params) MustMarshal() []byte {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return bz
}

func UnmarshalParams(bz []byte) (Params, error) {
	var p Params
	if err := json.Unmarshal(bz, &p); err != nil {
		return Params{}, ErrInvalidState.Wrapf("corrupt params record: %v", err)
	}
	return p, nil
}
