package types

import (
	"encoding/json"
	"math/big"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the stored record for a launch pool. Real reserves are never
// stored here: they are read live from the pool's custody account balance,
// so unsolicited transfers simply become part of the curve.
type Pool struct {
	Id         uint64 `json:"id"`
	TokenDenom string `json:"token_denom"`
	AssetDenom string `json:"asset_denom"`

	// Virtual reserves are pricing cushions added to the live balances when
	// quoting. They are snapshotted from module params at creation and never
	// change for the life of the pool.
	VirtualToken sdkmath.Int `json:"virtual_token"`
	VirtualAsset sdkmath.Int `json:"virtual_asset"`

	// Address is the bech32 custody account derived from the pool id.
	Address string `json:"address"`

	// LastUpdated is the block time (unix seconds) of the last recorded
	// swap. Zero means the pool has not been initialized yet.
	LastUpdated int64 `json:"last_updated"`
}

func NewPool(id uint64, tokenDenom, assetDenom string, virtualToken, virtualAsset sdkmath.Int) Pool {
	return Pool{
		Id:           id,
		TokenDenom:   tokenDenom,
		AssetDenom:   assetDenom,
		VirtualToken: virtualToken,
		VirtualAsset: virtualAsset,
		Address:      PoolAddress(id).String(),
		LastUpdated:  0,
	}
}

// Initialized reports whether the pool has been activated for trading.
func (p Pool) Initialized() bool {
	return p.LastUpdated != 0
}

func (p Pool) Validate() error {
	if err := sdk.ValidateDenom(p.TokenDenom); err != nil {
		return ErrInvalidTokenPair.Wrapf("token denom: %v", err)
	}
	if err := sdk.ValidateDenom(p.AssetDenom); err != nil {
		return ErrInvalidTokenPair.Wrapf("asset denom: %v", err)
	}
	if p.TokenDenom == p.AssetDenom {
		return ErrInvalidTokenPair.Wrapf("identical denoms %s", p.TokenDenom)
	}
	if p.VirtualToken.IsNil() || p.VirtualToken.IsNegative() {
		return ErrInvalidInput.Wrap("virtual token reserve must be non-negative")
	}
	if p.VirtualAsset.IsNil() || p.VirtualAsset.IsNegative() {
		return ErrInvalidInput.Wrap("virtual asset reserve must be non-negative")
	}
	if _, err := sdk.AccAddressFromBech32(p.Address); err != nil {
		return ErrInvalidAddress.Wrapf("pool address: %s", p.Address)
	}
	if p.LastUpdated < 0 {
		return ErrInvalidState.Wrapf("negative last updated time %d", p.LastUpdated)
	}
	return nil
}

func (p Pool) MustMarshal() []byte {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return bz
}

func UnmarshalPool(bz []byte) (Pool, error) {
	var p Pool
	if err := json.Unmarshal(bz, &p); err != nil {
		return Pool{}, ErrInvalidState.Wrapf("corrupt pool record: %v", err)
	}
	return p, nil
}

// maxCurveValue bounds every intermediate of the quote math at 2^256-1.
var maxCurveValue = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// QuoteOutput prices a swap against the constant-product curve over
// virtual-augmented reserves:
//
//	out = floor(amountIn * (reserveOut + virtualOut) / (reserveIn + virtualIn + amountIn))
//
// The result is strictly less than reserveOut + virtualOut, so real
// reserves alone may be insufficient to settle it; callers settling against
// a custody account must check the live balance.
func QuoteOutput(amountIn, reserveIn, reserveOut, virtualIn, virtualOut sdkmath.Int) (sdkmath.Int, error) {
	for _, v := range []sdkmath.Int{amountIn, reserveIn, reserveOut, virtualIn, virtualOut} {
		if v.IsNil() || v.IsNegative() {
			return sdkmath.Int{}, ErrInvalidInput.Wrap("quote inputs must be non-negative")
		}
	}
	if !amountIn.IsPositive() {
		return sdkmath.Int{}, ErrZeroAmount.Wrap("quote requires positive input amount")
	}

	effIn := new(big.Int).Add(reserveIn.BigInt(), virtualIn.BigInt())
	effOut := new(big.Int).Add(reserveOut.BigInt(), virtualOut.BigInt())

	denom := new(big.Int).Add(effIn, amountIn.BigInt())
	if denom.Sign() == 0 {
		return sdkmath.Int{}, ErrArithmetic.Wrap("zero quote denominator")
	}

	num := new(big.Int).Mul(amountIn.BigInt(), effOut)
	if num.Cmp(maxCurveValue) > 0 {
		return sdkmath.Int{}, ErrArithmetic.Wrap("quote numerator overflow")
	}

	out := new(big.Int).Quo(num, denom)
	return sdkmath.NewIntFromBigInt(out), nil
}
