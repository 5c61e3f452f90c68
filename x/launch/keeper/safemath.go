package keeper

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/kiln-chain/kiln/x/launch/types"
)

// Overflow-safe arithmetic helpers. All results are bounded at 2^256.

var maxSafeValue = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking.
func SafeAdd(a, b sdkmath.Int) (sdkmath.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxSafeValue) >= 0 {
		return sdkmath.Int{}, types.ErrArithmetic.Wrap("addition overflow")
	}
	return sdkmath.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a with underflow checking.
func SafeSub(a, b sdkmath.Int) (sdkmath.Int, error) {
	if a.LT(b) {
		return sdkmath.Int{}, types.ErrArithmetic.Wrapf("underflow: cannot subtract %s from %s", b, a)
	}
	return a.Sub(b), nil
}

// SafeMulDiv computes floor((a * b) / c) with overflow protection on the
// intermediate product.
func SafeMulDiv(a, b, c sdkmath.Int) (sdkmath.Int, error) {
	if c.IsZero() {
		return sdkmath.Int{}, types.ErrArithmetic.Wrap("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxSafeValue) >= 0 {
		return sdkmath.Int{}, types.ErrArithmetic.Wrap("multiplication overflow")
	}

	result := new(big.Int).Quo(intermediate, c.BigInt())
	return sdkmath.NewIntFromBigInt(result), nil
}

// FeeAmount computes floor(pct * amount / 100) for a whole-number fee
// percentage.
func FeeAmount(amount sdkmath.Int, pct uint64) (sdkmath.Int, error) {
	if pct > types.MaxFeePct {
		return sdkmath.Int{}, types.ErrInvalidFee.Wrapf("fee %d%% exceeds %d%%", pct, types.MaxFeePct)
	}
	return SafeMulDiv(amount, sdkmath.NewIntFromUint64(pct), sdkmath.NewInt(100))
}
