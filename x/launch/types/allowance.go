package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Allowance records a pull grant against a pool's custody account. The
// spender may withdraw the full amount once; withdrawal deletes the record.
type Allowance struct {
	PoolId  uint64      `json:"pool_id"`
	Spender string      `json:"spender"`
	Denom   string      `json:"denom"`
	Amount  sdkmath.Int `json:"amount"`
}

func NewAllowance(poolID uint64, spender, denom string, amount sdkmath.Int) Allowance {
	return Allowance{PoolId: poolID, Spender: spender, Denom: denom, Amount: amount}
}

func (a Allowance) Validate() error {
	if _, err := sdk.AccAddressFromBech32(a.Spender); err != nil {
		return ErrInvalidAddress.Wrapf("spender: %s", a.Spender)
	}
	if err := sdk.ValidateDenom(a.Denom); err != nil {
		return ErrInvalidInput.Wrapf("denom: %v", err)
	}
	if a.Amount.IsNil() || !a.Amount.IsPositive() {
		return ErrZeroAmount.Wrap("allowance amount must be positive")
	}
	return nil
}

func (a Allowance) MustMarshal() []byte {
	bz, err := json.Marshal(a)
	if err != nil {
		panic(err)
	}
	return bz
}

func UnmarshalAllowance(bz []byte) (Allowance, error) {
	var a Allowance
	if err := json.Unmarshal(bz, &a); err != nil {
		return Allowance{}, ErrInvalidState.Wrapf("corrupt allowance record: %v", err)
	}
	return a, nil
}
