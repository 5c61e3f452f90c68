package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kiln-chain/kiln/x/launch/types"
)

func TestErrorCodesLeaveSDKReservedRange(t *testing.T) {
	// ABCI code 1 belongs to the SDK's internal error.
	require.EqualValues(t, 2, types.ErrInvalidInput.ABCICode())

	errs := []error{
		types.ErrInvalidInput, types.ErrInvalidTokenPair, types.ErrZeroAmount,
		types.ErrInvalidAddress, types.ErrUnauthorized, types.ErrUnauthorizedMover,
		types.ErrPoolNotFound, types.ErrPoolAlreadyExists, types.ErrAlreadyInitialized,
		types.ErrRouterNotSet, types.ErrFeeVaultNotSet, types.ErrInvalidFee,
		types.ErrInsufficientReserves, types.ErrArithmetic, types.ErrReentrancy,
		types.ErrInvariantViolation, types.ErrAllowanceNotFound, types.ErrInvalidState,
	}
	seen := make(map[uint32]bool, len(errs))
	for _, err := range errs {
		code := err.(interface{ ABCICode() uint32 }).ABCICode()
		require.Greater(t, code, uint32(1))
		require.False(t, seen[code], "duplicate code %d", code)
		seen[code] = true
	}
}
