package types

import (
	"cosmossdk.io/errors"
)

// Launch module sentinel errors. Code 1 is reserved by the SDK for internal
// errors, so module codes start at 2.
var (
	ErrInvalidInput         = errors.Register(ModuleName, 2, "invalid input")
	ErrInvalidTokenPair     = errors.Register(ModuleName, 3, "invalid token pair")
	ErrZeroAmount           = errors.Register(ModuleName, 4, "amount cannot be zero")
	ErrInvalidAddress       = errors.Register(ModuleName, 5, "invalid address")
	ErrUnauthorized         = errors.Register(ModuleName, 6, "unauthorized")
	ErrUnauthorizedMover    = errors.Register(ModuleName, 7, "caller is not the authorized router")
	ErrPoolNotFound         = errors.Register(ModuleName, 8, "pool not found")
	ErrPoolAlreadyExists    = errors.Register(ModuleName, 9, "pool already exists")
	ErrAlreadyInitialized   = errors.Register(ModuleName, 10, "pool already initialized")
	ErrRouterNotSet         = errors.Register(ModuleName, 11, "no authorized router configured")
	ErrFeeVaultNotSet       = errors.Register(ModuleName, 12, "fee vault not configured")
	ErrInvalidFee           = errors.Register(ModuleName, 13, "fee percentage out of range")
	ErrInsufficientReserves = errors.Register(ModuleName, 14, "insufficient reserves")
	ErrArithmetic           = errors.Register(ModuleName, 15, "arithmetic over- or underflow")
	ErrReentrancy           = errors.Register(ModuleName, 16, "reentrancy detected")
	ErrInvariantViolation   = errors.Register(ModuleName, 17, "invariant violation")
	ErrAllowanceNotFound    = errors.Register(ModuleName, 18, "allowance not found")
	ErrInvalidState         = errors.Register(ModuleName, 19, "invalid module state")
)
