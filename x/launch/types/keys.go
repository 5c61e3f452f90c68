package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "launch"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// RouterAccount is the name of the account the execution router acts as.
	// Its address is the identity pool custody operations verify against.
	RouterAccount = ModuleName + "/router"
)

// Store key prefixes
var (
	PoolKey           = []byte{0x01} // prefix for pool records
	PoolCountKey      = []byte{0x02} // key for the pool id sequence
	PoolByDenomsKey   = []byte{0x03} // prefix for pool lookup by denom pair
	ParamsKey         = []byte{0x04} // key for module params
	AllowanceKey      = []byte{0x05} // prefix for allowance grants
	ReentrancyLockKey = []byte{0x06} // prefix for transient operation locks
)

// GetPoolKey returns the store key for a pool record.
func GetPoolKey(poolID uint64) []byte {
	return append(PoolKey, sdk.Uint64ToBigEndian(poolID)...)
}

// GetPoolByDenomsKey returns the store key for the denom-pair index. The
// pair is ordered so both lookup directions resolve to the same key.
func GetPoolByDenomsKey(denomA, denomB string) []byte {
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	key := append(PoolByDenomsKey, []byte(denomA)...)
	key = append(key, []byte("/")...)
	return append(key, []byte(denomB)...)
}

// GetAllowanceKey returns the store key for an allowance grant.
func GetAllowanceKey(poolID uint64, spender, denom string) []byte {
	key := append(AllowanceKey, sdk.Uint64ToBigEndian(poolID)...)
	key = append(key, []byte(spender)...)
	key = append(key, []byte("/")...)
	return append(key, []byte(denom)...)
}

// GetReentrancyLockKey returns the store key for an operation lock.
func GetReentrancyLockKey(lockID string) []byte {
	return append(ReentrancyLockKey, []byte(lockID)...)
}

// RouterAddress returns the address of the execution router account.
func RouterAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(RouterAccount)
}

// PoolAddress returns the derived custody account for a pool. Real reserves
// are whatever the bank ledger reports at this address.
func PoolAddress(poolID uint64) sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("%s/pool/%d", ModuleName, poolID))
}

// ModuleAddress returns the module's own account address, used as the burn
// staging account during graduation.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}
