package types

// Event types emitted by the launch module. External indexers rely on these
// as the canonical record of pool lifecycle and trade accounting.
const (
	EventTypePoolCreated            = "launch_pool_created"
	EventTypePoolInitialized        = "launch_pool_initialized"
	EventTypeSwapRecorded           = "launch_swap_recorded"
	EventTypePoolGraduated          = "launch_pool_graduated"
	EventTypeVirtualReservesUpdated = "launch_virtual_reserves_updated"
	EventTypeFeeParamsUpdated       = "launch_fee_params_updated"
	EventTypeRouterUpdated          = "launch_router_updated"
	EventTypeAuthoritiesUpdated     = "launch_authorities_updated"
	EventTypeAllowanceGranted       = "launch_allowance_granted"
	EventTypeAllowanceWithdrawn     = "launch_allowance_withdrawn"
)

// Event attribute keys
const (
	AttributeKeyPoolID       = "pool_id"
	AttributeKeyPoolAddress  = "pool_address"
	AttributeKeyTokenDenom   = "token_denom"
	AttributeKeyAssetDenom   = "asset_denom"
	AttributeKeyReserveToken = "reserve_token"
	AttributeKeyReserveAsset = "reserve_asset"
	AttributeKeyVirtualToken = "virtual_token"
	AttributeKeyVirtualAsset = "virtual_asset"
	AttributeKeyAmountIn0    = "amount_in_0"
	AttributeKeyAmountOut0   = "amount_out_0"
	AttributeKeyAmountIn1    = "amount_in_1"
	AttributeKeyAmountOut1   = "amount_out_1"
	AttributeKeyFeeVault     = "fee_vault"
	AttributeKeyBuyFeePct    = "buy_fee_pct"
	AttributeKeySellFeePct   = "sell_fee_pct"
	AttributeKeyRouter       = "router"
	AttributeKeyPoolCreator  = "pool_creator"
	AttributeKeyExecutor     = "executor"
	AttributeKeySpender      = "spender"
	AttributeKeyDenom        = "denom"
	AttributeKeyAmount       = "amount"
	AttributeKeyTokensMoved  = "tokens_moved"
	AttributeKeyTokensBurned = "tokens_burned"
	AttributeKeyAssetMoved   = "asset_moved"
	AttributeKeyRecipient    = "recipient"
)
