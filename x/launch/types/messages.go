package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgCreatePool                = "create_pool"
	TypeMsgSetVirtualReserveDefaults = "set_virtual_reserve_defaults"
	TypeMsgSetFeeParams              = "set_fee_params"
	TypeMsgSetAuthorizedRouter       = "set_authorized_router"
	TypeMsgSetAuthorities            = "set_authorities"
	TypeMsgSeedLiquidity             = "seed_liquidity"
	TypeMsgBuy                       = "buy"
	TypeMsgSell                      = "sell"
	TypeMsgGraduatePool              = "graduate_pool"
	TypeMsgWithdrawAllowance         = "withdraw_allowance"
)

var (
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgSetVirtualReserveDefaults{}
	_ sdk.Msg = &MsgSetFeeParams{}
	_ sdk.Msg = &MsgSetAuthorizedRouter{}
	_ sdk.Msg = &MsgSetAuthorities{}
	_ sdk.Msg = &MsgSeedLiquidity{}
	_ sdk.Msg = &MsgBuy{}
	_ sdk.Msg = &MsgSell{}
	_ sdk.Msg = &MsgGraduatePool{}
	_ sdk.Msg = &MsgWithdrawAllowance{}
)

// MsgCreatePool registers a new trading pair with the pool registry.
type MsgCreatePool struct {
	legacyMessage
	Creator    string `json:"creator"`
	TokenDenom string `json:"token_denom"`
	AssetDenom string `json:"asset_denom"`
}

func NewMsgCreatePool(creator, tokenDenom, assetDenom string) *MsgCreatePool {
	return &MsgCreatePool{Creator: creator, TokenDenom: tokenDenom, AssetDenom: assetDenom}
}

func (msg MsgCreatePool) Route() string { return RouterKey }
func (msg MsgCreatePool) Type() string  { return TypeMsgCreatePool }

func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Creator)
}

func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("creator: %v", err)
	}
	return validateDenomPair(msg.TokenDenom, msg.AssetDenom)
}

// MsgSetVirtualReserveDefaults updates the virtual reserve cushions applied
// to pools created after this message executes.
type MsgSetVirtualReserveDefaults struct {
	legacyMessage
	Authority    string      `json:"authority"`
	VirtualToken sdkmath.Int `json:"virtual_token"`
	VirtualAsset sdkmath.Int `json:"virtual_asset"`
}

func NewMsgSetVirtualReserveDefaults(authority string, virtualToken, virtualAsset sdkmath.Int) *MsgSetVirtualReserveDefaults {
	return &MsgSetVirtualReserveDefaults{Authority: authority, VirtualToken: virtualToken, VirtualAsset: virtualAsset}
}

func (msg MsgSetVirtualReserveDefaults) Route() string { return RouterKey }
func (msg MsgSetVirtualReserveDefaults) Type() string  { return TypeMsgSetVirtualReserveDefaults }

func (msg MsgSetVirtualReserveDefaults) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Authority)
}

func (msg MsgSetVirtualReserveDefaults) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if msg.VirtualToken.IsNil() || msg.VirtualToken.IsNegative() {
		return ErrInvalidInput.Wrap("virtual token reserve must be non-negative")
	}
	if msg.VirtualAsset.IsNil() || msg.VirtualAsset.IsNegative() {
		return ErrInvalidInput.Wrap("virtual asset reserve must be non-negative")
	}
	return nil
}

// MsgSetFeeParams updates the fee vault and the buy/sell fee percentages.
type MsgSetFeeParams struct {
	legacyMessage
	Authority  string `json:"authority"`
	FeeVault   string `json:"fee_vault"`
	BuyFeePct  uint64 `json:"buy_fee_pct"`
	SellFeePct uint64 `json:"sell_fee_pct"`
}

func NewMsgSetFeeParams(authority, feeVault string, buyFeePct, sellFeePct uint64) *MsgSetFeeParams {
	return &MsgSetFeeParams{Authority: authority, FeeVault: feeVault, BuyFeePct: buyFeePct, SellFeePct: sellFeePct}
}

func (msg MsgSetFeeParams) Route() string { return RouterKey }
func (msg MsgSetFeeParams) Type() string  { return TypeMsgSetFeeParams }

func (msg MsgSetFeeParams) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Authority)
}

func (msg MsgSetFeeParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.FeeVault); err != nil {
		return ErrInvalidAddress.Wrapf("fee vault: %v", err)
	}
	if msg.BuyFeePct > MaxFeePct {
		return ErrInvalidFee.Wrapf("buy fee %d%% exceeds %d%%", msg.BuyFeePct, MaxFeePct)
	}
	if msg.SellFeePct > MaxFeePct {
		return ErrInvalidFee.Wrapf("sell fee %d%% exceeds %d%%", msg.SellFeePct, MaxFeePct)
	}
	return nil
}

// MsgSetAuthorizedRouter rotates the account allowed to move pool custody
// funds. Existing pools pick up the new router immediately.
type MsgSetAuthorizedRouter struct {
	legacyMessage
	Authority string `json:"authority"`
	Router    string `json:"router"`
}

func NewMsgSetAuthorizedRouter(authority, router string) *MsgSetAuthorizedRouter {
	return &MsgSetAuthorizedRouter{Authority: authority, Router: router}
}

func (msg MsgSetAuthorizedRouter) Route() string { return RouterKey }
func (msg MsgSetAuthorizedRouter) Type() string  { return TypeMsgSetAuthorizedRouter }

func (msg MsgSetAuthorizedRouter) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Authority)
}

func (msg MsgSetAuthorizedRouter) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Router); err != nil {
		return ErrInvalidAddress.Wrapf("router: %v", err)
	}
	return nil
}

// MsgSetAuthorities rotates the pool creator and executor capability holders.
type MsgSetAuthorities struct {
	legacyMessage
	Authority   string `json:"authority"`
	PoolCreator string `json:"pool_creator"`
	Executor    string `json:"executor"`
}

func NewMsgSetAuthorities(authority, poolCreator, executor string) *MsgSetAuthorities {
	return &MsgSetAuthorities{Authority: authority, PoolCreator: poolCreator, Executor: executor}
}

func (msg MsgSetAuthorities) Route() string { return RouterKey }
func (msg MsgSetAuthorities) Type() string  { return TypeMsgSetAuthorities }

func (msg MsgSetAuthorities) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Authority)
}

func (msg MsgSetAuthorities) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("authority: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.PoolCreator); err != nil {
		return ErrInvalidAddress.Wrapf("pool creator: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return ErrInvalidAddress.Wrapf("executor: %v", err)
	}
	return nil
}

// MsgSeedLiquidity funds a pool's custody account with its initial reserves
// and activates it for trading. No deposit ratio is enforced.
type MsgSeedLiquidity struct {
	legacyMessage
	Executor    string      `json:"executor"`
	TokenDenom  string      `json:"token_denom"`
	AssetDenom  string      `json:"asset_denom"`
	TokenAmount sdkmath.Int `json:"token_amount"`
	AssetAmount sdkmath.Int `json:"asset_amount"`
}

func NewMsgSeedLiquidity(executor, tokenDenom, assetDenom string, tokenAmount, assetAmount sdkmath.Int) *MsgSeedLiquidity {
	return &MsgSeedLiquidity{
		Executor:    executor,
		TokenDenom:  tokenDenom,
		AssetDenom:  assetDenom,
		TokenAmount: tokenAmount,
		AssetAmount: assetAmount,
	}
}

func (msg MsgSeedLiquidity) Route() string { return RouterKey }
func (msg MsgSeedLiquidity) Type() string  { return TypeMsgSeedLiquidity }

func (msg MsgSeedLiquidity) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Executor)
}

func (msg MsgSeedLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return ErrInvalidAddress.Wrapf("executor: %v", err)
	}
	if err := validateDenomPair(msg.TokenDenom, msg.AssetDenom); err != nil {
		return err
	}
	if err := validatePositiveAmount("token amount", msg.TokenAmount); err != nil {
		return err
	}
	// Asset side may be zero when the virtual cushion carries the opening
	// price on its own.
	if msg.AssetAmount.IsNil() || msg.AssetAmount.IsNegative() {
		return ErrInvalidInput.Wrap("asset amount must be non-negative")
	}
	return nil
}

// MsgBuy swaps asset for token through a pool. The fee is charged on the
// input amount before quoting.
type MsgBuy struct {
	legacyMessage
	Executor   string      `json:"executor"`
	TokenDenom string      `json:"token_denom"`
	AssetDenom string      `json:"asset_denom"`
	AmountIn   sdkmath.Int `json:"amount_in"`
	Recipient  string      `json:"recipient"`
}

func NewMsgBuy(executor, tokenDenom, assetDenom string, amountIn sdkmath.Int, recipient string) *MsgBuy {
	return &MsgBuy{
		Executor:   executor,
		TokenDenom: tokenDenom,
		AssetDenom: assetDenom,
		AmountIn:   amountIn,
		Recipient:  recipient,
	}
}

func (msg MsgBuy) Route() string { return RouterKey }
func (msg MsgBuy) Type() string  { return TypeMsgBuy }

func (msg MsgBuy) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Executor)
}

func (msg MsgBuy) ValidateBasic() error {
	return validateTradeMsg(msg.Executor, msg.TokenDenom, msg.AssetDenom, msg.AmountIn, msg.Recipient)
}

// MsgSell swaps token for asset through a pool. The fee is charged on the
// quoted output.
type MsgSell struct {
	legacyMessage
	Executor   string      `json:"executor"`
	TokenDenom string      `json:"token_denom"`
	AssetDenom string      `json:"asset_denom"`
	AmountIn   sdkmath.Int `json:"amount_in"`
	Recipient  string      `json:"recipient"`
}

func NewMsgSell(executor, tokenDenom, assetDenom string, amountIn sdkmath.Int, recipient string) *MsgSell {
	return &MsgSell{
		Executor:   executor,
		TokenDenom: tokenDenom,
		AssetDenom: assetDenom,
		AmountIn:   amountIn,
		Recipient:  recipient,
	}
}

func (msg MsgSell) Route() string { return RouterKey }
func (msg MsgSell) Type() string  { return TypeMsgSell }

func (msg MsgSell) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Executor)
}

func (msg MsgSell) ValidateBasic() error {
	return validateTradeMsg(msg.Executor, msg.TokenDenom, msg.AssetDenom, msg.AmountIn, msg.Recipient)
}

// MsgGraduatePool drains a pool for migration to an external venue: the
// executor receives the full asset custody plus enough tokens to preserve
// the spot price, and the remaining tokens are burned.
type MsgGraduatePool struct {
	legacyMessage
	Executor   string `json:"executor"`
	TokenDenom string `json:"token_denom"`
	AssetDenom string `json:"asset_denom"`
}

func NewMsgGraduatePool(executor, tokenDenom, assetDenom string) *MsgGraduatePool {
	return &MsgGraduatePool{Executor: executor, TokenDenom: tokenDenom, AssetDenom: assetDenom}
}

func (msg MsgGraduatePool) Route() string { return RouterKey }
func (msg MsgGraduatePool) Type() string  { return TypeMsgGraduatePool }

func (msg MsgGraduatePool) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Executor)
}

func (msg MsgGraduatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return ErrInvalidAddress.Wrapf("executor: %v", err)
	}
	return validateDenomPair(msg.TokenDenom, msg.AssetDenom)
}

// MsgWithdrawAllowance pulls funds previously granted to the signer out of
// a pool's custody account. The grant is consumed in full.
type MsgWithdrawAllowance struct {
	legacyMessage
	Spender string `json:"spender"`
	PoolId  uint64 `json:"pool_id"`
	Denom   string `json:"denom"`
}

func NewMsgWithdrawAllowance(spender string, poolID uint64, denom string) *MsgWithdrawAllowance {
	return &MsgWithdrawAllowance{Spender: spender, PoolId: poolID, Denom: denom}
}

func (msg MsgWithdrawAllowance) Route() string { return RouterKey }
func (msg MsgWithdrawAllowance) Type() string  { return TypeMsgWithdrawAllowance }

func (msg MsgWithdrawAllowance) GetSigners() []sdk.AccAddress {
	return signerOrPanic(msg.Spender)
}

func (msg MsgWithdrawAllowance) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Spender); err != nil {
		return ErrInvalidAddress.Wrapf("spender: %v", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidInput.Wrapf("denom: %v", err)
	}
	return nil
}

// Shared validation helpers

func validateDenomPair(tokenDenom, assetDenom string) error {
	if tokenDenom == "" || assetDenom == "" {
		return ErrInvalidTokenPair.Wrap("denoms cannot be empty")
	}
	if tokenDenom == assetDenom {
		return ErrInvalidTokenPair.Wrap("denoms must be different")
	}
	if err := sdk.ValidateDenom(tokenDenom); err != nil {
		return ErrInvalidTokenPair.Wrapf("token denom: %v", err)
	}
	if err := sdk.ValidateDenom(assetDenom); err != nil {
		return ErrInvalidTokenPair.Wrapf("asset denom: %v", err)
	}
	return nil
}

func validatePositiveAmount(name string, amount sdkmath.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrZeroAmount.Wrapf("%s must be positive", name)
	}
	return nil
}

func validateTradeMsg(executor, tokenDenom, assetDenom string, amountIn sdkmath.Int, recipient string) error {
	if _, err := sdk.AccAddressFromBech32(executor); err != nil {
		return ErrInvalidAddress.Wrapf("executor: %v", err)
	}
	if err := validateDenomPair(tokenDenom, assetDenom); err != nil {
		return err
	}
	if err := validatePositiveAmount("amount in", amountIn); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(recipient); err != nil {
		return ErrInvalidAddress.Wrapf("recipient: %v", err)
	}
	return nil
}

func signerOrPanic(addr string) []sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{acc}
}
