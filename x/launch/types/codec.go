package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// legacyMessage supplies the proto.Message surface for the module's
// hand-written messages so they satisfy sdk.Msg without generated code.
// Wire encoding goes through amino JSON.
type legacyMessage struct{}

func (legacyMessage) Reset()         {}
func (legacyMessage) String() string { return "" }
func (legacyMessage) ProtoMessage()  {}

// Message names resolved through the gogoproto XXX_MessageName hook. Each
// concrete type needs its own name so the interface registry assigns it a
// distinct type URL.
func (*MsgCreatePool) XXX_MessageName() string   { return "kiln.launch.MsgCreatePool" }
func (*MsgSetFeeParams) XXX_MessageName() string { return "kiln.launch.MsgSetFeeParams" }
func (*MsgSetAuthorities) XXX_MessageName() string {
	return "kiln.launch.MsgSetAuthorities"
}
func (*MsgSetAuthorizedRouter) XXX_MessageName() string {
	return "kiln.launch.MsgSetAuthorizedRouter"
}
func (*MsgSetVirtualReserveDefaults) XXX_MessageName() string {
	return "kiln.launch.MsgSetVirtualReserveDefaults"
}
func (*MsgSeedLiquidity) XXX_MessageName() string { return "kiln.launch.MsgSeedLiquidity" }
func (*MsgBuy) XXX_MessageName() string           { return "kiln.launch.MsgBuy" }
func (*MsgSell) XXX_MessageName() string          { return "kiln.launch.MsgSell" }
func (*MsgGraduatePool) XXX_MessageName() string  { return "kiln.launch.MsgGraduatePool" }
func (*MsgWithdrawAllowance) XXX_MessageName() string {
	return "kiln.launch.MsgWithdrawAllowance"
}

// RegisterCodec registers the module's concrete message types on the amino
// codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "launch/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgSetVirtualReserveDefaults{}, "launch/MsgSetVirtualReserveDefaults", nil)
	cdc.RegisterConcrete(&MsgSetFeeParams{}, "launch/MsgSetFeeParams", nil)
	cdc.RegisterConcrete(&MsgSetAuthorizedRouter{}, "launch/MsgSetAuthorizedRouter", nil)
	cdc.RegisterConcrete(&MsgSetAuthorities{}, "launch/MsgSetAuthorities", nil)
	cdc.RegisterConcrete(&MsgSeedLiquidity{}, "launch/MsgSeedLiquidity", nil)
	cdc.RegisterConcrete(&MsgBuy{}, "launch/MsgBuy", nil)
	cdc.RegisterConcrete(&MsgSell{}, "launch/MsgSell", nil)
	cdc.RegisterConcrete(&MsgGraduatePool{}, "launch/MsgGraduatePool", nil)
	cdc.RegisterConcrete(&MsgWithdrawAllowance{}, "launch/MsgWithdrawAllowance", nil)
}

// RegisterInterfaces registers the module's message implementations with the
// interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgSetVirtualReserveDefaults{},
		&MsgSetFeeParams{},
		&MsgSetAuthorizedRouter{},
		&MsgSetAuthorities{},
		&MsgSeedLiquidity{},
		&MsgBuy{},
		&MsgSell{},
		&MsgGraduatePool{},
		&MsgWithdrawAllowance{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
