package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterLegacyAminoCodec registers the module's concrete types
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "swap/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "swap/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "swap/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgBuyTokens{}, "swap/MsgBuyTokens", nil)
	cdc.RegisterConcrete(&MsgSellTokens{}, "swap/MsgSellTokens", nil)
	cdc.RegisterConcrete(&MsgSellCurrency{}, "swap/MsgSellCurrency", nil)
	cdc.RegisterConcrete(&MsgBuyCurrency{}, "swap/MsgBuyCurrency", nil)
	cdc.RegisterConcrete(&MsgAcquireReward{}, "swap/MsgAcquireReward", nil)
}

// ModuleCdc is the module-wide amino codec, used for sign bytes and for
// the keeper's stored records
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
