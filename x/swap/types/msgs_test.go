package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/parami-network/chain/x/swap/types"
)

var (
	testAccount = sdk.AccAddress([]byte("addr1_______________")).String()
	testToken   = "unft1"
)

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgCreatePool
		wantErr bool
	}{
		{"valid", types.NewMsgCreatePool(testAccount, testToken), false},
		{"bad creator", types.NewMsgCreatePool("not-bech32", testToken), true},
		{"bad token id", types.NewMsgCreatePool(testAccount, "!!"), true},
		{"empty token id", types.NewMsgCreatePool(testAccount, ""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	valid := func() *types.MsgAddLiquidity {
		return types.NewMsgAddLiquidity(testAccount, testToken,
			math.NewInt(420), math.OneInt(), math.NewInt(42), 0)
	}

	require.NoError(t, valid().ValidateBasic())

	msg := valid()
	msg.Provider = "not-bech32"
	require.Error(t, msg.ValidateBasic())

	msg = valid()
	msg.Currency = math.ZeroInt()
	require.Error(t, msg.ValidateBasic())

	msg = valid()
	msg.MinLiquidity = math.NewInt(-1)
	require.Error(t, msg.ValidateBasic())

	msg = valid()
	msg.MaxTokens = math.ZeroInt()
	require.Error(t, msg.ValidateBasic())

	msg = valid()
	msg.Deadline = -1
	require.Error(t, msg.ValidateBasic())
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	valid := func() *types.MsgRemoveLiquidity {
		return types.NewMsgRemoveLiquidity(testAccount, 7, math.OneInt(), math.OneInt(), 0)
	}

	require.NoError(t, valid().ValidateBasic())

	msg := valid()
	msg.Provider = ""
	require.Error(t, msg.ValidateBasic())

	msg = valid()
	msg.MinCurrency = math.NewInt(-1)
	require.Error(t, msg.ValidateBasic())

	msg = valid()
	msg.MinTokens = math.NewInt(-1)
	require.Error(t, msg.ValidateBasic())
}

func TestTradeMsgsValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  sdk.Msg
		ok   bool
	}{
		{"buy tokens valid", types.NewMsgBuyTokens(testAccount, testToken, math.NewInt(17), math.NewInt(300), 0), true},
		{"buy tokens zero amount", types.NewMsgBuyTokens(testAccount, testToken, math.ZeroInt(), math.NewInt(300), 0), false},
		{"buy tokens zero cap", types.NewMsgBuyTokens(testAccount, testToken, math.NewInt(17), math.ZeroInt(), 0), false},
		{"sell tokens valid", types.NewMsgSellTokens(testAccount, testToken, math.NewInt(10), math.OneInt(), 0), true},
		{"sell tokens bad seller", types.NewMsgSellTokens("x", testToken, math.NewInt(10), math.OneInt(), 0), false},
		{"sell currency valid", types.NewMsgSellCurrency(testAccount, testToken, math.NewInt(100), math.OneInt(), 0), true},
		{"sell currency zero", types.NewMsgSellCurrency(testAccount, testToken, math.ZeroInt(), math.OneInt(), 0), false},
		{"buy currency valid", types.NewMsgBuyCurrency(testAccount, testToken, math.NewInt(100), math.NewInt(20), 0), true},
		{"buy currency bad token", types.NewMsgBuyCurrency(testAccount, "!!", math.NewInt(100), math.NewInt(20), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			type validator interface{ ValidateBasic() error }
			err := tt.msg.(validator).ValidateBasic()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestMsgAcquireRewardValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgAcquireReward(testAccount, 7).ValidateBasic())
	require.Error(t, types.NewMsgAcquireReward("not-bech32", 7).ValidateBasic())
}

func TestMsgSigners(t *testing.T) {
	addr, err := sdk.AccAddressFromBech32(testAccount)
	require.NoError(t, err)

	require.Equal(t, []sdk.AccAddress{addr},
		types.NewMsgCreatePool(testAccount, testToken).GetSigners())
	require.Equal(t, []sdk.AccAddress{addr},
		types.NewMsgBuyTokens(testAccount, testToken, math.NewInt(1), math.NewInt(1), 0).GetSigners())
	require.Equal(t, []sdk.AccAddress{addr},
		types.NewMsgAcquireReward(testAccount, 0).GetSigners())
}
