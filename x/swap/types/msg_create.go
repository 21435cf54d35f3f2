package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new swap pair for a
// traded asset. The pool starts empty; the first AddLiquidity deposit
// sets the initial exchange rate.
type MsgCreatePool struct {
	Creator string `json:"creator"`
	TokenId string `json:"token_id"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, tokenID string) *MsgCreatePool {
	return &MsgCreatePool{
		Creator: creator,
		TokenId: tokenID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string { return "create_pool" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenId); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenId, "invalid token id: %s", err)
	}
	return nil
}

func (msg *MsgCreatePool) Reset()         { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreatePool) ProtoMessage()      {}
