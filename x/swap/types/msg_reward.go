package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAcquireReward{}

// MsgAcquireReward claims the farming reward accrued by one liquidity
// position. The reward is minted in the pool's traded asset.
type MsgAcquireReward struct {
	Owner     string `json:"owner"`
	LpTokenId uint64 `json:"lp_token_id"`
}

// NewMsgAcquireReward creates a new MsgAcquireReward instance
func NewMsgAcquireReward(owner string, lpTokenID uint64) *MsgAcquireReward {
	return &MsgAcquireReward{
		Owner:     owner,
		LpTokenId: lpTokenID,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAcquireReward) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAcquireReward) Type() string { return "acquire_reward" }

// GetSigners implements the sdk.Msg interface
func (msg MsgAcquireReward) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAcquireReward) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAcquireReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	return nil
}

func (msg *MsgAcquireReward) Reset()         { *msg = MsgAcquireReward{} }
func (msg *MsgAcquireReward) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgAcquireReward) ProtoMessage()      {}
