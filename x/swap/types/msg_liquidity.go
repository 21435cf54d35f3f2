package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
)

// MsgAddLiquidity deposits currency plus tokens into a pool and mints a
// new liquidity position. The token leg is derived from the current
// reserve ratio and bounded by MaxTokens; MinLiquidity is the slippage
// floor on the minted shares.
type MsgAddLiquidity struct {
	Provider     string   `json:"provider"`
	TokenId      string   `json:"token_id"`
	Currency     math.Int `json:"currency"`
	MinLiquidity math.Int `json:"min_liquidity"`
	MaxTokens    math.Int `json:"max_tokens"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, tokenID string, currency, minLiquidity, maxTokens math.Int, deadline int64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:     provider,
		TokenId:      tokenID,
		Currency:     currency,
		MinLiquidity: minLiquidity,
		MaxTokens:    maxTokens,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenId); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenId, "invalid token id: %s", err)
	}
	if msg.Currency.IsNil() || !msg.Currency.IsPositive() {
		return sdkerrors.Wrap(ErrZeroCurrency, "currency must be positive")
	}
	if msg.MinLiquidity.IsNil() || !msg.MinLiquidity.IsPositive() {
		return sdkerrors.Wrap(ErrZeroLiquidity, "min liquidity must be positive")
	}
	if msg.MaxTokens.IsNil() || !msg.MaxTokens.IsPositive() {
		return sdkerrors.Wrap(ErrZeroTokens, "max tokens must be positive")
	}
	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrDeadline, "deadline height cannot be negative")
	}
	return nil
}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgAddLiquidity) ProtoMessage()      {}

// MsgRemoveLiquidity burns a liquidity position whole and pays out the
// proportional share of both reserves. MinCurrency and MinTokens are
// the slippage floors on the redemption legs.
type MsgRemoveLiquidity struct {
	Provider    string   `json:"provider"`
	LpTokenId   uint64   `json:"lp_token_id"`
	MinCurrency math.Int `json:"min_currency"`
	MinTokens   math.Int `json:"min_tokens"`
	Deadline    int64    `json:"deadline"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, lpTokenID uint64, minCurrency, minTokens math.Int, deadline int64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:    provider,
		LpTokenId:   lpTokenID,
		MinCurrency: minCurrency,
		MinTokens:   minTokens,
		Deadline:    deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string { return "remove_liquidity" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.MinCurrency.IsNil() || msg.MinCurrency.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min currency cannot be negative")
	}
	if msg.MinTokens.IsNil() || msg.MinTokens.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min tokens cannot be negative")
	}
	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrDeadline, "deadline height cannot be negative")
	}
	return nil
}

func (msg *MsgRemoveLiquidity) Reset()         { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgRemoveLiquidity) ProtoMessage()      {}
