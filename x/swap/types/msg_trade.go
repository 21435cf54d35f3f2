package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgBuyTokens{}
	_ sdk.Msg = &MsgSellTokens{}
	_ sdk.Msg = &MsgSellCurrency{}
	_ sdk.Msg = &MsgBuyCurrency{}
)

// MsgBuyTokens buys an exact amount of tokens for at most MaxCurrency.
type MsgBuyTokens struct {
	Buyer       string   `json:"buyer"`
	TokenId     string   `json:"token_id"`
	Tokens      math.Int `json:"tokens"`
	MaxCurrency math.Int `json:"max_currency"`
	Deadline    int64    `json:"deadline"`
}

// NewMsgBuyTokens creates a new MsgBuyTokens instance
func NewMsgBuyTokens(buyer, tokenID string, tokens, maxCurrency math.Int, deadline int64) *MsgBuyTokens {
	return &MsgBuyTokens{
		Buyer:       buyer,
		TokenId:     tokenID,
		Tokens:      tokens,
		MaxCurrency: maxCurrency,
		Deadline:    deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgBuyTokens) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgBuyTokens) Type() string { return "buy_tokens" }

// GetSigners implements the sdk.Msg interface
func (msg MsgBuyTokens) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgBuyTokens) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgBuyTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenId); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenId, "invalid token id: %s", err)
	}
	if msg.Tokens.IsNil() || !msg.Tokens.IsPositive() {
		return sdkerrors.Wrap(ErrZeroTokens, "tokens must be positive")
	}
	if msg.MaxCurrency.IsNil() || !msg.MaxCurrency.IsPositive() {
		return sdkerrors.Wrap(ErrZeroCurrency, "max currency must be positive")
	}
	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrDeadline, "deadline height cannot be negative")
	}
	return nil
}

func (msg *MsgBuyTokens) Reset()         { *msg = MsgBuyTokens{} }
func (msg *MsgBuyTokens) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgBuyTokens) ProtoMessage()      {}

// MsgSellTokens sells an exact amount of tokens for at least MinCurrency.
type MsgSellTokens struct {
	Seller      string   `json:"seller"`
	TokenId     string   `json:"token_id"`
	Tokens      math.Int `json:"tokens"`
	MinCurrency math.Int `json:"min_currency"`
	Deadline    int64    `json:"deadline"`
}

// NewMsgSellTokens creates a new MsgSellTokens instance
func NewMsgSellTokens(seller, tokenID string, tokens, minCurrency math.Int, deadline int64) *MsgSellTokens {
	return &MsgSellTokens{
		Seller:      seller,
		TokenId:     tokenID,
		Tokens:      tokens,
		MinCurrency: minCurrency,
		Deadline:    deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSellTokens) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSellTokens) Type() string { return "sell_tokens" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSellTokens) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSellTokens) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSellTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenId); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenId, "invalid token id: %s", err)
	}
	if msg.Tokens.IsNil() || !msg.Tokens.IsPositive() {
		return sdkerrors.Wrap(ErrZeroTokens, "tokens must be positive")
	}
	if msg.MinCurrency.IsNil() || !msg.MinCurrency.IsPositive() {
		return sdkerrors.Wrap(ErrZeroCurrency, "min currency must be positive")
	}
	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrDeadline, "deadline height cannot be negative")
	}
	return nil
}

func (msg *MsgSellTokens) Reset()         { *msg = MsgSellTokens{} }
func (msg *MsgSellTokens) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSellTokens) ProtoMessage()      {}

// MsgSellCurrency sells an exact amount of currency for at least MinTokens.
type MsgSellCurrency struct {
	Seller    string   `json:"seller"`
	TokenId   string   `json:"token_id"`
	Currency  math.Int `json:"currency"`
	MinTokens math.Int `json:"min_tokens"`
	Deadline  int64    `json:"deadline"`
}

// NewMsgSellCurrency creates a new MsgSellCurrency instance
func NewMsgSellCurrency(seller, tokenID string, currency, minTokens math.Int, deadline int64) *MsgSellCurrency {
	return &MsgSellCurrency{
		Seller:    seller,
		TokenId:   tokenID,
		Currency:  currency,
		MinTokens: minTokens,
		Deadline:  deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSellCurrency) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSellCurrency) Type() string { return "sell_currency" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSellCurrency) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSellCurrency) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSellCurrency) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenId); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenId, "invalid token id: %s", err)
	}
	if msg.Currency.IsNil() || !msg.Currency.IsPositive() {
		return sdkerrors.Wrap(ErrZeroCurrency, "currency must be positive")
	}
	if msg.MinTokens.IsNil() || !msg.MinTokens.IsPositive() {
		return sdkerrors.Wrap(ErrZeroTokens, "min tokens must be positive")
	}
	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrDeadline, "deadline height cannot be negative")
	}
	return nil
}

func (msg *MsgSellCurrency) Reset()         { *msg = MsgSellCurrency{} }
func (msg *MsgSellCurrency) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSellCurrency) ProtoMessage()      {}

// MsgBuyCurrency buys an exact amount of currency for at most MaxTokens.
type MsgBuyCurrency struct {
	Buyer     string   `json:"buyer"`
	TokenId   string   `json:"token_id"`
	Currency  math.Int `json:"currency"`
	MaxTokens math.Int `json:"max_tokens"`
	Deadline  int64    `json:"deadline"`
}

// NewMsgBuyCurrency creates a new MsgBuyCurrency instance
func NewMsgBuyCurrency(buyer, tokenID string, currency, maxTokens math.Int, deadline int64) *MsgBuyCurrency {
	return &MsgBuyCurrency{
		Buyer:     buyer,
		TokenId:   tokenID,
		Currency:  currency,
		MaxTokens: maxTokens,
		Deadline:  deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgBuyCurrency) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgBuyCurrency) Type() string { return "buy_currency" }

// GetSigners implements the sdk.Msg interface
func (msg MsgBuyCurrency) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgBuyCurrency) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgBuyCurrency) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.TokenId); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenId, "invalid token id: %s", err)
	}
	if msg.Currency.IsNil() || !msg.Currency.IsPositive() {
		return sdkerrors.Wrap(ErrZeroCurrency, "currency must be positive")
	}
	if msg.MaxTokens.IsNil() || !msg.MaxTokens.IsPositive() {
		return sdkerrors.Wrap(ErrZeroTokens, "max tokens must be positive")
	}
	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrDeadline, "deadline height cannot be negative")
	}
	return nil
}

func (msg *MsgBuyCurrency) Reset()         { *msg = MsgBuyCurrency{} }
func (msg *MsgBuyCurrency) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgBuyCurrency) ProtoMessage()      {}
