package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	BuyTokens(context.Context, *MsgBuyTokens) (*MsgBuyTokensResponse, error)
	SellTokens(context.Context, *MsgSellTokens) (*MsgSellTokensResponse, error)
	SellCurrency(context.Context, *MsgSellCurrency) (*MsgSellCurrencyResponse, error)
	BuyCurrency(context.Context, *MsgBuyCurrency) (*MsgBuyCurrencyResponse, error)
	AcquireReward(context.Context, *MsgAcquireReward) (*MsgAcquireRewardResponse, error)
}

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	TokenId string `json:"token_id"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	LpTokenId uint64   `json:"lp_token_id"`
	Liquidity math.Int `json:"liquidity"`
	Tokens    math.Int `json:"tokens"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	TokenId   string   `json:"token_id"`
	Liquidity math.Int `json:"liquidity"`
	Currency  math.Int `json:"currency"`
	Tokens    math.Int `json:"tokens"`
}

// MsgBuyTokensResponse defines the response for BuyTokens
type MsgBuyTokensResponse struct {
	Currency math.Int `json:"currency"`
}

// MsgSellTokensResponse defines the response for SellTokens
type MsgSellTokensResponse struct {
	Currency math.Int `json:"currency"`
}

// MsgSellCurrencyResponse defines the response for SellCurrency
type MsgSellCurrencyResponse struct {
	Tokens math.Int `json:"tokens"`
}

// MsgBuyCurrencyResponse defines the response for BuyCurrency
type MsgBuyCurrencyResponse struct {
	Tokens math.Int `json:"tokens"`
}

// MsgAcquireRewardResponse defines the response for AcquireReward
type MsgAcquireRewardResponse struct {
	Reward math.Int `json:"reward"`
}
