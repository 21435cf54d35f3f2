package types

import (
	"context"

	"cosmossdk.io/math"
)

// Query routes served through the legacy querier
const (
	QueryParams             = "params"
	QueryPool               = "pool"
	QueryPosition           = "position"
	QueryProvider           = "provider"
	QueryDryAddLiquidity    = "dry-add-liquidity"
	QueryDryRemoveLiquidity = "dry-remove-liquidity"
	QueryDryBuyTokens       = "dry-buy-tokens"
	QueryDrySellTokens      = "dry-sell-tokens"
	QueryDrySellCurrency    = "dry-sell-currency"
	QueryDryBuyCurrency     = "dry-buy-currency"
	QueryReward             = "reward"
)

// QueryServer exposes the read-only interface of the swap module,
// including the dry-run quoting variants of every mutating operation.
type QueryServer interface {
	Pool(ctx context.Context, req *QueryPoolRequest) (*QueryPoolResponse, error)
	Position(ctx context.Context, req *QueryPositionRequest) (*QueryPositionResponse, error)
	Provider(ctx context.Context, req *QueryProviderRequest) (*QueryProviderResponse, error)
	DryAddLiquidity(ctx context.Context, req *QueryDryAddLiquidityRequest) (*QueryDryAddLiquidityResponse, error)
	DryRemoveLiquidity(ctx context.Context, req *QueryDryRemoveLiquidityRequest) (*QueryDryRemoveLiquidityResponse, error)
	DryBuyTokens(ctx context.Context, req *QueryDryTradeRequest) (*QueryDryTradeResponse, error)
	DrySellTokens(ctx context.Context, req *QueryDryTradeRequest) (*QueryDryTradeResponse, error)
	DrySellCurrency(ctx context.Context, req *QueryDryTradeRequest) (*QueryDryTradeResponse, error)
	DryBuyCurrency(ctx context.Context, req *QueryDryTradeRequest) (*QueryDryTradeResponse, error)
	Reward(ctx context.Context, req *QueryRewardRequest) (*QueryRewardResponse, error)
}

// QueryPoolRequest asks for one pool's metadata and reserves
type QueryPoolRequest struct {
	TokenId string `json:"token_id"`
}

// QueryPoolResponse carries pool metadata plus the custodial reserves
type QueryPoolResponse struct {
	Pool    Pool     `json:"pool"`
	Quote   math.Int `json:"quote"`
	Token   math.Int `json:"token"`
	Account string   `json:"account"`
}

// QueryPositionRequest asks for one liquidity position
type QueryPositionRequest struct {
	LpTokenId uint64 `json:"lp_token_id"`
}

// QueryPositionResponse carries one liquidity position
type QueryPositionResponse struct {
	Position LiquidityPosition `json:"position"`
}

// QueryProviderRequest asks for an account's aggregate shares in a pool
type QueryProviderRequest struct {
	TokenId string `json:"token_id"`
	Account string `json:"account"`
}

// QueryProviderResponse carries the aggregate share count
type QueryProviderResponse struct {
	Liquidity math.Int `json:"liquidity"`
}

// QueryDryAddLiquidityRequest quotes an AddLiquidity call
type QueryDryAddLiquidityRequest struct {
	TokenId   string   `json:"token_id"`
	Currency  math.Int `json:"currency"`
	MaxTokens math.Int `json:"max_tokens"`
}

// QueryDryAddLiquidityResponse carries the quoted mint outcome
type QueryDryAddLiquidityResponse struct {
	Tokens    math.Int `json:"tokens"`
	Liquidity math.Int `json:"liquidity"`
}

// QueryDryRemoveLiquidityRequest quotes a RemoveLiquidity call
type QueryDryRemoveLiquidityRequest struct {
	LpTokenId uint64 `json:"lp_token_id"`
}

// QueryDryRemoveLiquidityResponse carries the quoted burn outcome
type QueryDryRemoveLiquidityResponse struct {
	TokenId   string   `json:"token_id"`
	Liquidity math.Int `json:"liquidity"`
	Currency  math.Int `json:"currency"`
	Tokens    math.Int `json:"tokens"`
}

// QueryDryTradeRequest quotes one of the four trade variants. Amount is
// the exact leg of the trade: tokens for buy-tokens/sell-tokens,
// currency for sell-currency/buy-currency.
type QueryDryTradeRequest struct {
	TokenId string   `json:"token_id"`
	Amount  math.Int `json:"amount"`
}

// QueryDryTradeResponse carries the quoted opposite leg
type QueryDryTradeResponse struct {
	Amount math.Int `json:"amount"`
}

// QueryRewardRequest asks for the claimable farming reward of a position
type QueryRewardRequest struct {
	LpTokenId uint64 `json:"lp_token_id"`
}

// QueryRewardResponse carries the claimable reward
type QueryRewardResponse struct {
	TokenId string   `json:"token_id"`
	Reward  math.Int `json:"reward"`
}
