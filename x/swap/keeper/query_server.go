package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the swap QueryServer
// interface for the provided Keeper
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	pool, err := q.GetPool(ctx, req.TokenId)
	if err != nil {
		return nil, err
	}
	quote, token := q.PoolReserves(ctx, req.TokenId)

	return &types.QueryPoolResponse{
		Pool:    pool,
		Quote:   quote.Amount,
		Token:   token.Amount,
		Account: GetPoolAccount(req.TokenId).String(),
	}, nil
}

func (q queryServer) Position(goCtx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	position, err := q.GetPosition(ctx, req.LpTokenId)
	if err != nil {
		return nil, err
	}
	return &types.QueryPositionResponse{Position: position}, nil
}

func (q queryServer) Provider(goCtx context.Context, req *types.QueryProviderRequest) (*types.QueryProviderResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	account, err := sdk.AccAddressFromBech32(req.Account)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	return &types.QueryProviderResponse{
		Liquidity: q.GetProviderShares(ctx, req.TokenId, account),
	}, nil
}

func (q queryServer) DryAddLiquidity(goCtx context.Context, req *types.QueryDryAddLiquidityRequest) (*types.QueryDryAddLiquidityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	tokens, liquidity, err := q.MintDry(ctx, req.TokenId, req.Currency, sdkmath.OneInt(), req.MaxTokens)
	if err != nil {
		return nil, err
	}
	return &types.QueryDryAddLiquidityResponse{Tokens: tokens, Liquidity: liquidity}, nil
}

func (q queryServer) DryRemoveLiquidity(goCtx context.Context, req *types.QueryDryRemoveLiquidityRequest) (*types.QueryDryRemoveLiquidityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	tokenId, liquidity, currency, tokens, err := q.BurnDry(ctx, req.LpTokenId)
	if err != nil {
		return nil, err
	}
	return &types.QueryDryRemoveLiquidityResponse{
		TokenId:   tokenId,
		Liquidity: liquidity,
		Currency:  currency,
		Tokens:    tokens,
	}, nil
}

func (q queryServer) DryBuyTokens(goCtx context.Context, req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	currency, err := q.TokenOutDry(ctx, req.TokenId, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.QueryDryTradeResponse{Amount: currency}, nil
}

func (q queryServer) DrySellTokens(goCtx context.Context, req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	currency, err := q.TokenInDry(ctx, req.TokenId, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.QueryDryTradeResponse{Amount: currency}, nil
}

func (q queryServer) DrySellCurrency(goCtx context.Context, req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	tokens, err := q.QuoteInDry(ctx, req.TokenId, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.QueryDryTradeResponse{Amount: tokens}, nil
}

func (q queryServer) DryBuyCurrency(goCtx context.Context, req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	tokens, err := q.QuoteOutDry(ctx, req.TokenId, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.QueryDryTradeResponse{Amount: tokens}, nil
}

func (q queryServer) Reward(goCtx context.Context, req *types.QueryRewardRequest) (*types.QueryRewardResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	position, err := q.GetPosition(ctx, req.LpTokenId)
	if err != nil {
		return nil, err
	}
	reward, err := q.CalculateReward(ctx, req.LpTokenId)
	if err != nil {
		return nil, err
	}
	return &types.QueryRewardResponse{TokenId: position.TokenId, Reward: reward}, nil
}
