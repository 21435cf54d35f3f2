package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the swap MsgServer
// interface for the provided Keeper
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// checkDeadline rejects a message whose deadline height has already
// been reached. A zero deadline means the caller opted out.
func checkDeadline(ctx sdk.Context, deadline int64) error {
	if deadline != 0 && ctx.BlockHeight() >= deadline {
		return types.ErrDeadline.Wrapf("deadline %d reached at height %d", deadline, ctx.BlockHeight())
	}
	return nil
}

// Handlers run the keeper operation on a branched context and write the
// branch back only on success, so a failed operation leaves no partial
// transfers or ledger updates behind.

func (m msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cacheCtx, write := ctx.CacheContext()
	pool, err := m.Keeper.CreatePool(cacheCtx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	write()

	return &types.MsgCreatePoolResponse{TokenId: pool.TokenId}, nil
}

func (m msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	cacheCtx, write := ctx.CacheContext()
	lpTokenId, liquidity, tokens, err := m.Keeper.Mint(
		cacheCtx, provider, msg.TokenId, msg.Currency, msg.MinLiquidity, msg.MaxTokens, true)
	if err != nil {
		return nil, err
	}
	write()

	return &types.MsgAddLiquidityResponse{
		LpTokenId: lpTokenId,
		Liquidity: liquidity,
		Tokens:    tokens,
	}, nil
}

func (m msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	cacheCtx, write := ctx.CacheContext()
	tokenId, liquidity, currency, tokens, err := m.Keeper.Burn(
		cacheCtx, provider, msg.LpTokenId, msg.MinCurrency, msg.MinTokens)
	if err != nil {
		return nil, err
	}
	write()

	return &types.MsgRemoveLiquidityResponse{
		TokenId:   tokenId,
		Liquidity: liquidity,
		Currency:  currency,
		Tokens:    tokens,
	}, nil
}

func (m msgServer) BuyTokens(goCtx context.Context, msg *types.MsgBuyTokens) (*types.MsgBuyTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	cacheCtx, write := ctx.CacheContext()
	currency, err := m.Keeper.TokenOut(cacheCtx, buyer, msg.TokenId, msg.Tokens, msg.MaxCurrency, true)
	if err != nil {
		return nil, err
	}
	write()

	return &types.MsgBuyTokensResponse{Currency: currency}, nil
}

func (m msgServer) SellTokens(goCtx context.Context, msg *types.MsgSellTokens) (*types.MsgSellTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	cacheCtx, write := ctx.CacheContext()
	currency, err := m.Keeper.TokenIn(cacheCtx, seller, msg.TokenId, msg.Tokens, msg.MinCurrency, true)
	if err != nil {
		return nil, err
	}
	write()

	return &types.MsgSellTokensResponse{Currency: currency}, nil
}

func (m msgServer) SellCurrency(goCtx context.Context, msg *types.MsgSellCurrency) (*types.MsgSellCurrencyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	cacheCtx, write := ctx.CacheContext()
	tokens, err := m.Keeper.QuoteIn(cacheCtx, seller, msg.TokenId, msg.Currency, msg.MinTokens, true)
	if err != nil {
		return nil, err
	}
	write()

	return &types.MsgSellCurrencyResponse{Tokens: tokens}, nil
}

func (m msgServer) BuyCurrency(goCtx context.Context, msg *types.MsgBuyCurrency) (*types.MsgBuyCurrencyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	cacheCtx, write := ctx.CacheContext()
	tokens, err := m.Keeper.QuoteOut(cacheCtx, buyer, msg.TokenId, msg.Currency, msg.MaxTokens, true)
	if err != nil {
		return nil, err
	}
	write()

	return &types.MsgBuyCurrencyResponse{Tokens: tokens}, nil
}

func (m msgServer) AcquireReward(goCtx context.Context, msg *types.MsgAcquireReward) (*types.MsgAcquireRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	cacheCtx, write := ctx.CacheContext()
	reward, err := m.Keeper.AcquireReward(cacheCtx, owner, msg.LpTokenId)
	if err != nil {
		return nil, err
	}
	write()

	return &types.MsgAcquireRewardResponse{Reward: reward}, nil
}
