package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

// The four trade variants. Reserves are the pool account's live bank
// balances, so a trade is nothing more than a pair of transfers priced
// by the engine; the curve state updates as a side effect of the coins
// moving.

// TokenOutDry quotes the currency needed to buy an exact token amount
func (k Keeper) TokenOutDry(ctx sdk.Context, tokenId string, tokens sdkmath.Int) (sdkmath.Int, error) {
	if _, err := k.GetPool(ctx, tokenId); err != nil {
		return sdkmath.Int{}, err
	}
	quote, token := k.PoolReserves(ctx, tokenId)
	return k.PriceBuy(ctx, tokens, quote.Amount, token.Amount)
}

// TokenOut buys an exact token amount from the pool, spending at most
// maxCurrency
func (k Keeper) TokenOut(
	ctx sdk.Context,
	who sdk.AccAddress,
	tokenId string,
	tokens, maxCurrency sdkmath.Int,
	keepAlive bool,
) (currency sdkmath.Int, err error) {
	currency, err = k.TokenOutDry(ctx, tokenId, tokens)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if currency.GT(maxCurrency) {
		return sdkmath.Int{}, types.ErrTooExpensiveCurrency.Wrapf(
			"buying %s tokens costs %s currency, cap is %s", tokens, currency, maxCurrency)
	}

	params := k.GetParams(ctx)
	if err := k.checkSpendable(ctx, who, params.NativeDenom, currency, keepAlive); err != nil {
		return sdkmath.Int{}, err
	}

	poolAccount := GetPoolAccount(tokenId)
	if err := k.bankKeeper.SendCoins(ctx, who, poolAccount,
		sdk.NewCoins(sdk.NewCoin(params.NativeDenom, currency))); err != nil {
		return sdkmath.Int{}, err
	}
	if err := k.bankKeeper.SendCoins(ctx, poolAccount, who,
		sdk.NewCoins(sdk.NewCoin(tokenId, tokens))); err != nil {
		return sdkmath.Int{}, err
	}

	k.afterTrade(ctx, types.EventTypeTokenBought, tokenId, who, currency, tokens)
	return currency, nil
}

// TokenInDry quotes the currency released by selling an exact token
// amount
func (k Keeper) TokenInDry(ctx sdk.Context, tokenId string, tokens sdkmath.Int) (sdkmath.Int, error) {
	if _, err := k.GetPool(ctx, tokenId); err != nil {
		return sdkmath.Int{}, err
	}
	quote, token := k.PoolReserves(ctx, tokenId)
	return k.PriceSell(ctx, tokens, token.Amount, quote.Amount)
}

// TokenIn sells an exact token amount into the pool for at least
// minCurrency
func (k Keeper) TokenIn(
	ctx sdk.Context,
	who sdk.AccAddress,
	tokenId string,
	tokens, minCurrency sdkmath.Int,
	keepAlive bool,
) (currency sdkmath.Int, err error) {
	currency, err = k.TokenInDry(ctx, tokenId, tokens)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if currency.LT(minCurrency) {
		return sdkmath.Int{}, types.ErrTooLowCurrency.Wrapf(
			"selling %s tokens yields %s currency, minimum is %s", tokens, currency, minCurrency)
	}

	if err := k.checkSpendable(ctx, who, tokenId, tokens, keepAlive); err != nil {
		return sdkmath.Int{}, err
	}

	params := k.GetParams(ctx)
	poolAccount := GetPoolAccount(tokenId)
	if err := k.bankKeeper.SendCoins(ctx, who, poolAccount,
		sdk.NewCoins(sdk.NewCoin(tokenId, tokens))); err != nil {
		return sdkmath.Int{}, err
	}
	if err := k.bankKeeper.SendCoins(ctx, poolAccount, who,
		sdk.NewCoins(sdk.NewCoin(params.NativeDenom, currency))); err != nil {
		return sdkmath.Int{}, err
	}

	k.afterTrade(ctx, types.EventTypeTokenSold, tokenId, who, currency, tokens)
	return currency, nil
}

// QuoteInDry quotes the tokens released by selling an exact currency
// amount
func (k Keeper) QuoteInDry(ctx sdk.Context, tokenId string, currency sdkmath.Int) (sdkmath.Int, error) {
	if _, err := k.GetPool(ctx, tokenId); err != nil {
		return sdkmath.Int{}, err
	}
	quote, token := k.PoolReserves(ctx, tokenId)
	return k.PriceSell(ctx, currency, quote.Amount, token.Amount)
}

// QuoteIn sells an exact currency amount into the pool for at least
// minTokens
func (k Keeper) QuoteIn(
	ctx sdk.Context,
	who sdk.AccAddress,
	tokenId string,
	currency, minTokens sdkmath.Int,
	keepAlive bool,
) (tokens sdkmath.Int, err error) {
	tokens, err = k.QuoteInDry(ctx, tokenId, currency)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if tokens.LT(minTokens) {
		return sdkmath.Int{}, types.ErrTooExpensiveTokens.Wrapf(
			"selling %s currency yields %s tokens, minimum is %s", currency, tokens, minTokens)
	}

	params := k.GetParams(ctx)
	if err := k.checkSpendable(ctx, who, params.NativeDenom, currency, keepAlive); err != nil {
		return sdkmath.Int{}, err
	}

	poolAccount := GetPoolAccount(tokenId)
	if err := k.bankKeeper.SendCoins(ctx, who, poolAccount,
		sdk.NewCoins(sdk.NewCoin(params.NativeDenom, currency))); err != nil {
		return sdkmath.Int{}, err
	}
	if err := k.bankKeeper.SendCoins(ctx, poolAccount, who,
		sdk.NewCoins(sdk.NewCoin(tokenId, tokens))); err != nil {
		return sdkmath.Int{}, err
	}

	k.afterTrade(ctx, types.EventTypeTokenBought, tokenId, who, currency, tokens)
	return tokens, nil
}

// QuoteOutDry quotes the tokens needed to buy an exact currency amount
func (k Keeper) QuoteOutDry(ctx sdk.Context, tokenId string, currency sdkmath.Int) (sdkmath.Int, error) {
	if _, err := k.GetPool(ctx, tokenId); err != nil {
		return sdkmath.Int{}, err
	}
	quote, token := k.PoolReserves(ctx, tokenId)
	return k.PriceBuy(ctx, currency, token.Amount, quote.Amount)
}

// QuoteOut buys an exact currency amount from the pool, spending at
// most maxTokens
func (k Keeper) QuoteOut(
	ctx sdk.Context,
	who sdk.AccAddress,
	tokenId string,
	currency, maxTokens sdkmath.Int,
	keepAlive bool,
) (tokens sdkmath.Int, err error) {
	tokens, err = k.QuoteOutDry(ctx, tokenId, currency)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if tokens.GT(maxTokens) {
		return sdkmath.Int{}, types.ErrTooLowTokens.Wrapf(
			"buying %s currency costs %s tokens, cap is %s", currency, tokens, maxTokens)
	}

	if err := k.checkSpendable(ctx, who, tokenId, tokens, keepAlive); err != nil {
		return sdkmath.Int{}, err
	}

	params := k.GetParams(ctx)
	poolAccount := GetPoolAccount(tokenId)
	if err := k.bankKeeper.SendCoins(ctx, who, poolAccount,
		sdk.NewCoins(sdk.NewCoin(tokenId, tokens))); err != nil {
		return sdkmath.Int{}, err
	}
	if err := k.bankKeeper.SendCoins(ctx, poolAccount, who,
		sdk.NewCoins(sdk.NewCoin(params.NativeDenom, currency))); err != nil {
		return sdkmath.Int{}, err
	}

	k.afterTrade(ctx, types.EventTypeTokenSold, tokenId, who, currency, tokens)
	return tokens, nil
}

func (k Keeper) afterTrade(ctx sdk.Context, eventType, tokenId string, who sdk.AccAddress, currency, tokens sdkmath.Int) {
	k.metrics.swaps.WithLabelValues(eventType).Inc()
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		eventType,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyAccount, who.String()),
		sdk.NewAttribute(types.AttributeKeyCurrency, currency.String()),
		sdk.NewAttribute(types.AttributeKeyTokens, tokens.String()),
	))
}
