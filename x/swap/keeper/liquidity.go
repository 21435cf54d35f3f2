package keeper

import (
	"encoding/binary"

	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

// allocatePositionId hands out the next LP position id from the global
// counter shared across all pools
func (k Keeper) allocatePositionId(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)

	var id uint64
	if bz := store.Get(NextPositionIdKey); bz != nil {
		id = binary.BigEndian.Uint64(bz)
	}

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id+1)
	store.Set(NextPositionIdKey, bz)
	return id
}

// GetNextPositionId returns the current value of the position id
// counter without advancing it
func (k Keeper) GetNextPositionId(ctx sdk.Context) uint64 {
	if bz := k.getStore(ctx).Get(NextPositionIdKey); bz != nil {
		return binary.BigEndian.Uint64(bz)
	}
	return 0
}

// SetNextPositionId seeds the position id counter, used by genesis
func (k Keeper) SetNextPositionId(ctx sdk.Context, id uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	k.getStore(ctx).Set(NextPositionIdKey, bz)
}

// GetPosition looks up a liquidity position by id
func (k Keeper) GetPosition(ctx sdk.Context, lpTokenId uint64) (types.LiquidityPosition, error) {
	bz := k.getStore(ctx).Get(PositionKey(lpTokenId))
	if bz == nil {
		return types.LiquidityPosition{}, types.ErrNotExists.Wrapf("no liquidity position %d", lpTokenId)
	}

	var position types.LiquidityPosition
	k.cdc.MustUnmarshal(bz, &position)
	return position, nil
}

// SetPosition persists a liquidity position under its id
func (k Keeper) SetPosition(ctx sdk.Context, lpTokenId uint64, position types.LiquidityPosition) {
	k.getStore(ctx).Set(PositionKey(lpTokenId), k.cdc.MustMarshal(&position))
}

func (k Keeper) removePosition(ctx sdk.Context, lpTokenId uint64) {
	k.getStore(ctx).Delete(PositionKey(lpTokenId))
}

// IteratePositions walks every liquidity position in id order, stopping
// early when the callback returns true
func (k Keeper) IteratePositions(ctx sdk.Context, cb func(lpTokenId uint64, position types.LiquidityPosition) bool) {
	store := prefix.NewStore(k.getStore(ctx), PositionKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var position types.LiquidityPosition
		k.cdc.MustUnmarshal(iterator.Value(), &position)
		if cb(binary.BigEndian.Uint64(iterator.Key()), position) {
			break
		}
	}
}

// GetProviderShares returns an account's aggregate shares in a pool,
// zero when the account holds no live positions there
func (k Keeper) GetProviderShares(ctx sdk.Context, tokenId string, provider sdk.AccAddress) sdkmath.Int {
	bz := k.getStore(ctx).Get(ProviderKey(tokenId, provider))
	if bz == nil {
		return sdkmath.ZeroInt()
	}

	var shares sdkmath.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(err)
	}
	return shares
}

func (k Keeper) setProviderShares(ctx sdk.Context, tokenId string, provider sdk.AccAddress, shares sdkmath.Int) {
	store := k.getStore(ctx)
	key := ProviderKey(tokenId, provider)

	if !shares.IsPositive() {
		store.Delete(key)
		return
	}

	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// checkSpendable verifies the account can part with amount of denom.
// For the native denom a keep-alive transfer additionally reserves the
// existential deposit.
func (k Keeper) checkSpendable(ctx sdk.Context, addr sdk.AccAddress, denom string, amount sdkmath.Int, keepAlive bool) error {
	params := k.GetParams(ctx)
	spendable := k.bankKeeper.SpendableCoins(ctx, addr).AmountOf(denom)

	if keepAlive && denom == params.NativeDenom {
		spendable = spendable.Sub(params.ExistentialDeposit)
	}

	if spendable.LT(amount) {
		if denom == params.NativeDenom {
			return types.ErrInsufficientCurrency.Wrapf(
				"account %s can spend %s%s, needs %s", addr, spendable.String(), denom, amount)
		}
		return types.ErrInsufficientTokens.Wrapf(
			"account %s can spend %s%s, needs %s", addr, spendable.String(), denom, amount)
	}
	return nil
}

// Mint deposits currency plus the matching token amount into a pool
// and issues a new liquidity position to the caller.
func (k Keeper) Mint(
	ctx sdk.Context,
	who sdk.AccAddress,
	tokenId string,
	currency, minLiquidity, maxTokens sdkmath.Int,
	keepAlive bool,
) (lpTokenId uint64, liquidity, tokens sdkmath.Int, err error) {
	tokens, liquidity, err = k.MintDry(ctx, tokenId, currency, minLiquidity, maxTokens)
	if err != nil {
		return 0, sdkmath.Int{}, sdkmath.Int{}, err
	}

	params := k.GetParams(ctx)
	if err := k.checkSpendable(ctx, who, params.NativeDenom, currency, keepAlive); err != nil {
		return 0, sdkmath.Int{}, sdkmath.Int{}, err
	}
	if err := k.checkSpendable(ctx, who, tokenId, tokens, false); err != nil {
		return 0, sdkmath.Int{}, sdkmath.Int{}, err
	}

	poolAccount := GetPoolAccount(tokenId)
	deposit := sdk.NewCoins(
		sdk.NewCoin(params.NativeDenom, currency),
		sdk.NewCoin(tokenId, tokens),
	)
	if err := k.bankKeeper.SendCoins(ctx, who, poolAccount, deposit); err != nil {
		return 0, sdkmath.Int{}, sdkmath.Int{}, err
	}

	lpTokenId = k.allocatePositionId(ctx)
	k.SetPosition(ctx, lpTokenId, types.LiquidityPosition{
		Owner:   who.String(),
		TokenId: tokenId,
		Amount:  liquidity,
		Minted:  ctx.BlockHeight(),
	})
	k.setProviderShares(ctx, tokenId, who, k.GetProviderShares(ctx, tokenId, who).Add(liquidity))

	pool, err := k.GetPool(ctx, tokenId)
	if err != nil {
		return 0, sdkmath.Int{}, sdkmath.Int{}, err
	}
	pool.Liquidity, err = SafeAdd(pool.Liquidity, liquidity)
	if err != nil {
		return 0, sdkmath.Int{}, sdkmath.Int{}, err
	}
	k.SetPool(ctx, pool)

	k.metrics.liquidityAdds.Inc()
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidityAdded,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyAccount, who.String()),
		sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity.String()),
		sdk.NewAttribute(types.AttributeKeyCurrency, currency.String()),
		sdk.NewAttribute(types.AttributeKeyTokens, tokens.String()),
	))

	return lpTokenId, liquidity, tokens, nil
}

// MintDry quotes an add-liquidity operation without moving funds or
// touching state
func (k Keeper) MintDry(
	ctx sdk.Context,
	tokenId string,
	currency, minLiquidity, maxTokens sdkmath.Int,
) (tokens, liquidity sdkmath.Int, err error) {
	if !currency.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrZeroCurrency
	}
	if !minLiquidity.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrZeroLiquidity
	}
	if !maxTokens.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrZeroTokens
	}

	tokens, liquidity, err = k.CalculateLiquidity(ctx, tokenId, currency, maxTokens)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}

	if tokens.GT(maxTokens) {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrTooExpensiveTokens.Wrapf(
			"deposit requires %s tokens, cap is %s", tokens, maxTokens)
	}
	if liquidity.LT(minLiquidity) {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrTooLowLiquidity.Wrapf(
			"deposit mints %s shares, minimum is %s", liquidity, minLiquidity)
	}
	if !tokens.IsPositive() || !liquidity.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrZeroLiquidity.Wrap("deposit too small")
	}

	return tokens, liquidity, nil
}

// Burn redeems a liquidity position in full, returning the
// proportional share of both reserves to its owner. Positions are
// all-or-nothing; there is no partial redemption.
func (k Keeper) Burn(
	ctx sdk.Context,
	who sdk.AccAddress,
	lpTokenId uint64,
	minCurrency, minTokens sdkmath.Int,
) (tokenId string, liquidity, currency, tokens sdkmath.Int, err error) {
	position, err := k.GetPosition(ctx, lpTokenId)
	if err != nil {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}
	if position.Owner != who.String() {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, types.ErrUnauthorized.Wrapf(
			"position %d is not owned by %s", lpTokenId, who)
	}

	tokens, currency, err = k.CalculateSolidness(ctx, position.TokenId, position.Amount)
	if err != nil {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}
	if currency.LT(minCurrency) {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, types.ErrTooLowCurrency.Wrapf(
			"redemption yields %s currency, minimum is %s", currency, minCurrency)
	}
	if tokens.LT(minTokens) {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, types.ErrTooLowTokens.Wrapf(
			"redemption yields %s tokens, minimum is %s", tokens, minTokens)
	}

	pool, err := k.GetPool(ctx, position.TokenId)
	if err != nil {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}
	remaining, err := SafeSub(pool.Liquidity, position.Amount)
	if err != nil {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, types.ErrInvalidPoolState.Wrapf(
			"pool %s has %s outstanding shares, position holds %s",
			pool.TokenId, pool.Liquidity, position.Amount)
	}

	k.removePosition(ctx, lpTokenId)
	k.getStore(ctx).Delete(ClaimedKey(who, lpTokenId))
	k.setProviderShares(ctx, position.TokenId, who,
		k.GetProviderShares(ctx, position.TokenId, who).Sub(position.Amount))

	pool.Liquidity = remaining
	k.SetPool(ctx, pool)

	params := k.GetParams(ctx)
	withdrawal := sdk.NewCoins(
		sdk.NewCoin(params.NativeDenom, currency),
		sdk.NewCoin(position.TokenId, tokens),
	)
	if err := k.bankKeeper.SendCoins(ctx, GetPoolAccount(position.TokenId), who, withdrawal); err != nil {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}

	k.metrics.liquidityRemoves.Inc()
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidityRemoved,
		sdk.NewAttribute(types.AttributeKeyTokenId, position.TokenId),
		sdk.NewAttribute(types.AttributeKeyAccount, who.String()),
		sdk.NewAttribute(types.AttributeKeyLiquidity, position.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyCurrency, currency.String()),
		sdk.NewAttribute(types.AttributeKeyTokens, tokens.String()),
	))

	return position.TokenId, position.Amount, currency, tokens, nil
}

// BurnDry quotes a remove-liquidity operation without redeeming the
// position
func (k Keeper) BurnDry(ctx sdk.Context, lpTokenId uint64) (tokenId string, liquidity, currency, tokens sdkmath.Int, err error) {
	position, err := k.GetPosition(ctx, lpTokenId)
	if err != nil {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}

	tokens, currency, err = k.CalculateSolidness(ctx, position.TokenId, position.Amount)
	if err != nil {
		return "", sdkmath.Int{}, sdkmath.Int{}, sdkmath.Int{}, err
	}
	return position.TokenId, position.Amount, currency, tokens, nil
}
