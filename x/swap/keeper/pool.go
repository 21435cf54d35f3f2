package keeper

import (
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/parami-network/chain/x/swap/types"
)

// GetPoolAccount derives the custodial account that holds a pool's
// reserves. The derivation is deterministic in the token denom, so the
// same pool always resolves to the same address and distinct pools
// never collide.
func GetPoolAccount(tokenId string) sdk.AccAddress {
	return address.Module(types.ModuleName, []byte(tokenId))
}

// CreatePool registers a new trading pair for the given token denom.
// The pool starts empty; reserves arrive through AddLiquidity.
func (k Keeper) CreatePool(ctx sdk.Context, tokenId string) (types.Pool, error) {
	if tokenId == k.GetParams(ctx).NativeDenom {
		return types.Pool{}, types.ErrInvalidTokenId.Wrap("cannot pool the native denom against itself")
	}
	if err := sdk.ValidateDenom(tokenId); err != nil {
		return types.Pool{}, types.ErrInvalidTokenId.Wrap(err.Error())
	}
	if k.HasPool(ctx, tokenId) {
		return types.Pool{}, types.ErrExists.Wrapf("pool for %s already created", tokenId)
	}

	pool := types.NewPool(tokenId, ctx.BlockHeight())
	k.SetPool(ctx, pool)

	k.metrics.poolsCreated.Inc()
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCreated,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
	))
	k.Logger(ctx).Info("pool created", "token_id", tokenId, "account", GetPoolAccount(tokenId).String())
	return pool, nil
}

// GetPool looks up a pool by token denom
func (k Keeper) GetPool(ctx sdk.Context, tokenId string) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(tokenId))
	if bz == nil {
		return types.Pool{}, types.ErrNotExists.Wrapf("no pool for token %s", tokenId)
	}

	var pool types.Pool
	k.cdc.MustUnmarshal(bz, &pool)
	return pool, nil
}

// HasPool reports whether a pool exists for the token denom
func (k Keeper) HasPool(ctx sdk.Context, tokenId string) bool {
	return k.getStore(ctx).Has(PoolKey(tokenId))
}

// SetPool persists a pool record
func (k Keeper) SetPool(ctx sdk.Context, pool types.Pool) {
	store := k.getStore(ctx)
	store.Set(PoolKey(pool.TokenId), k.cdc.MustMarshal(&pool))
}

// IteratePools walks all pools in denom order, stopping early when the
// callback returns true
func (k Keeper) IteratePools(ctx sdk.Context, cb func(pool types.Pool) bool) {
	store := prefix.NewStore(k.getStore(ctx), PoolKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		k.cdc.MustUnmarshal(iterator.Value(), &pool)
		if cb(pool) {
			break
		}
	}
}

// PoolReserves reads the pool account's live balances. The native side
// is the quote reserve, the pool's own denom the base reserve.
func (k Keeper) PoolReserves(ctx sdk.Context, tokenId string) (quote, token sdk.Coin) {
	params := k.GetParams(ctx)
	account := GetPoolAccount(tokenId)
	quote = k.bankKeeper.GetBalance(ctx, account, params.NativeDenom)
	token = k.bankKeeper.GetBalance(ctx, account, tokenId)
	return quote, token
}
