package keeper

import (
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

// Farming rewards. The pluggable curve yields the pool-wide reward
// accrued over a height range; each position earns its pro-rata slice,
// and a per-position marker records how much has already been paid out
// so repeated claims only mint the delta.

func (k Keeper) getClaimed(ctx sdk.Context, owner sdk.AccAddress, lpTokenId uint64) sdkmath.Int {
	bz := k.getStore(ctx).Get(ClaimedKey(owner, lpTokenId))
	if bz == nil {
		return sdkmath.ZeroInt()
	}

	var claimed sdkmath.Int
	if err := claimed.Unmarshal(bz); err != nil {
		panic(err)
	}
	return claimed
}

func (k Keeper) setClaimed(ctx sdk.Context, owner sdk.AccAddress, lpTokenId uint64, claimed sdkmath.Int) {
	bz, err := claimed.Marshal()
	if err != nil {
		panic(err)
	}
	k.getStore(ctx).Set(ClaimedKey(owner, lpTokenId), bz)
}

// CalculateReward returns the farming reward a position could claim at
// the current height
func (k Keeper) CalculateReward(ctx sdk.Context, lpTokenId uint64) (sdkmath.Int, error) {
	position, err := k.GetPosition(ctx, lpTokenId)
	if err != nil {
		return sdkmath.Int{}, err
	}
	pool, err := k.GetPool(ctx, position.TokenId)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !pool.Liquidity.IsPositive() {
		return sdkmath.ZeroInt(), nil
	}

	supply := k.bankKeeper.GetSupply(ctx, position.TokenId)
	total := k.farmingCurve.CalculateFarmingReward(
		pool.Created, position.Minted, ctx.BlockHeight(), supply.Amount)
	if !total.IsPositive() {
		return sdkmath.ZeroInt(), nil
	}

	reward, err := SafeMulDiv(total, position.Amount, pool.Liquidity)
	if err != nil {
		return sdkmath.Int{}, err
	}

	owner, err := sdk.AccAddressFromBech32(position.Owner)
	if err != nil {
		return sdkmath.Int{}, types.ErrInvalidAddress.Wrap(err.Error())
	}
	reward = reward.Sub(k.getClaimed(ctx, owner, lpTokenId))
	if reward.IsNegative() {
		return sdkmath.ZeroInt(), nil
	}
	return reward, nil
}

// AcquireReward mints a position's outstanding farming reward to its
// owner. Claiming twice in the same block is a benign no-op.
func (k Keeper) AcquireReward(ctx sdk.Context, who sdk.AccAddress, lpTokenId uint64) (sdkmath.Int, error) {
	position, err := k.GetPosition(ctx, lpTokenId)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if position.Owner != who.String() {
		return sdkmath.Int{}, types.ErrUnauthorized.Wrapf(
			"position %d is not owned by %s", lpTokenId, who)
	}

	reward, err := k.CalculateReward(ctx, lpTokenId)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !reward.IsPositive() {
		return sdkmath.ZeroInt(), nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(position.TokenId, reward))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return sdkmath.Int{}, err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, who, coins); err != nil {
		return sdkmath.Int{}, err
	}

	k.setClaimed(ctx, who, lpTokenId, k.getClaimed(ctx, who, lpTokenId).Add(reward))

	k.metrics.rewardsClaimed.Inc()
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardClaimed,
		sdk.NewAttribute(types.AttributeKeyTokenId, position.TokenId),
		sdk.NewAttribute(types.AttributeKeyLpTokenId, strconv.FormatUint(lpTokenId, 10)),
		sdk.NewAttribute(types.AttributeKeyAccount, who.String()),
		sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
	))

	return reward, nil
}
