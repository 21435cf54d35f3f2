package types

import (
	"cosmossdk.io/math"
)

// FarmingCurve computes the pool-wide farming reward accrued between
// two block heights. It is a pluggable policy: the swap engine scales
// the returned value by a position's share of the pool and never
// inspects the curve's internals.
type FarmingCurve interface {
	// CalculateFarmingReward returns the total reward accrued by the
	// pool over the heights (staked, current], given the pool's
	// creation height and the traded asset's current total supply.
	CalculateFarmingReward(created, staked, current int64, totalSupply math.Int) math.Int
}

// ZeroFarmingCurve pays no reward. Used by test configurations.
type ZeroFarmingCurve struct{}

func (ZeroFarmingCurve) CalculateFarmingReward(_, _, _ int64, _ math.Int) math.Int {
	return math.ZeroInt()
}

// LinearFarmingCurve emits InitialReward per block, reduced linearly as
// the asset's total supply approaches ValueBase. Once supply reaches
// ValueBase the emission is zero.
type LinearFarmingCurve struct {
	// InitialReward is the per-block pool-wide emission at zero supply
	InitialReward math.Int

	// ValueBase is the supply at which emission falls to zero
	ValueBase math.Int
}

// NewLinearFarmingCurve constructs the production curve
func NewLinearFarmingCurve(initialReward, valueBase math.Int) LinearFarmingCurve {
	return LinearFarmingCurve{
		InitialReward: initialReward,
		ValueBase:     valueBase,
	}
}

func (c LinearFarmingCurve) CalculateFarmingReward(created, staked, current int64, totalSupply math.Int) math.Int {
	if current <= staked || staked < created {
		return math.ZeroInt()
	}
	if c.ValueBase.IsNil() || !c.ValueBase.IsPositive() {
		return math.ZeroInt()
	}
	if totalSupply.GTE(c.ValueBase) {
		return math.ZeroInt()
	}

	elapsed := math.NewInt(current - staked)
	remaining := c.ValueBase.Sub(totalSupply)

	// perBlock * elapsed * remaining / valueBase, floor division
	return c.InitialReward.Mul(elapsed).Mul(remaining).Quo(c.ValueBase)
}
