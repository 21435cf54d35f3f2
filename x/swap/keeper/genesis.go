package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

// InitGenesis seeds module state from a genesis snapshot. Pool
// liquidity totals and the provider index are rebuilt from the exported
// positions, so the snapshot cannot smuggle in inconsistent aggregates.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, pool := range genState.Pools {
		pool.Liquidity = sdkmath.ZeroInt()
		k.SetPool(ctx, pool)
	}
	k.SetNextPositionId(ctx, genState.NextPositionId)

	for _, gp := range genState.Positions {
		pool, err := k.GetPool(ctx, gp.Position.TokenId)
		if err != nil {
			panic(fmt.Errorf("position %d references unknown pool %s", gp.LpTokenId, gp.Position.TokenId))
		}

		owner, err := sdk.AccAddressFromBech32(gp.Position.Owner)
		if err != nil {
			panic(err)
		}

		k.SetPosition(ctx, gp.LpTokenId, gp.Position)
		k.setProviderShares(ctx, gp.Position.TokenId, owner,
			k.GetProviderShares(ctx, gp.Position.TokenId, owner).Add(gp.Position.Amount))

		pool.Liquidity = pool.Liquidity.Add(gp.Position.Amount)
		k.SetPool(ctx, pool)
	}
}

// ExportGenesis returns the module's full state for a genesis export
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := types.GenesisState{
		Params:         k.GetParams(ctx),
		Pools:          []types.Pool{},
		Positions:      []types.GenesisPosition{},
		NextPositionId: k.GetNextPositionId(ctx),
	}

	k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		return false
	})
	k.IteratePositions(ctx, func(lpTokenId uint64, position types.LiquidityPosition) bool {
		genState.Positions = append(genState.Positions, types.GenesisPosition{
			LpTokenId: lpTokenId,
			Position:  position,
		})
		return false
	})

	return &genState
}
