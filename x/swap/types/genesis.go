package types

import (
	"fmt"
)

// GenesisPosition is one exported liquidity position keyed by its id
type GenesisPosition struct {
	LpTokenId uint64            `json:"lp_token_id"`
	Position  LiquidityPosition `json:"position"`
}

// GenesisState defines the swap module's genesis state. Pool liquidity
// totals and the provider index are derived from the positions during
// InitGenesis rather than exported redundantly.
type GenesisState struct {
	Params         Params            `json:"params"`
	Pools          []Pool            `json:"pools"`
	Positions      []GenesisPosition `json:"positions"`
	NextPositionId uint64            `json:"next_position_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		Pools:          []Pool{},
		Positions:      []GenesisPosition{},
		NextPositionId: 0,
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	pools := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if _, ok := pools[pool.TokenId]; ok {
			return fmt.Errorf("duplicate pool for token id %s", pool.TokenId)
		}
		pools[pool.TokenId] = struct{}{}
	}

	seen := make(map[uint64]struct{}, len(gs.Positions))
	for _, gp := range gs.Positions {
		if gp.LpTokenId >= gs.NextPositionId {
			return fmt.Errorf("position id %d must be below next position id %d", gp.LpTokenId, gs.NextPositionId)
		}
		if _, ok := seen[gp.LpTokenId]; ok {
			return fmt.Errorf("duplicate position id %d", gp.LpTokenId)
		}
		seen[gp.LpTokenId] = struct{}{}
		if err := gp.Position.Validate(); err != nil {
			return err
		}
	}

	return nil
}
