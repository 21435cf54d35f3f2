package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "swap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Pool is the metadata record of one swap pair. The traded asset is
// paired against the native currency; the reserves themselves are the
// bank balances of the pool's derived custodial account, not fields of
// this record.
type Pool struct {
	// TokenId is the traded asset denom (unique key)
	TokenId string `json:"token_id"`

	// Created is the block height at which the pool was created
	Created int64 `json:"created"`

	// Liquidity is the total outstanding liquidity shares across all
	// live positions of this pool
	Liquidity math.Int `json:"liquidity"`
}

// NewPool returns a pool with zero outstanding liquidity
func NewPool(tokenID string, created int64) Pool {
	return Pool{
		TokenId:   tokenID,
		Created:   created,
		Liquidity: math.ZeroInt(),
	}
}

// Validate performs stateless validation of a pool record
func (p Pool) Validate() error {
	if p.TokenId == "" {
		return ErrInvalidTokenId.Wrap("token id cannot be empty")
	}
	if p.Created < 0 {
		return ErrInvalidPoolState.Wrap("creation height cannot be negative")
	}
	if p.Liquidity.IsNil() || p.Liquidity.IsNegative() {
		return ErrInvalidPoolState.Wrap("total liquidity cannot be negative")
	}
	return nil
}

// LiquidityPosition records one liquidity-provision event. Positions
// are all-or-nothing: a position is minted whole by AddLiquidity and
// burned whole by RemoveLiquidity. A provider who deposits twice holds
// two distinct positions.
type LiquidityPosition struct {
	// Owner is the bech32 address of the account that minted the position
	Owner string `json:"owner"`

	// TokenId is the pool this position belongs to
	TokenId string `json:"token_id"`

	// Amount is the number of liquidity shares the position holds
	Amount math.Int `json:"amount"`

	// Minted is the block height at mint time
	Minted int64 `json:"minted"`
}

// Validate performs stateless validation of a position record
func (l LiquidityPosition) Validate() error {
	if l.Owner == "" {
		return ErrInvalidAddress.Wrap("position owner cannot be empty")
	}
	if l.TokenId == "" {
		return ErrInvalidTokenId.Wrap("position token id cannot be empty")
	}
	if l.Amount.IsNil() || !l.Amount.IsPositive() {
		return ErrZeroLiquidity.Wrap("position amount must be positive")
	}
	if l.Minted < 0 {
		return ErrInvalidPoolState.Wrap("mint height cannot be negative")
	}
	return nil
}
