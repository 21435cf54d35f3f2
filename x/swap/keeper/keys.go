package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

var (
	// PoolKeyPrefix is the prefix for pool metadata store keys
	PoolKeyPrefix = []byte{0x01}

	// NextPositionIdKey is the key for the LP position id counter
	NextPositionIdKey = []byte{0x02}

	// PositionKeyPrefix is the prefix for liquidity position store keys
	PositionKeyPrefix = []byte{0x03}

	// ProviderKeyPrefix is the prefix for the per-pool, per-account
	// aggregate share index
	ProviderKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}

	// ClaimedKeyPrefix is the prefix for claimed farming reward markers
	ClaimedKeyPrefix = []byte{0x06}
)

// PoolKey returns the store key for a pool by traded asset denom
func PoolKey(tokenID string) []byte {
	return append(PoolKeyPrefix, []byte(tokenID)...)
}

// PositionKey returns the store key for a liquidity position
func PositionKey(lpTokenID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, lpTokenID)
	return append(PositionKeyPrefix, bz...)
}

// ProviderKey returns the store key for an account's aggregate shares
// in a pool. Both components are length-prefixed: denoms may contain
// any separator character and addresses come in more than one length.
func ProviderKey(tokenID string, provider sdk.AccAddress) []byte {
	return append(ProviderKeyPoolPrefix(tokenID), address.MustLengthPrefix(provider)...)
}

// ProviderKeyPoolPrefix returns the prefix covering every provider
// entry of one pool
func ProviderKeyPoolPrefix(tokenID string) []byte {
	return append(ProviderKeyPrefix, address.MustLengthPrefix([]byte(tokenID))...)
}

// ClaimedKey returns the store key for the cumulative farming reward an
// owner has claimed against one position
func ClaimedKey(owner sdk.AccAddress, lpTokenID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, lpTokenID)
	key := append(ClaimedKeyPrefix, address.MustLengthPrefix(owner)...)
	return append(key, bz...)
}
