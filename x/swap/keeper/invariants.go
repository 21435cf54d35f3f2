package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

// RegisterInvariants registers the swap module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "liquidity-supply", LiquiditySupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "provider-index", ProviderIndexInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
}

// LiquiditySupplyInvariant checks that each pool's outstanding share
// count equals the sum of its live position amounts
func LiquiditySupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sums := make(map[string]sdkmath.Int)
		k.IteratePositions(ctx, func(_ uint64, position types.LiquidityPosition) bool {
			sum, ok := sums[position.TokenId]
			if !ok {
				sum = sdkmath.ZeroInt()
			}
			sums[position.TokenId] = sum.Add(position.Amount)
			return false
		})

		var broken bool
		var msg string
		k.IteratePools(ctx, func(pool types.Pool) bool {
			sum, ok := sums[pool.TokenId]
			if !ok {
				sum = sdkmath.ZeroInt()
			}
			if !pool.Liquidity.Equal(sum) {
				broken = true
				msg += fmt.Sprintf(
					"\tpool %s: %s outstanding shares, positions sum to %s\n",
					pool.TokenId, pool.Liquidity, sum)
			}
			delete(sums, pool.TokenId)
			return false
		})
		for tokenId := range sums {
			broken = true
			msg += fmt.Sprintf("\tpositions reference unknown pool %s\n", tokenId)
		}

		return sdk.FormatInvariant(types.ModuleName, "liquidity-supply",
			fmt.Sprintf("pool share supply mismatch\n%s", msg)), broken
	}
}

// ProviderIndexInvariant checks that every provider index entry equals
// the sum of that account's live position amounts for the pool
func ProviderIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		type providerKey struct {
			tokenId string
			owner   string
		}

		sums := make(map[providerKey]sdkmath.Int)
		k.IteratePositions(ctx, func(_ uint64, position types.LiquidityPosition) bool {
			key := providerKey{tokenId: position.TokenId, owner: position.Owner}
			sum, ok := sums[key]
			if !ok {
				sum = sdkmath.ZeroInt()
			}
			sums[key] = sum.Add(position.Amount)
			return false
		})

		var broken bool
		var msg string
		for key, sum := range sums {
			owner, err := sdk.AccAddressFromBech32(key.owner)
			if err != nil {
				broken = true
				msg += fmt.Sprintf("\tposition with malformed owner %q\n", key.owner)
				continue
			}
			indexed := k.GetProviderShares(ctx, key.tokenId, owner)
			if !indexed.Equal(sum) {
				broken = true
				msg += fmt.Sprintf(
					"\tprovider %s in pool %s: index holds %s, positions sum to %s\n",
					key.owner, key.tokenId, indexed, sum)
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "provider-index",
			fmt.Sprintf("provider index mismatch\n%s", msg)), broken
	}
}

// ReserveBackingInvariant checks that every pool with outstanding
// shares holds a positive reserve on both legs
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string

		k.IteratePools(ctx, func(pool types.Pool) bool {
			if pool.Liquidity.IsNegative() {
				broken = true
				msg += fmt.Sprintf("\tpool %s has negative share supply %s\n", pool.TokenId, pool.Liquidity)
				return false
			}
			if !pool.Liquidity.IsPositive() {
				return false
			}

			quote, token := k.PoolReserves(ctx, pool.TokenId)
			if !quote.Amount.IsPositive() || !token.Amount.IsPositive() {
				broken = true
				msg += fmt.Sprintf(
					"\tpool %s has %s shares but reserves (%s, %s)\n",
					pool.TokenId, pool.Liquidity, quote.Amount, token.Amount)
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "reserve-backing",
			fmt.Sprintf("unbacked pool reserves\n%s", msg)), broken
	}
}
