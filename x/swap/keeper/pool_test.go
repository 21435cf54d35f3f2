package keeper_test

import (
	"fmt"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/parami-network/chain/testutil/keeper"
	"github.com/parami-network/chain/x/swap/keeper"
	"github.com/parami-network/chain/x/swap/types"
)

func TestCreatePool(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)
	ctx = ctx.WithBlockHeight(7)

	pool, err := k.CreatePool(ctx, testDenom)
	require.NoError(t, err)
	require.Equal(t, testDenom, pool.TokenId)
	require.Equal(t, int64(7), pool.Created)
	require.True(t, pool.Liquidity.IsZero())

	stored, err := k.GetPool(ctx, testDenom)
	require.NoError(t, err)
	require.Equal(t, pool, stored)
}

func TestCreatePoolDuplicate(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	first, err := k.CreatePool(ctx, testDenom)
	require.NoError(t, err)

	_, err = k.CreatePool(ctx, testDenom)
	require.ErrorIs(t, err, types.ErrExists)

	// the first pool is untouched by the failed attempt
	stored, err := k.GetPool(ctx, testDenom)
	require.NoError(t, err)
	require.Equal(t, first, stored)
}

func TestCreatePoolRejectsNativeDenom(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	_, err := k.CreatePool(ctx, k.GetParams(ctx).NativeDenom)
	require.ErrorIs(t, err, types.ErrInvalidTokenId)
}

func TestCreatePoolRejectsMalformedDenom(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	_, err := k.CreatePool(ctx, "!!bad denom!!")
	require.ErrorIs(t, err, types.ErrInvalidTokenId)
}

func TestGetPoolAbsent(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	_, err := k.GetPool(ctx, "unknown")
	require.ErrorIs(t, err, types.ErrNotExists)
	require.False(t, k.HasPool(ctx, "unknown"))
}

func TestIteratePools(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	for _, denom := range []string{"utoken1", "utoken2", "utoken3"} {
		_, err := k.CreatePool(ctx, denom)
		require.NoError(t, err)
	}

	var seen []string
	k.IteratePools(ctx, func(pool types.Pool) bool {
		seen = append(seen, pool.TokenId)
		return false
	})
	require.Equal(t, []string{"utoken1", "utoken2", "utoken3"}, seen)

	// early stop
	var count int
	k.IteratePools(ctx, func(types.Pool) bool {
		count++
		return count == 2
	})
	require.Equal(t, 2, count)
}

// TestPoolAccountDerivation verifies the custodial account derivation
// is deterministic and collision-free over a large id range.
func TestPoolAccountDerivation(t *testing.T) {
	require.Equal(t, keeper.GetPoolAccount(testDenom), keeper.GetPoolAccount(testDenom))

	seen := make(map[string]string, 400000)
	for i := 1; i <= 400000; i++ {
		denom := fmt.Sprintf("utoken%d", i)
		addr := keeper.GetPoolAccount(denom).String()
		if prev, ok := seen[addr]; ok {
			t.Fatalf("pool account collision: %s and %s both derive %s", prev, denom, addr)
		}
		seen[addr] = denom
	}
}

func TestPoolReserves(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	setupPool(t, k, bank, ctx, testAddr(1), 420, 42)

	quote, token := k.PoolReserves(ctx, testDenom)
	require.Equal(t, math.NewInt(420), quote.Amount)
	require.Equal(t, math.NewInt(42), token.Amount)
}
