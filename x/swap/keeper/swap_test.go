package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/parami-network/chain/testutil/keeper"
	"github.com/parami-network/chain/x/swap/keeper"
	"github.com/parami-network/chain/x/swap/types"
)

// setupBigPool seeds a deep 10:1 pool and a funded trader
func setupBigPool(t *testing.T, k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context) sdk.AccAddress {
	t.Helper()

	setupPool(t, k, bank, ctx, testAddr(1), 10_000_000, 1_000_000)

	trader := testAddr(2)
	fundAccount(k, bank, ctx, trader, 1_000_000, 100_000)
	return trader
}

func TestTokenOut(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	trader := setupBigPool(t, k, bank, ctx)

	kBefore := poolK(k, ctx, testDenom)

	currency, err := k.TokenOut(ctx, trader, testDenom, math.NewInt(1000), math.NewInt(20000), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10041), currency)

	quote, token := k.PoolReserves(ctx, testDenom)
	require.Equal(t, math.NewInt(10_010_041), quote.Amount)
	require.Equal(t, math.NewInt(999_000), token.Amount)
	require.True(t, poolK(k, ctx, testDenom).GT(kBefore), "the fee must grow k")

	require.Equal(t, math.NewInt(101_000),
		bank.GetBalance(ctx, trader, testDenom).Amount)
}

func TestTokenIn(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	trader := setupBigPool(t, k, bank, ctx)

	kBefore := poolK(k, ctx, testDenom)

	currency, err := k.TokenIn(ctx, trader, testDenom, math.NewInt(1000), math.OneInt(), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9960), currency)

	quote, token := k.PoolReserves(ctx, testDenom)
	require.Equal(t, math.NewInt(9_990_040), quote.Amount)
	require.Equal(t, math.NewInt(1_001_000), token.Amount)
	require.True(t, poolK(k, ctx, testDenom).GT(kBefore))
}

func TestQuoteIn(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	trader := setupBigPool(t, k, bank, ctx)

	tokens, err := k.QuoteIn(ctx, trader, testDenom, math.NewInt(10000), math.OneInt(), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(996), tokens)
}

func TestQuoteOut(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	trader := setupBigPool(t, k, bank, ctx)

	tokens, err := k.QuoteOut(ctx, trader, testDenom, math.NewInt(10000), math.NewInt(2000), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1005), tokens)
}

// The second of two identical buys must settle against the reserves
// the first one left behind.
func TestSequentialPriceImpact(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	trader := setupBigPool(t, k, bank, ctx)

	first, err := k.TokenOut(ctx, trader, testDenom, math.NewInt(1000), math.NewInt(20000), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10041), first)

	second, err := k.TokenOut(ctx, trader, testDenom, math.NewInt(1000), math.NewInt(20000), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10061), second)
	require.True(t, second.GT(first))
}

// Selling tokens and immediately buying back with the proceeds must
// never return more tokens than were sold.
func TestRoundTripExtractsNothing(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	trader := setupBigPool(t, k, bank, ctx)

	currency, err := k.TokenIn(ctx, trader, testDenom, math.NewInt(1000), math.OneInt(), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9960), currency)

	tokens, err := k.QuoteIn(ctx, trader, testDenom, currency, math.OneInt(), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(994), tokens)
	require.True(t, tokens.LT(math.NewInt(1000)))
}

// With the fee switched off, k stays within integer truncation of its
// starting value and never shrinks.
func TestFeelessTrades(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	setNoFee(t, k, ctx)
	trader := setupBigPool(t, k, bank, ctx)

	tests := []struct {
		name     string
		trade    func() (math.Int, error)
		expected int64
	}{
		{
			name: "buy 1000 tokens",
			trade: func() (math.Int, error) {
				return k.TokenOut(ctx, trader, testDenom, math.NewInt(1000), math.NewInt(20000), true)
			},
			expected: 10011,
		},
		{
			name: "sell 1000 tokens",
			trade: func() (math.Int, error) {
				return k.TokenIn(ctx, trader, testDenom, math.NewInt(1000), math.OneInt(), true)
			},
			expected: 9990,
		},
		{
			name: "sell 10000 currency",
			trade: func() (math.Int, error) {
				return k.QuoteIn(ctx, trader, testDenom, math.NewInt(10000), math.OneInt(), true)
			},
			expected: 999,
		},
		{
			name: "buy 10000 currency",
			trade: func() (math.Int, error) {
				return k.QuoteOut(ctx, trader, testDenom, math.NewInt(10000), math.NewInt(2000), true)
			},
			expected: 1002,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kBefore := poolK(k, ctx, testDenom)
			got, err := tt.trade()
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tt.expected), got)
			require.True(t, poolK(k, ctx, testDenom).GTE(kBefore),
				"k must never decrease, even without a fee")
		})
	}
}

func TestTradeSlippageBounds(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	trader := setupBigPool(t, k, bank, ctx)

	_, err := k.TokenOut(ctx, trader, testDenom, math.NewInt(1000), math.NewInt(10040), true)
	require.ErrorIs(t, err, types.ErrTooExpensiveCurrency)

	_, err = k.TokenIn(ctx, trader, testDenom, math.NewInt(1000), math.NewInt(9961), true)
	require.ErrorIs(t, err, types.ErrTooLowCurrency)

	_, err = k.QuoteIn(ctx, trader, testDenom, math.NewInt(10000), math.NewInt(997), true)
	require.ErrorIs(t, err, types.ErrTooExpensiveTokens)

	_, err = k.QuoteOut(ctx, trader, testDenom, math.NewInt(10000), math.NewInt(1004), true)
	require.ErrorIs(t, err, types.ErrTooLowTokens)

	// a bounded-out trade moves nothing
	quote, token := k.PoolReserves(ctx, testDenom)
	require.Equal(t, math.NewInt(10_000_000), quote.Amount)
	require.Equal(t, math.NewInt(1_000_000), token.Amount)
}

func TestTradeAgainstEmptyPool(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	_, err := k.CreatePool(ctx, testDenom)
	require.NoError(t, err)

	trader := testAddr(2)
	_, err = k.TokenOut(ctx, trader, testDenom, math.NewInt(10), math.NewInt(1000), true)
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	_, err = k.TokenIn(ctx, trader, testDenom, math.NewInt(10), math.OneInt(), true)
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	_, err = k.QuoteIn(ctx, trader, testDenom, math.NewInt(10), math.OneInt(), true)
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	_, err = k.QuoteOut(ctx, trader, testDenom, math.NewInt(10), math.NewInt(1000), true)
	require.ErrorIs(t, err, types.ErrNoLiquidity)
}

func TestTradeAgainstAbsentPool(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	_, err := k.TokenOut(ctx, testAddr(2), "unknown", math.NewInt(10), math.NewInt(1000), true)
	require.ErrorIs(t, err, types.ErrNotExists)
}

func TestTradeInsufficientBalance(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	setupPool(t, k, bank, ctx, testAddr(1), 10_000_000, 1_000_000)

	poor := testAddr(3)
	bank.FundAccount(ctx, poor, sdk.NewCoins(sdk.NewCoin(k.GetParams(ctx).NativeDenom, math.NewInt(100))))

	_, err := k.TokenOut(ctx, poor, testDenom, math.NewInt(1000), math.NewInt(20000), true)
	require.ErrorIs(t, err, types.ErrInsufficientCurrency)

	_, err = k.TokenIn(ctx, poor, testDenom, math.NewInt(1000), math.OneInt(), true)
	require.ErrorIs(t, err, types.ErrInsufficientTokens)
}

// Every dry variant must agree with its mutating counterpart and leave
// the reserves untouched.
func TestDryQuotesMatchTrades(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	trader := setupBigPool(t, k, bank, ctx)

	dryBuy, err := k.TokenOutDry(ctx, testDenom, math.NewInt(1000))
	require.NoError(t, err)
	drySell, err := k.TokenInDry(ctx, testDenom, math.NewInt(1000))
	require.NoError(t, err)
	drySellCurrency, err := k.QuoteInDry(ctx, testDenom, math.NewInt(10000))
	require.NoError(t, err)
	dryBuyCurrency, err := k.QuoteOutDry(ctx, testDenom, math.NewInt(10000))
	require.NoError(t, err)

	// quoting moved nothing
	quote, token := k.PoolReserves(ctx, testDenom)
	require.Equal(t, math.NewInt(10_000_000), quote.Amount)
	require.Equal(t, math.NewInt(1_000_000), token.Amount)

	got, err := k.TokenOut(ctx, trader, testDenom, math.NewInt(1000), math.NewInt(20000), true)
	require.NoError(t, err)
	require.Equal(t, dryBuy, got)

	// reset to the quoted state for each remaining comparison by
	// re-deriving the quote against fresh keepers
	for _, tc := range []struct {
		name string
		dry  math.Int
		run  func(k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, trader sdk.AccAddress) (math.Int, error)
	}{
		{
			name: "sell tokens",
			dry:  drySell,
			run: func(k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, trader sdk.AccAddress) (math.Int, error) {
				return k.TokenIn(ctx, trader, testDenom, math.NewInt(1000), math.OneInt(), true)
			},
		},
		{
			name: "sell currency",
			dry:  drySellCurrency,
			run: func(k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, trader sdk.AccAddress) (math.Int, error) {
				return k.QuoteIn(ctx, trader, testDenom, math.NewInt(10000), math.OneInt(), true)
			},
		},
		{
			name: "buy currency",
			dry:  dryBuyCurrency,
			run: func(k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, trader sdk.AccAddress) (math.Int, error) {
				return k.QuoteOut(ctx, trader, testDenom, math.NewInt(10000), math.NewInt(2000), true)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			k2, bank2, ctx2 := keepertest.SwapKeeper(t)
			trader2 := setupBigPool(t, k2, bank2, ctx2)

			got, err := tc.run(k2, bank2, ctx2, trader2)
			require.NoError(t, err)
			require.Equal(t, tc.dry, got)
		})
	}
}

// Fee spread accumulates value for providers: after trading activity a
// full withdrawal returns more currency than was deposited.
func TestFeesAccrueToProviders(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	provider := testAddr(1)
	lpTokenId := setupPool(t, k, bank, ctx, provider, 10_000_000, 1_000_000)

	trader := testAddr(2)
	fundAccount(k, bank, ctx, trader, 1_000_000, 100_000)

	for i := 0; i < 5; i++ {
		_, err := k.TokenIn(ctx, trader, testDenom, math.NewInt(1000), math.OneInt(), true)
		require.NoError(t, err)
		_, err = k.QuoteIn(ctx, trader, testDenom, math.NewInt(10000), math.OneInt(), true)
		require.NoError(t, err)
	}

	_, _, currency, tokens, err := k.Burn(ctx, provider, lpTokenId, math.OneInt(), math.OneInt())
	require.NoError(t, err)

	value := currency.Mul(math.NewInt(1_000_000)).Add(tokens.Mul(math.NewInt(10_000_000)))
	deposited := math.NewInt(10_000_000).Mul(math.NewInt(1_000_000)).Add(math.NewInt(1_000_000).Mul(math.NewInt(10_000_000)))
	require.True(t, value.GT(deposited), "fee spread must leave the sole provider better off")
}
