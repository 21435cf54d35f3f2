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

const testDenom = "unft1"

func testAddr(id byte) sdk.AccAddress {
	return sdk.AccAddress([]byte{id, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19})
}

// fundAccount gives an account generous balances on both legs
func fundAccount(k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, addr sdk.AccAddress, currency, tokens int64) {
	params := k.GetParams(ctx)
	bank.FundAccount(ctx, addr, sdk.NewCoins(
		sdk.NewCoin(params.NativeDenom, math.NewInt(currency)),
		sdk.NewCoin(testDenom, math.NewInt(tokens)),
	))
}

// setupPool creates a pool for testDenom and seeds it with a first
// deposit, returning the depositor's position id
func setupPool(t *testing.T, k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, provider sdk.AccAddress, currency, tokens int64) uint64 {
	t.Helper()

	fundAccount(k, bank, ctx, provider, currency+1, tokens)

	_, err := k.CreatePool(ctx, testDenom)
	require.NoError(t, err)

	lpTokenId, liquidity, deposited, err := k.Mint(
		ctx, provider, testDenom,
		math.NewInt(currency), math.OneInt(), math.NewInt(tokens), true)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(currency), liquidity, "first deposit mints shares 1:1 with currency")
	require.Equal(t, math.NewInt(tokens), deposited)

	return lpTokenId
}

// setNoFee switches the keeper to the fee-less configuration
func setNoFee(t *testing.T, k keeper.Keeper, ctx sdk.Context) {
	t.Helper()

	params := k.GetParams(ctx)
	params.FeeNumerator = math.NewInt(1000)
	params.FeeDenominator = math.NewInt(1000)
	require.NoError(t, k.SetParams(ctx, params))
}

// poolK returns the product of both reserves
func poolK(k keeper.Keeper, ctx sdk.Context, tokenId string) math.Int {
	quote, token := k.PoolReserves(ctx, tokenId)
	return quote.Amount.Mul(token.Amount)
}

func TestParamsRoundTrip(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	params := k.GetParams(ctx)
	require.Equal(t, types.DefaultParams(), params)

	params.FeeNumerator = math.NewInt(990)
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, math.NewInt(990), k.GetParams(ctx).FeeNumerator)
}

func TestSetParamsRejectsInvalid(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)

	params := k.GetParams(ctx)
	params.FeeNumerator = math.NewInt(1001)
	require.Error(t, k.SetParams(ctx, params), "fee above 100% must be rejected")
}
