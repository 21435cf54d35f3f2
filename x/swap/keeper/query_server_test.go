package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/stretchr/testify/require"

	keepertest "github.com/parami-network/chain/testutil/keeper"
	"github.com/parami-network/chain/x/swap/keeper"
	"github.com/parami-network/chain/x/swap/types"
)

func TestQueryPool(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	server := keeper.NewQueryServerImpl(k)
	setupPool(t, k, bank, ctx, testAddr(1), 420, 42)

	res, err := server.Pool(ctx, &types.QueryPoolRequest{TokenId: testDenom})
	require.NoError(t, err)
	require.Equal(t, testDenom, res.Pool.TokenId)
	require.Equal(t, math.NewInt(420), res.Pool.Liquidity)
	require.Equal(t, math.NewInt(420), res.Quote)
	require.Equal(t, math.NewInt(42), res.Token)
	require.Equal(t, keeper.GetPoolAccount(testDenom).String(), res.Account)

	_, err = server.Pool(ctx, &types.QueryPoolRequest{TokenId: "unknown"})
	require.ErrorIs(t, err, types.ErrNotExists)
}

func TestQueryPositionAndProvider(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	server := keeper.NewQueryServerImpl(k)
	provider := testAddr(1)
	lpTokenId := setupPool(t, k, bank, ctx, provider, 420, 42)

	posRes, err := server.Position(ctx, &types.QueryPositionRequest{LpTokenId: lpTokenId})
	require.NoError(t, err)
	require.Equal(t, provider.String(), posRes.Position.Owner)
	require.Equal(t, math.NewInt(420), posRes.Position.Amount)

	provRes, err := server.Provider(ctx, &types.QueryProviderRequest{
		TokenId: testDenom,
		Account: provider.String(),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(420), provRes.Liquidity)

	// an address with no positions reads as zero, not an error
	provRes, err = server.Provider(ctx, &types.QueryProviderRequest{
		TokenId: testDenom,
		Account: testAddr(9).String(),
	})
	require.NoError(t, err)
	require.True(t, provRes.Liquidity.IsZero())
}

func TestQueryDryTrades(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	server := keeper.NewQueryServerImpl(k)
	setupPool(t, k, bank, ctx, testAddr(1), 420, 42)

	tests := []struct {
		name     string
		run      func(req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error)
		amount   int64
		expected int64
	}{
		{"buy tokens", func(req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error) {
			return server.DryBuyTokens(ctx, req)
		}, 17, 290},
		{"sell tokens", func(req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error) {
			return server.DrySellTokens(ctx, req)
		}, 10, 79},
		{"sell currency", func(req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error) {
			return server.DrySellCurrency(ctx, req)
		}, 100, 6},
		{"buy currency", func(req *types.QueryDryTradeRequest) (*types.QueryDryTradeResponse, error) {
			return server.DryBuyCurrency(ctx, req)
		}, 100, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.run(&types.QueryDryTradeRequest{
				TokenId: testDenom,
				Amount:  math.NewInt(tt.amount),
			})
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tt.expected), res.Amount)
		})
	}
}

func TestQueryDryLiquidity(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	server := keeper.NewQueryServerImpl(k)
	lpTokenId := setupPool(t, k, bank, ctx, testAddr(1), 420, 42)

	addRes, err := server.DryAddLiquidity(ctx, &types.QueryDryAddLiquidityRequest{
		TokenId:   testDenom,
		Currency:  math.NewInt(100),
		MaxTokens: math.NewInt(42),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), addRes.Tokens)
	require.Equal(t, math.NewInt(100), addRes.Liquidity)

	removeRes, err := server.DryRemoveLiquidity(ctx, &types.QueryDryRemoveLiquidityRequest{
		LpTokenId: lpTokenId,
	})
	require.NoError(t, err)
	require.Equal(t, testDenom, removeRes.TokenId)
	require.Equal(t, math.NewInt(420), removeRes.Currency)
	require.Equal(t, math.NewInt(42), removeRes.Tokens)
}

func TestQueryReward(t *testing.T) {
	curve := types.NewLinearFarmingCurve(math.NewInt(1000), math.NewInt(1_000_000))
	k, bank, ctx := keepertest.SwapKeeperWithCurve(t, curve)
	server := keeper.NewQueryServerImpl(k)
	lpTokenId := setupPool(t, k, bank, ctx, testAddr(1), 420, 42)

	res, err := server.Reward(ctx.WithBlockHeight(11), &types.QueryRewardRequest{LpTokenId: lpTokenId})
	require.NoError(t, err)
	require.Equal(t, testDenom, res.TokenId)
	require.Equal(t, math.NewInt(9999), res.Reward)
}

// The legacy querier must route every path and round-trip through the
// amino codec.
func TestLegacyQuerierRoutes(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	setupPool(t, k, bank, ctx, testAddr(1), 420, 42)

	cdc := codec.NewLegacyAmino()
	types.RegisterLegacyAminoCodec(cdc)
	querier := keeper.NewQuerier(k, cdc)

	bz, err := cdc.MarshalJSON(types.QueryPoolRequest{TokenId: testDenom})
	require.NoError(t, err)
	res, err := querier(ctx, []string{types.QueryPool}, abci.RequestQuery{Data: bz})
	require.NoError(t, err)

	var poolRes types.QueryPoolResponse
	require.NoError(t, cdc.UnmarshalJSON(res, &poolRes))
	require.Equal(t, math.NewInt(420), poolRes.Quote)

	bz, err = cdc.MarshalJSON(types.QueryDryTradeRequest{TokenId: testDenom, Amount: math.NewInt(17)})
	require.NoError(t, err)
	res, err = querier(ctx, []string{types.QueryDryBuyTokens}, abci.RequestQuery{Data: bz})
	require.NoError(t, err)

	var tradeRes types.QueryDryTradeResponse
	require.NoError(t, cdc.UnmarshalJSON(res, &tradeRes))
	require.Equal(t, math.NewInt(290), tradeRes.Amount)

	res, err = querier(ctx, []string{types.QueryParams}, abci.RequestQuery{})
	require.NoError(t, err)

	var params types.Params
	require.NoError(t, cdc.UnmarshalJSON(res, &params))
	require.Equal(t, types.DefaultParams(), params)

	_, err = querier(ctx, []string{"bogus"}, abci.RequestQuery{})
	require.ErrorIs(t, err, types.ErrNotExists)
}
