package keeper

import (
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

// NewQuerier returns the legacy querier serving the swap module's
// read-only routes. Requests and responses travel as amino JSON.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
	server := NewQueryServerImpl(k)

	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, types.ErrNotExists.Wrap("empty query path")
		}

		switch path[0] {
		case types.QueryParams:
			return legacyQuerierCdc.MarshalJSON(k.GetParams(ctx))

		case types.QueryPool:
			var request types.QueryPoolRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &request); err != nil {
				return nil, types.ErrInvalidAmount.Wrap(err.Error())
			}
			response, err := server.Pool(ctx, &request)
			if err != nil {
				return nil, err
			}
			return legacyQuerierCdc.MarshalJSON(response)

		case types.QueryPosition:
			var request types.QueryPositionRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &request); err != nil {
				return nil, types.ErrInvalidAmount.Wrap(err.Error())
			}
			response, err := server.Position(ctx, &request)
			if err != nil {
				return nil, err
			}
			return legacyQuerierCdc.MarshalJSON(response)

		case types.QueryProvider:
			var request types.QueryProviderRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &request); err != nil {
				return nil, types.ErrInvalidAmount.Wrap(err.Error())
			}
			response, err := server.Provider(ctx, &request)
			if err != nil {
				return nil, err
			}
			return legacyQuerierCdc.MarshalJSON(response)

		case types.QueryDryAddLiquidity:
			var request types.QueryDryAddLiquidityRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &request); err != nil {
				return nil, types.ErrInvalidAmount.Wrap(err.Error())
			}
			response, err := server.DryAddLiquidity(ctx, &request)
			if err != nil {
				return nil, err
			}
			return legacyQuerierCdc.MarshalJSON(response)

		case types.QueryDryRemoveLiquidity:
			var request types.QueryDryRemoveLiquidityRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &request); err != nil {
				return nil, types.ErrInvalidAmount.Wrap(err.Error())
			}
			response, err := server.DryRemoveLiquidity(ctx, &request)
			if err != nil {
				return nil, err
			}
			return legacyQuerierCdc.MarshalJSON(response)

		case types.QueryDryBuyTokens, types.QueryDrySellTokens, types.QueryDrySellCurrency, types.QueryDryBuyCurrency:
			var request types.QueryDryTradeRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &request); err != nil {
				return nil, types.ErrInvalidAmount.Wrap(err.Error())
			}

			var response *types.QueryDryTradeResponse
			var err error
			switch path[0] {
			case types.QueryDryBuyTokens:
				response, err = server.DryBuyTokens(ctx, &request)
			case types.QueryDrySellTokens:
				response, err = server.DrySellTokens(ctx, &request)
			case types.QueryDrySellCurrency:
				response, err = server.DrySellCurrency(ctx, &request)
			default:
				response, err = server.DryBuyCurrency(ctx, &request)
			}
			if err != nil {
				return nil, err
			}
			return legacyQuerierCdc.MarshalJSON(response)

		case types.QueryReward:
			var request types.QueryRewardRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &request); err != nil {
				return nil, types.ErrInvalidAmount.Wrap(err.Error())
			}
			response, err := server.Reward(ctx, &request)
			if err != nil {
				return nil, err
			}
			return legacyQuerierCdc.MarshalJSON(response)

		default:
			return nil, types.ErrNotExists.Wrapf("unknown query path %s", path[0])
		}
	}
}
