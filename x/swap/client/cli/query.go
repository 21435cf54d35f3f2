package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/parami-network/chain/x/swap/types"
)

// GetQueryCmd returns the cli query commands for the swap module
func GetQueryCmd() *cobra.Command {
	swapQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the swap module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	swapQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPosition(),
		GetCmdQueryProvider(),
		GetCmdQueryReward(),
		GetCmdDryAddLiquidity(),
		GetCmdDryRemoveLiquidity(),
		GetCmdDryTrade(types.QueryDryBuyTokens, "Quote the currency cost of buying an exact token amount"),
		GetCmdDryTrade(types.QueryDrySellTokens, "Quote the currency yield of selling an exact token amount"),
		GetCmdDryTrade(types.QueryDrySellCurrency, "Quote the token yield of selling an exact currency amount"),
		GetCmdDryTrade(types.QueryDryBuyCurrency, "Quote the token cost of buying an exact currency amount"),
	)

	return swapQueryCmd
}

func queryRoute(route string) string {
	return fmt.Sprintf("custom/%s/%s", types.QuerierRoute, route)
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current swap module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryParams), nil)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query one pool's metadata and
// reserves
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [token-id]",
		Short: "Query a pool's metadata and reserves",
		Long: `Query a pool's metadata, custodial account, and live reserves.

Example:
  $ paramid query swap pool unft1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.QueryPoolRequest{TokenId: args[0]})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryPool), bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPosition returns the command to query one liquidity
// position
func GetCmdQueryPosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position [lp-token-id]",
		Short: "Query a liquidity position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			lpTokenId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lp-token-id: %s", args[0])
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.QueryPositionRequest{LpTokenId: lpTokenId})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryPosition), bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProvider returns the command to query an account's
// aggregate shares in a pool
func GetCmdQueryProvider() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider [token-id] [account]",
		Short: "Query an account's aggregate liquidity shares in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.QueryProviderRequest{
				TokenId: args[0],
				Account: args[1],
			})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryProvider), bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryReward returns the command to query a position's claimable
// farming reward
func GetCmdQueryReward() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward [lp-token-id]",
		Short: "Query the claimable farming reward of a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			lpTokenId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lp-token-id: %s", args[0])
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.QueryRewardRequest{LpTokenId: lpTokenId})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryReward), bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdDryAddLiquidity returns the command to quote an add-liquidity
// deposit
func GetCmdDryAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dry-add-liquidity [token-id] [currency] [max-tokens]",
		Short: "Quote the token amount and shares of an add-liquidity deposit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			currency, err := parseAmount(args[1], "currency")
			if err != nil {
				return err
			}
			maxTokens, err := parseAmount(args[2], "max-tokens")
			if err != nil {
				return err
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.QueryDryAddLiquidityRequest{
				TokenId:   args[0],
				Currency:  currency,
				MaxTokens: maxTokens,
			})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryDryAddLiquidity), bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdDryRemoveLiquidity returns the command to quote a position
// redemption
func GetCmdDryRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dry-remove-liquidity [lp-token-id]",
		Short: "Quote the redemption value of a liquidity position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			lpTokenId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lp-token-id: %s", args[0])
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.QueryDryRemoveLiquidityRequest{LpTokenId: lpTokenId})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryDryRemoveLiquidity), bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdDryTrade returns the command for one of the four trade quotes.
// The route name doubles as the command name.
func GetCmdDryTrade(route, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [token-id] [amount]", route),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amount, err := parseAmount(args[1], "amount")
			if err != nil {
				return err
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.QueryDryTradeRequest{
				TokenId: args[0],
				Amount:  amount,
			})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryRoute(route), bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
