package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/parami-network/chain/x/swap/types"
)

// GetTxCmd returns the transaction commands for the swap module
func GetTxCmd() *cobra.Command {
	swapTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Swap transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	swapTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdBuyTokens(),
		CmdSellTokens(),
		CmdSellCurrency(),
		CmdBuyCurrency(),
		CmdAcquireReward(),
	)

	return swapTxCmd
}

func parseAmount(arg, name string) (math.Int, error) {
	amount, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	if !amount.IsPositive() {
		return math.Int{}, fmt.Errorf("%s must be positive", name)
	}
	return amount, nil
}

// parseMinAmount accepts zero, which disables the bound.
func parseMinAmount(arg, name string) (math.Int, error) {
	amount, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	if amount.IsNegative() {
		return math.Int{}, fmt.Errorf("%s cannot be negative", name)
	}
	return amount, nil
}

// CmdCreatePool returns a CLI command handler for creating a swap pair
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-id]",
		Short: "Create a new swap pair for a token",
		Long: `Create a new swap pair trading the given token against the native currency.
The pool starts empty; the first add-liquidity deposit sets the initial rate.

Example:
  $ paramid tx swap create-pool unft1 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [token-id] [currency] [min-liquidity] [max-tokens]",
		Short: "Deposit currency and tokens into a pool",
		Long: `Deposit currency plus the matching token amount into a pool, minting a
new liquidity position. The token amount follows the current reserve ratio
and is capped by max-tokens; min-liquidity bounds the minted shares.

Example:
  $ paramid tx swap add-liquidity unft1 420 1 42 --from mykey
  $ paramid tx swap add-liquidity unft1 420 1 42 --deadline 1200 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			currency, err := parseAmount(args[1], "currency")
			if err != nil {
				return err
			}
			minLiquidity, err := parseAmount(args[2], "min-liquidity")
			if err != nil {
				return err
			}
			maxTokens, err := parseAmount(args[3], "max-tokens")
			if err != nil {
				return err
			}
			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgAddLiquidity(
				clientCtx.GetFromAddress().String(), args[0],
				currency, minLiquidity, maxTokens, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "Reject the transaction at or beyond this block height")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for redeeming a
// liquidity position
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [lp-token-id] [min-currency] [min-tokens]",
		Short: "Redeem a liquidity position in full",
		Long: `Redeem a liquidity position, returning the proportional share of both
reserves. Positions are all-or-nothing; there is no partial redemption.
A zero minimum disables that bound.

Example:
  $ paramid tx swap remove-liquidity 7 400 40 --from mykey
  $ paramid tx swap remove-liquidity 7 0 0 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			lpTokenId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lp-token-id: %s", args[0])
			}
			minCurrency, err := parseMinAmount(args[1], "min-currency")
			if err != nil {
				return err
			}
			minTokens, err := parseMinAmount(args[2], "min-tokens")
			if err != nil {
				return err
			}
			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgRemoveLiquidity(
				clientCtx.GetFromAddress().String(), lpTokenId,
				minCurrency, minTokens, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "Reject the transaction at or beyond this block height")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBuyTokens returns a CLI command handler for buying an exact token
// amount
func CmdBuyTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy-tokens [token-id] [tokens] [max-currency]",
		Short: "Buy an exact token amount with currency",
		Long: `Buy an exact token amount from a pool, spending at most max-currency.

Example:
  $ paramid tx swap buy-tokens unft1 17 300 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokens, err := parseAmount(args[1], "tokens")
			if err != nil {
				return err
			}
			maxCurrency, err := parseAmount(args[2], "max-currency")
			if err != nil {
				return err
			}
			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgBuyTokens(
				clientCtx.GetFromAddress().String(), args[0], tokens, maxCurrency, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "Reject the transaction at or beyond this block height")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSellTokens returns a CLI command handler for selling an exact
// token amount
func CmdSellTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell-tokens [token-id] [tokens] [min-currency]",
		Short: "Sell an exact token amount for currency",
		Long: `Sell an exact token amount into a pool for at least min-currency.

Example:
  $ paramid tx swap sell-tokens unft1 10 75 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokens, err := parseAmount(args[1], "tokens")
			if err != nil {
				return err
			}
			minCurrency, err := parseAmount(args[2], "min-currency")
			if err != nil {
				return err
			}
			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgSellTokens(
				clientCtx.GetFromAddress().String(), args[0], tokens, minCurrency, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "Reject the transaction at or beyond this block height")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSellCurrency returns a CLI command handler for selling an exact
// currency amount
func CmdSellCurrency() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell-currency [token-id] [currency] [min-tokens]",
		Short: "Sell an exact currency amount for tokens",
		Long: `Sell an exact currency amount into a pool for at least min-tokens.

Example:
  $ paramid tx swap sell-currency unft1 100 5 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			currency, err := parseAmount(args[1], "currency")
			if err != nil {
				return err
			}
			minTokens, err := parseAmount(args[2], "min-tokens")
			if err != nil {
				return err
			}
			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgSellCurrency(
				clientCtx.GetFromAddress().String(), args[0], currency, minTokens, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "Reject the transaction at or beyond this block height")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBuyCurrency returns a CLI command handler for buying an exact
// currency amount
func CmdBuyCurrency() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy-currency [token-id] [currency] [max-tokens]",
		Short: "Buy an exact currency amount with tokens",
		Long: `Buy an exact currency amount from a pool, spending at most max-tokens.

Example:
  $ paramid tx swap buy-currency unft1 100 20 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
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
			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgBuyCurrency(
				clientCtx.GetFromAddress().String(), args[0], currency, maxTokens, deadline)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "Reject the transaction at or beyond this block height")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAcquireReward returns a CLI command handler for claiming farming
// rewards
func CmdAcquireReward() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acquire-reward [lp-token-id]",
		Short: "Claim the outstanding farming reward of a position",
		Long: `Claim the outstanding farming reward of a liquidity position. The reward
is minted in the pool's traded token and sent to the position owner.

Example:
  $ paramid tx swap acquire-reward 7 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			lpTokenId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lp-token-id: %s", args[0])
			}

			msg := types.NewMsgAcquireReward(clientCtx.GetFromAddress().String(), lpTokenId)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
