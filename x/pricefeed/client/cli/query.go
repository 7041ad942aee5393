package cli

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// GetQueryCmd returns the cli query commands for the pricefeed module
func GetQueryCmd() *cobra.Command {
	pricefeedQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the pricefeed module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	pricefeedQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQuerySource(),
		GetCmdQuerySources(),
		GetCmdQueryRiskOff(),
		GetCmdQueryPegState(),
		GetCmdQueryValue(),
		GetCmdQueryLiquidationValue(),
		GetCmdQueryCapability(),
	)

	return pricefeedQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current pricefeed module parameters",
		Long: `Query the current parameters of the pricefeed module including peg bands and staleness horizon.

Example:
  $ cairnd query pricefeed params`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySource returns the command to query a pair's feed source
func GetCmdQuerySource() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source [base] [quote]",
		Short: "Query the feed source of a denom pair",
		Long: `Query the registered feed source configuration for a denom pair.

Example:
  $ cairnd query pricefeed source uusd ucairn`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Source(context.Background(), &types.QuerySourceRequest{
				Base:  args[0],
				Quote: args[1],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySources returns the command to query all registered sources
func GetCmdQuerySources() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Query all registered pair sources",
		Long: `Query every registered pair source with pagination support.

Example:
  $ cairnd query pricefeed sources
  $ cairnd query pricefeed sources --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Sources(context.Background(), &types.QuerySourcesRequest{
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "sources")
	return cmd
}

// GetCmdQueryRiskOff returns the command to query the risk circuit breaker flag
func GetCmdQueryRiskOff() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk-off",
		Short: "Query whether the risk circuit breaker is tripped",
		Long: `Query the current risk-off flag of the peg circuit breaker.

Example:
  $ cairnd query pricefeed risk-off`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.RiskOff(context.Background(), &types.QueryRiskOffRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPegState returns the command to query the full circuit breaker state
func GetCmdQueryPegState() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peg-state",
		Short: "Query the peg circuit breaker state",
		Long: `Query the full circuit breaker state: last observed round, consecutive
in-band rounds and the risk-off flag.

Example:
  $ cairnd query pricefeed peg-state`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.PegState(context.Background(), &types.QueryPegStateRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryValue returns the command to price an amount through the mint path
func GetCmdQueryValue() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value [base] [quote] [amount]",
		Short: "Price an amount of base denom in quote denom",
		Long: `Price an amount of base denom in quote denom through the mint path.
The amount is an integer at 18 decimal places.

Example:
  $ cairnd query pricefeed value uusd ucairn 100000000000000000000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[2])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Value(context.Background(), &types.QueryValueRequest{
				Base:   args[0],
				Quote:  args[1],
				Amount: amount,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryLiquidationValue returns the command to price an amount through the liquidation path
func GetCmdQueryLiquidationValue() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidation-value [base] [quote] [amount]",
		Short: "Price an amount of base denom in quote denom for liquidation",
		Long: `Price an amount of base denom in quote denom through the liquidation path.
The peg multiplier is capped at parity, so a premium never inflates the value.

Example:
  $ cairnd query pricefeed liquidation-value uusd ucairn 100000000000000000000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[2])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.LiquidationValue(context.Background(), &types.QueryLiquidationValueRequest{
				Base:   args[0],
				Quote:  args[1],
				Amount: amount,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryCapability returns the command to query a capability's grantees
func GetCmdQueryCapability() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capability [operation]",
		Short: "Query the addresses granted a registry operation",
		Long: `Query the principal set granted a registry operation.
Valid operations: add_source, set_source, set_bounds.

Example:
  $ cairnd query pricefeed capability set_bounds`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Capability(context.Background(), &types.QueryCapabilityRequest{
				Operation: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
