package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// GetTxCmd returns the transaction commands for the pricefeed module
func GetTxCmd() *cobra.Command {
	pricefeedTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Pricefeed transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	pricefeedTxCmd.AddCommand(
		CmdAddSource(),
		CmdSetSource(),
		CmdSetBounds(),
		CmdUpdateRiskOff(),
		CmdGrantCapability(),
		CmdRevokeCapability(),
		CmdUpdateParams(),
	)

	return pricefeedTxCmd
}

// parseSourceArgs resolves the feed id and max age from a source command's
// positional arguments. With three arguments the feed id is derived from the
// pair and args[2] is the max age; with four, args[2] is an explicit feed id
// and args[3] is the max age.
func parseSourceArgs(cmd *cobra.Command, args []string) (feedID string, maxAge uint64, err error) {
	derive, err := cmd.Flags().GetBool(FlagDeriveFeedID)
	if err != nil {
		return "", 0, err
	}

	var maxAgeArg string
	switch len(args) {
	case 3:
		if !derive {
			return "", 0, fmt.Errorf("feed id argument required unless --%s is set", FlagDeriveFeedID)
		}
		feedID = types.DeriveFeedID(args[0], args[1])
		maxAgeArg = args[2]
	case 4:
		if derive {
			return "", 0, fmt.Errorf("--%s conflicts with an explicit feed id argument", FlagDeriveFeedID)
		}
		feedID = args[2]
		maxAgeArg = args[3]
	}

	maxAge, err = strconv.ParseUint(maxAgeArg, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid max age %s: %w", maxAgeArg, err)
	}

	return feedID, maxAge, nil
}

// CmdAddSource returns a CLI command handler for registering a pair source
func CmdAddSource() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-source [base] [quote] [feed-id] [max-age]",
		Short: "Register a feed source for a denom pair",
		Long: `Register the feed source a denom pair's primary rate is read from.

The max-age argument is the staleness horizon in seconds. Pass --derive-feed-id
to omit the feed id argument and derive the canonical id from the pair instead.
Price bounds start empty; set them with set-bounds.

Examples:
  $ cairnd tx pricefeed add-source uusd ucairn 0x4fe3...9d1c 3600 --from operator-key

  Derived feed id with a report floor:
  $ cairnd tx pricefeed add-source uusd ucairn 3600 --derive-feed-id --min-reports 3 --from operator-key`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedID, maxAge, err := parseSourceArgs(cmd, args)
			if err != nil {
				return err
			}

			minReports, err := cmd.Flags().GetUint64(FlagMinReports)
			if err != nil {
				return err
			}

			msg := types.NewMsgAddSource(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
				feedID,
				maxAge,
				minReports,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagDeriveFeedID, false, "Derive the feed id from the pair instead of passing it")
	cmd.Flags().Uint64(FlagMinReports, 0, "Minimum venue report count, 0 disables the check")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetSource returns a CLI command handler for updating a pair source
func CmdSetSource() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-source [base] [quote] [feed-id] [max-age]",
		Short: "Update the feed source of a registered pair",
		Long: `Replace the feed id, max age and report floor of a registered pair.
Price bounds are kept as they are; use set-bounds to change them.

Example:
  $ cairnd tx pricefeed set-source uusd ucairn 0x4fe3...9d1c 1800 --from operator-key`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedID, maxAge, err := parseSourceArgs(cmd, args)
			if err != nil {
				return err
			}

			minReports, err := cmd.Flags().GetUint64(FlagMinReports)
			if err != nil {
				return err
			}

			msg := types.NewMsgSetSource(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
				feedID,
				maxAge,
				minReports,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(FlagDeriveFeedID, false, "Derive the feed id from the pair instead of passing it")
	cmd.Flags().Uint64(FlagMinReports, 0, "Minimum venue report count, 0 disables the check")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetBounds returns a CLI command handler for setting pair price bounds
func CmdSetBounds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-bounds [base] [quote] [min-price] [max-price]",
		Short: "Set the sanity bounds on a pair's inverted rate",
		Long: `Set the inclusive sanity window on a registered pair's inverted rate.

Bounds are integers at 18 decimal places. Pass 0 to disable a side.

Examples:
  $ cairnd tx pricefeed set-bounds uusd ucairn 1000000000000000000 200000000000000000000 --from operator-key

  Disable the upper bound:
  $ cairnd tx pricefeed set-bounds uusd ucairn 1000000000000000000 0 --from operator-key`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			minPrice, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid min price: %s", args[2])
			}

			maxPrice, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid max price: %s", args[3])
			}

			msg := types.NewMsgSetBounds(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
				minPrice,
				maxPrice,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateRiskOff returns a CLI command handler for advancing the risk circuit breaker
func CmdUpdateRiskOff() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-risk-off",
		Short: "Observe the latest peg round and advance the risk circuit breaker",
		Long: `Read the latest peg feed round and fold it into the risk circuit breaker.

Anyone may submit this; the breaker transition depends only on the observed
round, not on the signer.

Example:
  $ cairnd tx pricefeed update-risk-off --from any-key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgUpdateRiskOff(clientCtx.GetFromAddress().String())

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdGrantCapability returns a CLI command handler for granting a registry capability
func CmdGrantCapability() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant-capability [operation] [grantee]",
		Short: "Grant a registry operation to an address",
		Long: `Grant an address the right to perform a registry operation.
Valid operations: add_source, set_source, set_bounds.

Only the module authority may grant capabilities.

Example:
  $ cairnd tx pricefeed grant-capability set_bounds cairn1abcdef... --from authority-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			operation := args[0]
			if !types.IsValidOperation(operation) {
				return fmt.Errorf("unknown operation %s", operation)
			}

			grantee := args[1]
			if _, err := sdk.AccAddressFromBech32(grantee); err != nil {
				return fmt.Errorf("invalid grantee address %s: %w", grantee, err)
			}

			msg := types.NewMsgGrantCapability(
				clientCtx.GetFromAddress().String(),
				operation,
				grantee,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRevokeCapability returns a CLI command handler for revoking a registry capability
func CmdRevokeCapability() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke-capability [operation] [grantee]",
		Short: "Revoke a previously granted registry operation",
		Long: `Revoke an address's right to perform a registry operation.

Only the module authority may revoke capabilities.

Example:
  $ cairnd tx pricefeed revoke-capability set_bounds cairn1abcdef... --from authority-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			operation := args[0]
			if !types.IsValidOperation(operation) {
				return fmt.Errorf("unknown operation %s", operation)
			}

			grantee := args[1]
			if _, err := sdk.AccAddressFromBech32(grantee); err != nil {
				return fmt.Errorf("invalid grantee address %s: %w", grantee, err)
			}

			msg := types.NewMsgRevokeCapability(
				clientCtx.GetFromAddress().String(),
				operation,
				grantee,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateParams returns a CLI command handler for updating module parameters
func CmdUpdateParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-params [mint-band] [risk-off-band] [peg-max-age]",
		Short: "Update the pricefeed module parameters",
		Long: `Update the peg bands and staleness horizon of the module.

Bands are decimal fractions; peg-max-age is in seconds. Only the module
authority may update parameters, so on live chains this goes through
governance.

Example:
  $ cairnd tx pricefeed update-params 0.01 0.03 3600 --from authority-key`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			mintBand, err := math.LegacyNewDecFromStr(args[0])
			if err != nil {
				return fmt.Errorf("invalid mint band %s: %w", args[0], err)
			}

			riskOffBand, err := math.LegacyNewDecFromStr(args[1])
			if err != nil {
				return fmt.Errorf("invalid risk-off band %s: %w", args[1], err)
			}

			pegMaxAge, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid peg max age %s: %w", args[2], err)
			}

			msg := types.NewMsgUpdateParams(
				clientCtx.GetFromAddress().String(),
				types.NewParams(mintBand, riskOffBand, pegMaxAge),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
