package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

const (
	flagRiskOffBand  = "risk-off-band"
	flagStartRiskOff = "start-risk-off"
	flagJSON         = "json"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates the root command for pegsim.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pegsim",
		Short: "Replay peg feed rounds through the risk circuit breaker",
		Long: `pegsim replays recorded peg feed rounds through the circuit breaker
transition function. Operators use it to see how a band change would have
behaved against a historical depeg episode before proposing it on chain.`,
	}

	rootCmd.AddCommand(CmdReplay())
	return rootCmd
}

// scenarioRound is one peg feed observation in a replay scenario.
type scenarioRound struct {
	RoundID uint64
	Price   math.LegacyDec
	Invalid bool
}

// reading converts the scenario entry into the observation shape the breaker
// consumes. Prices are scaled to integer units.
func (r scenarioRound) reading() types.PegReading {
	if r.Invalid {
		return types.InvalidPegReading()
	}
	return types.PegReading{
		Price:   r.Price.MulInt(types.Unit).TruncateInt(),
		RoundID: r.RoundID,
		Valid:   true,
	}
}

// observation is the per-round replay output in JSON mode.
type observation struct {
	RoundID     uint64 `json:"round_id"`
	Invalid     bool   `json:"invalid"`
	Price       string `json:"price,omitempty"`
	Deviation   string `json:"deviation,omitempty"`
	InBandCount uint32 `json:"in_band_count"`
	RiskOff     bool   `json:"risk_off"`
}

// CmdReplay returns the command that replays a scenario file through the breaker
func CmdReplay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [scenario-file]",
		Short: "Replay a scenario file through the circuit breaker",
		Long: `Replay a scenario file through the circuit breaker transition function.

The scenario is YAML, TOML or JSON with a rounds list. Prices are decimal
fractions of parity; an entry marked invalid models a venue failure:

  rounds:
    - round_id: 101
      price: "1.000"
    - round_id: 102
      price: "0.955"
    - round_id: 103
      invalid: true

Each entry is folded into the breaker in order and the resulting state is
printed after every observation.

Examples:
  $ pegsim replay depeg-2025-05.yaml
  $ pegsim replay depeg-2025-05.yaml --risk-off-band 0.02 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bandStr, err := cmd.Flags().GetString(flagRiskOffBand)
			if err != nil {
				return err
			}
			band, err := math.LegacyNewDecFromStr(bandStr)
			if err != nil {
				return fmt.Errorf("invalid risk-off band %s: %w", bandStr, err)
			}

			startRiskOff, err := cmd.Flags().GetBool(flagStartRiskOff)
			if err != nil {
				return err
			}

			asJSON, err := cmd.Flags().GetBool(flagJSON)
			if err != nil {
				return err
			}

			rounds, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			return replay(cmd.OutOrStdout(), rounds, band, startRiskOff, asJSON)
		},
	}

	cmd.Flags().String(flagRiskOffBand, types.DefaultParams().RiskOffBand.String(), "Risk-off band as a decimal fraction of parity")
	cmd.Flags().Bool(flagStartRiskOff, false, "Start with the breaker already tripped")
	cmd.Flags().Bool(flagJSON, false, "Emit one JSON object per observation")
	return cmd
}

// loadScenario reads a scenario file. Viper hands back loosely typed values,
// so every field goes through cast before use.
func loadScenario(path string) ([]scenarioRound, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	raw := v.Get("rounds")
	if raw == nil {
		return nil, fmt.Errorf("scenario %s has no rounds list", path)
	}

	entries, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("rounds must be a list: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("scenario %s has an empty rounds list", path)
	}

	rounds := make([]scenarioRound, 0, len(entries))
	for i, entry := range entries {
		m, err := cast.ToStringMapE(entry)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i, err)
		}

		round := scenarioRound{
			RoundID: cast.ToUint64(m["round_id"]),
			Invalid: cast.ToBool(m["invalid"]),
			Price:   math.LegacyZeroDec(),
		}
		if round.RoundID == 0 {
			return nil, fmt.Errorf("round %d: round_id must be positive", i)
		}

		if !round.Invalid {
			priceStr := cast.ToString(m["price"])
			if priceStr == "" {
				return nil, fmt.Errorf("round %d: price required unless marked invalid", i)
			}
			price, err := math.LegacyNewDecFromStr(priceStr)
			if err != nil {
				return nil, fmt.Errorf("round %d: invalid price %s: %w", i, priceStr, err)
			}
			if !price.IsPositive() {
				return nil, fmt.Errorf("round %d: price must be positive, got %s", i, priceStr)
			}
			round.Price = price
		}

		rounds = append(rounds, round)
	}

	return rounds, nil
}

// replay folds every scenario round into the breaker and writes one line per
// observation, then a summary in text mode.
func replay(out io.Writer, rounds []scenarioRound, band math.LegacyDec, startRiskOff, asJSON bool) error {
	state := types.DefaultPegState()
	state.RiskOff = startRiskOff

	transitions := 0
	for _, round := range rounds {
		reading := round.reading()
		next := state.Next(reading, band)
		if next.RiskOff != state.RiskOff {
			transitions++
		}
		state = next

		if asJSON {
			obs := observation{
				RoundID:     round.RoundID,
				Invalid:     round.Invalid,
				InBandCount: state.InBandCount,
				RiskOff:     state.RiskOff,
			}
			if !round.Invalid {
				obs.Price = round.Price.String()
				obs.Deviation = reading.Deviation().String()
			}
			bz, err := json.Marshal(obs)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(bz))
			continue
		}

		if round.Invalid {
			fmt.Fprintf(out, "round %-8d invalid              in_band %d/%d  risk_off %t\n",
				round.RoundID, state.InBandCount, types.RiskRecoveryRounds, state.RiskOff)
			continue
		}

		fmt.Fprintf(out, "round %-8d price %-12s deviation %-10s in_band %d/%d  risk_off %t\n",
			round.RoundID, round.Price, reading.Deviation(),
			state.InBandCount, types.RiskRecoveryRounds, state.RiskOff)
	}

	if !asJSON {
		fmt.Fprintf(out, "\n%d rounds replayed, %d breaker transitions, final risk_off %t\n",
			len(rounds), transitions, state.RiskOff)
	}

	return nil
}
