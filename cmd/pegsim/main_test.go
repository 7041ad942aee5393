package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// writeScenario drops a scenario file into a temp dir and returns its path.
func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const depegScenario = `rounds:
  - round_id: 101
    price: "1.000"
  - round_id: 102
    price: "0.955"
  - round_id: 103
    invalid: true
  - round_id: 104
    price: "1.000"
  - round_id: 105
    price: "0.999"
  - round_id: 106
    price: "1.001"
`

func TestLoadScenarioYAML(t *testing.T) {
	path := writeScenario(t, "depeg.yaml", depegScenario)

	rounds, err := loadScenario(path)
	require.NoError(t, err)
	require.Len(t, rounds, 6)

	require.Equal(t, uint64(101), rounds[0].RoundID)
	require.False(t, rounds[0].Invalid)
	require.True(t, rounds[0].Price.Equal(math.LegacyOneDec()))

	require.Equal(t, uint64(102), rounds[1].RoundID)
	require.True(t, rounds[1].Price.Equal(math.LegacyMustNewDecFromStr("0.955")))

	require.True(t, rounds[2].Invalid)
	require.Equal(t, uint64(103), rounds[2].RoundID)
}

func TestLoadScenarioJSON(t *testing.T) {
	path := writeScenario(t, "depeg.json",
		`{"rounds": [{"round_id": 7, "price": "1.02"}, {"round_id": 8, "invalid": true}]}`)

	rounds, err := loadScenario(path)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	require.Equal(t, uint64(7), rounds[0].RoundID)
	require.True(t, rounds[0].Price.Equal(math.LegacyMustNewDecFromStr("1.02")))
	require.True(t, rounds[1].Invalid)
}

func TestLoadScenarioRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"no rounds key", "bands: []\n", "no rounds list"},
		{"empty rounds", "rounds: []\n", "empty rounds list"},
		{"zero round id", "rounds:\n  - round_id: 0\n    price: \"1.0\"\n", "round_id must be positive"},
		{"missing price", "rounds:\n  - round_id: 5\n", "price required"},
		{"garbage price", "rounds:\n  - round_id: 5\n    price: \"parity\"\n", "invalid price"},
		{"negative price", "rounds:\n  - round_id: 5\n    price: \"-0.5\"\n", "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, "bad.yaml", tt.content)

			_, err := loadScenario(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read scenario")
}

func TestReplayTextTrace(t *testing.T) {
	rounds := []scenarioRound{
		{RoundID: 101, Price: math.LegacyOneDec()},
		{RoundID: 102, Price: math.LegacyMustNewDecFromStr("0.955")},
		{RoundID: 103, Invalid: true, Price: math.LegacyZeroDec()},
		{RoundID: 104, Price: math.LegacyOneDec()},
		{RoundID: 105, Price: math.LegacyOneDec()},
		{RoundID: 106, Price: math.LegacyOneDec()},
	}

	out := new(bytes.Buffer)
	band := math.LegacyMustNewDecFromStr("0.03")
	require.NoError(t, replay(out, rounds, band, false, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")

	// One line per round, a blank spacer, then the summary.
	require.Len(t, lines, len(rounds)+2)

	// The 0.955 round breaches the band and trips the breaker.
	require.Contains(t, lines[1], "risk_off true")
	// The venue failure keeps it tripped.
	require.Contains(t, lines[2], "invalid")
	require.Contains(t, lines[2], "risk_off true")
	// Two in-band rounds are not enough.
	require.Contains(t, lines[4], "risk_off true")
	// The third clears it.
	require.Contains(t, lines[5], "risk_off false")

	require.Contains(t, lines[len(lines)-1], "6 rounds replayed, 2 breaker transitions, final risk_off false")
}

func TestReplayWiderBandAbsorbsDeviation(t *testing.T) {
	rounds := []scenarioRound{
		{RoundID: 101, Price: math.LegacyOneDec()},
		{RoundID: 102, Price: math.LegacyMustNewDecFromStr("0.955")},
	}

	out := new(bytes.Buffer)
	band := math.LegacyMustNewDecFromStr("0.05")
	require.NoError(t, replay(out, rounds, band, false, false))

	require.Contains(t, out.String(), "0 breaker transitions, final risk_off false")
}

func TestReplayStartRiskOff(t *testing.T) {
	rounds := []scenarioRound{
		{RoundID: 1, Price: math.LegacyOneDec()},
		{RoundID: 2, Price: math.LegacyOneDec()},
	}

	out := new(bytes.Buffer)
	band := math.LegacyMustNewDecFromStr("0.03")
	require.NoError(t, replay(out, rounds, band, true, false))

	// Two in-band rounds leave a pre-tripped breaker one short of recovery.
	require.Contains(t, out.String(), "final risk_off true")
}

func TestReplayJSONTrace(t *testing.T) {
	rounds := []scenarioRound{
		{RoundID: 9, Price: math.LegacyMustNewDecFromStr("0.98")},
		{RoundID: 10, Invalid: true, Price: math.LegacyZeroDec()},
	}

	out := new(bytes.Buffer)
	band := math.LegacyMustNewDecFromStr("0.03")
	require.NoError(t, replay(out, rounds, band, false, true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first observation
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, uint64(9), first.RoundID)
	require.False(t, first.Invalid)
	require.Equal(t, "0.980000000000000000", first.Price)
	require.Equal(t, "0.020000000000000000", first.Deviation)
	require.Equal(t, uint32(1), first.InBandCount)
	require.False(t, first.RiskOff)

	var second observation
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.True(t, second.Invalid)
	require.Empty(t, second.Price)
	require.Equal(t, uint32(0), second.InBandCount)
	require.True(t, second.RiskOff)
}

func TestCmdReplay(t *testing.T) {
	path := writeScenario(t, "depeg.yaml", depegScenario)

	cmd := NewRootCmd()
	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(outBuf)
	cmd.SetArgs([]string{"replay", path})

	require.NoError(t, cmd.Execute())
	require.Contains(t, outBuf.String(), "2 breaker transitions")
}

func TestCmdReplayBandFlag(t *testing.T) {
	path := writeScenario(t, "depeg.yaml", depegScenario)

	// A wider band absorbs the 0.045 deviation; only the venue failure
	// still trips the breaker.
	cmd := NewRootCmd()
	outBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(outBuf)
	cmd.SetArgs([]string{"replay", path, "--" + flagRiskOffBand, "0.05"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, outBuf.String(), "2 breaker transitions")
	require.Contains(t, outBuf.String(), "final risk_off false")
}

func TestCmdReplayRejectsBadBand(t *testing.T) {
	path := writeScenario(t, "depeg.yaml", depegScenario)

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"replay", path, "--" + flagRiskOffBand, "not-a-dec"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid risk-off band")
}

func TestScenarioRoundReading(t *testing.T) {
	valid := scenarioRound{RoundID: 3, Price: math.LegacyMustNewDecFromStr("1.01")}
	reading := valid.reading()
	require.True(t, reading.Valid)
	require.Equal(t, uint64(3), reading.RoundID)
	require.True(t, reading.Price.Equal(math.LegacyMustNewDecFromStr("1.01").MulInt(types.Unit).TruncateInt()))

	invalid := scenarioRound{RoundID: 4, Invalid: true, Price: math.LegacyZeroDec()}
	require.Equal(t, types.InvalidPegReading(), invalid.reading())
}
