package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sample = `
name: smoke
games: 2
maxTurns: 12
agents:
  - id: 1
    kind: negamax
    depth: 1
    goroutines: 2
    duration: 250ms
    seed: 7
  - id: 2
    kind: random
    seed: 9
matchups:
  - [1, 2]
  - [2, 1]
`

func TestParseConfig(t *testing.T) {
	t.Run("reads agents and matchups", func(t *testing.T) {
		config, err := ParseConfig([]byte(sample))

		require.NoError(t, err)
		require.Equal(t, "smoke", config.Name)
		require.Equal(t, 2, config.Games)
		require.Equal(t, 12, config.MaxTurns)
		require.Equal(t, "experiments", config.Output, "Output should default")
		require.Len(t, config.Agents, 2)
		require.Equal(t, 250*time.Millisecond, config.Agents[0].Duration)
		require.Equal(t, uint64(7), config.Agents[0].Seed)
		require.Equal(t, [][]int{{1, 2}, {2, 1}}, config.Matchups)
	})

	t.Run("rejects invalid configs", func(t *testing.T) {
		for name, data := range map[string]string{
			"not yaml":        "agents: [",
			"no agents":       "matchups: [[1, 2]]",
			"no matchups":     "agents: [{id: 1, kind: random}]",
			"unknown agent":   "agents: [{id: 1, kind: random}]\nmatchups: [[1, 2]]",
			"duplicate agent": "agents: [{id: 1, kind: random}, {id: 1, kind: mcts}]\nmatchups: [[1, 1]]",
			"incomplete pair": "agents: [{id: 1, kind: random}]\nmatchups: [[1]]",
			"negative games":  "games: -1\nagents: [{id: 1, kind: random}]\nmatchups: [[1, 1]]",
		} {
			_, err := ParseConfig([]byte(data))
			require.Error(t, err, name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))
	config, err := LoadConfig(path)
	require.NoError(t, err)
	config.Output = t.TempDir()

	dir, err := Run(context.Background(), config)

	require.NoError(t, err)
	for name, rows := range map[string]int{
		"agent_configs.csv": 1 + 2,
		"game_records.csv":  1 + 2*2,
	} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err)
		require.Len(t, records, rows, name)
	}

	f, err := os.Open(filepath.Join(dir, "move_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(records), 1)
	require.Equal(t, "game", records[0][0])
}
