package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWriter(t *testing.T) {
	root := t.TempDir()

	first, err := NewWriter(root, "run")
	require.NoError(t, err)
	second, err := NewWriter(root, "run")
	require.NoError(t, err)

	require.NotEqual(t, first.Dir(), second.Dir(), "Runs started together should not share a directory")
	for _, w := range []*Writer{first, second} {
		require.Equal(t, filepath.Join(root, "run"), filepath.Dir(w.Dir()))
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "random"}}))
		_, err := os.Stat(filepath.Join(w.Dir(), "agent_configs.csv"))
		require.NoError(t, err)
	}
}
