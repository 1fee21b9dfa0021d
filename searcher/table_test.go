package searcher

import (
	"mills/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	key := game.NewPosition().Expand(game.White)[5]

	t.Run("probe misses an unknown position", func(t *testing.T) {
		table := NewTable(0)

		_, ok := table.Probe(key)

		require.False(t, ok)
		require.Zero(t, table.Len())
	})

	t.Run("keeps the deeper entry", func(t *testing.T) {
		table := NewTable(0)

		table.Store(key, Entry{Depth: 3, Score: 7, Flag: Exact})
		table.Store(key, Entry{Depth: 1, Score: -2, Flag: Lower})
		got, ok := table.Probe(key)

		require.True(t, ok)
		require.Equal(t, Entry{Depth: 3, Score: 7, Flag: Exact}, got)

		table.Store(key, Entry{Depth: 4, Score: 1, Flag: Upper})
		got, _ = table.Probe(key)
		require.Equal(t, Entry{Depth: 4, Score: 1, Flag: Upper}, got)
		require.Equal(t, 1, table.Len())
	})

	t.Run("full shards are emptied", func(t *testing.T) {
		table := NewTable(shardCount) // One entry per shard

		for _, p := range game.NewPosition().Expand(game.White) {
			table.Store(p, Entry{Depth: 1})
		}

		require.LessOrEqual(t, table.Len(), shardCount)
		require.Greater(t, table.Len(), 0)
	})

	t.Run("clear", func(t *testing.T) {
		table := NewTable(0)
		table.Store(key, Entry{Depth: 1})

		table.Clear()

		require.Zero(t, table.Len())
	})

	t.Run("concurrent access", func(t *testing.T) {
		table := NewTable(0)
		successors := game.NewPosition().Expand(game.White)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for depth, p := range successors {
					table.Store(p, Entry{Depth: depth})
					table.Probe(p)
				}
			}()
		}
		wg.Wait()

		require.Equal(t, len(successors), table.Len())
	})
}
