package searcher

import (
	"mills/game"
	"sync"
)

// Flag tells how an entry's score bounds the true value.
type Flag uint8

const (
	Exact Flag = iota
	Lower
	Upper
)

type Entry struct {
	Depth int
	Score int
	Flag  Flag
}

const (
	shardCount      = 64
	DefaultCapacity = 1 << 20
)

type shard struct {
	sync.RWMutex
	entries map[game.Position]Entry
}

// Table memoizes search results by canonical position. It is sharded by
// position hash so concurrent searches rarely contend.
type Table struct {
	shards   [shardCount]shard
	capacity int // Per shard
}

func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	t := &Table{capacity: max(1, capacity/shardCount)}
	for i := range t.shards {
		t.shards[i].entries = make(map[game.Position]Entry)
	}
	return t
}

func (t *Table) shard(key game.Position) *shard {
	return &t.shards[key.Hash()%shardCount]
}

func (t *Table) Probe(key game.Position) (Entry, bool) {
	s := t.shard(key)
	s.RLock()
	defer s.RUnlock()

	e, ok := s.entries[key]
	return e, ok
}

// Store keeps the deeper of the stored and the new entry. A full shard is
// emptied before taking new keys.
func (t *Table) Store(key game.Position, e Entry) {
	s := t.shard(key)
	s.Lock()
	defer s.Unlock()

	old, ok := s.entries[key]
	if ok && old.Depth > e.Depth {
		return
	}
	if !ok && len(s.entries) >= t.capacity {
		clear(s.entries)
	}
	s.entries[key] = e
}

func (t *Table) Len() int {
	n := 0
	for i := range t.shards {
		s := &t.shards[i]
		s.RLock()
		n += len(s.entries)
		s.RUnlock()
	}
	return n
}

func (t *Table) Clear() {
	for i := range t.shards {
		s := &t.shards[i]
		s.Lock()
		clear(s.entries)
		s.Unlock()
	}
}
