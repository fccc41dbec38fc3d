package searcher

import (
	"context"
	"fmt"
	"handy/game"
	"handy/graph"
	"handy/vectorize"
	"testing"

	"github.com/stretchr/testify/require"
)

// mockEvaluator predicts a fixed value per encoding and records calls.
type mockEvaluator struct {
	values map[string]float32 // fmt.Sprint(encoding) -> prediction
	calls  int
	seen   int
}

func (m *mockEvaluator) Predict(_ context.Context, inputs []vectorize.Encoding) ([]float32, error) {
	m.calls++
	m.seen += len(inputs)
	out := make([]float32, len(inputs))
	for i, in := range inputs {
		out[i] = m.values[fmt.Sprint(in)]
	}
	return out, nil
}

// piles are distinct permutations over the same nine cards
var piles = []string{
	"1A 2A 3A 4A 5A 6A 7A 8A 9A",
	"2A 1A 3A 4A 5A 6A 7A 8A 9A",
	"3A 2A 1A 4A 5A 6A 7A 8A 9A",
	"4A 2A 3A 1A 5A 6A 7A 8A 9A",
	"5A 2A 3A 4A 1A 6A 7A 8A 9A",
	"6A 2A 3A 4A 5A 1A 7A 8A 9A",
	"7A 2A 3A 4A 5A 6A 1A 8A 9A",
}

type fixture struct {
	t     *testing.T
	index *vectorize.CardIndex
	piles []game.Pile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{t: t, index: vectorize.NewCardIndex()}
	for _, s := range piles {
		p, err := game.ParsePile(s)
		require.NoError(t, err)
		f.piles = append(f.piles, p)
	}
	require.NoError(t, f.index.Init(f.piles[0]))
	return f
}

func (f *fixture) key(i int) string {
	return f.piles[i].Key()
}

func (f *fixture) entry(i, depth int, winner game.Winner, children ...int) graph.Entry {
	e := graph.Entry{Pile: f.piles[i], Depth: depth, Winner: winner}
	for _, c := range children {
		e.Children = append(e.Children, f.piles[c])
	}
	return e
}

func (f *fixture) build(maxDepth int, entries ...graph.Entry) *graph.Table {
	f.t.Helper()
	table, err := graph.Build(f.index, f.piles[0], entries, maxDepth)
	require.NoError(f.t, err)
	return table
}

func (f *fixture) evaluator(values map[int]float32) *mockEvaluator {
	m := &mockEvaluator{values: map[string]float32{}}
	for i, v := range values {
		enc, err := f.index.Encode(f.piles[i])
		require.NoError(f.t, err)
		m.values[fmt.Sprint(enc)] = v
	}
	return m
}

func resolution(t *testing.T, table *graph.Table, key string) (float32, float32, bool) {
	t.Helper()
	node, ok := table.Get(key)
	require.True(t, ok, "Node %s should exist", key)
	return node.Resolution()
}

// chain builds a line of length distinct piles ending in a win.
func (f *fixture) chain(length int) *graph.Table {
	f.t.Helper()
	base := f.piles[0]
	chain := make([]game.Pile, length)
	for i := range chain {
		p := base
		n := i
		for pos := 0; pos < game.PileSize; pos++ {
			p[pos].Face = game.FaceKey(n % game.NumFaces)
			n /= game.NumFaces
		}
		chain[i] = p
	}

	entries := make([]graph.Entry, length)
	for i := range chain {
		entries[i] = graph.Entry{Pile: chain[i], Depth: i, Winner: game.NoWinner}
		if i+1 < length {
			entries[i].Children = []game.Pile{chain[i+1]}
		} else {
			entries[i].Winner = game.HumanWinner
		}
	}
	table, err := graph.Build(f.index, chain[0], entries, length+1)
	require.NoError(f.t, err)
	return table
}
