package trainer

import (
	"context"
	"errors"
	"handy/game"
	"handy/generator"
	"handy/graph"
	"handy/model"
	"handy/vectorize"
)

var errUnavailable = errors.New("generator unavailable")

// pileN returns distinct piles over cards 1..9 by writing n in base 4 into the
// faces.
func pileN(n int) game.Pile {
	var pile game.Pile
	for i := range pile {
		pile[i] = game.Card{ID: game.CardID(i + 1), Face: game.FaceKey(n % game.NumFaces)}
		n /= game.NumFaces
	}
	return pile
}

type mockGenerator struct {
	deep       generator.DeepExample
	deepErr    error
	winningErr error
	deepCalls  int
}

func (g *mockGenerator) Example(ctx context.Context) (generator.Example, error) {
	return generator.Example{ParentPile: pileN(1)}, nil
}

func (g *mockGenerator) DeepExample(ctx context.Context) (generator.DeepExample, error) {
	g.deepCalls++
	return g.deep, g.deepErr
}

func (g *mockGenerator) WinningPile(ctx context.Context) (game.Pile, error) {
	if g.winningErr != nil {
		return game.Pile{}, g.winningErr
	}
	return pileN(0), nil
}

type mockModel struct {
	prediction float32
	fits       [][]model.Example
}

func (m *mockModel) Predict(ctx context.Context, inputs []vectorize.Encoding) ([]float32, error) {
	out := make([]float32, len(inputs))
	for i := range out {
		out[i] = m.prediction
	}
	return out, nil
}

func (m *mockModel) Fit(ctx context.Context, batch []model.Example) error {
	m.fits = append(m.fits, batch)
	return nil
}

func (m *mockModel) examples() []model.Example {
	var all []model.Example
	for _, batch := range m.fits {
		all = append(all, batch...)
	}
	return all
}

// scenario is a root with a won child and a frontier child.
func scenario() generator.DeepExample {
	root, won, frontier := pileN(1), pileN(2), pileN(3)
	return generator.DeepExample{
		RootPile: root,
		MaxDepth: 1,
		Nodes: []graph.Entry{
			{Pile: root, Depth: 0, Winner: game.NoWinner, Children: []game.Pile{won, frontier}},
			{Pile: won, Depth: 1, Winner: game.HumanWinner},
			{Pile: frontier, Depth: 1, Winner: game.NoWinner},
		},
	}
}

// wins is a graph of n unconnected won nodes, each yielding one example.
func wins(n int) generator.DeepExample {
	deep := generator.DeepExample{RootPile: pileN(1), MaxDepth: 3}
	for i := range n {
		deep.Nodes = append(deep.Nodes, graph.Entry{Pile: pileN(i + 10), Depth: 1, Winner: game.HumanWinner})
	}
	return deep
}
