package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"handy/game"
	"handy/graph"
)

// Generator is the native state generator: it deals piles, expands their
// successors and reports terminal states.
type Generator interface {
	// Example returns a random non-winning pile with its direct successors
	Example(ctx context.Context) (Example, error)
	// DeepExample returns a graph expanded from a random pile up to MaxDepth
	DeepExample(ctx context.Context) (DeepExample, error)
	// WinningPile returns a random pile the human has already won
	WinningPile(ctx context.Context) (game.Pile, error)
}

type ChildPile struct {
	Pile   game.Pile   `json:"pile"`
	Winner game.Winner `json:"winner"`
}

type Example struct {
	ParentPile game.Pile   `json:"parent_pile"`
	ChildPiles []ChildPile `json:"child_piles"`
}

type DeepExample struct {
	RootPile game.Pile
	MaxDepth int
	Nodes    []graph.Entry
}

type nodeAttributes struct {
	Depth    int         `json:"depth"`
	Winner   game.Winner `json:"winner"`
	Children []game.Pile `json:"children"`
}

type deepExampleJSON struct {
	RootPile game.Pile           `json:"root_pile"`
	MaxDepth int                 `json:"max_depth"`
	Examples [][]json.RawMessage `json:"examples"`
}

// UnmarshalJSON reads the generator's [pile, attributes] pairs.
func (d *DeepExample) UnmarshalJSON(data []byte) error {
	var wire deepExampleJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	nodes := make([]graph.Entry, len(wire.Examples))
	for i, pair := range wire.Examples {
		if len(pair) != 2 {
			return fmt.Errorf("example %d: expected [pile, attributes], got %d elements", i, len(pair))
		}
		var pile game.Pile
		if err := json.Unmarshal(pair[0], &pile); err != nil {
			return fmt.Errorf("example %d: %w", i, err)
		}
		attrs := nodeAttributes{Winner: game.NoWinner}
		if err := json.Unmarshal(pair[1], &attrs); err != nil {
			return fmt.Errorf("example %d: %w", i, err)
		}
		nodes[i] = graph.Entry{
			Pile:     pile,
			Depth:    attrs.Depth,
			Winner:   attrs.Winner,
			Children: attrs.Children,
		}
	}

	d.RootPile = wire.RootPile
	d.MaxDepth = wire.MaxDepth
	d.Nodes = nodes
	return nil
}
