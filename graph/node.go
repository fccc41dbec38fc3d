package graph

import (
	"fmt"
	"handy/game"
	"handy/vectorize"
)

// Node is one state of a generated graph. Score and weight are assigned at
// most once per round.
type Node struct {
	Key      string
	Pile     game.Pile
	Depth    int
	Outcome  game.Outcome
	Children []string
	Encoding vectorize.Encoding

	score    float32
	weight   float32
	resolved bool
}

// Resolution returns the resolved score and weight, ok is false if the node
// has not been resolved (yet or at all).
func (n *Node) Resolution() (score, weight float32, ok bool) {
	return n.score, n.weight, n.resolved
}

func (n *Node) Resolved() bool {
	return n.resolved
}

// Resolve records the node's score and weight.
func (n *Node) Resolve(score, weight float32) {
	if n.resolved {
		panic(fmt.Sprintf("node %s resolved twice", n.Key))
	}
	n.score = score
	n.weight = weight
	n.resolved = true
}

// MarkDeadEnd flags a node none of whose children resolve.
func (n *Node) MarkDeadEnd() {
	if n.resolved {
		panic(fmt.Sprintf("resolved node %s marked as dead end", n.Key))
	}
	n.Outcome = game.NoResolution
}

// IsFrontier reports whether the node sits on the search horizon and must be
// valued by the model.
func (n *Node) IsFrontier(maxDepth int) bool {
	return n.Outcome == game.Undetermined && n.Depth >= maxDepth
}
