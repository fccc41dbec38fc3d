package searcher

import (
	"context"
	"fmt"
	"handy/game"
	"handy/graph"
	"handy/vectorize"
)

// Summary counts the outcome of resolving a table.
type Summary struct {
	Nodes    int
	Resolved int
	Frontier int
	DeadEnds int
}

type value struct {
	score  float32
	weight float32
	ok     bool
}

// better reports whether a is closer to a win than b: lower score first, then
// higher weight among equal scores.
func better(a, b value) bool {
	if !b.ok {
		return a.ok
	}
	if !a.ok {
		return false
	}
	return a.score < b.score || (a.score == b.score && a.weight > b.weight)
}

type frame struct {
	node *graph.Node
	next int
	best value
}

func (f *frame) offer(v value) {
	if better(v, f.best) {
		f.best = v
	}
}

// Resolve assigns a score and weight to every node of the table that can
// reach a win or the search horizon, and marks the rest as dead ends.
// Frontier nodes are valued by the evaluator in a single batch.
func Resolve(ctx context.Context, table *graph.Table, evaluator Evaluator) (Summary, error) {
	var summary Summary
	nodes := table.Nodes()

	frontier, err := valueFrontier(ctx, table, nodes, evaluator)
	if err != nil {
		return summary, err
	}

	r := &resolver{
		table:      table,
		inProgress: make(map[string]bool),
	}
	for _, node := range nodes {
		if err := r.resolve(node); err != nil {
			return summary, err
		}
	}

	summary.Nodes = len(nodes)
	summary.Frontier = frontier
	for _, node := range nodes {
		if node.Resolved() {
			summary.Resolved++
		} else if node.Outcome == game.NoResolution {
			summary.DeadEnds++
		}
	}
	return summary, nil
}

func valueFrontier(ctx context.Context, table *graph.Table, nodes []*graph.Node, evaluator Evaluator) (int, error) {
	var frontier []*graph.Node
	var inputs []vectorize.Encoding
	for _, node := range nodes {
		if !node.Resolved() && node.IsFrontier(table.MaxDepth) {
			frontier = append(frontier, node)
			inputs = append(inputs, node.Encoding)
		}
	}
	if len(frontier) == 0 {
		return 0, nil
	}

	predictions, err := evaluator.Predict(ctx, inputs)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate %d frontier nodes: %w", len(frontier), err)
	}
	if len(predictions) != len(frontier) {
		return 0, fmt.Errorf("evaluator returned %d values for %d frontier nodes", len(predictions), len(frontier))
	}
	for i, node := range frontier {
		node.Resolve(predictions[i], FrontierWeight)
	}
	return len(frontier), nil
}

type resolver struct {
	table      *graph.Table
	inProgress map[string]bool
	stack      []*frame
}

// settled returns the value of a node that needs no traversal. done is false
// for undetermined interior nodes that have not been resolved yet.
func settled(node *graph.Node) (v value, done bool) {
	if score, weight, ok := node.Resolution(); ok {
		return value{score: score, weight: weight, ok: true}, true
	}
	switch node.Outcome {
	case game.HumanWon:
		node.Resolve(WinScore, WinWeight)
		return value{score: WinScore, weight: WinWeight, ok: true}, true
	case game.NoResolution:
		return value{}, true
	}
	return value{}, false
}

func (r *resolver) push(node *graph.Node) {
	r.inProgress[node.Key] = true
	r.stack = append(r.stack, &frame{node: node})
}

// resolve runs a depth first post-order walk from node using an explicit
// stack. A child that is already on the stack closes a cycle.
func (r *resolver) resolve(node *graph.Node) error {
	if _, done := settled(node); done {
		return nil
	}
	r.push(node)

	for len(r.stack) > 0 {
		top := r.stack[len(r.stack)-1]

		if top.next < len(top.node.Children) {
			key := top.node.Children[top.next]
			top.next++

			child, ok := r.table.Get(key)
			if !ok { // No node data, never resolves
				continue
			}
			if v, done := settled(child); done {
				top.offer(v)
				continue
			}
			if r.inProgress[key] {
				r.stack = r.stack[:0]
				clear(r.inProgress)
				return fmt.Errorf("%w: %s reached again from %s", ErrCycleDetected, key, top.node.Key)
			}
			r.push(child)
			continue
		}

		// All children visited
		r.stack = r.stack[:len(r.stack)-1]
		delete(r.inProgress, top.node.Key)

		var v value
		if top.best.ok {
			v = value{score: top.best.score + 1, weight: top.best.weight + 1, ok: true}
			top.node.Resolve(v.score, v.weight)
		} else {
			top.node.MarkDeadEnd()
		}
		if len(r.stack) > 0 {
			r.stack[len(r.stack)-1].offer(v)
		}
	}
	return nil
}
