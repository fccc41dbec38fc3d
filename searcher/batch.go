package searcher

import (
	"handy/graph"
	"handy/model"
)

// Extract returns one training example per resolved node with a positive
// weight, in table order. Nodes whose value only echoes a model guess carry
// weight 0 and are left out.
func Extract(table *graph.Table) []model.Example {
	batch := make([]model.Example, 0, table.Len())
	for _, node := range table.Nodes() {
		score, weight, ok := node.Resolution()
		if !ok || weight <= 0 {
			continue
		}
		batch = append(batch, model.Example{
			Input:  node.Encoding,
			Weight: weight,
			Target: score,
		})
	}
	return batch
}
