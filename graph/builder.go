package graph

import (
	"fmt"
	"handy/game"
	"handy/vectorize"

	"github.com/idsulik/go-collections/v3/queue"
	"github.com/rs/zerolog/log"
)

// Entry is one flat node description produced by the state generator.
type Entry struct {
	Pile     game.Pile
	Depth    int
	Winner   game.Winner
	Children []game.Pile
}

// Table holds every node of one round's graph, keyed by pile key.
type Table struct {
	Root       string
	MaxDepth   int
	Duplicates int // entries that overwrote an earlier entry with the same key

	nodes map[string]*Node
	order []string
}

func NewTable(root string, maxDepth int) *Table {
	return &Table{
		Root:     root,
		MaxDepth: maxDepth,
		nodes:    make(map[string]*Node),
	}
}

// Add inserts a node; a node with the same key is replaced in place.
func (t *Table) Add(node *Node) {
	if _, ok := t.nodes[node.Key]; ok {
		t.Duplicates++
	} else {
		t.order = append(t.order, node.Key)
	}
	t.nodes[node.Key] = node
}

func (t *Table) Get(key string) (*Node, bool) {
	node, ok := t.nodes[key]
	return node, ok
}

func (t *Table) Len() int {
	return len(t.order)
}

// Nodes returns the nodes in insertion order.
func (t *Table) Nodes() []*Node {
	nodes := make([]*Node, len(t.order))
	for i, key := range t.order {
		nodes[i] = t.nodes[key]
	}
	return nodes
}

// Build materializes the node table of a generated graph. Children may refer
// to keys whose entries come later, or never.
func Build(index *vectorize.CardIndex, root game.Pile, entries []Entry, maxDepth int) (*Table, error) {
	table := NewTable(root.Key(), maxDepth)

	for _, entry := range entries {
		key := entry.Pile.Key()
		encoding, err := index.Encode(entry.Pile)
		if err != nil {
			return nil, fmt.Errorf("failed to encode node %s: %w", key, err)
		}

		children := make([]string, 0, len(entry.Children))
		seen := make(map[string]bool, len(entry.Children))
		for _, child := range entry.Children {
			childKey := child.Key()
			if seen[childKey] {
				continue
			}
			seen[childKey] = true
			children = append(children, childKey)
		}

		if _, ok := table.Get(key); ok {
			log.Warn().Str("key", key).Msg("duplicate node in generated graph, keeping the last entry")
		}
		table.Add(&Node{
			Key:      key,
			Pile:     entry.Pile,
			Depth:    entry.Depth,
			Outcome:  game.OutcomeOf(entry.Winner),
			Children: children,
			Encoding: encoding,
		})
	}

	if _, ok := table.Get(table.Root); !ok {
		log.Warn().Str("root", table.Root).Msg("generated graph has no entry for its root pile")
	}
	return table, nil
}

// Reach summarizes the part of a table connected to its root.
type Reach struct {
	Reachable int // nodes with data reachable from the root
	Dangling  int // child keys reachable from the root without node data
}

// Reachable walks the table breadth first from the root.
func (t *Table) Reachable() Reach {
	var reach Reach
	q := queue.New[string](len(t.order) + 1)
	seen := map[string]bool{t.Root: true}
	q.Enqueue(t.Root)

	for !q.IsEmpty() {
		key, _ := q.Dequeue()
		node, ok := t.nodes[key]
		if !ok {
			reach.Dangling++
			continue
		}
		reach.Reachable++
		for _, child := range node.Children {
			if !seen[child] {
				seen[child] = true
				q.Enqueue(child)
			}
		}
	}
	return reach
}
