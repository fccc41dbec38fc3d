package searcher

import (
	"context"
	"errors"
	"handy/vectorize"
)

var ErrCycleDetected = errors.New("cycle detected in state graph")

// Evaluator values frontier piles. Any model.Model is an Evaluator.
type Evaluator interface {
	Predict(ctx context.Context, inputs []vectorize.Encoding) ([]float32, error)
}

// Score and weight an exact win resolves to.
const (
	WinScore  = 0.0
	WinWeight = 1.0
)

// Weight of a score the model guessed at the search horizon.
const FrontierWeight = 0.0
