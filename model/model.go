package model

import (
	"context"
	"handy/vectorize"
)

// Example is one weighted training target for the value model.
type Example struct {
	Input  vectorize.Encoding `json:"input"`
	Weight float32            `json:"weight"`
	Target float32            `json:"target"`
}

// Model estimates the number of moves left to a win for encoded piles and
// can be updated incrementally.
type Model interface {
	Predict(ctx context.Context, inputs []vectorize.Encoding) ([]float32, error)
	Fit(ctx context.Context, batch []Example) error
}
