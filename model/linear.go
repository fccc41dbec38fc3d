package model

import (
	"context"
	"errors"
	"fmt"
	"handy/meta"
	"handy/vectorize"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas/blas32"
)

var ErrDiverged = errors.New("linear model diverged")

type LinearOption func(l *Linear)

// Linear is an in-process linear value model trained by weighted stochastic
// gradient descent on squared error.
type Linear struct {
	weights blas32.Vector
	bias    float32
	rate    float32
}

func WithLearningRate(rate float32) LinearOption {
	return func(l *Linear) {
		if rate > 0 {
			l.rate = rate
		}
	}
}

// NewLinear returns a zero-initialized model over inputs of the given size.
func NewLinear(size int, options ...LinearOption) *Linear {
	l := &Linear{
		weights: blas32.Vector{N: size, Inc: 1, Data: make([]float32, size)},
		rate:    meta.LEARNING_RATE,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Linear) predict(input vectorize.Encoding) (float32, error) {
	if len(input) != l.weights.N {
		return 0, fmt.Errorf("input has %d features, model expects %d", len(input), l.weights.N)
	}
	x := blas32.Vector{N: len(input), Inc: 1, Data: input}
	return blas32.Dot(l.weights, x) + l.bias, nil
}

func (l *Linear) Predict(_ context.Context, inputs []vectorize.Encoding) ([]float32, error) {
	outputs := make([]float32, len(inputs))
	for i, input := range inputs {
		y, err := l.predict(input)
		if err != nil {
			return nil, err
		}
		outputs[i] = y
	}
	return outputs, nil
}

// Fit applies one update per example: w += rate * weight * (target - y) * x.
func (l *Linear) Fit(_ context.Context, batch []Example) error {
	for _, ex := range batch {
		y, err := l.predict(ex.Input)
		if err != nil {
			return err
		}
		coeff := l.rate * ex.Weight * (ex.Target - y)
		if math32.IsNaN(coeff) || math32.IsInf(coeff, 0) {
			return ErrDiverged
		}
		x := blas32.Vector{N: len(ex.Input), Inc: 1, Data: ex.Input}
		blas32.Axpy(coeff, x, l.weights)
		l.bias += coeff
	}
	return nil
}
