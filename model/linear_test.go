package model

import (
	"context"
	"handy/vectorize"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearPredict(t *testing.T) {
	t.Run("predicting zero before training", func(t *testing.T) {
		l := NewLinear(3)
		got, err := l.Predict(context.Background(), []vectorize.Encoding{{1, 0, 1}, {0, 1, 0}})

		require.NoError(t, err)
		require.Equal(t, []float32{0, 0}, got)
	})

	t.Run("rejecting inputs of the wrong size", func(t *testing.T) {
		l := NewLinear(3)
		_, err := l.Predict(context.Background(), []vectorize.Encoding{{1, 0}})

		require.Error(t, err)
	})
}

func TestLinearFit(t *testing.T) {
	ctx := context.Background()

	t.Run("moving predictions towards the target", func(t *testing.T) {
		l := NewLinear(3, WithLearningRate(0.1))
		ex := Example{Input: vectorize.Encoding{1, 0, 1}, Weight: 1, Target: 4}

		for range 200 {
			require.NoError(t, l.Fit(ctx, []Example{ex}))
		}
		got, err := l.Predict(ctx, []vectorize.Encoding{ex.Input})

		require.NoError(t, err)
		require.InDelta(t, 4.0, got[0], 0.01, "Repeated fits should converge on the target")
	})

	t.Run("ignoring examples with zero weight", func(t *testing.T) {
		l := NewLinear(3)
		require.NoError(t, l.Fit(ctx, []Example{{Input: vectorize.Encoding{1, 1, 1}, Weight: 0, Target: 9}}))

		got, err := l.Predict(ctx, []vectorize.Encoding{{1, 1, 1}})
		require.NoError(t, err)
		require.Equal(t, float32(0), got[0])
	})

	t.Run("scaling updates by example weight", func(t *testing.T) {
		light := NewLinear(2)
		heavy := NewLinear(2)
		input := vectorize.Encoding{1, 0}
		require.NoError(t, light.Fit(ctx, []Example{{Input: input, Weight: 1, Target: 1}}))
		require.NoError(t, heavy.Fit(ctx, []Example{{Input: input, Weight: 3, Target: 1}}))

		l, _ := light.Predict(ctx, []vectorize.Encoding{input})
		h, _ := heavy.Predict(ctx, []vectorize.Encoding{input})
		require.InDelta(t, 3*l[0], h[0], 1e-6)
	})
}
