package trainer

import (
	"context"
	"handy/experiments/metrics"
	"handy/game"
	"handy/utils"
	"handy/vectorize"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog/log"
)

// Diagnose compares predictions for fresh winning and non-winning piles and
// scores the model on the holdout set. Failures are logged and the metric
// carries whatever was measured.
func (t *Trainer) Diagnose(ctx context.Context) metrics.DiagnosticMetric {
	d := metrics.DiagnosticMetric{Round: t.round}

	winning := t.samplePiles(ctx, t.generator.WinningPile)
	nonWinning := t.samplePiles(ctx, func(ctx context.Context) (game.Pile, error) {
		ex, err := t.generator.Example(ctx)
		return ex.ParentPile, err
	})
	d.Samples = min(len(winning), len(nonWinning))

	if scores, ok := t.predict(ctx, winning); ok {
		d.WinningMean = utils.Mean(scores)
	}
	if scores, ok := t.predict(ctx, nonWinning); ok {
		d.NonWinningMean = utils.Mean(scores)
	}
	log.Info().Msgf("Round %d: winning piles predict %.3f, non-winning piles predict %.3f (%d samples)",
		t.round, d.WinningMean, d.NonWinningMean, d.Samples)

	d.Holdout, d.MSE = t.holdoutError(ctx)
	if d.Holdout > 0 {
		d.RMSE = math32.Sqrt(d.MSE)
		log.Info().Msgf("Round %d: holdout MSE %.3f, RMSE %.3f over %d records", t.round, d.MSE, d.RMSE, d.Holdout)
	}
	return d
}

func (t *Trainer) samplePiles(ctx context.Context, draw func(context.Context) (game.Pile, error)) []vectorize.Encoding {
	inputs := make([]vectorize.Encoding, 0, t.diagnosticSamples)
	for range t.diagnosticSamples {
		pile, err := draw(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("diagnostics: failed to draw pile")
			break
		}
		input, err := t.index.Encode(pile)
		if err != nil {
			log.Warn().Err(err).Str("pile", pile.String()).Msg("diagnostics: skipping pile")
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs
}

func (t *Trainer) predict(ctx context.Context, inputs []vectorize.Encoding) ([]float32, bool) {
	if len(inputs) == 0 {
		return nil, false
	}
	scores, err := t.model.Predict(ctx, inputs)
	if err != nil {
		log.Warn().Err(err).Msg("diagnostics: prediction failed")
		return nil, false
	}
	return scores, true
}

func (t *Trainer) holdoutError(ctx context.Context) (int, float32) {
	inputs := make([]vectorize.Encoding, 0, len(t.holdout))
	targets := make([]float32, 0, len(t.holdout))
	for _, r := range t.holdout {
		input, err := t.index.Encode(r.Pile)
		if err != nil {
			continue
		}
		inputs = append(inputs, input)
		targets = append(targets, r.Eval.Score())
	}
	if skipped := len(t.holdout) - len(inputs); skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("diagnostics: holdout records with cards outside the index")
	}

	scores, ok := t.predict(ctx, inputs)
	if !ok || len(scores) != len(targets) {
		return 0, 0
	}
	var sum float32
	for i, score := range scores {
		diff := score - targets[i]
		sum += diff * diff
	}
	return len(scores), sum / float32(len(scores))
}
