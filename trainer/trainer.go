package trainer

import (
	"context"
	"errors"
	"fmt"
	"handy/dataset"
	"handy/experiments/metrics"
	"handy/generator"
	"handy/graph"
	"handy/meta"
	"handy/model"
	"handy/searcher"
	"handy/vectorize"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(t *Trainer)

// Trainer improves a value model online from graphs expanded by a generator.
type Trainer struct {
	generator generator.Generator
	model     model.Model
	index     *vectorize.CardIndex

	maxRounds         int
	diagnosticsEvery  int
	diagnosticSamples int
	holdout           []dataset.Record
	seed              int64

	rng       *rand.Rand
	collector metrics.Collector
	writer    *metrics.Writer
	round     int
}

// WithMaxRounds stops Run after n rounds. Zero runs until cancelled.
func WithMaxRounds(n int) Option {
	return func(t *Trainer) {
		t.maxRounds = n
	}
}

// WithDiagnosticsEvery runs the diagnostics every n rounds. Zero disables them.
func WithDiagnosticsEvery(n int) Option {
	return func(t *Trainer) {
		t.diagnosticsEvery = n
	}
}

func WithDiagnosticSamples(n int) Option {
	return func(t *Trainer) {
		t.diagnosticSamples = n
	}
}

// WithHoldout sets the labeled records the diagnostics score the model on.
func WithHoldout(records []dataset.Record) Option {
	return func(t *Trainer) {
		t.holdout = records
	}
}

// WithSeed fixes the shuffle order. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(t *Trainer) {
		t.seed = seed
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(t *Trainer) {
		t.collector = c
	}
}

// WithWriter records round and diagnostic metrics as CSV.
func WithWriter(w *metrics.Writer) Option {
	return func(t *Trainer) {
		t.writer = w
	}
}

func New(gen generator.Generator, m model.Model, index *vectorize.CardIndex, options ...Option) *Trainer {
	t := &Trainer{
		generator:         gen,
		model:             m,
		index:             index,
		diagnosticsEvery:  meta.DIAGNOSTICS_EVERY,
		diagnosticSamples: meta.DIAGNOSTIC_SAMPLES,
		collector:         metrics.NewCollector(),
	}
	for _, option := range options {
		option(t)
	}
	if t.seed == 0 {
		t.seed = time.Now().UnixNano()
	}
	t.rng = rand.New(rand.NewSource(uint64(t.seed)))
	return t
}

// Init freezes the card index from the first generated example, unless the
// caller already initialized it.
func (t *Trainer) Init(ctx context.Context) error {
	if t.index.Initialized() {
		return nil
	}
	ex, err := t.generator.Example(ctx)
	if err != nil {
		return err
	}
	if err := t.index.Init(ex.ParentPile); err != nil {
		return fmt.Errorf("failed to build card index: %w", err)
	}
	log.Info().Msgf("Card index built from %v", ex.ParentPile)
	return nil
}

// Run trains round after round until ctx is cancelled, the round limit is
// reached or a round fails.
func (t *Trainer) Run(ctx context.Context) error {
	if err := t.Init(ctx); err != nil {
		return err
	}

	for t.maxRounds == 0 || t.round < t.maxRounds {
		if ctx.Err() != nil {
			break
		}
		m, err := t.Round(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return fmt.Errorf("round %d: %w", t.round, err)
		}
		t.record(m)

		if t.diagnosticsEvery > 0 && t.round%t.diagnosticsEvery == 0 {
			d := t.Diagnose(ctx)
			if t.writer != nil {
				if err := t.writer.WriteDiagnostic(d); err != nil {
					log.Warn().Err(err).Msg("failed to record diagnostics")
				}
			}
		}
	}

	log.Info().Msgf("Training stopped after %d rounds", t.round)
	return nil
}

// Round expands one deep example, scores it and fits the model on every
// example it yields.
func (t *Trainer) Round(ctx context.Context) (metrics.RoundMetric, error) {
	t.round++
	t.collector.Start(t.round)

	deep, err := t.generator.DeepExample(ctx)
	if err != nil {
		return metrics.RoundMetric{}, err
	}
	table, err := graph.Build(t.index, deep.RootPile, deep.Nodes, deep.MaxDepth)
	if err != nil {
		return metrics.RoundMetric{}, err
	}
	reach := table.Reachable()
	t.collector.SetGraph(table.Len(), reach.Reachable, reach.Dangling)

	summary, err := searcher.Resolve(ctx, table, t.model)
	if err != nil {
		return metrics.RoundMetric{}, err
	}
	t.collector.SetSearch(summary.Resolved, summary.Frontier, summary.DeadEnds)

	batch := searcher.Extract(table)
	if len(batch) == 0 {
		log.Debug().Int("round", t.round).Int("nodes", table.Len()).Msg("no training examples, skipping update")
		return t.collector.Complete(), nil
	}
	t.collector.AddExamples(len(batch))

	winning, err := t.augment(ctx, len(batch))
	if err != nil {
		return metrics.RoundMetric{}, err
	}
	t.collector.AddAugmented(len(winning))
	batch = append(batch, winning...)

	t.rng.Shuffle(len(batch), func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})
	for _, ex := range batch {
		if err := t.model.Fit(ctx, []model.Example{ex}); err != nil {
			return metrics.RoundMetric{}, fmt.Errorf("failed to fit model: %w", err)
		}
	}
	return t.collector.Complete(), nil
}

// augment draws one winning pile per WINNING_RATIO extracted examples.
func (t *Trainer) augment(ctx context.Context, extracted int) ([]model.Example, error) {
	n := extracted / meta.WINNING_RATIO
	examples := make([]model.Example, 0, n)
	for range n {
		pile, err := t.generator.WinningPile(ctx)
		if err != nil {
			return nil, err
		}
		input, err := t.index.Encode(pile)
		if err != nil {
			return nil, fmt.Errorf("failed to encode winning pile: %w", err)
		}
		examples = append(examples, model.Example{
			Input:  input,
			Weight: searcher.WinWeight,
			Target: searcher.WinScore,
		})
	}
	return examples, nil
}

func (t *Trainer) record(m metrics.RoundMetric) {
	log.Info().
		Str("id", m.ID.String()).
		Int("round", m.Round).
		Int("nodes", m.Nodes).
		Int("dangling", m.Dangling).
		Int("frontier", m.Frontier).
		Int("dead_ends", m.DeadEnds).
		Int("examples", m.Examples).
		Int("augmented", m.Augmented).
		Dur("duration", m.Duration).
		Msg("round complete")
	if t.writer == nil {
		return
	}
	if err := t.writer.WriteRound(m); err != nil {
		log.Warn().Err(err).Msg("failed to record round")
	}
}
