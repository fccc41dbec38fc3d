package main

import (
	"context"
	"flag"
	"handy/appconfig"
	"handy/communication/client"
	"handy/dataset"
	"handy/experiments/metrics"
	"handy/generator"
	"handy/model"
	"handy/trainer"
	"handy/vectorize"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	hero := flag.String("hero", "", "Hero class of the matchup")
	monster := flag.String("monster", "", "Monster class of the matchup")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := appconfig.LoadAppConfig(os.Getenv("HANDY_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *hero == "" || *monster == "" {
		log.Fatal().Msg("both -hero and -monster are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	options := []trainer.Option{
		trainer.WithMaxRounds(cfg.MaxRounds),
		trainer.WithDiagnosticsEvery(cfg.DiagnosticsEvery),
		trainer.WithDiagnosticSamples(cfg.DiagnosticSamples),
		trainer.WithSeed(cfg.Seed),
	}

	path := dataset.MatchupPath(cfg.DataDir, *hero, *monster)
	records, err := dataset.Load(path)
	if err != nil {
		log.Warn().Err(err).Msg("holdout diagnostics disabled")
	} else {
		holdout, _ := dataset.Split(records, cfg.HoldoutSize)
		options = append(options, trainer.WithHoldout(holdout))
		log.Info().Msgf("Loaded %d holdout records from %s", len(holdout), path)
	}

	if cfg.MetricsDir != "" {
		writer, err := metrics.NewWriter(cfg.MetricsDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create metrics writer")
		}
		options = append(options, trainer.WithWriter(writer))
		log.Info().Msgf("Writing metrics to %s", writer.Dir())
	}

	clientOptions := []client.Option{client.WithTimeout(cfg.Timeout), client.WithRetries(cfg.Retries)}
	gen := generator.NewRemote(client.NewClient(cfg.GeneratorURL, clientOptions...))

	var m model.Model
	if cfg.ModelURL == "" {
		m = model.NewLinear(vectorize.InputSize, model.WithLearningRate(cfg.LearningRate))
		log.Info().Msgf("Training a local linear model with learning rate %v", cfg.LearningRate)
	} else {
		m = model.NewRemote(client.NewClient(cfg.ModelURL, clientOptions...))
		log.Info().Msgf("Training the model served at %s", cfg.ModelURL)
	}

	t := trainer.New(gen, m, vectorize.NewCardIndex(), options...)
	log.Info().Msgf("Training %s against %s", *hero, *monster)
	if err := t.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}
}
