package appconfig

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AppConfig struct {
	GeneratorURL string `yaml:"generator_url" env:"HANDY_GENERATOR_URL" env-default:"http://127.0.0.1:8080"`
	// Empty trains the in-process linear model
	ModelURL string `yaml:"model_url" env:"HANDY_MODEL_URL"`

	LearningRate float32       `yaml:"learning_rate" env:"HANDY_LEARNING_RATE" env-default:"0.01"`
	Timeout      time.Duration `yaml:"timeout" env:"HANDY_TIMEOUT" env-default:"30s"`
	Retries      int           `yaml:"retries" env:"HANDY_RETRIES" env-default:"2"`

	DiagnosticsEvery  int `yaml:"diagnostics_every" env:"HANDY_DIAGNOSTICS_EVERY" env-default:"100"`
	DiagnosticSamples int `yaml:"diagnostic_samples" env:"HANDY_DIAGNOSTIC_SAMPLES" env-default:"100"`
	HoldoutSize       int `yaml:"holdout_size" env:"HANDY_HOLDOUT_SIZE" env-default:"1000"`

	DataDir    string `yaml:"data_dir" env:"HANDY_DATA_DIR" env-default:"data"`
	MetricsDir string `yaml:"metrics_dir" env:"HANDY_METRICS_DIR"`

	MaxRounds int    `yaml:"max_rounds" env:"HANDY_MAX_ROUNDS" env-default:"0"`
	Seed      int64  `yaml:"seed" env:"HANDY_SEED" env-default:"0"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

// LoadAppConfig reads the config file at path when one is given, then lets the
// environment override it.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
