package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	RedisURL string `env:"REDIS_CACHE_URL" envDefault:"redis://localhost:6379"`

	MayanURL      string `env:"MAYAN_URL"`
	MayanUser     string `env:"MAYAN_USER"`
	MayanPassword string `env:"MAYAN_PASSWORD"`

	ComdirectClientID      string `env:"COMDIRECT_CLIENT_ID"`
	ComdirectClientSecret  string `env:"COMDIRECT_CLIENT_SECRET"`
	ComdirectZugangsnummer string `env:"COMDIRECT_ZUGANGSNUMMER"`
	ComdirectPin           string `env:"COMDIRECT_PIN"`

	RulesDir string `env:"RULES_DIR" envDefault:"/app/config"`

	// PostboxDocumentType is the Mayan document type label imported
	// postbox documents are filed under.
	PostboxDocumentType string `env:"POSTBOX_DOCUMENT_TYPE" envDefault:"Bank Statement"`

	// ChallengeMaxAttempts of 0 polls the TAN challenge until it leaves
	// the pending state.
	ChallengePollInterval time.Duration `env:"CHALLENGE_POLL_INTERVAL" envDefault:"3s"`
	ChallengeMaxAttempts  int           `env:"CHALLENGE_MAX_ATTEMPTS" envDefault:"0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
