package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/imroc/req/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mayan-tools/mayan-comdirect-importer/pkg/comdirect"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/config"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/locker"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/mayan"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/reconciler"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/sessionstore"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/worker"
)

// redlockAdapter narrows the concrete redis lock to the queue's Lock
// interface.
type redlockAdapter struct {
	redlock *locker.Redlock
}

func (a redlockAdapter) Acquire(ctx context.Context) (worker.Lock, error) {
	return a.redlock.Acquire(ctx)
}

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := log.WithContext(context.Background())

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	rules, err := config.LoadRules(cfg.RulesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load rule files")
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse redis url")
	}
	redisClient := redis.NewClient(redisOpts)

	sessions := sessionstore.NewRedis(redisClient)

	bank := comdirect.NewClient(comdirect.Config{
		Credentials: comdirect.Credentials{
			ClientID:      cfg.ComdirectClientID,
			ClientSecret:  cfg.ComdirectClientSecret,
			Zugangsnummer: cfg.ComdirectZugangsnummer,
			Pin:           cfg.ComdirectPin,
		},
		PollInterval:    cfg.ChallengePollInterval,
		MaxPollAttempts: cfg.ChallengeMaxAttempts,
	}, req.C())

	if state, err := sessions.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to load cached session state")
	} else if state != nil {
		bank.RestoreState(*state)
	}

	docs := mayan.NewMayan(cfg.MayanURL, req.C())
	if err = docs.Login(ctx, cfg.MayanUser, cfg.MayanPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to log in to mayan")
	}
	if err = docs.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load mayan document types and tags")
	}

	rec := reconciler.NewReconciler(&reconciler.Config{
		Bank:                bank,
		Docs:                docs,
		Sessions:            sessions,
		Rules:               rules,
		PostboxDocumentType: cfg.PostboxDocumentType,
	})

	jobs := worker.NewQueue(ctx, redlockAdapter{
		redlock: locker.NewRedlock(redisClient),
	})
	defer jobs.StopWait()

	handle := NewHandler(rec, jobs)

	srv := &http.Server{
		Handler:      handle.Router(),
		Addr:         cfg.ListenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	panic(srv.ListenAndServe())
}
