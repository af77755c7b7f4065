package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asal3ti/charizard/internal/analysis"
	"github.com/asal3ti/charizard/internal/config"
	"github.com/asal3ti/charizard/internal/db"
	"github.com/asal3ti/charizard/internal/handler"
	"github.com/asal3ti/charizard/internal/metrics"
	"github.com/asal3ti/charizard/internal/middleware"
	"github.com/asal3ti/charizard/internal/repository"
	"github.com/asal3ti/charizard/internal/router"
	"github.com/asal3ti/charizard/internal/service"
	"github.com/asal3ti/charizard/internal/youtube"
	"github.com/asal3ti/charizard/pkg/llm"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "charizard")
	log := middleware.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, pool, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open analytics store")
	}
	defer store.Close()
	metrics.Register(pool)

	rds := service.NewRedisService(cfg.RedisURL)
	defer rds.Close()

	yt, keyState := newYouTube(cfg, rds)
	engine := analysis.NewEngine(cfg.AnalysisWorkers)
	opts := service.Options{Timeout: cfg.AnalysisTimeout, MaxComments: cfg.MaxComments}

	llmClient, err := llm.New(llm.Config{
		Provider:     cfg.LLMProvider,
		OpenAIKey:    cfg.OpenAIKey,
		AnthropicKey: cfg.AnthropicKey,
		Model:        cfg.LLMModel,
	})
	switch {
	case errors.Is(err, llm.ErrNoProvider):
		log.Info().Msg("llm: no provider configured, AI endpoints return defaults")
	case err != nil:
		log.Fatal().Err(err).Msg("invalid LLM configuration")
	default:
		log.Info().Str("model", llmClient.Model()).Msg("llm: provider configured")
	}

	videoSvc := service.NewVideoService(yt, engine, store, opts)
	channelSvc := service.NewChannelService(yt, store, opts)
	compareSvc := service.NewCompareService(yt, engine, opts)
	sponsorSvc := service.NewSponsorshipService(yt, engine, opts)
	aiSvc := service.NewAIService(llmClient)
	queue := service.NewJobQueue(rds.Client(), cfg.JobResultTTL)

	jobWorker := service.NewJobWorker(queue, videoSvc, channelSvc, compareSvc)
	go jobWorker.Start(ctx)

	snapshots := service.NewSnapshotWorker(service.ChannelSnapshots(channelSvc), cfg.TrackedChannels, cfg.SnapshotInterval)
	go snapshots.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "Charizard API",
		ServerHeader: "Charizard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AnalysisTimeout + 10*time.Second,
	})

	router.Setup(app, &router.Handlers{
		Health:  handler.NewHealthHandler(store, rds.Client(), keyState),
		Text:    handler.NewTextHandler(engine),
		Video:   handler.NewVideoHandler(videoSvc, compareSvc, aiSvc),
		Channel: handler.NewChannelHandler(channelSvc),
		Stats:   handler.NewStatsHandler(store),
		Search:  handler.NewSearchHandler(sponsorSvc),
		AI:      handler.NewAIHandler(aiSvc, service.NewWorkflowService(videoSvc, aiSvc)),
		Jobs:    handler.NewJobHandler(queue),
	}, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("charizard starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// openStore opens the configured analytics store. pool is nil unless the
// Postgres store is used.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, *pgxpool.Pool, error) {
	if cfg.StoreDriver == "sqlite" {
		s, err := repository.OpenSQLite(ctx, cfg.SQLitePath)
		return s, nil, err
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, middleware.Logger)
	if err != nil {
		return nil, nil, err
	}
	s := repository.NewPGStore(pool)
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return s, pool, nil
}

// newYouTube builds the Data API client. Without keys the server still runs
// and YouTube-backed endpoints answer 503.
func newYouTube(cfg *config.Config, rds *service.RedisService) (youtube.API, func() youtube.KeyState) {
	client, err := youtube.New(youtube.Options{
		Keys:              cfg.YouTubeAPIKeys,
		Marks:             youtube.NewRedisMarks(rds.Client()),
		RequestsPerSecond: cfg.YouTubeRPS,
		Logger:            middleware.Logger.With().Str("component", "youtube").Logger(),
		OnCall: func(endpoint, outcome string) {
			metrics.YouTubeCalls.WithLabelValues(endpoint, outcome).Inc()
		},
		OnRotate: func(int) {
			metrics.KeyRotations.Inc()
		},
	})
	if err != nil {
		middleware.Logger.Warn().Err(err).Msg("youtube: client disabled")
		return youtube.Disabled{}, nil
	}
	return client, client.KeyState
}
