package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Vovarama1992/go-utils/logger"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Vovarama1992/daily_support/internal/affirmation"
	"github.com/Vovarama1992/daily_support/internal/ai"
	"github.com/Vovarama1992/daily_support/internal/config"
	"github.com/Vovarama1992/daily_support/internal/delivery"
	"github.com/Vovarama1992/daily_support/internal/error_notificator"
	"github.com/Vovarama1992/daily_support/internal/history"
	"github.com/Vovarama1992/daily_support/internal/job"
	"github.com/Vovarama1992/daily_support/internal/phrases"
	"github.com/Vovarama1992/daily_support/internal/schedule"
	"github.com/Vovarama1992/daily_support/internal/telegram"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func run() error {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gate, err := schedule.NewGate(cfg.Location, cfg.SendHour, cfg.MinuteWindow)
	if err != nil {
		return err
	}

	// вне окна разовый запуск не трогает ни модель, ни Telegram
	if cfg.Mode == config.ModeOnce {
		if now := gate.Now(); !gate.IsSendTime(now) {
			fmt.Println(gate.SkipMessage(now))
			return nil
		}
	}

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	store, closeStore, err := newHistoryStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	bot, err := telegram.NewBot(cfg.BotToken, "")
	if err != nil {
		return err
	}

	openAIClient := ai.NewOpenAIClient(ai.OpenAIConfig{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.OpenAITimeout,
	})

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	rnd := newRand(cfg.RandomSeed)
	sim := phrases.NewSimilarity(cfg.SimilarityThreshold)

	historyService := history.NewService(store, cfg.HistoryLimit, zl)
	selector := phrases.NewSelector(phrases.DefaultStyleRules(), phrases.DefaultBanlist(), sim, cfg.HistoryLimit, rnd)
	fallback := phrases.NewFallback(sim, rnd)

	pipeline := affirmation.NewService(
		ai.NewGenerator(openAIClient),
		historyService,
		selector,
		fallback,
		affirmation.Options{BatchSize: cfg.BatchSize, Attempts: cfg.Attempts},
		zl,
	)

	errService := error_notificator.NewService(error_notificator.NewInfra(bot, cfg.AdminChatID))
	sender := telegram.NewSender(bot, cfg.ChatID)
	runner := job.NewRunner(gate, pipeline, sender, errService, zl)

	// =========================================================================
	// ONCE
	// =========================================================================

	if cfg.Mode == config.ModeOnce {
		res, err := runner.RunOnce(ctx, false)
		if err != nil {
			return err
		}
		if res.Status == job.StatusSent {
			fmt.Println("Message sent:", res.Statement.Text)
		}
		return nil
	}

	// =========================================================================
	// DAEMON: BACKGROUND JOB + HTTP
	// =========================================================================

	go runner.Loop(ctx, cfg.TickInterval)

	authService := delivery.NewAuthService(cfg.AuthSecret, cfg.AdminPassword, 24*time.Hour)
	r := delivery.NewRouter(
		delivery.NewAuthHandler(authService),
		delivery.NewAdminHandler(historyService, runner, zl),
		authService,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + srv.Addr,
		Service: "daily_support",
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func newHistoryStore(ctx context.Context, cfg *config.Config) (history.Store, func(), error) {
	noop := func() {}

	switch cfg.HistoryBackend {
	case config.BackendS3:
		store, err := history.NewS3Store(ctx, history.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Key:       cfg.S3.Key,
			Insecure:  cfg.S3.Insecure,
		})
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("db ping failed: %w", err)
		}
		return history.NewPostgresStore(db, cfg.ChatID), func() { db.Close() }, nil

	default:
		log.Printf("[history] file store at %s", cfg.HistoryFile)
		return history.NewFileStore(cfg.HistoryFile), noop, nil
	}
}

func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
