package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cricpredict/winprob-api/internal/config"
	"github.com/cricpredict/winprob-api/internal/handlers"
	"github.com/cricpredict/winprob-api/internal/logger"
	"github.com/cricpredict/winprob-api/internal/logic"
	"github.com/cricpredict/winprob-api/internal/pipeline"
)

// @title Cricket Win Probability API
// @version 1.0
// @description Win probability for a T20 chase, from a pre-trained logistic regression pipeline.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("winprob-api", cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
	log.Info("server stopped")
}

// run serves until ctx is done. Resources it opens are released before it
// returns.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// No degraded mode: without a model there is nothing to serve
	log.Info("loading model", zap.String("path", cfg.ModelPath))
	model, err := pipeline.Load(cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	info := model.Info()
	log.Info("model loaded",
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.Strings("features", info.Features),
	)

	var classifier logic.Classifier = model
	var cache handlers.Pinger
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, cache will be bypassed until it recovers", zap.Error(err))
		}

		cached := logic.NewCachedClassifier(model, logic.NewRedisCache(rdb), logic.CacheConfig{
			Prefix: fmt.Sprintf("winprob:%s:%s", info.Name, info.Version),
			TTL:    cfg.CacheTTL,
		}, log.Sugar())
		classifier = cached
		cache = cached
		log.Info("inference cache enabled", zap.Duration("ttl", cfg.CacheTTL))
	}

	h := handlers.New(handlers.Config{
		Logger:     log,
		Prediction: logic.NewPredictionService(classifier, log.Sugar()),
		Model:      info,
		Cache:      cache,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
