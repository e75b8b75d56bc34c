package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cricpredict/winprob-api/internal/config"
)

func testConfig(modelPath string) *config.Config {
	return &config.Config{
		Port:            0,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
		AllowedOrigins:  []string{"*"},
		ModelPath:       modelPath,
		CacheTTL:        time.Minute,
	}
}

func TestRun_ReturnsStartupErrors(t *testing.T) {
	shipped := filepath.Join("..", "..", "models", "pipeline.yaml")

	tests := []struct {
		name     string
		model    string
		redisURL string
		wantErr  string
	}{
		{"Missing model", filepath.Join(t.TempDir(), "missing.yaml"), "", "load model"},
		{"Invalid redis URL", shipped, "not-a-url", "invalid REDIS_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(tt.model)
			cfg.RedisURL = tt.redisURL

			err := run(context.Background(), cfg, zap.NewNop())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("run() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestRun_StopsWhenContextDone(t *testing.T) {
	tests := []struct {
		name     string
		redisURL string
	}{
		{"Without cache", ""},
		{"With unreachable cache", "redis://127.0.0.1:1/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(filepath.Join("..", "..", "models", "pipeline.yaml"))
			cfg.RedisURL = tt.redisURL

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			done := make(chan error, 1)
			go func() { done <- run(ctx, cfg, zap.NewNop()) }()

			select {
			case err := <-done:
				if err != nil {
					t.Fatalf("run() error = %v, want nil", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("run() did not return after context was cancelled")
			}
		})
	}
}
