package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cricpredict/winprob-api/internal/logic"
	"github.com/cricpredict/winprob-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// Pinger is a dependency that can report its health
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Logger *zap.Logger
	// Services
	Prediction logic.PredictionService
	// Loaded artifact metadata
	Model models.ModelInfo
	// Optional inference cache; nil when caching is disabled
	Cache Pinger
}

type Handler struct {
	logger     *zap.SugaredLogger
	validate   *validator.Validate
	prediction logic.PredictionService
	model      models.ModelInfo
	cache      Pinger
}

func New(cfg Config) *Handler {
	return &Handler{
		logger:     cfg.Logger.Sugar(),
		validate:   validator.New(),
		prediction: cfg.Prediction,
		model:      cfg.Model,
		cache:      cfg.Cache,
	}
}
