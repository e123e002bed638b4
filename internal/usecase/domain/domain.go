package domain

import (
	"context"
	"time"

	"github.com/Jav1ex/football-team-management-personnel-service/config"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/repository"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/retry"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
//
// Retry policy: reads and deletes (idempotent) go through the backoff
// wrapper; creates and updates execute once so a connection failure after
// the statement reached the server cannot duplicate its side effect.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	retry   retry.Config
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	retryCfg config.RetryConfig,
) *Usecase {
	rc := retry.Default(entities.IsTransient)
	if retryCfg.MaxAttempts > 0 {
		rc.MaxAttempts = retryCfg.MaxAttempts
	}
	if retryCfg.BaseDelay > 0 {
		rc.BaseDelay = retryCfg.BaseDelay
	}
	if retryCfg.MaxDelay > 0 {
		rc.MaxDelay = retryCfg.MaxDelay
	}
	rc.Jitter = retryCfg.Jitter

	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
		retry:   rc,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
