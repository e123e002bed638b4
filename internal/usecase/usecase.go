package usecase

import (
	"context"
	"time"

	"github.com/Jav1ex/football-team-management-personnel-service/config"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/repository"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	PlayerUsecaseInterface
	CoachUsecaseInterface
	PlaysForUsecaseInterface
	TrainsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration, retryCfg config.RetryConfig) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, retryCfg)
}
