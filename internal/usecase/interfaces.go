package usecase

import (
	"context"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
)

// PlayerUsecaseInterface abstracts player operations for the delivery layer.
type PlayerUsecaseInterface interface {
	ListPlayers(ctx context.Context, offset, limit int) ([]entities.Player, error)
	Player(ctx context.Context, id int64) (*entities.Player, error)
	CreatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error)
	UpdatePlayer(ctx context.Context, id int64, player entities.Player) (*entities.Player, error)
	DeletePlayer(ctx context.Context, id int64) (bool, error)
}

// CoachUsecaseInterface abstracts coach operations.
type CoachUsecaseInterface interface {
	ListCoaches(ctx context.Context, offset, limit int) ([]entities.Coach, error)
	Coach(ctx context.Context, id int64) (*entities.Coach, error)
	CreateCoach(ctx context.Context, coach entities.Coach) (*entities.Coach, error)
	UpdateCoach(ctx context.Context, id int64, coach entities.Coach) (*entities.Coach, error)
	DeleteCoach(ctx context.Context, id int64) (bool, error)
}

// PlaysForUsecaseInterface abstracts player-tenure operations.
type PlaysForUsecaseInterface interface {
	ListPlaysFor(ctx context.Context, offset, limit int) ([]entities.PlaysFor, error)
	PlaysFor(ctx context.Context, key entities.TenureKey) (*entities.PlaysFor, error)
	CreatePlaysFor(ctx context.Context, rec entities.PlaysFor) (*entities.PlaysFor, error)
	UpdatePlaysFor(ctx context.Context, key entities.TenureKey, rec entities.PlaysFor) (*entities.PlaysFor, error)
	DeletePlaysFor(ctx context.Context, key entities.TenureKey) (bool, error)
}

// TrainsUsecaseInterface abstracts coach-tenure operations.
type TrainsUsecaseInterface interface {
	ListTrains(ctx context.Context, offset, limit int) ([]entities.Trains, error)
	Trains(ctx context.Context, key entities.TenureKey) (*entities.Trains, error)
	CreateTrains(ctx context.Context, rec entities.Trains) (*entities.Trains, error)
	UpdateTrains(ctx context.Context, key entities.TenureKey, rec entities.Trains) (*entities.Trains, error)
	DeleteTrains(ctx context.Context, key entities.TenureKey) (bool, error)
}
