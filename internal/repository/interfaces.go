// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// PlayerInterface exposes player CRUD operations.
type PlayerInterface interface {
	ListPlayers(ctx context.Context, offset, limit int) ([]entities.Player, error)
	GetPlayer(ctx context.Context, id int64) (*entities.Player, error)
	CreatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error)
	UpdatePlayer(ctx context.Context, id int64, player entities.Player) (*entities.Player, error)
	DeletePlayer(ctx context.Context, id int64) (bool, error)
}

// CoachInterface exposes coach CRUD operations.
type CoachInterface interface {
	ListCoaches(ctx context.Context, offset, limit int) ([]entities.Coach, error)
	GetCoach(ctx context.Context, id int64) (*entities.Coach, error)
	CreateCoach(ctx context.Context, coach entities.Coach) (*entities.Coach, error)
	UpdateCoach(ctx context.Context, id int64, coach entities.Coach) (*entities.Coach, error)
	DeleteCoach(ctx context.Context, id int64) (bool, error)
}

// PlaysForInterface exposes player-tenure CRUD operations keyed by the
// (player, team, season) triple.
type PlaysForInterface interface {
	ListPlaysFor(ctx context.Context, offset, limit int) ([]entities.PlaysFor, error)
	GetPlaysFor(ctx context.Context, key entities.TenureKey) (*entities.PlaysFor, error)
	CreatePlaysFor(ctx context.Context, rec entities.PlaysFor) (*entities.PlaysFor, error)
	UpdatePlaysFor(ctx context.Context, key entities.TenureKey, rec entities.PlaysFor) (*entities.PlaysFor, error)
	DeletePlaysFor(ctx context.Context, key entities.TenureKey) (bool, error)
}

// TrainsInterface exposes coach-tenure CRUD operations keyed by the
// (coach, team, season) triple.
type TrainsInterface interface {
	ListTrains(ctx context.Context, offset, limit int) ([]entities.Trains, error)
	GetTrains(ctx context.Context, key entities.TenureKey) (*entities.Trains, error)
	CreateTrains(ctx context.Context, rec entities.Trains) (*entities.Trains, error)
	UpdateTrains(ctx context.Context, key entities.TenureKey, rec entities.Trains) (*entities.Trains, error)
	DeleteTrains(ctx context.Context, key entities.TenureKey) (bool, error)
}
