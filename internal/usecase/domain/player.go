// Package domain contains application usecases orchestrating CRUD and the
// retry policy over the repository.
package domain

import (
	"context"
	"fmt"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/retry"
)

// ListPlayers returns a page of players, retrying transient store failures.
func (u *Usecase) ListPlayers(ctx context.Context, offset, limit int) ([]entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must be non-negative", entities.ErrInvalidArgument)
	}

	return retry.Do(ctx, u.retry, u.log, "player.list", func(ctx context.Context) ([]entities.Player, error) {
		return u.repo.ListPlayers(ctx, offset, limit)
	})
}

// Player fetches one player by id, retrying transient store failures.
func (u *Usecase) Player(ctx context.Context, id int64) (*entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: player id must be positive", entities.ErrInvalidArgument)
	}

	return retry.Do(ctx, u.retry, u.log, "player.get", func(ctx context.Context) (*entities.Player, error) {
		return u.repo.GetPlayer(ctx, id)
	})
}

// CreatePlayer validates and inserts a player. Writes execute once.
func (u *Usecase) CreatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validatePlayer(player); err != nil {
		return nil, err
	}

	return u.repo.CreatePlayer(ctx, player)
}

// UpdatePlayer replaces a player record by id. Writes execute once.
func (u *Usecase) UpdatePlayer(ctx context.Context, id int64, player entities.Player) (*entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: player id must be positive", entities.ErrInvalidArgument)
	}
	if err := validatePlayer(player); err != nil {
		return nil, err
	}

	return u.repo.UpdatePlayer(ctx, id, player)
}

// DeletePlayer removes a player by id. Deletion is idempotent, so transient
// store failures are retried.
func (u *Usecase) DeletePlayer(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return false, fmt.Errorf("%w: player id must be positive", entities.ErrInvalidArgument)
	}

	return retry.Do(ctx, u.retry, u.log, "player.delete", func(ctx context.Context) (bool, error) {
		return u.repo.DeletePlayer(ctx, id)
	})
}

func validatePlayer(p entities.Player) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth_date is required", entities.ErrInvalidArgument)
	}
	return nil
}
