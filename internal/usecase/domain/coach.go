package domain

import (
	"context"
	"fmt"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/retry"
)

// ListCoaches returns a page of coaches, retrying transient store failures.
func (u *Usecase) ListCoaches(ctx context.Context, offset, limit int) ([]entities.Coach, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must be non-negative", entities.ErrInvalidArgument)
	}

	return retry.Do(ctx, u.retry, u.log, "coach.list", func(ctx context.Context) ([]entities.Coach, error) {
		return u.repo.ListCoaches(ctx, offset, limit)
	})
}

// Coach fetches one coach by id, retrying transient store failures.
func (u *Usecase) Coach(ctx context.Context, id int64) (*entities.Coach, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: coach id must be positive", entities.ErrInvalidArgument)
	}

	return retry.Do(ctx, u.retry, u.log, "coach.get", func(ctx context.Context) (*entities.Coach, error) {
		return u.repo.GetCoach(ctx, id)
	})
}

// CreateCoach validates and inserts a coach. Writes execute once.
func (u *Usecase) CreateCoach(ctx context.Context, coach entities.Coach) (*entities.Coach, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateCoach(coach); err != nil {
		return nil, err
	}

	return u.repo.CreateCoach(ctx, coach)
}

// UpdateCoach replaces a coach record by id. Writes execute once.
func (u *Usecase) UpdateCoach(ctx context.Context, id int64, coach entities.Coach) (*entities.Coach, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: coach id must be positive", entities.ErrInvalidArgument)
	}
	if err := validateCoach(coach); err != nil {
		return nil, err
	}

	return u.repo.UpdateCoach(ctx, id, coach)
}

// DeleteCoach removes a coach by id, retrying transient store failures.
func (u *Usecase) DeleteCoach(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return false, fmt.Errorf("%w: coach id must be positive", entities.ErrInvalidArgument)
	}

	return retry.Do(ctx, u.retry, u.log, "coach.delete", func(ctx context.Context) (bool, error) {
		return u.repo.DeleteCoach(ctx, id)
	})
}

func validateCoach(c entities.Coach) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if c.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth_date is required", entities.ErrInvalidArgument)
	}
	return nil
}
