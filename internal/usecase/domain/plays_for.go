package domain

import (
	"context"
	"fmt"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/retry"
)

// ListPlaysFor returns a page of player tenures, retrying transient store failures.
func (u *Usecase) ListPlaysFor(ctx context.Context, offset, limit int) ([]entities.PlaysFor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must be non-negative", entities.ErrInvalidArgument)
	}

	return retry.Do(ctx, u.retry, u.log, "plays_for.list", func(ctx context.Context) ([]entities.PlaysFor, error) {
		return u.repo.ListPlaysFor(ctx, offset, limit)
	})
}

// PlaysFor fetches one tenure by its composite key, retrying transient store failures.
func (u *Usecase) PlaysFor(ctx context.Context, key entities.TenureKey) (*entities.PlaysFor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateTenureKey(key); err != nil {
		return nil, err
	}

	return retry.Do(ctx, u.retry, u.log, "plays_for.get", func(ctx context.Context) (*entities.PlaysFor, error) {
		return u.repo.GetPlaysFor(ctx, key)
	})
}

// CreatePlaysFor validates and inserts a tenure row. Writes execute once.
func (u *Usecase) CreatePlaysFor(ctx context.Context, rec entities.PlaysFor) (*entities.PlaysFor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateTenureKey(rec.Key()); err != nil {
		return nil, err
	}
	if rec.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreatePlaysFor(ctx, rec)
}

// UpdatePlaysFor replaces the tenure attributes for the composite key. Writes execute once.
func (u *Usecase) UpdatePlaysFor(ctx context.Context, key entities.TenureKey, rec entities.PlaysFor) (*entities.PlaysFor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateTenureKey(key); err != nil {
		return nil, err
	}
	if rec.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", entities.ErrInvalidArgument)
	}

	return u.repo.UpdatePlaysFor(ctx, key, rec)
}

// DeletePlaysFor removes a tenure row, retrying transient store failures.
func (u *Usecase) DeletePlaysFor(ctx context.Context, key entities.TenureKey) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateTenureKey(key); err != nil {
		return false, err
	}

	return retry.Do(ctx, u.retry, u.log, "plays_for.delete", func(ctx context.Context) (bool, error) {
		return u.repo.DeletePlaysFor(ctx, key)
	})
}

func validateTenureKey(key entities.TenureKey) error {
	if key.SubjectID <= 0 || key.TeamID <= 0 || key.SeasonID <= 0 {
		return fmt.Errorf("%w: subject, team and season ids must be positive", entities.ErrInvalidArgument)
	}
	return nil
}
