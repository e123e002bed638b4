package domain

import (
	"context"
	"fmt"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/retry"
)

// ListTrains returns a page of coach tenures, retrying transient store failures.
func (u *Usecase) ListTrains(ctx context.Context, offset, limit int) ([]entities.Trains, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must be non-negative", entities.ErrInvalidArgument)
	}

	return retry.Do(ctx, u.retry, u.log, "trains.list", func(ctx context.Context) ([]entities.Trains, error) {
		return u.repo.ListTrains(ctx, offset, limit)
	})
}

// Trains fetches one tenure by its composite key, retrying transient store failures.
func (u *Usecase) Trains(ctx context.Context, key entities.TenureKey) (*entities.Trains, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateTenureKey(key); err != nil {
		return nil, err
	}

	return retry.Do(ctx, u.retry, u.log, "trains.get", func(ctx context.Context) (*entities.Trains, error) {
		return u.repo.GetTrains(ctx, key)
	})
}

// CreateTrains validates and inserts a tenure row. Writes execute once.
func (u *Usecase) CreateTrains(ctx context.Context, rec entities.Trains) (*entities.Trains, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateTenureKey(rec.Key()); err != nil {
		return nil, err
	}
	if rec.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateTrains(ctx, rec)
}

// UpdateTrains replaces the tenure attributes for the composite key. Writes execute once.
func (u *Usecase) UpdateTrains(ctx context.Context, key entities.TenureKey, rec entities.Trains) (*entities.Trains, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateTenureKey(key); err != nil {
		return nil, err
	}
	if rec.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", entities.ErrInvalidArgument)
	}

	return u.repo.UpdateTrains(ctx, key, rec)
}

// DeleteTrains removes a tenure row, retrying transient store failures.
func (u *Usecase) DeleteTrains(ctx context.Context, key entities.TenureKey) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateTenureKey(key); err != nil {
		return false, err
	}

	return retry.Do(ctx, u.retry, u.log, "trains.delete", func(ctx context.Context) (bool, error) {
		return u.repo.DeleteTrains(ctx, key)
	})
}
