package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listCoachesQuery = `SELECT coach_id, name, birth_date, nationality
FROM coaches
ORDER BY coach_id
OFFSET $1 LIMIT $2`
	getCoachQuery    = `SELECT coach_id, name, birth_date, nationality FROM coaches WHERE coach_id = $1`
	insertCoachQuery = `INSERT INTO coaches(name, birth_date, nationality) VALUES ($1, $2, $3) RETURNING coach_id`
	updateCoachQuery = `UPDATE coaches SET name = $2, birth_date = $3, nationality = $4 WHERE coach_id = $1`
	deleteCoachQuery = `DELETE FROM coaches WHERE coach_id = $1`
)

// ListCoaches returns a page of coaches in storage order.
func (p *Postgres) ListCoaches(ctx context.Context, offset, limit int) ([]entities.Coach, error) {
	coaches := make([]entities.Coach, 0)
	err := p.withConn(ctx, "coach.list", func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, listCoachesQuery, offset, limit)
		if err != nil {
			return fmt.Errorf("list coaches: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c entities.Coach
			if err := rows.Scan(&c.ID, &c.Name, &c.BirthDate, &c.Nationality); err != nil {
				return fmt.Errorf("scan coach: %w", err)
			}
			coaches = append(coaches, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return coaches, nil
}

// GetCoach fetches one coach by id.
func (p *Postgres) GetCoach(ctx context.Context, id int64) (*entities.Coach, error) {
	var c entities.Coach
	err := p.withConn(ctx, "coach.get", func(ctx context.Context, conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, getCoachQuery, id).
			Scan(&c.ID, &c.Name, &c.BirthDate, &c.Nationality)
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get coach: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCoach inserts a coach and returns it with the generated id.
func (p *Postgres) CreateCoach(ctx context.Context, coach entities.Coach) (*entities.Coach, error) {
	err := p.withConn(ctx, "coach.create", func(ctx context.Context, conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, insertCoachQuery, coach.Name, coach.BirthDate, coach.Nationality).
			Scan(&coach.ID)
		if err != nil {
			return fmt.Errorf("insert coach: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.log.Infow("coach created", "coach_id", coach.ID)
	return &coach, nil
}

// UpdateCoach replaces the full record by id. Missing keys report
// ErrNotFound; no row is created.
func (p *Postgres) UpdateCoach(ctx context.Context, id int64, coach entities.Coach) (*entities.Coach, error) {
	err := p.withConn(ctx, "coach.update", func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, updateCoachQuery, id, coach.Name, coach.BirthDate, coach.Nationality)
		if err != nil {
			return fmt.Errorf("update coach: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	coach.ID = id
	return &coach, nil
}

// DeleteCoach removes a coach by id and reports whether a row was removed.
func (p *Postgres) DeleteCoach(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := p.withConn(ctx, "coach.delete", func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, deleteCoachQuery, id)
		if err != nil {
			return fmt.Errorf("delete coach: %w", err)
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	if deleted {
		p.log.Infow("coach deleted", "coach_id", id)
	}
	return deleted, nil
}
