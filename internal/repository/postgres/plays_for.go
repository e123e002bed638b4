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
	listPlaysForQuery = `SELECT player_id, team_id, season_id, start_date, end_date
FROM plays_for
ORDER BY player_id, team_id, season_id
OFFSET $1 LIMIT $2`
	getPlaysForQuery = `SELECT player_id, team_id, season_id, start_date, end_date
FROM plays_for
WHERE player_id = $1 AND team_id = $2 AND season_id = $3`
	insertPlaysForQuery = `INSERT INTO plays_for(player_id, team_id, season_id, start_date, end_date)
VALUES ($1, $2, $3, $4, $5)`
	updatePlaysForQuery = `UPDATE plays_for SET start_date = $4, end_date = $5
WHERE player_id = $1 AND team_id = $2 AND season_id = $3`
	deletePlaysForQuery = `DELETE FROM plays_for WHERE player_id = $1 AND team_id = $2 AND season_id = $3`
)

// ListPlaysFor returns a page of player tenures in storage order.
func (p *Postgres) ListPlaysFor(ctx context.Context, offset, limit int) ([]entities.PlaysFor, error) {
	recs := make([]entities.PlaysFor, 0)
	err := p.withConn(ctx, "plays_for.list", func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, listPlaysForQuery, offset, limit)
		if err != nil {
			return fmt.Errorf("list plays_for: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r entities.PlaysFor
			if err := rows.Scan(&r.PlayerID, &r.TeamID, &r.SeasonID, &r.StartDate, &r.EndDate); err != nil {
				return fmt.Errorf("scan plays_for: %w", err)
			}
			recs = append(recs, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// GetPlaysFor fetches one tenure row by its composite key.
func (p *Postgres) GetPlaysFor(ctx context.Context, key entities.TenureKey) (*entities.PlaysFor, error) {
	var r entities.PlaysFor
	err := p.withConn(ctx, "plays_for.get", func(ctx context.Context, conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, getPlaysForQuery, key.SubjectID, key.TeamID, key.SeasonID).
			Scan(&r.PlayerID, &r.TeamID, &r.SeasonID, &r.StartDate, &r.EndDate)
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get plays_for: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreatePlaysFor inserts a tenure row. A second row for the same
// (player, team, season) triple violates the composite primary key and
// surfaces as a fatal store failure.
func (p *Postgres) CreatePlaysFor(ctx context.Context, rec entities.PlaysFor) (*entities.PlaysFor, error) {
	err := p.withConn(ctx, "plays_for.create", func(ctx context.Context, conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, insertPlaysForQuery,
			rec.PlayerID, rec.TeamID, rec.SeasonID, rec.StartDate, rec.EndDate)
		if err != nil {
			return fmt.Errorf("insert plays_for: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.log.Infow("plays_for created", "player_id", rec.PlayerID, "team_id", rec.TeamID, "season_id", rec.SeasonID)
	return &rec, nil
}

// UpdatePlaysFor replaces the tenure attributes for the composite key.
func (p *Postgres) UpdatePlaysFor(ctx context.Context, key entities.TenureKey, rec entities.PlaysFor) (*entities.PlaysFor, error) {
	err := p.withConn(ctx, "plays_for.update", func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, updatePlaysForQuery,
			key.SubjectID, key.TeamID, key.SeasonID, rec.StartDate, rec.EndDate)
		if err != nil {
			return fmt.Errorf("update plays_for: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rec.PlayerID, rec.TeamID, rec.SeasonID = key.SubjectID, key.TeamID, key.SeasonID
	return &rec, nil
}

// DeletePlaysFor removes a tenure row and reports whether a row was removed.
func (p *Postgres) DeletePlaysFor(ctx context.Context, key entities.TenureKey) (bool, error) {
	var deleted bool
	err := p.withConn(ctx, "plays_for.delete", func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, deletePlaysForQuery, key.SubjectID, key.TeamID, key.SeasonID)
		if err != nil {
			return fmt.Errorf("delete plays_for: %w", err)
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
