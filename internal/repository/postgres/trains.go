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
	listTrainsQuery = `SELECT coach_id, team_id, season_id, start_date, end_date
FROM trains
ORDER BY coach_id, team_id, season_id
OFFSET $1 LIMIT $2`
	getTrainsQuery = `SELECT coach_id, team_id, season_id, start_date, end_date
FROM trains
WHERE coach_id = $1 AND team_id = $2 AND season_id = $3`
	insertTrainsQuery = `INSERT INTO trains(coach_id, team_id, season_id, start_date, end_date)
VALUES ($1, $2, $3, $4, $5)`
	updateTrainsQuery = `UPDATE trains SET start_date = $4, end_date = $5
WHERE coach_id = $1 AND team_id = $2 AND season_id = $3`
	deleteTrainsQuery = `DELETE FROM trains WHERE coach_id = $1 AND team_id = $2 AND season_id = $3`
)

// ListTrains returns a page of coach tenures in storage order.
func (p *Postgres) ListTrains(ctx context.Context, offset, limit int) ([]entities.Trains, error) {
	recs := make([]entities.Trains, 0)
	err := p.withConn(ctx, "trains.list", func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, listTrainsQuery, offset, limit)
		if err != nil {
			return fmt.Errorf("list trains: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r entities.Trains
			if err := rows.Scan(&r.CoachID, &r.TeamID, &r.SeasonID, &r.StartDate, &r.EndDate); err != nil {
				return fmt.Errorf("scan trains: %w", err)
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

// GetTrains fetches one tenure row by its composite key.
func (p *Postgres) GetTrains(ctx context.Context, key entities.TenureKey) (*entities.Trains, error) {
	var r entities.Trains
	err := p.withConn(ctx, "trains.get", func(ctx context.Context, conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, getTrainsQuery, key.SubjectID, key.TeamID, key.SeasonID).
			Scan(&r.CoachID, &r.TeamID, &r.SeasonID, &r.StartDate, &r.EndDate)
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get trains: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateTrains inserts a tenure row. A second row for the same
// (coach, team, season) triple violates the composite primary key and
// surfaces as a fatal store failure.
func (p *Postgres) CreateTrains(ctx context.Context, rec entities.Trains) (*entities.Trains, error) {
	err := p.withConn(ctx, "trains.create", func(ctx context.Context, conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, insertTrainsQuery,
			rec.CoachID, rec.TeamID, rec.SeasonID, rec.StartDate, rec.EndDate)
		if err != nil {
			return fmt.Errorf("insert trains: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.log.Infow("trains created", "coach_id", rec.CoachID, "team_id", rec.TeamID, "season_id", rec.SeasonID)
	return &rec, nil
}

// UpdateTrains replaces the tenure attributes for the composite key.
func (p *Postgres) UpdateTrains(ctx context.Context, key entities.TenureKey, rec entities.Trains) (*entities.Trains, error) {
	err := p.withConn(ctx, "trains.update", func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, updateTrainsQuery,
			key.SubjectID, key.TeamID, key.SeasonID, rec.StartDate, rec.EndDate)
		if err != nil {
			return fmt.Errorf("update trains: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rec.CoachID, rec.TeamID, rec.SeasonID = key.SubjectID, key.TeamID, key.SeasonID
	return &rec, nil
}

// DeleteTrains removes a tenure row and reports whether a row was removed.
func (p *Postgres) DeleteTrains(ctx context.Context, key entities.TenureKey) (bool, error) {
	var deleted bool
	err := p.withConn(ctx, "trains.delete", func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, deleteTrainsQuery, key.SubjectID, key.TeamID, key.SeasonID)
		if err != nil {
			return fmt.Errorf("delete trains: %w", err)
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
