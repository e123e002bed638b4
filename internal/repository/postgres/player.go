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
	listPlayersQuery = `SELECT player_id, name, birth_date, nationality
FROM players
ORDER BY player_id
OFFSET $1 LIMIT $2`
	getPlayerQuery    = `SELECT player_id, name, birth_date, nationality FROM players WHERE player_id = $1`
	insertPlayerQuery = `INSERT INTO players(name, birth_date, nationality) VALUES ($1, $2, $3) RETURNING player_id`
	updatePlayerQuery = `UPDATE players SET name = $2, birth_date = $3, nationality = $4 WHERE player_id = $1`
	deletePlayerQuery = `DELETE FROM players WHERE player_id = $1`
)

// ListPlayers returns a page of players in storage order.
func (p *Postgres) ListPlayers(ctx context.Context, offset, limit int) ([]entities.Player, error) {
	players := make([]entities.Player, 0)
	err := p.withConn(ctx, "player.list", func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, listPlayersQuery, offset, limit)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var pl entities.Player
			if err := rows.Scan(&pl.ID, &pl.Name, &pl.BirthDate, &pl.Nationality); err != nil {
				return fmt.Errorf("scan player: %w", err)
			}
			players = append(players, pl)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetPlayer fetches one player by id.
func (p *Postgres) GetPlayer(ctx context.Context, id int64) (*entities.Player, error) {
	var pl entities.Player
	err := p.withConn(ctx, "player.get", func(ctx context.Context, conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, getPlayerQuery, id).
			Scan(&pl.ID, &pl.Name, &pl.BirthDate, &pl.Nationality)
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get player: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pl, nil
}

// CreatePlayer inserts a player and returns it with the generated id.
func (p *Postgres) CreatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error) {
	err := p.withConn(ctx, "player.create", func(ctx context.Context, conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, insertPlayerQuery, player.Name, player.BirthDate, player.Nationality).
			Scan(&player.ID)
		if err != nil {
			return fmt.Errorf("insert player: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.log.Infow("player created", "player_id", player.ID)
	return &player, nil
}

// UpdatePlayer replaces the full record by id. Missing keys report
// ErrNotFound; no row is created.
func (p *Postgres) UpdatePlayer(ctx context.Context, id int64, player entities.Player) (*entities.Player, error) {
	err := p.withConn(ctx, "player.update", func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, updatePlayerQuery, id, player.Name, player.BirthDate, player.Nationality)
		if err != nil {
			return fmt.Errorf("update player: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	player.ID = id
	return &player, nil
}

// DeletePlayer removes a player by id and reports whether a row was removed.
func (p *Postgres) DeletePlayer(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := p.withConn(ctx, "player.delete", func(ctx context.Context, conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, deletePlayerQuery, id)
		if err != nil {
			return fmt.Errorf("delete player: %w", err)
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	if deleted {
		p.log.Infow("player deleted", "player_id", id)
	}
	return deleted, nil
}
