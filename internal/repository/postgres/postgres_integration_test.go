package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Jav1ex/football-team-management-personnel-service/config"
	"github.com/Jav1ex/football-team-management-personnel-service/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlayerCRUDIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	empty, err := repo.ListPlayers(ctx, 0, 100)
	require.NoError(t, err)
	require.Empty(t, empty)

	created, err := repo.CreatePlayer(ctx, entities.Player{
		Name:        "Andres Iniesta",
		BirthDate:   time.Date(1984, 5, 11, 0, 0, 0, 0, time.UTC),
		Nationality: "Spain",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := repo.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Andres Iniesta", fetched.Name)
	require.True(t, fetched.BirthDate.Equal(created.BirthDate))

	updated, err := repo.UpdatePlayer(ctx, created.ID, entities.Player{
		Name:        "Andres Iniesta Lujan",
		BirthDate:   created.BirthDate,
		Nationality: "Spain",
	})
	require.NoError(t, err)
	require.Equal(t, "Andres Iniesta Lujan", updated.Name)
	require.Equal(t, created.ID, updated.ID)

	_, err = repo.UpdatePlayer(ctx, 9999, entities.Player{
		Name:      "Nobody",
		BirthDate: created.BirthDate,
	})
	require.ErrorIs(t, err, entities.ErrNotFound)

	_, err = repo.GetPlayer(ctx, 9999)
	require.ErrorIs(t, err, entities.ErrNotFound)

	deleted, err := repo.DeletePlayer(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// repeated delete of the same id reports nothing removed
	deleted, err = repo.DeletePlayer(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestPlayerPaginationIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	for i := 0; i < 5; i++ {
		_, err := repo.CreatePlayer(ctx, entities.Player{
			Name:        "Player " + strconv.Itoa(i),
			BirthDate:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Nationality: "Spain",
		})
		require.NoError(t, err)
	}

	page, err := repo.ListPlayers(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Less(t, page[0].ID, page[1].ID)

	tail, err := repo.ListPlayers(ctx, 4, 100)
	require.NoError(t, err)
	require.Len(t, tail, 1)

	beyond, err := repo.ListPlayers(ctx, 50, 100)
	require.NoError(t, err)
	require.Empty(t, beyond)
}

func TestCoachCRUDIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	created, err := repo.CreateCoach(ctx, entities.Coach{
		Name:        "Pep Guardiola",
		BirthDate:   time.Date(1971, 1, 18, 0, 0, 0, 0, time.UTC),
		Nationality: "Spain",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := repo.GetCoach(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Pep Guardiola", fetched.Name)

	deleted, err := repo.DeleteCoach(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = repo.GetCoach(ctx, created.ID)
	require.ErrorIs(t, err, entities.ErrNotFound)
}

func TestPlaysForIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	rec := entities.PlaysFor{PlayerID: 1, TeamID: 2, SeasonID: 3, StartDate: start}

	created, err := repo.CreatePlaysFor(ctx, rec)
	require.NoError(t, err)
	require.Nil(t, created.EndDate)

	// a second row with the same (player, team, season) triple must be rejected
	_, err = repo.CreatePlaysFor(ctx, rec)
	require.ErrorIs(t, err, entities.ErrFatalStore)

	key := rec.Key()
	end := time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)
	updated, err := repo.UpdatePlaysFor(ctx, key, entities.PlaysFor{
		PlayerID:  1,
		TeamID:    2,
		SeasonID:  3,
		StartDate: start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	require.True(t, updated.EndDate.Equal(end))

	fetched, err := repo.GetPlaysFor(ctx, key)
	require.NoError(t, err)
	require.True(t, fetched.StartDate.Equal(start))

	missing := entities.TenureKey{SubjectID: 1, TeamID: 2, SeasonID: 99}
	_, err = repo.GetPlaysFor(ctx, missing)
	require.ErrorIs(t, err, entities.ErrNotFound)

	_, err = repo.UpdatePlaysFor(ctx, missing, entities.PlaysFor{
		PlayerID: 1, TeamID: 2, SeasonID: 99, StartDate: start,
	})
	require.ErrorIs(t, err, entities.ErrNotFound)

	deleted, err := repo.DeletePlaysFor(ctx, key)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.DeletePlaysFor(ctx, key)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestTrainsIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	rec := entities.Trains{CoachID: 1, TeamID: 2, SeasonID: 3, StartDate: start}

	created, err := repo.CreateTrains(ctx, rec)
	require.NoError(t, err)
	require.Equal(t, rec.Key(), created.Key())

	list, err := repo.ListTrains(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = repo.CreateTrains(ctx, rec)
	require.ErrorIs(t, err, entities.ErrFatalStore)

	deleted, err := repo.DeleteTrains(ctx, rec.Key())
	require.NoError(t, err)
	require.True(t, deleted)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=football_personnel_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Retry:  config.RetryConfig{MaxAttempts: 1},
		Postgres: config.PostgresConfig{
			Host:              "localhost",
			Port:              port,
			User:              "postgres",
			Password:          "postgres",
			DBName:            "football_personnel_db",
			SSLMode:           "disable",
			MigrationsDir:     migrationsDir,
			MigrateTimeout:    20 * time.Second,
			StatementTimeout:  10 * time.Second,
			AcquireTimeout:    10 * time.Second,
			ConnMaxLifetime:   time.Minute,
			HealthCheckPeriod: 30 * time.Second,
			MaxConns:          4,
			MinConns:          1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=football_personnel_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
