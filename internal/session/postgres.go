package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olegmenkov/access-finder/internal/models"
)

// Database is the subset of pgxpool.Pool the store needs. Kept narrow so
// tests can substitute a pgxmock pool.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore is a session store backed by PostgreSQL, for deployments that
// already run a database and want sessions to survive restarts.
//
// Expected schema:
//
//	CREATE TABLE sessions (
//	    chat_id    BIGINT PRIMARY KEY,
//	    state      SMALLINT NOT NULL DEFAULT 0,
//	    latitude   DOUBLE PRECISION,
//	    longitude  DOUBLE PRECISION,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db  Database
	log *slog.Logger
}

// NewPostgresStore creates a postgres-backed session store.
func NewPostgresStore(db Database, log *slog.Logger) *PostgresStore {
	return &PostgresStore{db: db, log: log}
}

// NewDatabase creates a pgx connection pool from the individual connection settings.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return pool, nil
}

// SaveOrigin stores the origin coordinate for the chat, creating the session
// row if it does not exist yet.
func (ps *PostgresStore) SaveOrigin(ctx context.Context, chatID int64, origin models.GeoPoint) error {
	query := `
		INSERT INTO sessions (chat_id, latitude, longitude, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (chat_id) DO UPDATE
		SET latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = now();
	`

	_, err := ps.db.Exec(ctx, query, chatID, origin.Latitude, origin.Longitude)
	if err != nil {
		return fmt.Errorf("failed to store session origin: %w", err)
	}

	ps.log.DebugContext(ctx, "Session origin stored", "chat", chatID)

	return nil
}

// Origin returns the stored origin coordinate, or ErrNoSession if the chat
// has no session row or no coordinate yet.
func (ps *PostgresStore) Origin(ctx context.Context, chatID int64) (*models.GeoPoint, error) {
	query := `
		SELECT latitude, longitude
		FROM sessions
		WHERE chat_id = $1;
	`

	var lat, lon *float64
	err := ps.db.QueryRow(ctx, query, chatID).Scan(&lat, &lon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session origin: %w", err)
	}

	if lat == nil || lon == nil {
		return nil, ErrNoSession
	}

	return &models.GeoPoint{Latitude: *lat, Longitude: *lon}, nil
}

// SetState stores the conversation state for the chat, creating the session
// row if it does not exist yet.
func (ps *PostgresStore) SetState(ctx context.Context, chatID int64, state State) error {
	query := `
		INSERT INTO sessions (chat_id, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chat_id) DO UPDATE
		SET state = EXCLUDED.state,
			updated_at = now();
	`

	_, err := ps.db.Exec(ctx, query, chatID, int(state))
	if err != nil {
		return fmt.Errorf("failed to store session state: %w", err)
	}

	return nil
}

// State returns the stored conversation state; chats without a session row read as StateIdle.
func (ps *PostgresStore) State(ctx context.Context, chatID int64) (State, error) {
	query := `
		SELECT state
		FROM sessions
		WHERE chat_id = $1;
	`

	var state int
	err := ps.db.QueryRow(ctx, query, chatID).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		return StateIdle, nil
	}
	if err != nil {
		return StateIdle, fmt.Errorf("failed to read session state: %w", err)
	}

	return State(state), nil
}
