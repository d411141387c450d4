package session_test

import (
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/olegmenkov/access-finder/internal/models"
	"github.com/olegmenkov/access-finder/internal/session"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	saveOriginQuery   = `INSERT INTO sessions (chat_id, latitude, longitude, updated_at)`
	selectOriginQuery = `SELECT latitude, longitude`
	setStateQuery     = `INSERT INTO sessions (chat_id, state, updated_at)`
	selectStateQuery  = `SELECT state`
)

func newPostgresStore(t *testing.T) (*session.PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return session.NewPostgresStore(mock, log), mock
}

func TestPostgresStore_SaveOrigin(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	origin := models.GeoPoint{Latitude: 55.7494733, Longitude: 37.5910266}

	t.Run("upserts the origin row", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectExec(regexp.QuoteMeta(saveOriginQuery)).
			WithArgs(int64(42), origin.Latitude, origin.Longitude).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := store.SaveOrigin(ctx, 42, origin)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectExec(regexp.QuoteMeta(saveOriginQuery)).
			WithArgs(int64(42), origin.Latitude, origin.Longitude).
			WillReturnError(assert.AnError)

		err := store.SaveOrigin(ctx, 42, origin)

		require.ErrorContains(t, err, "failed to store session origin")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_Origin(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	t.Run("returns the stored coordinate", func(t *testing.T) {
		t.Parallel()

		lat, lon := 55.7494733, 37.5910266
		store, mock := newPostgresStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectOriginQuery)).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"latitude", "longitude"}).AddRow(&lat, &lon))

		point, err := store.Origin(ctx, 42)

		require.NoError(t, err)
		require.NotNil(t, point)
		assert.Equal(t, models.GeoPoint{Latitude: lat, Longitude: lon}, *point)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row reads as ErrNoSession", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectOriginQuery)).
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		point, err := store.Origin(ctx, 42)

		require.ErrorIs(t, err, session.ErrNoSession)
		require.Nil(t, point)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row without a coordinate reads as ErrNoSession", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectOriginQuery)).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"latitude", "longitude"}).AddRow(nil, nil))

		point, err := store.Origin(ctx, 42)

		require.ErrorIs(t, err, session.ErrNoSession)
		require.Nil(t, point)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectOriginQuery)).
			WithArgs(int64(42)).
			WillReturnError(assert.AnError)

		point, err := store.Origin(ctx, 42)

		require.ErrorContains(t, err, "failed to read session origin")
		require.Nil(t, point)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_SetState(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	t.Run("upserts the state row", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectExec(regexp.QuoteMeta(setStateQuery)).
			WithArgs(int64(42), int(session.StateAwaitingCategory)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := store.SetState(ctx, 42, session.StateAwaitingCategory)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectExec(regexp.QuoteMeta(setStateQuery)).
			WithArgs(int64(42), int(session.StateIdle)).
			WillReturnError(assert.AnError)

		err := store.SetState(ctx, 42, session.StateIdle)

		require.ErrorContains(t, err, "failed to store session state")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_State(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	t.Run("returns the stored state", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectStateQuery)).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"state"}).AddRow(int(session.StateAwaitingLocation)))

		state, err := store.State(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, session.StateAwaitingLocation, state)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row reads as idle", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectStateQuery)).
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		state, err := store.State(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, session.StateIdle, state)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		t.Parallel()

		store, mock := newPostgresStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectStateQuery)).
			WithArgs(int64(42)).
			WillReturnError(assert.AnError)

		_, err := store.State(ctx, 42)

		require.ErrorContains(t, err, "failed to read session state")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
