package session_test

import (
	"sync"
	"testing"

	"github.com/olegmenkov/access-finder/internal/models"
	"github.com/olegmenkov/access-finder/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Origin(t *testing.T) {
	ctx := t.Context()
	store := session.NewMemoryStore()
	origin := models.GeoPoint{Latitude: 55.7494733, Longitude: 37.5910266}

	t.Run("missing origin returns ErrNoSession", func(t *testing.T) {
		point, err := store.Origin(ctx, 101)

		require.ErrorIs(t, err, session.ErrNoSession)
		require.Nil(t, point)
	})

	t.Run("stored origin round-trips", func(t *testing.T) {
		require.NoError(t, store.SaveOrigin(ctx, 101, origin))

		point, err := store.Origin(ctx, 101)

		require.NoError(t, err)
		require.NotNil(t, point)
		assert.Equal(t, origin, *point)
	})

	t.Run("chats do not share origins", func(t *testing.T) {
		require.NoError(t, store.SaveOrigin(ctx, 101, origin))

		point, err := store.Origin(ctx, 202)

		require.ErrorIs(t, err, session.ErrNoSession)
		require.Nil(t, point)
	})

	t.Run("overwrite replaces the stored origin", func(t *testing.T) {
		updated := models.GeoPoint{Latitude: 55.7601, Longitude: 37.6186}
		require.NoError(t, store.SaveOrigin(ctx, 101, origin))
		require.NoError(t, store.SaveOrigin(ctx, 101, updated))

		point, err := store.Origin(ctx, 101)

		require.NoError(t, err)
		assert.Equal(t, updated, *point)
	})
}

func TestMemoryStore_State(t *testing.T) {
	ctx := t.Context()
	store := session.NewMemoryStore()

	t.Run("unknown chat reads as idle", func(t *testing.T) {
		state, err := store.State(ctx, 303)

		require.NoError(t, err)
		assert.Equal(t, session.StateIdle, state)
	})

	t.Run("state round-trips through the conversation machine", func(t *testing.T) {
		require.NoError(t, store.SetState(ctx, 303, session.StateAwaitingLocation))

		state, err := store.State(ctx, 303)
		require.NoError(t, err)
		assert.Equal(t, session.StateAwaitingLocation, state)

		require.NoError(t, store.SetState(ctx, 303, session.StateAwaitingCategory))

		state, err = store.State(ctx, 303)
		require.NoError(t, err)
		assert.Equal(t, session.StateAwaitingCategory, state)
	})

	t.Run("state does not disturb the stored origin", func(t *testing.T) {
		origin := models.GeoPoint{Latitude: 55.7522, Longitude: 37.6156}
		require.NoError(t, store.SaveOrigin(ctx, 404, origin))
		require.NoError(t, store.SetState(ctx, 404, session.StateAwaitingCategory))

		point, err := store.Origin(ctx, 404)

		require.NoError(t, err)
		assert.Equal(t, origin, *point)
	})
}

func TestMemoryStore_ConcurrentChats(t *testing.T) {
	ctx := t.Context()
	store := session.NewMemoryStore()

	var wg sync.WaitGroup
	for i := range 50 {
		chatID := int64(i + 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			origin := models.GeoPoint{Latitude: float64(chatID), Longitude: -float64(chatID)}
			assert.NoError(t, store.SaveOrigin(ctx, chatID, origin))
			assert.NoError(t, store.SetState(ctx, chatID, session.StateAwaitingCategory))
		}()
	}
	wg.Wait()

	for i := range 50 {
		chatID := int64(i + 1)
		point, err := store.Origin(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, float64(chatID), point.Latitude)
	}
}
