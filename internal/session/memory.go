package session

import (
	"context"
	"sync"

	"github.com/olegmenkov/access-finder/internal/models"
)

// MemoryStore is the in-process session store. It is the default backend and
// is safe for concurrent use by multiple chats.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*memoryEntry
}

type memoryEntry struct {
	origin *models.GeoPoint
	state  State
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*memoryEntry)}
}

// SaveOrigin stores the origin coordinate for the chat.
func (ms *MemoryStore) SaveOrigin(_ context.Context, chatID int64, origin models.GeoPoint) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry := ms.entry(chatID)
	entry.origin = &origin
	return nil
}

// Origin returns the stored origin coordinate, or ErrNoSession if none is stored.
func (ms *MemoryStore) Origin(_ context.Context, chatID int64) (*models.GeoPoint, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	entry, ok := ms.sessions[chatID]
	if !ok || entry.origin == nil {
		return nil, ErrNoSession
	}

	origin := *entry.origin
	return &origin, nil
}

// SetState stores the conversation state for the chat.
func (ms *MemoryStore) SetState(_ context.Context, chatID int64, state State) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.entry(chatID).state = state
	return nil
}

// State returns the stored conversation state; unknown chats read as StateIdle.
func (ms *MemoryStore) State(_ context.Context, chatID int64) (State, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	entry, ok := ms.sessions[chatID]
	if !ok {
		return StateIdle, nil
	}

	return entry.state, nil
}

// entry returns the chat's entry, creating it if needed. Callers must hold the write lock.
func (ms *MemoryStore) entry(chatID int64) *memoryEntry {
	entry, ok := ms.sessions[chatID]
	if !ok {
		entry = &memoryEntry{}
		ms.sessions[chatID] = entry
	}

	return entry
}
