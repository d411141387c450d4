// Package session stores the per-chat conversation state: the dialog phase
// and the origin coordinate resolved on the "enter location" turn. Entries
// are keyed by chat identity so concurrent conversations never interfere.
package session

import (
	"context"
	"errors"

	"github.com/olegmenkov/access-finder/internal/models"
)

// State is the phase of the search conversation for one chat.
type State int

const (
	// StateIdle means no search is in progress.
	StateIdle State = iota
	// StateAwaitingLocation means the user has been asked for a location.
	StateAwaitingLocation
	// StateAwaitingCategory means a location was resolved and the user is picking a category.
	StateAwaitingCategory
)

// ErrNoSession is returned when no origin coordinate is stored for the chat.
var ErrNoSession = errors.New("no session stored for this chat")

// Interface is the session store contract. A chat's reads and writes are
// atomic relative to that chat's sequential turns; chats never share entries.
type Interface interface {
	SaveOrigin(ctx context.Context, chatID int64, origin models.GeoPoint) error
	Origin(ctx context.Context, chatID int64) (*models.GeoPoint, error)
	SetState(ctx context.Context, chatID int64, state State) error
	State(ctx context.Context, chatID int64) (State, error)
}
