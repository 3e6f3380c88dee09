package bet

import (
	"context"
	"time"
)

// SavedBet marks a (user, game) pair the user wants to follow. Presence is
// the whole state: saving twice returns to unsaved, and the store enforces
// uniqueness per pair.
type SavedBet struct {
	ID        int64
	UserID    string
	GameID    int64
	CreatedAt time.Time
}

// Repository exposes saved-bet storage with toggle semantics.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]SavedBet, error)
	IsSaved(ctx context.Context, userID string, gameID int64) (bool, error)
	// Toggle flips the saved state and reports the resulting state.
	Toggle(ctx context.Context, userID string, gameID int64) (bool, error)
}
