package odds

import (
	"context"
	"time"
)

// Repository exposes odds game storage. UpsertByExternalID is a full
// replace: every odds field of an existing row is overwritten, so stale
// values from an earlier ingest never survive.
type Repository interface {
	ListUpcoming(ctx context.Context, now time.Time) ([]Game, error)
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	UpsertByExternalID(ctx context.Context, game Game) (Game, bool, error)
}
