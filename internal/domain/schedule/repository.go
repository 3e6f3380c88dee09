package schedule

import "context"

// Repository persists schedule games fetched from the provider. Games
// without an external id cannot be upserted idempotently and are skipped by
// the sync job.
type Repository interface {
	ListBySeason(ctx context.Context, season int) ([]Game, error)
	UpsertByExternalID(ctx context.Context, game Game) (Game, bool, error)
}
