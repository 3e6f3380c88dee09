package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/bet"
	qb "github.com/walkerpaxton/GTSportsLine/internal/platform/querybuilder"
)

// Arbiter clause for uq_saved_bets_user_game; the predicate here must match
// the index's predicate.
const savedBetInsertSuffix = `ON CONFLICT (user_id, game_id) WHERE deleted_at IS NULL DO NOTHING`

type SavedBetRepository struct {
	db *sqlx.DB
}

func NewSavedBetRepository(db *sqlx.DB) *SavedBetRepository {
	return &SavedBetRepository{db: db}
}

func (r *SavedBetRepository) ListByUser(ctx context.Context, userID string) ([]bet.SavedBet, error) {
	query, args, err := qb.Select("*").From("saved_bets").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list saved bets query: %w", err)
	}

	var rows []savedBetTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list saved bets: %w", err)
	}

	out := make([]bet.SavedBet, 0, len(rows))
	for _, row := range rows {
		out = append(out, bet.SavedBet{
			ID:        row.ID,
			UserID:    row.UserID,
			GameID:    row.GameID,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *SavedBetRepository) IsSaved(ctx context.Context, userID string, gameID int64) (bool, error) {
	query, args, err := qb.Select("id").From("saved_bets").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("game_id", gameID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build saved bet lookup query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("lookup saved bet: %w", err)
	}
	return true, nil
}

// Toggle flips the saved state inside one transaction and reports the
// resulting state. The partial unique index on (user_id, game_id) keeps
// concurrent toggles from creating duplicate live rows.
func (r *SavedBetRepository) Toggle(ctx context.Context, userID string, gameID int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx toggle saved bet: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lookupQuery, lookupArgs, err := qb.Select("id").From("saved_bets").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("game_id", gameID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build saved bet lookup query: %w", err)
	}

	var existingID int64
	saved := false
	if err := tx.GetContext(ctx, &existingID, lookupQuery, lookupArgs...); err != nil {
		if !isNotFound(err) {
			return false, fmt.Errorf("lookup saved bet: %w", err)
		}
		saved = true
	}

	if saved {
		insertQuery, insertArgs, err := qb.InsertInto("saved_bets").
			Columns("user_id", "game_id").
			Values(userID, gameID).
			Suffix(savedBetInsertSuffix).
			ToSQL()
		if err != nil {
			return false, fmt.Errorf("build insert saved bet query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return false, fmt.Errorf("insert saved bet: %w", err)
		}
	} else {
		deleteQuery, deleteArgs, err := qb.Update("saved_bets").
			Set("deleted_at", nowUTC()).
			Where(qb.Eq("id", existingID)).
			ToSQL()
		if err != nil {
			return false, fmt.Errorf("build remove saved bet query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return false, fmt.Errorf("remove saved bet: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toggle saved bet tx: %w", err)
	}
	return saved, nil
}
