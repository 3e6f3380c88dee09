package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	qb "github.com/walkerpaxton/GTSportsLine/internal/platform/querybuilder"
)

// Arbiter clause for uq_game_odds_external_game_id; the predicate here must
// match the index's predicate.
const gameOddsUpsertSuffix = `ON CONFLICT (external_game_id) WHERE deleted_at IS NULL
DO UPDATE SET
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    kickoff_at = EXCLUDED.kickoff_at,
    bookmaker_name = EXCLUDED.bookmaker_name,
    odds_updated_at = EXCLUDED.odds_updated_at,
    home_moneyline = EXCLUDED.home_moneyline,
    away_moneyline = EXCLUDED.away_moneyline,
    home_spread_point = EXCLUDED.home_spread_point,
    home_spread_price = EXCLUDED.home_spread_price,
    away_spread_point = EXCLUDED.away_spread_point,
    away_spread_price = EXCLUDED.away_spread_price,
    total_over_point = EXCLUDED.total_over_point,
    total_over_price = EXCLUDED.total_over_price,
    total_under_point = EXCLUDED.total_under_point,
    total_under_price = EXCLUDED.total_under_price,
    updated_at = NOW(),
    deleted_at = NULL
RETURNING id`

type GameOddsRepository struct {
	db *sqlx.DB
}

func NewGameOddsRepository(db *sqlx.DB) *GameOddsRepository {
	return &GameOddsRepository{db: db}
}

func (r *GameOddsRepository) ListUpcoming(ctx context.Context, now time.Time) ([]odds.Game, error) {
	query, args, err := qb.Select("*").From("game_odds").
		Where(
			qb.Gte("kickoff_at", now.UTC()),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming games query: %w", err)
	}

	var rows []gameOddsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list upcoming games: %w", err)
	}

	out := make([]odds.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameOddsRepository) GetByID(ctx context.Context, gameID int64) (odds.Game, bool, error) {
	query, args, err := qb.Select("*").From("game_odds").
		Where(
			qb.Eq("id", gameID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return odds.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameOddsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return odds.Game{}, false, nil
		}
		return odds.Game{}, false, fmt.Errorf("get game: %w", err)
	}

	return gameFromRow(row), true, nil
}

// UpsertByExternalID fully replaces the stored odds for the external game id.
// Every odds column is overwritten, including back to NULL when a market
// disappeared from the feed.
func (r *GameOddsRepository) UpsertByExternalID(ctx context.Context, game odds.Game) (odds.Game, bool, error) {
	existsQuery, existsArgs, err := qb.Select("id").From("game_odds").
		Where(
			qb.Eq("external_game_id", game.ExternalID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return odds.Game{}, false, fmt.Errorf("build game existence query: %w", err)
	}

	var existingID int64
	created := false
	if err := r.db.GetContext(ctx, &existingID, existsQuery, existsArgs...); err != nil {
		if !isNotFound(err) {
			return odds.Game{}, false, fmt.Errorf("check game existence: %w", err)
		}
		created = true
	}

	insertModel := gameOddsInsertModel{
		ExternalGameID: game.ExternalID,
		HomeTeam:       game.HomeTeam,
		AwayTeam:       game.AwayTeam,
		KickoffAt:      game.KickoffAt.UTC(),
		BookmakerName:  game.BookmakerName,
		OddsUpdatedAt:  game.LastUpdatedAt.UTC(),
		HomeMoneyline:  game.HomeMoneyline,
		AwayMoneyline:  game.AwayMoneyline,
		HomeSpreadPt:   game.HomeSpreadPoint,
		HomeSpreadPx:   game.HomeSpreadPrice,
		AwaySpreadPt:   game.AwaySpreadPoint,
		AwaySpreadPx:   game.AwaySpreadPrice,
		TotalOverPt:    game.TotalOverPoint,
		TotalOverPx:    game.TotalOverPrice,
		TotalUnderPt:   game.TotalUnderPoint,
		TotalUnderPx:   game.TotalUnderPrice,
	}
	query, args, err := qb.InsertModel("game_odds", insertModel, gameOddsUpsertSuffix)
	if err != nil {
		return odds.Game{}, false, fmt.Errorf("build upsert game query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&game.ID); err != nil {
		return odds.Game{}, false, fmt.Errorf("upsert game external_id=%s: %w", game.ExternalID, err)
	}

	return game, created, nil
}

func gameFromRow(row gameOddsTableModel) odds.Game {
	return odds.Game{
		ID:              row.ID,
		ExternalID:      row.ExternalGameID,
		HomeTeam:        row.HomeTeam,
		AwayTeam:        row.AwayTeam,
		KickoffAt:       row.KickoffAt,
		BookmakerName:   row.BookmakerName,
		LastUpdatedAt:   row.OddsUpdatedAt,
		HomeMoneyline:   row.HomeMoneyline,
		AwayMoneyline:   row.AwayMoneyline,
		HomeSpreadPoint: row.HomeSpreadPt,
		HomeSpreadPrice: row.HomeSpreadPx,
		AwaySpreadPoint: row.AwaySpreadPt,
		AwaySpreadPrice: row.AwaySpreadPx,
		TotalOverPoint:  row.TotalOverPt,
		TotalOverPrice:  row.TotalOverPx,
		TotalUnderPoint: row.TotalUnderPt,
		TotalUnderPrice: row.TotalUnderPx,
	}
}
