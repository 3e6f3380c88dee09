package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/schedule"
	qb "github.com/walkerpaxton/GTSportsLine/internal/platform/querybuilder"
)

// The conflict predicate must restate uq_schedule_games_external_id's
// predicate exactly or Postgres refuses to infer the partial index.
const scheduleGameUpsertSuffix = `ON CONFLICT (external_id) WHERE deleted_at IS NULL AND external_id IS NOT NULL
DO UPDATE SET
    season = EXCLUDED.season,
    week = EXCLUDED.week,
    season_type = EXCLUDED.season_type,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    game_date = EXCLUDED.game_date,
    start_time = EXCLUDED.start_time,
    venue = EXCLUDED.venue,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    completed = EXCLUDED.completed,
    neutral_site = EXCLUDED.neutral_site,
    conference_game = EXCLUDED.conference_game,
    updated_at = NOW(),
    deleted_at = NULL
RETURNING id`

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ListBySeason(ctx context.Context, season int) ([]schedule.Game, error) {
	query, args, err := qb.Select("*").From("schedule_games").
		Where(
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		OrderBy("game_date NULLS LAST", "week NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list schedule query: %w", err)
	}

	var rows []scheduleGameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}

	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleGameFromRow(row))
	}
	return out, nil
}

// UpsertByExternalID stores one provider game. Games without an external id
// cannot be matched across syncs and are rejected here rather than inserted
// as duplicates.
func (r *ScheduleRepository) UpsertByExternalID(ctx context.Context, game schedule.Game) (schedule.Game, bool, error) {
	if game.ExternalID == nil {
		return schedule.Game{}, false, fmt.Errorf("schedule game is missing an external id")
	}

	existsQuery, existsArgs, err := qb.Select("id").From("schedule_games").
		Where(
			qb.Eq("external_id", *game.ExternalID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return schedule.Game{}, false, fmt.Errorf("build schedule existence query: %w", err)
	}

	var existingID int64
	created := false
	if err := r.db.GetContext(ctx, &existingID, existsQuery, existsArgs...); err != nil {
		if !isNotFound(err) {
			return schedule.Game{}, false, fmt.Errorf("check schedule existence: %w", err)
		}
		created = true
	}

	insertModel := scheduleGameInsertModel{
		ExternalID:     game.ExternalID,
		Season:         game.Season,
		Week:           game.Week,
		SeasonType:     game.SeasonType,
		HomeTeam:       game.HomeTeam,
		AwayTeam:       game.AwayTeam,
		GameDate:       game.GameDate,
		StartTime:      game.StartTime,
		Venue:          game.Venue,
		HomeScore:      game.HomeScore,
		AwayScore:      game.AwayScore,
		Completed:      game.Completed,
		NeutralSite:    game.NeutralSite,
		ConferenceGame: game.ConferenceGame,
	}
	query, args, err := qb.InsertModel("schedule_games", insertModel, scheduleGameUpsertSuffix)
	if err != nil {
		return schedule.Game{}, false, fmt.Errorf("build upsert schedule game query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&game.ID); err != nil {
		return schedule.Game{}, false, fmt.Errorf("upsert schedule game external_id=%d: %w", *game.ExternalID, err)
	}

	return game, created, nil
}

func scheduleGameFromRow(row scheduleGameTableModel) schedule.Game {
	return schedule.Game{
		ID:             row.ID,
		ExternalID:     row.ExternalID,
		Season:         row.Season,
		Week:           row.Week,
		SeasonType:     row.SeasonType,
		HomeTeam:       row.HomeTeam,
		AwayTeam:       row.AwayTeam,
		GameDate:       row.GameDate,
		StartTime:      row.StartTime,
		Venue:          row.Venue,
		HomeScore:      row.HomeScore,
		AwayScore:      row.AwayScore,
		Completed:      row.Completed,
		NeutralSite:    row.NeutralSite,
		ConferenceGame: row.ConferenceGame,
	}
}
