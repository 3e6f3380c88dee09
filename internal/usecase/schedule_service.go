package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/schedule"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
)

// ScheduleFetcher is the college football data provider.
type ScheduleFetcher interface {
	FetchGames(ctx context.Context, year int) ([]schedule.Game, error)
}

// SeasonFeed is one season's schedule page. FetchWarning carries the
// provider failure message when the page was served from the stored copy.
type SeasonFeed struct {
	Season       int
	Games        []schedule.Game
	FetchWarning string
}

type ScheduleSyncSummary struct {
	Season    int      `json:"season"`
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Warnings  []string `json:"warnings,omitempty"`
}

type ScheduleService struct {
	fetcher      ScheduleFetcher
	scheduleRepo schedule.Repository
	logger       *logging.Logger
	now          func() time.Time
}

func NewScheduleService(fetcher ScheduleFetcher, scheduleRepo schedule.Repository, logger *logging.Logger) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{
		fetcher:      fetcher,
		scheduleRepo: scheduleRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// GetSeason returns the schedule straight from the provider so the season
// page always reflects the latest data. When the provider is down the page
// falls back to the stored copy from the last sync, with the failure
// reported in FetchWarning.
func (s *ScheduleService) GetSeason(ctx context.Context, year int) (SeasonFeed, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.GetSeason")
	defer span.End()

	if year <= 0 {
		year = s.now().UTC().Year()
	}

	feed := SeasonFeed{Season: year}

	games, err := s.fetcher.FetchGames(ctx, year)
	if err == nil {
		feed.Games = games
		return feed, nil
	}

	s.logger.WarnContext(ctx, "schedule fetch failed, serving stored season", "season", year, "error", err)
	feed.FetchWarning = err.Error()

	stored, storeErr := s.ListStored(ctx, year)
	if storeErr != nil {
		return SeasonFeed{}, fmt.Errorf("fetch schedule: %w", err)
	}
	feed.Games = stored
	return feed, nil
}

// ListStored serves the persisted copy of a season, refreshed only by the
// sync job.
func (s *ScheduleService) ListStored(ctx context.Context, season int) ([]schedule.Game, error) {
	if season <= 0 {
		season = s.now().UTC().Year()
	}

	games, err := s.scheduleRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list stored schedule: %w", err)
	}
	return games, nil
}

// Sync fetches one season and upserts each game by its provider id. Games
// the provider ships without an id cannot be matched across runs and are
// skipped with a warning.
func (s *ScheduleService) Sync(ctx context.Context, year int) (ScheduleSyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.Sync")
	defer span.End()

	if year <= 0 {
		year = s.now().UTC().Year()
	}

	games, err := s.fetcher.FetchGames(ctx, year)
	if err != nil {
		return ScheduleSyncSummary{}, fmt.Errorf("fetch schedule for sync: %w", err)
	}

	summary := ScheduleSyncSummary{Season: year}
	for _, game := range games {
		summary.Processed++

		if game.ExternalID == nil {
			summary.Skipped++
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("game %s vs %s: missing provider id", game.HomeTeam, game.AwayTeam))
			continue
		}

		_, created, err := s.scheduleRepo.UpsertByExternalID(ctx, game)
		if err != nil {
			summary.Skipped++
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("game %d: store failed: %v", *game.ExternalID, err))
			s.logger.WarnContext(ctx, "upsert schedule game failed", "external_id", *game.ExternalID, "error", err)
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	s.logger.InfoContext(ctx, "schedule sync finished",
		"season", summary.Season,
		"processed", summary.Processed,
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
	)
	return summary, nil
}
