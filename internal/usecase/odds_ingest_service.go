package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/timeparse"
)

const (
	marketMoneyline = "h2h"
	marketSpreads   = "spreads"
	marketTotals    = "totals"

	outcomeOver  = "Over"
	outcomeUnder = "Under"
)

// OddsFetcher is the external odds provider.
type OddsFetcher interface {
	FetchGames(ctx context.Context) ([]odds.FeedGame, error)
}

type OddsIngestConfig struct {
	// BookmakerKey selects which bookmaker's lines are stored. Empty means
	// take the first bookmaker each game carries.
	BookmakerKey string
	// TeamKeywords filter the feed to relevant games; a game qualifies when
	// either side's name contains any keyword.
	TeamKeywords []string
}

type IngestSummary struct {
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Warnings  []string `json:"warnings,omitempty"`
}

// OddsIngestService pulls the betting feed, normalizes the games it cares
// about, and upserts them by external game id. One bad game never aborts
// the run; it is skipped with a warning and the rest proceed.
type OddsIngestService struct {
	fetcher  OddsFetcher
	gameRepo odds.Repository
	cfg      OddsIngestConfig
	logger   *logging.Logger
	now      func() time.Time
}

func NewOddsIngestService(fetcher OddsFetcher, gameRepo odds.Repository, cfg OddsIngestConfig, logger *logging.Logger) *OddsIngestService {
	if logger == nil {
		logger = logging.Default()
	}
	if len(cfg.TeamKeywords) == 0 {
		cfg.TeamKeywords = []string{"Georgia Tech", "Yellow Jackets"}
	}

	return &OddsIngestService{
		fetcher:  fetcher,
		gameRepo: gameRepo,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *OddsIngestService) Refresh(ctx context.Context) (IngestSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "OddsIngestService.Refresh")
	defer span.End()

	feed, err := s.fetcher.FetchGames(ctx)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("fetch odds feed: %w", err)
	}

	fetchedAt := s.now().UTC()
	summary := IngestSummary{}

	for _, item := range feed {
		if !s.involvesTrackedTeam(item) {
			continue
		}
		summary.Processed++

		game, reason := s.normalizeFeedGame(item, fetchedAt)
		if reason != "" {
			summary.Skipped++
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("game %s: %s", item.ID, reason))
			continue
		}

		_, created, err := s.gameRepo.UpsertByExternalID(ctx, game)
		if err != nil {
			summary.Skipped++
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("game %s: store failed: %v", item.ID, err))
			s.logger.WarnContext(ctx, "upsert game odds failed", "external_id", item.ID, "error", err)
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	s.logger.InfoContext(ctx, "odds refresh finished",
		"processed", summary.Processed,
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
	)
	return summary, nil
}

func (s *OddsIngestService) involvesTrackedTeam(item odds.FeedGame) bool {
	for _, keyword := range s.cfg.TeamKeywords {
		if strings.Contains(item.HomeTeam, keyword) || strings.Contains(item.AwayTeam, keyword) {
			return true
		}
	}
	return false
}

// normalizeFeedGame maps one feed entry onto the stored shape. The returned
// reason is non-empty when the entry must be skipped.
func (s *OddsIngestService) normalizeFeedGame(item odds.FeedGame, fetchedAt time.Time) (odds.Game, string) {
	if strings.TrimSpace(item.ID) == "" {
		return odds.Game{}, "missing game id"
	}

	kickoff := timeparse.ParseUTC(item.CommenceTime)
	if kickoff == nil {
		return odds.Game{}, fmt.Sprintf("unparseable commence time %q", item.CommenceTime)
	}

	bookmaker, ok := s.pickBookmaker(item.Bookmakers)
	if !ok {
		return odds.Game{}, "no bookmaker data"
	}

	lastUpdated := fetchedAt
	if parsed := timeparse.ParseUTC(bookmaker.LastUpdate); parsed != nil {
		lastUpdated = *parsed
	}

	game := odds.Game{
		ExternalID:    item.ID,
		HomeTeam:      item.HomeTeam,
		AwayTeam:      item.AwayTeam,
		KickoffAt:     *kickoff,
		BookmakerName: bookmaker.Title,
		LastUpdatedAt: lastUpdated,
	}

	if market, ok := findMarket(bookmaker.Markets, marketMoneyline); ok {
		if outcome, ok := findOutcome(market.Outcomes, item.HomeTeam); ok {
			price := outcome.Price
			game.HomeMoneyline = &price
		}
		if outcome, ok := findOutcome(market.Outcomes, item.AwayTeam); ok {
			price := outcome.Price
			game.AwayMoneyline = &price
		}
	}

	if market, ok := findMarket(bookmaker.Markets, marketSpreads); ok {
		if outcome, ok := findOutcome(market.Outcomes, item.HomeTeam); ok {
			price := outcome.Price
			game.HomeSpreadPoint = outcome.Point
			game.HomeSpreadPrice = &price
		}
		if outcome, ok := findOutcome(market.Outcomes, item.AwayTeam); ok {
			price := outcome.Price
			game.AwaySpreadPoint = outcome.Point
			game.AwaySpreadPrice = &price
		}
	}

	if market, ok := findMarket(bookmaker.Markets, marketTotals); ok {
		if outcome, ok := findOutcome(market.Outcomes, outcomeOver); ok {
			price := outcome.Price
			game.TotalOverPoint = outcome.Point
			game.TotalOverPrice = &price
		}
		if outcome, ok := findOutcome(market.Outcomes, outcomeUnder); ok {
			price := outcome.Price
			game.TotalUnderPoint = outcome.Point
			game.TotalUnderPrice = &price
		}
	}

	return game, ""
}

// pickBookmaker returns the first entry matching the configured key, or the
// first entry at all when no key is configured. Duplicate entries for the
// same key are not supported; only the first is used.
func (s *OddsIngestService) pickBookmaker(bookmakers []odds.FeedBookmaker) (odds.FeedBookmaker, bool) {
	if len(bookmakers) == 0 {
		return odds.FeedBookmaker{}, false
	}
	if s.cfg.BookmakerKey == "" {
		return bookmakers[0], true
	}
	for _, b := range bookmakers {
		if b.Key == s.cfg.BookmakerKey {
			return b, true
		}
	}
	return odds.FeedBookmaker{}, false
}

func findMarket(list []odds.FeedMarket, key string) (odds.FeedMarket, bool) {
	for _, m := range list {
		if m.Key == key {
			return m, true
		}
	}
	return odds.FeedMarket{}, false
}

func findOutcome(list []odds.FeedOutcome, name string) (odds.FeedOutcome, bool) {
	for _, o := range list {
		if o.Name == name {
			return o, true
		}
	}
	return odds.FeedOutcome{}, false
}
