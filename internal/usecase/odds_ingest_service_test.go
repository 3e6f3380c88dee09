package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/infrastructure/repository/memory"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

type fakeOddsFetcher struct {
	games []odds.FeedGame
	err   error
}

func (f *fakeOddsFetcher) FetchGames(context.Context) ([]odds.FeedGame, error) {
	return f.games, f.err
}

func floatPtr(v float64) *float64 { return &v }

func feedGame(id string) odds.FeedGame {
	return odds.FeedGame{
		ID:           id,
		HomeTeam:     "Georgia Tech Yellow Jackets",
		AwayTeam:     "Clemson Tigers",
		CommenceTime: "2025-09-06T19:30:00Z",
		Bookmakers: []odds.FeedBookmaker{{
			Key:        "draftkings",
			Title:      "DraftKings",
			LastUpdate: "2025-09-05T12:00:00Z",
			Markets: []odds.FeedMarket{
				{Key: "h2h", Outcomes: []odds.FeedOutcome{
					{Name: "Georgia Tech Yellow Jackets", Price: -150},
					{Name: "Clemson Tigers", Price: 130},
				}},
				{Key: "spreads", Outcomes: []odds.FeedOutcome{
					{Name: "Georgia Tech Yellow Jackets", Price: -110, Point: floatPtr(-3.5)},
					{Name: "Clemson Tigers", Price: -110, Point: floatPtr(3.5)},
				}},
				{Key: "totals", Outcomes: []odds.FeedOutcome{
					{Name: "Over", Price: -105, Point: floatPtr(54.5)},
					{Name: "Under", Price: -115, Point: floatPtr(54.5)},
				}},
			},
		}},
	}
}

func newIngestService(fetcher usecase.OddsFetcher, repo odds.Repository) *usecase.OddsIngestService {
	return usecase.NewOddsIngestService(fetcher, repo, usecase.OddsIngestConfig{
		BookmakerKey: "draftkings",
	}, logging.NewNop())
}

func TestOddsIngestRefresh(t *testing.T) {
	t.Parallel()

	t.Run("stores all three markets", func(t *testing.T) {
		t.Parallel()

		repo := memory.NewGameOddsRepository()
		svc := newIngestService(&fakeOddsFetcher{games: []odds.FeedGame{feedGame("g1")}}, repo)

		summary, err := svc.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if summary.Processed != 1 || summary.Created != 1 || summary.Skipped != 0 {
			t.Fatalf("summary = %+v", summary)
		}

		games, err := repo.ListUpcoming(context.Background(), time.Time{})
		if err != nil {
			t.Fatalf("ListUpcoming: %v", err)
		}
		g := games[0]
		if g.HomeMoneyline == nil || *g.HomeMoneyline != -150 {
			t.Errorf("HomeMoneyline = %v", g.HomeMoneyline)
		}
		if g.AwaySpreadPoint == nil || *g.AwaySpreadPoint != 3.5 {
			t.Errorf("AwaySpreadPoint = %v", g.AwaySpreadPoint)
		}
		if g.TotalUnderPrice == nil || *g.TotalUnderPrice != -115 {
			t.Errorf("TotalUnderPrice = %v", g.TotalUnderPrice)
		}
		if g.BookmakerName != "DraftKings" {
			t.Errorf("BookmakerName = %q", g.BookmakerName)
		}
	})

	t.Run("missing market leaves its fields nil", func(t *testing.T) {
		t.Parallel()

		game := feedGame("g1")
		game.Bookmakers[0].Markets = game.Bookmakers[0].Markets[:1]

		repo := memory.NewGameOddsRepository()
		svc := newIngestService(&fakeOddsFetcher{games: []odds.FeedGame{game}}, repo)

		if _, err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh: %v", err)
		}

		stored, _, _ := repo.GetByID(context.Background(), 1)
		if stored.HomeMoneyline == nil {
			t.Error("expected moneyline to be set")
		}
		if stored.HomeSpreadPoint != nil || stored.TotalOverPrice != nil {
			t.Errorf("expected absent markets to stay nil, got %+v", stored)
		}
	})

	t.Run("re-ingest fully replaces odds fields", func(t *testing.T) {
		t.Parallel()

		repo := memory.NewGameOddsRepository()
		first := feedGame("g1")
		svc := newIngestService(&fakeOddsFetcher{games: []odds.FeedGame{first}}, repo)
		if _, err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("first Refresh: %v", err)
		}

		// Same game, spreads and totals gone from the feed.
		second := feedGame("g1")
		second.Bookmakers[0].Markets = second.Bookmakers[0].Markets[:1]
		svc = newIngestService(&fakeOddsFetcher{games: []odds.FeedGame{second}}, repo)

		summary, err := svc.Refresh(context.Background())
		if err != nil {
			t.Fatalf("second Refresh: %v", err)
		}
		if summary.Updated != 1 || summary.Created != 0 {
			t.Fatalf("summary = %+v", summary)
		}

		stored, _, _ := repo.GetByID(context.Background(), 1)
		if stored.HomeSpreadPoint != nil || stored.TotalOverPoint != nil {
			t.Errorf("stale odds survived the replace: %+v", stored)
		}
	})

	t.Run("filters out games without the tracked team", func(t *testing.T) {
		t.Parallel()

		other := feedGame("g2")
		other.HomeTeam = "Alabama Crimson Tide"
		other.AwayTeam = "Auburn Tigers"

		repo := memory.NewGameOddsRepository()
		svc := newIngestService(&fakeOddsFetcher{games: []odds.FeedGame{feedGame("g1"), other}}, repo)

		summary, err := svc.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if summary.Processed != 1 {
			t.Errorf("Processed = %d, want 1", summary.Processed)
		}
	})

	t.Run("first matching bookmaker wins", func(t *testing.T) {
		t.Parallel()

		game := feedGame("g1")
		dup := game.Bookmakers[0]
		dup.Title = "DraftKings Mirror"
		game.Bookmakers = append([]odds.FeedBookmaker{
			{Key: "fanduel", Title: "FanDuel"},
			game.Bookmakers[0],
		}, dup)

		repo := memory.NewGameOddsRepository()
		svc := newIngestService(&fakeOddsFetcher{games: []odds.FeedGame{game}}, repo)

		if _, err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh: %v", err)
		}

		stored, _, _ := repo.GetByID(context.Background(), 1)
		if stored.BookmakerName != "DraftKings" {
			t.Errorf("BookmakerName = %q, want the first matching entry", stored.BookmakerName)
		}
	})

	t.Run("bad game is skipped, others proceed", func(t *testing.T) {
		t.Parallel()

		bad := feedGame("g-bad")
		bad.CommenceTime = "not-a-time"

		repo := memory.NewGameOddsRepository()
		svc := newIngestService(&fakeOddsFetcher{games: []odds.FeedGame{bad, feedGame("g-good")}}, repo)

		summary, err := svc.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if summary.Processed != 2 || summary.Created != 1 || summary.Skipped != 1 {
			t.Fatalf("summary = %+v", summary)
		}
		if len(summary.Warnings) != 1 {
			t.Fatalf("Warnings = %v", summary.Warnings)
		}
	})

	t.Run("missing bookmaker skips the game", func(t *testing.T) {
		t.Parallel()

		game := feedGame("g1")
		game.Bookmakers = nil

		repo := memory.NewGameOddsRepository()
		svc := newIngestService(&fakeOddsFetcher{games: []odds.FeedGame{game}}, repo)

		summary, err := svc.Refresh(context.Background())
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if summary.Skipped != 1 || summary.Created != 0 {
			t.Fatalf("summary = %+v", summary)
		}
	})

	t.Run("fetch failure aborts the run", func(t *testing.T) {
		t.Parallel()

		svc := newIngestService(&fakeOddsFetcher{err: errors.New("provider down")}, memory.NewGameOddsRepository())

		if _, err := svc.Refresh(context.Background()); err == nil {
			t.Fatal("expected error when the fetch fails")
		}
	})
}
