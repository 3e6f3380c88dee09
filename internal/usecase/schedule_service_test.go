package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/schedule"
	"github.com/walkerpaxton/GTSportsLine/internal/infrastructure/repository/memory"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

type fakeScheduleFetcher struct {
	games []schedule.Game
	err   error
	year  int
}

func (f *fakeScheduleFetcher) FetchGames(_ context.Context, year int) ([]schedule.Game, error) {
	f.year = year
	return f.games, f.err
}

func int64Ptr(v int64) *int64 { return &v }

func scheduleGame(id int64, season int) schedule.Game {
	date := time.Date(season, 9, 6, 19, 30, 0, 0, time.UTC)
	return schedule.Game{
		ExternalID: int64Ptr(id),
		Season:     season,
		SeasonType: schedule.SeasonTypeRegular,
		HomeTeam:   "Georgia Tech",
		AwayTeam:   "Clemson",
		GameDate:   &date,
	}
}

func TestScheduleSync(t *testing.T) {
	t.Parallel()

	t.Run("upserts fetched games", func(t *testing.T) {
		t.Parallel()

		repo := memory.NewScheduleRepository()
		fetcher := &fakeScheduleFetcher{games: []schedule.Game{scheduleGame(1, 2025), scheduleGame(2, 2025)}}
		svc := usecase.NewScheduleService(fetcher, repo, logging.NewNop())

		summary, err := svc.Sync(context.Background(), 2025)
		if err != nil {
			t.Fatalf("Sync: %v", err)
		}
		if summary.Created != 2 || summary.Updated != 0 || summary.Skipped != 0 {
			t.Fatalf("summary = %+v", summary)
		}

		summary, err = svc.Sync(context.Background(), 2025)
		if err != nil {
			t.Fatalf("second Sync: %v", err)
		}
		if summary.Created != 0 || summary.Updated != 2 {
			t.Fatalf("second summary = %+v", summary)
		}

		stored, err := svc.ListStored(context.Background(), 2025)
		if err != nil {
			t.Fatalf("ListStored: %v", err)
		}
		if len(stored) != 2 {
			t.Errorf("stored = %v", stored)
		}
	})

	t.Run("skips games without a provider id", func(t *testing.T) {
		t.Parallel()

		noID := scheduleGame(0, 2025)
		noID.ExternalID = nil

		repo := memory.NewScheduleRepository()
		fetcher := &fakeScheduleFetcher{games: []schedule.Game{noID, scheduleGame(7, 2025)}}
		svc := usecase.NewScheduleService(fetcher, repo, logging.NewNop())

		summary, err := svc.Sync(context.Background(), 2025)
		if err != nil {
			t.Fatalf("Sync: %v", err)
		}
		if summary.Created != 1 || summary.Skipped != 1 || len(summary.Warnings) != 1 {
			t.Fatalf("summary = %+v", summary)
		}
	})

	t.Run("fetch failure aborts", func(t *testing.T) {
		t.Parallel()

		svc := usecase.NewScheduleService(&fakeScheduleFetcher{err: errors.New("down")}, memory.NewScheduleRepository(), logging.NewNop())
		if _, err := svc.Sync(context.Background(), 2025); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGetSeasonDefaultsYear(t *testing.T) {
	t.Parallel()

	fetcher := &fakeScheduleFetcher{}
	svc := usecase.NewScheduleService(fetcher, memory.NewScheduleRepository(), logging.NewNop())

	feed, err := svc.GetSeason(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetSeason: %v", err)
	}
	if fetcher.year != time.Now().UTC().Year() {
		t.Errorf("year = %d, want current year", fetcher.year)
	}
	if feed.Season != fetcher.year {
		t.Errorf("feed season = %d, want %d", feed.Season, fetcher.year)
	}
}

func TestGetSeasonFallsBackToStoredCopy(t *testing.T) {
	t.Parallel()

	repo := memory.NewScheduleRepository()
	fetcher := &fakeScheduleFetcher{games: []schedule.Game{scheduleGame(1, 2025)}}
	svc := usecase.NewScheduleService(fetcher, repo, logging.NewNop())

	if _, err := svc.Sync(context.Background(), 2025); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	fetcher.err = errors.New("provider down")

	feed, err := svc.GetSeason(context.Background(), 2025)
	if err != nil {
		t.Fatalf("GetSeason: %v", err)
	}
	if feed.FetchWarning == "" {
		t.Error("expected a fetch warning")
	}
	if len(feed.Games) != 1 {
		t.Errorf("games = %v", feed.Games)
	}
}
