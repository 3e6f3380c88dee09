package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/schedule"
	"github.com/walkerpaxton/GTSportsLine/internal/infrastructure/repository/memory"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func newJobsFixture(oddsFetcher usecase.OddsFetcher, scheduleFetcher usecase.ScheduleFetcher) *usecase.JobsService {
	ingest := usecase.NewOddsIngestService(oddsFetcher, memory.NewGameOddsRepository(), usecase.OddsIngestConfig{
		BookmakerKey: "draftkings",
	}, logging.NewNop())
	scheduleSvc := usecase.NewScheduleService(scheduleFetcher, memory.NewScheduleRepository(), logging.NewNop())
	return usecase.NewJobsService(ingest, scheduleSvc, usecase.JobsConfig{WorkerCount: 2}, logging.NewNop())
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	t.Run("runs every job", func(t *testing.T) {
		t.Parallel()

		svc := newJobsFixture(
			&fakeOddsFetcher{games: []odds.FeedGame{feedGame("g1")}},
			&fakeScheduleFetcher{games: []schedule.Game{scheduleGame(1, 2025)}},
		)

		result, err := svc.Bootstrap(context.Background())
		if err != nil {
			t.Fatalf("Bootstrap: %v", err)
		}
		if result.TaskCount != 2 || result.FailedCount != 0 {
			t.Fatalf("result = %+v", result)
		}
	})

	t.Run("one failing job does not stop the others", func(t *testing.T) {
		t.Parallel()

		svc := newJobsFixture(
			&fakeOddsFetcher{err: errors.New("odds provider down")},
			&fakeScheduleFetcher{games: []schedule.Game{scheduleGame(1, 2025)}},
		)

		result, err := svc.Bootstrap(context.Background())
		if err != nil {
			t.Fatalf("Bootstrap: %v", err)
		}
		if result.FailedCount != 1 {
			t.Fatalf("result = %+v", result)
		}

		succeeded := false
		for _, row := range result.Tasks {
			if row.Job == "sync-schedule" && row.Status == "ok" {
				succeeded = true
			}
		}
		if !succeeded {
			t.Errorf("schedule sync should have succeeded: %+v", result.Tasks)
		}
	})
}
