package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
)

const (
	jobRefreshOdds  = "refresh-odds"
	jobSyncSchedule = "sync-schedule"
)

type JobsConfig struct {
	WorkerCount int
}

type JobTaskResult struct {
	Job        string `json:"job"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type BootstrapResult struct {
	TaskCount   int             `json:"task_count"`
	FailedCount int             `json:"failed_count"`
	Tasks       []JobTaskResult `json:"tasks"`
}

// JobsService runs the data refresh jobs. Bootstrap fans the independent
// jobs out over a worker pool; each job stays a single provider attempt.
type JobsService struct {
	oddsIngest  *OddsIngestService
	scheduleSvc *ScheduleService
	cfg         JobsConfig
	logger      *logging.Logger
	now         func() time.Time
}

func NewJobsService(oddsIngest *OddsIngestService, scheduleSvc *ScheduleService, cfg JobsConfig, logger *logging.Logger) *JobsService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}

	return &JobsService{
		oddsIngest:  oddsIngest,
		scheduleSvc: scheduleSvc,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *JobsService) RefreshOdds(ctx context.Context) (IngestSummary, error) {
	return s.oddsIngest.Refresh(ctx)
}

func (s *JobsService) SyncSchedule(ctx context.Context, year int) (ScheduleSyncSummary, error) {
	return s.scheduleSvc.Sync(ctx, year)
}

// Bootstrap runs every refresh job once, concurrently. A failed job is
// reported in its task row; the other jobs still run to completion.
func (s *JobsService) Bootstrap(ctx context.Context) (BootstrapResult, error) {
	tasks := []struct {
		name string
		run  func(context.Context) error
	}{
		{name: jobRefreshOdds, run: func(ctx context.Context) error {
			_, err := s.oddsIngest.Refresh(ctx)
			return err
		}},
		{name: jobSyncSchedule, run: func(ctx context.Context) error {
			_, err := s.scheduleSvc.Sync(ctx, s.now().UTC().Year())
			return err
		}},
	}

	pool, err := ants.NewPool(s.cfg.WorkerCount)
	if err != nil {
		return BootstrapResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan JobTaskResult, len(tasks))

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := JobTaskResult{Job: task.name, Status: "ok"}
			if err := task.run(ctx); err != nil {
				row.Status = "failed"
				row.Message = err.Error()
				s.logger.WarnContext(ctx, "bootstrap job failed", "job", task.name, "error", err)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			results <- JobTaskResult{Job: task.name, Status: "failed", Message: fmt.Sprintf("submit: %v", err)}
		}
	}

	workers.Wait()
	close(results)

	result := BootstrapResult{Tasks: make([]JobTaskResult, 0, len(tasks))}
	for row := range results {
		result.TaskCount++
		if row.Status != "ok" {
			result.FailedCount++
		}
		result.Tasks = append(result.Tasks, row)
	}

	return result, nil
}
