// Package app assembles the service: repositories, external clients,
// usecase services, and the HTTP router.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/walkerpaxton/GTSportsLine/external/cfbd"
	"github.com/walkerpaxton/GTSportsLine/external/newsapi"
	"github.com/walkerpaxton/GTSportsLine/external/oddsapi"
	"github.com/walkerpaxton/GTSportsLine/internal/config"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/bet"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/news"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/schedule"
	"github.com/walkerpaxton/GTSportsLine/internal/infrastructure/account"
	"github.com/walkerpaxton/GTSportsLine/internal/infrastructure/repository/memory"
	"github.com/walkerpaxton/GTSportsLine/internal/infrastructure/repository/postgres"
	"github.com/walkerpaxton/GTSportsLine/internal/interfaces/httpapi"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

type repositories struct {
	articles news.Repository
	games    odds.Repository
	schedule schedule.Repository
	comments comment.Repository
	bets     bet.Repository
}

// NewHTTPServer builds the HTTP server. The returned cleanup closes the
// database handle when one was opened and is safe to call on a nil-free path.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	services, cleanup, err := NewServices(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	verifier := account.NewClient(account.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.AccountTimeout},
		BaseURL:        cfg.AccountBaseURL,
		IntrospectPath: cfg.AccountIntrospectPath,
		CacheTTL:       cfg.AccountCacheTTL,
		Logger:         logger,
	})

	handler := httpapi.NewHandler(
		services.News,
		services.Odds,
		services.Comments,
		services.Schedule,
		services.Jobs,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// Services bundles the usecase layer for the HTTP handler and the job
// binaries.
type Services struct {
	News       *usecase.NewsService
	Odds       *usecase.OddsService
	Comments   *usecase.CommentService
	Schedule   *usecase.ScheduleService
	OddsIngest *usecase.OddsIngestService
	Jobs       *usecase.JobsService
}

// NewServices builds the usecase layer against either postgres or the
// in-memory repositories, depending on DB_URL.
func NewServices(cfg config.Config, logger *logging.Logger) (Services, func(context.Context) error, error) {
	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return Services{}, nil, err
	}
	return buildServices(cfg, repos, logger), cleanup, nil
}

func buildServices(cfg config.Config, repos repositories, logger *logging.Logger) Services {
	newsClient := newsapi.NewClient(newsapi.ClientConfig{
		HTTPClient: providerHTTPClient(cfg.NewsTimeout),
		BaseURL:    cfg.NewsAPIBaseURL,
		APIKey:     cfg.NewsAPIKey,
		Logger:     logger,
	})
	oddsClient := oddsapi.NewClient(oddsapi.ClientConfig{
		HTTPClient:   providerHTTPClient(cfg.OddsTimeout),
		BaseURL:      cfg.OddsAPIBaseURL,
		APIKey:       cfg.OddsAPIKey,
		SportKey:     cfg.OddsSportKey,
		BookmakerKey: cfg.OddsBookmakerKey,
		Logger:       logger,
	})
	scheduleClient := cfbd.NewClient(cfbd.ClientConfig{
		HTTPClient: providerHTTPClient(cfg.ScheduleTimeout),
		BaseURL:    cfg.ScheduleAPIBaseURL,
		APIKey:     cfg.ScheduleAPIKey,
		Logger:     logger,
	})

	oddsIngest := usecase.NewOddsIngestService(oddsClient, repos.games, usecase.OddsIngestConfig{
		BookmakerKey: cfg.OddsBookmakerKey,
	}, logger)
	scheduleSvc := usecase.NewScheduleService(scheduleClient, repos.schedule, logger)

	return Services{
		News:       usecase.NewNewsService(newsClient, repos.articles, repos.comments),
		Odds:       usecase.NewOddsService(repos.games, repos.bets, repos.comments),
		Comments:   usecase.NewCommentService(repos.comments, repos.articles, repos.games),
		Schedule:   scheduleSvc,
		OddsIngest: oddsIngest,
		Jobs: usecase.NewJobsService(oddsIngest, scheduleSvc, usecase.JobsConfig{
			WorkerCount: cfg.JobWorkerCount,
		}, logger),
	}
}

// providerHTTPClient instruments outbound provider calls so fetch spans
// nest under the request or job trace.
func providerHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func(context.Context) error, error) {
	if cfg.DBURL == "" {
		logger.Info("no DB_URL configured, using in-memory repositories")
		return repositories{
			articles: memory.NewArticleRepository(),
			games:    memory.NewGameOddsRepository(),
			schedule: memory.NewScheduleRepository(),
			comments: memory.NewCommentRepository(),
			bets:     memory.NewSavedBetRepository(),
		}, func(context.Context) error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))

	cleanup := func(context.Context) error { return db.Close() }
	return repositories{
		articles: postgres.NewArticleRepository(db),
		games:    postgres.NewGameOddsRepository(db),
		schedule: postgres.NewScheduleRepository(db),
		comments: postgres.NewCommentRepository(db),
		bets:     postgres.NewSavedBetRepository(db),
	}, cleanup, nil
}
