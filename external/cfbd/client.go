// Package cfbd fetches the Georgia Tech schedule from
// api.collegefootballdata.com.
//
// The provider has shipped both snake_case and camelCase payloads over time,
// so every field is read under an ordered list of candidate keys with a
// typed default. See fields.go.
package cfbd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/schedule"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/timeparse"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

const (
	defaultBaseURL = "https://api.collegefootballdata.com"
	defaultTimeout = 10 * time.Second

	teamName = "Georgia Tech"
)

// Soft-failure messages surfaced to readers, keyed to the provider's HTTP
// status.
const (
	MsgNotConfigured = "Schedule service is not configured yet."
	MsgAuthFailed    = "Authentication failed. Please check your SCHEDULE_API_KEY."
	MsgForbidden     = "Access forbidden. Please check your API key permissions."
	MsgNotFound      = "Schedule endpoint not found. Please check the API documentation."
)

var errScheduleTransient = crerr.New("schedule provider transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger,
	}
}

// FetchGames returns the normalized schedule for one season, regular and
// postseason both. A missing API key fails before any network call.
func (c *Client) FetchGames(ctx context.Context, year int) ([]schedule.Game, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: %s", usecase.ErrDependencyUnavailable, MsgNotConfigured)
	}
	if year <= 0 {
		year = time.Now().UTC().Year()
	}

	values := url.Values{}
	values.Set("year", fmt.Sprintf("%d", year))
	values.Set("team", teamName)
	values.Set("seasonType", "both")

	fullURL := c.baseURL + "/games?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "schedule request failed", "error", err)
		return nil, fmt.Errorf("%w: unable to reach the schedule service: %v", errScheduleTransient, err)
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errScheduleTransient, readErr)
	}
	if msg, ok := statusMessage(resp.StatusCode); ok {
		return nil, fmt.Errorf("%s", msg)
	}

	// A valid payload is a JSON array of game objects. Anything else (an
	// error object, a bare string) is an upstream contract failure.
	var payload any
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode schedule payload: %w", err)
	}
	items, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response from the schedule service. Received: %s", jsonTypeName(payload))
	}

	out := make([]schedule.Game, 0, len(items))
	for _, item := range items {
		game, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, normalizeGame(game, year))
	}

	return out, nil
}

func statusMessage(code int) (string, bool) {
	switch {
	case code >= 200 && code < 300:
		return "", false
	case code == http.StatusUnauthorized:
		return MsgAuthFailed, true
	case code == http.StatusForbidden:
		return MsgForbidden, true
	case code == http.StatusNotFound:
		return MsgNotFound, true
	default:
		return fmt.Sprintf("API error (%d)", code), true
	}
}

func normalizeGame(game map[string]any, year int) schedule.Game {
	homeTeam := getString(game, "", "homeTeam", "home_team")
	awayTeam := getString(game, "", "awayTeam", "away_team")
	startDate := getString(game, "", "startDate", "start_date")
	startTimeTbd := getBool(game, false, "startTimeTbd", "start_time_tbd")

	// The TBD flag wins over any concrete start time the provider sends.
	var startTime *string
	if startTimeTbd {
		tbd := "TBD"
		startTime = &tbd
	} else if raw := getString(game, "", "startTime", "start_time"); raw != "" {
		startTime = &raw
	}

	return schedule.Game{
		ExternalID:     getInt64Ptr(game, "id"),
		Season:         int(getInt64(game, int64(year), "season")),
		Week:           getIntPtr(game, "week"),
		SeasonType:     getString(game, schedule.SeasonTypeRegular, "seasonType", "season_type"),
		HomeTeam:       homeTeam,
		AwayTeam:       awayTeam,
		GameDate:       timeparse.ParseUTC(startDate),
		StartTime:      startTime,
		Venue:          getString(game, "", "venue"),
		HomeScore:      getIntPtr(game, "homePoints", "home_points"),
		AwayScore:      getIntPtr(game, "awayPoints", "away_points"),
		Completed:      getBool(game, false, "completed"),
		NeutralSite:    getBool(game, false, "neutralSite", "neutral_site"),
		ConferenceGame: getBool(game, false, "conferenceGame", "conference_game"),
	}
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", value)
	}
}
