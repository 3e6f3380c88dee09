// Package oddsapi fetches NCAAF betting lines from The Odds API v4.
package oddsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

const (
	defaultBaseURL = "https://api.the-odds-api.com/v4"
	defaultTimeout = 10 * time.Second

	// Fixed request shape: US region, the three standard markets, American
	// odds, a single configured bookmaker.
	regions    = "us"
	markets    = "h2h,spreads,totals"
	oddsFormat = "american"
)

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errOddsTransient = crerr.New("odds provider transient failure")

type ClientConfig struct {
	HTTPClient   *http.Client
	BaseURL      string
	APIKey       string
	SportKey     string
	BookmakerKey string
	Timeout      time.Duration
	Logger       *logging.Logger
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	sportKey     string
	bookmakerKey string
	logger       *logging.Logger
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
		httpClient:   httpClient,
		baseURL:      baseURL,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		sportKey:     strings.TrimSpace(cfg.SportKey),
		bookmakerKey: strings.TrimSpace(cfg.BookmakerKey),
		logger:       logger,
	}
}

// FetchGames performs the single bounded GET for the configured sport and
// bookmaker. One attempt, no retries; callers treat any error as a soft
// failure except the ingestion command's top-level invocation.
func (c *Client) FetchGames(ctx context.Context) ([]odds.FeedGame, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: odds provider API key is not configured", usecase.ErrDependencyUnavailable)
	}

	values := url.Values{}
	values.Set("api_key", c.apiKey)
	values.Set("regions", regions)
	values.Set("markets", markets)
	values.Set("oddsFormat", oddsFormat)
	values.Set("bookmakers", c.bookmakerKey)

	fullURL := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, c.sportKey, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "odds request failed", "url", redactAPIURL(fullURL), "error", err)
		return nil, fmt.Errorf("%w: send request: %s", errOddsTransient, apiKeyParamRegex.ReplaceAllString(err.Error(), "api_key=REDACTED"))
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errOddsTransient, readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("odds provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}

	var games []odds.FeedGame
	if err := sonic.Unmarshal(raw, &games); err != nil {
		return nil, fmt.Errorf("decode odds payload: %w", err)
	}

	return games, nil
}

func redactAPIURL(fullURL string) string {
	return apiKeyParamRegex.ReplaceAllString(fullURL, "api_key=REDACTED")
}

func abbreviateBody(raw []byte) string {
	const max = 256
	text := strings.TrimSpace(string(raw))
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
