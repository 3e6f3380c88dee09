// Package newsapi fetches Georgia Tech football stories from newsapi.org.
//
// Failures are soft: every fetch returns either a list of normalized
// articles or a user-facing error message, never both, and nothing here
// panics or retries. Articles are assembled per request and discarded.
package newsapi

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

	"github.com/walkerpaxton/GTSportsLine/internal/domain/news"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/platform/timeparse"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"
	defaultTimeout = 8 * time.Second

	// Fixed query: every call asks for the same Georgia Tech football slice.
	searchQuery = `"Georgia Tech" AND ("Yellow Jackets" OR football)`
	pageSize    = "12"
)

// Soft-failure messages surfaced to readers.
const (
	MsgNotConfigured      = "News service is not configured yet."
	MsgUnreachable        = "Unable to reach the news service right now."
	MsgUnexpectedResponse = "Unexpected response from the news service."
)

var errNewsTransient = crerr.New("news provider transient failure")

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

type articlesEnvelope struct {
	Status   string           `json:"status"`
	Articles []payloadArticle `json:"articles"`
}

type payloadArticle struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	Source      payloadSource `json:"source"`
	Author      string        `json:"author"`
	PublishedAt string        `json:"publishedAt"`
}

type payloadSource struct {
	Name string `json:"name"`
}

// FetchArticles returns the latest Georgia Tech football articles, newest
// first as sorted by the provider. A missing API key fails before any
// network call is made.
func (c *Client) FetchArticles(ctx context.Context) ([]news.ExternalArticle, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: %s", usecase.ErrDependencyUnavailable, MsgNotConfigured)
	}

	values := url.Values{}
	values.Set("q", searchQuery)
	values.Set("language", "en")
	values.Set("sortBy", "publishedAt")
	values.Set("pageSize", pageSize)
	values.Set("apiKey", c.apiKey)

	fullURL := c.baseURL + "/everything?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "news request failed", "error", sanitizeAPIKey(err.Error(), c.apiKey))
		return nil, fmt.Errorf("%w: %s", errNewsTransient, MsgUnreachable)
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("%w: %s", errNewsTransient, MsgUnreachable)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "news provider returned error status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s", errNewsTransient, MsgUnreachable)
	}

	var envelope articlesEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%s: decode payload: %w", MsgUnexpectedResponse, err)
	}
	if envelope.Status != "ok" {
		return nil, fmt.Errorf("%s: status=%q", MsgUnexpectedResponse, envelope.Status)
	}

	out := make([]news.ExternalArticle, 0, len(envelope.Articles))
	for _, item := range envelope.Articles {
		out = append(out, news.ExternalArticle{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			ImageURL:    item.URLToImage,
			Source:      item.Source.Name,
			Author:      item.Author,
			PublishedAt: timeparse.ParseUTC(item.PublishedAt),
		})
	}

	return out, nil
}

func sanitizeAPIKey(value, key string) string {
	if key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}
