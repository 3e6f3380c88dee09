package cfbd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Logger:  logging.NewNop(),
	})
}

func TestFetchGames(t *testing.T) {
	t.Parallel()

	t.Run("reads camelCase payloads", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("Authorization = %q", got)
			}
			if got := r.URL.Query().Get("seasonType"); got != "both" {
				t.Errorf("seasonType = %q", got)
			}
			_, _ = w.Write([]byte(`[{
				"id": 401550883,
				"season": 2025,
				"week": 2,
				"seasonType": "regular",
				"homeTeam": "Georgia Tech",
				"awayTeam": "Clemson",
				"startDate": "2025-09-06T19:30:00.000Z",
				"venue": "Bobby Dodd Stadium",
				"homePoints": 28,
				"awayPoints": 24,
				"completed": true,
				"neutralSite": false,
				"conferenceGame": true
			}]`))
		})

		games, err := client.FetchGames(context.Background(), 2025)
		if err != nil {
			t.Fatalf("FetchGames: %v", err)
		}
		if len(games) != 1 {
			t.Fatalf("len = %d, want 1", len(games))
		}
		g := games[0]
		if g.ExternalID == nil || *g.ExternalID != 401550883 {
			t.Errorf("ExternalID = %v", g.ExternalID)
		}
		if g.Week == nil || *g.Week != 2 {
			t.Errorf("Week = %v", g.Week)
		}
		if g.HomeScore == nil || *g.HomeScore != 28 || !g.Completed || !g.ConferenceGame {
			t.Errorf("unexpected game: %+v", g)
		}
		want := time.Date(2025, 9, 6, 19, 30, 0, 0, time.UTC)
		if g.GameDate == nil || !g.GameDate.Equal(want) {
			t.Errorf("GameDate = %v, want %v", g.GameDate, want)
		}
	})

	t.Run("reads snake_case payloads", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{
				"id": 7,
				"season": 2025,
				"season_type": "postseason",
				"home_team": "Georgia Tech",
				"away_team": "Georgia",
				"start_date": "2025-11-29T00:00:00Z",
				"home_points": 21,
				"away_points": 17,
				"neutral_site": true
			}]`))
		})

		games, err := client.FetchGames(context.Background(), 2025)
		if err != nil {
			t.Fatalf("FetchGames: %v", err)
		}
		g := games[0]
		if g.SeasonType != "postseason" || g.HomeTeam != "Georgia Tech" || !g.NeutralSite {
			t.Errorf("unexpected game: %+v", g)
		}
		if g.AwayScore == nil || *g.AwayScore != 17 {
			t.Errorf("AwayScore = %v", g.AwayScore)
		}
	})

	t.Run("TBD flag overrides start time", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{
				"id": 8,
				"homeTeam": "Georgia Tech",
				"awayTeam": "Duke",
				"startTimeTbd": true,
				"startTime": "19:30"
			}]`))
		})

		games, err := client.FetchGames(context.Background(), 2025)
		if err != nil {
			t.Fatalf("FetchGames: %v", err)
		}
		if games[0].StartTime == nil || *games[0].StartTime != "TBD" {
			t.Errorf("StartTime = %v, want TBD", games[0].StartTime)
		}
	})

	t.Run("missing API key fails before any request", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not be made without an API key")
		})
		client.apiKey = ""

		_, err := client.FetchGames(context.Background(), 2025)
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Errorf("err = %v, want ErrDependencyUnavailable", err)
		}
	})

	t.Run("status-specific messages", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			code int
			want string
		}{
			{http.StatusUnauthorized, MsgAuthFailed},
			{http.StatusForbidden, MsgForbidden},
			{http.StatusNotFound, MsgNotFound},
			{http.StatusInternalServerError, "API error (500)"},
		}
		for _, tc := range cases {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
			})
			_, err := client.FetchGames(context.Background(), 2025)
			if err == nil || err.Error() != tc.want {
				t.Errorf("code %d: err = %v, want %q", tc.code, err, tc.want)
			}
		}
	})

	t.Run("rejects non-list payloads naming the type", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		})

		_, err := client.FetchGames(context.Background(), 2025)
		if err == nil || !strings.Contains(err.Error(), "Received: object") {
			t.Errorf("err = %v, want mention of received object", err)
		}
	})
}
