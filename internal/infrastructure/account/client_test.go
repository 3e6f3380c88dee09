package account

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/platform/logging"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, ttl time.Duration) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		IntrospectPath: "/v1/introspect",
		CacheTTL:       ttl,
		Logger:         logging.NewNop(),
	})
}

func TestVerifyAccessToken(t *testing.T) {
	t.Run("active token yields principal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/introspect" {
				t.Errorf("path = %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"active":true,"user_id":"u1","name":"Buzz","admin":true}`))
		}, time.Minute)

		principal, err := client.VerifyAccessToken(context.Background(), "token-1")
		if err != nil {
			t.Fatalf("VerifyAccessToken: %v", err)
		}
		if principal.UserID != "u1" || principal.Name != "Buzz" || !principal.Admin {
			t.Errorf("principal = %+v", principal)
		}
	})

	t.Run("inactive token is unauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"active":false}`))
		}, time.Minute)

		_, err := client.VerifyAccessToken(context.Background(), "token-1")
		if !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("denied introspection is unauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}, time.Minute)

		_, err := client.VerifyAccessToken(context.Background(), "token-1")
		if !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("empty token fails before the request", func(t *testing.T) {
		client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("introspection endpoint should not be called")
		}, time.Minute)

		_, err := client.VerifyAccessToken(context.Background(), "  ")
		if !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("verified principal is cached", func(t *testing.T) {
		var calls atomic.Int64
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"active":true,"user_id":"u1","name":"Buzz"}`))
		}, time.Minute)

		for i := 0; i < 3; i++ {
			if _, err := client.VerifyAccessToken(context.Background(), "token-1"); err != nil {
				t.Fatalf("VerifyAccessToken #%d: %v", i, err)
			}
		}
		if got := calls.Load(); got != 1 {
			t.Errorf("introspection calls = %d, want 1", got)
		}
	})
}
