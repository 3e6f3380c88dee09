package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/user"
	"github.com/walkerpaxton/GTSportsLine/internal/infrastructure/repository/memory"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func newOddsFixture(t *testing.T) (*usecase.OddsService, *memory.GameOddsRepository, odds.Game) {
	t.Helper()

	gameRepo := memory.NewGameOddsRepository()
	svc := usecase.NewOddsService(gameRepo, memory.NewSavedBetRepository(), memory.NewCommentRepository())

	game, _, err := gameRepo.UpsertByExternalID(context.Background(), odds.Game{
		ExternalID: "g1",
		HomeTeam:   "Georgia Tech Yellow Jackets",
		AwayTeam:   "Clemson Tigers",
		KickoffAt:  time.Now().UTC().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return svc, gameRepo, game
}

func TestToggleSaved(t *testing.T) {
	t.Parallel()

	bettor := user.Principal{UserID: "u1", Name: "Buzz"}

	t.Run("requires a signed-in user", func(t *testing.T) {
		t.Parallel()

		svc, _, game := newOddsFixture(t)
		_, err := svc.ToggleSaved(context.Background(), user.Principal{}, game.ID)
		if !errors.Is(err, usecase.ErrUnauthorized) {
			t.Errorf("err = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("unknown game is not found", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newOddsFixture(t)
		_, err := svc.ToggleSaved(context.Background(), bettor, 99)
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("toggling twice returns to unsaved", func(t *testing.T) {
		t.Parallel()

		svc, _, game := newOddsFixture(t)

		saved, err := svc.ToggleSaved(context.Background(), bettor, game.ID)
		if err != nil || !saved {
			t.Fatalf("first toggle: saved=%t err=%v", saved, err)
		}
		saved, err = svc.ToggleSaved(context.Background(), bettor, game.ID)
		if err != nil || saved {
			t.Fatalf("second toggle: saved=%t err=%v", saved, err)
		}

		listed, err := svc.ListSaved(context.Background(), bettor)
		if err != nil {
			t.Fatalf("ListSaved: %v", err)
		}
		if len(listed) != 0 {
			t.Errorf("ListSaved = %v, want empty", listed)
		}
	})

	t.Run("saved flag shows up in listings", func(t *testing.T) {
		t.Parallel()

		svc, _, game := newOddsFixture(t)
		if _, err := svc.ToggleSaved(context.Background(), bettor, game.ID); err != nil {
			t.Fatalf("ToggleSaved: %v", err)
		}

		listed, err := svc.ListUpcoming(context.Background(), bettor)
		if err != nil {
			t.Fatalf("ListUpcoming: %v", err)
		}
		if len(listed) != 1 || !listed[0].Saved {
			t.Errorf("listed = %+v, want saved game", listed)
		}

		anonymous, err := svc.ListUpcoming(context.Background(), user.Principal{})
		if err != nil {
			t.Fatalf("ListUpcoming anonymous: %v", err)
		}
		if anonymous[0].Saved {
			t.Error("anonymous listing must not carry a saved flag")
		}
	})
}

func TestListSavedSkipsRemovedGames(t *testing.T) {
	t.Parallel()

	bettor := user.Principal{UserID: "u1"}
	gameRepo := memory.NewGameOddsRepository()
	betRepo := memory.NewSavedBetRepository()
	svc := usecase.NewOddsService(gameRepo, betRepo, memory.NewCommentRepository())

	game, _, err := gameRepo.UpsertByExternalID(context.Background(), odds.Game{
		ExternalID: "gone",
		KickoffAt:  time.Now().UTC().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("seed game: %v", err)
	}
	if _, err := betRepo.Toggle(context.Background(), bettor.UserID, game.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := betRepo.Toggle(context.Background(), bettor.UserID, 42); err != nil {
		t.Fatalf("toggle dangling: %v", err)
	}

	listed, err := svc.ListSaved(context.Background(), bettor)
	if err != nil {
		t.Fatalf("ListSaved: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != game.ID {
		t.Errorf("listed = %+v, want only the live game", listed)
	}
}

func TestGetGameDetail(t *testing.T) {
	t.Parallel()

	svc, _, game := newOddsFixture(t)

	detail, err := svc.GetGame(context.Background(), user.Principal{}, game.ID)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if detail.Game.ID != game.ID || detail.Saved {
		t.Errorf("detail = %+v", detail)
	}

	if _, err := svc.GetGame(context.Background(), user.Principal{}, 99); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
