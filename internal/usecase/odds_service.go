package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/bet"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/user"
)

// GameWithState pairs a game with the requesting user's saved flag. Saved is
// always false for anonymous requests.
type GameWithState struct {
	Game  odds.Game
	Saved bool
}

type GameDetail struct {
	Game     odds.Game
	Saved    bool
	Comments []comment.Comment
}

type OddsService struct {
	gameRepo    odds.Repository
	betRepo     bet.Repository
	commentRepo comment.Repository
	now         func() time.Time
}

func NewOddsService(gameRepo odds.Repository, betRepo bet.Repository, commentRepo comment.Repository) *OddsService {
	return &OddsService{
		gameRepo:    gameRepo,
		betRepo:     betRepo,
		commentRepo: commentRepo,
		now:         time.Now,
	}
}

func (s *OddsService) ListUpcoming(ctx context.Context, principal user.Principal) ([]GameWithState, error) {
	ctx, span := startUsecaseSpan(ctx, "OddsService.ListUpcoming")
	defer span.End()

	games, err := s.gameRepo.ListUpcoming(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list upcoming games: %w", err)
	}

	savedByGame := make(map[int64]bool)
	if principal.UserID != "" {
		savedBets, err := s.betRepo.ListByUser(ctx, principal.UserID)
		if err != nil {
			return nil, fmt.Errorf("list saved bets: %w", err)
		}
		for _, item := range savedBets {
			savedByGame[item.GameID] = true
		}
	}

	out := make([]GameWithState, 0, len(games))
	for _, game := range games {
		out = append(out, GameWithState{Game: game, Saved: savedByGame[game.ID]})
	}
	return out, nil
}

func (s *OddsService) GetGame(ctx context.Context, principal user.Principal, gameID int64) (GameDetail, error) {
	game, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return GameDetail{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return GameDetail{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	detail := GameDetail{Game: game}

	if principal.UserID != "" {
		saved, err := s.betRepo.IsSaved(ctx, principal.UserID, gameID)
		if err != nil {
			return GameDetail{}, fmt.Errorf("check saved bet: %w", err)
		}
		detail.Saved = saved
	}

	comments, err := s.commentRepo.ListBySubject(ctx, comment.SubjectGame, gameID)
	if err != nil {
		return GameDetail{}, fmt.Errorf("list game comments: %w", err)
	}
	detail.Comments = comments

	return detail, nil
}

// ToggleSaved flips the user's saved flag on a game and reports the new
// state. Toggling twice is a no-op overall.
func (s *OddsService) ToggleSaved(ctx context.Context, principal user.Principal, gameID int64) (bool, error) {
	if principal.UserID == "" {
		return false, fmt.Errorf("%w: sign in to save bets", ErrUnauthorized)
	}

	_, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return false, fmt.Errorf("get game before toggle: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	saved, err := s.betRepo.Toggle(ctx, principal.UserID, gameID)
	if err != nil {
		return false, fmt.Errorf("toggle saved bet: %w", err)
	}
	return saved, nil
}

// ListSaved returns the user's saved games, most recently saved first.
// Saved rows pointing at games that have since been removed are skipped.
func (s *OddsService) ListSaved(ctx context.Context, principal user.Principal) ([]odds.Game, error) {
	if principal.UserID == "" {
		return nil, fmt.Errorf("%w: sign in to view saved bets", ErrUnauthorized)
	}

	savedBets, err := s.betRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list saved bets: %w", err)
	}

	out := make([]odds.Game, 0, len(savedBets))
	for _, item := range savedBets {
		game, exists, err := s.gameRepo.GetByID(ctx, item.GameID)
		if err != nil {
			return nil, fmt.Errorf("get saved game: %w", err)
		}
		if !exists {
			continue
		}
		out = append(out, game)
	}
	return out, nil
}
