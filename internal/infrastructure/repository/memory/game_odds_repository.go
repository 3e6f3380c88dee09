package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
)

type GameOddsRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]odds.Game
}

func NewGameOddsRepository() *GameOddsRepository {
	return &GameOddsRepository{nextID: 1, items: make(map[int64]odds.Game)}
}

func (r *GameOddsRepository) ListUpcoming(_ context.Context, now time.Time) ([]odds.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]odds.Game, 0, len(r.items))
	for _, item := range r.items {
		if item.KickoffAt.Before(now) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *GameOddsRepository) GetByID(_ context.Context, gameID int64) (odds.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[gameID]
	return item, ok, nil
}

func (r *GameOddsRepository) UpsertByExternalID(_ context.Context, game odds.Game) (odds.Game, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.ExternalID == game.ExternalID {
			game.ID = id
			r.items[id] = game
			return game, false, nil
		}
	}

	game.ID = r.nextID
	r.nextID++
	r.items[game.ID] = game
	return game, true, nil
}
