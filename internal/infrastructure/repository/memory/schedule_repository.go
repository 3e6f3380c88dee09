package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]schedule.Game
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{nextID: 1, items: make(map[int64]schedule.Game)}
}

func (r *ScheduleRepository) ListBySeason(_ context.Context, season int) ([]schedule.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Game, 0, len(r.items))
	for _, item := range r.items {
		if item.Season != season {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		left, right := out[i].GameDate, out[j].GameDate
		switch {
		case left != nil && right != nil && !left.Equal(*right):
			return left.Before(*right)
		case left == nil && right != nil:
			return false
		case left != nil && right == nil:
			return true
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ScheduleRepository) UpsertByExternalID(_ context.Context, game schedule.Game) (schedule.Game, bool, error) {
	if game.ExternalID == nil {
		return schedule.Game{}, false, fmt.Errorf("schedule game is missing an external id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.ExternalID != nil && *item.ExternalID == *game.ExternalID {
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
