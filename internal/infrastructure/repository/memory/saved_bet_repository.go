package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/bet"
)

type SavedBetRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]bet.SavedBet
}

func NewSavedBetRepository() *SavedBetRepository {
	return &SavedBetRepository{nextID: 1, items: make(map[int64]bet.SavedBet)}
}

func (r *SavedBetRepository) ListByUser(_ context.Context, userID string) ([]bet.SavedBet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bet.SavedBet, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *SavedBetRepository) IsSaved(_ context.Context, userID string, gameID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.find(userID, gameID)
	return ok, nil
}

func (r *SavedBetRepository) Toggle(_ context.Context, userID string, gameID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.find(userID, gameID); ok {
		delete(r.items, id)
		return false, nil
	}

	item := bet.SavedBet{
		ID:        r.nextID,
		UserID:    userID,
		GameID:    gameID,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.items[item.ID] = item
	return true, nil
}

func (r *SavedBetRepository) find(userID string, gameID int64) (int64, bool) {
	for id, item := range r.items {
		if item.UserID == userID && item.GameID == gameID {
			return id, true
		}
	}
	return 0, false
}
