// Package memory holds in-memory repository implementations used when no
// database is configured and by the usecase tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/news"
)

type ArticleRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]news.Article
}

func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{nextID: 1, items: make(map[int64]news.Article)}
}

func (r *ArticleRepository) List(_ context.Context) ([]news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Article, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ArticleRepository) GetByID(_ context.Context, articleID int64) (news.Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[articleID]
	return item, ok, nil
}

func (r *ArticleRepository) Create(_ context.Context, article news.Article) (news.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	article.ID = r.nextID
	r.nextID++
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}
	r.items[article.ID] = article
	return article, nil
}

func (r *ArticleRepository) Delete(_ context.Context, articleID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, articleID)
	return nil
}
