package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
)

type CommentRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]comment.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{nextID: 1, items: make(map[int64]comment.Comment)}
}

func (r *CommentRepository) ListBySubject(_ context.Context, subjectKind string, subjectID int64) ([]comment.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]comment.Comment, 0)
	for _, item := range r.items {
		if item.SubjectKind == subjectKind && item.SubjectID == subjectID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CommentRepository) GetByID(_ context.Context, commentID int64) (comment.Comment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[commentID]
	return item, ok, nil
}

func (r *CommentRepository) Create(_ context.Context, c comment.Comment) (comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.items[c.ID] = c
	return c, nil
}

func (r *CommentRepository) Delete(_ context.Context, commentID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, commentID)
	return nil
}

func (r *CommentRepository) DeleteBySubject(_ context.Context, subjectKind string, subjectID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.SubjectKind == subjectKind && item.SubjectID == subjectID {
			delete(r.items, id)
		}
	}
	return nil
}
