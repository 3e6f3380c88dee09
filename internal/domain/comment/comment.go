package comment

import (
	"context"
	"time"
)

const (
	SubjectArticle = "article"
	SubjectGame    = "game"

	// MaxContentLength bounds a comment body.
	MaxContentLength = 1000
)

// Comment is attached to either a stored article or an odds game. Comments
// are ordered by creation time ascending and can only be removed by admins
// or by deleting their subject.
type Comment struct {
	ID          int64
	SubjectKind string
	SubjectID   int64
	Content     string
	AuthorID    string
	AuthorName  string
	CreatedAt   time.Time
}

// Repository exposes comment storage. DeleteBySubject implements the
// cascade when an article or game goes away; the store layer owns that
// invariant, callers never rely on database-level cascades.
type Repository interface {
	ListBySubject(ctx context.Context, subjectKind string, subjectID int64) ([]Comment, error)
	GetByID(ctx context.Context, commentID int64) (Comment, bool, error)
	Create(ctx context.Context, c Comment) (Comment, error)
	Delete(ctx context.Context, commentID int64) error
	DeleteBySubject(ctx context.Context, subjectKind string, subjectID int64) error
}
