package news

import "context"

// Repository exposes stored article operations.
type Repository interface {
	List(ctx context.Context) ([]Article, error)
	GetByID(ctx context.Context, articleID int64) (Article, bool, error)
	Create(ctx context.Context, article Article) (Article, error)
	Delete(ctx context.Context, articleID int64) error
}
