package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/news"
	qb "github.com/walkerpaxton/GTSportsLine/internal/platform/querybuilder"
)

type ArticleRepository struct {
	db *sqlx.DB
}

func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) List(ctx context.Context) ([]news.Article, error) {
	query, args, err := qb.Select("*").From("news_articles").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list articles query: %w", err)
	}

	var rows []articleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, articleFromRow(row))
	}
	return out, nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, articleID int64) (news.Article, bool, error) {
	query, args, err := qb.Select("*").From("news_articles").
		Where(
			qb.Eq("id", articleID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build get article query: %w", err)
	}

	var row articleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("get article: %w", err)
	}

	return articleFromRow(row), true, nil
}

func (r *ArticleRepository) Create(ctx context.Context, article news.Article) (news.Article, error) {
	insertModel := articleInsertModel{
		Title:      article.Title,
		Content:    article.Content,
		AuthorID:   article.AuthorID,
		AuthorName: article.AuthorName,
	}
	query, args, err := qb.InsertModel("news_articles", insertModel, "RETURNING id, created_at")
	if err != nil {
		return news.Article{}, fmt.Errorf("build insert article query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&article.ID, &article.CreatedAt); err != nil {
		return news.Article{}, fmt.Errorf("insert article: %w", err)
	}
	return article, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, articleID int64) error {
	query, args, err := qb.Update("news_articles").
		Set("deleted_at", nowUTC()).
		Where(
			qb.Eq("id", articleID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete article query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func articleFromRow(row articleTableModel) news.Article {
	return news.Article{
		ID:         row.ID,
		Title:      row.Title,
		Content:    row.Content,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		CreatedAt:  row.CreatedAt,
	}
}
