package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
	qb "github.com/walkerpaxton/GTSportsLine/internal/platform/querybuilder"
)

type CommentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListBySubject(ctx context.Context, subjectKind string, subjectID int64) ([]comment.Comment, error) {
	query, args, err := qb.Select("*").From("comments").
		Where(
			qb.Eq("subject_kind", subjectKind),
			qb.Eq("subject_id", subjectID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list comments query: %w", err)
	}

	var rows []commentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]comment.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, commentFromRow(row))
	}
	return out, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID int64) (comment.Comment, bool, error) {
	query, args, err := qb.Select("*").From("comments").
		Where(
			qb.Eq("id", commentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return comment.Comment{}, false, fmt.Errorf("build get comment query: %w", err)
	}

	var row commentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return comment.Comment{}, false, nil
		}
		return comment.Comment{}, false, fmt.Errorf("get comment: %w", err)
	}

	return commentFromRow(row), true, nil
}

func (r *CommentRepository) Create(ctx context.Context, c comment.Comment) (comment.Comment, error) {
	insertModel := commentInsertModel{
		SubjectKind: c.SubjectKind,
		SubjectID:   c.SubjectID,
		Content:     c.Content,
		AuthorID:    c.AuthorID,
		AuthorName:  c.AuthorName,
	}
	query, args, err := qb.InsertModel("comments", insertModel, "RETURNING id, created_at")
	if err != nil {
		return comment.Comment{}, fmt.Errorf("build insert comment query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return comment.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID int64) error {
	query, args, err := qb.Update("comments").
		Set("deleted_at", nowUTC()).
		Where(
			qb.Eq("id", commentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete comment query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// DeleteBySubject removes every comment attached to one article or game.
// Called when the subject itself is deleted.
func (r *CommentRepository) DeleteBySubject(ctx context.Context, subjectKind string, subjectID int64) error {
	query, args, err := qb.Update("comments").
		Set("deleted_at", nowUTC()).
		Where(
			qb.Eq("subject_kind", subjectKind),
			qb.Eq("subject_id", subjectID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete comments by subject query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete comments by subject: %w", err)
	}
	return nil
}

func commentFromRow(row commentTableModel) comment.Comment {
	return comment.Comment{
		ID:          row.ID,
		SubjectKind: row.SubjectKind,
		SubjectID:   row.SubjectID,
		Content:     row.Content,
		AuthorID:    row.AuthorID,
		AuthorName:  row.AuthorName,
		CreatedAt:   row.CreatedAt,
	}
}
