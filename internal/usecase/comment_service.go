package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/news"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/user"
)

type AddCommentInput struct {
	SubjectKind string
	SubjectID   int64
	Content     string
}

// CommentService attaches comments to stored articles and odds games. The
// subject must exist at write time; deleting a subject cascades through the
// owning service.
type CommentService struct {
	commentRepo comment.Repository
	articleRepo news.Repository
	gameRepo    odds.Repository
}

func NewCommentService(commentRepo comment.Repository, articleRepo news.Repository, gameRepo odds.Repository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		gameRepo:    gameRepo,
	}
}

func (s *CommentService) ListBySubject(ctx context.Context, subjectKind string, subjectID int64) ([]comment.Comment, error) {
	if err := s.validateSubject(ctx, subjectKind, subjectID); err != nil {
		return nil, err
	}

	items, err := s.commentRepo.ListBySubject(ctx, subjectKind, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return items, nil
}

func (s *CommentService) Add(ctx context.Context, principal user.Principal, input AddCommentInput) (comment.Comment, error) {
	if principal.UserID == "" {
		return comment.Comment{}, fmt.Errorf("%w: sign in to comment", ErrUnauthorized)
	}

	input.Content = strings.TrimSpace(input.Content)
	if input.Content == "" {
		return comment.Comment{}, fmt.Errorf("%w: comment cannot be empty", ErrInvalidInput)
	}
	if len(input.Content) > comment.MaxContentLength {
		return comment.Comment{}, fmt.Errorf("%w: comment must be at most %d characters", ErrInvalidInput, comment.MaxContentLength)
	}

	if err := s.validateSubject(ctx, input.SubjectKind, input.SubjectID); err != nil {
		return comment.Comment{}, err
	}

	item, err := s.commentRepo.Create(ctx, comment.Comment{
		SubjectKind: input.SubjectKind,
		SubjectID:   input.SubjectID,
		Content:     input.Content,
		AuthorID:    principal.UserID,
		AuthorName:  principal.Name,
	})
	if err != nil {
		return comment.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	return item, nil
}

// Delete removes a single comment. Admin only.
func (s *CommentService) Delete(ctx context.Context, principal user.Principal, commentID int64) error {
	if principal.UserID == "" {
		return fmt.Errorf("%w: sign in to delete comments", ErrUnauthorized)
	}
	if !principal.Admin {
		return fmt.Errorf("%w: only admins can delete comments", ErrForbidden)
	}

	_, exists, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment before delete: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: comment=%d", ErrNotFound, commentID)
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *CommentService) validateSubject(ctx context.Context, subjectKind string, subjectID int64) error {
	switch subjectKind {
	case comment.SubjectArticle:
		_, exists, err := s.articleRepo.GetByID(ctx, subjectID)
		if err != nil {
			return fmt.Errorf("get comment subject article: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: article=%d", ErrNotFound, subjectID)
		}
	case comment.SubjectGame:
		_, exists, err := s.gameRepo.GetByID(ctx, subjectID)
		if err != nil {
			return fmt.Errorf("get comment subject game: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: game=%d", ErrNotFound, subjectID)
		}
	default:
		return fmt.Errorf("%w: unknown comment subject %q", ErrInvalidInput, subjectKind)
	}
	return nil
}
