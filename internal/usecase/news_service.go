package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/news"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/user"
)

const articleTitleMaxLength = 200

// ArticleFetcher is the external news provider.
type ArticleFetcher interface {
	FetchArticles(ctx context.Context) ([]news.ExternalArticle, error)
}

type CreateArticleInput struct {
	Title   string
	Content string
}

// NewsFeed is the combined news page payload. FetchWarning carries the
// soft-failure message when the provider could not be reached; stored
// articles are still served in that case.
type NewsFeed struct {
	External     []news.ExternalArticle
	Stored       []news.Article
	FetchWarning string
}

type NewsService struct {
	fetcher     ArticleFetcher
	articleRepo news.Repository
	commentRepo comment.Repository
}

func NewNewsService(fetcher ArticleFetcher, articleRepo news.Repository, commentRepo comment.Repository) *NewsService {
	return &NewsService{
		fetcher:     fetcher,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
	}
}

func (s *NewsService) GetFeed(ctx context.Context) (NewsFeed, error) {
	ctx, span := startUsecaseSpan(ctx, "NewsService.GetFeed")
	defer span.End()

	feed := NewsFeed{}

	external, err := s.fetcher.FetchArticles(ctx)
	if err != nil {
		feed.FetchWarning = err.Error()
	} else {
		feed.External = external
	}

	stored, err := s.articleRepo.List(ctx)
	if err != nil {
		return NewsFeed{}, fmt.Errorf("list stored articles: %w", err)
	}
	feed.Stored = stored

	return feed, nil
}

func (s *NewsService) GetArticle(ctx context.Context, articleID int64) (news.Article, []comment.Comment, error) {
	item, exists, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, nil, fmt.Errorf("get article: %w", err)
	}
	if !exists {
		return news.Article{}, nil, fmt.Errorf("%w: article=%d", ErrNotFound, articleID)
	}

	comments, err := s.commentRepo.ListBySubject(ctx, comment.SubjectArticle, articleID)
	if err != nil {
		return news.Article{}, nil, fmt.Errorf("list article comments: %w", err)
	}

	return item, comments, nil
}

func (s *NewsService) CreateArticle(ctx context.Context, principal user.Principal, input CreateArticleInput) (news.Article, error) {
	if principal.UserID == "" {
		return news.Article{}, fmt.Errorf("%w: sign in to post articles", ErrUnauthorized)
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	if input.Title == "" {
		return news.Article{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(input.Title) > articleTitleMaxLength {
		return news.Article{}, fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, articleTitleMaxLength)
	}
	if input.Content == "" {
		return news.Article{}, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	item, err := s.articleRepo.Create(ctx, news.Article{
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   principal.UserID,
		AuthorName: principal.Name,
	})
	if err != nil {
		return news.Article{}, fmt.Errorf("create article: %w", err)
	}

	return item, nil
}

// DeleteArticle removes a stored article and its comments. Only the author
// may delete; anyone else gets ErrForbidden.
func (s *NewsService) DeleteArticle(ctx context.Context, principal user.Principal, articleID int64) error {
	if principal.UserID == "" {
		return fmt.Errorf("%w: sign in to delete articles", ErrUnauthorized)
	}

	item, exists, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("get article before delete: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: article=%d", ErrNotFound, articleID)
	}
	if item.AuthorID != principal.UserID {
		return fmt.Errorf("%w: only the author can delete this article", ErrForbidden)
	}

	if err := s.commentRepo.DeleteBySubject(ctx, comment.SubjectArticle, articleID); err != nil {
		return fmt.Errorf("delete article comments: %w", err)
	}
	if err := s.articleRepo.Delete(ctx, articleID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	return nil
}
