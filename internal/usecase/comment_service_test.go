package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/news"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/odds"
	"github.com/walkerpaxton/GTSportsLine/internal/domain/user"
	"github.com/walkerpaxton/GTSportsLine/internal/infrastructure/repository/memory"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

type commentFixture struct {
	svc     *usecase.CommentService
	article news.Article
	game    odds.Game
}

func newCommentFixture(t *testing.T) commentFixture {
	t.Helper()

	articleRepo := memory.NewArticleRepository()
	gameRepo := memory.NewGameOddsRepository()
	svc := usecase.NewCommentService(memory.NewCommentRepository(), articleRepo, gameRepo)

	article, err := articleRepo.Create(context.Background(), news.Article{Title: "T", Content: "C", AuthorID: "u1"})
	if err != nil {
		t.Fatalf("seed article: %v", err)
	}
	game, _, err := gameRepo.UpsertByExternalID(context.Background(), odds.Game{
		ExternalID: "g1",
		KickoffAt:  time.Now().UTC().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("seed game: %v", err)
	}

	return commentFixture{svc: svc, article: article, game: game}
}

func TestAddComment(t *testing.T) {
	t.Parallel()

	poster := user.Principal{UserID: "u2", Name: "Fan"}

	t.Run("attaches to articles and games", func(t *testing.T) {
		t.Parallel()
		fx := newCommentFixture(t)

		for _, input := range []usecase.AddCommentInput{
			{SubjectKind: comment.SubjectArticle, SubjectID: fx.article.ID, Content: "great read"},
			{SubjectKind: comment.SubjectGame, SubjectID: fx.game.ID, Content: "hammer the over"},
		} {
			item, err := fx.svc.Add(context.Background(), poster, input)
			if err != nil {
				t.Fatalf("Add %s: %v", input.SubjectKind, err)
			}
			if item.ID == 0 || item.AuthorID != poster.UserID {
				t.Errorf("comment = %+v", item)
			}
		}

		listed, err := fx.svc.ListBySubject(context.Background(), comment.SubjectGame, fx.game.ID)
		if err != nil {
			t.Fatalf("ListBySubject: %v", err)
		}
		if len(listed) != 1 {
			t.Errorf("listed = %v", listed)
		}
	})

	t.Run("enforces the length limit", func(t *testing.T) {
		t.Parallel()
		fx := newCommentFixture(t)

		_, err := fx.svc.Add(context.Background(), poster, usecase.AddCommentInput{
			SubjectKind: comment.SubjectArticle,
			SubjectID:   fx.article.ID,
			Content:     strings.Repeat("a", comment.MaxContentLength+1),
		})
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}

		// Exactly at the limit is fine.
		if _, err := fx.svc.Add(context.Background(), poster, usecase.AddCommentInput{
			SubjectKind: comment.SubjectArticle,
			SubjectID:   fx.article.ID,
			Content:     strings.Repeat("a", comment.MaxContentLength),
		}); err != nil {
			t.Errorf("limit-length comment rejected: %v", err)
		}
	})

	t.Run("rejects unknown subjects", func(t *testing.T) {
		t.Parallel()
		fx := newCommentFixture(t)

		_, err := fx.svc.Add(context.Background(), poster, usecase.AddCommentInput{
			SubjectKind: "podcast",
			SubjectID:   1,
			Content:     "hi",
		})
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Errorf("unknown kind: err = %v", err)
		}

		_, err = fx.svc.Add(context.Background(), poster, usecase.AddCommentInput{
			SubjectKind: comment.SubjectGame,
			SubjectID:   404,
			Content:     "hi",
		})
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Errorf("missing game: err = %v", err)
		}
	})

	t.Run("requires a signed-in user", func(t *testing.T) {
		t.Parallel()
		fx := newCommentFixture(t)

		_, err := fx.svc.Add(context.Background(), user.Principal{}, usecase.AddCommentInput{
			SubjectKind: comment.SubjectArticle,
			SubjectID:   fx.article.ID,
			Content:     "hi",
		})
		if !errors.Is(err, usecase.ErrUnauthorized) {
			t.Errorf("err = %v, want ErrUnauthorized", err)
		}
	})
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()

	poster := user.Principal{UserID: "u2", Name: "Fan"}
	admin := user.Principal{UserID: "a1", Name: "Mod", Admin: true}

	fx := newCommentFixture(t)
	item, err := fx.svc.Add(context.Background(), poster, usecase.AddCommentInput{
		SubjectKind: comment.SubjectArticle,
		SubjectID:   fx.article.ID,
		Content:     "hot take",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := fx.svc.Delete(context.Background(), poster, item.ID); !errors.Is(err, usecase.ErrForbidden) {
		t.Errorf("non-admin delete: err = %v, want ErrForbidden", err)
	}

	if err := fx.svc.Delete(context.Background(), admin, item.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if err := fx.svc.Delete(context.Background(), admin, item.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}
