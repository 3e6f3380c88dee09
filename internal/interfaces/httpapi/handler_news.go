package httpapi

import (
	"fmt"
	"net/http"

	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func (h *Handler) GetNewsFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNewsFeed")
	defer span.End()

	feed, err := h.newsService.GetFeed(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsFeedToDTO(ctx, feed))
}

func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetArticle")
	defer span.End()

	articleID, err := pathID(r, "articleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	article, comments, err := h.newsService.GetArticle(ctx, articleID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, articleDetailDTO{
		Article:  articleToDTO(article),
		Comments: commentsToDTO(comments),
	})
}

func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateArticle")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createArticleRequest
	if err := decodeRequestBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	article, err := h.newsService.CreateArticle(ctx, principal, usecase.CreateArticleInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, articleToDTO(article))
}

func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteArticle")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	articleID, err := pathID(r, "articleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.newsService.DeleteArticle(ctx, principal, articleID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"deleted": true, "articleId": articleID})
}
