package httpapi

import (
	"fmt"
	"net/http"

	"github.com/walkerpaxton/GTSportsLine/internal/domain/comment"
	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func (h *Handler) AddArticleComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddArticleComment")
	defer span.End()

	h.addComment(w, r.WithContext(ctx), comment.SubjectArticle, "articleID")
}

func (h *Handler) AddGameComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGameComment")
	defer span.End()

	h.addComment(w, r.WithContext(ctx), comment.SubjectGame, "gameID")
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request, subjectKind, pathParam string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.addComment")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	subjectID, err := pathID(r, pathParam)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addCommentRequest
	if err := decodeRequestBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.commentService.Add(ctx, principal, usecase.AddCommentInput{
		SubjectKind: subjectKind,
		SubjectID:   subjectID,
		Content:     req.Content,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, commentToDTO(created))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteComment")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	commentID, err := pathID(r, "commentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.commentService.Delete(ctx, principal, commentID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"deleted": true, "commentId": commentID})
}
