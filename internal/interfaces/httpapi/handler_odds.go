package httpapi

import (
	"fmt"
	"net/http"

	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func (h *Handler) ListUpcomingGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingGames")
	defer span.End()

	// Anonymous requests get a zero principal; saved flags stay false.
	principal, _ := principalFromContext(ctx)

	games, err := h.oddsService.ListUpcoming(ctx, principal)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]gameDTO, 0, len(games))
	for _, item := range games {
		out = append(out, gameToDTO(item.Game, item.Saved))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	principal, _ := principalFromContext(ctx)

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.oddsService.GetGame(ctx, principal, gameID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameDetailDTO{
		Game:     gameToDTO(detail.Game, detail.Saved),
		Comments: commentsToDTO(detail.Comments),
	})
}

func (h *Handler) ToggleSavedBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleSavedBet")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.oddsService.ToggleSaved(ctx, principal, gameID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toggleSavedDTO{GameID: gameID, Saved: saved})
}

func (h *Handler) ListSavedBets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSavedBets")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	games, err := h.oddsService.ListSaved(ctx, principal)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]gameDTO, 0, len(games))
	for _, item := range games {
		out = append(out, gameToDTO(item, true))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
