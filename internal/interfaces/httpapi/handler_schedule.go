package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	year := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1900 {
			writeError(ctx, w, fmt.Errorf("%w: year must be a four-digit season", usecase.ErrInvalidInput))
			return
		}
		year = parsed
	}

	feed, err := h.scheduleService.GetSeason(ctx, year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonFeedToDTO(feed))
}
