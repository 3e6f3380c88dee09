package httpapi

import (
	"fmt"
	"net/http"

	"github.com/walkerpaxton/GTSportsLine/internal/usecase"
)

func (h *Handler) RunRefreshOddsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshOddsJob")
	defer span.End()

	if h.jobsService == nil {
		writeError(ctx, w, fmt.Errorf("%w: jobs service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	summary, err := h.jobsService.RefreshOdds(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh odds job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) RunSyncScheduleJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncScheduleJob")
	defer span.End()

	if h.jobsService == nil {
		writeError(ctx, w, fmt.Errorf("%w: jobs service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req syncScheduleRequest
	if err := decodeOptionalRequestBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.jobsService.SyncSchedule(ctx, req.Year)
	if err != nil {
		h.logger.WarnContext(ctx, "sync schedule job failed", "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) RunBootstrapJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunBootstrapJob")
	defer span.End()

	if h.jobsService == nil {
		writeError(ctx, w, fmt.Errorf("%w: jobs service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.jobsService.Bootstrap(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "bootstrap job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
