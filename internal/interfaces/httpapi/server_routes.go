package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("GET /v1/news", handler.GetNewsFeed)
	mux.HandleFunc("GET /v1/news/{articleID}", handler.GetArticle)
	mux.HandleFunc("GET /v1/schedule", handler.GetSchedule)

	// Odds reads personalize the saved flag when a bearer token is present.
	mux.Handle("GET /v1/odds/games", OptionalAuth(verifier, http.HandlerFunc(handler.ListUpcomingGames)))
	mux.Handle("GET /v1/odds/games/{gameID}", OptionalAuth(verifier, http.HandlerFunc(handler.GetGame)))
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/news", RequireAuth(verifier, http.HandlerFunc(handler.CreateArticle)))
	mux.Handle("DELETE /v1/news/{articleID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteArticle)))

	mux.Handle("POST /v1/news/{articleID}/comments", RequireAuth(verifier, http.HandlerFunc(handler.AddArticleComment)))
	mux.Handle("POST /v1/odds/games/{gameID}/comments", RequireAuth(verifier, http.HandlerFunc(handler.AddGameComment)))
	mux.Handle("DELETE /v1/comments/{commentID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteComment)))

	mux.Handle("POST /v1/odds/games/{gameID}/save", RequireAuth(verifier, http.HandlerFunc(handler.ToggleSavedBet)))
	mux.Handle("GET /v1/odds/saved", RequireAuth(verifier, http.HandlerFunc(handler.ListSavedBets)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/refresh-odds", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshOddsJob)))
	mux.Handle("POST /v1/internal/jobs/sync-schedule", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncScheduleJob)))
	mux.Handle("POST /v1/internal/jobs/bootstrap", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunBootstrapJob)))
}
