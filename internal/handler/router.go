package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	authservice "github.com/rachitsingh/baatein/backend/internal/auth"
	authHandler "github.com/rachitsingh/baatein/backend/internal/handler/auth"
	chatHandler "github.com/rachitsingh/baatein/backend/internal/handler/chat"
	personaHandler "github.com/rachitsingh/baatein/backend/internal/handler/persona"
	middlewarePkg "github.com/rachitsingh/baatein/backend/internal/middleware"
	personaModel "github.com/rachitsingh/baatein/backend/internal/model/persona"
	chatService "github.com/rachitsingh/baatein/backend/internal/service/chat"
	"github.com/rachitsingh/baatein/backend/internal/store"
	"github.com/rachitsingh/baatein/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services. chatSvc may be nil
// when the completion service is not configured.
func NewRouter(
	personas personaModel.Store,
	profiles store.ProfileStore,
	authSvc *authservice.Service,
	tokens *authservice.SessionTokens,
	chatSvc *chatService.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	authH := authHandler.New(authSvc, profiles)
	personaH := personaHandler.New(personas, profiles)
	chatH := chatHandler.New(chatSvc)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		authH.RegisterPublicRoutes(api)

		api.Group(func(protected chi.Router) {
			protected.Use(authservice.RequireSession(tokens))
			authH.RegisterProtectedRoutes(protected)
			personaH.RegisterRoutes(protected)
			chatH.RegisterRoutes(protected)
		})
	})

	return r
}
