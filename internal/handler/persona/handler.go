package persona

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rachitsingh/baatein/backend/internal/auth"
	"github.com/rachitsingh/baatein/backend/internal/model/persona"
	"github.com/rachitsingh/baatein/backend/internal/store"
	"github.com/rachitsingh/baatein/backend/pkg/utils"
)

// Handler serves the persona roster.
type Handler struct {
	personas persona.Store
	profiles store.ProfileStore
}

// New creates the persona handler.
func New(personas persona.Store, profiles store.ProfileStore) *Handler {
	return &Handler{personas: personas, profiles: profiles}
}

// RegisterRoutes registers persona routes behind the session middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/personas", h.handleList)
}

// handleList returns the roster filtered by the user's stored gender.
// Behavioral templates never leave the server.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, found, err := h.profiles.GetProfile(r.Context(), email)
	if err != nil {
		log.Printf("[persona] profile lookup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch personas")
		return
	}
	if !found {
		utils.RespondJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "user not found",
		})
		return
	}

	visible := h.personas.ListForGender(p.Gender)
	cards := make([]persona.Card, 0, len(visible))
	for _, item := range visible {
		cards = append(cards, item.Card())
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"personas": cards,
	})
}
