package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	authservice "github.com/rachitsingh/baatein/backend/internal/auth"
	"github.com/rachitsingh/baatein/backend/internal/model/profile"
	"github.com/rachitsingh/baatein/backend/internal/store"
	"github.com/rachitsingh/baatein/backend/pkg/utils"
)

const dobLayout = "2006-01-02"

// Handler serves sign-in and onboarding.
type Handler struct {
	authSvc  *authservice.Service
	profiles store.ProfileStore
}

// New creates the auth handler.
func New(authSvc *authservice.Service, profiles store.ProfileStore) *Handler {
	return &Handler{authSvc: authSvc, profiles: profiles}
}

// RegisterPublicRoutes registers routes reachable without a session.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/auth/session", h.handleSignIn)
}

// RegisterProtectedRoutes registers routes behind the session middleware.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/auth", h.handleOnboard)
}

type signInResponse struct {
	Success bool `json:"success"`
	authservice.SessionResult
}

// handleSignIn exchanges a third-party identity token for an API
// session. isNewUser tells the client whether to route to onboarding.
func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDToken string `json:"idToken"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.IDToken) == "" {
		utils.RespondError(w, http.StatusBadRequest, "idToken is required")
		return
	}

	result, err := h.authSvc.SignIn(r.Context(), payload.IDToken)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidIdentity) {
			utils.RespondError(w, http.StatusUnauthorized, "invalid identity token")
			return
		}
		log.Printf("[auth] sign-in failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "sign-in failed")
		return
	}

	utils.RespondJSON(w, http.StatusOK, signInResponse{Success: true, SessionResult: result})
}

// handleOnboard creates the one-and-only profile record for the
// session's email. A second submission is a decided 409, not retried.
func (h *Handler) handleOnboard(w http.ResponseWriter, r *http.Request) {
	email, ok := authservice.EmailFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Gender   string `json:"gender"`
		DOB      string `json:"dob"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Email != "" && !strings.EqualFold(strings.TrimSpace(payload.Email), email) {
		utils.RespondError(w, http.StatusBadRequest, "email does not match session identity")
		return
	}
	if strings.TrimSpace(payload.Username) == "" {
		utils.RespondError(w, http.StatusBadRequest, "username is required")
		return
	}

	gender, ok := profile.Parse(payload.Gender)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "gender must be male or female")
		return
	}

	dob, err := time.Parse(dobLayout, strings.TrimSpace(payload.DOB))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "dob must be YYYY-MM-DD")
		return
	}

	record := profile.Profile{
		Email:     email,
		Username:  strings.TrimSpace(payload.Username),
		Gender:    gender,
		DOB:       dob,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.profiles.CreateProfile(r.Context(), record); err != nil {
		if errors.Is(err, store.ErrProfileExists) {
			utils.RespondJSON(w, http.StatusConflict, map[string]any{
				"success": false,
				"error":   "profile already exists",
			})
			return
		}
		log.Printf("[auth] profile create failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to create profile")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"user":    record,
	})
}
