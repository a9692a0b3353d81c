package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rachitsingh/baatein/backend/internal/auth"
	"github.com/rachitsingh/baatein/backend/internal/model/chat"
	"github.com/rachitsingh/baatein/backend/internal/service/ai"
	chatservice "github.com/rachitsingh/baatein/backend/internal/service/chat"
	"github.com/rachitsingh/baatein/backend/pkg/utils"
)

// Handler serves the chat exchange and the server-side transcript.
type Handler struct {
	chatSvc *chatservice.Service
}

// New creates the chat handler. chatSvc may be nil when the completion
// service is not configured; chat routes then answer 503.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes registers chat routes behind the session middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/history", h.handleHistory)
}

// handleChat runs one exchange: client-held history plus the new
// message in, reply text out. Upstream failures surface as typed kinds
// instead of an empty reply.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	if h.chatSvc == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "chat unavailable")
		return
	}

	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var payload struct {
		Message     string         `json:"message"`
		BotID       int            `json:"botId"`
		ChatHistory []chat.Message `json:"chatHistory"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.chatSvc.Exchange(r.Context(), email, payload.BotID, payload.Message, payload.ChatHistory)
	if err != nil {
		h.respondExchangeError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// handleHistory returns the server-held transcript for one persona.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if h.chatSvc == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "chat unavailable")
		return
	}

	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	botID, err := strconv.Atoi(r.URL.Query().Get("botId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "botId query parameter is required")
		return
	}

	messages, err := h.chatSvc.Transcript(r.Context(), email, botID)
	if err != nil {
		if errors.Is(err, chatservice.ErrPersonaNotFound) {
			utils.RespondError(w, http.StatusNotFound, "persona not found")
			return
		}
		log.Printf("[chat] transcript load failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if messages == nil {
		messages = []chat.Message{}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"messages": messages,
	})
}

func (h *Handler) respondExchangeError(w http.ResponseWriter, err error) {
	var apiErr *ai.APIError

	switch {
	case errors.Is(err, chatservice.ErrMessageRequired):
		utils.RespondError(w, http.StatusBadRequest, "message is required")
	case errors.Is(err, chatservice.ErrPersonaNotFound):
		utils.RespondError(w, http.StatusNotFound, "persona not found")
	case errors.Is(err, ai.ErrNoContent):
		respondUpstreamError(w, http.StatusBadGateway, "no_content", "model returned no content")
	case errors.Is(err, ai.ErrUnavailable):
		log.Printf("[chat] completion unavailable: %v", err)
		respondUpstreamError(w, http.StatusBadGateway, "unavailable", "completion service unavailable")
	case errors.As(err, &apiErr):
		log.Printf("[chat] completion rejected request: %v", apiErr)
		respondUpstreamError(w, http.StatusBadRequest, "invalid_request", "completion service rejected the request")
	default:
		log.Printf("[chat] exchange failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "chat failed")
	}
}

// respondUpstreamError carries a machine-readable kind so clients can
// branch on the failure type instead of inferring it from emptiness.
func respondUpstreamError(w http.ResponseWriter, status int, kind, message string) {
	utils.RespondJSON(w, status, map[string]string{
		"error": message,
		"kind":  kind,
	})
}
