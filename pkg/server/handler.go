package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/xid"

	"github.com/kaelux/assistant/pkg/assistant"
	"github.com/kaelux/assistant/pkg/model"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response      string   `json:"response"`
	UsedTools     []string `json:"usedTools,omitempty"`
	UsedWebSearch bool     `json:"usedWebSearch,omitempty"`
	UsedGitMCP    bool     `json:"usedGitMCP,omitempty"`
	UsedFirecrawl bool     `json:"usedFirecrawl,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	log := s.log.With().Str("request_id", xid.New().String()).Logger()

	if !s.authorizer.Authorized(r) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Message is required"})
		return
	}

	reply, err := s.responder.Respond(r.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Message is required"})
		case errors.Is(err, model.ErrNotConfigured):
			log.Error().Err(err).Msg("Model provider not configured")
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error: "GOOGLE_AI_API_KEY is required",
			})
		default:
			log.Error().Err(err).Msg("Failed to generate response")
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "Failed to generate response",
				Details: err.Error(),
			})
		}
		return
	}

	log.Info().Strs("used_tools", reply.UsedTools).Int("response_chars", len(reply.Text)).Msg("Chat request served")
	writeJSON(w, http.StatusOK, chatResponse{
		Response:      reply.Text,
		UsedTools:     reply.UsedTools,
		UsedWebSearch: reply.UsedWebSearch,
		UsedGitMCP:    reply.UsedGitMCP,
		UsedFirecrawl: reply.UsedFirecrawl,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
