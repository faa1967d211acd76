package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hupe1980/dealdesk/orchestrator"
)

type chatRequest struct {
	Message    string `json:"message"`
	SessionID  string `json:"sessionId"`
	AccessCode string `json:"accessCode"`
}

type completePayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	s.stream(w, r, s.desk.Chat)
}

func (s *Server) handleProposal(w http.ResponseWriter, r *http.Request) {
	s.stream(w, r, s.desk.Proposal)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// stream validates the request, then drains the orchestrator's event channel
// into the response as server-sent events. Validation happens before any
// orchestration begins.
func (s *Server) stream(
	w http.ResponseWriter,
	r *http.Request,
	run func(ctx context.Context, sessionID, message string) (<-chan orchestrator.Event, error),
) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}
	if !s.authorized(req.AccessCode) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid access code"})
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "default"
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
		return
	}

	events, err := run(r.Context(), sessionID, req.Message)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for ev := range events {
		payload, err := marshalEvent(ev)
		if err != nil {
			s.logger.Error("failed to marshal event", "error", err)
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

func (s *Server) authorized(accessCode string) bool {
	if s.accessCode == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(accessCode), []byte(s.accessCode)) == 1
}

func marshalEvent(ev orchestrator.Event) ([]byte, error) {
	if ev.Type == orchestrator.EventComplete {
		return json.Marshal(completePayload{Type: "complete", Message: ev.Message})
	}
	return json.Marshal(ev.Response)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
