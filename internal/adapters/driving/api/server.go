// Package api exposes the assistant over a JSON HTTP API.
//
// Endpoints:
//
//	GET  /            welcome message
//	POST /api/v1/chat {"message": "..."} -> {"answer", "category", "sources"}
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driving"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// ErrMissingAssistant is returned when no assistant service is provided.
var ErrMissingAssistant = errors.New("api: assistant service is required")

// errorAnswer is returned in the answer field when generation fails. The
// chat surface prefers a spoken apology over a bare 5xx.
const errorAnswer = "Sorry, I encountered an error. Please try again."

// Server serves the assistant over HTTP.
type Server struct {
	assistant driving.AssistantService
}

// chatRequest is the /api/v1/chat request body.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the /api/v1/chat response body.
type chatResponse struct {
	Answer   string   `json:"answer"`
	Category string   `json:"category,omitempty"`
	Sources  []string `json:"sources,omitempty"`
}

// NewServer creates a new API server.
func NewServer(assistant driving.AssistantService) (*Server, error) {
	if assistant == nil {
		return nil, ErrMissingAssistant
	}
	return &Server{assistant: assistant}, nil
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /api/v1/chat", s.handleChat)
	return mux
}

// Run starts the HTTP server on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("API listening on %s", addr)

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// handleRoot serves the welcome message.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome! POST your questions to /api/v1/chat.",
	})
}

// handleChat routes a question through the assistant and returns the answer.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}

	answer, err := s.assistant.Ask(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		logger.Error("Chat request failed: %v", err)
		writeJSON(w, http.StatusOK, chatResponse{Answer: errorAnswer})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Answer:   answer.Text,
		Category: string(answer.Domain),
		Sources:  sourceLabels(answer.Sources),
	})
}

// sourceLabels extracts human-readable, deduplicated source names from the
// grounding chunks.
func sourceLabels(chunks []domain.Chunk) []string {
	seen := make(map[string]struct{}, len(chunks))
	labels := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		label := chunk.Metadata["repo_name"]
		if label == "" {
			label = chunk.Metadata["file_name"]
		}
		if label == "" {
			label = chunk.Source()
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Write response: %v", err)
	}
}
