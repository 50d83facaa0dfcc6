// Package http provides the webhook server.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	applog "shekelbot/internal/log"
	"shekelbot/internal/twiml"
)

// MessageHandler processes one inbound message and returns the reply text.
type MessageHandler interface {
	Handle(ctx context.Context, text string) string
}

type Server struct {
	http.Server
	bot    MessageHandler
	logger *applog.Logger
}

// NewServer configures routes and returns a ready-to-run http.Server.
func NewServer(addr string, bot MessageHandler, logger *applog.Logger) *Server {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentHTTP)
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		bot:    bot,
		logger: logger,
	}

	mux.HandleFunc("/whatsapp", s.withRequestLogging(s.handleWebhook))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	return s
}

// handleWebhook runs one message through the dispatcher. User-input
// errors come back as reply text inside a 200 response; only transport
// problems produce a non-200 status.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", "error", err)
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	body := strings.TrimSpace(r.Form.Get("Body"))
	reply := s.bot.Handle(r.Context(), body)

	out, err := twiml.Reply(reply)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "TwiML render error", "error", err)
		http.Error(w, "reply rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// withRequestLogging adds request IDs and completion logging.
func (s *Server) withRequestLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()
		ctx := r.Context()

		s.logger.InfoContext(ctx, "Request started",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.logger.InfoContext(ctx, "Request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rw.statusCode,
			applog.FieldDuration, time.Since(start).Milliseconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp if random fails
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
