// Package server provides the HTTP API for listing, joining, and leaving
// activities.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mergington-hs/activities/events"
	"github.com/mergington-hs/activities/metrics"
	"github.com/mergington-hs/activities/registry"
)

// Server exposes the activity registry over HTTP
type Server struct {
	store      registry.Store
	events     events.Publisher
	feed       events.Subscriber
	log        *zap.Logger
	httpServer *http.Server
	port       int
}

// Config holds server configuration
type Config struct {
	// Store is the activity registry. Required.
	Store registry.Store
	// Events receives a roster event after each successful mutation. Optional.
	Events events.Publisher
	// Feed backs the per-activity SSE endpoint. Optional.
	Feed events.Subscriber
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// Port defaults to 8080.
	Port int
	// StaticDir is served under /static when set.
	StaticDir string
}

// New creates a new registry API server
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	server := &Server{
		store:  cfg.Store,
		events: cfg.Events,
		feed:   cfg.Feed,
		log:    cfg.Logger,
		port:   cfg.Port,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", server.handleRoot)
	mux.HandleFunc("/activities", server.handleActivities)
	mux.HandleFunc("/activities/", server.handleActivityAction)
	mux.HandleFunc("/health", server.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	if cfg.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	server.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// WriteTimeout stays unset so SSE streams can outlive a deadline
	}

	return server, nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info("starting activities API server", zap.Int("port", s.port))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("stopping activities API server")
	return s.httpServer.Shutdown(ctx)
}

// MessageResponse confirms a successful roster mutation
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human-readable failure detail
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// handleRoot handles GET / (redirect to the static landing page)
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.sendError(w, http.StatusNotFound, "Not Found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// handleActivities handles GET /activities (full catalog)
func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	defer s.observe("list", time.Now())

	if r.Method != http.MethodGet {
		s.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	activities, err := s.store.List(r.Context())
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list activities: %v", err))
		return
	}

	s.sendJSON(w, http.StatusOK, activities)
}

// handleActivityAction handles POST /activities/{name}/signup,
// DELETE /activities/{name}/unregister, GET /activities/{name}/events
func (s *Server) handleActivityAction(w http.ResponseWriter, r *http.Request) {
	// The mux already percent-decoded the path, so "Chess%20Club"
	// arrives as "Chess Club"
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) != 3 {
		s.sendError(w, http.StatusNotFound, "Not Found")
		return
	}

	name := pathParts[1]
	action := pathParts[2]

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			s.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleSignup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			s.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleUnregister(w, r, name)
	case "events":
		if r.Method != http.MethodGet {
			s.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleRosterEvents(w, r, name)
	default:
		s.sendError(w, http.StatusNotFound, "Not Found")
	}
}

// handleSignup handles POST /activities/{name}/signup
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request, name string) {
	defer s.observe("signup", time.Now())

	email, ok := s.requireEmail(w, r)
	if !ok {
		return
	}

	if err := s.store.Signup(r.Context(), name, email); err != nil {
		s.countRejection(err)
		s.sendStoreError(w, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues(name).Inc()
	s.publish(r.Context(), events.New(events.TypeSignup, name, email))

	s.sendJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// handleUnregister handles DELETE /activities/{name}/unregister
func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request, name string) {
	defer s.observe("unregister", time.Now())

	email, ok := s.requireEmail(w, r)
	if !ok {
		return
	}

	if err := s.store.Unregister(r.Context(), name, email); err != nil {
		s.countRejection(err)
		s.sendStoreError(w, err)
		return
	}

	metrics.UnregistersTotal.WithLabelValues(name).Inc()
	s.publish(r.Context(), events.New(events.TypeUnregister, name, email))

	s.sendJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireEmail extracts the email query parameter, rejecting blank values.
// No format validation beyond presence is performed.
func (s *Server) requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := r.URL.Query().Get("email")
	if email == "" {
		s.sendError(w, http.StatusBadRequest, "email query parameter is required")
		return "", false
	}
	return email, true
}

// publish emits a roster event; delivery failures are logged, never surfaced.
func (s *Server) publish(ctx context.Context, e *events.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.Warn("failed to publish roster event",
			zap.String("activity", e.Activity),
			zap.Error(err),
		)
	}
}

// sendStoreError maps registry sentinels to HTTP statuses and wire messages
func (s *Server) sendStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		s.sendError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, registry.ErrAlreadySignedUp):
		s.sendError(w, http.StatusBadRequest, "Student already signed up for this activity")
	case errors.Is(err, registry.ErrActivityFull):
		s.sendError(w, http.StatusBadRequest, "Activity is full")
	case errors.Is(err, registry.ErrParticipantNotFound):
		s.sendError(w, http.StatusNotFound, "Student is not signed up for this activity")
	default:
		s.sendError(w, http.StatusInternalServerError, fmt.Sprintf("registry error: %v", err))
	}
}

func (s *Server) countRejection(err error) {
	var reason string
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		reason = "activity_not_found"
	case errors.Is(err, registry.ErrAlreadySignedUp):
		reason = "duplicate"
	case errors.Is(err, registry.ErrActivityFull):
		reason = "full"
	case errors.Is(err, registry.ErrParticipantNotFound):
		reason = "participant_not_found"
	default:
		reason = "internal"
	}
	metrics.RejectionsTotal.WithLabelValues(reason).Inc()
}

func (s *Server) observe(handler string, start time.Time) {
	metrics.RequestDuration.WithLabelValues(handler).Observe(time.Since(start).Seconds())
}

// sendJSON sends a JSON response
func (s *Server) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError sends an error response
func (s *Server) sendError(w http.ResponseWriter, status int, detail string) {
	s.sendJSON(w, status, ErrorResponse{Detail: detail})
}
