package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine is the part of a screen controller the server drives.
type Engine interface {
	ID() string
	CurrentName() string
	CurrentKind() domain.Kind
	CurrentScreen() (domain.Screen, error)
	Advance(ctx context.Context) (bool, error)
	Used() []string
	Inspect() domain.Graph
}

// Finisher is implemented by transition screens that can be completed from outside.
type Finisher interface {
	Finish()
}

// Chooser is implemented by choice screens that can be completed from outside.
type Chooser interface {
	Choose(choice int)
}

// CurrentResponse describes the controller after a request.
type CurrentResponse struct {
	Controller string      `json:"controller"`
	Screen     string      `json:"screen"`
	Kind       domain.Kind `json:"kind"`
	Used       []string    `json:"used"`
	Moved      bool        `json:"moved"`
}

// Server serves one controller.
type Server struct {
	mu       sync.Mutex
	engine   Engine
	streams  *StreamManager
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer serves metrics from g on GET /metrics instead of the default registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewServer creates a server for the controller.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:   engine,
		streams:  NewStreamManager(),
		gatherer: prometheus.DefaultGatherer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates a new HTTP handler for the controller.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	return NewServer(engine, opts...).Handler()
}

// Handler routes the server's endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/graph", s.GetGraph)
	r.Get("/current", s.GetCurrent)
	r.Post("/advance", s.PostAdvance)
	r.Post("/finish", s.PostFinish)
	r.Get("/events", s.SubscribeEvents)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetGraph handles the GET /graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g := s.engine.Inspect()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, g)
}

// GetCurrent handles the GET /current request.
func (s *Server) GetCurrent(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := s.current(false)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, resp)
}

// PostAdvance handles the POST /advance request. It polls the active screen once.
func (s *Server) PostAdvance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance(w, r)
}

// PostFinish handles the POST /finish request. It completes the active screen,
// using the choice query parameter for choice screens, and advances.
func (s *Server) PostFinish(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	screen, err := s.engine.CurrentScreen()
	if err != nil {
		s.writeError(w, err)
		return
	}

	switch s.engine.CurrentKind() {
	case domain.KindChoice:
		raw := r.URL.Query().Get("choice")
		choice, err := strconv.Atoi(raw)
		if err != nil || choice < 0 {
			http.Error(w, fmt.Sprintf("Invalid choice %q", raw), http.StatusBadRequest)
			return
		}
		chooser, ok := screen.(Chooser)
		if !ok {
			http.Error(w, fmt.Sprintf("Screen %q cannot be finished remotely", s.engine.CurrentName()), http.StatusUnprocessableEntity)
			return
		}
		chooser.Choose(choice)
	default:
		finisher, ok := screen.(Finisher)
		if !ok {
			http.Error(w, fmt.Sprintf("Screen %q cannot be finished remotely", s.engine.CurrentName()), http.StatusUnprocessableEntity)
			return
		}
		finisher.Finish()
	}

	s.advance(w, r)
}

// advance must be called with s.mu held.
func (s *Server) advance(w http.ResponseWriter, r *http.Request) {
	moved, err := s.engine.Advance(r.Context())
	if err != nil {
		s.logger.Warn("Advance failed", "screen", s.engine.CurrentName(), "error", err)
		s.writeError(w, err)
		return
	}

	resp := s.current(moved)
	if moved {
		if payload, err := json.Marshal(resp); err == nil {
			s.streams.Broadcast(string(payload))
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) current(moved bool) CurrentResponse {
	return CurrentResponse{
		Controller: s.engine.ID(),
		Screen:     s.engine.CurrentName(),
		Kind:       s.engine.CurrentKind(),
		Used:       s.engine.Used(),
		Moved:      moved,
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNoSuccessor):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	}
	http.Error(w, err.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}
