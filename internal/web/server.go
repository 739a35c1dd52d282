package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-heartform/pkg/orchestrator"
	"github.com/goliatone/go-heartform/pkg/predict"
)

// ErrNilOrchestrator is returned when the server has no form pipeline.
var ErrNilOrchestrator = errors.New("web: orchestrator is nil")

// ThemeStylesheetPath serves the CSS variables derived from the theme tokens.
const ThemeStylesheetPath = "/assets/theme.css"

// Option customises the server.
type Option func(*Server)

// WithLogger sets the logger for request failures and lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAddr sets the listen address used by Start.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// Server is the HTML front end.
type Server struct {
	orch       *orchestrator.Orchestrator
	predictor  predict.Predictor
	logger     *slog.Logger
	addr       string
	router     chi.Router
	httpServer *http.Server
}

// NewServer wires the routes. predictor is shared by every request; each
// submit gets its own controller.
func NewServer(orch *orchestrator.Orchestrator, predictor predict.Predictor, opts ...Option) (*Server, error) {
	if orch == nil {
		return nil, ErrNilOrchestrator
	}

	s := &Server{
		orch:      orch,
		predictor: predictor,
		logger:    slog.Default(),
		addr:      "127.0.0.1:8080",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Get("/", s.handleForm)
	r.Post("/", s.handleSubmit)
	r.Get("/healthz", s.handleHealth)
	r.Get(ThemeStylesheetPath, s.handleThemeStylesheet)

	s.router = r
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: r,
	}
	return s, nil
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening. It blocks until the server is stopped and returns
// nil after a graceful Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.logger.Info("heartform listening", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("heartform shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
