package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rngbias/app"
	"rngbias/internal"
)

// Server exposes the evaluation service over HTTP: one sequence per request,
// no batching.
type Server struct {
	router  *chi.Mux
	svc     *app.Service
	wantLen int
	log     *internal.Logger
}

// NewServer wires the routes for an evaluation service expecting sequences
// of wantLen symbols.
func NewServer(svc *app.Service, wantLen int, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	s := &Server{
		router:  chi.NewRouter(),
		svc:     svc,
		wantLen: wantLen,
		log:     logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Post("/evaluate", s.handleEvaluate)
	s.router.Get("/healthz", s.handleHealth)

	return s
}

// Handler returns the routing handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("serving evaluation API on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
