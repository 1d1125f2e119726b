package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/vportella/feedbackiq/internal/handler"
	"github.com/vportella/feedbackiq/internal/middleware"
	"github.com/vportella/feedbackiq/internal/processor"
	"github.com/vportella/feedbackiq/pkg/notify"
	"github.com/vportella/feedbackiq/pkg/store"
	"github.com/vportella/feedbackiq/pkg/themes"
)

// Server wraps the HTTP server
type Server struct {
	port    string
	handler http.Handler
}

// New creates a new HTTP server with all routes configured.
func New(port string, proc *processor.Processor, registry *themes.Registry, st *store.Store, notifier *notify.SlackNotifier) *Server {
	feedbackHandler := handler.NewFeedbackHandler(proc, st)
	themeHandler := handler.NewThemeHandler(registry, proc, notifier)
	statsHandler := handler.NewStatsHandler(st)
	seedHandler := handler.NewSeedHandler(st)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.HandleHealth)
	mux.HandleFunc("POST /api/feedback", feedbackHandler.Create)
	mux.HandleFunc("GET /api/feedback", feedbackHandler.List)
	mux.HandleFunc("POST /api/themes", themeHandler.Create)
	mux.HandleFunc("GET /api/themes", themeHandler.List)
	mux.HandleFunc("POST /api/themes/analyze", themeHandler.Analyze)
	mux.HandleFunc("GET /api/themes/{id}", themeHandler.Get)
	mux.HandleFunc("GET /api/stats", statsHandler.Get)
	mux.HandleFunc("POST /api/seed", seedHandler.Seed)
	mux.HandleFunc("/", handler.HandleNotFound)

	return &Server{
		port:    port,
		handler: middleware.Recover(middleware.CORS(mux)),
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Printf("HTTP server listening on :%s", s.port)
	if err := http.ListenAndServe(":"+s.port, s.handler); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
