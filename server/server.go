// Package server exposes the deal desk over HTTP. Responses are streamed as
// server-sent events, one JSON payload per event, terminated by a completion
// marker. Field names on the wire are lowerCamelCase for compatibility with
// existing clients.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/hupe1980/dealdesk"
	"github.com/hupe1980/dealdesk/logging"
)

// Options configure the HTTP server.
type Options struct {
	// Bind is the listen address.
	Bind string
	// AccessCode gates every chat/proposal request. Empty disables the
	// gate (dev only).
	AccessCode string
	Logger     logging.Logger
}

// Server routes HTTP requests to the deal desk engine.
type Server struct {
	router     *mux.Router
	desk       *dealdesk.DealDesk
	bind       string
	accessCode string
	logger     logging.Logger
}

// New constructs a Server.
func New(desk *dealdesk.DealDesk, optFns ...func(o *Options)) *Server {
	opts := Options{
		Bind:   "0.0.0.0:8080",
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	s := &Server{
		router:     mux.NewRouter(),
		desk:       desk,
		bind:       opts.Bind,
		accessCode: opts.AccessCode,
		logger:     opts.Logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/api/dealdesk/chat", s.handleChat).Methods("POST")
	s.router.HandleFunc("/api/dealdesk/proposal", s.handleProposal).Methods("POST")
	s.router.HandleFunc("/api/dealdesk/health", s.handleHealth).Methods("GET")
}

// Handler returns the fully wrapped HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.router)
}

// Start runs the server until the listener fails.
func (s *Server) Start() error {
	s.logger.Info("deal desk listening", "bind", s.bind)
	return http.ListenAndServe(s.bind, s.Handler())
}
