package server

import (
	"log"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/chartscope/chartscope/internal/classify"
)

// Server routes HTTP requests to a chart detector.
type Server struct {
	detector *classify.Detector
	router   *mux.Router
	debug    bool

	started  time.Time
	requests atomic.Int64
	failures atomic.Int64
}

// New builds a server around detector. When debug is true, every detect
// request logs the extracted feature vector.
func New(detector *classify.Detector, debug bool) *Server {
	s := &Server{
		detector: detector,
		router:   mux.NewRouter(),
		debug:    debug,
		started:  time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/detect-chart", s.handleDetect).Methods(http.MethodPost)
	s.router.HandleFunc("/", s.handleStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.router.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)
}

// Handler returns the route table wrapped with CORS and access logging.
func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.CombinedLoggingHandler(os.Stderr, cors(s.router))
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	log.Printf("chart detection API listening on %s", addr)
	return srv.ListenAndServe()
}
