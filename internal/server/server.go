// Package server exposes cubit execution over HTTP/JSON.
//
// Every POST /execute runs in a fresh interpreter, so requests never share
// variables. Runs are bounded by a timeout and an output limit.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/tliron/commonlog"

	"github.com/tangzhangming/cubit/internal/history"
	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/metrics"
)

var log = commonlog.GetLogger("cubit.server")

const (
	defaultTimeout   = 5 * time.Second
	defaultMaxOutput = 1 << 20
	maxBodyBytes     = 1 << 20
)

// Server is the HTTP execution API.
type Server struct {
	mux       *http.ServeMux
	metrics   *metrics.Tracker
	history   *history.Store
	timeout   time.Duration
	maxOutput int
	version   string

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithTimeout bounds the run time of one execution.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithMaxOutput bounds the bytes one execution may print.
func WithMaxOutput(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxOutput = n
		}
	}
}

// WithHistory records every execution in store and enables GET /history.
func WithHistory(store *history.Store) Option {
	return func(s *Server) { s.history = store }
}

// WithMetrics uses tr instead of a private tracker.
func WithMetrics(tr *metrics.Tracker) Option {
	return func(s *Server) { s.metrics = tr }
}

// WithVersion sets the version reported by GET /.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		timeout:   defaultTimeout,
		maxOutput: defaultMaxOutput,
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewTracker()
	}

	s.mux.Handle("/{$}", s.route("root", http.MethodGet, s.handleRoot))
	s.mux.Handle("/health", s.route("health", http.MethodGet, s.handleHealth))
	s.mux.Handle("/execute", s.route("execute", http.MethodPost, s.handleExecute))
	s.mux.Handle("/metrics", s.route("metrics", http.MethodGet, s.handleMetrics))
	s.mux.Handle("/history", s.route("history", http.MethodGet, s.handleHistory))

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the API with CORS applied.
func (s *Server) Handler() http.Handler {
	return cors(s.mux)
}

// Metrics returns the request tracker.
func (s *Server) Metrics() *metrics.Tracker {
	return s.metrics
}

// ListenAndServe serves on addr until Shutdown is called.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	log.Info(i18n.T(i18n.MsgServerListening, ln.Addr()))
	err = s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		log.Info(i18n.T(i18n.MsgServerStopped))
		return nil
	}
	return err
}

// Shutdown stops the server. A later ListenAndServe returns immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// handlerFunc handles one request and reports whether it succeeded.
type handlerFunc func(w http.ResponseWriter, r *http.Request) bool

// route checks the method and records the request under module.
func (s *Server) route(module, method string, h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ok := false
		if r.Method != method {
			w.Header().Set("Allow", method)
			writeError(w, http.StatusMethodNotAllowed, i18n.T(i18n.ErrMethodNotAllowed))
		} else {
			ok = h(w, r)
		}

		elapsed := time.Since(start)
		s.metrics.Record(module, elapsed, ok)
		log.Debugf("%s %s (%s) ok=%t", r.Method, r.URL.Path, elapsed, ok)
	})
}

// cors allows every origin.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
