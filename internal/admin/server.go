// Package admin is the HTTP health/metrics/config surface described in
// SPEC_FULL.md §4: a collaborator like the TCP accept loop, never touching
// the keyspace's own locking discipline — only its already-synchronized
// Stats() snapshot accessor.
package admin

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gaby/kvserver/internal/config"
	"github.com/gaby/kvserver/internal/keyspace"
)

// Server exposes /healthz, /metrics, and /config over HTTP, in the
// teacher's internal/api.Server shape: a *http.ServeMux plus a
// mutex-guarded reloadable config (the teacher's own cfgMu/cfg pair,
// read by every handler through Config() and swapped in whole by
// setConfig once a PUT /config body validates).
type Server struct {
	mu      sync.RWMutex
	cfg     config.Config
	cfgPath string

	mux       *http.ServeMux
	ks        *keyspace.Keyspace
	startedAt time.Time

	connsAccepted atomic.Int64
	commandsTotal atomic.Int64
}

// New builds an admin Server bound to ks, reporting cfg until a PUT
// /config request installs a reloaded one. cfgPath is where PUT /config
// persists the accepted document, via config.Save; an empty cfgPath makes
// PUT /config apply in-memory only.
func New(ks *keyspace.Keyspace, cfg config.Config, cfgPath string) *Server {
	s := &Server{mux: http.NewServeMux(), ks: ks, cfg: cfg, cfgPath: cfgPath, startedAt: time.Now()}
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.HandleFunc("/metrics", s.handleMetrics)
	s.mux.HandleFunc("/config", s.handleConfig)
	return s
}

// Config returns the currently installed configuration snapshot.
func (s *Server) Config() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Server) setConfig(next config.Config) {
	s.mu.Lock()
	s.cfg = next
	s.mu.Unlock()
}

// ObserveConnection records one accepted connection for /metrics.
func (s *Server) ObserveConnection() { s.connsAccepted.Add(1) }

// ObserveCommand records one dispatched command for /metrics.
func (s *Server) ObserveCommand() { s.commandsTotal.Add(1) }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	stats := s.ks.Stats()
	cfg := s.Config()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":          "ok",
		"uptime":          humanize.RelTime(s.startedAt, time.Now(), "ago", "from now"),
		"keys":            stats.Keys,
		"listen_addr":     cfg.Server.ListenAddr,
		"log_level":       cfg.Log.Level,
		"max_inline_line": cfg.Limits.MaxInlineLine,
		"max_bulk_len":    cfg.Limits.MaxBulkLen,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	stats := s.ks.Stats()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "connections_accepted %d\n", s.connsAccepted.Load())
	fmt.Fprintf(w, "commands_total %d\n", s.commandsTotal.Load())
	fmt.Fprintf(w, "keys %d\n", stats.Keys)
	fmt.Fprintf(w, "uptime_seconds %d\n", int64(time.Since(s.startedAt).Seconds()))
}

// handleConfig serves GET/PUT /config, in the same shape as the teacher's
// /api/v1/config: GET returns the live snapshot, PUT validates the body,
// persists it (config.Save; a no-op if cfgPath is empty), and installs it
// under mu so every subsequent /healthz read observes the change.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(s.Config())
	case http.MethodPut:
		b, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		var next config.Config
		if err := json.Unmarshal(b, &next); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		if err := next.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		if err := config.Save(s.cfgPath, next); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		s.setConfig(next)
		_ = json.NewEncoder(w).Encode(s.Config())
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
