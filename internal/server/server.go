// Package server is the TCP accept loop collaborator described in spec §1/§6:
// it owns connection lifecycle and delegates every request to the command
// dispatcher against one shared *keyspace.Keyspace. None of the framing or
// keyspace semantics live here.
package server

import (
	"context"
	"log"
	"net"

	"github.com/google/uuid"

	"github.com/gaby/kvserver/internal/keyspace"
)

// MetricsSink receives connection/command counters for the admin surface.
// A nil sink (the zero value used by New when none is supplied) disables
// observation entirely.
type MetricsSink interface {
	ObserveConnection()
	ObserveCommand()
}

// Limits bounds how much of one request the codec buffers before giving up
// with a framing error, mirroring config.Limits (SPEC_FULL.md §2.1): a zero
// value falls back to the wire package's own defaults.
type Limits struct {
	MaxInlineLine int
	MaxBulkLen    int64
}

// Server accepts connections on a single listener and serves each one on its
// own goroutine against a shared Keyspace.
type Server struct {
	ks      *keyspace.Keyspace
	logger  *log.Logger
	metrics MetricsSink
	limits  Limits
}

// New returns a Server bound to ks. logger may be nil, in which case
// log.Default() is used (matching the teacher's direct use of the "log"
// package throughout cmd/edrmount/main.go). metrics may be nil. limits
// bounds per-connection decode buffering; its zero value uses the wire
// package's own defaults.
func New(ks *keyspace.Keyspace, logger *log.Logger, metrics MetricsSink, limits Limits) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{ks: ks, logger: logger, metrics: metrics, limits: limits}
}

// Serve accepts connections on ln until ctx is cancelled or Accept fails.
// Each connection gets its own goroutine and its own correlation id for log
// lines, the same role uuid.NewString plays generating ids in the teacher's
// internal/api/manual_library.go.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			return err
		}
		id := uuid.NewString()
		tuneConn(conn, s.logger, id)
		if s.metrics != nil {
			s.metrics.ObserveConnection()
		}
		go s.handle(ctx, conn, id)
	}
}

func (s *Server) handle(ctx context.Context, conn net.Conn, connID string) {
	defer conn.Close()
	if err := serveConn(ctx, conn, s.ks, s.metrics, s.limits); err != nil {
		s.logger.Printf("conn %s: closing: %v", connID, err)
	}
}
