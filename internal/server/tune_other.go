//go:build !unix

package server

import (
	"log"
	"net"
)

// tuneConn is a no-op on non-unix platforms; TCP_NODELAY tuning via
// golang.org/x/sys/unix is unix-specific.
func tuneConn(conn net.Conn, logger *log.Logger, connID string) {}
