//go:build unix

package server

import (
	"log"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// tuneConn sets TCP_NODELAY on freshly accepted connections so small
// request/reply frames are not delayed by Nagle's algorithm. Uses
// golang.org/x/sys/unix for the raw setsockopt call, the same module the
// teacher reaches for low-level POSIX syscalls in internal/fusefs/fusefs.go.
func tuneConn(conn net.Conn, logger *log.Logger, connID string) {
	tc, ok := conn.(*net.TCPConn)
	if !ok {
		return
	}
	raw, err := tc.SyscallConn()
	if err != nil {
		return
	}
	var sockErr error
	ctrlErr := raw.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), syscall.IPPROTO_TCP, unix.TCP_NODELAY, 1)
	})
	if ctrlErr != nil || sockErr != nil {
		logger.Printf("conn %s: TCP_NODELAY: ctrl=%v sockopt=%v", connID, ctrlErr, sockErr)
	}
}
