package server

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/gaby/kvserver/internal/command"
	"github.com/gaby/kvserver/internal/keyspace"
	"github.com/gaby/kvserver/internal/wire"
)

const readChunk = 4096

// serveConn runs the decode -> dispatch -> encode loop for one connection
// until it closes or a framing error occurs (spec §4.1: FrameError is fatal
// and closes the connection without a reply). limits bounds how large an
// inline line or a `$`-length may grow before that happens (SPEC_FULL.md
// §2.1), so a client that never sends a terminator or announces an
// oversized length cannot grow buf without bound.
func serveConn(ctx context.Context, conn net.Conn, ks *keyspace.Keyspace, metrics MetricsSink, limits Limits) error {
	dec := wire.NewDecoder(limits.MaxInlineLine, limits.MaxBulkLen)
	var buf []byte
	var scratch []byte

	tmp := make([]byte, readChunk)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for {
			argv, consumed, err := dec.Decode(buf)
			if err != nil {
				return err // FrameError: caller closes the connection, no reply written
			}
			if consumed == 0 {
				break // Incomplete: need more bytes
			}
			buf = buf[consumed:]

			reply := command.Dispatch(ks, argv)
			if metrics != nil {
				metrics.ObserveCommand()
			}
			scratch, err = wire.WriteValue(conn, scratch, reply)
			if err != nil {
				return err
			}
		}

		n, err := conn.Read(tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
