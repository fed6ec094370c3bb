package wire

import (
	"io"
	"strconv"
)

// AppendValue appends the wire encoding of v to dst and returns the grown
// slice, streaming directly rather than precomputing a total length (spec
// §4.1 permits either; append's own growth strategy already amortizes this).
func AppendValue(dst []byte, v Value) []byte {
	switch v.Kind {
	case SimpleString:
		dst = append(dst, '+')
		dst = append(dst, v.Str...)
		return appendCRLF(dst)
	case Error:
		dst = append(dst, '-')
		dst = append(dst, v.Str...)
		return appendCRLF(dst)
	case Integer:
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, v.Int, 10)
		return appendCRLF(dst)
	case BulkString:
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(v.Bulk)), 10)
		dst = appendCRLF(dst)
		dst = append(dst, v.Bulk...)
		return appendCRLF(dst)
	case Nil:
		return append(dst, '$', '-', '1', '\r', '\n')
	case Array:
		dst = append(dst, '*')
		dst = strconv.AppendInt(dst, int64(len(v.Items)), 10)
		dst = appendCRLF(dst)
		for _, item := range v.Items {
			dst = AppendValue(dst, item)
		}
		return dst
	default:
		return dst
	}
}

func appendCRLF(dst []byte) []byte {
	return append(dst, '\r', '\n')
}

// WriteValue encodes v and writes it to w using a scratch buffer owned by
// the caller (reused across replies so one connection does not allocate a
// fresh buffer per write, per spec §5's "Reply buffers are per-connection").
func WriteValue(w io.Writer, scratch []byte, v Value) ([]byte, error) {
	scratch = AppendValue(scratch[:0], v)
	_, err := w.Write(scratch)
	return scratch, err
}
