package keyspace

import "errors"

// Sentinel errors surfaced by keyspace operations. The command dispatcher
// maps these onto the wire error texts from spec §7; keyspace itself never
// constructs wire.Value.
var (
	// ErrWrongType: the cell holds a variant incompatible with the requested op.
	ErrWrongType = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	// ErrNotInteger: stored/target string is not a valid 64-bit signed decimal.
	ErrNotInteger = errors.New("value is not an integer or out of range")
	// ErrNoSuchKey: LSET against a key that does not exist.
	ErrNoSuchKey = errors.New("no such key")
	// ErrIndexOutOfRange: LSET with a normalized index outside [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")
)
