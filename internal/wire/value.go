// Package wire implements the framing codec: decoding client requests off a
// byte stream and encoding typed reply values back onto one.
package wire

import "strconv"

// Kind tags the variant of a Value.
type Kind int

const (
	SimpleString Kind = iota
	Error
	Integer
	BulkString
	Nil
	Array
)

// Value is the tagged union over reply variants described in spec §4.1.
// Only the fields relevant to Kind are populated.
type Value struct {
	Kind  Kind
	Str   string  // SimpleString, Error
	Int   int64   // Integer
	Bulk  []byte  // BulkString (nil Bulk with Kind==BulkString is treated as empty, not absent)
	Items []Value // Array
}

// OK is the canonical SimpleString("OK") reply.
func OK() Value { return Value{Kind: SimpleString, Str: "OK"} }

// NilValue is the canonical Nil reply.
func NilValue() Value { return Value{Kind: Nil} }

// NewBulk wraps a byte string as a BulkString reply.
func NewBulk(b []byte) Value { return Value{Kind: BulkString, Bulk: b} }

// NewInt wraps an integer as an Integer reply.
func NewInt(i int64) Value { return Value{Kind: Integer, Int: i} }

// NewError wraps text as an Error reply. Callers must not pass text
// containing CR or LF; the codec does not check this at the wire per spec §4.1.
func NewError(msg string) Value { return Value{Kind: Error, Str: msg} }

// NewArray wraps a slice of replies as an Array reply.
func NewArray(items []Value) Value { return Value{Kind: Array, Items: items} }

func (v Value) String() string {
	switch v.Kind {
	case SimpleString:
		return "+" + v.Str
	case Error:
		return "-" + v.Str
	case Integer:
		return ":" + strconv.FormatInt(v.Int, 10)
	case BulkString:
		return "$" + string(v.Bulk)
	case Nil:
		return "$-1"
	case Array:
		return "*array"
	default:
		return "?"
	}
}
