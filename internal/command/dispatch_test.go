package command

import (
	"testing"

	"github.com/gaby/kvserver/internal/keyspace"
	"github.com/gaby/kvserver/internal/wire"
)

func args(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestDispatchSetGetRoundTrip(t *testing.T) {
	ks := keyspace.New()

	reply := Dispatch(ks, args("SET", "mykey", "hello"))
	if reply.Kind != wire.SimpleString || reply.Str != "OK" {
		t.Fatalf("SET reply = %+v, want +OK", reply)
	}

	reply = Dispatch(ks, args("GET", "mykey"))
	if reply.Kind != wire.BulkString || string(reply.Bulk) != "hello" {
		t.Fatalf("GET reply = %+v, want $hello", reply)
	}
}

func TestDispatchIncrOnNonIntegerString(t *testing.T) {
	ks := keyspace.New()
	Dispatch(ks, args("SET", "k", "not-a-number"))

	reply := Dispatch(ks, args("INCR", "k"))
	if reply.Kind != wire.Error {
		t.Fatalf("INCR on non-integer string = %+v, want Error", reply)
	}
}

func TestDispatchRPushLRangeNegativeIndices(t *testing.T) {
	ks := keyspace.New()
	for _, v := range []string{"a", "b", "c", "d"} {
		reply := Dispatch(ks, args("RPUSH", "L", v))
		if reply.Kind != wire.Integer {
			t.Fatalf("RPUSH reply = %+v, want Integer", reply)
		}
	}

	reply := Dispatch(ks, args("LRANGE", "L", "-3", "-1"))
	if reply.Kind != wire.Array {
		t.Fatalf("LRANGE reply = %+v, want Array", reply)
	}
	want := []string{"b", "c", "d"}
	if len(reply.Items) != len(want) {
		t.Fatalf("LRANGE items = %+v, want %d elements", reply.Items, len(want))
	}
	for i, w := range want {
		if string(reply.Items[i].Bulk) != w {
			t.Errorf("LRANGE item[%d] = %q, want %q", i, reply.Items[i].Bulk, w)
		}
	}
}

func TestDispatchLSetOutOfRangeAndNoSuchKey(t *testing.T) {
	ks := keyspace.New()
	Dispatch(ks, args("RPUSH", "L", "a"))
	Dispatch(ks, args("RPUSH", "L", "b"))

	reply := Dispatch(ks, args("LSET", "L", "0", "z"))
	if reply.Kind != wire.SimpleString || reply.Str != "OK" {
		t.Fatalf("LSET in range = %+v, want +OK", reply)
	}

	reply = Dispatch(ks, args("LSET", "L", "99", "z"))
	if reply.Kind != wire.Error {
		t.Fatalf("LSET out of range = %+v, want Error", reply)
	}

	reply = Dispatch(ks, args("LSET", "noexist", "0", "z"))
	if reply.Kind != wire.Error {
		t.Fatalf("LSET on missing key = %+v, want Error", reply)
	}
}

func TestDispatchWrongTypeThenRecover(t *testing.T) {
	ks := keyspace.New()
	Dispatch(ks, args("SET", "k", "v"))

	reply := Dispatch(ks, args("RPUSH", "k", "x"))
	if reply.Kind != wire.Error {
		t.Fatalf("RPUSH on string key = %+v, want Error", reply)
	}

	reply = Dispatch(ks, args("DEL", "k"))
	if reply.Kind != wire.Integer || reply.Int != 1 {
		t.Fatalf("DEL = %+v, want :1", reply)
	}

	reply = Dispatch(ks, args("RPUSH", "k", "x"))
	if reply.Kind != wire.Integer || reply.Int != 1 {
		t.Fatalf("RPUSH after DEL = %+v, want :1", reply)
	}
}

func TestDispatchPing(t *testing.T) {
	ks := keyspace.New()
	reply := Dispatch(ks, args("PING"))
	if reply.Kind != wire.SimpleString || reply.Str != "PONG" {
		t.Fatalf("PING reply = %+v, want +PONG", reply)
	}
}

func TestDispatchCommandNameIsCaseFolded(t *testing.T) {
	ks := keyspace.New()
	reply := Dispatch(ks, args("SeT", "k", "v"))
	if reply.Kind != wire.SimpleString || reply.Str != "OK" {
		t.Fatalf("SeT reply = %+v, want +OK", reply)
	}
	reply = Dispatch(ks, args("gEt", "k"))
	if reply.Kind != wire.BulkString || string(reply.Bulk) != "v" {
		t.Fatalf("gEt reply = %+v, want $v", reply)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	ks := keyspace.New()
	reply := Dispatch(ks, args("NOSUCHCMD", "a"))
	if reply.Kind != wire.Error {
		t.Fatalf("unknown command reply = %+v, want Error", reply)
	}
}

func TestDispatchWrongArity(t *testing.T) {
	ks := keyspace.New()
	reply := Dispatch(ks, args("GET"))
	if reply.Kind != wire.Error {
		t.Fatalf("GET with no args = %+v, want Error", reply)
	}
	reply = Dispatch(ks, args("SET", "onlyone"))
	if reply.Kind != wire.Error {
		t.Fatalf("SET with one arg = %+v, want Error", reply)
	}
}

func TestDispatchMGetVariadicArity(t *testing.T) {
	ks := keyspace.New()
	reply := Dispatch(ks, args("MGET"))
	if reply.Kind != wire.Error {
		t.Fatalf("MGET with zero keys = %+v, want Error", reply)
	}
	Dispatch(ks, args("SET", "a", "1"))
	reply = Dispatch(ks, args("MGET", "a", "b"))
	if reply.Kind != wire.Array || len(reply.Items) != 2 {
		t.Fatalf("MGET reply = %+v, want 2-element Array", reply)
	}
	if string(reply.Items[0].Bulk) != "1" {
		t.Errorf("MGET item[0] = %+v, want $1", reply.Items[0])
	}
	if reply.Items[1].Kind != wire.Nil {
		t.Errorf("MGET item[1] = %+v, want Nil", reply.Items[1])
	}
}

func TestDispatchIntegerArgumentParseFailure(t *testing.T) {
	ks := keyspace.New()
	Dispatch(ks, args("SET", "k", "v"))
	reply := Dispatch(ks, args("INCRBY", "k", "not-an-int"))
	if reply.Kind != wire.Error {
		t.Fatalf("INCRBY with non-integer argument = %+v, want Error", reply)
	}
}

func TestDispatchEmptyArgv(t *testing.T) {
	ks := keyspace.New()
	reply := Dispatch(ks, nil)
	if reply.Kind != wire.Error {
		t.Fatalf("Dispatch(nil) = %+v, want Error", reply)
	}
}
