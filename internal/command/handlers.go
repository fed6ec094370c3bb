package command

import (
	"github.com/gaby/kvserver/internal/keyspace"
	"github.com/gaby/kvserver/internal/wire"
)

func wrapErr(err error) wire.Value {
	switch err {
	case keyspace.ErrWrongType:
		return wire.NewError(err.Error())
	case keyspace.ErrNotInteger:
		return wire.NewError("ERR value is not an integer or out of range")
	case keyspace.ErrNoSuchKey:
		return wire.NewError("ERR no such key")
	case keyspace.ErrIndexOutOfRange:
		return wire.NewError("ERR index out of range")
	default:
		return wire.NewError("ERR " + err.Error())
	}
}

func handleGet(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	v, ok, err := ks.Get(args[0])
	if err != nil {
		return wrapErr(err)
	}
	if !ok {
		return wire.NilValue()
	}
	return wire.NewBulk(v)
}

func handleSet(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	ks.Set(args[0], args[1])
	return wire.OK()
}

func handleSetNX(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	if ks.SetNX(args[0], args[1]) {
		return wire.NewInt(1)
	}
	return wire.NewInt(0)
}

func handleGetSet(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	old, ok, err := ks.GetSet(args[0], args[1])
	if err != nil {
		return wrapErr(err)
	}
	if !ok {
		return wire.NilValue()
	}
	return wire.NewBulk(old)
}

func handleMGet(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	vals := ks.MGet(args)
	items := make([]wire.Value, len(vals))
	for i, v := range vals {
		if v == nil {
			items[i] = wire.NilValue()
		} else {
			items[i] = wire.NewBulk(v)
		}
	}
	return wire.NewArray(items)
}

func handleIncr(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	n, err := ks.Incr(args[0])
	if err != nil {
		return wrapErr(err)
	}
	return wire.NewInt(n)
}

func handleDecr(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	n, err := ks.Decr(args[0])
	if err != nil {
		return wrapErr(err)
	}
	return wire.NewInt(n)
}

func handleIncrBy(ks *keyspace.Keyspace, args [][]byte, ints map[int]int64) Reply {
	n, err := ks.IncrBy(args[0], ints[1])
	if err != nil {
		return wrapErr(err)
	}
	return wire.NewInt(n)
}

func handleDecrBy(ks *keyspace.Keyspace, args [][]byte, ints map[int]int64) Reply {
	n, err := ks.DecrBy(args[0], ints[1])
	if err != nil {
		return wrapErr(err)
	}
	return wire.NewInt(n)
}

func handleLPush(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	n, err := ks.LPush(args[0], args[1])
	if err != nil {
		return wrapErr(err)
	}
	return wire.NewInt(n)
}

func handleRPush(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	n, err := ks.RPush(args[0], args[1])
	if err != nil {
		return wrapErr(err)
	}
	return wire.NewInt(n)
}

func handleLPop(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	v, ok, err := ks.LPop(args[0])
	if err != nil {
		return wrapErr(err)
	}
	if !ok {
		return wire.NilValue()
	}
	return wire.NewBulk(v)
}

func handleRPop(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	v, ok, err := ks.RPop(args[0])
	if err != nil {
		return wrapErr(err)
	}
	if !ok {
		return wire.NilValue()
	}
	return wire.NewBulk(v)
}

func handleLLen(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	n, err := ks.LLen(args[0])
	if err != nil {
		return wrapErr(err)
	}
	return wire.NewInt(n)
}

func handleLIndex(ks *keyspace.Keyspace, args [][]byte, ints map[int]int64) Reply {
	v, ok, err := ks.LIndex(args[0], ints[1])
	if err != nil {
		return wrapErr(err)
	}
	if !ok {
		return wire.NilValue()
	}
	return wire.NewBulk(v)
}

func handleLRange(ks *keyspace.Keyspace, args [][]byte, ints map[int]int64) Reply {
	vals, err := ks.LRange(args[0], ints[1], ints[2])
	if err != nil {
		return wrapErr(err)
	}
	items := make([]wire.Value, len(vals))
	for i, v := range vals {
		items[i] = wire.NewBulk(v)
	}
	return wire.NewArray(items)
}

func handleLRem(ks *keyspace.Keyspace, args [][]byte, ints map[int]int64) Reply {
	n, err := ks.LRem(args[0], ints[1], args[2])
	if err != nil {
		return wrapErr(err)
	}
	return wire.NewInt(n)
}

func handleLSet(ks *keyspace.Keyspace, args [][]byte, ints map[int]int64) Reply {
	if err := ks.LSet(args[0], ints[1], args[2]); err != nil {
		return wrapErr(err)
	}
	return wire.OK()
}

func handleLTrim(ks *keyspace.Keyspace, args [][]byte, ints map[int]int64) Reply {
	if err := ks.LTrim(args[0], ints[1], ints[2]); err != nil {
		return wrapErr(err)
	}
	return wire.OK()
}

func handleDel(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	return wire.NewInt(ks.Del(args...))
}

func handleExists(ks *keyspace.Keyspace, args [][]byte, _ map[int]int64) Reply {
	if ks.Exists(args[0]) {
		return wire.NewInt(1)
	}
	return wire.NewInt(0)
}

func handlePing(_ *keyspace.Keyspace, _ [][]byte, _ map[int]int64) Reply {
	return Reply{Kind: wire.SimpleString, Str: "PONG"}
}
