// Package command implements the dispatcher from spec §4.3: arity checking,
// ASCII command-name folding, per-position integer argument coercion, and
// routing to keyspace operations.
package command

import "github.com/gaby/kvserver/internal/keyspace"

// arity is the number of arguments required after the command name, or
// variadic for commands accepting one-or-more.
type arity struct {
	n        int
	variadic bool
}

func fixed(n int) arity { return arity{n: n} }
func atLeastOne() arity { return arity{n: 1, variadic: true} }

// matches reports whether argc (the number of arguments after the name)
// satisfies this arity.
func (a arity) matches(argc int) bool {
	if a.variadic {
		return argc >= a.n
	}
	return argc == a.n
}

// spec describes one command table entry: its arity, which of its argument
// positions (0-based, after the name) must parse as a 64-bit signed decimal
// per spec §4.3 step 5, and the handler that executes it.
type spec struct {
	arity  arity
	ints   []int
	handle func(ks *keyspace.Keyspace, args [][]byte, ints map[int]int64) Reply
}

var table map[string]spec

func init() {
	table = map[string]spec{
		"get":    {arity: fixed(1), handle: handleGet},
		"set":    {arity: fixed(2), handle: handleSet},
		"setnx":  {arity: fixed(2), handle: handleSetNX},
		"getset": {arity: fixed(2), handle: handleGetSet},
		"mget":   {arity: atLeastOne(), handle: handleMGet},
		"incr":   {arity: fixed(1), handle: handleIncr},
		"decr":   {arity: fixed(1), handle: handleDecr},
		"incrby": {arity: fixed(2), ints: []int{1}, handle: handleIncrBy},
		"decrby": {arity: fixed(2), ints: []int{1}, handle: handleDecrBy},
		"lpush":  {arity: fixed(2), handle: handleLPush},
		"rpush":  {arity: fixed(2), handle: handleRPush},
		"lpop":   {arity: fixed(1), handle: handleLPop},
		"rpop":   {arity: fixed(1), handle: handleRPop},
		"llen":   {arity: fixed(1), handle: handleLLen},
		"lindex": {arity: fixed(2), ints: []int{1}, handle: handleLIndex},
		"lrange": {arity: fixed(3), ints: []int{1, 2}, handle: handleLRange},
		"lrem":   {arity: fixed(3), ints: []int{1}, handle: handleLRem},
		"lset":   {arity: fixed(3), ints: []int{1}, handle: handleLSet},
		"ltrim":  {arity: fixed(3), ints: []int{1, 2}, handle: handleLTrim},
		"del":    {arity: atLeastOne(), handle: handleDel},
		"exists": {arity: fixed(1), handle: handleExists},
		"ping":   {arity: fixed(0), handle: handlePing},
	}
}
