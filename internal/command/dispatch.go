package command

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gaby/kvserver/internal/keyspace"
	"github.com/gaby/kvserver/internal/wire"
)

// Reply is the dispatcher's return type: exactly the wire codec's reply
// union, since the dispatcher never needs a richer result than what goes on
// the wire.
type Reply = wire.Value

var foldCase = cases.Lower(language.Und)

// Dispatch executes one parsed request (argv[0] is the command name,
// argv[1:] its arguments) against ks and returns the reply to encode, per
// spec §4.3. It never returns an error: every failure mode specified there
// is an in-band Error reply.
func Dispatch(ks *keyspace.Keyspace, argv [][]byte) Reply {
	if len(argv) == 0 {
		return wire.NewError("ERR unknown command ''")
	}

	name := string(foldCase.Bytes(argv[0]))
	s, ok := table[name]
	if !ok {
		return wire.NewError("ERR unknown command '" + string(argv[0]) + "'")
	}

	args := argv[1:]
	if !s.arity.matches(len(args)) {
		return wire.NewError("ERR wrong number of arguments for '" + name + "' command")
	}

	ints := make(map[int]int64, len(s.ints))
	for _, pos := range s.ints {
		n, err := strconv.ParseInt(string(args[pos]), 10, 64)
		if err != nil {
			return wire.NewError("ERR value is not an integer or out of range")
		}
		ints[pos] = n
	}

	return s.handle(ks, args, ints)
}
