// Package keyspace implements the process-wide concurrent mapping from
// binary keys to typed value cells described in spec §3–§5: a reader/writer
// lock on the outer mapping with an upgradeable-read insert path, and an
// independent reader/writer lock per cell so that mutation of one key never
// blocks readers or writers of another.
package keyspace

import "sync"

// Keyspace is the top-level mapping from key to cell. The zero value is not
// usable; construct with New. A *Keyspace is cheap to share across
// goroutines: every exported method takes and releases its own locks.
type Keyspace struct {
	mu sync.RWMutex
	m  map[string]*cell
}

// New returns an empty Keyspace.
func New() *Keyspace {
	return &Keyspace{m: make(map[string]*cell)}
}

// lookup returns the cell for key without creating one, using only a shared
// read of the mapping (spec §4.2's "lookups that do not insert").
func (ks *Keyspace) lookup(key string) (*cell, bool) {
	ks.mu.RLock()
	c, ok := ks.m[key]
	ks.mu.RUnlock()
	return c, ok
}

// lookupOrCreate returns the existing cell for key, or inserts and returns a
// freshly made one via create. It implements the read-then-upgrade protocol
// from spec §4.2 and §9 (Go's sync.RWMutex has no native upgradeable read):
// take a read lock and check; on a miss, release it, take the exclusive
// lock, re-check under exclusive (another goroutine may have inserted first),
// and only then insert. The re-check makes the upgrade atomic with respect
// to the initial read, so the entry can never be lost.
func (ks *Keyspace) lookupOrCreate(key string, create func() *cell) (c *cell, created bool) {
	ks.mu.RLock()
	c, ok := ks.m[key]
	ks.mu.RUnlock()
	if ok {
		return c, false
	}

	ks.mu.Lock()
	defer ks.mu.Unlock()
	if c, ok = ks.m[key]; ok {
		return c, false
	}
	c = create()
	ks.m[key] = c
	return c, true
}

// deleteIfSame removes key from the mapping iff it still maps to c (guards
// against racing with a concurrent overwrite/recreate of the same key while
// this operation held only a handle, not the mapping lock).
func (ks *Keyspace) deleteIfSame(key string, c *cell) {
	ks.mu.Lock()
	if cur, ok := ks.m[key]; ok && cur == c {
		delete(ks.m, key)
	}
	ks.mu.Unlock()
}

// Del removes the given keys and reports how many existed. It takes a
// single exclusive lock on the mapping for the whole batch, per spec §4.2/§5:
// the removal of the N keys is linearizable as one step against the mapping,
// though not ordered against concurrent operations already in flight against
// an individual cell.
func (ks *Keyspace) Del(keys ...[]byte) int64 {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	var n int64
	for _, k := range keys {
		key := string(k)
		if _, ok := ks.m[key]; ok {
			delete(ks.m, key)
			n++
		}
	}
	return n
}

// Exists reports whether key is currently present.
func (ks *Keyspace) Exists(key []byte) bool {
	_, ok := ks.lookup(string(key))
	return ok
}

// Stats is a point-in-time snapshot for the admin/observability surface. It
// never participates in the command path's locking discipline beyond the
// single read lock needed to count keys.
type Stats struct {
	Keys int
}

func (ks *Keyspace) Stats() Stats {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	return Stats{Keys: len(ks.m)}
}
