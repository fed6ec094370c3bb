package keyspace

import "strconv"

// Get returns the stored string (ok=true), or ok=false if the key is absent,
// or ErrWrongType if the key holds a List.
func (ks *Keyspace) Get(key []byte) (val []byte, ok bool, err error) {
	c, found := ks.lookup(string(key))
	if !found {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.k != kindString {
		return nil, false, ErrWrongType
	}
	return cloneBytes(c.str), true, nil
}

// Set overwrites key with val as a String, creating the key if absent.
func (ks *Keyspace) Set(key, val []byte) {
	v := cloneBytes(val)
	c, created := ks.lookupOrCreate(string(key), func() *cell { return newStringCell(v) })
	if created {
		return
	}
	c.mu.Lock()
	c.k = kindString
	c.str = v
	c.list = nil
	c.mu.Unlock()
}

// SetNX sets key to val only if key does not already exist, reporting
// whether the insert happened.
func (ks *Keyspace) SetNX(key, val []byte) bool {
	v := cloneBytes(val)
	_, created := ks.lookupOrCreate(string(key), func() *cell { return newStringCell(v) })
	return created
}

// GetSet atomically replaces key's value with val (as a String) and returns
// the previous value, or ok=false if key was absent. ErrWrongType if key
// held a List; the cell is left untouched in that case, unlike plain SET
// which always overwrites.
func (ks *Keyspace) GetSet(key, val []byte) (old []byte, ok bool, err error) {
	v := cloneBytes(val)
	c, created := ks.lookupOrCreate(string(key), func() *cell { return newStringCell(v) })
	if created {
		return nil, false, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.k != kindString {
		return nil, false, ErrWrongType
	}
	old = c.str
	c.str = v
	return old, true, nil
}

// MGet returns one entry per key: the stored bytes for a String key, or nil
// for an absent key or a key holding a non-String variant (spec §4.2).
func (ks *Keyspace) MGet(keys [][]byte) [][]byte {
	out := make([][]byte, len(keys))
	for i, key := range keys {
		c, found := ks.lookup(string(key))
		if !found {
			continue
		}
		c.mu.RLock()
		if c.k == kindString {
			out[i] = cloneBytes(c.str)
		}
		c.mu.RUnlock()
	}
	return out
}

// Incr is IncrBy(key, 1).
func (ks *Keyspace) Incr(key []byte) (int64, error) { return ks.IncrBy(key, 1) }

// Decr is IncrBy(key, -1).
func (ks *Keyspace) Decr(key []byte) (int64, error) { return ks.IncrBy(key, -1) }

// DecrBy is IncrBy(key, -delta).
func (ks *Keyspace) DecrBy(key []byte, delta int64) (int64, error) { return ks.IncrBy(key, -delta) }

// IncrBy adds delta to the integer stored at key (creating it if absent) and
// returns the new value. ErrNotInteger if the stored string does not parse
// as a 64-bit signed decimal or the result overflows; ErrWrongType if key
// holds a List.
func (ks *Keyspace) IncrBy(key []byte, delta int64) (int64, error) {
	c, created := ks.lookupOrCreate(string(key), func() *cell {
		return newStringCell([]byte(strconv.FormatInt(delta, 10)))
	})
	if created {
		return delta, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.k != kindString {
		return 0, ErrWrongType
	}
	cur, ok := parseStrictInt64(c.str)
	if !ok {
		return 0, ErrNotInteger
	}
	next := cur + delta
	if (delta > 0 && next < cur) || (delta < 0 && next > cur) {
		return 0, ErrNotInteger // overflow; spec prefers a detected-overflow error over wraparound
	}
	c.str = []byte(strconv.FormatInt(next, 10))
	return next, nil
}

// parseStrictInt64 parses a strict 64-bit signed decimal: optional leading
// '-', no whitespace, no leading zeros beyond a lone "0", per spec §4.2.
func parseStrictInt64(b []byte) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	i := 0
	if b[0] == '-' {
		i = 1
	}
	digits := b[i:]
	if len(digits) == 0 {
		return 0, false
	}
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
