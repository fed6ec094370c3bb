package keyspace

import "container/list"

// LPush prepends val to the list at key (creating it if absent) and returns
// the new length. ErrWrongType if key holds a String.
func (ks *Keyspace) LPush(key, val []byte) (int64, error) {
	return ks.push(key, val, true)
}

// RPush appends val to the list at key (creating it if absent) and returns
// the new length. ErrWrongType if key holds a String.
func (ks *Keyspace) RPush(key, val []byte) (int64, error) {
	return ks.push(key, val, false)
}

func (ks *Keyspace) push(key, val []byte, front bool) (int64, error) {
	v := cloneBytes(val)
	c, created := ks.lookupOrCreate(string(key), newListCell)
	if !created {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.k != kindList {
			return 0, ErrWrongType
		}
	} else {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	if front {
		c.list.PushFront(v)
	} else {
		c.list.PushBack(v)
	}
	return int64(c.list.Len()), nil
}

// LPop removes and returns the first element, or ok=false if key is absent.
// ErrWrongType if key holds a String. A pop that empties the list removes
// the key entirely, mirroring LTRIM's empty-list deletion (spec §3).
func (ks *Keyspace) LPop(key []byte) (val []byte, ok bool, err error) {
	return ks.pop(key, true)
}

// RPop is LPop from the tail.
func (ks *Keyspace) RPop(key []byte) (val []byte, ok bool, err error) {
	return ks.pop(key, false)
}

func (ks *Keyspace) pop(key []byte, front bool) (val []byte, ok bool, err error) {
	keyS := string(key)
	c, found := ks.lookup(keyS)
	if !found {
		return nil, false, nil
	}
	c.mu.Lock()
	if c.k != kindList {
		c.mu.Unlock()
		return nil, false, ErrWrongType
	}
	var e *list.Element
	if front {
		e = c.list.Front()
	} else {
		e = c.list.Back()
	}
	if e == nil {
		c.mu.Unlock()
		return nil, false, nil
	}
	c.list.Remove(e)
	empty := c.list.Len() == 0
	c.mu.Unlock()
	if empty {
		ks.deleteIfSame(keyS, c)
	}
	return e.Value.([]byte), true, nil
}

// LLen returns the list length, or 0 for an absent key. ErrWrongType if key
// holds a String.
func (ks *Keyspace) LLen(key []byte) (int64, error) {
	c, found := ks.lookup(string(key))
	if !found {
		return 0, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.k != kindList {
		return 0, ErrWrongType
	}
	return int64(c.list.Len()), nil
}

// normalizeIndex replaces a negative index with index+len, per spec §4.2.
func normalizeIndex(idx, length int64) int64 {
	if idx < 0 {
		return idx + length
	}
	return idx
}

// elementAt walks the list to the i'th element (0-based); O(k) as spec §9
// requires of any conforming list representation.
func elementAt(l *list.List, i int64) *list.Element {
	if i < 0 || i >= int64(l.Len()) {
		return nil
	}
	e := l.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}
	return e
}

// LIndex returns the element at idx (negative indices count from the list's
// end), or ok=false if idx is out of range after normalization or key is
// absent. ErrWrongType if key holds a String.
func (ks *Keyspace) LIndex(key []byte, idx int64) (val []byte, ok bool, err error) {
	c, found := ks.lookup(string(key))
	if !found {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.k != kindList {
		return nil, false, ErrWrongType
	}
	i := normalizeIndex(idx, int64(c.list.Len()))
	e := elementAt(c.list, i)
	if e == nil {
		return nil, false, nil
	}
	return cloneBytes(e.Value.([]byte)), true, nil
}

// LRange returns the inclusive slice [start, stop] after negative-index
// normalization and clamping to [0, len], per spec §4.2. Returns an empty,
// non-nil slice (not an error) when the normalized range is empty.
func (ks *Keyspace) LRange(key []byte, start, stop int64) ([][]byte, error) {
	c, found := ks.lookup(string(key))
	if !found {
		return [][]byte{}, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.k != kindList {
		return nil, ErrWrongType
	}
	n := int64(c.list.Len())
	s := clamp(normalizeIndex(start, n), 0, n)
	e := clamp(normalizeIndex(stop, n), 0, n)
	if s >= n || s > e {
		return [][]byte{}, nil
	}
	out := make([][]byte, 0, e-s+1)
	el := elementAt(c.list, s)
	for i := s; i <= e && el != nil; i++ {
		out = append(out, cloneBytes(el.Value.([]byte)))
		el = el.Next()
	}
	return out, nil
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LRem removes up to count occurrences of val: head-to-tail if count > 0,
// tail-to-head (preserving survivor order) if count < 0, all occurrences if
// count == 0. Returns the number actually removed. A removal that empties
// the list deletes the key.
func (ks *Keyspace) LRem(key []byte, count int64, val []byte) (int64, error) {
	keyS := string(key)
	c, found := ks.lookup(keyS)
	if !found {
		return 0, nil
	}
	c.mu.Lock()
	if c.k != kindList {
		c.mu.Unlock()
		return 0, ErrWrongType
	}

	var removed int64
	limit := count
	if limit < 0 {
		limit = -limit
	}
	if count >= 0 {
		for e := c.list.Front(); e != nil && (count == 0 || removed < limit); {
			next := e.Next()
			if bytesEqual(e.Value.([]byte), val) {
				c.list.Remove(e)
				removed++
			}
			e = next
		}
	} else {
		for e := c.list.Back(); e != nil && removed < limit; {
			prev := e.Prev()
			if bytesEqual(e.Value.([]byte), val) {
				c.list.Remove(e)
				removed++
			}
			e = prev
		}
	}
	empty := c.list.Len() == 0
	c.mu.Unlock()
	if empty {
		ks.deleteIfSame(keyS, c)
	}
	return removed, nil
}

// LSet overwrites the element at idx (after negative-index normalization).
// ErrNoSuchKey if key is absent, ErrIndexOutOfRange if idx is out of
// [0, len) after normalization, ErrWrongType if key holds a String.
func (ks *Keyspace) LSet(key []byte, idx int64, val []byte) error {
	c, found := ks.lookup(string(key))
	if !found {
		return ErrNoSuchKey
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.k != kindList {
		return ErrWrongType
	}
	i := normalizeIndex(idx, int64(c.list.Len()))
	e := elementAt(c.list, i)
	if e == nil {
		return ErrIndexOutOfRange
	}
	e.Value = cloneBytes(val)
	return nil
}

// LTrim truncates the list to the inclusive [start, stop] range after
// normalization/clamping. If the resulting range is empty, the key is
// removed entirely (spec §4.2's LTRIM edge case). A missing key is a no-op.
// ErrWrongType if key holds a String.
func (ks *Keyspace) LTrim(key []byte, start, stop int64) error {
	keyS := string(key)
	c, found := ks.lookup(keyS)
	if !found {
		return nil
	}
	c.mu.Lock()
	if c.k != kindList {
		c.mu.Unlock()
		return ErrWrongType
	}
	n := int64(c.list.Len())
	s := clamp(normalizeIndex(start, n), 0, n)
	e := clamp(normalizeIndex(stop, n), 0, n)
	if s >= n || s > e {
		c.mu.Unlock()
		ks.deleteIfSame(keyS, c)
		return nil
	}
	i := int64(0)
	var next *list.Element
	for el := c.list.Front(); el != nil; el = next {
		next = el.Next()
		if i < s || i > e {
			c.list.Remove(el)
		}
		i++
	}
	c.mu.Unlock()
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
