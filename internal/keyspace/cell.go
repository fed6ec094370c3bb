package keyspace

import (
	"container/list"
	"sync"
)

// kind tags which variant a cell currently holds.
type kind int

const (
	kindString kind = iota
	kindList
)

// cell is the shared, independently-locked container for one key's value.
// The mapping owns the cell's lifetime; operations that are already holding
// a handle to a cell keep working against it even after the key has been
// removed from (or reinserted into) the mapping, per spec §4.2/§4.4 — the
// handle is a *cell pointer, and Go's garbage collector frees it once the
// last holder drops its reference.
type cell struct {
	mu sync.RWMutex

	k    kind
	str  []byte
	list *list.List // element type []byte, only valid when k == kindList
}

func newStringCell(v []byte) *cell {
	return &cell{k: kindString, str: v}
}

func newListCell() *cell {
	return &cell{k: kindList, list: list.New()}
}
