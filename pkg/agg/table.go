// pkg/agg/table.go

package agg

import (
	"github.com/pkg/errors"

	"OneBRC/pkg/buffer"
	"OneBRC/pkg/utils"
)

// Aggregate is the running summary of one station, in tenths.
type Aggregate struct {
	Count uint64
	Sum   int64
	Min   int32
	Max   int32
}

func (a *Aggregate) add(v int32) {
	if a.Count == 0 {
		a.Min, a.Max = v, v
	} else {
		a.Min = min(a.Min, v)
		a.Max = max(a.Max, v)
	}
	a.Count++
	a.Sum += int64(v)
}

func (a *Aggregate) merge(o Aggregate) {
	if a.Count == 0 {
		*a = o
		return
	}
	a.Count += o.Count
	a.Sum += o.Sum
	a.Min = min(a.Min, o.Min)
	a.Max = max(a.Max, o.Max)
}

type slot struct {
	hash uint32
	key  buffer.Key
	Aggregate
}

// Table is a fixed-capacity open-addressing hash table from station names,
// given as ranges of a shared buffer, to their aggregates. A Table is owned
// by a single worker and never resizes.
type Table struct {
	view  buffer.Region
	slots []slot
	mask  uint32
	used  int
}

// NewTable creates a table with capacity slots, which must be a power of
// two. Keys are resolved against view's buffer.
func NewTable(view buffer.Region, capacity int) (*Table, error) {
	if !utils.IsPowerOfTwo(capacity) {
		return nil, errors.Errorf("table capacity %d is not a power of two", capacity)
	}
	return &Table{
		view:  view,
		slots: make([]slot, capacity),
		mask:  uint32(capacity - 1),
	}, nil
}

// Hash is the polynomial hash of a station name.
func Hash(name []byte) uint32 {
	h := uint32(17)
	for _, c := range name {
		h = 31*h + uint32(c)
	}
	return h
}

// Upsert folds one observation v into the entry of key, creating it if
// needed. hash must be Hash of the key bytes.
func (t *Table) Upsert(key buffer.Key, hash uint32, v int32) error {
	start := hash & t.mask
	i := start
	for {
		s := &t.slots[i]
		if s.Count == 0 {
			s.hash = hash
			s.key = key
			s.add(v)
			t.used++
			return nil
		}
		if s.hash == hash && t.view.Equal(s.key, key) {
			s.add(v)
			return nil
		}
		i = (i + 1) & t.mask
		if i == start {
			return &CapacityExhaustedError{Capacity: len(t.slots), Distinct: t.used + 1}
		}
	}
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	return t.used
}

func (t *Table) Cap() int {
	return len(t.slots)
}

// Range calls fn for every live entry. name aliases the shared buffer and
// must be copied to outlive it.
func (t *Table) Range(fn func(name []byte, a Aggregate)) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.Count == 0 {
			continue
		}
		fn(t.view.Get(s.key), s.Aggregate)
	}
}
