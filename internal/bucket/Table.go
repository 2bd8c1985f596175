// Package bucket is the separate chaining engine shared by ChainMap and ChainSet.
package bucket

import (
	"runtime"
	"strings"

	"github.com/efficientgo/core/errors"
	"github.com/go-kit/log/level"

	"github.com/g-m-twostay/chainhash"
)

// Table is a hash table with one chain per bucket. Capacity starts at chainhash.InitialCapacity and doubles whenever the share of non-empty buckets passes chainhash.LoadFactor; it never shrinks.
// Table has no synchronization of its own. Guard every call, Put included, with one exclusive lock if it's shared.
type Table[K comparable, V any] struct {
	buckets  []chain[K, V]
	occupied uint //number of non-empty buckets.
	size     uint
	hashF    chainhash.Hasher[K]
	cfg      chainhash.Config
}

func New[K comparable, V any](hashF chainhash.Hasher[K], cfg chainhash.Config) *Table[K, V] {
	return &Table[K, V]{buckets: make([]chain[K, V], chainhash.InitialCapacity), hashF: hashF, cfg: cfg}
}

func reduce(m chainhash.Mixing, hash int64, capacity uint) uint {
	i := abs(hash) % uint64(capacity)
	if m == chainhash.DoubleMixing {
		i = i * 31 % uint64(capacity)
	}
	return uint(i)
}

func overloaded(occupied, capacity uint) bool {
	return float64(occupied)/float64(capacity) > chainhash.LoadFactor
}

// IndexOf returns the bucket key currently maps to, in [0, Capacity()).
func (t *Table[K, V]) IndexOf(key K) uint {
	return reduce(t.cfg.Mixing, t.hashF(key), uint(len(t.buckets)))
}

// Put inserts key with val, or overwrites the value if key is present. Returns true if key was added.
// Growth happens inside Put. If growth fails the new entry is dropped again and the error wraps chainhash.ErrAllocation.
func (t *Table[K, V]) Put(key K, val V) (bool, error) {
	hash := t.hashF(key)
	i := reduce(t.cfg.Mixing, hash, uint(len(t.buckets)))
	c := t.buckets[i]
	if j := c.find(key); j >= 0 {
		c[j].val = val //occupancy didn't change, the load factor still holds.
		return false, nil
	}
	if len(c) == 0 {
		t.occupied++
	}
	t.buckets[i] = append(c, entry[K, V]{key, val, hash})
	t.size++
	if overloaded(t.occupied, uint(len(t.buckets))) {
		if err := t.grow(); err != nil {
			t.buckets[i] = t.buckets[i].unlink(len(t.buckets[i]) - 1)
			if len(t.buckets[i]) == 0 {
				t.occupied--
			}
			t.size--
			return false, err
		}
	}
	return true, nil
}

// grow doubles capacity until the rehashed table is within the load factor, then swaps it in. Nothing is modified on error.
func (t *Table[K, V]) grow() error {
	from := uint(len(t.buckets))
	for capacity := from; ; {
		if capacity > t.cfg.MaxCapacity>>1 {
			return t.failed(errors.Wrapf(chainhash.ErrAllocation, "doubling %d buckets passes max capacity %d", capacity, t.cfg.MaxCapacity))
		}
		capacity <<= 1
		buckets, occupied, err := t.rehash(capacity)
		if err != nil {
			return t.failed(err)
		}
		if overloaded(occupied, capacity) {
			continue
		}
		t.buckets, t.occupied = buckets, occupied
		if m := t.cfg.Metrics; m != nil {
			m.Resizes.Inc()
			m.RehashedEntries.Add(float64(t.size))
		}
		level.Debug(t.cfg.Logger).Log("msg", "resized", "from", from, "capacity", capacity, "size", t.size, "occupied", occupied)
		return nil
	}
}

func (t *Table[K, V]) failed(err error) error {
	if m := t.cfg.Metrics; m != nil {
		m.AllocationFailures.Inc()
	}
	level.Warn(t.cfg.Logger).Log("msg", "cannot grow table", "capacity", len(t.buckets), "size", t.size, "err", err)
	return err
}

// rehash places every entry into a fresh array of capacity buckets, visiting old buckets in index order and each chain front to back.
func (t *Table[K, V]) rehash(capacity uint) (buckets []chain[K, V], occupied uint, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok && strings.Contains(re.Error(), "makeslice") {
				buckets, occupied = nil, 0
				err = errors.Wrapf(chainhash.ErrAllocation, "%d buckets: %v", capacity, re)
				return
			}
			panic(r)
		}
	}()
	buckets = make([]chain[K, V], capacity)
	for _, c := range t.buckets {
		for _, e := range c {
			i := reduce(t.cfg.Mixing, e.hash, capacity)
			if len(buckets[i]) == 0 {
				occupied++
			}
			buckets[i] = append(buckets[i], e)
		}
	}
	return
}

// Get the value of key. The bool is false if key isn't present.
func (t *Table[K, V]) Get(key K) (val V, ok bool) {
	c := t.buckets[t.IndexOf(key)]
	if j := c.find(key); j >= 0 {
		val, ok = c[j].val, true
	}
	return
}

func (t *Table[K, V]) Has(key K) bool {
	return t.buckets[t.IndexOf(key)].find(key) >= 0
}

// Remove key. Returns true if key was present.
func (t *Table[K, V]) Remove(key K) bool {
	i := t.IndexOf(key)
	if j := t.buckets[i].find(key); j >= 0 {
		t.buckets[i] = t.buckets[i].unlink(j)
		if len(t.buckets[i]) == 0 {
			t.occupied--
		}
		t.size--
		return true
	}
	return false
}

func (t *Table[K, V]) Size() uint {
	return t.size
}

// Capacity is the number of buckets.
func (t *Table[K, V]) Capacity() uint {
	return uint(len(t.buckets))
}

// Occupied is the number of non-empty buckets.
func (t *Table[K, V]) Occupied() uint {
	return t.occupied
}

// Load is Occupied()/Capacity().
func (t *Table[K, V]) Load() float64 {
	return float64(t.occupied) / float64(len(t.buckets))
}

// Clear drops all entries and returns capacity to chainhash.InitialCapacity.
func (t *Table[K, V]) Clear() {
	t.buckets = make([]chain[K, V], chainhash.InitialCapacity)
	t.occupied, t.size = 0, 0
}

// Range calls f on every entry, buckets in index order and each chain in insertion order. Stops when f returns false.
// The table must not be modified by f.
func (t *Table[K, V]) Range(f func(K, V) bool) {
	for _, c := range t.buckets {
		for _, e := range c {
			if !f(e.key, e.val) {
				return
			}
		}
	}
}

// Take the first entry in bucket order. ok is false if the table is empty.
func (t *Table[K, V]) Take() (key K, val V, ok bool) {
	t.Range(func(k K, v V) bool {
		key, val, ok = k, v, true
		return false
	})
	return
}

func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func (t *Table[K, V]) Values() []V {
	vals := make([]V, 0, t.size)
	t.Range(func(_ K, v V) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}
