// Package ChainMap is a hash map using separate chaining. It's the map counterpart of ChainSet and shares its engine.
package ChainMap

import (
	"hash/maphash"

	"github.com/google/btree"

	"github.com/g-m-twostay/chainhash"
	"github.com/g-m-twostay/chainhash/Maps"
	"github.com/g-m-twostay/chainhash/internal/bucket"
)

var _ Maps.Map[string, int] = (*Map[string, int])(nil)

// Pair is a key with its value, as returned by Entries.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	t *bucket.Table[K, V]
}

// New map hashing keys with hashF. If hashF is nil, chainhash.Comparable with a random seed is used.
func New[K comparable, V any](hashF chainhash.Hasher[K], opts ...chainhash.Option) *Map[K, V] {
	if hashF == nil {
		hashF = chainhash.Comparable[K](maphash.MakeSeed())
	}
	return &Map[K, V]{bucket.New[K, V](hashF, chainhash.NewConfig(opts...))}
}

// Put val under key, replacing any previous value. Returns true if key is new.
// Put may grow the map before returning; the error, which wraps chainhash.ErrAllocation, means it couldn't and the map is as it was.
func (m *Map[K, V]) Put(key K, val V) (bool, error) {
	return m.t.Put(key, val)
}

// Get returns the value of key, ok is false if key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.t.Get(key)
}

func (m *Map[K, V]) Has(key K) bool {
	return m.t.Has(key)
}

// Remove key, returns false if it wasn't present. The map never shrinks.
func (m *Map[K, V]) Remove(key K) bool {
	return m.t.Remove(key)
}

func (m *Map[K, V]) Size() uint {
	return m.t.Size()
}

// Clear the map back to its initial capacity.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

func (m *Map[K, V]) Capacity() uint {
	return m.t.Capacity()
}

func (m *Map[K, V]) Occupied() uint {
	return m.t.Occupied()
}

func (m *Map[K, V]) Load() float64 {
	return m.t.Load()
}

// IndexOf reports the bucket key hashes to under the current capacity.
func (m *Map[K, V]) IndexOf(key K) uint {
	return m.t.IndexOf(key)
}

// Take an arbitrary entry. ok is false when the map is empty.
func (m *Map[K, V]) Take() (K, V, bool) {
	return m.t.Take()
}

// Range calls f for each entry until f returns false. Don't modify the map inside f.
func (m *Map[K, V]) Range(f func(K, V) bool) {
	m.t.Range(f)
}

func (m *Map[K, V]) Keys() []K {
	return m.t.Keys()
}

func (m *Map[K, V]) Values() []V {
	return m.t.Values()
}

func (m *Map[K, V]) Entries() []Pair[K, V] {
	ps := make([]Pair[K, V], 0, m.t.Size())
	m.t.Range(func(k K, v V) bool {
		ps = append(ps, Pair[K, V]{k, v})
		return true
	})
	return ps
}

// AscendKeys calls f on entries in the order given by less, stopping when f returns false.
// Unlike Range, the order doesn't depend on hashing or capacity. It costs a full copy into a B-tree.
func (m *Map[K, V]) AscendKeys(less func(K, K) bool, f func(K, V) bool) {
	tr := btree.NewG[Pair[K, V]](8, func(a, b Pair[K, V]) bool {
		return less(a.Key, b.Key)
	})
	m.t.Range(func(k K, v V) bool {
		tr.ReplaceOrInsert(Pair[K, V]{k, v})
		return true
	})
	tr.Ascend(func(p Pair[K, V]) bool {
		return f(p.Key, p.Val)
	})
}
