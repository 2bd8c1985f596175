// Package ChainSet is a hash set using separate chaining. It keeps only keys but shares its engine, growth and iteration rules with ChainMap.
package ChainSet

import (
	"hash/maphash"

	"github.com/google/btree"

	"github.com/g-m-twostay/chainhash"
	"github.com/g-m-twostay/chainhash/Sets"
	"github.com/g-m-twostay/chainhash/internal/bucket"
)

var _ Sets.ExtendedSet[string] = (*Set[string])(nil)

// Set is not safe for concurrent use.
type Set[E comparable] struct {
	t     *bucket.Table[E, struct{}]
	hashF chainhash.Hasher[E]
	opts  []chainhash.Option
}

// New set hashing elements with hashF, or chainhash.Comparable with a random seed if hashF is nil.
func New[E comparable](hashF chainhash.Hasher[E], opts ...chainhash.Option) *Set[E] {
	if hashF == nil {
		hashF = chainhash.Comparable[E](maphash.MakeSeed())
	}
	return &Set[E]{t: bucket.New[E, struct{}](hashF, chainhash.NewConfig(opts...)), hashF: hashF, opts: opts}
}

// Put e into the set. Returns true if e wasn't already there; putting an existing element does nothing.
// A non-nil error wraps chainhash.ErrAllocation and leaves the set unchanged.
func (u *Set[E]) Put(e E) (bool, error) {
	return u.t.Put(e, struct{}{})
}

func (u *Set[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *Set[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

// Size of the set.
func (u *Set[E]) Size() uint {
	return u.t.Size()
}

func (u *Set[E]) Clear() {
	u.t.Clear()
}

func (u *Set[E]) Capacity() uint {
	return u.t.Capacity()
}

func (u *Set[E]) Occupied() uint {
	return u.t.Occupied()
}

func (u *Set[E]) Load() float64 {
	return u.t.Load()
}

func (u *Set[E]) IndexOf(e E) uint {
	return u.t.IndexOf(e)
}

// Take an arbitrary element from the set. ok is false if the set is empty.
func (u *Set[E]) Take() (e E, ok bool) {
	e, _, ok = u.t.Take()
	return
}

// Range over elements and call f on them. Stops when f returns false.
func (u *Set[E]) Range(f func(E) bool) {
	u.t.Range(func(e E, _ struct{}) bool {
		return f(e)
	})
}

// Keys lists the elements in bucket order.
func (u *Set[E]) Keys() []E {
	return u.t.Keys()
}

// Ascend calls f on elements in less order until f returns false.
func (u *Set[E]) Ascend(less func(E, E) bool, f func(E) bool) {
	tr := btree.NewG[E](8, less)
	u.Range(func(e E) bool {
		tr.ReplaceOrInsert(e)
		return true
	})
	tr.Ascend(f)
}

// PutAll elements of s. Returns how many were new. Stops at the first growth failure.
func (u *Set[E]) PutAll(s Sets.Set[E]) (n uint, err error) {
	s.Range(func(e E) bool {
		var added bool
		if added, err = u.Put(e); added {
			n++
		}
		return err == nil
	})
	return
}

// RemoveAll elements of s. Returns how many were removed.
func (u *Set[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq reports whether u and s hold the same elements.
func (u *Set[E]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

// Intersect removes every element not in s. Returns how many were removed.
func (u *Set[E]) Intersect(s Sets.Set[E]) uint {
	var drop []E
	u.Range(func(e E) bool {
		if !s.Has(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		u.Remove(e)
	}
	return uint(len(drop))
}

// Filter returns a new set, with the same hasher and options, of the elements f accepts.
func (u *Set[E]) Filter(f func(E) bool) (*Set[E], error) {
	r := New[E](u.hashF, u.opts...)
	var err error
	u.Range(func(e E) bool {
		if f(e) {
			_, err = r.Put(e)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
