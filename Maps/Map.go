/*
Package Maps defines the map API implemented by ChainMap.

# Growth
Tables start with 16 buckets. After every insertion the share of non-empty buckets is checked, and above 0.75 the bucket array doubles and every entry is rehashed before the insertion returns. Removal never shrinks the array; Clear returns it to 16 buckets.

# Order
Keys, Values, Entries and Range follow bucket index, then insertion order within a bucket. That order depends on the hash, the mixing scheme and the capacity, so it changes across a resize. Use AscendKeys for a stable order.

# Concurrency
None. Share a map between goroutines only behind one exclusive lock held for every call.
*/
package Maps

// Map is the single-goroutine map API. Listing methods return fresh slices whose order follows bucket layout and may change after a resize.
type Map[K comparable, V any] interface {
	Put(K, V) (bool, error)
	Has(K) bool
	Get(K) (V, bool)
	Remove(K) bool
	Take() (K, V, bool)
	Keys() []K
	Values() []V
	Range(func(K, V) bool)
	Size() uint
	Clear()
}
