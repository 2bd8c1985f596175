package bucket

type entry[K comparable, V any] struct {
	key  K
	val  V
	hash int64 //cached so rehashing never calls the Hasher again.
}

// chain is the sequence of entries that reduced to one index, in insertion order.
type chain[K comparable, V any] []entry[K, V]

func (c chain[K, V]) find(key K) int {
	for i := range c {
		if c[i].key == key {
			return i
		}
	}
	return -1
}

// unlink removes c[i] keeping the order of the rest. An emptied chain is returned as nil so its backing array can be freed.
func (c chain[K, V]) unlink(i int) chain[K, V] {
	if len(c) == 1 {
		return nil
	}
	copy(c[i:], c[i+1:])
	c[len(c)-1] = entry[K, V]{}
	return c[:len(c)-1]
}

// abs of h as unsigned, defined for math.MinInt64 as well.
func abs(h int64) uint64 {
	if h < 0 {
		return uint64(-(h + 1)) + 1
	}
	return uint64(h)
}
