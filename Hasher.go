// Package chainhash holds what ChainMap and ChainSet share: hashers, options, metrics and errors.
package chainhash

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to an integer hash. It must be deterministic for the lifetime of a table; the table takes the absolute value of the result, so negative hashes are fine.
type Hasher[K any] func(K) int64

// Murmur3 hashes with the 32-bit murmur3 function using seed.
func Murmur3[K ~string | ~[]byte](seed uint32) Hasher[K] {
	return func(k K) int64 {
		return int64(murmur3.Sum32WithSeed([]byte(k), seed))
	}
}

// XXHash hashes with 64-bit xxhash. The result is reinterpreted as signed.
func XXHash[K ~string | ~[]byte]() Hasher[K] {
	return func(k K) int64 {
		return int64(xxhash.Sum64([]byte(k)))
	}
}

// Comparable hashes any comparable value through the runtime's map hash. Create seed using maphash.MakeSeed(); two tables sharing a seed produce the same bucket assignments.
func Comparable[K comparable](seed maphash.Seed) Hasher[K] {
	return func(k K) int64 {
		return int64(maphash.Comparable(seed, k))
	}
}

// Identity uses the integer key as its own hash. Only useful when keys are already well spread, or in tests that need to steer keys into known buckets.
func Identity[K constraints.Integer]() Hasher[K] {
	return func(k K) int64 {
		return int64(k)
	}
}
