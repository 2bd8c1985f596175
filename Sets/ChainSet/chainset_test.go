package ChainSet

import (
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/chainhash"
)

var names = []string{
	"Anna", "Bob", "Carlos", "Diana", "Fergie", "Grett", "Helen", "Inna",
	"Jane", "Kayle", "Luna", "Maria", "Nancy", "Oriana", "Patricia", "Quantavia",
	"Rita", "Sarah", "Tania", "Umma", "Victoria", "Wanda", "Xena", "Zoe",
}

func TestChainSet_All(t *testing.T) {
	S := New[int](chainhash.Identity[int]())
	for i := 0; i < 10; i++ {
		if added, err := S.Put(i); !added || err != nil {
			t.Error("wrong put 1")
		}
		if added, _ := S.Put(i); added {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
}

func TestChainSet_Names(t *testing.T) {
	var buf bytes.Buffer
	S := New[string](chainhash.Murmur3[string](1), chainhash.WithLogger(log.NewLogfmtLogger(&buf)))
	for _, n := range names {
		_, err := S.Put(n)
		require.NoError(t, err)
	}
	require.Equal(t, uint(24), S.Size())
	require.Equal(t, uint(32), S.Capacity())
	require.Equal(t, uint(17), S.Occupied())
	require.Contains(t, buf.String(), "capacity=32")
	for _, n := range names {
		require.True(t, S.Has(n), n)
	}

	require.True(t, S.Has("Bob"))
	require.True(t, S.Remove("Carlos"))
	require.False(t, S.Has("Carlos"))
	require.Equal(t, uint(23), S.Size())
	require.ElementsMatch(t, append(append([]string{}, names[:2]...), names[3:]...), S.Keys())

	S.Clear()
	require.Empty(t, S.Keys())
	require.Equal(t, uint(0), S.Size())
	require.Equal(t, chainhash.InitialCapacity, S.Capacity())
}

// Growth counts occupied buckets, not elements. With seed 0 the 24 names share 12 buckets, exactly the load factor.
func TestChainSet_NamesNoResize(t *testing.T) {
	S := New[string](chainhash.Murmur3[string](0))
	for _, n := range names {
		_, err := S.Put(n)
		require.NoError(t, err)
	}
	require.Equal(t, uint(24), S.Size())
	require.Equal(t, uint(16), S.Capacity())
	require.Equal(t, uint(12), S.Occupied())
	for _, n := range names {
		require.True(t, S.Has(n), n)
	}
}

func TestChainSet_Algebra(t *testing.T) {
	hashF := chainhash.Identity[int]()
	evens, small := New[int](hashF), New[int](hashF)
	for i := 0; i < 40; i += 2 {
		_, err := evens.Put(i)
		require.NoError(t, err)
	}
	for i := 0; i < 10; i++ {
		_, err := small.Put(i)
		require.NoError(t, err)
	}

	u := New[int](hashF)
	n, err := u.PutAll(evens)
	require.NoError(t, err)
	require.Equal(t, uint(20), n)
	require.True(t, u.Eq(evens))
	n, err = u.PutAll(small)
	require.NoError(t, err)
	require.Equal(t, uint(5), n, "only the odd ones are new")
	require.Equal(t, uint(25), u.Size())
	require.False(t, u.Eq(evens))

	require.Equal(t, uint(10), u.RemoveAll(small))
	require.Equal(t, uint(15), u.Size())
	require.False(t, u.Has(4))
	require.True(t, u.Has(10))

	require.Equal(t, uint(15), evens.Intersect(small))
	require.Equal(t, uint(0), evens.Intersect(small))
	require.Equal(t, uint(5), evens.Size())
	require.ElementsMatch(t, []int{0, 2, 4, 6, 8}, evens.Keys())

	odd, err := small.Filter(func(e int) bool { return e%2 == 1 })
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 3, 5, 7, 9}, odd.Keys())
	require.Equal(t, uint(10), small.Size())
}

func TestChainSet_TakeAscend(t *testing.T) {
	S := New[string](nil)
	_, ok := S.Take()
	require.False(t, ok)
	for _, n := range names {
		_, err := S.Put(n)
		require.NoError(t, err)
	}
	e, ok := S.Take()
	require.True(t, ok)
	require.True(t, S.Has(e))

	var got []string
	S.Ascend(func(a, b string) bool { return a < b }, func(e string) bool {
		got = append(got, e)
		return true
	})
	require.Equal(t, names, got)

	n := 0
	S.Range(func(string) bool {
		n++
		return n < 3
	})
	require.Equal(t, 3, n)
}

func TestChainSet_AllocationFailure(t *testing.T) {
	S := New[int](chainhash.Identity[int](), chainhash.WithMaxCapacity(16))
	for i := 0; i < 12; i++ {
		_, err := S.Put(i)
		require.NoError(t, err)
	}
	added, err := S.Put(12)
	require.False(t, added)
	require.ErrorIs(t, err, chainhash.ErrAllocation)
	require.Equal(t, uint(12), S.Size())
	require.False(t, S.Has(12))
	require.Equal(t, uint(16), S.Capacity())
}

func TestChainSet_IndexOf(t *testing.T) {
	single := New[int](chainhash.Identity[int]())
	double := New[int](chainhash.Identity[int](), chainhash.WithMixing(chainhash.DoubleMixing))
	require.Equal(t, uint(3), single.IndexOf(3))
	require.Equal(t, uint(13), double.IndexOf(3))
}
