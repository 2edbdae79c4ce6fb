package memo_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/noisefn/memo"

	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := memo.NewTrie[string, string](4)

	// store a value
	trie.Store([]string{"a", "b", "c"}, "final")

	// load it back
	val, ok := trie.Load([]string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]string{"a", "b", "x"})
	assert.False(t, ok)

	// prefix only
	_, ok = trie.Load([]string{"a", "b"})
	assert.False(t, ok)

	// overwrite existing
	trie.Store([]string{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_FloatKeys(t *testing.T) {
	trie := memo.NewTrie[float64, float64](4)

	trie.Store([]float64{0.5, -1}, 42)
	val, ok := trie.Load([]float64{0.5, -1})
	assert.True(t, ok)
	assert.Equal(t, 42.0, val)

	_, ok = trie.Load([]float64{-1, 0.5})
	assert.False(t, ok)
}

func TestTrie_RotationDropsOldestGeneration(t *testing.T) {
	trie := memo.NewTrie[int, int](1)

	trie.Store([]int{1}, 1)
	trie.Store([]int{2}, 2) // rotates, 1 is in the older generation
	_, ok := trie.Load([]int{1})
	assert.True(t, ok)

	trie.Store([]int{3}, 3) // rotates again, 1 is dropped
	_, ok = trie.Load([]int{1})
	assert.False(t, ok)

	for _, k := range []int{2, 3} {
		v, ok := trie.Load([]int{k})
		assert.True(t, ok)
		assert.Equal(t, k, v)
	}
	assert.Equal(t, uint32(1), trie.Len())
}

func TestTrie_ConcurrentStoreLoad(t *testing.T) {
	trie := memo.NewTrie[int, int](16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				keys := []int{i, j}
				trie.Store(keys, i*j)
				if v, ok := trie.Load(keys); ok {
					assert.Equal(t, i*j, v)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty keys, but didn't panic")
		}
	}()
	trie := memo.NewTrie[int, int](2)
	trie.Load([]int{})
}

func TestTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		memo.NewTrie[int, int](0)
	})
}

func TestTrie_MixedPathLengths(t *testing.T) {
	trie := memo.NewTrie[string, int](8)

	trie.Store([]string{"a", "b"}, 2)

	// a prefix of a stored path holds no value of its own
	_, ok := trie.Load([]string{"a"})
	assert.False(t, ok)

	// a path running past a stored one is a miss
	_, ok = trie.Load([]string{"a", "b", "c"})
	assert.False(t, ok)

	// both can be stored next to the original path
	trie.Store([]string{"a"}, 1)
	trie.Store([]string{"a", "b", "c"}, 3)
	for want, keys := range [][]string{{"a"}, {"a", "b"}, {"a", "b", "c"}} {
		v, ok := trie.Load(keys)
		assert.True(t, ok, "path %v", keys)
		assert.Equal(t, want+1, v, "path %v", keys)
	}
}

func TestTrie_ConcurrentStoresStayBounded(t *testing.T) {
	const maxSize = 4
	trie := memo.NewTrie[int, int](maxSize)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				trie.Store([]int{i, j}, j)
				assert.LessOrEqual(t, trie.Len(), uint32(maxSize))
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, trie.Len(), uint32(maxSize))

	// rotation keeps working after the contention
	for k := 1; k <= 3*maxSize; k++ {
		trie.Store([]int{-k}, k)
		assert.LessOrEqual(t, trie.Len(), uint32(maxSize))
	}
	_, ok := trie.Load([]int{0, 0})
	assert.False(t, ok, "entries from before the contention should have been rotated out")
	v, ok := trie.Load([]int{-3 * maxSize})
	assert.True(t, ok)
	assert.Equal(t, 3*maxSize, v)
}
