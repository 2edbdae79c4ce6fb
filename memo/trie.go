// Package memo holds bounded stores for values of pure computations.
package memo

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded, concurrency-safe store addressed by a path of keys,
// one trie level per key. Paths of different lengths may be mixed: a path
// and its prefixes hold independent values.
//
// Entries live in two generations. Stores go to the head generation; once it
// has taken maxSize stores the generations rotate and the older one is
// dropped. Loads look in both and never block. A store racing a rotation may
// land in the generation being dropped, which only costs a recomputation since
// stored values must be pure results.
type Trie[K comparable, O any] struct {
	memos   [2]atomic.Pointer[node[O]]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32

	// mu serializes rotation and the size accounting of stores.
	mu sync.Mutex
}

type node[O any] struct {
	children sync.Map // K -> *node[O]
	value    atomic.Pointer[O]
}

func NewTrie[K comparable, O any](maxSize uint32) *Trie[K, O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[K, O]{maxSize: maxSize}
	t.memos[0].Store(&node[O]{})
	t.memos[1].Store(&node[O]{})
	return t
}

func (t *Trie[K, O]) Load(keys []K) (O, bool) {
	if len(keys) == 0 {
		panic("lookup: empty keys")
	}
	headIdx := t.headIdx.Load()
	for _, idx := range [2]uint32{headIdx, 1 - headIdx} {
		if n := lookup(t.memos[idx].Load(), keys); n != nil {
			if v := n.value.Load(); v != nil {
				return *v, true
			}
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[K, O]) Store(keys []K, value O) {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}

	t.mu.Lock()
	if t.size.Load() >= t.maxSize {
		next := 1 - t.headIdx.Load()
		t.memos[next].Store(&node[O]{})
		t.headIdx.Store(next)
		t.size.Store(0)
	}
	t.size.Add(1)
	head := t.memos[t.headIdx.Load()].Load()
	t.mu.Unlock()

	traverse(head, keys).value.Store(&value)
}

// Len reports the number of stores taken by the head generation.
// It never exceeds maxSize.
func (t *Trie[K, O]) Len() uint32 {
	return t.size.Load()
}

func lookup[K comparable, O any](n *node[O], keys []K) *node[O] {
	for _, k := range keys {
		v, ok := n.children.Load(k)
		if !ok {
			return nil
		}
		n = v.(*node[O])
	}
	return n
}

func traverse[K comparable, O any](n *node[O], keys []K) *node[O] {
	for _, k := range keys {
		v, ok := n.children.Load(k)
		if !ok {
			v, _ = n.children.LoadOrStore(k, &node[O]{})
		}
		n = v.(*node[O])
	}
	return n
}
