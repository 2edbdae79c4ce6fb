// Package noise provides the composition layer of a procedural noise library.
//
// A noise function is a pure mapping from a point to a scalar. This package
// does not generate noise itself; it combines and decorates functions that do:
//
//	→ "Can this source feed several consumers without being evaluated twice?"  (Cache)
//	→ "Can two sources be merged into one?"                                    (Min, Max, Add, ...)
//	→ "Can a decorated source still be reseeded or retuned?"                   (Seedable, MultiFractal)
//
// Every node implements NoiseFn[P]. The point type P fixes the dimension of a
// whole tree at compile time, so a 2D source can never be combined with a 3D one.
//
// Features:
//   - Cache: single-slot memo of the last (point, value) pair.
//   - SyncCache: the same memo guarded by a mutex, for trees shared across goroutines.
//   - Table: bounded multi-point memo backed by memo.Trie.
//   - Min, Max, Add, Multiply, Power: binary combinators sharing one skeleton.
//   - Seedable and MultiFractal forwarding through decorators, with memo invalidation.
//   - Digest: an xxhash fingerprint of a function's outputs, for determinism checks.
//
// Trees are built bottom-up by nesting constructors:
//
//	fbm := noise.NewCache[noise.Point2](source.NewFbm[noise.Point2](7)).SetOctaves(4)
//	tree := noise.NewMin[noise.Point2](fbm, source.NewSimplex[noise.Point2](8))
//	v := tree.Get(noise.Point2{0.5, 1.5})
//
// WARNING: Cache is not safe for concurrent use. Give each goroutine its own
// tree, or wrap shared sources in SyncCache or Table.
package noise
