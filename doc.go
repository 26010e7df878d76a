// Package balltree implements a Ball Tree nearest-neighbor index: a
// metric-space data structure that organizes a fixed set of points into a
// hierarchy of bounding balls so that batch k-nearest-neighbor queries can
// prune large portions of the search space instead of scanning every point.
//
// Construction is two explicit steps — New validates inputs and allocates
// the tree, Build performs the recursive partitioning — followed by any
// number of read-only Query calls. The index is immutable once built: there
// is no incremental insert or delete, and building and querying must not
// overlap.
//
// Basic usage:
//
//	t, err := balltree.New(points, n, dims, balltree.Euclidean, 40)
//	if err != nil {
//		// ...
//	}
//	if err := t.Build(); err != nil {
//		// ...
//	}
//	idx, dist, err := t.Query(queries, q, 5)
//	// idx and dist are flat q*5 buffers; idx[i*5:(i+1)*5] and
//	// dist[i*5:(i+1)*5] hold the 5 nearest neighbors of query row i, in
//	// heap order: the first entry of each row is the farthest of the five,
//	// and the remaining entries carry no further ordering guarantee.
//
// # Metrics
//
// Three metrics are supported: Euclidean (default), Manhattan, and Hamming.
// An unrecognized Metric value falls back to Euclidean rather than erroring.
//
// # Concurrency
//
// Build is single-threaded: the recursive partition mutates a shared
// permutation array across sibling subtrees and is not safe to parallelize.
// Once Build returns, the tree is read-only and Query may be called from
// multiple goroutines concurrently; QueryParallel additionally parallelizes
// across the rows of a single batch call.
package balltree
