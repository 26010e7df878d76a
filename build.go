package balltree

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// buildNode recursively constructs the subtree rooted at node v over the
// permutation range perm[lo..hi] (inclusive). It is the
// direct analogue of the recursive ball-splitting step used by the classic
// double-farthest-point construction: pick a random point, walk to the
// point farthest from it, walk again to the point farthest from that, and
// split on the projection onto the line between the two.
func (t *Index) buildNode(v, lo, hi int) {
	if v >= len(t.nodes) {
		panic(fmt.Sprintf("balltree: node index %d exceeds allocated capacity %d (height=%d) — internal invariant violated", v, len(t.nodes), t.height))
	}

	count := hi - lo + 1
	if count <= t.leafSize {
		radius := t.computeCenterAndRadius(v, lo, hi)
		t.nodes[v] = node{dataLo: lo, dataHi: hi, isLeaf: true, radius: radius}
		return
	}

	r := lo + t.rng.Intn(count)
	x0 := t.rowAt(t.perm[r])

	x1Row := t.argmaxRow(lo, hi, x0)
	x1 := t.rowAt(x1Row)

	x2Row := t.argmaxRow(lo, hi, x1)
	x2 := t.rowAt(x2Row)

	u := make([]float64, t.dims)
	for d := 0; d < t.dims; d++ {
		u[d] = x1[d] - x2[d]
	}

	proj := make([]float64, count)
	for i := 0; i < count; i++ {
		proj[i] = floats.Dot(t.rowAt(t.perm[lo+i]), u)
	}

	m := count / 2
	quickselect(proj, t.perm[lo:hi+1], 0, count-1, m-1, t.rng)

	radius := t.computeCenterAndRadius(v, lo, hi)
	t.nodes[v] = node{dataLo: lo, dataHi: hi, isLeaf: false, radius: radius}

	mid := lo + m - 1
	t.buildNode(2*v+1, lo, mid)
	t.buildNode(2*v+2, mid+1, hi)
}

// rowAt returns the dims-length slice of t.points for underlying row index
// row (i.e. not a perm-indexed position, the raw point index).
func (t *Index) rowAt(row int) []float64 {
	return t.points[row*t.dims : (row+1)*t.dims]
}

// argmaxRow returns the underlying row index, among perm[lo..hi], of the
// point farthest from query. Ties keep the first point encountered, so
// results are deterministic for a fixed permutation and RNG seed.
func (t *Index) argmaxRow(lo, hi int, query []float64) int {
	rows := t.perm[lo : hi+1]
	dists := t.kernel.PairwiseToOne(t.points, t.dims, rows, query)

	best := 0
	for i := 1; i < len(dists); i++ {
		if dists[i] > dists[best] {
			best = i
		}
	}
	return rows[best]
}

// computeCenterAndRadius fills node v's slot in t.centers with the mean of
// perm[lo..hi] and returns the radius: the farthest distance, under the
// index's metric, from that mean to any point in the range.
func (t *Index) computeCenterAndRadius(v, lo, hi int) float64 {
	dims := t.dims
	center := t.centers[v*dims : (v+1)*dims]
	for d := range center {
		center[d] = 0
	}

	for i := lo; i <= hi; i++ {
		floats.Add(center, t.rowAt(t.perm[i]))
	}
	floats.Scale(1/float64(hi-lo+1), center)

	rows := t.perm[lo : hi+1]
	dists := t.kernel.PairwiseToOne(t.points, dims, rows, center)

	var radius float64
	for _, d := range dists {
		if d > radius {
			radius = d
		}
	}
	return radius
}
