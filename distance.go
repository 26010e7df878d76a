package balltree

import "gonum.org/v1/gonum/floats"

// Metric identifies one of the distance kernels this package supports.
type Metric string

const (
	// Euclidean is the default metric: sqrt(sum((a_i - b_i)^2)).
	Euclidean Metric = "euclidean"
	// Manhattan is the L1 / city-block metric: sum(|a_i - b_i|).
	Manhattan Metric = "manhattan"
	// Hamming counts the number of unequal coordinates under exact
	// floating-point equality. Not a true metric for non-categorical data
	// unless callers pre-normalize.
	Hamming Metric = "hamming"
)

// distanceKernel computes pointwise and pairwise-to-one distances under a
// single metric. PairwiseToOne is the workhorse during construction: it is
// called once per candidate pivot/argmax pass and once per node's radius
// computation, so implementations batch the per-row work rather than
// leaving the caller to loop over Distance one row at a time. rows holds
// the underlying (pre-permutation) row indices to gather from pts; the
// caller passes a perm sub-slice so the kernel never needs to know about
// the tree's permutation indirection.
type distanceKernel interface {
	// Distance returns the distance between two equal-length vectors.
	Distance(a, b []float64) float64

	// PairwiseToOne returns, for each row index in rows, the distance from
	// that row of the flat row-major buffer pts (dims columns per row) to
	// query.
	PairwiseToOne(pts []float64, dims int, rows []int, query []float64) []float64
}

// resolveMetric maps a Metric name to its kernel. An unrecognized metric
// falls back to Euclidean.
func resolveMetric(m Metric) distanceKernel {
	switch m {
	case Manhattan:
		return manhattanKernel{}
	case Hamming:
		return hammingKernel{}
	case Euclidean:
		return euclideanKernel{}
	default:
		return euclideanKernel{}
	}
}

// euclideanKernel implements the Euclidean (L2) metric.
type euclideanKernel struct{}

func (euclideanKernel) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

func (k euclideanKernel) PairwiseToOne(pts []float64, dims int, rows []int, query []float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = k.Distance(pts[row*dims:(row+1)*dims], query)
	}
	return out
}

// manhattanKernel implements the Manhattan (L1) metric.
type manhattanKernel struct{}

func (manhattanKernel) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

func (k manhattanKernel) PairwiseToOne(pts []float64, dims int, rows []int, query []float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = k.Distance(pts[row*dims:(row+1)*dims], query)
	}
	return out
}

// hammingKernel counts unequal coordinates under exact float64 equality.
// There is no Lp norm for this (it is not a norm of the difference vector),
// so it is a plain comparison loop.
type hammingKernel struct{}

func (hammingKernel) Distance(a, b []float64) float64 {
	var count float64
	for i := range a {
		if a[i] != b[i] {
			count++
		}
	}
	return count
}

func (k hammingKernel) PairwiseToOne(pts []float64, dims int, rows []int, query []float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = k.Distance(pts[row*dims:(row+1)*dims], query)
	}
	return out
}
