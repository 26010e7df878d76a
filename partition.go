package balltree

import "math/rand"

// quickselect rearranges values[lo..hi] (and perm[lo..hi] in lockstep) so
// that values[k] holds the element that would occupy position k if the
// range were fully sorted, every element at an index < k is <= values[k],
// and every element at an index > k is >= values[k]. This is the classic
// quickselect-via-Hoare-partition algorithm (the same contract as C++'s
// std::nth_element), and it is what gives Build's median split its exact
// m/(n-m) count even when many projected values tie: the split is
// determined by index position, not by value, so duplicate projections
// cannot shift the count to one side.
func quickselect(values []float64, perm []int, lo, hi, k int, rng *rand.Rand) {
	for lo < hi {
		pivotIdx := lo + rng.Intn(hi-lo+1)
		pivot := values[pivotIdx]
		p := hoarePartitionAroundValue(values, perm, lo, hi, pivot)
		if k <= p {
			hi = p
		} else {
			lo = p + 1
		}
	}
}

// hoarePartitionAroundValue partitions values[lo..hi] around pivot using
// Hoare's two-pointer scheme (strict comparisons, pre-increment/decrement
// loop heads), swapping perm in
// lockstep. It returns an index p such that values[lo..p] <= pivot and
// values[p+1..hi] >= pivot.
func hoarePartitionAroundValue(values []float64, perm []int, lo, hi int, pivot float64) int {
	i := lo - 1
	j := hi + 1
	for {
		for {
			i++
			if values[i] >= pivot {
				break
			}
		}
		for {
			j--
			if values[j] <= pivot {
				break
			}
		}
		if i >= j {
			return j
		}
		values[i], values[j] = values[j], values[i]
		perm[i], perm[j] = perm[j], perm[i]
	}
}
