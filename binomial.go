package transfinite

import "sync"

var binomCache = struct {
	sync.RWMutex
	values map[[2]int]float64
}{values: make(map[[2]int]float64)}

// binomial returns n choose k. Results are cached; the cache is safe for
// concurrent evaluation.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k == 0 || k == n {
		return 1
	}

	if k > n-k {
		k = n - k
	}

	key := [2]int{n, k}
	binomCache.RLock()
	result, ok := binomCache.values[key]
	binomCache.RUnlock()
	if ok {
		return result
	}

	result = binomialNoCache(n, k)

	binomCache.Lock()
	binomCache.values[key] = result
	binomCache.Unlock()

	return result
}

func binomialNoCache(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k
	}

	r := 1.0
	for d := 1; d <= k; d++ {
		r *= float64(n) / float64(d)
		n--
	}

	return r
}
