package internal

type KnotVec []float64

func (this KnotVec) Clone() KnotVec {
	return append(KnotVec(nil), this...)
}

func (this KnotVec) Domain() (min, max float64) {
	return this[0], this[len(this)-1]
}

// Map a parameter in [0,1] onto the knot domain
func (this KnotVec) FromUnit(t float64) float64 {
	min, max := this.Domain()
	return min + t*(max-min)
}

// Find the span on the knot vector without supplying n
//
// **params**
// + integer degree of function
// + float parameter
//
// **returns**
// + the index of the knot span
func (this KnotVec) Span(degree int, u float64) int {
	n := len(this) - degree - 2
	return this.SpanGivenN(n, degree, u)
}

// Find the span of the given parameter; parameters outside the domain
// fall into the first or last span
// (corresponds to algorithm 2.1 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + integer number of basis functions - 1 = knots.length - degree - 2
// + integer degree of function
// + parameter
//
// **returns**
// + the index of the knot span
func (this KnotVec) SpanGivenN(n int, degree int, u float64) int {
	if u >= this[n+1] {
		return n
	}

	if u < this[degree] {
		return degree
	}

	low, high := degree, n+1
	mid := (low + high) / 2

	for u < this[mid] || u >= this[mid+1] {
		if u < this[mid] {
			high = mid
		} else {
			low = mid
		}

		mid = (low + high) / 2
	}

	return mid
}

// A valid knot vector is clamped (degree+1 repeats at both ends),
// nondecreasing and has a non-empty domain.
func (this KnotVec) IsValid(degree int) bool {
	if len(this) < (degree+1)*2 {
		return false
	}

	rep := this[0]
	for _, knot := range this[:degree+1] {
		if knot-rep > Epsilon || rep-knot > Epsilon {
			return false
		}
	}

	rep = this[len(this)-1]
	for _, knot := range this[len(this)-degree-1:] {
		if knot-rep > Epsilon || rep-knot > Epsilon {
			return false
		}
	}

	if min, max := this.Domain(); max-min < Epsilon {
		return false
	}

	return this.IsNonDecreasing()
}

func (this KnotVec) IsNonDecreasing() bool {
	rep := this[0]
	for _, knot := range this[1:] {
		if knot < rep-Epsilon {
			return false
		}
		rep = knot
	}
	return true
}
