package scalar

// CoeffStore is the storage capability behind an exact scalar's coefficient
// list. Two families implement it: fixed-size array types (Coeffs1 through
// Coeffs8), which have value semantics and are usable as tensor and matrix
// elements, and the growable CoeffsVar, used when the cyclotomic order is
// only known at runtime.
//
// A store of length L holds the first L coefficients of an element of
// Q[omega] with omega a primitive 2L-th root of unity. Fixed stores
// re-express smaller orders by padding: a value of order N is held at
// indices i*pad with pad = L/N.
type CoeffStore[C any] interface {
	// Len returns the number of stored coefficients.
	Len() int
	// At returns the coefficient at index i.
	At(i int) Rational
	// Alloc reports whether a value of the given cyclotomic order is
	// representable, and if so the index padding factor. The resulting
	// storage length is order*pad.
	Alloc(order int) (pad int, ok bool)
	// Make packs a full-length coefficient slice into storage. The slice
	// length must match the length reported by a successful Alloc.
	Make(rs []Rational) C
}

// Coeffs1 stores scalars of order 1, i.e. plain rationals.
type Coeffs1 [1]Rational

func (Coeffs1) Len() int            { return 1 }
func (c Coeffs1) At(i int) Rational { return c[i] }

func (Coeffs1) Alloc(order int) (int, bool) { return fixedAlloc(1, order) }

func (Coeffs1) Make(rs []Rational) Coeffs1 {
	var c Coeffs1
	fixedPack(c[:], rs)
	return c
}

// Coeffs2 stores scalars of order up to 2 (Gaussian rationals).
type Coeffs2 [2]Rational

func (Coeffs2) Len() int            { return 2 }
func (c Coeffs2) At(i int) Rational { return c[i] }

func (Coeffs2) Alloc(order int) (int, bool) { return fixedAlloc(2, order) }

func (Coeffs2) Make(rs []Rational) Coeffs2 {
	var c Coeffs2
	fixedPack(c[:], rs)
	return c
}

// Coeffs4 stores scalars of order up to 4. This is the workhorse order for
// Clifford+T diagrams: it represents all powers of sqrt(2) and all
// eighth-turn phases exactly.
type Coeffs4 [4]Rational

func (Coeffs4) Len() int            { return 4 }
func (c Coeffs4) At(i int) Rational { return c[i] }

func (Coeffs4) Alloc(order int) (int, bool) { return fixedAlloc(4, order) }

func (Coeffs4) Make(rs []Rational) Coeffs4 {
	var c Coeffs4
	fixedPack(c[:], rs)
	return c
}

// Coeffs8 stores scalars of order up to 8.
type Coeffs8 [8]Rational

func (Coeffs8) Len() int            { return 8 }
func (c Coeffs8) At(i int) Rational { return c[i] }

func (Coeffs8) Alloc(order int) (int, bool) { return fixedAlloc(8, order) }

func (Coeffs8) Make(rs []Rational) Coeffs8 {
	var c Coeffs8
	fixedPack(c[:], rs)
	return c
}

// CoeffsVar stores scalars of arbitrary order chosen at runtime. It does not
// have value semantics; use the fixed stores for tensor elements.
type CoeffsVar []Rational

func (c CoeffsVar) Len() int          { return len(c) }
func (c CoeffsVar) At(i int) Rational { return c[i] }

func (CoeffsVar) Alloc(order int) (int, bool) {
	if order <= 0 {
		return 0, false
	}
	return 1, true
}

func (CoeffsVar) Make(rs []Rational) CoeffsVar {
	out := make(CoeffsVar, len(rs))
	copy(out, rs)
	return out
}

func fixedAlloc(capacity, order int) (int, bool) {
	if order <= 0 || capacity%order != 0 {
		return 0, false
	}
	return capacity / order, true
}

func fixedPack(dst, src []Rational) {
	if len(src) != len(dst) {
		panic("scalar: coefficient slice does not match storage length")
	}
	copy(dst, src)
}
