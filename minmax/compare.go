package minmax

// Comparator reports whether l is strictly ordered before r.
type Comparator func(l, r Value) bool

var (
	_ Comparator = Lower
	_ Comparator = Higher
)

// Lower reports whether l is strictly less than r.
//
// Integers of differing signedness are compared as mathematical integers: a
// negative signed operand is lower than any unsigned one, otherwise both
// operands are compared in HighestUnsigned of their kinds. Any other pair is
// compared natively after unification to Common.
func Lower(l, r Value) bool {
	lk, rk := l.kind, r.kind
	switch {
	case !lk.Integral() || !rk.Integral():
		c := Common(lk, rk)
		return l.Convert(c).Float64() < r.Convert(c).Float64()
	case lk.IsSigned() == rk.IsSigned():
		if lk.IsSigned() {
			return l.Int64() < r.Int64()
		}
		return l.Uint64() < r.Uint64()
	case lk.IsSigned():
		if l.Int64() < 0 {
			return true
		}
		h := HighestUnsigned(lk, rk)
		return l.Convert(h).Uint64() < r.Convert(h).Uint64()
	default:
		if r.Int64() < 0 {
			return false
		}
		h := HighestUnsigned(lk, rk)
		return l.Convert(h).Uint64() < r.Convert(h).Uint64()
	}
}

// Higher reports whether l is strictly greater than r. It is Lower with its
// operands swapped, which lets one reduction serve both Min and Max.
func Higher(l, r Value) bool {
	return Lower(r, l)
}

// LowerThan reports whether l < r for any two number types, with exact
// results across signedness.
func LowerThan[L, R Number](l L, r R) bool {
	return Lower(Of(l), Of(r))
}

// HigherThan reports whether l > r for any two number types.
func HigherThan[L, R Number](l L, r R) bool {
	return Higher(Of(l), Of(r))
}
