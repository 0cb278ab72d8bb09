// Package minmax provides min and max selection over values of mixed integer
// signedness and width, with reference-preserving variants.
//
// Two surfaces are offered:
//
//   - A generic surface (Min, Max, MinRef, MaxRef, MinFunc, MaxFunc) for
//     arguments sharing one type. MinRef and MaxRef return a pointer that
//     aliases the winning argument, so the caller can mutate it in place.
//   - A tagged-union surface (MinOf, MaxOf) over Value, for arguments of
//     differing kinds. Comparisons between signed and unsigned integers are
//     numerically exact: -2 is lower than 0u even though -2 reinterpreted as
//     unsigned is huge.
//
// Mixed-kind selections return a value of the unified kind (see Common), not
// a reference to any argument:
//
//	v := minmax.MinOf(minmax.Of(-2), minmax.Of(uint(0)), minmax.Of(uint(7)))
//	v.Kind()               // Uint
//	v.Equal(minmax.Of(-2)) // true
//
// Same-kind references stay references:
//
//	a, b := 42, 100
//	minmax.MaxOf(minmax.Ref(&a), minmax.Ref(&b)).Add(1) // b == 101
//
// Every function is pure apart from writes through references the caller
// explicitly asks for, and is safe for concurrent use.
//
// Ties keep the later argument.
package minmax
