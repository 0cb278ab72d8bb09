package minmax

import "cmp"

// Select reduces the arguments with less and returns the winner together with
// its argument position (0 for first). The winner is a reference when every
// argument is a reference of the same kind, and a detached value of the
// unified kind otherwise.
func Select(less Comparator, first Value, rest ...Value) (Value, int) {
	c := findLowest(less, first, rest)
	return c.value, c.index
}

// MinOf returns the least argument under Lower.
func MinOf(first Value, rest ...Value) Value {
	v, _ := Select(Lower, first, rest...)
	return v
}

// MaxOf returns the greatest argument under Lower.
func MaxOf(first Value, rest ...Value) Value {
	v, _ := Select(Higher, first, rest...)
	return v
}

// Min returns the least argument under the native ordering of T.
func Min[T cmp.Ordered](first T, rest ...T) T {
	return pick(first, rest, lowest(nativeLower[T], first, rest))
}

// Max returns the greatest argument under the native ordering of T.
func Max[T cmp.Ordered](first T, rest ...T) T {
	return pick(first, rest, lowest(nativeHigher[T], first, rest))
}

// MinRef returns the pointer to the least pointee. The result aliases one of
// the arguments, so writing through it updates the caller's variable.
func MinRef[T cmp.Ordered](first *T, rest ...*T) *T {
	return pick(first, rest, lowest(func(l, r *T) bool { return *l < *r }, first, rest))
}

// MaxRef returns the pointer to the greatest pointee.
func MaxRef[T cmp.Ordered](first *T, rest ...*T) *T {
	return pick(first, rest, lowest(func(l, r *T) bool { return *r < *l }, first, rest))
}

// MinFunc returns the least argument under less.
func MinFunc[T any](less func(a, b T) bool, first T, rest ...T) T {
	return pick(first, rest, lowest(less, first, rest))
}

// MaxFunc returns the greatest argument under less.
func MaxFunc[T any](less func(a, b T) bool, first T, rest ...T) T {
	return pick(first, rest, lowest(func(l, r T) bool { return less(r, l) }, first, rest))
}

// Take moves *p out: it returns the pointee and resets *p to the zero value.
//
//	best := minmax.Take(minmax.MaxRef(&a, &b))
func Take[T any](p *T) T {
	v := *p
	var zero T
	*p = zero
	return v
}

func nativeLower[T cmp.Ordered](l, r T) bool { return l < r }

func nativeHigher[T cmp.Ordered](l, r T) bool { return r < l }

func pick[T any](first T, rest []T, i int) T {
	if i == 0 {
		return first
	}
	return rest[i-1]
}
