package minmax

// candidate is the provisional winner of a reduction.
//
// When a step mixes signed and unsigned integers the winner is carried in
// the unified (usually unsigned) kind and tagged with the signedness it had
// before, so the next step can compare against the signed reading of the
// payload instead of a huge unsigned one.
type candidate struct {
	value  Value
	signed bool // original signedness of value
	tagged bool // a signed/unsigned mix happened somewhere below
	index  int  // position of the winning argument
}

// findLowest returns the argument less orders first among head and rest,
// reducing right to left. Ties keep the right-hand operand.
func findLowest(less Comparator, head Value, rest []Value) candidate {
	if len(rest) == 0 {
		return candidate{value: head, signed: head.kind.IsSigned()}
	}

	right := findLowest(less, rest[0], rest[1:])
	right.index++

	if right.tagged {
		against := right.value
		if right.signed {
			against = against.reinterpretSigned()
		}
		c := Common(head.kind, right.value.kind)
		if less(head, against) {
			return tagged(head.Convert(c), head.kind.IsSigned(), 0)
		}
		return tagged(against.Convert(c), right.signed, right.index)
	}

	lower := less(head, right.value)
	hk, rk := head.kind, right.value.kind
	if hk.Integral() && rk.Integral() && hk.IsSigned() != rk.IsSigned() {
		c := Common(hk, rk)
		if lower {
			return tagged(head.Convert(c), hk.IsSigned(), 0)
		}
		return tagged(right.value.Convert(c), rk.IsSigned(), right.index)
	}

	winner, index := right.value, right.index
	if lower {
		winner, index = head, 0
	}
	switch {
	case hk != rk:
		winner = winner.Convert(Common(hk, rk))
	case head.cell == nil || right.value.cell == nil:
		// A reference only survives a step against another reference.
		winner = winner.Detach()
	}
	return candidate{value: winner, signed: winner.kind.IsSigned(), index: index}
}

func tagged(v Value, signed bool, index int) candidate {
	return candidate{value: v, signed: signed, tagged: v.kind.Integral(), index: index}
}

// lowest is findLowest for arguments of one type: no unification or tagging
// is needed, so it only tracks the winning index.
func lowest[T any](less func(l, r T) bool, head T, rest []T) int {
	if len(rest) == 0 {
		return 0
	}
	right := lowest(less, rest[0], rest[1:]) + 1
	if less(head, rest[right-1]) {
		return 0
	}
	return right
}
