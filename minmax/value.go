package minmax

import (
	"math"
	"reflect"
	"strconv"
)

// Value is a number tagged with its Kind.
//
// A Value built with Of is detached: it holds a copy. A Value built with Ref
// or Var is a reference: reads load from, and Add/Set/Take write to, the
// storage behind it. The zero Value has kind Invalid.
type Value struct {
	kind    Kind
	payload uint64
	cell    cell
}

// cell is the storage behind a reference Value. Payloads are normalized for
// the kind of the Value owning the cell.
type cell interface {
	load() uint64
	store(payload uint64)
}

type ptrCell[T Number] struct {
	p    *T
	kind Kind
}

func (c ptrCell[T]) load() uint64 { return payloadOf(*c.p, c.kind) }

func (c ptrCell[T]) store(payload uint64) { *c.p = fromPayload[T](payload, c.kind) }

type varCell struct {
	payload uint64
}

func (c *varCell) load() uint64 { return c.payload }

func (c *varCell) store(payload uint64) { c.payload = payload }

// Of returns a detached Value holding v.
func Of[T Number](v T) Value {
	k := kindOf[T]()
	return Value{kind: k, payload: payloadOf(v, k)}
}

// Ref returns a reference Value aliasing *p.
func Ref[T Number](p *T) Value {
	k := kindOf[T]()
	return Value{kind: k, cell: ptrCell[T]{p: p, kind: k}}
}

// Var allocates fresh storage initialized with v and returns a reference to
// it. It is the tagged-union counterpart of declaring a variable.
func Var(v Value) Value {
	return Value{kind: v.kind, cell: &varCell{payload: v.bits()}}
}

// As converts v to T with Go conversion rules.
func As[T Number](v Value) T {
	k := kindOf[T]()
	return fromPayload[T](v.Convert(k).payload, k)
}

func kindOf[T Number]() Kind {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uintptr:
		return Uintptr
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	}
	return Invalid
}

func payloadOf[T Number](v T, k Kind) uint64 {
	switch {
	case k.IsSigned():
		return uint64(int64(v))
	case k.IsFloat():
		return math.Float64bits(float64(v))
	}
	return uint64(v)
}

func fromPayload[T Number](payload uint64, k Kind) T {
	switch {
	case k.IsSigned():
		return T(int64(payload))
	case k.IsFloat():
		return T(math.Float64frombits(payload))
	}
	return T(payload)
}

// normalize truncates x to the width of k, then sign- or zero-extends it.
func normalize(x uint64, k Kind) uint64 {
	w := k.Bits()
	if w == 0 || w >= 64 {
		return x
	}
	mask := uint64(1)<<w - 1
	x &= mask
	if k.IsSigned() && x&(uint64(1)<<(w-1)) != 0 {
		x |= ^mask
	}
	return x
}

func (v Value) bits() uint64 {
	if v.cell != nil {
		return v.cell.load()
	}
	return v.payload
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsRef reports whether v aliases storage.
func (v Value) IsRef() bool { return v.cell != nil }

// Detach returns a copy of v that no longer aliases storage.
func (v Value) Detach() Value {
	return Value{kind: v.kind, payload: v.bits()}
}

// Int64 returns v as an int64. Unsigned payloads are reinterpreted and floats
// truncated, as a Go conversion would.
func (v Value) Int64() int64 {
	if v.kind.IsFloat() {
		return int64(v.Float64())
	}
	return int64(v.bits())
}

// Uint64 returns v as a uint64, with Go conversion rules.
func (v Value) Uint64() uint64 {
	if v.kind.IsFloat() {
		return uint64(v.Float64())
	}
	return v.bits()
}

// Float64 returns v as a float64.
func (v Value) Float64() float64 {
	switch {
	case v.kind.IsFloat():
		return math.Float64frombits(v.bits())
	case v.kind.IsSigned():
		return float64(int64(v.bits()))
	}
	return float64(v.bits())
}

// Convert returns a detached Value of kind k holding v converted as Go would
// convert between the corresponding types.
func (v Value) Convert(k Kind) Value {
	p := v.bits()
	switch {
	case v.kind == k:
	case k.IsFloat():
		f := v.Float64()
		if k == Float32 {
			f = float64(float32(f))
		}
		p = math.Float64bits(f)
	case v.kind.IsFloat():
		f := math.Float64frombits(p)
		if k.IsSigned() {
			p = uint64(int64(f))
		} else {
			p = uint64(f)
		}
		p = normalize(p, k)
	default:
		p = normalize(p, k)
	}
	return Value{kind: k, payload: p}
}

// reinterpretSigned returns the payload of v read as the signed kind of the
// same width.
func (v Value) reinterpretSigned() Value {
	k := v.kind.ToSigned()
	return Value{kind: k, payload: normalize(v.bits(), k)}
}

// Equal reports whether v and o hold the same number once unified to their
// common kind. Unification is the one the selection uses, so a mixed-kind
// result still equals its original argument: MinOf(Of(-2), Of(uint(0)))
// is a uint that equals Of(-2).
func (v Value) Equal(o Value) bool {
	c := Common(v.kind, o.kind)
	a, b := v.Convert(c), o.Convert(c)
	if c.IsFloat() {
		return a.Float64() == b.Float64()
	}
	return a.payload == b.payload
}

// Add adds delta to v, wrapping at the width of its kind. A reference is
// updated in place and returned; a detached Value yields a new Value.
func (v Value) Add(delta int64) Value {
	var p uint64
	if v.kind.IsFloat() {
		f := v.Float64() + float64(delta)
		if v.kind == Float32 {
			f = float64(float32(f))
		}
		p = math.Float64bits(f)
	} else {
		p = normalize(v.bits()+uint64(delta), v.kind)
	}
	if v.cell != nil {
		v.cell.store(p)
		return v
	}
	return Value{kind: v.kind, payload: p}
}

// Set stores x, converted to the kind of v, into the storage v aliases.
// It reports false, and does nothing, when v is detached.
func (v Value) Set(x Value) bool {
	if v.cell == nil {
		return false
	}
	v.cell.store(x.Convert(v.kind).payload)
	return true
}

// Take moves the number out of v: it returns a detached copy and, when v is
// a reference, resets the aliased storage to zero.
func (v Value) Take() Value {
	d := v.Detach()
	if v.cell != nil {
		v.cell.store(0)
	}
	return d
}

// String formats the number in v without any kind suffix.
func (v Value) String() string {
	switch {
	case v.kind.IsSigned():
		return strconv.FormatInt(v.Int64(), 10)
	case v.kind.Integral():
		return strconv.FormatUint(v.Uint64(), 10)
	case v.kind.IsFloat():
		return strconv.FormatFloat(v.Float64(), 'g', -1, v.kind.Bits())
	}
	return "<invalid>"
}
