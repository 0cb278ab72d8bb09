package minmax

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Number is the set of types a Value can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind identifies the representation carried by a Value.
type Kind uint8

// Supported kinds. Int, Uint and Uintptr have the platform word size.
const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Uintptr
	Float32
	Float64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uintptr: "uintptr",
	Float32: "float32",
	Float64: "float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[Invalid]
}

// ParseKind returns the kind named by its Go type name ("int8", "uint", ...).
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && Kind(k) != Invalid {
			return Kind(k), true
		}
	}
	return Invalid, false
}

// Integral reports whether k is an integer kind.
func (k Kind) Integral() bool {
	return k >= Int && k <= Uintptr
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= Int && k <= Int64
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// Bits returns the storage width of k.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	case Int, Uint, Uintptr:
		return bits.UintSize
	}
	return 0
}

// ToUnsigned returns the unsigned kind of the same width.
// Kinds that are not signed integers are returned unchanged.
func (k Kind) ToUnsigned() Kind {
	if k.IsSigned() {
		return k + (Uint - Int)
	}
	return k
}

// ToSigned returns the signed kind of the same width.
// Kinds that are not unsigned integers are returned unchanged.
func (k Kind) ToSigned() Kind {
	switch {
	case k == Uintptr:
		return Int
	case k >= Uint && k <= Uint64:
		return k - (Uint - Int)
	}
	return k
}

// rank breaks width ties: fixed-size kinds win over word-sized ones.
func (k Kind) rank() int {
	switch k {
	case Uintptr:
		return 0
	case Int, Uint:
		return 1
	}
	return 2
}

// Common returns the kind two operands are unified to when they meet in a
// selection:
//
//   - any float operand yields the wider float kind;
//   - integers of equal signedness yield the wider kind;
//   - a signed integer yields itself only when strictly wider than the
//     unsigned operand, otherwise the unsigned kind wins.
func Common(a, b Kind) Kind {
	switch {
	case a == b:
		return a
	case a.IsFloat() || b.IsFloat():
		if a == Float64 || b == Float64 {
			return Float64
		}
		return Float32
	case a.IsSigned() == b.IsSigned():
		return wider(a, b)
	}

	s, u := a, b
	if !s.IsSigned() {
		s, u = b, a
	}
	if s.Bits() > u.Bits() {
		return s
	}
	return u
}

func wider(a, b Kind) Kind {
	if a.Bits() != b.Bits() {
		if a.Bits() > b.Bits() {
			return a
		}
		return b
	}
	if a.rank() >= b.rank() {
		return a
	}
	return b
}

// HighestUnsigned returns the unsigned counterpart of the wider of two
// integer kinds. Both positive ranges fit in it, so non-negative operands can
// be compared there without truncation.
func HighestUnsigned(l, r Kind) Kind {
	if l.Bits() >= r.Bits() {
		return l.ToUnsigned()
	}
	return r.ToUnsigned()
}
