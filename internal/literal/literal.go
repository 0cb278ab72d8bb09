// Package literal parses and formats typed number literals.
//
// A literal is an optional '&', a number and an optional kind suffix:
//
//	-2        int
//	0u        uint
//	7u8       uint8 (also i8 i16 i32 i64 u16 u32 u64 uptr)
//	1.5       float64
//	1.5f32    float32
//	0x1fu64   uint64, hex (0o and 0b prefixes work too)
//	&3        int, held in a fresh mutable variable (minmax.Var)
//
// Literals are range-checked against their kind: 256u8 is an error, not 0.
package literal

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/xroche/enhancedminmax/minmax"
)

// Error describes a literal that could not be parsed.
type Error struct {
	Input   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid literal %q: %s", e.Input, e.Message)
}

// suffixes in match order: longer suffixes first so "u8" is not read as "u".
var suffixes = []struct {
	text string
	kind minmax.Kind
}{
	{"uptr", minmax.Uintptr},
	{"u16", minmax.Uint16},
	{"u32", minmax.Uint32},
	{"u64", minmax.Uint64},
	{"i16", minmax.Int16},
	{"i32", minmax.Int32},
	{"i64", minmax.Int64},
	{"f32", minmax.Float32},
	{"f64", minmax.Float64},
	{"u8", minmax.Uint8},
	{"i8", minmax.Int8},
	{"u", minmax.Uint},
}

// Parse parses a single literal. Input is NFKC-normalized first, so
// full-width digits and signs are accepted.
func Parse(s string) (minmax.Value, error) {
	body := strings.TrimSpace(norm.NFKC.String(s))
	ref := strings.HasPrefix(body, "&")
	if ref {
		body = body[1:]
	}
	if body == "" {
		return minmax.Value{}, &Error{Input: s, Message: "empty"}
	}

	num, kind, explicit := splitSuffix(body)
	if num == "" {
		return minmax.Value{}, &Error{Input: s, Message: "missing number"}
	}
	if !explicit {
		kind = minmax.Int
		if looksFloat(num) {
			kind = minmax.Float64
		}
	}

	var (
		v   minmax.Value
		err error
	)
	if kind.IsFloat() {
		v, err = parseFloat(num, kind)
	} else {
		v, err = parseInteger(num, kind)
	}
	if err != nil {
		return minmax.Value{}, &Error{Input: s, Message: err.Error()}
	}

	if ref {
		return minmax.Var(v), nil
	}
	return v, nil
}

// ParseAll parses every literal, reporting the 1-based position of the first
// failure.
func ParseAll(args []string) ([]minmax.Value, error) {
	values := make([]minmax.Value, 0, len(args))
	for i, arg := range args {
		v, err := Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func isHex(num string) bool {
	n := strings.TrimLeft(num, "+-")
	return strings.HasPrefix(n, "0x") || strings.HasPrefix(n, "0X")
}

func splitSuffix(body string) (string, minmax.Kind, bool) {
	hex := isHex(body)
	for _, sfx := range suffixes {
		if hex && sfx.kind.IsFloat() {
			// f32/f64 are hex digits there.
			continue
		}
		if strings.HasSuffix(body, sfx.text) {
			return strings.TrimSuffix(body, sfx.text), sfx.kind, true
		}
	}
	return body, minmax.Invalid, false
}

func looksFloat(num string) bool {
	if isHex(num) {
		return false
	}
	return strings.ContainsAny(num, ".eE")
}

func parseInteger(num string, kind minmax.Kind) (minmax.Value, error) {
	n, ok := new(big.Int).SetString(num, 0)
	if !ok {
		return minmax.Value{}, fmt.Errorf("not an integer")
	}

	lo, hi := bounds(kind)
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return minmax.Value{}, fmt.Errorf("out of range for %s", kind)
	}

	if kind.IsSigned() {
		return minmax.Of(n.Int64()).Convert(kind), nil
	}
	return minmax.Of(n.Uint64()).Convert(kind), nil
}

func bounds(kind minmax.Kind) (*big.Int, *big.Int) {
	w := uint(kind.Bits())
	one := big.NewInt(1)
	if kind.IsSigned() {
		hi := new(big.Int).Lsh(one, w-1)
		lo := new(big.Int).Neg(hi)
		return lo, hi.Sub(hi, one)
	}
	hi := new(big.Int).Lsh(one, w)
	return new(big.Int), hi.Sub(hi, one)
}

func parseFloat(num string, kind minmax.Kind) (minmax.Value, error) {
	f, err := strconv.ParseFloat(num, kind.Bits())
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return minmax.Value{}, numErr.Err
		}
		return minmax.Value{}, err
	}
	return minmax.Of(f).Convert(kind), nil
}

// Format returns the literal that Parse reads back as v, including the '&'
// of a reference.
func Format(v minmax.Value) string {
	var b strings.Builder
	if v.IsRef() {
		b.WriteByte('&')
	}
	text := v.String()
	b.WriteString(text)
	b.WriteString(Suffix(v.Kind(), text))
	return b.String()
}

// Suffix returns the kind suffix Format appends to text.
func Suffix(kind minmax.Kind, text string) string {
	switch kind {
	case minmax.Int:
		return ""
	case minmax.Float64:
		if looksFloat(text) {
			return ""
		}
		return "f64"
	}
	for _, sfx := range suffixes {
		if sfx.kind == kind {
			return sfx.text
		}
	}
	return ""
}
