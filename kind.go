package vecmap

import (
	"fmt"
	"math"
)

// Kind identifies a scalar kind in the closed domain. Keys may be int, float
// or string; values may additionally be bool.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Sentinels substituted for absent keys by FindValues. Go has no native
// missing encoding, so the int sentinel mirrors the smallest representable
// value and the float sentinel is NaN; string and bool fall back to their
// zero values. HasKey disambiguates a stored sentinel from an absent key.
const (
	MissingInt    int64 = math.MinInt64
	MissingString       = ""
	MissingBool         = false
)

// MissingFloat is NaN and must be tested with math.IsNaN.
var MissingFloat = math.NaN()

// kindOf reports the scalar kind of a vector. []int is accepted as a
// convenience spelling of []int64.
func kindOf(v any) Kind {
	switch v.(type) {
	case []bool:
		return KindBool
	case []int64, []int:
		return KindInt
	case []float64:
		return KindFloat
	case []string:
		return KindString
	}
	return KindInvalid
}

// key reports whether the kind may serve as a key kind.
func (k Kind) key() bool {
	return k == KindInt || k == KindFloat || k == KindString
}

// embedsInto reports the directed embedding graph used by the coercion
// layer: bool embeds into int and float, int into float, and float into int
// only element-wise (zero fractional part, checked during coercion). String
// embeds into nothing.
func (k Kind) embedsInto(target Kind) bool {
	if k == target {
		return true
	}
	switch k {
	case KindBool:
		return target == KindInt || target == KindFloat
	case KindInt:
		return target == KindFloat
	case KindFloat:
		return target == KindInt
	}
	return false
}
