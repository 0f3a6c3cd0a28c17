package vecmap

import "math"

// Boundary coercion between external vectors and the bound internal
// representation. Every function either converts the whole vector or fails
// without partial results; mutation only happens after coercion succeeds.

// vecLen reports the length of a vector in the scalar domain, -1 for
// anything else.
func vecLen(v any) int {
	switch v := v.(type) {
	case []bool:
		return len(v)
	case []int64:
		return len(v)
	case []int:
		return len(v)
	case []float64:
		return len(v)
	case []string:
		return len(v)
	}
	return -1
}

// asVector boxes a lone scalar into a one-element vector of its kind, so
// single-key operations share the vector coercion path.
func asVector(v any) any {
	switch v := v.(type) {
	case bool:
		return []bool{v}
	case int:
		return []int{v}
	case int64:
		return []int64{v}
	case float64:
		return []float64{v}
	case string:
		return []string{v}
	}
	return v
}

func coerceInt64s(v any) ([]int64, error) {
	if k := kindOf(v); !k.embedsInto(KindInt) {
		return nil, &CoercionError{From: k, To: KindInt, Index: -1}
	}

	switch v := v.(type) {
	case []int64:
		return v, nil
	case []int:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out, nil
	case []float64:
		out := make([]int64, len(v))
		for i, x := range v {
			if math.IsNaN(x) || x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
				return nil, &CoercionError{From: KindFloat, To: KindInt, Index: i}
			}
			out[i] = int64(x)
		}
		return out, nil
	case []bool:
		out := make([]int64, len(v))
		for i, x := range v {
			if x {
				out[i] = 1
			}
		}
		return out, nil
	}

	return nil, &CoercionError{From: kindOf(v), To: KindInt, Index: -1}
}

func coerceFloat64s(v any) ([]float64, error) {
	if k := kindOf(v); !k.embedsInto(KindFloat) {
		return nil, &CoercionError{From: k, To: KindFloat, Index: -1}
	}

	switch v := v.(type) {
	case []float64:
		return v, nil
	case []int64:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []bool:
		out := make([]float64, len(v))
		for i, x := range v {
			if x {
				out[i] = 1
			}
		}
		return out, nil
	}

	return nil, &CoercionError{From: kindOf(v), To: KindFloat, Index: -1}
}

// coerceFloatBits materializes float keys as raw IEEE-754 bit patterns, the
// internal key representation of the float binding.
func coerceFloatBits(v any) ([]uint64, error) {
	fs, err := coerceFloat64s(v)
	if err != nil {
		return nil, err
	}

	out := make([]uint64, len(fs))
	for i, f := range fs {
		out[i] = math.Float64bits(f)
	}

	return out, nil
}

func coerceStrings(v any) ([]string, error) {
	if s, ok := v.([]string); ok {
		return s, nil
	}
	return nil, &CoercionError{From: kindOf(v), To: KindString, Index: -1}
}

func coerceBools(v any) ([]bool, error) {
	if b, ok := v.([]bool); ok {
		return b, nil
	}
	return nil, &CoercionError{From: kindOf(v), To: KindBool, Index: -1}
}
