package vecmap

import "math"

// anyTable is the type-erased face of one concrete table instantiation. The
// binding is chosen once at construction and never re-inferred; every call
// coerces at this boundary and forwards.
type anyTable interface {
	setValues(keys, values any) error
	findValues(keys any) (any, error)
	hasKey(key any) (bool, error)
	erase(keys any) error
	keys() any
	values() any
	data() any
	size() int
	clear()
	rehash(n int)
	bucketCount() int
}

// bound adapts one table[K, V] instantiation to the anyTable interface.
// K is the internal key representation, X the external key scalar it
// materializes as (they differ only for the float binding, which stores raw
// IEEE-754 bits so NaN keys stay findable), V the value scalar.
type bound[K comparable, X comparable, V any] struct {
	tab *table[K, V]

	keyIn   func(any) ([]K, error)
	keyOut  func(K) X
	valIn   func(any) ([]V, error)
	missing V
}

func (b *bound[K, X, V]) setValues(keys, values any) error {
	ks, err := b.keyIn(keys)
	if err != nil {
		return err
	}

	vs, err := b.valIn(values)
	if err != nil {
		return err
	}

	// Mismatched vectors were already reported; insert the min-length
	// prefix. Later occurrences of a duplicate key win.
	n := min(len(ks), len(vs))
	for i := 0; i < n; i++ {
		b.tab.set(ks[i], vs[i])
	}

	return nil
}

func (b *bound[K, X, V]) findValues(keys any) (any, error) {
	ks, err := b.keyIn(keys)
	if err != nil {
		return nil, err
	}

	out := make([]V, len(ks))
	for i, k := range ks {
		v, ok := b.tab.get(k)
		if !ok {
			v = b.missing
		}

		out[i] = v
	}

	return out, nil
}

func (b *bound[K, X, V]) hasKey(key any) (bool, error) {
	ks, err := b.keyIn(asVector(key))
	if err != nil {
		return false, err
	}
	if len(ks) != 1 {
		return false, &UnsupportedKindError{Role: "key", Value: key}
	}

	return b.tab.has(ks[0]), nil
}

func (b *bound[K, X, V]) erase(keys any) error {
	ks, err := b.keyIn(keys)
	if err != nil {
		return err
	}

	for _, k := range ks {
		b.tab.erase(k)
	}

	return nil
}

func (b *bound[K, X, V]) keys() any {
	out := make([]X, 0, b.tab.size)
	b.tab.each(func(k K, _ V) {
		out = append(out, b.keyOut(k))
	})

	return out
}

func (b *bound[K, X, V]) values() any {
	out := make([]V, 0, b.tab.size)
	b.tab.each(func(_ K, v V) {
		out = append(out, v)
	})

	return out
}

func (b *bound[K, X, V]) data() any {
	out := make(map[X]V, b.tab.size)
	b.tab.each(func(k K, v V) {
		out[b.keyOut(k)] = v
	})

	return out
}

func (b *bound[K, X, V]) size() int {
	return int(b.tab.size)
}

func (b *bound[K, X, V]) clear() {
	b.tab.clear()
}

func (b *bound[K, X, V]) rehash(n int) {
	b.tab.rehash(n)
}

func (b *bound[K, X, V]) bucketCount() int {
	return int(b.tab.capacity)
}

func intKeyed[V any](valIn func(any) ([]V, error), missing V) func(capacity int) anyTable {
	return func(capacity int) anyTable {
		return &bound[int64, int64, V]{
			tab:     newTable[int64, V](capacity, hashInt64),
			keyIn:   coerceInt64s,
			keyOut:  func(k int64) int64 { return k },
			valIn:   valIn,
			missing: missing,
		}
	}
}

func floatKeyed[V any](valIn func(any) ([]V, error), missing V) func(capacity int) anyTable {
	return func(capacity int) anyTable {
		return &bound[uint64, float64, V]{
			tab:     newTable[uint64, V](capacity, hashUint64),
			keyIn:   coerceFloatBits,
			keyOut:  math.Float64frombits,
			valIn:   valIn,
			missing: missing,
		}
	}
}

func stringKeyed[V any](valIn func(any) ([]V, error), missing V) func(capacity int) anyTable {
	return func(capacity int) anyTable {
		return &bound[string, string, V]{
			tab:     newTable[string, V](capacity, hashString),
			keyIn:   coerceStrings,
			keyOut:  func(k string) string { return k },
			valIn:   valIn,
			missing: missing,
		}
	}
}

// bindings holds the constructor for every concrete instantiation in the
// closed domain. The first index is the key kind, the second the value kind;
// a kind pair absent here is unsupported by construction.
var bindings = map[Kind]map[Kind]func(capacity int) anyTable{
	KindInt: {
		KindBool:   intKeyed(coerceBools, MissingBool),
		KindInt:    intKeyed(coerceInt64s, MissingInt),
		KindFloat:  intKeyed(coerceFloat64s, MissingFloat),
		KindString: intKeyed(coerceStrings, MissingString),
	},
	KindFloat: {
		KindBool:   floatKeyed(coerceBools, MissingBool),
		KindInt:    floatKeyed(coerceInt64s, MissingInt),
		KindFloat:  floatKeyed(coerceFloat64s, MissingFloat),
		KindString: floatKeyed(coerceStrings, MissingString),
	},
	KindString: {
		KindBool:   stringKeyed(coerceBools, MissingBool),
		KindInt:    stringKeyed(coerceInt64s, MissingInt),
		KindFloat:  stringKeyed(coerceFloat64s, MissingFloat),
		KindString: stringKeyed(coerceStrings, MissingString),
	},
}
