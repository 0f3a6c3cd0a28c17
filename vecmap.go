package vecmap

import "go.uber.org/zap"

// Map is a vectorized associative container over a closed set of scalar
// kinds. Construction infers the key kind and value kind from the supplied
// vectors and binds the map to one concrete table instantiation for its
// lifetime; every later call is coerced against that binding and forwarded.
//
// A Map is exclusively owned by its creator. It performs no internal
// locking; concurrent calls on the same Map are the caller's bug.
type Map struct {
	keyKind Kind
	valKind Kind
	tab     anyTable
	logger  *zap.Logger
}

type options struct {
	capacity int
	logger   *zap.Logger
}

type Option func(*options)

// WithCapacity pre-sizes the map for at least n entries. The map still grows
// on demand; this only avoids early rehashing.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used for non-fatal notifications such as
// length-mismatch truncation. Defaults to a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New builds a map from parallel key and value vectors, either of which may
// be empty. Accepted key vectors are []int64, []int, []float64 and []string;
// value vectors may additionally be []bool. Any other type fails with
// *UnsupportedKindError.
//
// Vectors of unequal length are truncated to the shorter one; the map is
// still produced and the truncation is reported through the configured
// logger.
func New(keys, values any, opts ...Option) (*Map, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	keyKind := kindOf(keys)
	if !keyKind.key() {
		return nil, &UnsupportedKindError{Role: "key", Value: keys}
	}

	valKind := kindOf(values)
	if valKind == KindInvalid {
		return nil, &UnsupportedKindError{Role: "value", Value: values}
	}

	capacity := o.capacity
	if n := vecLen(keys); n > capacity {
		capacity = n
	}

	m := &Map{
		keyKind: keyKind,
		valKind: valKind,
		tab:     bindings[keyKind][valKind](capacity),
		logger:  o.logger,
	}

	if err := m.SetValues(keys, values); err != nil {
		return nil, err
	}

	return m, nil
}

// KeyKind reports the bound key kind.
func (m *Map) KeyKind() Kind { return m.keyKind }

// ValueKind reports the bound value kind.
func (m *Map) ValueKind() Kind { return m.valKind }

// Size returns the number of live entries.
func (m *Map) Size() int { return m.tab.size() }

// Empty reports whether the map holds no entries.
func (m *Map) Empty() bool { return m.tab.size() == 0 }

// Clear removes every entry. The binding is preserved; the map keeps
// accepting the same kinds it was constructed with.
func (m *Map) Clear() { m.tab.clear() }

// SetValues upserts entry (keys[i], values[i]) for every position i. Keys
// already present are overwritten; duplicate keys within one call resolve to
// the last occurrence. Vectors of unequal length are truncated to the
// shorter one with a logged warning, matching construction.
func (m *Map) SetValues(keys, values any) error {
	kn, vn := vecLen(keys), vecLen(values)
	if kn >= 0 && vn >= 0 && kn != vn {
		m.logger.Warn("key and value vectors differ in length, truncating",
			zap.Int("keys", kn),
			zap.Int("values", vn),
		)
	}

	return m.tab.setValues(keys, values)
}

// FindValues returns the stored value for every key, position for position,
// substituting the value kind's missing sentinel for absent keys. The result
// is a fresh vector of the bound value kind; empty input yields empty
// output.
func (m *Map) FindValues(keys any) (any, error) {
	return m.tab.findValues(keys)
}

// HasKey reports whether a single key is present.
func (m *Map) HasKey(key any) (bool, error) {
	return m.tab.hasKey(key)
}

// Erase removes every listed key. Absent keys are ignored.
func (m *Map) Erase(keys any) error {
	return m.tab.erase(keys)
}

// Keys snapshots every live key as a vector of the bound key kind. The order
// is unspecified, but it matches a Values call with no mutation in between.
func (m *Map) Keys() any { return m.tab.keys() }

// Values snapshots every live value, in the same order as Keys.
func (m *Map) Values() any { return m.tab.values() }

// Data returns the entries as a map of the bound external kinds, e.g.
// map[string]int64 for a (string => int) binding.
func (m *Map) Data() any { return m.tab.data() }

// Rehash resizes the bucket storage to at least n slots. Entries are
// preserved exactly; the map never shrinks below its current capacity.
func (m *Map) Rehash(n int) { m.tab.rehash(n) }

// BucketCount reports the current slot capacity.
func (m *Map) BucketCount() int { return m.tab.bucketCount() }
