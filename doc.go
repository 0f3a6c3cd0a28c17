// Package vecmap provides an in-memory associative container driven by
// vectorized batch calls over a closed set of scalar kinds: int, float and
// string keys, plus bool values. The 3x4 kind combinations share one generic
// swiss-table core; construction infers the kind pair from the supplied
// vectors and binds the map to a single concrete instantiation for its
// lifetime.
//
// Incoming vectors of a compatible kind are coerced on the way in (ints into
// a float binding, whole-number floats into an int binding, bools into
// either); absent lookups yield the value kind's missing sentinel rather
// than an error.
package vecmap
