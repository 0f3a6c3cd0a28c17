package vecmap

import "fmt"

// UnsupportedKindError reports a key or value vector whose dynamic type is
// outside the closed scalar domain. Construction fails and no map is
// produced.
type UnsupportedKindError struct {
	Role  string // "key" or "value"
	Value any
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported %s kind %T", e.Role, e.Value)
}

// CoercionError reports a vector that cannot losslessly embed into the
// map's bound kind. The failing call leaves the map unmodified.
type CoercionError struct {
	From Kind
	To   Kind

	// Index is the first offending element for conditional embeddings
	// (fractional float into an int binding), -1 when the kinds have no
	// embedding at all.
	Index int
}

func (e *CoercionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("cannot coerce %s to %s: element %d is not representable", e.From, e.To, e.Index)
	}
	return fmt.Sprintf("cannot coerce %s to %s", e.From, e.To)
}
