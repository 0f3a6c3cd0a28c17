package vecmap

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// The print surface truncates at a process-wide entry limit, configurable
// independently of any one map. The core container methods it consumes
// (Keys, Values, Size) stay unaware of it.
var maxPrint atomic.Int64

func init() {
	maxPrint.Store(6)
}

// SetMaxPrint caps how many entries String renders. Negative n disables
// truncation.
func SetMaxPrint(n int) {
	maxPrint.Store(int64(n))
}

// MaxPrint returns the current print cap.
func MaxPrint() int {
	return int(maxPrint.Load())
}

// String renders the binding, the entry count and up to MaxPrint entries.
func (m *Map) String() string {
	var (
		b     strings.Builder
		ks    = m.Keys()
		vs    = m.Values()
		n     = m.Size()
		limit = MaxPrint()
	)

	fmt.Fprintf(&b, "(%s => %s) map of %d entries", m.keyKind, m.valKind, n)

	shown := n
	if limit >= 0 && shown > limit {
		shown = limit
	}

	for i := 0; i < shown; i++ {
		fmt.Fprintf(&b, "\n  %s => %s", formatElem(ks, i), formatElem(vs, i))
	}

	if hidden := n - shown; hidden > 0 {
		fmt.Fprintf(&b, "\n  ... %d more", hidden)
	}

	return b.String()
}

func formatElem(vec any, i int) string {
	switch v := vec.(type) {
	case []bool:
		return strconv.FormatBool(v[i])
	case []int64:
		return strconv.FormatInt(v[i], 10)
	case []float64:
		return strconv.FormatFloat(v[i], 'g', -1, 64)
	case []string:
		return strconv.Quote(v[i])
	}

	return ""
}
