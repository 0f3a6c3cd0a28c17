package vecmap

import (
	"strconv"
	"testing"
)

var benchSizes = []int{
	1 << 10,
	1 << 16,
}

func benchStringVectors(n int) ([]string, []int64) {
	keys := make([]string, n)
	values := make([]int64, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
		values[i] = int64(i)
	}

	return keys, values
}

func BenchmarkSetValues(b *testing.B) {
	for _, size := range benchSizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			keys, values := benchStringVectors(size)

			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				m, err := New([]string{}, []int64{}, WithCapacity(size))
				if err != nil {
					b.Fatal(err)
				}
				if err := m.SetValues(keys, values); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFindValues_Hit(b *testing.B) {
	for _, size := range benchSizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			keys, values := benchStringVectors(size)

			m, err := New(keys, values)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				if _, err := m.FindValues(keys); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFindValues_Miss(b *testing.B) {
	for _, size := range benchSizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			keys, values := benchStringVectors(size)
			miss := make([]string, len(keys))
			for i := range miss {
				miss[i] = "absent-" + strconv.Itoa(i)
			}

			m, err := New(keys, values)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				if _, err := m.FindValues(miss); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
