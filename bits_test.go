package vecmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchH2(t *testing.T) {
	tests := []struct {
		name  string
		ctrl  uint64
		h2    uint8
		want  bitset
		first uintptr
	}{
		{
			name:  "No match in empty group",
			ctrl:  0x8080808080808080,
			h2:    0x42,
			want:  0,
			first: 8,
		},
		{
			name:  "Single match at slot 0",
			ctrl:  0x8080808080808042,
			h2:    0x42,
			want:  0x80,
			first: 0,
		},
		{
			name:  "Single match at slot 7",
			ctrl:  0x4280808080808080,
			h2:    0x42,
			want:  0x8000000000000000,
			first: 7,
		},
		{
			name:  "Two matches",
			ctrl:  0x8080804280808042,
			h2:    0x42,
			want:  0x8000000080,
			first: 0,
		},
		{
			name:  "Deleted slot never matches",
			ctrl:  0x80808080808080FE,
			h2:    0x7E,
			want:  0,
			first: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchH2(tt.ctrl, tt.h2)

			require.Equal(t, tt.want, got)
			require.Equal(t, tt.first, got.first())
		})
	}
}

func TestMatchEmpty(t *testing.T) {
	// All empty
	require.Equal(t, bitset(0x8080808080808080), matchEmpty(0x8080808080808080))

	// All deleted: tombstones are not empty
	require.Equal(t, bitset(0), matchEmpty(0xFEFEFEFEFEFEFEFE))

	// All full
	require.Equal(t, bitset(0), matchEmpty(0x0102030405060708))

	// Mixed: full, empty, deleted
	require.Equal(t, bitset(0x80_00_80_00_00_00_00_00), matchEmpty(0x80_FE_80_42_00_7F_01_00))
}

func TestMatchEmptyOrDeleted(t *testing.T) {
	// Empty and deleted both match
	require.Equal(t, bitset(0x8080808080808080), matchEmptyOrDeleted(0x8080808080808080))
	require.Equal(t, bitset(0x8080808080808080), matchEmptyOrDeleted(0xFEFEFEFEFEFEFEFE))

	// Full slots never match
	require.Equal(t, bitset(0), matchEmptyOrDeleted(0x0102030405060708))
}

func TestBitset_RemoveFirst(t *testing.T) {
	b := bitset(0x8000000080)

	require.Equal(t, uintptr(0), b.first())

	b = b.removeFirst()
	require.Equal(t, uintptr(4), b.first())

	b = b.removeFirst()
	require.Equal(t, bitset(0), b)
}

func TestIsFull(t *testing.T) {
	require.True(t, isFull(0x00))
	require.True(t, isFull(0x7F))
	require.False(t, isFull(slotEmpty))
	require.False(t, isFull(slotDeleted))
}
