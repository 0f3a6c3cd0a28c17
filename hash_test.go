package vecmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSplit(t *testing.T) {
	tests := []struct {
		name   string
		input  uint64
		wantH1 uintptr
		wantH2 uint8
	}{
		{
			name:   "Zero value",
			input:  0,
			wantH1: 0,
			wantH2: 0,
		},
		{
			name:   "Max H2 (7 bits)",
			input:  0x7F, // 0111 1111
			wantH1: 0,
			wantH2: 0x7F,
		},
		{
			name:   "First bit of H1",
			input:  1 << 7, // 1000 0000
			wantH1: 1,
			wantH2: 0,
		},
		{
			name:   "Max uint64",
			input:  0xFFFFFFFFFFFFFFFF,
			wantH1: uintptr(0xFFFFFFFFFFFFFFFF >> 7),
			wantH2: 0x7F,
		},
		{
			name:   "Random pattern",
			input:  0xABCD1234567890EF,
			wantH1: uintptr(0xABCD1234567890EF >> 7),
			wantH2: 0xEF & 0x7F, // 0x6F
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h1, h2 := hashSplit(tt.input)

			require.Equal(t, tt.wantH1, h1)
			require.Equal(t, tt.wantH2, h2)
		})
	}
}

func TestHashString_Deterministic(t *testing.T) {
	require.Equal(t, hashString("foo"), hashString("foo"))
	require.NotEqual(t, hashString("foo"), hashString("bar"))
}

func TestHashString_FullContent(t *testing.T) {
	// Long keys sharing a prefix must still hash apart; the hash covers the
	// whole string, not a prefix.
	prefix := strings.Repeat("x", 1024)

	require.NotEqual(t, hashString(prefix+"a"), hashString(prefix+"b"))
}

func TestHashInt64(t *testing.T) {
	require.Equal(t, hashInt64(42), hashInt64(42))
	require.NotEqual(t, hashInt64(42), hashInt64(43))

	// Negative keys map through their two's complement bits.
	require.Equal(t, hashUint64(0xFFFFFFFFFFFFFFFF), hashInt64(-1))
}
