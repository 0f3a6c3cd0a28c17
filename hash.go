package vecmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

type hashFunc[K comparable] func(K) uint64

// The key contract demands total, deterministic hashing, so keys hash with
// xxhash rather than a per-process seeded function. Strings hash over their
// full content.
func hashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

func hashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)

	return xxhash.Sum64(b[:])
}

func hashInt64(v int64) uint64 {
	return hashUint64(uint64(v))
}

// hashSplit separates a hash into the 57-bit probe index h1 and the 7-bit
// control byte h2.
func hashSplit(hash uint64) (uintptr, uint8) {
	h1 := uintptr(hash >> 7)
	h2 := uint8(hash & 0x7F)

	return h1, h2
}
