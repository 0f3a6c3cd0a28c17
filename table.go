package vecmap

import (
	"math/bits"
	"unsafe"
)

// table is the generic swiss-table core behind every binding. It knows
// nothing about scalar kinds beyond the hash function it was given; the
// boundary coercion happens one layer up. Unlike a fixed-capacity table it
// grows automatically once the 7/8 load factor is reached, so put never
// fails.
type table[K comparable, V any] struct {
	groups []group[K, V]

	capacity          uintptr
	numGroupsMask     uintptr
	capacityEffective uintptr
	size              uintptr
	tombstones        uintptr

	hash hashFunc[K]

	zeroV V
}

func newTable[K comparable, V any](capacity int, hash hashFunc[K]) *table[K, V] {
	t := &table[K, V]{hash: hash}
	t.init(capacity)

	return t
}

func (t *table[K, V]) init(capacity int) {
	if capacity < groupSize {
		capacity = groupSize
	}

	normalized := uintptr(nextPowerOf2(uint32(capacity)))
	// Number of groups required
	numGroups := normalized / groupSize

	t.groups = make([]group[K, V], numGroups)
	t.capacity = normalized
	t.numGroupsMask = numGroups - 1
	t.capacityEffective = normalized * 7 / 8
	t.size = 0
	t.tombstones = 0

	// Initialize all control bytes to Empty
	for i := range t.groups {
		t.groups[i].ctrls = emptyCtrls
	}
}

func (t *table[K, V]) get(key K) (V, bool) {
	h1, h2 := hashSplit(t.hash(key))
	mask := t.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		// SIMD-like match
		matches := matchH2(ctrl, h2)
		for matches != 0 {
			idx := matches.first()
			if g.slots[idx] == key {
				return g.values[idx], true
			}

			matches = matches.removeFirst()
		}

		// Termination
		if matchEmpty(ctrl) != 0 {
			return t.zeroV, false
		}

		// Quadratic probe math
		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return t.zeroV, false
}

func (t *table[K, V]) has(key K) bool {
	_, ok := t.get(key)
	return ok
}

// set upserts the entry, growing the table first whenever the load factor
// bound is hit.
func (t *table[K, V]) set(key K, value V) {
	if t.size+t.tombstones >= t.capacityEffective {
		t.grow(int(t.capacity) * 2)
	}

	for !t.trySet(key, value) {
		t.grow(int(t.capacity) * 2)
	}
}

// trySet upserts the entry in place. Returns false when no slot could be
// found within the probe sequence and the table must grow first.
func (t *table[K, V]) trySet(key K, value V) bool {
	var (
		h1, h2 = hashSplit(t.hash(key))
		mask   = t.numGroupsMask
		start  = (h1 / groupSize) & mask

		targetGroup *group[K, V]
		targetSlot  uintptr
		foundSlot   bool
	)

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		// 1. Overwrite if the key is already present
		matchMask := matchH2(ctrl, h2)
		for matchMask != 0 {
			idx := matchMask.first()
			if g.slots[idx] == key {
				g.values[idx] = value
				return true
			}

			matchMask = matchMask.removeFirst()
		}

		// 2. Cache first available slot
		if !foundSlot {
			matchMask = matchEmptyOrDeleted(ctrl)
			if matchMask != 0 {
				targetGroup = g
				targetSlot = matchMask.first()
				foundSlot = true
			}
		}

		// 3. Termination condition
		matchMask = matchEmpty(ctrl)
		if matchMask != 0 {
			if foundSlot {
				if targetGroup.ctrls[targetSlot] == slotDeleted {
					t.tombstones--
				}

				targetGroup.ctrls[targetSlot] = h2
				targetGroup.slots[targetSlot] = key
				targetGroup.values[targetSlot] = value
				t.size++

				return true
			}

			return false
		}

		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return false
}

func (t *table[K, V]) erase(key K) bool {
	h1, h2 := hashSplit(t.hash(key))
	mask := t.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		matchMask := matchH2(ctrl, h2)
		for matchMask != 0 {
			idx := matchMask.first()
			if g.slots[idx] == key {
				// Mark as Deleted (0xFE) to preserve the probe chain
				g.ctrls[idx] = slotDeleted
				g.slots[idx] = *new(K)
				g.values[idx] = t.zeroV
				t.size--
				t.tombstones++

				return true
			}

			matchMask = matchMask.removeFirst()
		}

		if matchEmpty(ctrl) != 0 {
			return false
		}

		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return false
}

// each visits every live entry in group order. The order is unspecified but
// deterministic between mutations, so consecutive snapshots correspond
// position for position.
func (t *table[K, V]) each(fn func(K, V)) {
	for i := range t.groups {
		g := &t.groups[i]
		for j := 0; j < groupSize; j++ {
			if isFull(g.ctrls[j]) {
				fn(g.slots[j], g.values[j])
			}
		}
	}
}

// grow rebuilds the table with at least the requested slot capacity,
// reinserting every live entry and dropping tombstones along the way.
func (t *table[K, V]) grow(capacity int) {
	need := int(t.size)*8/7 + 1
	if capacity < need {
		capacity = need
	}

	old := t.groups
	t.init(capacity)

	for i := range old {
		g := &old[i]
		for j := 0; j < groupSize; j++ {
			if isFull(g.ctrls[j]) {
				t.trySet(g.slots[j], g.values[j])
			}
		}
	}
}

// rehash is the public resize hint: at least n slots, never below what the
// current entries need, never an auto-shrink.
func (t *table[K, V]) rehash(n int) {
	if uintptr(n) < t.capacity {
		n = int(t.capacity)
	}

	t.grow(n)
}

func (t *table[K, V]) clear() {
	for i := range t.groups {
		t.groups[i].ctrls = emptyCtrls
		t.groups[i].slots = [groupSize]K{}
		t.groups[i].values = [groupSize]V{}
	}

	t.size = 0
	t.tombstones = 0
}

// Returns the next power of 2 for the given value `v`.
func nextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}
