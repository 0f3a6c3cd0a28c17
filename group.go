package vecmap

const (
	groupSize = 8

	slotEmpty   = 0x80
	slotDeleted = 0xFE
)

type group[K comparable, V any] struct {
	// 8 bytes of metadata (h2 or control states), testable with a single
	// uint64 load.
	ctrls [groupSize]uint8

	// 8 keys stored immediately after the metadata.
	slots [groupSize]K

	// 8 values stored after the keys.
	values [groupSize]V
}

var emptyCtrls = [groupSize]uint8{
	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,

	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,
}
