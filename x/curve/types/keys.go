package types

var (
	// PairKeyPrefix is the prefix for pair store keys
	PairKeyPrefix = []byte{0x01}

	// PairByReservesKeyPrefix is the prefix for indexing pairs by the
	// unordered combination of their reserve symbol codes
	PairByReservesKeyPrefix = []byte{0x02}

	// ConfigKey is the key for the singleton configuration record
	ConfigKey = []byte{0x03}

	// BackupKeyPrefix is the prefix for the pair snapshot table
	BackupKeyPrefix = []byte{0x04}

	// BackupMetaKey is the key for the snapshot metadata record
	BackupMetaKey = []byte{0x05}
)

// PairKey returns the store key for a pair by id
func PairKey(id SymbolCode) []byte {
	return append(PairKeyPrefix, []byte(id)...)
}

// PairByReservesKey returns the index key for a pair's reserve symbol
// combination. The two codes are canonicalized lexicographically so one
// key serves both orderings.
func PairByReservesKey(a, b SymbolCode) []byte {
	if a > b {
		a, b = b, a
	}
	key := append(PairByReservesKeyPrefix, []byte(a)...)
	key = append(key, '/')
	return append(key, []byte(b)...)
}

// BackupKey returns the snapshot-table key for a pair by id
func BackupKey(id SymbolCode) []byte {
	return append(BackupKeyPrefix, []byte(id)...)
}
