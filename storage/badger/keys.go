package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/culinate/dishfinder/core"
)

// Key prefixes for different data types
const (
	dishRecordPrefix  = "dishrec:"
	dishIDIndexPrefix = "dishid:"
	dishOrdinalSeq    = "dishordseq"
)

// makeDishRecordKey generates the primary key for a dish record.
// The ordinal is encoded BigEndian so lexicographic iteration yields
// records in catalog order.
func makeDishRecordKey(ordinal int) []byte {
	prefixBytes := []byte(dishRecordPrefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(ordinal))
	return buf
}

// makeDishIDKey generates the ID index key for a dish record. The index maps
// content IDs to ordinals so records can be fetched by ID.
func makeDishIDKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s%d", dishIDIndexPrefix, id))
}

// encodeOrdinal encodes an ordinal as the value of an ID index entry.
func encodeOrdinal(ordinal int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(ordinal))
	return buf
}

// decodeOrdinal decodes an ID index value back to an ordinal.
func decodeOrdinal(val []byte) (int, error) {
	if len(val) != 8 {
		return 0, fmt.Errorf("invalid ordinal encoding: %d bytes", len(val))
	}
	return int(binary.BigEndian.Uint64(val)), nil
}
