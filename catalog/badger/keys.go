package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/talentsift/talentsift/core"
)

// Key prefixes for different data types
const (
	assessmentPrefix      = "asmrec"
	assessmentOrderPrefix = "asmord"
	assessmentOrderSeq    = "asmordseq"
)

// makeAssessmentKey generates a key for an assessment by ID.
func makeAssessmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", assessmentPrefix, id))
}

// makeOrderKey generates a composite key for the insertion-order index.
// Format: prefix:position
func makeOrderKey(position uint64) []byte {
	prefix := assessmentOrderPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	buf := make([]byte, prefixSize+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], position)
	return buf
}
