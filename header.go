package woff2

import (
	"encoding/binary"

	"github.com/tdewolff/parse/v2"
)

const woff2Signature = 0x774F4632 // 'wOF2'

// woff2Header mirrors the 48-byte WOFF2 header fields (spec.md §4.6, §6).
type woff2Header struct {
	flavor              uint32
	length              uint32
	numTables           uint16
	totalSfntSize       uint32
	totalCompressedSize uint32
	majorVersion        uint16
	minorVersion        uint16
}

// writeHeader serialises the 48-byte WOFF2 header in field order.
func writeHeader(w *parse.BinaryWriter, h woff2Header) {
	w.WriteUint32(woff2Signature)
	w.WriteUint32(h.flavor)
	w.WriteUint32(h.length)
	w.WriteUint16(h.numTables)
	w.WriteUint16(0) // reserved
	w.WriteUint32(h.totalSfntSize)
	w.WriteUint32(h.totalCompressedSize)
	w.WriteUint16(h.majorVersion)
	w.WriteUint16(h.minorVersion)
	w.WriteUint32(0) // metaOffset
	w.WriteUint32(0) // metaLength
	w.WriteUint32(0) // metaOrigLength
	w.WriteUint32(0) // privOffset
	w.WriteUint32(0) // privLength
}

// totalSfntSize computes the reconstructed-font size the header reports:
// the 12-byte offset table, numTables*16-byte records, and each input
// table's length rounded up to a 4-byte boundary (spec.md §4.6).
func totalSfntSize(numTables uint16, tableLengths []uint32) uint32 {
	size := uint32(12) + 16*uint32(numTables)
	for _, n := range tableLengths {
		size += (n + 3) / 4 * 4
	}
	return size
}

// fontRevision extracts (majorVersion, minorVersion) from head[4:8], or
// (0, 0) if head is missing (spec.md §4.6).
func fontRevision(head []byte) (major, minor uint16) {
	if len(head) < 8 {
		return 0, 0
	}
	return binary.BigEndian.Uint16(head[4:6]), binary.BigEndian.Uint16(head[6:8])
}
