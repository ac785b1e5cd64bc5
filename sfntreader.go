package woff2

import (
	"github.com/tdewolff/parse/v2"
)

// sfntFlavorTrueType is the only flavor this encoder accepts: outline
// glyphs in glyf/loca, as opposed to 'OTTO' (CFF) or 'ttcf' (collections),
// both out of scope (spec.md §1).
const sfntFlavorTrueType = 0x00010000

// tableRecord is one entry of the SFNT table directory: a tag and the byte
// range of the input it refers to.
type tableRecord struct {
	tag    string
	offset uint32
	length uint32
}

// sfntView is a borrowed, read-only view of an SFNT input: a flavor word
// and an ordered sequence of table records, each validated to lie within
// the input. It never copies the input buffer.
type sfntView struct {
	data    []byte
	flavor  uint32
	records []tableRecord
}

// parseSFNT reads the 12-byte SFNT header and the numTables table
// directory entries that follow it, validating that every table's byte
// range lies within the input (spec.md §4.3).
func parseSFNT(data []byte) (*sfntView, error) {
	if len(data) < 12 {
		return nil, dataTooShort("sfnt header")
	}

	r := parse.NewBinaryReader(data)
	flavor := r.ReadUint32()
	numTables := r.ReadUint16()
	_ = r.ReadBytes(6) // searchRange, entrySelector, rangeShift
	if r.EOF() {
		return nil, dataTooShort("sfnt header")
	}
	if flavor != sfntFlavorTrueType {
		return nil, &UnsupportedFormatError{}
	}

	records := make([]tableRecord, 0, numTables)
	for i := 0; i < int(numTables); i++ {
		tag := r.ReadString(4)
		_ = r.ReadUint32() // checksum, not verified by the encoder
		offset := r.ReadUint32()
		length := r.ReadUint32()
		if r.EOF() {
			return nil, dataTooShort("table directory")
		}
		if uint64(offset)+uint64(length) > uint64(len(data)) {
			return nil, tableOutOfBounds(tag)
		}
		records = append(records, tableRecord{tag: tag, offset: offset, length: length})
	}

	return &sfntView{data: data, flavor: flavor, records: records}, nil
}

// table returns the raw bytes of the named table, or nil if absent.
func (v *sfntView) table(tag string) []byte {
	for _, rec := range v.records {
		if rec.tag == tag {
			return v.data[rec.offset : rec.offset+rec.length : rec.offset+rec.length]
		}
	}
	return nil
}

// has reports whether the named table is present.
func (v *sfntView) has(tag string) bool {
	for _, rec := range v.records {
		if rec.tag == tag {
			return true
		}
	}
	return false
}
