package woff2

import "encoding/binary"

// buildSFNT assembles a minimal valid SFNT (TrueType flavor) binary from a
// tag -> data map, for use as encoder test fixtures. Tables are written in
// tag order and 4-byte padded, mirroring how a real font file is laid out;
// the encoder does not depend on that ordering so tests can pick any.
func buildSFNT(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	// simple insertion sort keeps this file dependency-free
	for i := 1; i < len(tags); i++ {
		for j := i; j > 0 && tags[j] < tags[j-1]; j-- {
			tags[j], tags[j-1] = tags[j-1], tags[j]
		}
	}

	numTables := len(tags)
	headerLen := 12 + 16*numTables
	offset := headerLen

	type rec struct {
		tag    string
		offset int
		length int
	}
	recs := make([]rec, 0, numTables)
	var body []byte
	for _, tag := range tags {
		data := tables[tag]
		recs = append(recs, rec{tag: tag, offset: offset, length: len(data)})
		body = append(body, data...)
		pad := (4 - len(data)&3) & 3
		for i := 0; i < pad; i++ {
			body = append(body, 0)
		}
		offset += len(data) + pad
	}

	out := make([]byte, headerLen)
	binary.BigEndian.PutUint32(out[0:4], sfntFlavorTrueType)
	binary.BigEndian.PutUint16(out[4:6], uint16(numTables))
	// searchRange, entrySelector, rangeShift: unused by the parser
	pos := 12
	for _, r := range recs {
		copy(out[pos:pos+4], r.tag)
		binary.BigEndian.PutUint32(out[pos+4:pos+8], 0) // checksum, unverified
		binary.BigEndian.PutUint32(out[pos+8:pos+12], uint32(r.offset))
		binary.BigEndian.PutUint32(out[pos+12:pos+16], uint32(r.length))
		pos += 16
	}
	return append(out, body...)
}

// minimalHead returns a 54-byte head table with indexToLocFormat at [50:52]
// set to indexFormat (0 = short loca, 1 = long loca).
func minimalHead(indexFormat uint16) []byte {
	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[50:52], indexFormat)
	return head
}

// minimalMaxp returns a 6-byte maxp table (version 0.5) with the given
// glyph count.
func minimalMaxp(numGlyphs uint16) []byte {
	maxp := make([]byte, 6)
	binary.BigEndian.PutUint32(maxp[0:4], 0x00005000)
	binary.BigEndian.PutUint16(maxp[4:6], numGlyphs)
	return maxp
}

// oneTriangleGlyph returns a single simple glyph: a 3-point on-curve
// triangle at (0,0)-(10,0)-(10,10), whose computed bbox exactly matches the
// stored one, padded to an even length.
func oneTriangleGlyph() []byte {
	g := []byte{
		0x00, 0x01, // numberOfContours = 1
		0x00, 0x00, 0x00, 0x00, 0x00, 0x0A, 0x00, 0x0A, // xMin,yMin,xMax,yMax
		0x00, 0x02, // endPtsOfContours[0] = 2
		0x00, 0x00, // instructionLength = 0
		0x01, 0x01, 0x01, // flags: on-curve, no short/same bits
		0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, // x deltas: 0, 10, 0
		0x00, 0x00, 0x00, 0x00, 0x00, 0x0A, // y deltas: 0, 0, 10
		0x00, // pad to an even length
	}
	return g
}

// shortLoca builds a short-format (indexFormat 0) loca table for a single
// glyph occupying [0, glyfLen).
func shortLoca(glyfLen int) []byte {
	loca := make([]byte, 4)
	binary.BigEndian.PutUint16(loca[0:2], 0)
	binary.BigEndian.PutUint16(loca[2:4], uint16(glyfLen/2))
	return loca
}
