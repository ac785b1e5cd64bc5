package woff2

import (
	"encoding/binary"

	"github.com/tdewolff/parse/v2"
)

// glyfStreams holds the eight parallel buffers the glyf/loca transform
// builds concurrently (spec.md §3, §4.4). Capacities are pre-reserved
// proportional to the untransformed glyf size to avoid reallocation
// storms on large CJK fonts.
type glyfStreams struct {
	nContour    *parse.BinaryWriter
	nPoints     *parse.BinaryWriter
	flag        *parse.BinaryWriter
	glyph       *parse.BinaryWriter
	composite   *parse.BinaryWriter
	bboxBitmap  *bitWriter
	bbox        *parse.BinaryWriter
	instruction *parse.BinaryWriter
}

func newGlyfStreams(numGlyphs uint16, glyfSize int) *glyfStreams {
	return &glyfStreams{
		nContour:    parse.NewBinaryWriter(make([]byte, 0, int(numGlyphs)*2)),
		nPoints:     parse.NewBinaryWriter(make([]byte, 0, glyfSize/8+16)),
		flag:        parse.NewBinaryWriter(make([]byte, 0, glyfSize/4+16)),
		glyph:       parse.NewBinaryWriter(make([]byte, 0, glyfSize/2+16)),
		composite:   parse.NewBinaryWriter(make([]byte, 0, glyfSize/8+16)),
		bboxBitmap:  newBitWriter(uint32(numGlyphs)),
		bbox:        parse.NewBinaryWriter(make([]byte, 0, glyfSize/8+16)),
		instruction: parse.NewBinaryWriter(make([]byte, 0, glyfSize/8+16)),
	}
}

// transformGlyfLoca re-expresses glyf/loca as the eight WOFF2 transform
// streams plus their 36-byte header, returning the complete transformed
// glyf table bytes (spec.md §4.4). It requires len(maxp) >= 6 and
// len(head) >= 52, the preconditions already checked by the caller.
func transformGlyfLoca(glyfData, locaData, head, maxp []byte) ([]byte, error) {
	numGlyphs := binary.BigEndian.Uint16(maxp[4:6])
	indexFormat := int16(binary.BigEndian.Uint16(head[50:52]))

	streams := newGlyfStreams(numGlyphs, len(glyfData))
	for glyphID := uint16(0); glyphID < numGlyphs; glyphID++ {
		start, end, err := locaOffsets(locaData, indexFormat, glyphID)
		if err != nil {
			return nil, err
		}
		if end < start {
			return nil, invalidGlyph("loca: end offset precedes start offset")
		}
		if end > uint32(len(glyfData)) {
			return nil, invalidGlyph("loca: offset exceeds glyf table length")
		}

		if end-start < 2 {
			// Empty glyph. This also covers the case where start < end but
			// the remaining slice is too short for a contour count; the
			// leftover byte(s) are ignored rather than rejected, preserving
			// the reference encoder's observed behavior (spec.md §9, open
			// question a).
			streams.nContour.WriteInt16(0)
			continue
		}

		g := glyfData[start:end]
		numContours := int16(binary.BigEndian.Uint16(g[0:2]))
		if numContours >= 0 {
			if err := encodeSimpleGlyph(streams, g, glyphID, numContours); err != nil {
				return nil, err
			}
		} else {
			if err := encodeCompositeGlyph(streams, g, glyphID, numContours); err != nil {
				return nil, err
			}
		}
	}

	return finalizeGlyfStreams(streams, numGlyphs, indexFormat), nil
}

// locaOffsets reads the (start, end) byte range of glyph i from loca, per
// the index format selected by head.indexToLocFormat (spec.md §4.4).
func locaOffsets(loca []byte, indexFormat int16, i uint16) (start, end uint32, err error) {
	if indexFormat == 0 {
		off := int(i) * 2
		if off+4 > len(loca) {
			return 0, 0, dataTooShort("loca")
		}
		start = uint32(binary.BigEndian.Uint16(loca[off:off+2])) * 2
		end = uint32(binary.BigEndian.Uint16(loca[off+2:off+4])) * 2
	} else {
		off := int(i) * 4
		if off+8 > len(loca) {
			return 0, 0, dataTooShort("loca")
		}
		start = binary.BigEndian.Uint32(loca[off : off+4])
		end = binary.BigEndian.Uint32(loca[off+4 : off+8])
	}
	return start, end, nil
}

// encodeSimpleGlyph parses and re-encodes one simple (non-composite) glyph
// record (spec.md §4.4, "Simple glyph parsing" and "Simple glyph encoding").
func encodeSimpleGlyph(s *glyfStreams, g []byte, glyphID uint16, numContours int16) error {
	r := parse.NewBinaryReader(g)
	_ = r.ReadInt16() // numberOfContours, already known
	xMinStored := r.ReadInt16()
	yMinStored := r.ReadInt16()
	xMaxStored := r.ReadInt16()
	yMaxStored := r.ReadInt16()
	if r.EOF() {
		return invalidGlyph("simple: truncated header")
	}

	endPoints := make([]uint16, numContours)
	for i := range endPoints {
		endPoints[i] = r.ReadUint16()
	}
	if r.EOF() {
		return invalidGlyph("simple: truncated endpoint list")
	}

	numPoints := 0
	if len(endPoints) > 0 {
		numPoints = int(endPoints[len(endPoints)-1]) + 1
	}

	instructionLength := r.ReadUint16()
	instructions := r.ReadBytes(uint32(instructionLength))
	if r.EOF() {
		return invalidGlyph("simple: truncated instructions")
	}

	flags := make([]byte, 0, numPoints)
	for len(flags) < numPoints {
		flag := r.ReadByte()
		if r.EOF() {
			return invalidGlyph("simple: truncated flags")
		}
		flags = append(flags, flag)
		if flag&0x08 != 0 {
			repeat := r.ReadByte()
			if r.EOF() {
				return invalidGlyph("simple: truncated flag repeat count")
			}
			for i := 0; i < int(repeat) && len(flags) < numPoints; i++ {
				flags = append(flags, flag)
			}
		}
	}

	xs := make([]int16, numPoints)
	for i := 0; i < numPoints; i++ {
		xs[i] = readCoord(r, flags[i], 0x02, 0x10)
	}
	ys := make([]int16, numPoints)
	for i := 0; i < numPoints; i++ {
		ys[i] = readCoord(r, flags[i], 0x04, 0x20)
	}
	if r.EOF() {
		return invalidGlyph("simple: truncated coordinates")
	}

	// n_contour_stream / n_points_stream
	s.nContour.WriteInt16(numContours)
	prevEnd := -1
	for _, end := range endPoints {
		write255Uint16(s.nPoints, uint16(int(end)-prevEnd))
		prevEnd = int(end)
	}

	// flag_stream / glyph_stream and the running point-based bbox
	var x, y, xMin, yMin, xMax, yMax int16
	for i := 0; i < numPoints; i++ {
		dx, dy := xs[i], ys[i]
		x += dx
		y += dy
		onCurve := flags[i]&0x01 != 0
		flag, data := encodeTriplet(dx, dy, onCurve)
		s.flag.WriteByte(flag)
		s.glyph.WriteBytes(data.Bytes())

		if i == 0 {
			xMin, xMax = x, x
			yMin, yMax = y, y
		} else {
			if x < xMin {
				xMin = x
			} else if xMax < x {
				xMax = x
			}
			if y < yMin {
				yMin = y
			} else if yMax < y {
				yMax = y
			}
		}
	}

	write255Uint16(s.glyph, instructionLength)
	s.instruction.WriteBytes(instructions)

	if xMin != xMinStored || yMin != yMinStored || xMax != xMaxStored || yMax != yMaxStored {
		s.bboxBitmap.set(uint32(glyphID))
		s.bbox.WriteInt16(xMinStored)
		s.bbox.WriteInt16(yMinStored)
		s.bbox.WriteInt16(xMaxStored)
		s.bbox.WriteInt16(yMaxStored)
	}
	return nil
}

// readCoord decodes one coordinate delta given its flag byte, the
// short-form bit, and the same-or-positive bit (spec.md §4.4).
func readCoord(r *parse.BinaryReader, flag byte, shortBit, sameBit byte) int16 {
	short := flag&shortBit != 0
	same := flag&sameBit != 0
	if short {
		b := r.ReadByte()
		if same {
			return int16(b)
		}
		return -int16(b)
	} else if same {
		return 0
	}
	return r.ReadInt16()
}

// encodeCompositeGlyph re-encodes one composite glyph record: the contour
// count and raw trailing bytes are preserved, and the stored bbox is
// always emitted since composite glyphs cannot derive one from points
// alone (spec.md §4.4, "Composite glyph encoding").
func encodeCompositeGlyph(s *glyfStreams, g []byte, glyphID uint16, numContours int16) error {
	if len(g) < 10 {
		return invalidGlyph("composite: truncated header")
	}
	xMin := int16(binary.BigEndian.Uint16(g[2:4]))
	yMin := int16(binary.BigEndian.Uint16(g[4:6]))
	xMax := int16(binary.BigEndian.Uint16(g[6:8]))
	yMax := int16(binary.BigEndian.Uint16(g[8:10]))

	s.nContour.WriteInt16(numContours)
	s.composite.WriteBytes(g[10:])

	s.bboxBitmap.set(uint32(glyphID))
	s.bbox.WriteInt16(xMin)
	s.bbox.WriteInt16(yMin)
	s.bbox.WriteInt16(xMax)
	s.bbox.WriteInt16(yMax)
	return nil
}

// finalizeGlyfStreams assembles the 36-byte transformed-glyf header and
// concatenates the eight streams in the fixed order spec.md §4.4 requires.
func finalizeGlyfStreams(s *glyfStreams, numGlyphs uint16, indexFormat int16) []byte {
	nContour := s.nContour.Bytes()
	nPoints := s.nPoints.Bytes()
	flag := s.flag.Bytes()
	glyph := s.glyph.Bytes()
	composite := s.composite.Bytes()
	bboxBitmap := s.bboxBitmap.bytes()
	bbox := s.bbox.Bytes()
	instruction := s.instruction.Bytes()
	bboxStreamSize := uint32(len(bboxBitmap)) + uint32(len(bbox))

	total := 36 + len(nContour) + len(nPoints) + len(flag) + len(glyph) +
		len(composite) + int(bboxStreamSize) + len(instruction)
	w := parse.NewBinaryWriter(make([]byte, 0, total))
	w.WriteUint16(0) // version
	w.WriteUint16(0) // option_flags: overlap-simple round-tripping is not implemented (spec.md §9, open question b)
	w.WriteUint16(numGlyphs)
	w.WriteUint16(uint16(indexFormat))
	w.WriteUint32(uint32(len(nContour)))
	w.WriteUint32(uint32(len(nPoints)))
	w.WriteUint32(uint32(len(flag)))
	w.WriteUint32(uint32(len(glyph)))
	w.WriteUint32(uint32(len(composite)))
	w.WriteUint32(bboxStreamSize)
	w.WriteUint32(uint32(len(instruction)))
	w.WriteBytes(nContour)
	w.WriteBytes(nPoints)
	w.WriteBytes(flag)
	w.WriteBytes(glyph)
	w.WriteBytes(composite)
	w.WriteBytes(bboxBitmap)
	w.WriteBytes(bbox)
	w.WriteBytes(instruction)
	return w.Bytes()
}
