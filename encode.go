package woff2

import (
	"sort"

	"github.com/tdewolff/parse/v2"
)

// options bundles the two axes encode/EncodeNoTransform differ on into a
// single record, per spec.md §4.9/§9 ("prefer a single internal function
// taking a small options record").
type options struct {
	quality       BrotliQuality
	transformGlyf bool
}

// Encode compresses a TrueType font into a WOFF2 container, applying the
// glyf/loca transform when all four of glyf, loca, head, and maxp are
// present (spec.md §4.7).
func Encode(ttf []byte, quality BrotliQuality) ([]byte, error) {
	return encode(ttf, options{quality: quality, transformGlyf: true})
}

// EncodeNoTransform compresses a TrueType font into a WOFF2 container
// without ever applying the glyf/loca transform (spec.md §4.7).
func EncodeNoTransform(ttf []byte, quality BrotliQuality) ([]byte, error) {
	return encode(ttf, options{quality: quality, transformGlyf: false})
}

func encode(ttf []byte, opt options) ([]byte, error) {
	view, err := parseSFNT(ttf)
	if err != nil {
		return nil, err
	}

	sortedTags := sortedTableTags(view)

	var transformed []byte
	if opt.transformGlyf && view.has("glyf") && view.has("loca") && view.has("head") && view.has("maxp") {
		head := view.table("head")
		maxp := view.table("maxp")
		if len(maxp) < 6 {
			return nil, dataTooShort("maxp")
		}
		if len(head) < 52 {
			return nil, dataTooShort("head")
		}
		transformed, err = transformGlyfLoca(view.table("glyf"), view.table("loca"), head, maxp)
		if err != nil {
			return nil, err
		}
	}

	entries := buildTableEntries(view, sortedTags, transformed)

	major, minor := fontRevision(view.table("head"))

	payload := concatPayload(entries)
	compressed, err := brotliCompress(payload, opt.quality)
	if err != nil {
		return nil, err
	}

	tableLengths := make([]uint32, len(view.records))
	for i, rec := range view.records {
		tableLengths[i] = rec.length
	}

	dirBuf := parse.NewBinaryWriter(make([]byte, 0, len(entries)*15))
	for _, e := range entries {
		writeDirectoryEntry(dirBuf, e)
	}
	directoryBytes := dirBuf.Bytes()

	// Pad the compressed payload to a 4-byte boundary. Not mandated by the
	// WOFF2 specification itself, but required by at least one major
	// browser engine and preserved here as the reference encoder's
	// observed behavior; totalCompressedSize reports the unpadded size.
	totalCompressedSize := uint32(len(compressed))
	headerLen := 48
	unpadded := headerLen + len(directoryBytes) + len(compressed)
	padding := (4 - unpadded&3) & 3

	out := parse.NewBinaryWriter(make([]byte, 0, unpadded+padding))
	writeHeader(out, woff2Header{
		flavor:              view.flavor,
		length:              uint32(unpadded + padding),
		numTables:           uint16(len(entries)),
		totalSfntSize:       totalSfntSize(uint16(len(view.records)), tableLengths),
		totalCompressedSize: totalCompressedSize,
		majorVersion:        major,
		minorVersion:        minor,
	})
	out.WriteBytes(directoryBytes)
	out.WriteBytes(compressed)
	for i := 0; i < padding; i++ {
		out.WriteByte(0)
	}
	return out.Bytes(), nil
}

// sortedTableTags orders the input's tables lexicographically on the tag
// bytes, then ensures loca immediately follows glyf in the directory if
// both are present (spec.md §4.7 step 2).
func sortedTableTags(view *sfntView) []string {
	tags := make([]string, len(view.records))
	for i, rec := range view.records {
		tags[i] = rec.tag
	}
	sort.Strings(tags)

	iGlyf, hasGlyf := indexOf(tags, "glyf")
	iLoca, hasLoca := indexOf(tags, "loca")
	if hasGlyf && hasLoca && iLoca != iGlyf+1 {
		// remove loca from its sorted position and reinsert right after glyf
		tags = append(tags[:iLoca], tags[iLoca+1:]...)
		iGlyf, _ = indexOf(tags, "glyf")
		tags = append(tags[:iGlyf+1], append([]string{"loca"}, tags[iGlyf+1:]...)...)
	}
	return tags
}

func indexOf(tags []string, tag string) (int, bool) {
	for i, t := range tags {
		if t == tag {
			return i, true
		}
	}
	return 0, false
}

// buildTableEntries builds the per-table directory entries and payload
// slices, in directory order (spec.md §4.7 step 5).
func buildTableEntries(view *sfntView, tags []string, transformed []byte) []tableEntry {
	entries := make([]tableEntry, 0, len(tags))
	for _, tag := range tags {
		data := view.table(tag)
		e := tableEntry{tag: tag, origLength: uint32(len(data))}
		switch {
		case transformed != nil && tag == "glyf":
			e.transformVersion = 0
			e.transformLength = uint32(len(transformed))
			e.hasTransformLen = true
			e.data = transformed
		case transformed != nil && tag == "loca":
			e.transformVersion = 0
			e.transformLength = 0
			e.hasTransformLen = true
			e.data = nil // loca is fully derivable from transformed glyf
		case transformed == nil && (tag == "glyf" || tag == "loca"):
			e.transformVersion = 3
			e.data = data
		default:
			e.transformVersion = 0
			e.data = data
		}
		entries = append(entries, e)
	}
	return entries
}

// concatPayload concatenates table payloads in directory order, the
// uncompressed bytes that get Brotli-compressed as a single blob
// (spec.md §4.7 step 6).
func concatPayload(entries []tableEntry) []byte {
	n := 0
	for _, e := range entries {
		n += len(e.data)
	}
	buf := make([]byte, 0, n)
	for _, e := range entries {
		buf = append(buf, e.data...)
	}
	return buf
}
