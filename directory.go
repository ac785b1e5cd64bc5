package woff2

import "github.com/tdewolff/parse/v2"

// tableEntry describes one table to appear in the WOFF2 directory and
// payload, already resolved against the transform decision (spec.md §3,
// §4.5, §4.7 step 5).
type tableEntry struct {
	tag              string
	origLength       uint32
	transformVersion int
	transformLength  uint32
	hasTransformLen  bool
	data             []byte // payload bytes for this table, in directory order
}

// writeDirectoryEntry appends one variable-width directory entry to w
// (spec.md §4.5). Maximum length is 15 bytes (1 flag + 4 tag + 5 + 5).
func writeDirectoryEntry(w *parse.BinaryWriter, e tableEntry) {
	tagIndex, known := knownTagIndex(e.tag)
	flagTagIndex := 63
	if known {
		flagTagIndex = tagIndex
	}
	w.WriteByte(directoryFlagByte(flagTagIndex, e.transformVersion))
	if !known {
		w.WriteString(e.tag)
	}
	writeBase128(w, e.origLength)
	if (e.tag == "glyf" || e.tag == "loca") && e.transformVersion == 0 && e.hasTransformLen {
		writeBase128(w, e.transformLength)
	}
}
