package woff2

// knownTags is the fixed, ordered list of 63 well-known SFNT table tags.
// Its index in this slice is the tag's "known index" used in a directory
// entry's flag byte; any other tag has no known index (63, "arbitrary").
var knownTags = []string{
	"cmap", "head", "hhea", "hmtx",
	"maxp", "name", "OS/2", "post",
	"cvt ", "fpgm", "glyf", "loca",
	"prep", "CFF ", "VORG", "EBDT",
	"EBLC", "gasp", "hdmx", "kern",
	"LTSH", "PCLT", "VDMX", "vhea",
	"vmtx", "BASE", "GDEF", "GPOS",
	"GSUB", "EBSC", "JSTF", "MATH",
	"CBDT", "CBLC", "COLR", "CPAL",
	"SVG ", "sbix", "acnt", "avar",
	"bdat", "bloc", "bsln", "cvar",
	"fdsc", "feat", "fmtx", "fvar",
	"gvar", "hsty", "just", "lcar",
	"mort", "morx", "opbd", "prop",
	"trak", "Zapf", "Silf", "Glat",
	"Gloc", "Feat", "Sill",
}

// knownTagIndex returns the tag's known index and whether one exists.
func knownTagIndex(tag string) (int, bool) {
	for i, known := range knownTags {
		if known == tag {
			return i, true
		}
	}
	return 0, false
}

// directoryFlagByte builds the one-byte flag preceding a directory entry:
// the known tag index (or 63 for an arbitrary tag) in the low 6 bits, and
// the transform version in the high 2 bits.
func directoryFlagByte(tagIndex int, transformVersion int) byte {
	return byte(tagIndex&0x3F) | byte(transformVersion<<6)
}
