package woff2

import "github.com/tdewolff/parse/v2"

// writeBase128 appends the UIntBase128 encoding of v to w.
func writeBase128(w *parse.BinaryWriter, v uint32) {
	enc := encodeBase128(v)
	w.WriteBytes(enc.Bytes())
}

// write255Uint16 appends the 255UInt16 encoding of v to w.
func write255Uint16(w *parse.BinaryWriter, v uint16) {
	enc := encode255Uint16(v)
	w.WriteBytes(enc.Bytes())
}
