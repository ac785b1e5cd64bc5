package woff2

// base128 holds the encoding of a UIntBase128 value: up to 5 bytes,
// most-significant 7-bit group first, continuation bit set on every byte
// but the last. Stack-allocated, no heap traffic on the glyf hot path.
type base128 struct {
	b [5]byte
	n int
}

// Bytes returns the encoded bytes.
func (v base128) Bytes() []byte {
	return v.b[:v.n]
}

// encodeBase128 encodes v as UIntBase128 (see spec https://www.w3.org/TR/WOFF2/#DataTypes).
func encodeBase128(v uint32) base128 {
	var groups [5]byte
	n := 0
	groups[0] = byte(v & 0x7F)
	v >>= 7
	n = 1
	for v != 0 {
		groups[n] = byte(v&0x7F) | 0x80
		v >>= 7
		n++
	}

	var out base128
	out.n = n
	for i := 0; i < n; i++ {
		out.b[i] = groups[n-1-i]
	}
	return out
}

// uint16v holds the encoding of a 255UInt16 value: 1-3 bytes.
type uint16v struct {
	b [3]byte
	n int
}

// Bytes returns the encoded bytes.
func (v uint16v) Bytes() []byte {
	return v.b[:v.n]
}

// encode255Uint16 encodes v using the 255UInt16 scheme: three escape codes
// (253, 254, 255) select among four ranges (see spec.md §4.1).
func encode255Uint16(v uint16) uint16v {
	switch {
	case v < 253:
		return uint16v{b: [3]byte{byte(v)}, n: 1}
	case v < 506:
		return uint16v{b: [3]byte{253, byte(v - 253)}, n: 2}
	case v < 762:
		return uint16v{b: [3]byte{254, byte(v - 506)}, n: 2}
	default:
		return uint16v{b: [3]byte{255, byte(v >> 8), byte(v & 0xFF)}, n: 3}
	}
}
