package woff2

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEncodeBase128(t *testing.T) {
	test.T(t, encodeBase128(0).Bytes(), []byte{0x00})
	test.T(t, encodeBase128(1).Bytes(), []byte{0x01})
	test.T(t, encodeBase128(127).Bytes(), []byte{0x7F})
	test.T(t, encodeBase128(128).Bytes(), []byte{0x81, 0x00})
	test.T(t, encodeBase128(16383).Bytes(), []byte{0xFF, 0x7F})
	test.T(t, encodeBase128(4294967295).Bytes(), []byte{0x8F, 0xFF, 0xFF, 0xFF, 0x7F})
}

func TestEncode255Uint16(t *testing.T) {
	test.T(t, encode255Uint16(0).Bytes(), []byte{0})
	test.T(t, encode255Uint16(252).Bytes(), []byte{252})
	test.T(t, encode255Uint16(253).Bytes(), []byte{253, 0})
	test.T(t, encode255Uint16(505).Bytes(), []byte{253, 252})
	test.T(t, encode255Uint16(506).Bytes(), []byte{254, 0})
	test.T(t, encode255Uint16(761).Bytes(), []byte{254, 255})
	test.T(t, encode255Uint16(762).Bytes(), []byte{255, 0x02, 0xFA})
	test.T(t, encode255Uint16(65535).Bytes(), []byte{255, 0xFF, 0xFF})
}

func TestEncode255Uint16Length(t *testing.T) {
	// Every encodable value produces between 1 and 3 bytes (spec.md §4.1).
	for _, v := range []uint16{0, 1, 252, 253, 254, 505, 506, 761, 762, 763, 10000, 65535} {
		enc := encode255Uint16(v)
		if n := len(enc.Bytes()); n < 1 || 3 < n {
			t.Errorf("encode255Uint16(%d): got %d bytes, want 1-3", v, n)
		}
	}
}
