package woff2

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEncodeTriplet(t *testing.T) {
	flag, data := encodeTriplet(0, 100, true)
	test.T(t, flag, byte(1))
	test.T(t, data.Bytes(), []byte{100})

	flag, data = encodeTriplet(100, 0, true)
	test.T(t, flag, byte(11))
	test.T(t, data.Bytes(), []byte{100})

	flag, data = encodeTriplet(5000, 6000, true)
	test.T(t, flag, byte(127))
	test.T(t, len(data.Bytes()), 4)

	flag, _ = encodeTriplet(0, 100, false)
	if flag&0x80 == 0 {
		t.Errorf("encodeTriplet(0, 100, false): flag %d, want high bit set", flag)
	}
}

func TestEncodeTripletDataLength(t *testing.T) {
	// Case boundaries from spec.md §4.2: data length is 1, 1, 1, 2, 3, or 4
	// depending on which of the six guards matches.
	cases := []struct {
		dx, dy int16
		want   int
	}{
		{0, 50, 1},     // case 1
		{50, 0, 1},     // case 2
		{10, 10, 1},    // case 3
		{100, 100, 2},  // case 4
		{1000, 1000, 3}, // case 5
		{-20000, 20000, 4}, // case 6
	}
	for _, c := range cases {
		_, data := encodeTriplet(c.dx, c.dy, true)
		test.T(t, len(data.Bytes()), c.want)
	}
}

func TestEncodeTripletOnCurveBit(t *testing.T) {
	flagOn, _ := encodeTriplet(10, 10, true)
	flagOff, _ := encodeTriplet(10, 10, false)
	test.T(t, flagOff, flagOn+128)
}
