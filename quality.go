package woff2

import (
	"fmt"
	"strconv"
)

// BrotliQuality is a Brotli compression quality level, clamped to 0..=11.
type BrotliQuality int

// DefaultBrotliQuality is the quality used when none is specified, matching
// the reference woff2_compress tool's default.
const DefaultBrotliQuality BrotliQuality = 11

// NewBrotliQuality clamps v into the valid 0..=11 range.
func NewBrotliQuality(v int) BrotliQuality {
	if v < 0 {
		return 0
	} else if 11 < v {
		return 11
	}
	return BrotliQuality(v)
}

// ParseBrotliQuality parses a decimal integer and clamps it to 0..=11.
func ParseBrotliQuality(s string) (BrotliQuality, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParseInt, err)
	}
	return NewBrotliQuality(v), nil
}

// Int returns q as a plain int, e.g. for passing to brotli.WriterOptions.
func (q BrotliQuality) Int() int {
	return int(q)
}
