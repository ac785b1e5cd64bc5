package woff2

import (
	"errors"
	"fmt"
)

// ErrParseInt is returned when a quality string is not a decimal integer.
var ErrParseInt = errors.New("quality must be a decimal integer")

// DataTooShortError is returned when the input buffer ends mid-header or
// mid-directory, or a required table is shorter than its minimum size.
type DataTooShortError struct {
	Context string
}

func (e *DataTooShortError) Error() string {
	return fmt.Sprintf("data too short: %s", e.Context)
}

// UnsupportedFormatError is returned when the SFNT flavor is not the
// TrueType outline flavor (0x00010000).
type UnsupportedFormatError struct{}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported sfnt flavor"
}

// TableOutOfBoundsError is returned when a directory entry's offset+length
// exceeds the input length.
type TableOutOfBoundsError struct {
	Tag string
}

func (e *TableOutOfBoundsError) Error() string {
	return fmt.Sprintf("table out of bounds: %s", e.Tag)
}

// InvalidGlyphError is returned when the glyf parser encounters a
// malformed or truncated glyph record.
type InvalidGlyphError struct {
	Reason string
}

func (e *InvalidGlyphError) Error() string {
	return fmt.Sprintf("invalid glyph: %s", e.Reason)
}

// CompressionError is returned when the Brotli adapter fails.
type CompressionError struct {
	Msg string
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("compression: %s", e.Msg)
}

func dataTooShort(context string) error {
	return &DataTooShortError{Context: context}
}

func tableOutOfBounds(tag string) error {
	return &TableOutOfBoundsError{Tag: tag}
}

func invalidGlyph(reason string) error {
	return &InvalidGlyphError{Reason: reason}
}
