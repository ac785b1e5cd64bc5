package woff2

import (
	"bytes"

	"github.com/andybalholm/brotli"
)

// brotliCompress compresses input at the given quality, the sole contract
// the encoder has with the Brotli library (spec.md §4.8). This Go binding
// has no separate mode parameter the way the reference C encoder's
// BROTLI_MODE_FONT does; quality is the only knob the caller controls.
func brotliCompress(input []byte, quality BrotliQuality) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterOptions(&buf, brotli.WriterOptions{
		Quality: quality.Int(),
		LGWin:   0,
	})
	if _, err := w.Write(input); err != nil {
		return nil, &CompressionError{Msg: err.Error()}
	}
	if err := w.Close(); err != nil {
		return nil, &CompressionError{Msg: err.Error()}
	}
	return buf.Bytes(), nil
}
