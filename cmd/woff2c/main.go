// Command woff2c compresses a TrueType font into a WOFF2 web font.
package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"

	"github.com/tdewolff/woff2"
)

var (
	Error   *log.Logger
	Warning *log.Logger
)

// Compress is the argp command for woff2c: a single positional input, an
// optional positional output, and a --quality flag (spec.md §6).
type Compress struct {
	Quality     int    `short:"q" desc:"Brotli quality, 0-11"`
	NoTransform bool   `name:"no-transform" desc:"Disable the glyf/loca transform"`
	Input       string `index:"0" desc:"Input TTF file"`
	Output      string `index:"1" desc:"Output WOFF2 file (default: input with .woff2 extension)"`
}

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)
	Warning = log.New(os.Stderr, "WARNING: ", 0)

	cmd := &Compress{Quality: int(woff2.DefaultBrotliQuality)}
	argpCmd := argp.New("Compress a TTF font into a WOFF2 web font - Taco de Wolff")
	argpCmd.AddOpt(&cmd.Quality, "q", "quality", "Brotli quality, 0-11")
	argpCmd.AddOpt(&cmd.NoTransform, "", "no-transform", "Disable the glyf/loca transform")
	argpCmd.AddArg(&cmd.Input, "input", "Input TTF file")
	argpCmd.AddArg(&cmd.Output, "output", "Output WOFF2 file (default: input with .woff2 extension)")
	argpCmd.Parse()

	os.Exit(run(cmd))
}

func run(cmd *Compress) int {
	if cmd.Input == "" {
		Error.Println("missing input file")
		return 1
	}

	ttf, err := os.ReadFile(cmd.Input)
	if err != nil {
		Error.Println(err)
		return 1
	}

	output := cmd.Output
	if output == "" {
		ext := filepath.Ext(cmd.Input)
		output = strings.TrimSuffix(cmd.Input, ext) + ".woff2"
	}

	quality := woff2.NewBrotliQuality(cmd.Quality)

	var out []byte
	if cmd.NoTransform {
		out, err = woff2.EncodeNoTransform(ttf, quality)
	} else {
		out, err = woff2.Encode(ttf, quality)
	}
	if err != nil {
		Error.Println(err)
		return 1
	}

	if err := os.WriteFile(output, out, 0644); err != nil {
		Error.Println(err)
		return 1
	}
	return 0
}
