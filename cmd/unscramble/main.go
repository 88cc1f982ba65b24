package main

import (
	"log"
	"os"

	"github.com/tdewolff/argp"
)

var (
	Error   *log.Logger
	Warning *log.Logger
)

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)
	Warning = log.New(os.Stderr, "WARNING: ", 0)

	cmd := argp.New("Recover text rendered with scrambled glyph fonts")
	cmd.AddCmd(&Index{}, "index", "Build a reference index from a font with known glyphs")
	cmd.AddCmd(&Merge{}, "merge", "Merge reference indices")
	cmd.AddCmd(&Info{}, "info", "List glyphs with their fingerprints")
	cmd.AddCmd(&Match{}, "match", "Show the substitutions for a scrambled font")
	cmd.AddCmd(&Rewrite{}, "rewrite", "Rewrite text with the substitutions of scrambled fonts")
	cmd.AddCmd(&Page{}, "page", "Recover the text of a saved HTML page")
	cmd.AddCmd(&Decode{}, "decode", "Decode an embedded @font-face source to a font file")
	cmd.AddCmd(&OCR{}, "ocr", "Render text with a font and recognize it")
	cmd.Parse()
}
