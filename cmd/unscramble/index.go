package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/tdewolff/unscramble"
)

type Index struct {
	Quiet  bool   `short:"q" desc:"Suppress output except for errors."`
	Force  bool   `short:"f" desc:"Force overwriting existing files."`
	Strict bool   `short:"s" desc:"Drop fingerprints shared by glyphs of different characters instead of keeping the last one."`
	Output string `short:"o" desc:"Reference index output file, use the .br extension for Brotli compression." default:"reference.json"`
	Input  string `index:"0" desc:"Reference font file, either a ttx dump or a TTF/WOFF/WOFF2/EOT file."`
}

func (cmd *Index) Run() error {
	if cmd.Quiet {
		Warning = log.New(io.Discard, "", 0)
	}

	if cmd.Input == "" {
		return fmt.Errorf("input file name not set")
	} else if cmd.Output == "" {
		return fmt.Errorf("output file name not set")
	}

	font, err := readFont(cmd.Input)
	if err != nil {
		return err
	}

	policy := unscramble.KeepLast
	if cmd.Strict {
		policy = unscramble.DropAmbiguous
	}
	idx := unscramble.NewIndex(font, policy)
	for _, c := range idx.Collisions() {
		Warning.Printf("glyphs share fingerprint %v", c)
	}

	if !confirmOverwrite(cmd.Output, cmd.Force) {
		return nil
	} else if err := idx.Save(cmd.Output); err != nil {
		return err
	}
	if !cmd.Quiet {
		fmt.Printf("%v:  %v glyphs => %v fingerprints,  %v collisions\n", filepath.Base(cmd.Output), len(font.Glyphs), idx.Len(), len(idx.Collisions()))
	}
	return nil
}
