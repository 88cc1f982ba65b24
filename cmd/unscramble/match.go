package main

import (
	"fmt"

	"github.com/tdewolff/unscramble"
)

type Match struct {
	References []string `short:"r" name:"reference" desc:"Reference index file. Can be given multiple times."`
	Input      string   `index:"0" desc:"Scrambled font file, either a ttx dump or a TTF/WOFF/WOFF2/EOT file."`
}

func (cmd *Match) Run() error {
	idx, err := loadIndices(cmd.References)
	if err != nil {
		return err
	}
	font, err := readFont(cmd.Input)
	if err != nil {
		return err
	}

	m := unscramble.Match(font, idx)
	for _, r := range m.Runes() {
		fmt.Printf("%s  =>  %s\n", describeRune(r), describeRune(m[r]))
	}
	if unmatched := len(font.Codes) - len(m); 0 < unmatched {
		Warning.Printf("%d of %d characters without match", unmatched, len(font.Codes))
	}
	return nil
}
