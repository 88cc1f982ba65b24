package main

import (
	"fmt"

	"github.com/tdewolff/unscramble"
)

type Rewrite struct {
	Force      bool     `short:"f" desc:"Force overwriting existing files."`
	References []string `short:"r" name:"reference" desc:"Reference index file. Can be given multiple times."`
	Fonts      []string `name:"font" desc:"Scrambled font file used by the text. Can be given multiple times, later fonts take precedence."`
	Output     string   `short:"o" desc:"Output text file." default:"-"`
	Input      string   `index:"0" desc:"Input text file." default:"-"`
}

func (cmd *Rewrite) Run() error {
	if len(cmd.Fonts) == 0 {
		return fmt.Errorf("font file names not set")
	}
	idx, err := loadIndices(cmd.References)
	if err != nil {
		return err
	}

	m := unscramble.SubstitutionMap{}
	for _, filename := range cmd.Fonts {
		font, err := readFont(filename)
		if err != nil {
			Error.Println(err)
			continue
		}
		m.Merge(unscramble.Match(font, idx))
	}

	lines, err := readLines(cmd.Input)
	if err != nil {
		return err
	}
	return writeLines(cmd.Output, cmd.Force, unscramble.RewriteLines(lines, m))
}
