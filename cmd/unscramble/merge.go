package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
)

type Merge struct {
	Quiet  bool     `short:"q" desc:"Suppress output except for errors."`
	Force  bool     `short:"f" desc:"Force overwriting existing files."`
	Output string   `short:"o" desc:"Reference index output file, use the .br extension for Brotli compression."`
	Inputs []string `index:"*" desc:"Reference index files, later files take precedence."`
}

func (cmd *Merge) Run() error {
	if cmd.Quiet {
		Warning = log.New(io.Discard, "", 0)
	}

	if len(cmd.Inputs) == 0 {
		return fmt.Errorf("input file names not set")
	} else if cmd.Output == "" {
		return fmt.Errorf("output file name not set")
	}

	idx, err := loadIndices(cmd.Inputs)
	if err != nil {
		return err
	}

	if !confirmOverwrite(cmd.Output, cmd.Force) {
		return nil
	} else if err := idx.Save(cmd.Output); err != nil {
		return err
	}
	if !cmd.Quiet {
		fmt.Printf("%v:  %v indices => %v fingerprints\n", filepath.Base(cmd.Output), len(cmd.Inputs), idx.Len())
	}
	return nil
}
