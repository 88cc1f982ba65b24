package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tdewolff/unscramble"
)

type Decode struct {
	Quiet   bool   `short:"q" desc:"Suppress output except for errors."`
	Force   bool   `short:"f" desc:"Force overwriting existing files."`
	TTX     bool   `desc:"Decompile the font with ttx, see also the TTX environment variable."`
	Timeout int    `desc:"Timeout in seconds for ttx." default:"30"`
	Output  string `short:"o" desc:"Output directory." default:"."`
	Input   string `index:"0" desc:"File containing the src descriptor of an @font-face rule." default:"-"`
}

func (cmd *Decode) Run() error {
	src, err := readFile(cmd.Input)
	if err != nil {
		return err
	}
	ext, b, err := unscramble.DecodeFontFace(unscramble.FontFace{Src: strings.TrimSpace(string(src))})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cmd.Output, 0755); err != nil {
		return err
	}
	filename := filepath.Join(cmd.Output, "font."+ext)
	if err := writeFile(filename, cmd.Force, b); err != nil {
		return err
	}
	if !cmd.Quiet {
		fmt.Printf("%v:  %v bytes\n", filename, len(b))
	}

	if cmd.TTX {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cmd.Timeout)*time.Second)
		defer cancel()

		var decompiler Decompiler = TTX{executable("ttx", "TTX")}
		output, err := decompiler.Decompile(ctx, filename)
		if err != nil {
			return err
		}
		if !cmd.Quiet {
			fmt.Printf("%v\n", output)
		}
	}
	return nil
}
