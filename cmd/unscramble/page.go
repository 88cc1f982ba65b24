package main

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/tdewolff/unscramble"
)

type Page struct {
	Quiet      bool     `short:"q" desc:"Suppress output except for errors."`
	Force      bool     `short:"f" desc:"Force overwriting existing files."`
	References []string `short:"r" name:"reference" desc:"Reference index file. Can be given multiple times."`
	Selector   string   `desc:"CSS selector of the element containing the scrambled text." default:"#manuscript"`
	OCR        string   `desc:"Text recognizer executable, used on the rendered lines when no substitutions could be found."`
	Language   string   `short:"l" desc:"Recognition language, defaults to simplified Chinese."`
	Size       float64  `short:"s" desc:"Text height in pixels of the rendered lines." default:"100"`
	Timeout    int      `desc:"Timeout in seconds per recognized line." default:"30"`
	Output     string   `short:"o" desc:"Output text file." default:"output.txt"`
	Input      string   `index:"0" desc:"Saved HTML page." default:"-"`
}

func (cmd *Page) Run() error {
	if cmd.Quiet {
		Warning = log.New(io.Discard, "", 0)
	}

	idx, err := loadIndices(cmd.References)
	if err != nil {
		return err
	}
	b, err := readFile(cmd.Input)
	if err != nil {
		return err
	}
	page, err := unscramble.ParsePage(bytes.NewReader(b), cmd.Selector)
	if err != nil {
		return err
	}
	if len(page.FontFaces) == 0 {
		Warning.Printf("no @font-face rules for font family %q", page.FontFamily)
	}

	m, err := unscramble.Resolve(page.FontFaces, idx)
	if err != nil {
		Warning.Printf("some fonts could not be used: %v", err)
	}
	lines := unscramble.RewriteLines(page.Lines, m)

	if len(m) == 0 && cmd.OCR != "" {
		for _, face := range page.FontFaces {
			_, font, err := unscramble.DecodeFontFace(face)
			if err != nil {
				continue
			}
			ocr := OCRTool{cmd.OCR, cmd.Language}
			if lines, err = recognizeLines(ocr, font, page.Lines, cmd.Size, cmd.Timeout); err != nil {
				return err
			}
			break
		}
	}

	if err := writeLines(cmd.Output, cmd.Force, lines); err != nil {
		return err
	}
	if !cmd.Quiet && cmd.Output != "-" {
		fmt.Printf("%v:  %v lines,  %v substitutions from %v fonts\n", cmd.Output, len(lines), len(m), len(page.FontFaces))
	}
	return nil
}
