package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tdewolff/unscramble"
)

type OCR struct {
	Force    bool    `short:"f" desc:"Force overwriting existing files."`
	OCR      string  `desc:"Text recognizer executable, defaults to the OCRTOOL environment variable or ocrtool."`
	Language string  `short:"l" desc:"Recognition language, defaults to simplified Chinese."`
	Size     float64 `short:"s" desc:"Text height in pixels of the rendered lines." default:"100"`
	Timeout  int     `desc:"Timeout in seconds per line." default:"30"`
	Font     string  `name:"font" desc:"Font file to render the text with."`
	Output   string  `short:"o" desc:"Output text file." default:"-"`
	Input    string  `index:"0" desc:"Input text file." default:"-"`
}

func (cmd *OCR) Run() error {
	if cmd.Font == "" {
		return fmt.Errorf("font file name not set")
	}
	b, err := readFile(cmd.Font)
	if err != nil {
		return err
	}
	lines, err := readLines(cmd.Input)
	if err != nil {
		return err
	}

	if cmd.OCR == "" {
		cmd.OCR = executable("ocrtool", "OCRTOOL")
	}
	ocr := OCRTool{cmd.OCR, cmd.Language}
	if lines, err = recognizeLines(ocr, b, lines, cmd.Size, cmd.Timeout); err != nil {
		return err
	}
	return writeLines(cmd.Output, cmd.Force, lines)
}

// recognizeLines renders every line with the font and replaces it by the recognized text. Empty lines are kept.
func recognizeLines(recognizer Recognizer, b []byte, lines []string, size float64, timeout int) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		img, err := unscramble.RenderText(b, line, size, 10)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", i+1, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
		text, err := recognizer.Recognize(ctx, img)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", i+1, err)
		}
		out[i] = text
	}
	return out, nil
}
