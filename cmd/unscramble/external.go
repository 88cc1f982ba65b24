package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Decompiler converts a binary font file to its XML description and returns the path of the XML file.
type Decompiler interface {
	Decompile(context.Context, string) (string, error)
}

// Recognizer returns the text recognized in an image.
type Recognizer interface {
	Recognize(context.Context, image.Image) (string, error)
}

func executable(name, env string) string {
	if path := os.Getenv(env); path != "" {
		return path
	}
	return name
}

func run(ctx context.Context, name string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %v", name, ctx.Err())
		} else if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %v: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return stdout.Bytes(), nil
}

// TTX runs fontTools' ttx, writing the dump next to the font file.
type TTX struct {
	Command string
}

func (ttx TTX) Decompile(ctx context.Context, filename string) (string, error) {
	output := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".ttx"
	if _, err := run(ctx, ttx.Command, []string{"-q", "-f", "-t", "glyf", "-t", "cmap", "-o", output, filename}, nil); err != nil {
		return "", err
	}
	return output, nil
}

var newlines = regexp.MustCompile(`\n+`)

// OCRTool runs the platform text recognizer, which reads a PNG image from stdin.
type OCRTool struct {
	Command  string
	Language string
}

func (ocr OCRTool) Recognize(ctx context.Context, img image.Image) (string, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return "", err
	}

	var args []string
	switch runtime.GOOS {
	case "darwin":
		language := ocr.Language
		if language == "" {
			language = "zh-Hans"
		}
		args = []string{language, "false", "true", "-"} // fast mode, language correction
	default:
		language := ocr.Language
		if language == "" {
			language = "zh-Hans-CN"
		}
		args = []string{"--language", language, "-"}
	}
	stdout, err := run(ctx, ocr.Command, args, buf.Bytes())
	if err != nil {
		return "", err
	}
	return newlines.ReplaceAllString(strings.TrimSpace(string(stdout)), " "), nil
}
