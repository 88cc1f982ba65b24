package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/tdewolff/prompt"
	"github.com/tdewolff/unscramble"
	"golang.org/x/text/unicode/runenames"
)

func printableRune(r rune) string {
	if unicode.IsGraphic(r) && !unicode.Is(unicode.Co, r) {
		return fmt.Sprintf("%c", r)
	} else if r < 128 {
		return fmt.Sprintf("0x%02X", r)
	}
	return fmt.Sprintf("%U", r)
}

func describeRune(r rune) string {
	name := runenames.Name(r)
	if name == "" || name == "<Private Use>" {
		return fmt.Sprintf("%U %s", r, printableRune(r))
	}
	return fmt.Sprintf("%U %s (%s)", r, printableRune(r), name)
}

func readFile(filename string) ([]byte, error) {
	var err error
	var r *os.File
	if filename == "" || filename == "-" {
		r = os.Stdin
	} else if r, err = os.Open(filename); err != nil {
		return nil, err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		r.Close()
		return nil, err
	} else if err := r.Close(); err != nil {
		return nil, err
	}
	return b, nil
}

func readFont(filename string) (*unscramble.Font, error) {
	b, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	font, err := unscramble.Parse(b)
	if err != nil {
		if filename == "-" {
			return nil, err
		}
		return nil, fmt.Errorf("%v: %v", filename, err)
	}
	return font, nil
}

func readLines(filename string) ([]string, error) {
	b, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	lines := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(b))
	scanner.Buffer(nil, len(b)+1)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// confirmOverwrite returns false if the file exists and the user does not want to overwrite it.
func confirmOverwrite(filename string, force bool) bool {
	if filename == "" || filename == "-" || force {
		return true
	} else if _, err := os.Stat(filename); err == nil {
		return prompt.YesNo(fmt.Sprintf("%s already exists, overwrite?", filename), false)
	}
	return true
}

func writeFile(filename string, force bool, b []byte) error {
	var w io.WriteCloser
	if filename == "" || filename == "-" {
		w = os.Stdout
	} else {
		if !confirmOverwrite(filename, force) {
			return fmt.Errorf("file already exists")
		}
		var err error
		if w, err = os.Create(filename); err != nil {
			return err
		}
	}

	if _, err := w.Write(b); err != nil {
		w.Close()
		return err
	} else if err := w.Close(); err != nil {
		return err
	}
	return nil
}

func writeLines(filename string, force bool, lines []string) error {
	b := []byte(strings.Join(lines, "\n"))
	if filename == "" || filename == "-" {
		b = append(b, '\n')
	}
	return writeFile(filename, force, b)
}

func loadIndices(filenames []string) (*unscramble.Index, error) {
	if len(filenames) == 0 {
		return nil, fmt.Errorf("reference index not set")
	}
	var idx *unscramble.Index
	for _, filename := range filenames {
		idx2, err := unscramble.LoadIndex(filename)
		if err != nil {
			return nil, fmt.Errorf("%v: %v", filename, err)
		}
		if idx == nil {
			idx = idx2
		} else {
			idx = idx.Merge(idx2)
		}
	}
	for _, c := range idx.Collisions() {
		Warning.Printf("reference indices disagree on fingerprint %v", c)
	}
	return idx, nil
}
