package main

import (
	"fmt"
	"strings"
)

type Info struct {
	Glyph string `short:"g" desc:"Only show the glyph with this name, including its points."`
	Input string `index:"0" desc:"Font file, either a ttx dump or a TTF/WOFF/WOFF2/EOT file."`
}

func (cmd *Info) Run() error {
	font, err := readFont(cmd.Input)
	if err != nil {
		return err
	}

	if cmd.Glyph != "" {
		g, ok := font.Glyph(cmd.Glyph)
		if !ok {
			return fmt.Errorf("glyph not found: %s", cmd.Glyph)
		}
		fmt.Printf("Glyph %s:\n", g.Name)
		if r, ok := font.Codes[g.Name]; ok {
			fmt.Printf("  Code: %s\n", describeRune(r))
		} else {
			fmt.Printf("  Code: none\n")
		}
		fmt.Printf("  Fingerprint: %v\n", g.Fingerprint())
		fmt.Printf("  XMin: %v\n", g.BBox.XMin)
		fmt.Printf("  YMin: %v\n", g.BBox.YMin)
		fmt.Printf("  XMax: %v\n", g.BBox.XMax)
		fmt.Printf("  YMax: %v\n", g.BBox.YMax)
		fmt.Printf("  Contours: %v\n", len(g.Contours))
		for i, contour := range g.Contours {
			fmt.Printf("  Contour %d:\n", i)
			for _, pt := range contour {
				onCurve := "Off"
				if pt.OnCurve {
					onCurve = "On"
				}
				fmt.Printf("    %8v %8v %3v\n", pt.X, pt.Y, onCurve)
			}
		}
		return nil
	}

	fmt.Printf("File: %s\n\n", cmd.Input)
	fmt.Printf("Glyphs: %d\n", len(font.Glyphs))
	fmt.Printf("Codes: %d\n\n", len(font.Codes))

	nLen := 0
	for _, g := range font.Glyphs {
		if nLen < len(g.Name) {
			nLen = len(g.Name)
		}
	}
	for i, g := range font.Glyphs {
		code := strings.Repeat(" ", 6)
		if r, ok := font.Codes[g.Name]; ok {
			code = fmt.Sprintf("%6s", strings.TrimPrefix(fmt.Sprintf("%U", r), "U+"))
		}
		fmt.Printf("  %5d  %-*s  %s  bbox=(%d,%d,%d,%d)  contours=%-3d  %v\n", i, nLen, g.Name, code, g.BBox.XMin, g.BBox.YMin, g.BBox.XMax, g.BBox.YMax, len(g.Contours), g.Fingerprint())
	}
	return nil
}
