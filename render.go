package unscramble

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/tdewolff/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RenderText draws a line of text in black on white using the given font file, the input for text recognition when a font cannot be matched. The font size is scaled so that ascent plus descent equals size pixels, and padding pixels are added around the text.
func RenderText(b []byte, text string, size float64, padding int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("bad font size %v", size)
	}
	b, err := font.ToSFNT(b)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(b)
	if err != nil {
		return nil, err
	}

	sample := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: xfont.HintingNone})
	metrics := sample.Metrics()
	sample.Close()
	if height := metrics.Ascent + metrics.Descent; 0 < height {
		size *= size / fix2float(height)
	}

	face := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: xfont.HintingNone})
	defer face.Close()

	bounds, advance := xfont.BoundString(face, text)
	ascent := -bounds.Min.Y.Floor()
	descent := bounds.Max.Y.Ceil()
	if ascent < 0 {
		ascent = 0
	}
	if descent < 0 {
		descent = 0
	}
	width := advance.Ceil() + 2*padding
	height := ascent + descent + 2*padding
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("empty text")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	d := &xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(padding, padding+ascent),
	}
	d.DrawString(text)
	return img, nil
}

func fix2float(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
