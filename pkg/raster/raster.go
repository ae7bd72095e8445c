// Package raster loads images and reduces them to a luminance sample grid.
package raster

import (
	"bufio"
	"image"
	imgcolor "image/color"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"penplot/pkg/color"
	"penplot/pkg/errkind"
)

// Image is a row-major grid of 8-bit luminance samples, 0 being black.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// ColorModel converts colors with the same luminance rule Load applies.
func (img *Image) ColorModel() imgcolor.Model {
	return color.Model
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) imgcolor.Color {
	return imgcolor.Gray{Y: img.Pix[x+y*img.Width]}
}

// LuminanceAt returns the sample at x, y. Points outside the image read as
// white.
func (img *Image) LuminanceAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0xff
	}
	return img.Pix[x+y*img.Width]
}

// Set stores a luminance sample.
func (img *Image) Set(x, y int, l uint8) {
	img.Pix[x+y*img.Width] = l
}

// FromImage converts src with the fixed luminance conversion in
// color.Luminance. The result is anchored at 0, 0 whatever src's bounds are.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := New(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[i] = color.Luminance(src.At(x, y))
			i++
		}
	}
	return img
}

// Load decodes the image file at path and converts it to luminance.
// Any decoder failure is reported as an input error.
func Load(path string) (*Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errkind.Wrapf(errkind.Input, err, "unable to open image %s", path)
	}
	defer f.Close()

	src, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", errkind.Wrapf(errkind.Input, err, "unable to decode image %s", path)
	}
	return FromImage(src), format, nil
}
