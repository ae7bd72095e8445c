package raster_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"penplot/pkg/errkind"
	"penplot/pkg/raster"
)

func writeImage(t *testing.T, path string, img image.Image, encode func(*os.File, image.Image) error) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f, img))
	require.NoError(t, f.Close())
}

func checkerboard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	writeImage(t, path, checkerboard(), func(f *os.File, img image.Image) error { return png.Encode(f, img) })

	img, format, err := raster.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 3, img.Height)
	assert.Equal(t, uint8(0), img.LuminanceAt(0, 0))
	assert.Equal(t, uint8(255), img.LuminanceAt(1, 0))
	assert.Equal(t, uint8(255), img.LuminanceAt(-1, 0), "outside reads as white")
	assert.Equal(t, color.Gray{Y: 0}, img.At(2, 2))
}

func TestLoadBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bmp")
	writeImage(t, path, checkerboard(), func(f *os.File, img image.Image) error { return bmp.Encode(f, img) })

	img, format, err := raster.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bmp", format)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := raster.Load(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.Equal(t, errkind.Input, errkind.Of(err))

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, _, err = raster.Load(garbage)
	require.Error(t, err)
	assert.Equal(t, errkind.Input, errkind.Of(err))
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 7, 6))
	src.SetGray(6, 5, color.Gray{Y: 42})
	img := raster.FromImage(src)
	assert.Equal(t, []uint8{0, 42}, img.Pix)
}

func TestColorModelMatchesLoad(t *testing.T) {
	img := raster.New(1, 1)
	translucentRed := color.NRGBA{R: 255, A: 128}

	got := img.ColorModel().Convert(translucentRed)
	img.Set(0, 0, raster.FromImage(&image.NRGBA{
		Pix:    []uint8{255, 0, 0, 128},
		Stride: 4,
		Rect:   image.Rect(0, 0, 1, 1),
	}).LuminanceAt(0, 0))
	assert.Equal(t, img.At(0, 0), got)
	assert.NotEqual(t, color.Gray{Y: 76}, got, "translucent ink is lighter than opaque ink")
}
