package color

import (
	"image/color"
	"strings"

	"gopkg.in/go-playground/colors.v1"
)

// Luminance reduces c to a single 8-bit luminance sample using the ITU-R 601
// weights in 16.16 fixed point, rounded the way PIL converts to mode "L".
// Translucent colors are composited over white first, so a transparent
// background reads as paper rather than ink.
func Luminance(c color.Color) uint8 {
	r, g, b, a := c.RGBA()
	// RGBA is alpha-premultiplied; adding the missing coverage as white
	// composites over a white background.
	bg := 0xffff - a
	r8 := (r + bg) >> 8
	g8 := (g + bg) >> 8
	b8 := (b + bg) >> 8
	return uint8((19595*r8 + 38470*g8 + 7471*b8 + 0x8000) >> 16)
}

// Model converts any color to color.Gray through Luminance.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if g, ok := c.(color.Gray); ok {
		return g
	}
	return color.Gray{Y: Luminance(c)}
})

// Some SVG color keywords, enough for the paints plotter input uses in practice.
// Anything else that colors.Parse can't read is assumed to be visible ink.
var keywords = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"magenta": "#ff00ff",
	"cyan":    "#00ffff",
	"yellow":  "#ffff00",
}

// Visible reports whether a stroke or fill paint leaves a mark on white paper.
// "none", "transparent" and white are invisible; so is an empty paint.
func Visible(paint string) bool {
	paint = strings.ToLower(strings.TrimSpace(paint))
	switch paint {
	case "", "none", "transparent":
		return false
	}
	if hex, ok := keywords[paint]; ok {
		paint = hex
	}
	c, err := colors.Parse(paint)
	if err != nil {
		// url(#gradient), currentColor and the like.
		return true
	}
	if rgba, ok := c.(*colors.RGBAColor); ok && rgba.A == 0 {
		return false
	}
	rgb := c.ToRGB()
	return !(rgb.R == 0xff && rgb.G == 0xff && rgb.B == 0xff)
}
