package trace

import "penplot/pkg/raster"

// bitmap marks the foreground pixels of an image.
type bitmap struct {
	width  int
	height int
	bits   []bool
	count  int
}

func newBitmap(img *raster.Image, threshold int) *bitmap {
	bm := &bitmap{
		width:  img.Width,
		height: img.Height,
		bits:   make([]bool, img.Width*img.Height),
	}
	for i, l := range img.Pix[:len(bm.bits)] {
		if int(l) < threshold {
			bm.bits[i] = true
			bm.count++
		}
	}
	return bm
}

// at reports whether x, y is foreground. Outside the image is background.
func (bm *bitmap) at(x, y int) bool {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return false
	}
	return bm.bits[x+y*bm.width]
}

type runHandler interface {
	addRun(y, x1, x2 int)
}

// findRuns reports every horizontal run of foreground pixels, row by row.
// A run covers x1 <= x < x2.
func findRuns(bm *bitmap, handler runHandler) {
	i := 0
	for y := 0; y < bm.height; y++ {
		runStart := -1
		for x := 0; x < bm.width; x++ {
			set := bm.bits[i]
			i++
			if set {
				if runStart == -1 {
					// new run
					runStart = x
				}
			} else if runStart >= 0 {
				handler.addRun(y, runStart, x)
				runStart = -1
			}
		}
		// check for finished run at end of row
		if runStart >= 0 {
			handler.addRun(y, runStart, bm.width)
		}
	}
}
