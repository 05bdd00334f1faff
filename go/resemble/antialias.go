package resemble

import (
	"image"

	"github.com/rasterlab/resemble/go/util"
)

// antialiased reports whether the pixel at (x, y) looks like an anti-aliased
// edge sample. It scans the 8 neighbors within Chebyshev distance 1, clamped
// to the image bounds, so edge and corner pixels scan fewer neighbors.
//
// A pixel is flagged as soon as more than one neighbor is a high-contrast
// sibling (brightness delta beyond MaxBrightness) or more than one neighbor
// has a clearly different hue (delta above 0.3). Failing that, a pixel whose
// neighborhood contains fewer than two exact RGB duplicates of itself is
// flagged: solid fill regions always have near-duplicate neighbors, edge
// samples do not.
func antialiased(img *image.NRGBA, x, y int, tol Tolerance) bool {
	b := img.Bounds()
	left := util.MaxInt(x-1, 0)
	right := util.MinInt(x+1, b.Dx()-1)
	top := util.MaxInt(y-1, 0)
	bottom := util.MinInt(y+1, b.Dy()-1)

	center := img.NRGBAAt(x, y)
	centerBrightness := brightness(center)
	centerHue := hue(center)

	highContrast := 0
	differentHue := 0
	equivalent := 0
	for nx := left; nx <= right; nx++ {
		for ny := top; ny <= bottom; ny++ {
			if nx == x && ny == y {
				continue
			}
			n := img.NRGBAAt(nx, ny)
			if !withinFloat(centerBrightness, brightness(n), tol.MaxBrightness) {
				highContrast++
			}
			if util.AbsFloat64(centerHue-hue(n)) > 0.3 {
				differentHue++
			}
			if highContrast > 1 || differentHue > 1 {
				return true
			}
			if sameRGB(center, n) {
				equivalent++
			}
		}
	}
	return equivalent < 2
}
