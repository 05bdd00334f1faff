package resemble

import (
	"image"
	"image/color"

	"github.com/rasterlab/resemble/go/util"
)

// brightness returns the weighted luminance of c in the 0-255 domain, using
// the NTSC weights. No gamma correction is applied.
func brightness(c color.NRGBA) float64 {
	return 0.3*float64(c.R) + 0.59*float64(c.G) + 0.11*float64(c.B)
}

// hue returns the HSV hue of c normalized to [0, 1). Achromatic pixels
// (R == G == B) report 0.
func hue(c color.NRGBA) float64 {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}
	if max == min {
		return 0
	}
	d := max - min
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

// withinInt reports whether a and b differ by at most tol. The boundary is
// inclusive; a delta of exactly tol still matches.
func withinInt(a, b, tol int) bool {
	return util.AbsInt(a-b) <= tol
}

// withinFloat is withinInt for the brightness domain.
func withinFloat(a, b, tol float64) bool {
	return util.AbsFloat64(a-b) <= tol
}

// sameRGB reports exact equality of the color channels, alpha excluded.
func sameRGB(a, b color.NRGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}

// brightnessSimilar reports whether the brightness of the two pixels is
// within the MinBrightness threshold.
func brightnessSimilar(a, b color.NRGBA, tol Tolerance) bool {
	return withinFloat(brightness(a), brightness(b), tol.MinBrightness)
}

// rgbSimilar reports whether each color channel is within its per-channel
// threshold.
func rgbSimilar(a, b color.NRGBA, tol Tolerance) bool {
	return withinInt(int(a.R), int(b.R), tol.Red) &&
		withinInt(int(a.G), int(b.G), tol.Green) &&
		withinInt(int(a.B), int(b.B), tol.Blue)
}

// pixelsMatch decides whether the pixels at (x, y) of the two images count as
// matching under tol. The branches short-circuit in a fixed order:
//
//  1. An alpha delta beyond the Alpha threshold is always a mismatch, no
//     matter which other flags are set.
//  2. With IgnoreColors, only brightness is compared.
//  3. Channel-wise similar RGB is a match.
//  4. With IgnoreAntialiasing, a pixel whose neighborhood (in either image)
//     marks it as an anti-aliasing artifact falls back to the brightness
//     comparison. Anti-aliasing relaxes the strict RGB test to a
//     brightness-only test, it is not an unconditional match.
//  5. Anything else is a mismatch.
func pixelsMatch(img1, img2 *image.NRGBA, x, y int, tol Tolerance) bool {
	p1 := img1.NRGBAAt(x, y)
	p2 := img2.NRGBAAt(x, y)
	if !withinInt(int(p1.A), int(p2.A), tol.Alpha) {
		return false
	}
	if tol.IgnoreColors {
		return brightnessSimilar(p1, p2, tol)
	}
	if rgbSimilar(p1, p2, tol) {
		return true
	}
	if tol.IgnoreAntialiasing && (antialiased(img1, x, y, tol) || antialiased(img2, x, y, tol)) {
		return brightnessSimilar(p1, p2, tol)
	}
	return false
}
