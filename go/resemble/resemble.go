// Package resemble computes a perceptual difference between two raster
// images: a mismatch percentage and a diff image highlighting the pixels that
// differ. It is meant for visual regression testing, where anti-aliasing and
// small color drift between otherwise identical renderings should not flag a
// change.
//
// Comparisons are stateless and deterministic. The images are compared
// pixel-for-pixel over their overlap region, the rectangle
// (min(w1,w2), min(h1,h2)); regions outside the overlap are ignored. Callers
// that require equal dimensions must check them before comparing.
package resemble

import (
	"image"
	"image/color"
	"image/draw"
	"runtime"

	"github.com/rasterlab/resemble/go/util"
	"github.com/rasterlab/resemble/go/workerpool"
)

// MismatchColor is the sentinel written into the diff image wherever the two
// inputs differ.
var MismatchColor = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// Result is the outcome of comparing two images.
type Result struct {
	// Diff has the dimensions of the overlap region. Matching coordinates
	// hold the first image's pixel, mismatching ones hold MismatchColor.
	Diff *image.NRGBA

	// MismatchPercent is the share of overlap pixels that mismatched, in
	// [0, 100].
	MismatchPercent float64

	// DimsDiffer is true if the two inputs had different dimensions.
	DimsDiffer bool
}

// Compare compares the two images under tol and returns the diff image along
// with the mismatch percentage.
func Compare(img1, img2 image.Image, tol Tolerance) *Result {
	a := GetNRGBA(img1)
	b := GetNRGBA(img2)
	width := util.MinInt(a.Bounds().Dx(), b.Bounds().Dx())
	height := util.MinInt(a.Bounds().Dy(), b.Bounds().Dy())
	diff := image.NewNRGBA(image.Rect(0, 0, width, height))
	mismatches := scan(a, b, diff, width, height, tol)
	return &Result{
		Diff:            diff,
		MismatchPercent: mismatchPercent(mismatches, width*height),
		DimsDiffer:      a.Bounds().Dx() != b.Bounds().Dx() || a.Bounds().Dy() != b.Bounds().Dy(),
	}
}

// MismatchPercent is Compare without the diff image, for callers that only
// need the scalar.
func MismatchPercent(img1, img2 image.Image, tol Tolerance) float64 {
	a := GetNRGBA(img1)
	b := GetNRGBA(img2)
	width := util.MinInt(a.Bounds().Dx(), b.Bounds().Dx())
	height := util.MinInt(a.Bounds().Dy(), b.Bounds().Dy())
	mismatches := scan(a, b, nil, width, height, tol)
	return mismatchPercent(mismatches, width*height)
}

func mismatchPercent(mismatches, totalPixels int) float64 {
	if totalPixels == 0 {
		return 0
	}
	return float64(mismatches) * 100 / float64(totalPixels)
}

// scan classifies every coordinate of the overlap region and returns the
// number of mismatches. If diff is non-nil the corresponding output pixel is
// written for every coordinate. Rows are partitioned into contiguous chunks
// handed to a worker pool; each worker writes only its own rows and counts
// mismatches locally, and the local counts are summed after the join, so the
// result does not depend on how the work was partitioned.
func scan(a, b, diff *image.NRGBA, width, height int, tol Tolerance) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	numWorkers := util.MinInt(runtime.NumCPU(), height)
	rowsPerChunk := (height + numWorkers - 1) / numWorkers
	numChunks := (height + rowsPerChunk - 1) / rowsPerChunk

	counts := make([]int, numChunks)
	pool := workerpool.New(numWorkers)
	for i := 0; i < numChunks; i++ {
		chunk := i
		y0 := chunk * rowsPerChunk
		y1 := util.MinInt(y0+rowsPerChunk, height)
		pool.Go(func() {
			mismatches := 0
			for y := y0; y < y1; y++ {
				for x := 0; x < width; x++ {
					if pixelsMatch(a, b, x, y, tol) {
						if diff != nil {
							diff.SetNRGBA(x, y, a.NRGBAAt(x, y))
						}
					} else {
						if diff != nil {
							diff.SetNRGBA(x, y, MismatchColor)
						}
						mismatches++
					}
				}
			}
			counts[chunk] = mismatches
		})
	}
	pool.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

// GetNRGBA converts the image to an *image.NRGBA with a zero-origin bounds
// rectangle, copying only when necessary. The returned image is never
// aliased to a premultiplied source.
func GetNRGBA(img image.Image) *image.NRGBA {
	switch t := img.(type) {
	case *image.NRGBA:
		if t.Bounds().Min == (image.Point{}) {
			return t
		}
		return recode(t)
	case *image.RGBA:
		for i := 3; i < len(t.Pix); i += 4 {
			if t.Pix[i] != 0xff {
				return recode(t)
			}
		}
		// If every alpha is 0xff then t.Pix is already in NRGBA form,
		// simply re-label it.
		return &image.NRGBA{
			Pix:    t.Pix,
			Stride: t.Stride,
			Rect:   t.Rect.Sub(t.Rect.Min),
		}
	default:
		return recode(img)
	}
}

func recode(img image.Image) *image.NRGBA {
	ret := image.NewNRGBA(img.Bounds().Sub(img.Bounds().Min))
	draw.Draw(ret, ret.Bounds(), img, img.Bounds().Min, draw.Src)
	return ret
}
