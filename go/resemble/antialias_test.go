package resemble

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasterlab/resemble/go/image/text"
)

func aaTolerance(t *testing.T) Tolerance {
	tol, err := ToleranceForProfile(ProfileIgnoreAntialiasing)
	require.NoError(t, err)
	return tol
}

func TestAntialiased_EdgeSampleWithoutDuplicateNeighborsIsFlagged(t *testing.T) {
	// Every neighbor is a slightly different gray, so the center has no
	// RGB-identical sibling.
	img := text.MustToNRGBA(`! RESEMBLETEXT
3 3
0x60 0x61 0x62
0x63 0x64 0x65
0x66 0x67 0x68
`)
	assert.True(t, antialiased(img, 1, 1, aaTolerance(t)))
}

func TestAntialiased_SolidFillIsNotFlagged(t *testing.T) {
	img := text.MustToNRGBA(`! RESEMBLETEXT
3 3
0x64 0x64 0x64
0x64 0x64 0x64
0x64 0x64 0x64
`)
	assert.False(t, antialiased(img, 1, 1, aaTolerance(t)))
}

func TestAntialiased_TwoHighContrastSiblingsTriggerEarlyExit(t *testing.T) {
	// Two white neighbors are far beyond the MaxBrightness contrast
	// threshold of 96. The remaining six neighbors are identical to the
	// center, which would otherwise veto the classification; the early
	// exit must win.
	img := text.MustToNRGBA(`! RESEMBLETEXT
3 3
0xff 0x64 0xff
0x64 0x64 0x64
0x64 0x64 0x64
`)
	assert.True(t, antialiased(img, 1, 1, aaTolerance(t)))
}

func TestAntialiased_TwoDifferentHueSiblingsTriggerEarlyExit(t *testing.T) {
	// Center is red (hue 0); two blue neighbors are 2/3 away in hue, well
	// past the 0.3 threshold, while staying within the brightness contrast
	// threshold. The six red neighbors are identical to the center.
	img := text.MustToNRGBA(`! RESEMBLETEXT
3 3
0x0000ffff 0xff0000ff 0x0000ffff
0xff0000ff 0xff0000ff 0xff0000ff
0xff0000ff 0xff0000ff 0xff0000ff
`)
	assert.True(t, antialiased(img, 1, 1, aaTolerance(t)))
}

func TestAntialiased_SingleOutliersDoNotOverrideDuplicateNeighbors(t *testing.T) {
	// Exactly one high-contrast sibling (0xfa) and exactly one
	// different-hue sibling (pure blue), neither enough for the early
	// exit. Two neighbors are RGB-identical to the center, so the
	// equivalent-sibling tie-break reports solid fill.
	img := text.MustToNRGBA(`! RESEMBLETEXT
3 3
0xfa 0x64 0x0000c8ff
0x65 0x64 0x66
0x64 0x67 0x68
`)
	tol := aaTolerance(t)
	assert.False(t, antialiased(img, 1, 1, tol))

	// Dropping one of the duplicate neighbors flips the verdict.
	img.SetNRGBA(0, 2, color.NRGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff})
	assert.True(t, antialiased(img, 1, 1, tol))
}

func TestAntialiased_CornerPixelScansOnlyAvailableNeighbors(t *testing.T) {
	// The corner pixel has three in-bounds neighbors, two of which are
	// identical to it; no out-of-bounds access, no wraparound.
	img := text.MustToNRGBA(`! RESEMBLETEXT
3 3
0x64 0x64 0x00
0x64 0x20 0x10
0x00 0x20 0x30
`)
	tol := aaTolerance(t)
	assert.False(t, antialiased(img, 0, 0, tol))

	// The opposite corner's neighbors are all different from it.
	assert.True(t, antialiased(img, 2, 2, tol))
}

func TestAntialiased_SinglePixelImageHasNoNeighbors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	// Zero neighbors means zero equivalent siblings.
	assert.True(t, antialiased(img, 0, 0, aaTolerance(t)))
}
