// Package text contains a plain text image format encoder and decoder, used
// to write pixel-exact test images inline in test files.
//
// The format:
//
//	! RESEMBLETEXT
//	width height
//	0x000000ff 0xffffffff ...
//	0xddddddff 0xffffff88 ...
//	...
//
// Pixel values are encoded as 0xRRGGBBAA. Gray opaque pixels may be
// abbreviated as 0xXX, so these two images are equivalent:
//
//	! RESEMBLETEXT
//	2 2
//	0x00 0x11
//	0xaa 0xbb
//
//	! RESEMBLETEXT
//	2 2
//	0x000000ff 0x111111ff
//	0xaaaaaaff 0xbbbbbbff
package text

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/rasterlab/resemble/go/skerr"
)

const header = "! RESEMBLETEXT\n"

// dim parses the header and dimension lines.
func dim(reader *bufio.Reader) (int, int, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, 0, skerr.Wrapf(err, "reading header")
	}
	if line != header {
		return 0, 0, skerr.Fmt("not a RESEMBLETEXT file, got header %q", line)
	}
	line, err = reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, skerr.Wrapf(err, "reading dimensions")
	}
	var width, height int
	if n, err := fmt.Sscanf(line, "%d %d", &width, &height); err != nil || n != 2 {
		return 0, 0, skerr.Fmt("invalid dimension line %q", line)
	}
	if width < 0 || height < 0 {
		return 0, 0, skerr.Fmt("negative dimensions %d x %d", width, height)
	}
	return width, height, nil
}

// parsePixel parses a single 0xRRGGBBAA or 0xXX token.
func parsePixel(token string) (color.NRGBA, error) {
	if !strings.HasPrefix(token, "0x") || (len(token) != 4 && len(token) != 10) {
		return color.NRGBA{}, skerr.Fmt("invalid pixel %q, want 0xRRGGBBAA or 0xXX", token)
	}
	v, err := strconv.ParseUint(token, 0, 32)
	if err != nil {
		return color.NRGBA{}, skerr.Wrapf(err, "invalid pixel %q", token)
	}
	if len(token) == 4 {
		// Grayscale notation.
		g := uint8(v)
		return color.NRGBA{R: g, G: g, B: g, A: 0xff}, nil
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Decode reads a RESEMBLETEXT image from r. The returned image is always an
// *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	reader := bufio.NewReader(r)
	width, height, err := dim(reader)
	if err != nil {
		return nil, skerr.Wrap(err)
	}
	ret := image.NewNRGBA(image.Rect(0, 0, width, height))
	y := 0
	for {
		line, readErr := reader.ReadString('\n')
		tokens := strings.Fields(line)
		if len(tokens) > 0 {
			if y >= height {
				return nil, skerr.Fmt("too many pixel rows, want %d", height)
			}
			if len(tokens) != width {
				return nil, skerr.Fmt("row %d has %d pixels, want %d", y, len(tokens), width)
			}
			for x, token := range tokens {
				c, err := parsePixel(token)
				if err != nil {
					return nil, skerr.Wrapf(err, "row %d", y)
				}
				ret.SetNRGBA(x, y, c)
			}
			y++
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, skerr.Wrapf(readErr, "reading pixel rows")
		}
	}
	if y != height {
		return nil, skerr.Fmt("got %d pixel rows, want %d", y, height)
	}
	return ret, nil
}

// DecodeConfig returns the color model and dimensions of a RESEMBLETEXT image
// without decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	reader := bufio.NewReader(r)
	width, height, err := dim(reader)
	if err != nil {
		return image.Config{}, skerr.Wrap(err)
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      width,
		Height:     height,
	}, nil
}

// Encode writes the image to w in RESEMBLETEXT format.
func Encode(w io.Writer, m *image.NRGBA) error {
	width := m.Bounds().Dx()
	height := m.Bounds().Dy()
	if _, err := fmt.Fprintf(w, "%s%d %d\n", header, width, height); err != nil {
		return skerr.Wrap(err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := m.NRGBAAt(x+m.Bounds().Min.X, y+m.Bounds().Min.Y)
			sep := " "
			if x == width-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "0x%02x%02x%02x%02x%s", c.R, c.G, c.B, c.A, sep); err != nil {
				return skerr.Wrap(err)
			}
		}
	}
	return nil
}

func init() {
	image.RegisterFormat("resembletext", header, Decode, DecodeConfig)
}

// MustToNRGBA returns an *image.NRGBA decoded from the given RESEMBLETEXT
// string. It panics on invalid input and is meant for static test data only.
func MustToNRGBA(s string) *image.NRGBA {
	img, err := Decode(strings.NewReader(s))
	if err != nil {
		// This indicates an error with the static test data.
		panic(fmt.Sprintf("Failed to decode a valid image: %s", err))
	}
	return img.(*image.NRGBA)
}
