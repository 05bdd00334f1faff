// Package imgutil loads and saves the images the comparison core operates
// on. Decoding, encoding and resampling live here; the core itself never
// touches files.
package imgutil

import (
	"image"
	"image/png"
	"io"

	// Image formats the loader understands.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"

	"github.com/rasterlab/resemble/go/resemble"
	"github.com/rasterlab/resemble/go/skerr"
	"github.com/rasterlab/resemble/go/util"
)

// DecodeImg decodes an image from the given reader and returns it as an
// NRGBA image.
func DecodeImg(r io.Reader) (*image.NRGBA, error) {
	im, _, err := image.Decode(r)
	if err != nil {
		return nil, skerr.Wrap(err)
	}
	return resemble.GetNRGBA(im), nil
}

// EncodeImg encodes the given image as a PNG and writes the result to w.
func EncodeImg(w io.Writer, img *image.NRGBA) error {
	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(w, img); err != nil {
		return skerr.Wrap(err)
	}
	return nil
}

// LoadImg loads an image from disk.
func LoadImg(sourcePath string) (*image.NRGBA, error) {
	var ret *image.NRGBA
	err := util.WithReadFile(sourcePath, func(r io.Reader) error {
		var err error
		ret, err = DecodeImg(r)
		return err
	})
	if err != nil {
		return nil, skerr.Wrapf(err, "loading %s", sourcePath)
	}
	return ret, nil
}

// LoadImgPair loads two images concurrently.
func LoadImgPair(path1, path2 string) (*image.NRGBA, *image.NRGBA, error) {
	var img1, img2 *image.NRGBA
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		img1, err = LoadImg(path1)
		return err
	})
	eg.Go(func() error {
		var err error
		img2, err = LoadImg(path2)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, skerr.Wrap(err)
	}
	return img1, img2, nil
}

// SaveImg writes the image to disk as a PNG.
func SaveImg(targetPath string, img *image.NRGBA) error {
	err := util.WithWriteFile(targetPath, func(w io.Writer) error {
		return EncodeImg(w, img)
	})
	if err != nil {
		return skerr.Wrapf(err, "saving %s", targetPath)
	}
	return nil
}

// ScaleToCommon upscales both images to their common maximum dimensions
// using nearest-neighbor resampling, so they can be compared
// pixel-for-pixel over the full area instead of just the overlap region.
// Images already at the target size are returned unchanged.
func ScaleToCommon(img1, img2 *image.NRGBA) (*image.NRGBA, *image.NRGBA) {
	width := util.MaxInt(img1.Bounds().Dx(), img2.Bounds().Dx())
	height := util.MaxInt(img1.Bounds().Dy(), img2.Bounds().Dy())
	return scaleTo(img1, width, height), scaleTo(img2, width, height)
}

func scaleTo(img *image.NRGBA, width, height int) *image.NRGBA {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	return resemble.GetNRGBA(resize.Resize(uint(width), uint(height), img, resize.NearestNeighbor))
}
