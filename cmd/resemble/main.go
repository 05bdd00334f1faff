// Command resemble compares two images and reports the percentage of
// differing pixels, optionally writing a diff image that highlights them.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rasterlab/resemble/go/imgutil"
	"github.com/rasterlab/resemble/go/resemble"
	"github.com/rasterlab/resemble/go/skerr"
	"github.com/rasterlab/resemble/go/sklog"
	"github.com/rasterlab/resemble/go/sklog/sklogimpl"
	"github.com/rasterlab/resemble/go/sklog/stdlogging"
	"github.com/rasterlab/resemble/go/timer"
)

// CompareFlags defines the commandline flags of the compare command.
type CompareFlags struct {
	Profile   string
	DiffOut   string
	Resize    bool
	FailAbove float64
}

func (flags *CompareFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &flags.Profile,
			Name:        "profile",
			Value:       string(resemble.ProfileDefault),
			Usage:       fmt.Sprintf("The comparison profile to use, one of: %s.", profileNames()),
		},
		&cli.StringFlag{
			Destination: &flags.DiffOut,
			Name:        "diff-out",
			Usage:       "If set, the diff image is written to this path as a PNG.",
		},
		&cli.BoolFlag{
			Destination: &flags.Resize,
			Name:        "resize",
			Usage: "Upscale both images to their common maximum dimensions before comparing. " +
				"Without this flag only the overlap region is compared.",
		},
		&cli.Float64Flag{
			Destination: &flags.FailAbove,
			Name:        "fail-above",
			Value:       -1,
			Usage:       "Exit non-zero if the mismatch percentage exceeds this value. Negative disables the gate.",
		},
	}
}

func profileNames() string {
	ps := resemble.Profiles()
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func main() {
	var flags CompareFlags
	cliApp := &cli.App{
		Name:      "resemble",
		Usage:     "Compares two images and reports the percentage of differing pixels.",
		ArgsUsage: "image1 image2",
		Flags:     (&flags).AsCliFlags(),
		Before: func(c *cli.Context) error {
			// Log to stdout.
			sklogimpl.SetLogger(stdlogging.New(os.Stdout))
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return skerr.Fmt("expected exactly two image paths, got %d", c.NArg())
			}
			return compare(c.Args().Get(0), c.Args().Get(1), flags)
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		sklog.Fatal(err)
	}
}

func compare(path1, path2 string, flags CompareFlags) error {
	tol, err := resemble.ToleranceForProfile(resemble.Profile(flags.Profile))
	if err != nil {
		return skerr.Wrap(err)
	}
	defer timer.New("total comparison time").Stop()

	img1, img2, err := imgutil.LoadImgPair(path1, path2)
	if err != nil {
		return skerr.Wrap(err)
	}
	if flags.Resize {
		img1, img2 = imgutil.ScaleToCommon(img1, img2)
	}

	res := resemble.Compare(img1, img2, tol)
	if res.DimsDiffer {
		sklog.Warningf("Image dimensions differ (%dx%d vs %dx%d); compared the %dx%d overlap region.",
			img1.Bounds().Dx(), img1.Bounds().Dy(),
			img2.Bounds().Dx(), img2.Bounds().Dy(),
			res.Diff.Bounds().Dx(), res.Diff.Bounds().Dy())
	}
	fmt.Printf("%s vs %s (%s): %.4f%% mismatch\n", path1, path2, flags.Profile, res.MismatchPercent)

	if flags.DiffOut != "" {
		if err := imgutil.SaveImg(flags.DiffOut, res.Diff); err != nil {
			return skerr.Wrap(err)
		}
		sklog.Infof("Wrote diff image to %s", flags.DiffOut)
	}
	if flags.FailAbove >= 0 && res.MismatchPercent > flags.FailAbove {
		return skerr.Fmt("mismatch %.4f%% exceeds the allowed %.4f%%", res.MismatchPercent, flags.FailAbove)
	}
	return nil
}
