package resemble

import (
	"sort"

	"github.com/rasterlab/resemble/go/skerr"
)

// Profile names a predefined Tolerance. Profiles are mutually exclusive;
// selecting one replaces every field of the Tolerance, it never merges with a
// previous selection.
type Profile string

const (
	// ProfileExact flags any difference in any channel.
	ProfileExact = Profile("exact")
	// ProfileDefault tolerates small per-channel noise (offsets up to 16).
	ProfileDefault = Profile("default")
	// ProfileIgnoreAntialiasing additionally tolerates pixels that look like
	// anti-aliased edge samples, as long as their brightness is compatible.
	ProfileIgnoreAntialiasing = Profile("ignore_antialiasing")
	// ProfileIgnoreColors compares brightness only, ignoring hue entirely.
	ProfileIgnoreColors = Profile("ignore_colors")
)

// Tolerance holds the thresholds governing when two pixels count as matching.
// The zero value tolerates nothing; construct values via DefaultTolerance or
// ToleranceForProfile. Tolerance is an immutable value type and safe to share
// across goroutines.
type Tolerance struct {
	// Per-channel absolute thresholds in the 0-255 domain. Comparisons are
	// inclusive, i.e. a delta equal to the threshold still matches.
	Red   int
	Green int
	Blue  int
	Alpha int

	// MinBrightness is the inclusive threshold for brightness-only
	// comparisons (used when IgnoreColors is set or a pixel is classified
	// as anti-aliased). MaxBrightness is the neighborhood-contrast
	// threshold used by anti-aliasing detection. Both are in the 0-255
	// domain.
	MinBrightness float64
	MaxBrightness float64

	IgnoreAntialiasing bool
	IgnoreColors       bool
}

// profiles maps each Profile to its fully-populated Tolerance.
var profiles = map[Profile]Tolerance{
	ProfileExact: {
		Red:           0,
		Green:         0,
		Blue:          0,
		Alpha:         0,
		MinBrightness: 0,
		MaxBrightness: 255,
	},
	ProfileDefault: {
		Red:           16,
		Green:         16,
		Blue:          16,
		Alpha:         16,
		MinBrightness: 16,
		MaxBrightness: 240,
	},
	ProfileIgnoreAntialiasing: {
		Red:                32,
		Green:              32,
		Blue:               32,
		Alpha:              32,
		MinBrightness:      64,
		MaxBrightness:      96,
		IgnoreAntialiasing: true,
	},
	ProfileIgnoreColors: {
		Alpha:         16,
		MinBrightness: 16,
		MaxBrightness: 240,
		IgnoreColors:  true,
	},
}

// Profiles returns the names of all known comparison profiles, sorted.
func Profiles() []Profile {
	ret := make([]Profile, 0, len(profiles))
	for p := range profiles {
		ret = append(ret, p)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// DefaultTolerance returns the Tolerance of ProfileDefault.
func DefaultTolerance() Tolerance {
	return profiles[ProfileDefault]
}

// ToleranceForProfile returns the Tolerance preset for the given profile.
// Passing an unknown profile is a caller error and is rejected here, before
// any comparison runs.
func ToleranceForProfile(p Profile) (Tolerance, error) {
	tol, ok := profiles[p]
	if !ok {
		return Tolerance{}, skerr.Fmt("unknown comparison profile %q", p)
	}
	return tol, nil
}
