package version

import (
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// IsSemver reports whether text conforms to the canonical semantic
// version grammar: MAJOR.MINOR.PATCH with optional dot-separated
// prerelease identifiers and optional build metadata. The entire string
// must conform; partial matches, "v" prefixes, and leading zeros are all
// rejected.
func IsSemver(text string) bool {
	_, err := semver.StrictNewVersion(text)
	return err == nil
}

// CompareRelease orders two Versions by their numeric triples, ignoring
// prefix and prerelease text. Unreleased versions sort below released
// ones and among themselves by their raw text.
func CompareRelease(a, b Version) int {
	switch {
	case a.Unreleased && b.Unreleased:
		return strings.Compare(a.Prerelease, b.Prerelease)
	case a.Unreleased:
		return -1
	case b.Unreleased:
		return 1
	}
	av := semver.New(uint64(a.Major), uint64(a.Minor), uint64(a.Patch), "", "")
	bv := semver.New(uint64(b.Major), uint64(b.Minor), uint64(b.Patch), "", "")
	return av.Compare(bv)
}
