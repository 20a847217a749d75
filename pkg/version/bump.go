package version

import "strconv"

// Bump identifies which version component a bump request advances. A
// request is resolved once, by Resolve or by the caller, instead of being
// re-derived from boolean flags at every decision point.
type Bump int

const (
	// BumpNone promotes an existing prerelease to a stable release and is
	// otherwise a no-op.
	BumpNone Bump = iota
	BumpMajor
	BumpMinor
	BumpPatch
	// BumpPrerelease advances an rc suffix, or starts one at rc1, without
	// touching the numeric triple.
	BumpPrerelease
	BumpMajorPrerelease
	BumpMinorPrerelease
	BumpPatchPrerelease
)

func (b Bump) String() string {
	switch b {
	case BumpNone:
		return "none"
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	case BumpPrerelease:
		return "prerelease"
	case BumpMajorPrerelease:
		return "major+prerelease"
	case BumpMinorPrerelease:
		return "minor+prerelease"
	case BumpPatchPrerelease:
		return "patch+prerelease"
	default:
		return "unknown"
	}
}

// withPrerelease reports whether the request enters a release candidate
// after bumping the numeric triple.
func (b Bump) withPrerelease() bool {
	switch b {
	case BumpMajorPrerelease, BumpMinorPrerelease, BumpPatchPrerelease:
		return true
	}
	return false
}

// Dimension returns the release-number component of the request, or
// BumpNone when only the prerelease advances.
func (b Bump) Dimension() Bump {
	switch b {
	case BumpMajor, BumpMajorPrerelease:
		return BumpMajor
	case BumpMinor, BumpMinorPrerelease:
		return BumpMinor
	case BumpPatch, BumpPatchPrerelease:
		return BumpPatch
	}
	return BumpNone
}

// Resolve maps the bump flags onto a single Bump using the
// highest-impact-wins priority: major over minor over patch. A prerelease
// flag combines with the winning dimension, or stands alone when no
// dimension is requested.
func Resolve(major, minor, patch, prerelease bool) Bump {
	switch {
	case major && prerelease:
		return BumpMajorPrerelease
	case major:
		return BumpMajor
	case minor && prerelease:
		return BumpMinorPrerelease
	case minor:
		return BumpMinor
	case patch && prerelease:
		return BumpPatchPrerelease
	case patch:
		return BumpPatch
	case prerelease:
		return BumpPrerelease
	default:
		return BumpNone
	}
}

// Bump computes the next Version for the requested bump. The receiver is
// left untouched.
//
// Release-number bumps clear the prerelease, yielding a stable release.
// A combined request (e.g. BumpPatchPrerelease) applies the number bump
// first and then enters a fresh release candidate at rc1; it never
// continues an earlier rc counter. BumpPrerelease alone advances an
// existing rc suffix by one, or starts at rc1. BumpNone promotes a
// prerelease to the stable release with the same numeric triple.
func (v Version) Bump(b Bump) (Version, error) {
	if v.Unreleased {
		return Version{}, newVersionErrorf("cannot bump version %q: no numeric triple was parsed", v.Prerelease)
	}

	next := v
	switch b {
	case BumpNone:
		next.Dash = ""
		next.Prerelease = ""
		return next, nil
	case BumpPrerelease:
		next.Dash = ""
		if n, _, ok := splitRC(v.Prerelease); ok {
			// Continue an existing counter; describe metadata after the
			// counter is dropped along with it.
			next.Prerelease = "rc" + strconv.Itoa(n+1)
		} else {
			next.Prerelease = "rc1"
		}
		return next, nil
	case BumpMajor, BumpMajorPrerelease:
		next.Major++
		next.Minor = 0
		next.Patch = 0
	case BumpMinor, BumpMinorPrerelease:
		next.Minor++
		next.Patch = 0
	case BumpPatch, BumpPatchPrerelease:
		next.Patch++
	default:
		return Version{}, newVersionErrorf("unknown bump request %d", int(b))
	}

	next.Dash = ""
	next.Prerelease = ""
	if b.withPrerelease() {
		next.Prerelease = "rc1"
	}
	return next, nil
}
