package version

import (
	"fmt"
	"strings"
)

// Initial is the version used as a starting point when a repository has no
// version tag yet.
const Initial = "0.0.0"

// Version is the structured representation of a version tag.
//
// A parsed tag like "TestModule/0.1.27-16-g5befeb2" splits into a Prefix
// ("TestModule/"), the numeric triple (0, 1, 27), the separator Dash ("-"),
// and the Prerelease text ("16-g5befeb2"). Release candidate suffixes are
// glued directly to the patch number ("0.0.1rc2"), in which case Dash is
// empty. Strings that do not carry a numeric triple at all (e.g. the
// "66cf7c2-HEAD" output of git describe in an untagged repository) are
// represented with Unreleased set and the raw text kept in Prerelease, so
// String always reproduces the input byte for byte.
//
// Version is a comparable value type; bumps produce new values (see Bump).
type Version struct {
	Prefix     string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Major      int    `json:"major" yaml:"major"`
	Minor      int    `json:"minor" yaml:"minor"`
	Patch      int    `json:"patch" yaml:"patch"`
	Dash       string `json:"dash,omitempty" yaml:"dash,omitempty"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`

	// Unreleased marks a version with no parsed numeric triple.
	Unreleased bool `json:"unreleased,omitempty" yaml:"unreleased,omitempty"`
}

// New returns a released Version with the given numeric triple.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse turns a raw tag string into a Version. It never fails: input that
// does not contain a numeric triple degrades to an unreleased Version that
// stringifies back to the raw input.
func Parse(raw string) Version {
	// The prefix runs through the last slash that leaves a parseable
	// triple behind it. When no slash does, the whole string gets one
	// try, so "1.2.3-foo/bar" is a triple with a suffix rather than a
	// failed prefix split.
	end := len(raw)
	for {
		i := strings.LastIndexByte(raw[:end], '/')
		if v, ok := parseTriple(raw[i+1:]); ok {
			v.Prefix = raw[:i+1]
			return v
		}
		if i < 0 {
			return Version{Prerelease: raw, Unreleased: true}
		}
		end = i
	}
}

func parseTriple(s string) (Version, bool) {
	major, s, ok := splitComponent(s, true)
	if !ok {
		return Version{}, false
	}
	minor, s, ok := splitComponent(s, true)
	if !ok {
		return Version{}, false
	}
	patch, rest, ok := splitComponent(s, false)
	if !ok {
		return Version{}, false
	}

	v := Version{Major: major, Minor: minor, Patch: patch}
	switch {
	case rest == "":
	case hasRCSuffix(rest):
		v.Prerelease = rest
	case rest[0] == '-':
		v.Dash = "-"
		v.Prerelease = rest[1:]
	default:
		// Trailing text that is neither an rc suffix nor dash-delimited
		// would not survive a round trip.
		return Version{}, false
	}
	return v, true
}

// splitComponent consumes one numeric component from the front of s. When
// dotted is true the component must be terminated by a dot, which is
// consumed as well. Components with leading zeros are rejected: they could
// not be reproduced by String.
func splitComponent(s string, dotted bool) (int, string, bool) {
	i := 0
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == 0 || (i > 1 && s[0] == '0') {
		return 0, "", false
	}
	if dotted {
		if i >= len(s) || s[i] != '.' {
			return 0, "", false
		}
		i++
	}
	return n, s[i:], true
}

func isRCText(s string) bool {
	_, rest, ok := splitRC(s)
	return ok && rest == ""
}

// hasRCSuffix reports whether s is a release candidate counter, possibly
// followed by dash-delimited describe metadata ("rc1" or "rc1-4-gabc1234").
func hasRCSuffix(s string) bool {
	_, _, ok := splitRC(s)
	return ok
}

// splitRC splits a leading "rc<digits>" counter off s. It reports false
// when s does not start with one, or when the counter runs into trailing
// text that is not dash-delimited. "rc0" is a counter like any other.
func splitRC(s string) (int, string, bool) {
	if !strings.HasPrefix(s, "rc") {
		return 0, "", false
	}
	i := len("rc")
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == len("rc") {
		return 0, "", false
	}
	if i < len(s) && s[i] != '-' {
		return 0, "", false
	}
	return n, s[i:], true
}

// String renders the Version back to tag text. For a parsed, un-bumped
// Version the result is identical to the original input.
func (v Version) String() string {
	if v.Unreleased {
		return v.Prerelease
	}
	return fmt.Sprintf("%s%d.%d.%d%s%s", v.Prefix, v.Major, v.Minor, v.Patch, v.Dash, v.Prerelease)
}

// IsUnreleased reports whether the Version has no numeric triple.
func (v Version) IsUnreleased() bool {
	return v.Unreleased
}

// IsPrerelease reports whether the Version carries prerelease text after a
// numeric triple. Unreleased versions are never prereleases even though
// they hold trailing text.
func (v Version) IsPrerelease() bool {
	return !v.Unreleased && v.Prerelease != ""
}

// IsRC reports whether the prerelease text is a release candidate suffix
// of the form "rc<digits>".
func (v Version) IsRC() bool {
	return !v.Unreleased && isRCText(v.Prerelease)
}
